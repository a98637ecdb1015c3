package container

import (
	"context"
	"fmt"
	"time"

	"collection-backend/internal/config"
	blockhandler "collection-backend/internal/domains/block/handler"
	blockrepo "collection-backend/internal/domains/block/repository"
	blockservice "collection-backend/internal/domains/block/service"
	picturehandler "collection-backend/internal/domains/picture/handler"
	pictureservice "collection-backend/internal/domains/picture/service"
	searchhandler "collection-backend/internal/domains/searchhistory/handler"
	searchrepo "collection-backend/internal/domains/searchhistory/repository"
	searchservice "collection-backend/internal/domains/searchhistory/service"
	userhandler "collection-backend/internal/domains/user/handler"
	userrepo "collection-backend/internal/domains/user/repository"
	userservice "collection-backend/internal/domains/user/service"
	rediscache "collection-backend/internal/infrastructure/cache"
	"collection-backend/internal/infrastructure/database"
	"collection-backend/internal/infrastructure/identity"
	"collection-backend/internal/infrastructure/storage"
	"collection-backend/pkg/jwt"
	"collection-backend/pkg/logger"
)

// Container wires configuration, infrastructure, services and handlers.
// Everything is initialized once at startup; a failed dependency aborts
// the whole boot.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   *rediscache.RedisCache
	Storage *storage.MinIOStorage
	JWT     *jwt.Manager

	UserHandler          *userhandler.UserHandler
	BlockHandler         *blockhandler.BlockHandler
	SearchHistoryHandler *searchhandler.SearchHistoryHandler
	PictureHandler       *picturehandler.PictureHandler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	dbCfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbCfg)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisCache := rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		db.Close()
		redisCache.Close()
		return nil, fmt.Errorf("connect object storage: %w", err)
	}

	identityClient := identity.NewClient(cfg.OAuth)
	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	userRepository := userrepo.NewPostgresUserRepository(db.Pool, redisCache)
	blockRepository := blockrepo.NewPostgresBlockRepository(db.Pool)
	searchRepository := searchrepo.NewPostgresSearchHistoryRepository(db.Pool)

	userService := userservice.NewUserService(userRepository, identityClient, tokens)
	blockService := blockservice.NewBlockService(blockRepository)
	searchService := searchservice.NewSearchHistoryService(searchRepository)
	pictureService := pictureservice.NewPictureService(minioStorage)

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   redisCache,
		Storage: minioStorage,
		JWT:     tokens,

		UserHandler:          userhandler.NewUserHandler(userService),
		BlockHandler:         blockhandler.NewBlockHandler(blockService),
		SearchHistoryHandler: searchhandler.NewSearchHistoryHandler(searchService),
		PictureHandler:       picturehandler.NewPictureHandler(pictureService),
	}, nil
}

// Cleanup releases the long-lived connections.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
