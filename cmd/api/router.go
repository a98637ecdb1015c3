package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/shared/middleware"
	"collection-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))
		api.POST("/login", c.UserHandler.Login)

		authed := api.Group("")
		authed.Use(middleware.Auth(c.JWT))
		{
			authed.GET("/user", c.UserHandler.List)
			authed.GET("/user/:id", c.UserHandler.GetByID)
			authed.POST("/user/new", c.UserHandler.Create)
			authed.POST("/user/update/:id", c.UserHandler.Update)
			authed.DELETE("/user/delete/:id", c.UserHandler.Delete)

			authed.GET("/block", c.BlockHandler.List)
			authed.GET("/block/:id", c.BlockHandler.GetByID)
			authed.POST("/block/new", c.BlockHandler.Create)
			authed.POST("/block/update/:id", c.BlockHandler.Update)
			authed.DELETE("/block/delete/:id", c.BlockHandler.Delete)

			authed.GET("/search_history", c.SearchHistoryHandler.List)
			authed.POST("/search_history/new", c.SearchHistoryHandler.Create)
			authed.DELETE("/search_history/delete/:id", c.SearchHistoryHandler.Delete)

			authed.POST("/upload_pic", c.PictureHandler.Upload)
			authed.POST("/delete_pic", c.PictureHandler.Delete)
		}
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := 200
		if dbStatus != "ok" {
			statusCode = 503
		}

		c.JSON(statusCode, health)
	}
}
