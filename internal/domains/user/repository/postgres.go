package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collection-backend/internal/domains/user/model"
	"collection-backend/pkg/cache"
	"collection-backend/pkg/logger"
)

const userCacheTTL = 10 * time.Minute

// PostgresUserRepository persists users in Postgres with a Redis
// cache-aside on the single-record lookups.
type PostgresUserRepository struct {
	db    *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresUserRepository(db *pgxpool.Pool, cache cache.Cache) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, cache: cache}
}

func cacheKeyID(id uuid.UUID) string    { return fmt.Sprintf("user:%s", id) }
func cacheKeyAppID(appID string) string { return fmt.Sprintf("user:appid:%s", appID) }

func (r *PostgresUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, name, sex, birthday, phone, email, app_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Sex, user.Birthday, user.Phone,
		user.Email, user.AppID, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if found, err := r.cache.Get(ctx, cacheKeyID(id), &cached); err == nil && found {
		return &cached, nil
	}

	user, err := r.getOne(ctx, `WHERE id = $1`, id)
	if err != nil || user == nil {
		return user, err
	}

	if err := r.cache.Set(ctx, cacheKeyID(id), user, userCacheTTL); err != nil {
		logger.Warn("failed to cache user", map[string]interface{}{"user_id": id.String()})
	}
	return user, nil
}

func (r *PostgresUserRepository) GetByAppID(ctx context.Context, appID string) (*model.User, error) {
	var cached model.User
	if found, err := r.cache.Get(ctx, cacheKeyAppID(appID), &cached); err == nil && found {
		return &cached, nil
	}

	user, err := r.getOne(ctx, `WHERE app_id = $1`, appID)
	if err != nil || user == nil {
		return user, err
	}

	if err := r.cache.Set(ctx, cacheKeyAppID(appID), user, userCacheTTL); err != nil {
		logger.Warn("failed to cache user", map[string]interface{}{"app_id": appID})
	}
	return user, nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, where string, arg interface{}) (*model.User, error) {
	query := `
		SELECT id, name, sex, birthday, phone, email, app_id, created_at, updated_at
		FROM users ` + where

	var user model.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Sex, &user.Birthday, &user.Phone,
		&user.Email, &user.AppID, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	query := `
		SELECT id, name, sex, birthday, phone, email, app_id, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Sex, &user.Birthday, &user.Phone,
			&user.Email, &user.AppID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *model.User) (int64, error) {
	query := `
		UPDATE users
		SET name = $1, sex = $2, birthday = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		user.Name, user.Sex, user.Birthday, user.Phone, user.Email,
		user.UpdatedAt, user.ID)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}

	r.invalidate(ctx, user.ID, user.AppID)
	return tag.RowsAffected(), nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	// Fetch first so the app_id cache key can be dropped too.
	existing, err := r.getOne(ctx, `WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}

	if existing != nil {
		r.invalidate(ctx, id, existing.AppID)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresUserRepository) invalidate(ctx context.Context, id uuid.UUID, appID string) {
	if err := r.cache.Delete(ctx, cacheKeyID(id), cacheKeyAppID(appID)); err != nil {
		logger.Warn("failed to invalidate user cache", map[string]interface{}{"user_id": id.String()})
	}
}
