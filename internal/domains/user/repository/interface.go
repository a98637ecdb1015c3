package repository

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/user/model"
)

// UserRepository is the persistence surface for user records. Lookups
// return (nil, nil) when the record is absent.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByAppID(ctx context.Context, appID string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *model.User) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
