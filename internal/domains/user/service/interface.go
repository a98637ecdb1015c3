package service

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/user/model"
)

// UserService exposes user CRUD plus the login exchange.
type UserService interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, page, perPage int) (*model.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Login(ctx context.Context, jsCode string) (*model.LoginResult, error)
}
