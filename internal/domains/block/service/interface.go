package service

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/block/model"
)

// BlockService exposes block CRUD. Create and the owner stamp require
// the authenticated caller's id.
type BlockService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req model.CreateBlockRequest) (*model.Block, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Block, error)
	List(ctx context.Context, page, perPage int) (*model.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateBlockRequest) (*model.Block, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
