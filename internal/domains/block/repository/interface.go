package repository

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/block/model"
)

// BlockRepository is the persistence surface for blocks. GetByID returns
// (nil, nil) when the record is absent.
type BlockRepository interface {
	Create(ctx context.Context, block *model.Block) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Block, error)
	List(ctx context.Context, limit, offset int) ([]model.Block, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, block *model.Block) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
