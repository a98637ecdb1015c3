package repository

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/searchhistory/model"
)

// SearchHistoryRepository is the persistence surface for search-history
// records. Deletion is bulk, keyed by owner.
type SearchHistoryRepository interface {
	Create(ctx context.Context, record *model.SearchHistory) error
	ListByOwner(ctx context.Context, uid uuid.UUID) ([]model.SearchHistory, error)
	DeleteByOwner(ctx context.Context, uid uuid.UUID) (int64, error)
}
