package service

import (
	"context"

	"github.com/google/uuid"

	"collection-backend/internal/domains/searchhistory/model"
)

// SearchHistoryService records, lists and bulk-deletes a user's search
// history.
type SearchHistoryService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req model.CreateSearchHistoryRequest) (*model.SearchHistory, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) (*model.ListResult, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
