package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collection-backend/internal/domains/searchhistory/model"
	"collection-backend/internal/domains/searchhistory/repository"
	"collection-backend/internal/shared/apperror"
)

type searchHistoryService struct {
	repo repository.SearchHistoryRepository
}

func NewSearchHistoryService(repo repository.SearchHistoryRepository) SearchHistoryService {
	return &searchHistoryService{repo: repo}
}

func (s *searchHistoryService) Create(ctx context.Context, ownerID uuid.UUID, req model.CreateSearchHistoryRequest) (*model.SearchHistory, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	now := time.Now().UTC()
	uid := ownerID
	record := &model.SearchHistory{
		ID:         uuid.New(),
		UID:        &uid,
		History:    req.History,
		CreateTime: now,
		UpdateTime: now,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, apperror.Storage("failed to create search history", err)
	}
	return record, nil
}

func (s *searchHistoryService) ListByOwner(ctx context.Context, ownerID uuid.UUID) (*model.ListResult, error) {
	rows, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Storage("failed to list search history", err)
	}
	return &model.ListResult{Rows: rows}, nil
}

// DeleteByOwner removes every record for the owner. Zero rows is still
// success.
func (s *searchHistoryService) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	count, err := s.repo.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, apperror.Storage("failed to delete search history", err)
	}
	return count, nil
}
