package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collection-backend/internal/domains/block/model"
	"collection-backend/internal/domains/block/repository"
	"collection-backend/internal/shared/apperror"
)

type blockService struct {
	repo repository.BlockRepository
}

func NewBlockService(repo repository.BlockRepository) BlockService {
	return &blockService{repo: repo}
}

// Create stamps the owner from the authenticated caller and sets both
// timestamps to the same instant.
func (s *blockService) Create(ctx context.Context, ownerID uuid.UUID, req model.CreateBlockRequest) (*model.Block, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	now := time.Now().UTC()
	pid := ownerID.String()
	block := &model.Block{
		ID:                   uuid.New(),
		Pid:                  &pid,
		Context:              req.Context,
		Imgs:                 req.Imgs,
		Location:             req.Location,
		LatitudeAndLongitude: req.LatitudeAndLongitude,
		Draft:                req.Draft,
		CreateTime:           now,
		UpdateTime:           now,
	}

	if err := s.repo.Create(ctx, block); err != nil {
		return nil, apperror.Storage("failed to create block", err)
	}
	return block, nil
}

func (s *blockService) GetByID(ctx context.Context, id uuid.UUID) (*model.Block, error) {
	block, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage("failed to load block", err)
	}
	if block == nil {
		return nil, apperror.NotFound("block not found")
	}
	return block, nil
}

func (s *blockService) List(ctx context.Context, page, perPage int) (*model.ListResult, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apperror.Storage("failed to count blocks", err)
	}

	rows, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, apperror.Storage("failed to list blocks", err)
	}

	numPages := (total + int64(perPage) - 1) / int64(perPage)
	return &model.ListResult{Rows: rows, NumPages: numPages}, nil
}

// Update replaces every mutable field; the owner and create_time stay as
// they were.
func (s *blockService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBlockRequest) (*model.Block, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage("failed to load block", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("block not found")
	}

	existing.Context = req.Context
	existing.Imgs = req.Imgs
	existing.Location = req.Location
	existing.LatitudeAndLongitude = req.LatitudeAndLongitude
	existing.Draft = req.Draft
	existing.UpdateTime = time.Now().UTC()

	affected, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, apperror.Storage("failed to update block", err)
	}
	if affected == 0 {
		return nil, apperror.NotFound("block not found")
	}
	return existing, nil
}

// Delete is idempotent; a missing id reports zero rows, not an error.
func (s *blockService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Storage("failed to delete block", err)
	}
	return count, nil
}
