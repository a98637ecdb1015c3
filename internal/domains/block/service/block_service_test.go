package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/domains/block/model"
	"collection-backend/internal/shared/apperror"
)

// fakeBlockRepo is an in-memory BlockRepository preserving insertion order.
type fakeBlockRepo struct {
	mu     sync.Mutex
	blocks []*model.Block
}

func (f *fakeBlockRepo) Create(ctx context.Context, block *model.Block) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *block
	f.blocks = append(f.blocks, &copied)
	return nil
}

func (f *fakeBlockRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.blocks {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBlockRepo) List(ctx context.Context, limit, offset int) ([]model.Block, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]model.Block, 0)
	for i := offset; i < len(f.blocks) && i < offset+limit; i++ {
		rows = append(rows, *f.blocks[i])
	}
	return rows, nil
}

func (f *fakeBlockRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.blocks)), nil
}

func (f *fakeBlockRepo) Update(ctx context.Context, block *model.Block) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blocks {
		if b.ID == block.ID {
			copied := *block
			f.blocks[i] = &copied
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeBlockRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blocks {
		if b.ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func str(s string) *string { return &s }

func TestCreateStampsOwnerAndTimestamps(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})
	owner := uuid.New()

	draft := true
	block, err := svc.Create(context.Background(), owner, model.CreateBlockRequest{
		Context: str("hello"),
		Imgs:    []string{"https://x/y.jpg"},
		Draft:   &draft,
	})
	require.NoError(t, err)

	require.NotNil(t, block.Pid)
	assert.Equal(t, owner.String(), *block.Pid)
	assert.Equal(t, block.CreateTime, block.UpdateTime)
	assert.Equal(t, []string{"https://x/y.jpg"}, block.Imgs)

	// The created block is readable back with the same fields.
	loaded, err := svc.GetByID(context.Background(), block.ID)
	require.NoError(t, err)
	assert.Equal(t, str("hello"), loaded.Context)
	require.NotNil(t, loaded.Draft)
	assert.True(t, *loaded.Draft)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListPaginationInCreationOrder(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})
	owner := uuid.New()

	var ids []uuid.UUID
	for i := 0; i < 7; i++ {
		block, err := svc.Create(context.Background(), owner, model.CreateBlockRequest{})
		require.NoError(t, err)
		ids = append(ids, block.ID)
	}

	result, err := svc.List(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.NumPages)

	var collected []uuid.UUID
	for page := 1; page <= int(result.NumPages); page++ {
		pageResult, err := svc.List(context.Background(), page, 3)
		require.NoError(t, err)
		for _, row := range pageResult.Rows {
			collected = append(collected, row.ID)
		}
	}
	assert.Equal(t, ids, collected)
}

func TestUpdateReplacesAllMutableFields(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})
	owner := uuid.New()

	draft := true
	created, err := svc.Create(context.Background(), owner, model.CreateBlockRequest{
		Context:  str("original"),
		Location: str("somewhere"),
		Imgs:     []string{"https://x/a.jpg"},
		Draft:    &draft,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, model.UpdateBlockRequest{
		Context: str("rewritten"),
	})
	require.NoError(t, err)

	assert.Equal(t, str("rewritten"), updated.Context)
	assert.Nil(t, updated.Location)
	assert.Nil(t, updated.Imgs)
	assert.Nil(t, updated.Draft)

	// Owner and creation time survive the replacement.
	require.NotNil(t, updated.Pid)
	assert.Equal(t, owner.String(), *updated.Pid)
	assert.Equal(t, created.CreateTime, updated.CreateTime)
	assert.False(t, updated.UpdateTime.Before(created.UpdateTime))
}

func TestUpdateMissingBlock(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})

	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateBlockRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := NewBlockService(&fakeBlockRepo{})
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, model.CreateBlockRequest{})
	require.NoError(t, err)

	count, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
