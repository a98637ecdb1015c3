package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/domains/searchhistory/model"
	"collection-backend/internal/shared/apperror"
)

type fakeSearchHistoryRepo struct {
	mu      sync.Mutex
	records []*model.SearchHistory
}

func (f *fakeSearchHistoryRepo) Create(ctx context.Context, record *model.SearchHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *record
	f.records = append(f.records, &copied)
	return nil
}

func (f *fakeSearchHistoryRepo) ListByOwner(ctx context.Context, uid uuid.UUID) ([]model.SearchHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]model.SearchHistory, 0)
	for _, r := range f.records {
		if r.UID != nil && *r.UID == uid {
			rows = append(rows, *r)
		}
	}
	return rows, nil
}

func (f *fakeSearchHistoryRepo) DeleteByOwner(ctx context.Context, uid uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*model.SearchHistory
	var removed int64
	for _, r := range f.records {
		if r.UID != nil && *r.UID == uid {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return removed, nil
}

func TestCreateStampsOwner(t *testing.T) {
	svc := NewSearchHistoryService(&fakeSearchHistoryRepo{})
	owner := uuid.New()

	record, err := svc.Create(context.Background(), owner, model.CreateSearchHistoryRequest{
		History: json.RawMessage(`{"query":"shoes"}`),
	})
	require.NoError(t, err)

	require.NotNil(t, record.UID)
	assert.Equal(t, owner, *record.UID)
	assert.Equal(t, record.CreateTime, record.UpdateTime)
	assert.JSONEq(t, `{"query":"shoes"}`, string(record.History))
}

func TestCreateRequiresHistory(t *testing.T) {
	svc := NewSearchHistoryService(&fakeSearchHistoryRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateSearchHistoryRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestListOnlyReturnsOwnersRows(t *testing.T) {
	svc := NewSearchHistoryService(&fakeSearchHistoryRepo{})
	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), alice, model.CreateSearchHistoryRequest{
			History: json.RawMessage(`{"n":1}`),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), bob, model.CreateSearchHistoryRequest{
		History: json.RawMessage(`{"n":2}`),
	})
	require.NoError(t, err)

	result, err := svc.ListByOwner(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 3)
}

func TestDeleteByOwnerIsBulkAndIdempotent(t *testing.T) {
	svc := NewSearchHistoryService(&fakeSearchHistoryRepo{})
	owner := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(context.Background(), owner, model.CreateSearchHistoryRequest{
			History: json.RawMessage(`{}`),
		})
		require.NoError(t, err)
	}

	count, err := svc.DeleteByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.DeleteByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
