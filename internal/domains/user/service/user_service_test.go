package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"collection-backend/internal/domains/user/model"
	"collection-backend/internal/infrastructure/identity"
	"collection-backend/internal/shared/apperror"
	"collection-backend/pkg/jwt"
)

// fakeUserRepo is an in-memory UserRepository preserving insertion order.
type fakeUserRepo struct {
	mu      sync.Mutex
	users   []*model.User
	creates int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users = append(f.users, &copied)
	f.creates++
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByAppID(ctx context.Context, appID string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.AppID == appID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]model.User, 0)
	for i := offset; i < len(f.users) && i < offset+limit; i++ {
		rows = append(rows, *f.users[i])
	}
	return rows, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == user.ID {
			copied := *user
			f.users[i] = &copied
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockExchanger struct {
	mock.Mock
}

func (m *mockExchanger) ExchangeCode(ctx context.Context, jsCode string) (*identity.Session, error) {
	args := m.Called(ctx, jsCode)
	if session := args.Get(0); session != nil {
		return session.(*identity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(repo *fakeUserRepo, exchanger *mockExchanger) UserService {
	return NewUserService(repo, exchanger, jwt.NewManager("test-secret", time.Hour))
}

func TestCreateStampsFreshIDAndEqualTimestamps(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	created, err := svc.Create(context.Background(), model.CreateUserRequest{
		AppID: "wx-open-id",
		Sex:   "1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	require.NotNil(t, created.Sex)
	assert.Equal(t, 1, *created.Sex)

	second, err := svc.Create(context.Background(), model.CreateUserRequest{
		AppID: "wx-open-id-2",
		Sex:   "0",
	})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestCreateRejectsUnparseableSex(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	_, err := svc.Create(context.Background(), model.CreateUserRequest{
		AppID: "wx-open-id",
		Sex:   "female",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreateRequiresAppID(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	_, err := svc.Create(context.Background(), model.CreateUserRequest{Sex: "1"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	_, err := svc.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func seedUsers(t *testing.T, svc UserService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), model.CreateUserRequest{
			AppID: uuid.New().String(),
			Sex:   "0",
		})
		require.NoError(t, err)
	}
}

func TestListPagesCoverAllRowsExactlyOnce(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))
	seedUsers(t, svc, 11)

	seen := make(map[uuid.UUID]int)
	first, err := svc.List(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.NumPages)

	for page := 1; page <= int(first.NumPages); page++ {
		result, err := svc.List(context.Background(), page, 5)
		require.NoError(t, err)
		for _, row := range result.Rows {
			seen[row.ID]++
		}
	}

	assert.Len(t, seen, 11)
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestListBeyondLastPageIsEmpty(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))
	seedUsers(t, svc, 3)

	result, err := svc.List(context.Background(), 5, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, int64(1), result.NumPages)
}

func TestUpdateReplacesAbsentFieldsWithNull(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo, new(mockExchanger))

	name := "old name"
	phone := "12345"
	created, err := svc.Create(context.Background(), model.CreateUserRequest{
		AppID: "wx-open-id",
		Sex:   "1",
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)

	newName := "new name"
	updated, err := svc.Update(context.Background(), created.ID, model.UpdateUserRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, &newName, updated.Name)
	assert.Nil(t, updated.Phone)
	assert.Nil(t, updated.Sex)
	assert.Equal(t, "wx-open-id", updated.AppID)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateIsIdempotent(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	created, err := svc.Create(context.Background(), model.CreateUserRequest{
		AppID: "wx-open-id",
		Sex:   "1",
	})
	require.NoError(t, err)

	email := "a@example.com"
	req := model.UpdateUserRequest{Email: &email}

	first, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	second, err := svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateUserRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestDeleteMissingIDIsSuccess(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, new(mockExchanger))

	count, err := svc.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestLoginCreatesUserOnFirstCallOnly(t *testing.T) {
	repo := &fakeUserRepo{}
	exchanger := new(mockExchanger)
	exchanger.On("ExchangeCode", mock.Anything, "js-code").
		Return(&identity.Session{OpenID: "wx-open-id", SessionKey: "sk"}, nil)

	svc := newTestService(repo, exchanger)

	result, err := svc.Login(context.Background(), "js-code")
	require.NoError(t, err)

	assert.Equal(t, "wx-open-id", result.User.AppID)
	assert.Equal(t, "sk", result.SessionKey)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User.Sex)
	assert.Equal(t, 0, *result.User.Sex)
	assert.Equal(t, 1, repo.creates)

	again, err := svc.Login(context.Background(), "js-code")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestLoginTokenCarriesUserIdentity(t *testing.T) {
	exchanger := new(mockExchanger)
	exchanger.On("ExchangeCode", mock.Anything, "js-code").
		Return(&identity.Session{OpenID: "wx-open-id", SessionKey: "sk"}, nil)

	svc := newTestService(&fakeUserRepo{}, exchanger)

	result, err := svc.Login(context.Background(), "js-code")
	require.NoError(t, err)

	claims, err := jwt.NewManager("test-secret", time.Hour).ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID.String(), claims.UserID)
	assert.Equal(t, "wx-open-id", claims.AppID)
}

func TestLoginUpstreamFailure(t *testing.T) {
	exchanger := new(mockExchanger)
	exchanger.On("ExchangeCode", mock.Anything, "bad-code").
		Return(nil, apperror.Upstream("login code rejected", errors.New("errcode 40029")))

	svc := newTestService(&fakeUserRepo{}, exchanger)

	_, err := svc.Login(context.Background(), "bad-code")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUpstream, apperror.KindOf(err))
}
