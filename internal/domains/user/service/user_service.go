package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"collection-backend/internal/domains/user/model"
	"collection-backend/internal/domains/user/repository"
	"collection-backend/internal/infrastructure/identity"
	"collection-backend/internal/shared/apperror"
	"collection-backend/pkg/jwt"
)

type userService struct {
	repo     repository.UserRepository
	identity identity.Exchanger
	tokens   *jwt.Manager
}

func NewUserService(repo repository.UserRepository, identity identity.Exchanger, tokens *jwt.Manager) UserService {
	return &userService{repo: repo, identity: identity, tokens: tokens}
}

// Create inserts a new user and re-reads it by id so server-side defaults
// end up in the response.
func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	sex, err := req.ParseSex()
	if err != nil {
		return nil, apperror.Validation("sex must be an integer code")
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Sex:       &sex,
		Birthday:  req.Birthday,
		Phone:     req.Phone,
		Email:     req.Email,
		AppID:     req.AppID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Storage("failed to create user", err)
	}

	created, err := s.repo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, apperror.Storage("failed to load created user", err)
	}
	if created == nil {
		return nil, apperror.Storage("failed to load created user", nil)
	}
	return created, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage("failed to load user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page, perPage int) (*model.ListResult, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apperror.Storage("failed to count users", err)
	}

	rows, err := s.repo.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, apperror.Storage("failed to list users", err)
	}

	numPages := (total + int64(perPage) - 1) / int64(perPage)
	return &model.ListResult{Rows: rows, NumPages: numPages}, nil
}

// Update replaces the mutable profile fields; optional fields absent from
// the request are cleared.
func (s *userService) Update(ctx context.Context, id uuid.UUID, req model.UpdateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	sex, err := req.ParseSex()
	if err != nil {
		return nil, apperror.Validation("sex must be an integer code")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Storage("failed to load user", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("user not found")
	}

	existing.Name = req.Name
	existing.Sex = sex
	existing.Birthday = req.Birthday
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.UpdatedAt = time.Now().UTC()

	affected, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, apperror.Storage("failed to update user", err)
	}
	if affected == 0 {
		return nil, apperror.NotFound("user not found")
	}
	return existing, nil
}

// Delete is idempotent; a missing id reports zero rows, not an error.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperror.Storage("failed to delete user", err)
	}
	return count, nil
}

// Login exchanges the authorization code, finds or creates the account
// keyed by the provider id, and issues a session token. The created user
// is re-fetched by app_id before answering.
func (s *userService) Login(ctx context.Context, jsCode string) (*model.LoginResult, error) {
	session, err := s.identity.ExchangeCode(ctx, jsCode)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByAppID(ctx, session.OpenID)
	if err != nil {
		return nil, apperror.Storage("failed to load user", err)
	}

	if user == nil {
		now := time.Now().UTC()
		sex := 0
		fresh := &model.User{
			ID:        uuid.New(),
			Sex:       &sex,
			AppID:     session.OpenID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// Two concurrent first logins race here; the unique index on
		// app_id rejects the loser.
		if err := s.repo.Create(ctx, fresh); err != nil {
			return nil, apperror.Storage("failed to create user", err)
		}

		user, err = s.repo.GetByAppID(ctx, session.OpenID)
		if err != nil {
			return nil, apperror.Storage("failed to load user", err)
		}
		if user == nil {
			return nil, apperror.Storage("failed to load created user", nil)
		}
	}

	token, err := s.tokens.GenerateToken(user.ID.String(), user.AppID)
	if err != nil {
		return nil, apperror.Storage("failed to issue token", err)
	}

	return &model.LoginResult{
		User:       user,
		Token:      token,
		SessionKey: session.SessionKey,
	}, nil
}
