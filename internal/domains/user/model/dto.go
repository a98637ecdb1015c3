package model

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateUserRequest carries the admin-creation payload. Sex arrives from
// clients as a string and must parse to an integer code.
type CreateUserRequest struct {
	Name     *string    `json:"name"`
	Sex      string     `json:"sex"`
	Birthday *time.Time `json:"birthday"`
	Phone    *string    `json:"phone"`
	Email    *string    `json:"email"`
	AppID    string     `json:"app_id"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AppID, validation.Required),
		validation.Field(&r.Sex, validation.Required, is.Int),
		validation.Field(&r.Email, validation.When(r.Email != nil, is.Email)),
	)
}

// ParseSex converts the string-coded sex field. Validate must have
// passed first.
func (r CreateUserRequest) ParseSex() (int, error) {
	return strconv.Atoi(r.Sex)
}

// UpdateUserRequest replaces the mutable profile fields. Absent optional
// fields are stored as null, not kept.
type UpdateUserRequest struct {
	Name     *string    `json:"name"`
	Sex      *string    `json:"sex"`
	Birthday *time.Time `json:"birthday"`
	Phone    *string    `json:"phone"`
	Email    *string    `json:"email"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Sex, validation.When(r.Sex != nil, is.Int)),
		validation.Field(&r.Email, validation.When(r.Email != nil, is.Email)),
	)
}

// ParseSex returns the integer sex code, or nil when the field was absent.
func (r UpdateUserRequest) ParseSex() (*int, error) {
	if r.Sex == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(*r.Sex)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LoginRequest carries the client-side authorization code.
type LoginRequest struct {
	JsCode string `json:"js_code"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.JsCode, validation.Required),
	)
}

// ListQuery is the pagination query for GET /api/user. Pointers keep an
// explicit page=0 distinguishable from an absent parameter.
type ListQuery struct {
	Page         *int `form:"page"`
	PostsPerPage *int `form:"posts_per_page"`
}

// Values resolves the 1-based page number and page size, applying the
// defaults (page 1, 5 per page) and rejecting anything below 1.
func (q ListQuery) Values() (int, int, error) {
	page, perPage := 1, 5
	if q.Page != nil {
		page = *q.Page
	}
	if q.PostsPerPage != nil {
		perPage = *q.PostsPerPage
	}
	if page < 1 {
		return 0, 0, validation.NewError("validation_page", "page must be at least 1")
	}
	if perPage < 1 {
		return 0, 0, validation.NewError("validation_per_page", "posts_per_page must be at least 1")
	}
	return page, perPage, nil
}
