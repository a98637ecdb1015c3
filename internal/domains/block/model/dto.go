package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBlockRequest carries the new-block payload. The owner is taken
// from the authenticated caller, never from the body.
type CreateBlockRequest struct {
	Context              *string  `json:"context"`
	Imgs                 []string `json:"imgs"`
	Location             *string  `json:"location"`
	LatitudeAndLongitude *string  `json:"latitude_and_longitude"`
	Draft                *bool    `json:"draft"`
}

func (r CreateBlockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Imgs, validation.Each(is.URL)),
	)
}

// UpdateBlockRequest replaces every mutable field; absent optional
// fields are stored as null. The owner and timestamps are not mutable.
type UpdateBlockRequest struct {
	Context              *string  `json:"context"`
	Imgs                 []string `json:"imgs"`
	Location             *string  `json:"location"`
	LatitudeAndLongitude *string  `json:"latitude_and_longitude"`
	Draft                *bool    `json:"draft"`
}

func (r UpdateBlockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Imgs, validation.Each(is.URL)),
	)
}

// ListQuery is the pagination query for GET /api/block.
type ListQuery struct {
	Page         *int `form:"page"`
	PostsPerPage *int `form:"posts_per_page"`
}

// Values resolves the 1-based page and page size with defaults, rejecting
// anything below 1.
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
