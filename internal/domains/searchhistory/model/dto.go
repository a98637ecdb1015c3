package model

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSearchHistoryRequest carries the logged payload. The owner is
// stamped from the authenticated caller.
type CreateSearchHistoryRequest struct {
	History json.RawMessage `json:"history"`
}

func (r CreateSearchHistoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.History, validation.Required),
	)
}
