package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SearchHistory is one logged search event. History is an arbitrary
// client-defined JSON payload kept opaque by the server.
type SearchHistory struct {
	ID         uuid.UUID       `json:"id"`
	UID        *uuid.UUID      `json:"uid"`
	History    json.RawMessage `json:"history"`
	CreateTime time.Time       `json:"create_time"`
	UpdateTime time.Time       `json:"update_time"`
}

// ListResult wraps the caller's history rows.
type ListResult struct {
	Rows []SearchHistory `json:"rows"`
}
