package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account bound to the external identity provider via AppID.
// All profile fields are optional; AppID is the natural key.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      *string    `json:"name"`
	Sex       *int       `json:"sex"`
	Birthday  *time.Time `json:"birthday"`
	Phone     *string    `json:"phone"`
	Email     *string    `json:"email"`
	AppID     string     `json:"app_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ListResult is the paginated listing payload.
type ListResult struct {
	Rows     []User `json:"rows"`
	NumPages int64  `json:"num_pages"`
}

// LoginResult is returned from the login exchange.
type LoginResult struct {
	User       *User  `json:"user"`
	Token      string `json:"token"`
	SessionKey string `json:"session_key"`
}
