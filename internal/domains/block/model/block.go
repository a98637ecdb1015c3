package model

import (
	"time"

	"github.com/google/uuid"
)

// Block is a user-authored post. Pid references the owning user's id and
// is stamped at creation from the authenticated caller. Imgs holds the
// public URLs of attached pictures in upload order.
type Block struct {
	ID                   uuid.UUID `json:"id"`
	Pid                  *string   `json:"pid"`
	Context              *string   `json:"context"`
	Imgs                 []string  `json:"imgs"`
	Location             *string   `json:"location"`
	LatitudeAndLongitude *string   `json:"latitude_and_longitude"`
	Draft                *bool     `json:"draft"`
	CreateTime           time.Time `json:"create_time"`
	UpdateTime           time.Time `json:"update_time"`
}

// ListResult is the paginated listing payload.
type ListResult struct {
	Rows     []Block `json:"rows"`
	NumPages int64   `json:"num_pages"`
}
