package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Handlers never pick status codes themselves;
// the response package maps each kind to an envelope code.
type Kind int

const (
	// KindValidation - malformed or un-parseable input field
	KindValidation Kind = iota
	// KindNotFound - record absent on a get/update
	KindNotFound
	// KindUpstream - external identity provider failure
	KindUpstream
	// KindStorage - database or object-store operation failed
	KindStorage
)

// Error is the single error type crossing the service boundary.
// Message is safe to expose; Err holds the underlying cause and is only
// ever logged server-side.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Storage wraps a persistence failure. The message stays generic on
// purpose; err carries the real cause for the server-side log.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors are
// treated as storage failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// MessageOf returns the exposable message for an error chain.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}
