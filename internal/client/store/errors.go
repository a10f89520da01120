package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the store could not be reached at all.
	ErrUnavailable = errors.New("store unreachable")

	// ErrUnauthorized means the store rejected the presented credentials.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("not found")
)

// APIError is an application-level rejection carried in the store's error
// payload. Match with errors.As.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store rejected request (%d): %s", e.Status, e.Message)
}
