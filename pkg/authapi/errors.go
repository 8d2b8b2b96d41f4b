package authapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrConflict       = errors.New("account already exists")
	ErrBackend        = errors.New("auth backend rejected the request")
	ErrUnavailable    = errors.New("auth backend unavailable")
	ErrInvalidBaseURL = errors.New("invalid auth backend URL")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("auth backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("auth backend returned status %d: %s", e.StatusCode, e.Description)
}

// Unwrap maps the status to a package sentinel.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrBackend
	}
}
