package domain

import (
	"errors"
	"fmt"
)

// Common errors used throughout the application.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInUse         = errors.New("in use")
	ErrUnavailable   = errors.New("service unavailable")
)

// VetoError carries the verbatim status an extension returned when refusing a
// mutation. The status is propagated to the caller unchanged, never rewrapped
// into one of the sentinel errors above.
type VetoError struct {
	Status int
}

// Error implements the error interface.
func (e *VetoError) Error() string {
	return fmt.Sprintf("extension vetoed request with status %d", e.Status)
}

// APIError represents an error response from the API.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}
