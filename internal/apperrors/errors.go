// Package apperrors defines the error taxonomy surfaced by the API:
// validation, conflict, authentication and not-found. Handlers map these
// to HTTP status codes with errors.As; everything else is a 500.
package apperrors

import (
	"errors"
	"net/http"
)

// ValidationError indicates a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a uniqueness violation (duplicate username/email).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthenticationError indicates bad credentials or an invalid/expired token.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// NotFoundError indicates a resource that is absent or not owned by the
// caller. The two cases are deliberately indistinguishable.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Validation builds a ValidationError.
func Validation(msg string) error { return &ValidationError{Message: msg} }

// Conflict builds a ConflictError.
func Conflict(msg string) error { return &ConflictError{Message: msg} }

// Authentication builds an AuthenticationError.
func Authentication(msg string) error { return &AuthenticationError{Message: msg} }

// NotFound builds a NotFoundError.
func NotFound(msg string) error { return &NotFoundError{Message: msg} }

// Status returns the HTTP status code for err, unwrapping as needed.
func Status(err error) int {
	var (
		validation *ValidationError
		conflict   *ConflictError
		auth       *AuthenticationError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &auth):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
