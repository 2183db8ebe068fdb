package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
//
// Every failure leaving the service layer is classified into one of the
// constructors below before it reaches the HTTP boundary.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Violations []string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError reports every violated constraint at once so a client
// can fix all fields in a single round trip.
func NewValidationError(violations []string) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		Message:    "validation failed",
		HTTPStatus: http.StatusBadRequest,
		Violations: violations,
	}
}

// NewInvalidCredentials is returned uniformly for unknown usernames and wrong
// passwords so the response does not leak which one failed.
func NewInvalidCredentials() error {
	return &DomainError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "invalid credentials",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewUnauthenticated rejects requests whose bearer token is missing,
// malformed, tampered with, or expired.
func NewUnauthenticated(message string) error {
	return &DomainError{
		Code:       "UNAUTHENTICATED",
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewForbidden rejects authenticated callers lacking a required role.
func NewForbidden(message string) error {
	return &DomainError{
		Code:       "FORBIDDEN",
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewNotFound reports a missing referenced entity.
func NewNotFound(resource string) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewStorageError surfaces a storage collaborator failure without retrying.
func NewStorageError(err error) error {
	return &DomainError{
		Code:       "STORAGE_ERROR",
		Message:    "storage unavailable",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInternalError wraps unexpected failures.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to a DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFound("resource").(*DomainError)
	}
	return NewStorageError(err).(*DomainError)
}

// MapError converts generic errors to DomainError.
func MapError(err error) error {
	return ToDomainError(err)
}
