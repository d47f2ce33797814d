package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// WriteError represents a failed write transaction. Nothing of the write was committed.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrBookmarkNotFound = &NotFoundError{Entity: "bookmark"}
)

// Validation Errors
var (
	ErrURLRequired      = &ValidationError{Field: "url", Message: "url required"}
	ErrTagsRequired     = &ValidationError{Field: "tags", Message: "tags required"}
	ErrInvalidGroupSize = &ValidationError{Field: "group_size", Message: "must be at least 1"}
	ErrInvalidLimit     = &ValidationError{Field: "limit", Message: "must be at least 1"}
	ErrEmptyLookup      = &ValidationError{Message: "one of id, url or title is required"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = errors.New("jwt secret is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsWrite checks if an error is a WriteError
func IsWrite(err error) bool {
	var writeErr *WriteError
	return errors.As(err, &writeErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewWriteError wraps err as a failed write for op
func NewWriteError(op string, err error) error {
	return &WriteError{Op: op, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
