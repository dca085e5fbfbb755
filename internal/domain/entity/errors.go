package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed as a match so callers can test for any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// NotFoundError reports a missing entity of a given kind.
// A NotFoundError with a zero ID acts as a per-entity sentinel:
// errors.Is matches it against any NotFoundError of the same Entity.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error returns a message such as "region 7 not found".
func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Is matches ErrNotFound and NotFoundError sentinels of the same entity.
func (e *NotFoundError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	var nf *NotFoundError
	if !errors.As(target, &nf) {
		return false
	}
	return nf.Entity == e.Entity && (nf.ID == 0 || nf.ID == e.ID)
}
