// Package author provides use cases for managing authors.
package author

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

var (
	// ErrAuthorNotFound matches any missing-author error through errors.Is.
	ErrAuthorNotFound = &entity.NotFoundError{Entity: "author"}

	// ErrInvalidAuthorID indicates a non-positive author id.
	ErrInvalidAuthorID = fmt.Errorf("invalid author ID: %w", entity.ErrInvalidInput)
)
