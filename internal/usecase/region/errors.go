// Package region provides use cases for managing regions.
package region

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

var (
	// ErrRegionNotFound matches any missing-region error through errors.Is.
	ErrRegionNotFound = &entity.NotFoundError{Entity: "region"}

	// ErrInvalidRegionID indicates a non-positive region id.
	ErrInvalidRegionID = fmt.Errorf("invalid region ID: %w", entity.ErrInvalidInput)
)
