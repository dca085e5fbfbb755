// Package article provides use cases for managing articles.
// Writes resolve nested region/author descriptors and replace the article's
// association sets inside one transaction.
package article

import (
	"fmt"

	"articles-api/internal/domain/entity"
)

var (
	// ErrArticleNotFound matches any missing-article error through errors.Is.
	ErrArticleNotFound = &entity.NotFoundError{Entity: "article"}

	// ErrInvalidArticleID indicates a non-positive article id.
	ErrInvalidArticleID = fmt.Errorf("invalid article ID: %w", entity.ErrInvalidInput)
)
