// Package pathutil extracts ids from routed requests and normalizes paths for metric labels.
package pathutil

import (
	"fmt"
	"net/http"
	"strconv"

	"articles-api/internal/domain/entity"
)

// ErrInvalidID is returned when the {id} path segment is not a positive integer.
var ErrInvalidID = fmt.Errorf("invalid id: %w", entity.ErrInvalidInput)

// ID parses the {id} wildcard of a ServeMux pattern such as "GET /articles/{id}".
//
//	id, err := pathutil.ID(r)
func ID(r *http.Request) (int64, error) {
	return ParseID(r.PathValue("id"))
}

// ParseID parses a positive int64 id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
