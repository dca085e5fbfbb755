// Package author provides HTTP handlers for author endpoints.
package author

import "articles-api/internal/domain/entity"

// DTO represents the JSON structure for author data transfer.
type DTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type request struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func toDTO(a *entity.Author) DTO {
	return DTO{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName}
}
