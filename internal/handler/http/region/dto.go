// Package region provides HTTP handlers for region endpoints.
package region

import "articles-api/internal/domain/entity"

// DTO represents the JSON structure for region data transfer.
type DTO struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// request is the write payload. A body "id" is accepted by the schema and ignored.
type request struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func toDTO(r *entity.Region) DTO {
	return DTO{ID: r.ID, Code: r.Code, Name: r.Name}
}
