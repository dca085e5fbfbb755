// Package article provides HTTP handlers for article endpoints.
// Writes accept nested region and author descriptors that either reference an
// existing row by id or carry the fields of a new one.
package article

import (
	"articles-api/internal/domain/entity"
	"articles-api/internal/handler/http/author"
	"articles-api/internal/handler/http/region"
	artUC "articles-api/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
// Regions and Authors are always arrays, never null.
type DTO struct {
	ID      int64        `json:"id"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
	Regions []region.DTO `json:"regions"`
	Authors []author.DTO `json:"authors"`
}

// request is the write payload shared by POST and PUT.
type request struct {
	Title   string             `json:"title"`
	Content *string            `json:"content"`
	Regions []regionDescriptor `json:"regions"`
	Authors []authorDescriptor `json:"authors"`
}

type regionDescriptor struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type authorDescriptor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (req request) input() artUC.Input {
	in := artUC.Input{Title: req.Title}
	if req.Content != nil {
		in.Content = *req.Content
	}
	for _, d := range req.Regions {
		in.Regions = append(in.Regions, artUC.RegionRef{ID: d.ID, Code: d.Code, Name: d.Name})
	}
	for _, d := range req.Authors {
		in.Authors = append(in.Authors, artUC.AuthorRef{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName})
	}
	return in
}

func toDTO(a *entity.Article) DTO {
	out := DTO{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Regions: make([]region.DTO, 0, len(a.Regions)),
		Authors: make([]author.DTO, 0, len(a.Authors)),
	}
	for _, r := range a.Regions {
		out.Regions = append(out.Regions, region.DTO{ID: r.ID, Code: r.Code, Name: r.Name})
	}
	for _, au := range a.Authors {
		out.Authors = append(out.Authors, author.DTO{ID: au.ID, FirstName: au.FirstName, LastName: au.LastName})
	}
	return out
}
