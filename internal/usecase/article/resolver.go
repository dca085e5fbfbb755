package article

import (
	"context"
	"errors"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

// RegionRef describes one region of a write request.
// A positive ID links the existing region and the other fields are ignored;
// otherwise Code and Name create a new region.
type RegionRef struct {
	ID   int64
	Code string
	Name string
}

// AuthorRef describes one author of a write request, with the same rules as RegionRef.
type AuthorRef struct {
	ID        int64
	FirstName string
	LastName  string
}

// resolveRegions turns refs into persisted regions, keeping the input order.
func resolveRegions(ctx context.Context, repo repository.RegionRepository, refs []RegionRef) ([]*entity.Region, error) {
	out := make([]*entity.Region, 0, len(refs))
	for i, ref := range refs {
		if ref.ID > 0 {
			r, err := repo.Get(ctx, ref.ID)
			if err != nil {
				return nil, fmt.Errorf("regions[%d]: %w", i, err)
			}
			if r == nil {
				return nil, &entity.NotFoundError{Entity: "region", ID: ref.ID}
			}
			metrics.RecordRelatedResolved("region", metrics.OutcomeLinked)
			out = append(out, r)
			continue
		}

		r := &entity.Region{Code: ref.Code, Name: ref.Name}
		if err := r.Validate(); err != nil {
			return nil, prefixField(fmt.Sprintf("regions[%d]", i), err)
		}
		if err := repo.Create(ctx, r); err != nil {
			return nil, fmt.Errorf("regions[%d]: %w", i, err)
		}
		metrics.RecordRelatedResolved("region", metrics.OutcomeCreated)
		out = append(out, r)
	}
	return out, nil
}

// resolveAuthors turns refs into persisted authors, keeping the input order.
func resolveAuthors(ctx context.Context, repo repository.AuthorRepository, refs []AuthorRef) ([]*entity.Author, error) {
	out := make([]*entity.Author, 0, len(refs))
	for i, ref := range refs {
		if ref.ID > 0 {
			a, err := repo.Get(ctx, ref.ID)
			if err != nil {
				return nil, fmt.Errorf("authors[%d]: %w", i, err)
			}
			if a == nil {
				return nil, &entity.NotFoundError{Entity: "author", ID: ref.ID}
			}
			metrics.RecordRelatedResolved("author", metrics.OutcomeLinked)
			out = append(out, a)
			continue
		}

		a := &entity.Author{FirstName: ref.FirstName, LastName: ref.LastName}
		if err := a.Validate(); err != nil {
			return nil, prefixField(fmt.Sprintf("authors[%d]", i), err)
		}
		if err := repo.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("authors[%d]: %w", i, err)
		}
		metrics.RecordRelatedResolved("author", metrics.OutcomeCreated)
		out = append(out, a)
	}
	return out, nil
}

// prefixField qualifies the field of a validation error with its position in the payload.
func prefixField(prefix string, err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return &entity.ValidationError{Field: prefix + "." + ve.Field, Message: ve.Message}
	}
	return err
}
