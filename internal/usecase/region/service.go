package region

import (
	"context"
	"fmt"
	"log/slog"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

// Input carries the writable fields of a region.
// Update replaces both fields, so callers always send the complete region.
type Input struct {
	Code string
	Name string
}

// Service provides region management use cases.
type Service struct {
	Repo repository.RegionRepository
}

// List returns every region ordered by id.
func (s *Service) List(ctx context.Context) ([]*entity.Region, error) {
	regions, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// Get returns ErrRegionNotFound when no region has the given id.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Region, error) {
	if id <= 0 {
		return nil, ErrInvalidRegionID
	}
	region, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get region: %w", err)
	}
	if region == nil {
		return nil, &entity.NotFoundError{Entity: "region", ID: id}
	}
	return region, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*entity.Region, error) {
	region := &entity.Region{Code: in.Code, Name: in.Name}
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, region); err != nil {
		return nil, fmt.Errorf("create region: %w", err)
	}
	slog.InfoContext(ctx, "region created", slog.Int64("region_id", region.ID))
	return region, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Region, error) {
	if id <= 0 {
		return nil, ErrInvalidRegionID
	}
	region := &entity.Region{ID: id, Code: in.Code, Name: in.Name}
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, region); err != nil {
		return nil, fmt.Errorf("update region: %w", err)
	}
	return region, nil
}

// Delete removes the region. Articles linked to it lose the link.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidRegionID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete region: %w", err)
	}
	slog.InfoContext(ctx, "region deleted", slog.Int64("region_id", id))
	return nil
}
