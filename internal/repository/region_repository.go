package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

type RegionRepository interface {
	Get(ctx context.Context, id int64) (*entity.Region, error)
	List(ctx context.Context) ([]*entity.Region, error)
	Create(ctx context.Context, region *entity.Region) error
	Update(ctx context.Context, region *entity.Region) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
