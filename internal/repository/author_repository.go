package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

type AuthorRepository interface {
	Get(ctx context.Context, id int64) (*entity.Author, error)
	List(ctx context.Context) ([]*entity.Author, error)
	Create(ctx context.Context, author *entity.Author) error
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
