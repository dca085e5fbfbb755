package repository

import (
	"context"

	"articles-api/internal/domain/entity"
)

// ArticleRepository persists articles and their region/author association sets.
// Get and List return articles with Regions and Authors hydrated, ordered by related id.
type ArticleRepository interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	List(ctx context.Context) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	// ReplaceRegions makes regionIDs the complete region set of the article.
	ReplaceRegions(ctx context.Context, articleID int64, regionIDs []int64) error
	// ReplaceAuthors makes authorIDs the complete author set of the article.
	ReplaceAuthors(ctx context.Context, articleID int64, authorIDs []int64) error
}
