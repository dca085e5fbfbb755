package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"articles-api/internal/domain/entity"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/repository"
)

// Input is the desired state of an article.
// Regions and Authors replace the current association sets; nil or empty clears them.
type Input struct {
	Title   string
	Content string
	Regions []RegionRef
	Authors []AuthorRef
}

// Service provides article management use cases.
type Service struct {
	Store repository.TxStore
}

// List returns every article with its regions and authors.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Store.Articles().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get returns ErrInvalidArticleID for a non-positive id and
// ErrArticleNotFound when the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article, err := s.Store.Articles().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, &entity.NotFoundError{Entity: "article", ID: id}
	}
	return article, nil
}

// Create stores a new article, resolves its nested regions and authors and links them.
// Nothing is persisted when any step fails.
func (s *Service) Create(ctx context.Context, in Input) (out *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.create", inputAttrs(in)...)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		metrics.RecordArticleWrite("create", writeResult(err))
	}()

	article := &entity.Article{Title: in.Title, Content: in.Content}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.Store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Articles().Create(ctx, article); err != nil {
			return err
		}
		if err := replaceAssociations(ctx, tx, article.ID, in); err != nil {
			return err
		}
		loaded, err := reload(ctx, tx, article.ID)
		if err != nil {
			return err
		}
		out = loaded
		return nil
	})
	metrics.RecordOperationDuration("article_create", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	span.SetAttributes(attribute.Int64("article.id", out.ID))
	slog.InfoContext(ctx, "article created",
		slog.Int64("article_id", out.ID),
		slog.Int("regions", len(out.Regions)),
		slog.Int("authors", len(out.Authors)))
	return out, nil
}

// Update overwrites the scalar fields of article id and replaces both association sets.
func (s *Service) Update(ctx context.Context, id int64, in Input) (out *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.update",
		append(inputAttrs(in), attribute.Int64("article.id", id))...)
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		metrics.RecordArticleWrite("update", writeResult(err))
	}()

	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	article := &entity.Article{ID: id, Title: in.Title, Content: in.Content}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.Store.WithinTx(ctx, func(tx repository.Store) error {
		if err := tx.Articles().Update(ctx, article); err != nil {
			return err
		}
		if err := replaceAssociations(ctx, tx, id, in); err != nil {
			return err
		}
		loaded, err := reload(ctx, tx, id)
		if err != nil {
			return err
		}
		out = loaded
		return nil
	})
	metrics.RecordOperationDuration("article_update", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	slog.InfoContext(ctx, "article updated",
		slog.Int64("article_id", id),
		slog.Int("regions", len(out.Regions)),
		slog.Int("authors", len(out.Authors)))
	return out, nil
}

// Delete removes the article together with its association rows.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	defer func() { metrics.RecordArticleWrite("delete", writeResult(err)) }()

	if id <= 0 {
		return ErrInvalidArticleID
	}
	if err := s.Store.Articles().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	slog.InfoContext(ctx, "article deleted", slog.Int64("article_id", id))
	return nil
}

func replaceAssociations(ctx context.Context, tx repository.Store, articleID int64, in Input) error {
	regions, err := resolveRegions(ctx, tx.Regions(), in.Regions)
	if err != nil {
		return err
	}
	authors, err := resolveAuthors(ctx, tx.Authors(), in.Authors)
	if err != nil {
		return err
	}

	linked := &entity.Article{Regions: regions, Authors: authors}
	if err := tx.Articles().ReplaceRegions(ctx, articleID, linked.RegionIDs()); err != nil {
		return err
	}
	return tx.Articles().ReplaceAuthors(ctx, articleID, linked.AuthorIDs())
}

// reload reads the article back so the result carries the persisted association order.
func reload(ctx context.Context, tx repository.Store, id int64) (*entity.Article, error) {
	article, err := tx.Articles().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &entity.NotFoundError{Entity: "article", ID: id}
	}
	return article, nil
}

func inputAttrs(in Input) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("article.regions", len(in.Regions)),
		attribute.Int("article.authors", len(in.Authors)),
	}
}

func writeResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, entity.ErrValidationFailed), errors.Is(err, entity.ErrInvalidInput):
		return metrics.ResultInvalid
	case errors.Is(err, entity.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}
