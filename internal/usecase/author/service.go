package author

import (
	"context"
	"fmt"
	"log/slog"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

// Input carries the writable fields of an author.
type Input struct {
	FirstName string
	LastName  string
}

type Service struct {
	Repo repository.AuthorRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.Author, error) {
	authors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	author, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, &entity.NotFoundError{Entity: "author", ID: id}
	}
	return author, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*entity.Author, error) {
	author := &entity.Author{FirstName: in.FirstName, LastName: in.LastName}
	if err := author.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	slog.InfoContext(ctx, "author created", slog.Int64("author_id", author.ID))
	return author, nil
}

// Update replaces both name fields of the author.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*entity.Author, error) {
	if id <= 0 {
		return nil, ErrInvalidAuthorID
	}
	author := &entity.Author{ID: id, FirstName: in.FirstName, LastName: in.LastName}
	if err := author.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, author); err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	return author, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAuthorID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	slog.InfoContext(ctx, "author deleted", slog.Int64("author_id", id))
	return nil
}
