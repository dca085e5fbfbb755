package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type AuthorRepo struct {
	db DBTX
}

func NewAuthorRepo(db DBTX) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func (repo *AuthorRepo) Get(ctx context.Context, id int64) (*entity.Author, error) {
	const query = `
SELECT id, first_name, last_name
FROM authors
WHERE id = $1`
	var a entity.Author
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.FirstName, &a.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &a, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.Author, error) {
	const query = `
SELECT id, first_name, last_name
FROM authors
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.Author, 0)
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		authors = append(authors, &a)
	}
	return authors, rows.Err()
}

func (repo *AuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	const query = `
INSERT INTO authors (first_name, last_name)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, author.FirstName, author.LastName).Scan(&author.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AuthorRepo) Update(ctx context.Context, author *entity.Author) error {
	const query = `
UPDATE authors SET
       first_name = $1,
       last_name  = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, author.FirstName, author.LastName, author.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", &entity.NotFoundError{Entity: "author", ID: author.ID})
	}
	return nil
}

func (repo *AuthorRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM authors WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", &entity.NotFoundError{Entity: "author", ID: id})
	}
	return nil
}

func (repo *AuthorRepo) Count(ctx context.Context) (int64, error) {
	return count(ctx, repo.db, "authors")
}
