// Package postgres implements the repository interfaces on top of database/sql
// with the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"articles-api/internal/repository"
)

// DBTX is the subset of *sql.DB, *sql.Tx and the circuit-breaker wrapper the repositories use.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Conn is a DBTX that can open transactions.
type Conn interface {
	DBTX
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Store hands out repositories bound to one connection pool.
type Store struct {
	conn Conn
}

var _ repository.TxStore = (*Store)(nil)

func NewStore(conn Conn) *Store {
	return &Store{conn: conn}
}

func (s *Store) Regions() repository.RegionRepository   { return NewRegionRepo(s.conn) }
func (s *Store) Authors() repository.AuthorRepository   { return NewAuthorRepo(s.conn) }
func (s *Store) Articles() repository.ArticleRepository { return NewArticleRepo(s.conn) }

// WithinTx runs fn with repositories bound to a single READ COMMITTED transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) (err error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("WithinTx: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txStore{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.ErrorContext(ctx, "transaction rollback failed",
				slog.Any("error", rbErr),
				slog.Any("cause", err))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("WithinTx: commit: %w", err)
	}
	return nil
}

type txStore struct {
	tx *sql.Tx
}

func (s txStore) Regions() repository.RegionRepository   { return NewRegionRepo(s.tx) }
func (s txStore) Authors() repository.AuthorRepository   { return NewAuthorRepo(s.tx) }
func (s txStore) Articles() repository.ArticleRepository { return NewArticleRepo(s.tx) }
