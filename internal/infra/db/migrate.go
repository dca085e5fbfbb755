package db

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order by MigrateUp. Every statement is idempotent.
// Ids are BIGINT so any positive int64 from a path or descriptor can be bound.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS regions (
    id   BIGSERIAL PRIMARY KEY,
    code VARCHAR(35)  NOT NULL,
    name VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS authors (
    id         BIGSERIAL PRIMARY KEY,
    first_name VARCHAR(255) NOT NULL,
    last_name  VARCHAR(255) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS articles (
    id      BIGSERIAL PRIMARY KEY,
    title   VARCHAR(255) NOT NULL,
    content TEXT NOT NULL DEFAULT ''
)`,
	// 関連テーブル: 削除された Region/Author は記事から自動的に外れる
	`CREATE TABLE IF NOT EXISTS article_regions (
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    region_id  BIGINT NOT NULL REFERENCES regions(id) ON DELETE CASCADE,
    PRIMARY KEY (article_id, region_id)
)`,
	`CREATE TABLE IF NOT EXISTS article_authors (
    article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_id  BIGINT NOT NULL REFERENCES authors(id) ON DELETE CASCADE,
    PRIMARY KEY (article_id, author_id)
)`,
	`CREATE INDEX IF NOT EXISTS idx_article_regions_region_id ON article_regions(region_id)`,
	`CREATE INDEX IF NOT EXISTS idx_article_authors_author_id ON article_authors(author_id)`,
}

// dropSchema removes everything schema creates, link tables first.
var dropSchema = []string{
	`DROP TABLE IF EXISTS article_authors`,
	`DROP TABLE IF EXISTS article_regions`,
	`DROP TABLE IF EXISTS articles`,
	`DROP TABLE IF EXISTS authors`,
	`DROP TABLE IF EXISTS regions`,
}

// MigrateUp creates the tables and indexes the service needs.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, schema)
}

// MigrateDown drops every table created by MigrateUp.
// Use with caution: this deletes all data.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, dropSchema)
}

func execAll(ctx context.Context, db *sql.DB, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
