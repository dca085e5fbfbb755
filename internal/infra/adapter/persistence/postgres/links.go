package postgres

import (
	"context"
	"fmt"
)

// linkTable describes one article association table.
type linkTable struct {
	deleteSQL string
	insertSQL string
}

var (
	regionLinks = linkTable{
		deleteSQL: `DELETE FROM article_regions WHERE article_id = $1`,
		insertSQL: `
INSERT INTO article_regions (article_id, region_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`,
	}
	authorLinks = linkTable{
		deleteSQL: `DELETE FROM article_authors WHERE article_id = $1`,
		insertSQL: `
INSERT INTO article_authors (article_id, author_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`,
	}
)

// replaceLinks drops every link of the article and inserts ids in order.
// Repeated ids collapse into one link.
func replaceLinks(ctx context.Context, db DBTX, t linkTable, articleID int64, ids []int64) error {
	if _, err := db.ExecContext(ctx, t.deleteSQL, articleID); err != nil {
		return fmt.Errorf("delete links: %w", err)
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, err := db.ExecContext(ctx, t.insertSQL, articleID, id); err != nil {
			return fmt.Errorf("insert link %d: %w", id, err)
		}
	}
	return nil
}

// count runs SELECT COUNT(*) against a fixed table name.
func count(ctx context.Context, db DBTX, table string) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
