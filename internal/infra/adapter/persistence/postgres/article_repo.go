package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type ArticleRepo struct {
	db DBTX
}

func NewArticleRepo(db DBTX) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content
FROM articles
WHERE id = $1`
	a := &entity.Article{}
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Title, &a.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	byID := map[int64]*entity.Article{a.ID: a}
	if err := repo.hydrate(ctx, byID, "WHERE l.article_id = $1", a.ID); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content
FROM articles
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0)
	byID := make(map[int64]*entity.Article)
	for rows.Next() {
		a := &entity.Article{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Content); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	// 関連を読む前にカーソルを閉じる(トランザクション内では同時に1クエリのみ)
	_ = rows.Close()

	if len(articles) == 0 {
		return articles, nil
	}
	if err := repo.hydrate(ctx, byID, ""); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return articles, nil
}

// hydrate fills Regions and Authors of the given articles with one query per
// association. where filters the link table aliased as l.
func (repo *ArticleRepo) hydrate(ctx context.Context, byID map[int64]*entity.Article, where string, args ...interface{}) error {
	for _, a := range byID {
		a.Regions = []*entity.Region{}
		a.Authors = []*entity.Author{}
	}

	regionQuery := `
SELECT l.article_id, r.id, r.code, r.name
FROM article_regions l
INNER JOIN regions r ON r.id = l.region_id
` + where + `
ORDER BY l.article_id, r.id`
	rows, err := repo.db.QueryContext(ctx, regionQuery, args...)
	if err != nil {
		return fmt.Errorf("regions: %w", err)
	}
	for rows.Next() {
		var articleID int64
		var r entity.Region
		if err := rows.Scan(&articleID, &r.ID, &r.Code, &r.Name); err != nil {
			_ = rows.Close()
			return fmt.Errorf("regions: Scan: %w", err)
		}
		if a, ok := byID[articleID]; ok {
			a.Regions = append(a.Regions, &r)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("regions: %w", err)
	}
	_ = rows.Close()

	authorQuery := `
SELECT l.article_id, au.id, au.first_name, au.last_name
FROM article_authors l
INNER JOIN authors au ON au.id = l.author_id
` + where + `
ORDER BY l.article_id, au.id`
	rows, err = repo.db.QueryContext(ctx, authorQuery, args...)
	if err != nil {
		return fmt.Errorf("authors: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var articleID int64
		var au entity.Author
		if err := rows.Scan(&articleID, &au.ID, &au.FirstName, &au.LastName); err != nil {
			return fmt.Errorf("authors: Scan: %w", err)
		}
		if a, ok := byID[articleID]; ok {
			a.Authors = append(a.Authors, &au)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("authors: %w", err)
	}
	return nil
}

// Create inserts the scalar columns and stores the generated id on the article.
// Associations are written separately through ReplaceRegions and ReplaceAuthors.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, article.Title, article.Content).Scan(&article.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title   = $1,
       content = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, article.Title, article.Content, article.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", &entity.NotFoundError{Entity: "article", ID: article.ID})
	}
	return nil
}

// Delete removes the article; its link rows go with it through ON DELETE CASCADE.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", &entity.NotFoundError{Entity: "article", ID: id})
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	return count(ctx, repo.db, "articles")
}

func (repo *ArticleRepo) ReplaceRegions(ctx context.Context, articleID int64, regionIDs []int64) error {
	if err := replaceLinks(ctx, repo.db, regionLinks, articleID, regionIDs); err != nil {
		return fmt.Errorf("ReplaceRegions: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ReplaceAuthors(ctx context.Context, articleID int64, authorIDs []int64) error {
	if err := replaceLinks(ctx, repo.db, authorLinks, articleID, authorIDs); err != nil {
		return fmt.Errorf("ReplaceAuthors: %w", err)
	}
	return nil
}
