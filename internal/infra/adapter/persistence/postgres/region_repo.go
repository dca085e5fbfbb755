package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"articles-api/internal/domain/entity"
	"articles-api/internal/repository"
)

type RegionRepo struct {
	db DBTX
}

func NewRegionRepo(db DBTX) repository.RegionRepository {
	return &RegionRepo{db: db}
}

func (repo *RegionRepo) Get(ctx context.Context, id int64) (*entity.Region, error) {
	const query = `
SELECT id, code, name
FROM regions
WHERE id = $1`
	var r entity.Region
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Code, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &r, nil
}

func (repo *RegionRepo) List(ctx context.Context) ([]*entity.Region, error) {
	const query = `
SELECT id, code, name
FROM regions
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	regions := make([]*entity.Region, 0)
	for rows.Next() {
		var r entity.Region
		if err := rows.Scan(&r.ID, &r.Code, &r.Name); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		regions = append(regions, &r)
	}
	return regions, rows.Err()
}

// Create inserts the region and stores the generated id on it.
func (repo *RegionRepo) Create(ctx context.Context, region *entity.Region) error {
	const query = `
INSERT INTO regions (code, name)
VALUES ($1, $2)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, region.Code, region.Name).Scan(&region.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *RegionRepo) Update(ctx context.Context, region *entity.Region) error {
	const query = `
UPDATE regions SET
       code = $1,
       name = $2
WHERE id = $3`
	res, err := repo.db.ExecContext(ctx, query, region.Code, region.Name, region.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", &entity.NotFoundError{Entity: "region", ID: region.ID})
	}
	return nil
}

func (repo *RegionRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM regions WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", &entity.NotFoundError{Entity: "region", ID: id})
	}
	return nil
}

func (repo *RegionRepo) Count(ctx context.Context) (int64, error) {
	return count(ctx, repo.db, "regions")
}
