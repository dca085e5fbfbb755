// Package stats computes catalogue totals for the metrics gauges.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"articles-api/internal/observability/metrics"
	"articles-api/internal/repository"
)

// Service counts entities through the store.
type Service struct {
	Store repository.Store
}

// Snapshot counts articles, regions and authors concurrently.
func (s *Service) Snapshot(ctx context.Context) (metrics.Totals, error) {
	var t metrics.Totals
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		t.Articles, err = s.Store.Articles().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		t.Regions, err = s.Store.Regions().Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		t.Authors, err = s.Store.Authors().Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return metrics.Totals{}, fmt.Errorf("stats snapshot: %w", err)
	}
	return t, nil
}

// Refresh takes a snapshot and publishes it to the gauges.
// It is meant to be scheduled; failures are logged and the previous values kept.
func (s *Service) Refresh(ctx context.Context) {
	t, err := s.Snapshot(ctx)
	if err != nil {
		slog.WarnContext(ctx, "stats refresh failed", slog.Any("error", err))
		return
	}
	metrics.UpdateTotals(t)
	slog.DebugContext(ctx, "stats refreshed",
		slog.Int64("articles", t.Articles),
		slog.Int64("regions", t.Regions),
		slog.Int64("authors", t.Authors))
}
