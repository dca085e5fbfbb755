// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Catalogue gauges (articles, regions, authors)
//   - Article write and nested descriptor resolution counters
//   - Database pool and unit-of-work metrics
//
// All metrics are registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "articles-api/internal/observability/metrics"
//
//	start := time.Now()
//	err := store.WithinTx(ctx, fn)
//	metrics.RecordOperationDuration("article_create", time.Since(start))
package metrics
