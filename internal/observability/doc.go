// Package observability groups the logging, metrics, tracing and SLO packages.
//
// Subpackages:
//   - logging: slog JSON logger that adds request and trace ids from the context
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
//   - slo: availability and error-rate gauges
//
// Example usage:
//
//	logger := logging.New(os.Stdout, "info")
//	logger.Info("application started")
//
//	metrics.RecordArticleWrite("create", "success")
package observability
