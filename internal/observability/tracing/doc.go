// Package tracing provides OpenTelemetry tracing integration.
//
// InitProvider installs the SDK tracer provider at startup, Middleware opens a
// server span per HTTP request, and StartSpan is used by the use cases for
// the article write units of work.
//
//	shutdown, err := tracing.InitProvider("articles-api", 1.0)
//	defer shutdown(ctx)
package tracing
