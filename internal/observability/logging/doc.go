// Package logging builds the application's log/slog logger.
//
// Records logged with a context (slog.InfoContext and friends) are enriched with
// the request id set by the HTTP middleware and the active OpenTelemetry trace id:
//
//	logger := logging.New(os.Stdout, cfg.Log.Level)
//	slog.SetDefault(logger)
//	slog.InfoContext(ctx, "article created", slog.Int64("article_id", id))
//	// {"level":"INFO","msg":"article created","article_id":1,"request_id":"...","trace_id":"..."}
package logging
