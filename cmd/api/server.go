package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/robfig/cron/v3"

	"articles-api/internal/config"
	hhttp "articles-api/internal/handler/http"
	harticle "articles-api/internal/handler/http/article"
	hauthor "articles-api/internal/handler/http/author"
	hregion "articles-api/internal/handler/http/region"
	"articles-api/internal/handler/http/requestid"
	pgRepo "articles-api/internal/infra/adapter/persistence/postgres"
	"articles-api/internal/observability/metrics"
	"articles-api/internal/observability/slo"
	"articles-api/internal/observability/tracing"
	"articles-api/internal/repository"
	"articles-api/internal/resilience/circuitbreaker"
	artUC "articles-api/internal/usecase/article"
	authorUC "articles-api/internal/usecase/author"
	regionUC "articles-api/internal/usecase/region"
	statsUC "articles-api/internal/usecase/stats"
)

const (
	rateLimitCleanupInterval = 5 * time.Minute
	rateLimitClientTTL       = 10 * time.Minute
	statsJobTimeout          = 30 * time.Second
)

// serverDeps are the collaborators the HTTP handler is built from.
type serverDeps struct {
	Store       repository.TxStore
	DB          *sql.DB
	Breaker     hhttp.BreakerState
	RateLimiter *hhttp.RateLimiter // nil disables rate limiting
	Version     string
}

// setupRoutes registers the resource endpoints and the probes.
func setupRoutes(deps serverDeps) *http.ServeMux {
	mux := http.NewServeMux()

	hregion.Register(mux, regionUC.Service{Repo: deps.Store.Regions()})
	hauthor.Register(mux, authorUC.Service{Repo: deps.Store.Authors()})
	harticle.Register(mux, artUC.Service{Store: deps.Store})

	hhttp.RegisterProbes(mux, &hhttp.HealthHandler{
		DB:          deps.DB,
		Version:     deps.Version,
		Breaker:     deps.Breaker,
		RateLimiter: deps.RateLimiter,
	})
	return mux
}

// applyMiddleware wraps the handler with middleware chain.
// Order: CORS → Request ID → Tracing → Rate Limit → Recovery → Logging → Body Limit → Metrics → Compression
func applyMiddleware(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, limiter *hhttp.RateLimiter) http.Handler {
	mws := []func(http.Handler) http.Handler{
		handlers.CORS(
			handlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", requestid.RequestIDHeader}),
			handlers.ExposedHeaders([]string{requestid.RequestIDHeader}),
		),
		requestid.Middleware,
		tracing.Middleware,
	}
	if limiter != nil {
		mws = append(mws, limiter.Limit)
	}
	mws = append(mws,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.InputValidation(cfg.Server.MaxBodyBytes),
		hhttp.MetricsMiddleware,
		handlers.CompressHandler,
	)
	return hhttp.Chain(handler, mws...)
}

// startStatsJob refreshes the entity gauges, pool stats and SLO gauges on the configured schedule.
// The returned cron must be stopped by the caller.
func startStatsJob(ctx context.Context, logger *slog.Logger, schedule string, svc *statsUC.Service, database *sql.DB) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		jobCtx, cancel := context.WithTimeout(ctx, statsJobTimeout)
		defer cancel()
		svc.Refresh(jobCtx)
		metrics.UpdateDBPoolStats(database.Stats())
		if availability := slo.Publish(); availability < slo.AvailabilitySLO {
			logger.Warn("availability below objective",
				slog.Float64("availability", availability),
				slog.Float64("objective", slo.AvailabilitySLO))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add stats job: %w", err)
	}
	c.Start()
	logger.Info("stats job started", slog.String("schedule", schedule))
	return c, nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig, database *sql.DB, version string) error {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	store := pgRepo.NewStore(breaker)

	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		go limiter.StartCleanup(ctx, rateLimitCleanupInterval, rateLimitClientTTL)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RequestsPerSecond),
			slog.Int("burst", cfg.RateLimit.Burst))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	if cfg.Stats.Schedule != "" {
		c, err := startStatsJob(ctx, logger, cfg.Stats.Schedule, &statsUC.Service{Store: store}, database)
		if err != nil {
			return err
		}
		defer func() { <-c.Stop().Done() }()
	}

	mux := setupRoutes(serverDeps{
		Store:       store,
		DB:          database,
		Breaker:     breaker,
		RateLimiter: limiter,
		Version:     version,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           applyMiddleware(logger, cfg, mux, limiter),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
