// Command api serves the articles REST API.
//
//	api serve --config config.yaml
//	api migrate up
//	api migrate down
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"articles-api/internal/config"
	"articles-api/internal/infra/db"
	"articles-api/internal/observability/logging"
	"articles-api/internal/observability/tracing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "api",
		Short:        "REST API for articles, regions and authors",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_FILE"),
		"path to a YAML config file (env: CONFIG_FILE)")

	root.AddCommand(newServeCmd(&configPath), newMigrateCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap(*configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := tracing.InitProvider(cfg.Tracing.ServiceName, cfg.Tracing.SampleRatio)
			if err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					logger.Error("failed to shut down tracer provider", slog.Any("error", err))
				}
			}()

			database, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeDatabase(logger, database)

			if err := db.MigrateUp(ctx, database); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			return runServer(ctx, logger, cfg, database, getVersion())
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the database schema",
	}

	run := func(name string, fn func(context.Context, *sql.DB) error) *cobra.Command {
		return &cobra.Command{
			Use:   name,
			Short: "Migrate " + name,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, logger, err := bootstrap(*configPath)
				if err != nil {
					return err
				}
				database, err := openDatabase(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer closeDatabase(logger, database)

				if err := fn(cmd.Context(), database); err != nil {
					return fmt.Errorf("migrate %s: %w", name, err)
				}
				logger.Info("migration finished", slog.String("direction", name))
				return nil
			},
		}
	}

	migrate.AddCommand(run("up", db.MigrateUp), run("down", db.MigrateDown))
	return migrate
}

// bootstrap loads the configuration and installs the default logger.
func bootstrap(configPath string) (*config.AppConfig, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stdout, cfg.Log.Level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func openDatabase(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	database, err := db.Open(ctx, cfg.Database.URL, db.ConnectionConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return database, nil
}

func closeDatabase(logger *slog.Logger, database *sql.DB) {
	if err := database.Close(); err != nil {
		logger.Error("failed to close database", slog.Any("error", err))
	}
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}
