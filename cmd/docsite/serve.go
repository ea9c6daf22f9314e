package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jordienr/docsite"
	"github.com/jordienr/docsite/infrastructure/api"
	"github.com/jordienr/docsite/internal/config"
	"github.com/jordienr/docsite/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var (
		envFile  string
		host     string
		port     int
		manifest string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST           Server host to bind to (default: 0.0.0.0)
  PORT           Server port to listen on (default: 8080)
  DATA_DIR       Data directory (default: ~/.docsite)
  DB_URL         Database URL (default: sqlite:///{data_dir}/docsite.db)
  LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT     Log format: pretty, json (default: pretty)
  NAV_MANIFEST   Path to a YAML navigation manifest (default: built-in registry)
  BASE_URL       Public base URL of the API
  CORS_ORIGINS   Comma-separated list of allowed CORS origins
  API_KEYS       Comma-separated list of valid API keys`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port, manifest)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Path to a YAML navigation manifest")

	return cmd
}

func runServe(envFile, host string, port int, manifest string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port, manifest)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	client, err := newClient(cfg, slogger)
	if err != nil {
		return fmt.Errorf("create docsite client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close docsite client", slog.Any("error", err))
		}
	}()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting docsite", attrs...)

	apiServer := api.NewAPIServer(client, api.WithCORSOrigins(cfg.CORSOrigins()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apiServer.ListenAndServe(cfg.Addr())
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// newClient builds a docsite client from the loaded configuration.
func newClient(cfg config.AppConfig, logger *slog.Logger) (*docsite.Client, error) {
	opts := []docsite.Option{
		docsite.WithDatabaseURL(cfg.DBURL()),
		docsite.WithLogger(logger),
	}
	if path := cfg.ManifestPath(); path != "" {
		opts = append(opts, docsite.WithManifestFile(path))
	}
	if keys := cfg.APIKeys(); len(keys) > 0 {
		opts = append(opts, docsite.WithAPIKeys(keys...))
	}
	return docsite.New(opts...)
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int, manifest string) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}
	if manifest != "" {
		opts = append(opts, config.WithManifestPath(manifest))
	}

	return cfg.Apply(opts...)
}
