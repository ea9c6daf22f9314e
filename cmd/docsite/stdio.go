package main

import (
	"fmt"
	"log/slog"

	"github.com/jordienr/docsite/internal/log"
	"github.com/jordienr/docsite/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This allows AI assistants to browse the documentation navigation, the
reference registry, and page metadata.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	client, err := newClient(cfg, slogger)
	if err != nil {
		return fmt.Errorf("create docsite client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close docsite client", slog.Any("error", err))
		}
	}()

	mcpServer := mcp.NewServer(client.Navigation, client.References, client.Pages, version, slogger)
	return mcpServer.ServeStdio()
}
