package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/log"
	"github.com/complyview/complyview/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report API over HTTP",
		Long: `Serve starts an HTTP server exposing the report engine as a JSON API:

  GET /api/reports            snapshot listing
  GET /api/report/{filename}  a single report
  GET /api/latest             the most recently written report
  GET /api/summary            headline statistics for the latest report
  GET /api/stats              extended statistics for the latest report
  GET /api/search?q=&status=  findings matching query and status
  GET /api/history            per-snapshot summaries, newest first

Examples:
  # Serve the default outputs directory on :8080
  complyview serve

  # Serve another directory on a custom address with debug logging
  complyview serve -r /var/lib/pipeline/outputs --addr :9090 -v`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", "",
		"Listen address (default :8080, or listen_addr from the config file)")
	cmd.Flags().Bool("log-json", false,
		"Emit logs as JSON lines instead of text")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr, err = cmd.Flags().GetString("addr")
		if err != nil {
			return err
		}
	}

	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	if logJSON {
		logger = log.NewJSONLogger(os.Stderr, cfg.Verbose)
	}
	slog.SetDefault(logger)

	st := newStore(cfg, logger)
	collector := history.NewCollector(st,
		history.WithConcurrency(cfg.HistoryConcurrency),
		history.WithLogger(logger),
	)
	srv := server.New(st,
		server.WithAddr(cfg.ListenAddr),
		server.WithLogger(logger),
		server.WithCollector(collector),
	)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, stopping...")
		cancel()
	}()

	return srv.ListenAndServe(ctx)
}
