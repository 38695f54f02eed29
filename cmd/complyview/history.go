package main

import (
	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/config"
	"github.com/complyview/complyview/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show summary numbers across all snapshots",
		Long: `History computes the headline summary for every snapshot in the
reports directory, newest first. Snapshots are loaded concurrently;
malformed files are skipped with a warning rather than failing the
whole listing.

Examples:
  # Compliance trend across all snapshots
  complyview history

  # Raise the parallel load limit for large directories
  complyview history --concurrency 16 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("concurrency", "C", config.DefaultHistoryConcurrency,
		"Number of snapshots loaded in parallel")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("concurrency") {
		cfg.HistoryConcurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := setupLogger(cfg.Verbose)
	st := newStore(cfg, logger)

	collector := history.NewCollector(st,
		history.WithConcurrency(cfg.HistoryConcurrency),
		history.WithLogger(logger),
	)

	entries, err := collector.Collect(cmd.Context())
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort cleanup

	_, err = newWriter(output, cfg).WriteHistory(entries)
	return err
}
