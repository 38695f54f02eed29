package main

import (
	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/stats"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [filename]",
		Short: "Show extended statistics for a report",
		Long: `Stats computes extended statistics from a snapshot: per-status
counts, confidence buckets (high >= 0.8, medium >= 0.6, low below), and
gap and question totals with per-finding averages. With no argument,
the most recently written snapshot is used.

Examples:
  # Terminal statistics for the latest report
  complyview stats

  # Machine-readable statistics for a specific snapshot
  complyview stats compliance_report_20240301_090000.json --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatsCmd,
	}
}

// runStatsCmd executes the stats command.
func runStatsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	st := newStore(cfg, logger)

	rep, err := loadReport(st, args)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort cleanup

	_, err = newWriter(output, cfg).WriteStats(stats.Compute(rep))
	return err
}
