package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
	"github.com/complyview/complyview/internal/store"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [filename]",
		Short: "Show headline statistics for a report",
		Long: `Summary computes headline numbers from a snapshot: total
requirements, the status breakdown, gap and question counts, and the
average confidence score. With no argument, the most recently written
snapshot is used.

Examples:
  # Summary of the latest report
  complyview summary

  # Summary of a specific snapshot as Markdown with a status pie chart
  complyview summary compliance_report_20240301_090000.json --markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummaryCmd,
	}
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, args []string) error {
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

	_, err = newWriter(output, cfg).WriteSummary(stats.Summarize(rep))
	return err
}

// loadReport loads the snapshot named by the single optional argument,
// or the latest snapshot when none is given.
func loadReport(st *store.Store, args []string) (*model.ComplianceReport, error) {
	if len(args) == 1 {
		rep, err := st.Get(args[0])
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("report not found: %s", args[0])
		}
		return rep, err
	}

	rep, err := st.Latest()
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("no reports found in %s", st.Dir())
	}
	return rep, err
}
