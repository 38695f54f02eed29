package main

import (
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [filename]",
		Short: "Show a report snapshot",
		Long: `Show displays a report snapshot with all of its findings. With no
argument, the most recently written snapshot is shown.

Examples:
  # Show the latest report
  complyview show

  # Show a specific snapshot with full analysis text
  complyview show compliance_report_20240301_090000.json --verbose

  # Export a snapshot as Markdown
  complyview show --markdown -o report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShowCmd,
	}
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, args []string) error {
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

	_, err = newWriter(output, cfg).WriteReport(rep)
	return err
}
