package main

import (
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available report snapshots",
		Long: `List shows the report snapshots in the reports directory, newest
first. Only files named compliance_report_<YYYYMMDD_HHMMSS>.json with a
parseable timestamp are listed.

Examples:
  # List snapshots in the default directory
  complyview list

  # List snapshots from another directory as JSON
  complyview list -r /var/lib/pipeline/outputs --json`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	st := newStore(cfg, logger)

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort cleanup

	_, err = newWriter(output, cfg).WriteListing(st.List())
	return err
}
