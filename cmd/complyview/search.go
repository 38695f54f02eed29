package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/search"
	"github.com/complyview/complyview/internal/store"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search findings in the latest report",
		Long: `Search filters the findings of the most recently written snapshot.
The query is matched case-insensitively against the requirement ID and
text, the analysis, the identified gaps, and the auditor questions.
Status filtering uses the canonical status names: COMPLIANT,
NON_COMPLIANT, NEEDS_REVIEW, ERROR.

When no snapshot exists, search reports zero findings rather than an
error.

Examples:
  # Find findings mentioning quarantine
  complyview search quarantine

  # All non-compliant findings
  complyview search --status NON_COMPLIANT

  # Combine query and status, output JSON
  complyview search tooling --status NEEDS_REVIEW --json`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearchCmd,
	}

	cmd.Flags().StringP("status", "s", "",
		"Filter by canonical status name (e.g. NON_COMPLIANT)")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	status, err := cmd.Flags().GetString("status")
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Verbose)
	st := newStore(cfg, logger)

	findings := []model.Finding{}
	rep, err := st.Latest()
	switch {
	case err == nil:
		findings = search.Findings(rep, search.Filter{
			Query:  strings.Join(args, " "),
			Status: status,
		})
	case errors.Is(err, store.ErrNotFound):
		// No snapshot yet: an empty result, not a failure.
		logger.Debug("no report snapshots to search", "dir", st.Dir())
	default:
		return err
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best effort cleanup

	_, err = newWriter(output, cfg).WriteFindings(findings)
	return err
}
