// Package main provides the entry point for the ComplyView CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/complyview/complyview/internal/config"
	"github.com/complyview/complyview/internal/log"
	"github.com/complyview/complyview/internal/report"
	"github.com/complyview/complyview/internal/store"
)

// NewRootCmd creates the root command for ComplyView.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complyview",
		Short: "Compliance report aggregation and search",
		Long: `ComplyView reads compliance report snapshots produced by an analysis
pipeline and makes them explorable: listing, summaries, statistics,
finding search, and cross-snapshot history.

Snapshots are JSON files named compliance_report_<YYYYMMDD_HHMMSS>.json
in the reports directory (default: outputs).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("reports-dir", "r", config.DefaultReportsDir,
		"Directory containing report snapshot files")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .complyview in current or XDG config directory)")
	cmd.PersistentFlags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.PersistentFlags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	// Add subcommands
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig creates a Config from cobra command flags, with values
// from a configuration file applied underneath flag overrides.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not
	// found. If no path specified, silently proceed without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags take precedence over file values, but only when set.
	if cmd.Flags().Changed("reports-dir") {
		cfg.ReportsDir, err = cmd.Flags().GetString("reports-dir")
		if err != nil {
			return nil, err
		}
	} else if cfg.ReportsDir == config.DefaultReportsDir {
		// No explicit directory anywhere. If the co-located default does
		// not exist, fall back to the XDG data directory so a standalone
		// install still finds snapshots placed there.
		if _, statErr := os.Stat(cfg.ReportsDir); os.IsNotExist(statErr) {
			if _, statErr := os.Stat(config.XDGDataDir()); statErr == nil {
				cfg.ReportsDir = config.XDGDataDir()
			}
		}
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.JSONOutput, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewLogger(os.Stderr, verbose)
}

// newStore creates the report store for the configured directory.
func newStore(cfg *config.Config, logger *slog.Logger) *store.Store {
	return store.New(cfg.ReportsDir, store.WithLogger(logger))
}

// openOutput returns the writer results should go to, and a cleanup
// function. When no output file is configured it is the command's
// stdout.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.OutputFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, f.Close, nil
}

// newWriter selects the report writer for the configured output format.
func newWriter(output io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONOutput:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownOutput:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewTextWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
