package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultReportsDir is the snapshot directory written by the
	// analysis pipeline. "outputs" matches the pipeline's default
	// output location, so a co-located deployment works with no flags.
	DefaultReportsDir = "outputs"

	// DefaultListenAddr is the HTTP API listen address for the serve
	// command.
	DefaultListenAddr = ":8080"

	// DefaultHistoryConcurrency is the number of snapshots loaded in
	// parallel when computing cross-snapshot history. Snapshot loads are
	// small local reads, so a modest limit keeps file descriptors and
	// memory bounded without serializing the work.
	DefaultHistoryConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "complyview"
)

// Config holds all configuration options for ComplyView.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ServerConfig, OutputConfig) for simplicity. The number of
// options is manageable, and nesting would add complexity without
// significant benefit.
type Config struct {
	// ReportsDir is the snapshot directory to read reports from.
	ReportsDir string

	// ListenAddr is the HTTP API listen address in "host:port" format.
	ListenAddr string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONOutput switches CLI output to JSON.
	// Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// MarkdownOutput switches CLI output to GitHub Flavored Markdown
	// with tables and a status pie chart.
	// Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// OutputFile is the output file path for CLI results.
	// When set, output is written to this file instead of stdout.
	OutputFile string

	// HistoryConcurrency is the number of snapshots loaded concurrently
	// by the history command and endpoint.
	HistoryConcurrency int

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches the current directory and then the XDG config
	// directory for .complyview.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ReportsDir:         DefaultReportsDir,
		ListenAddr:         DefaultListenAddr,
		HistoryConcurrency: DefaultHistoryConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for ComplyView.
// On Linux: ~/.config/complyview
// On macOS: ~/Library/Application Support/complyview
// On Windows: %APPDATA%\complyview
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGDataDir returns the XDG data directory for ComplyView.
// This is the fallback snapshot location for deployments that are not
// co-located with the pipeline's outputs directory.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
// Called once after CLI parsing, before any command runs.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return ErrNoReportsDir
	}

	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingOutputFormats
	}

	if c.HistoryConcurrency <= 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// ApplyFile overlays values from a loaded configuration file onto the
// defaults. Flags are applied after this, so the precedence order is
// flags over file over defaults.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.ReportsDir != "" {
		c.ReportsDir = f.ReportsDir
	}
	if f.ListenAddr != "" {
		c.ListenAddr = f.ListenAddr
	}
	if f.HistoryConcurrency > 0 {
		c.HistoryConcurrency = f.HistoryConcurrency
	}
}
