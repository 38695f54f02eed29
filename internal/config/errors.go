package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoReportsDir is returned when the snapshot directory is empty.
	// The directory itself does not have to exist, but a path must be
	// configured.
	ErrNoReportsDir = errors.New("no reports directory configured")

	// ErrConflictingOutputFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: --json and --markdown cannot be used together")

	// ErrInvalidConcurrency is returned when the history concurrency is
	// not positive. Zero concurrency would mean no snapshots are ever
	// loaded.
	ErrInvalidConcurrency = errors.New("invalid history concurrency: must be positive")
)
