package store

import "errors"

// Store errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each return site. This allows callers
// to use errors.Is() for programmatic handling (the HTTP layer maps
// ErrNotFound to 404) while load sites wrap these with file context via
// fmt.Errorf and %w.
var (
	// ErrNotFound is returned when no snapshot matches a request: the
	// snapshot directory is absent, contains no matching files, or a
	// requested identifier does not resolve to an existing, properly
	// prefixed file. The store never falls back to an arbitrary report.
	ErrNotFound = errors.New("report not found")

	// ErrMalformedReport is returned when a snapshot file exists but its
	// JSON cannot be parsed. This is distinct from ErrNotFound: the
	// report is present but unreadable, and only the single operation
	// that touched it fails.
	ErrMalformedReport = errors.New("malformed report file")
)
