// Package server exposes the compliance report engine over HTTP.
// It serves JSON endpoints for listing snapshots, fetching reports,
// computing summaries and statistics, searching findings, and reading
// cross-snapshot history.
package server
