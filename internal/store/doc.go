// Package store locates and loads compliance report snapshots from the
// shared snapshot directory.
//
// Snapshots are flat JSON files named compliance_report_<YYYYMMDD_HHMMSS>.json,
// written by the external analysis pipeline and never modified afterwards.
// The store is strictly read-only and performs no caching: every call
// re-reads the directory or file, so repeated calls are idempotent while
// always reflecting the snapshots currently on disk.
//
// Note the two orderings in play: List sorts by the timestamp encoded in
// the filename, while Latest selects by filesystem modification time.
// These can disagree when snapshot files are copied or touched out of
// creation order; both behaviors are deliberate and documented on the
// respective methods.
package store
