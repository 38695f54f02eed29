// Package model defines the core data structures used throughout ComplyView.
//
// This package contains the following main types:
//   - ComplianceReport: One immutable report snapshot produced by the analysis pipeline
//   - Finding: A single requirement-level assessment result within a report
//   - Status: The closed set of assessment outcomes for a finding
//   - ReportDescriptor: A listing entry derived from a snapshot filename
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (store, stats, search, server) need to use
// these types, so centralizing them prevents import cycles.
//
// The models mirror the JSON snapshot format written by the external analysis
// pipeline. This package never writes snapshots; reports are read-only once
// produced.
package model
