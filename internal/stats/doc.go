// Package stats derives aggregate statistics from a compliance report's
// findings.
//
// Two aggregate shapes are produced from the same single pass over the
// findings:
//   - Summary: headline numbers for the dashboard, with a status breakdown
//     that always materializes all four canonical statuses.
//   - Stats: extended numbers, with a sparse by-status map that only
//     contains statuses actually observed, plus confidence buckets and
//     per-finding averages.
//
// The two aggregates treat the zero confidence sentinel differently, and
// deliberately so: the Summary average excludes zero scores (zero means
// "no confidence computed", not "zero confidence"), while the Stats
// confidence buckets classify every finding, placing zero scores in the
// low bucket. This asymmetry matches the report-producing pipeline's
// established semantics and must not be "fixed" unilaterally.
package stats
