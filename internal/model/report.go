package model

import "strings"

// ComplianceReport is one report snapshot as written by the external
// analysis pipeline. Reports are immutable once written; every component
// in this application treats them as read-only input.
//
// Design decision: We mirror the snapshot JSON format directly rather
// than translating it into an internal representation. The format is the
// contract with the producing pipeline, and keeping the struct 1:1 with
// the wire shape means a loaded report can be re-serialized without loss.
type ComplianceReport struct {
	// Metadata holds report-level information. At minimum it contains
	// "generated_at"; the pipeline may add arbitrary extra keys, which
	// are preserved.
	Metadata Metadata `json:"metadata"`

	// Findings is the ordered sequence of requirement assessments.
	// The order is canonical: every component that returns a subset of
	// findings preserves it.
	Findings []Finding `json:"findings"`
}

// Metadata is the report-level metadata mapping.
//
// Design decision: We keep this as a map rather than a fixed struct so
// unknown keys written by the pipeline survive a load/serve round trip.
// Only generated_at has a consumer in this application.
type Metadata map[string]any

// GeneratedAt returns the pipeline's generation timestamp, or the empty
// string when the key is absent or not a string. The value is passed
// through verbatim; this application never parses it.
func (m Metadata) GeneratedAt() string {
	s, _ := m["generated_at"].(string)
	return s
}

// Finding is a single requirement-level compliance assessment.
type Finding struct {
	// RequirementID identifies the regulatory requirement. Unique within
	// a report but treated as an opaque string.
	RequirementID string `json:"requirement_id"`

	// RequirementText is the regulatory clause text being assessed.
	RequirementText string `json:"requirement_text"`

	// Status is the assessment outcome. Absent or unrecognized wire
	// values decode to StatusError.
	Status Status `json:"status"`

	// Analysis is the free-text assessment narrative.
	Analysis string `json:"analysis"`

	// GapsIdentified lists compliance shortfalls found for this requirement.
	GapsIdentified []string `json:"gaps_identified"`

	// AuditorQuestions lists follow-up questions surfaced for human review.
	AuditorQuestions []string `json:"auditor_questions"`

	// ConfidenceScore is the pipeline's certainty estimate in [0, 1].
	// Zero is a sentinel meaning "no confidence computed" and is excluded
	// from summary averaging.
	ConfidenceScore float64 `json:"confidence_score"`
}

// SearchText returns the lower-cased concatenation of all searchable
// fields, space-joined in a fixed order. Free-text queries match against
// this string.
func (f Finding) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		f.RequirementID,
		f.RequirementText,
		f.Analysis,
		strings.Join(f.GapsIdentified, " "),
		strings.Join(f.AuditorQuestions, " "),
	}, " "))
}
