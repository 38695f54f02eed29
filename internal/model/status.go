package model

// Status represents the assessment outcome of a single finding.
// It is assigned by the external analysis pipeline; this application
// never transitions a finding from one status to another.
//
// Design decision: We use iota-based constants rather than raw strings
// so the compiler catches typos and switches can be exhaustive. The zero
// value is StatusError, which makes "absent or unknown status counts as
// ERROR" fall out of JSON decoding without special cases.
type Status int

const (
	// StatusError indicates the pipeline could not complete the assessment.
	// This is the default for findings whose status is missing or unrecognized.
	StatusError Status = iota

	// StatusCompliant indicates the requirement is satisfied.
	StatusCompliant

	// StatusNeedsReview indicates the assessment is uncertain and a human
	// auditor must review the finding before it can be accepted.
	StatusNeedsReview

	// StatusNonCompliant indicates the requirement is not satisfied.
	StatusNonCompliant
)

// Statuses lists all canonical statuses in their conventional display order.
// Summary breakdowns materialize every entry of this list, even when zero.
var Statuses = []Status{StatusCompliant, StatusNeedsReview, StatusNonCompliant, StatusError}

// String returns the canonical wire representation of the status.
func (s Status) String() string {
	switch s {
	case StatusCompliant:
		return "COMPLIANT"
	case StatusNeedsReview:
		return "NEEDS_REVIEW"
	case StatusNonCompliant:
		return "NON_COMPLIANT"
	default:
		return "ERROR"
	}
}

// ParseStatus converts a wire string to a Status.
// Unknown values map to StatusError rather than failing, because report
// snapshots are produced externally and must never abort a read operation.
func ParseStatus(s string) Status {
	switch s {
	case "COMPLIANT":
		return StatusCompliant
	case "NEEDS_REVIEW":
		return StatusNeedsReview
	case "NON_COMPLIANT":
		return StatusNonCompliant
	default:
		return StatusError
	}
}

// MarshalText implements encoding.TextMarshaler.
// encoding/json uses this for both struct fields and map keys, so
// status_breakdown maps serialize with the canonical uppercase names.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It never returns an error; unrecognized input becomes StatusError.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}
