// Package search filters a report's findings by status and free-text query.
//
// Matching is deliberately simple: an exact, case-sensitive status
// comparison and a case-insensitive substring test against the
// concatenated text fields of each finding, lower-cased at query time.
// There is no index and no relevance ranking; per-report finding counts
// are bounded (tens to low hundreds), so a linear scan per call is the
// right tradeoff. Result order always equals the report's finding order.
package search

import (
	"strings"

	"github.com/complyview/complyview/internal/model"
)

// Filter holds the search criteria. Empty fields match everything, and
// both criteria compose with logical AND.
type Filter struct {
	// Query is the free-text query. A finding matches when the
	// lower-cased query occurs as a substring in the finding's
	// searchable text (requirement id, requirement text, analysis,
	// gaps, and auditor questions, space-joined).
	Query string

	// Status restricts results to findings whose status exactly equals
	// this wire value. Case-sensitive, no partial matching; "compliant"
	// does not match COMPLIANT.
	Status string
}

// Findings returns the findings of a report matching the filter, in the
// report's original order. A nil report yields an empty result rather
// than an error; "no report" is only a failure at the lookup layer.
func Findings(report *model.ComplianceReport, filter Filter) []model.Finding {
	if report == nil {
		return []model.Finding{}
	}

	query := strings.ToLower(filter.Query)

	results := make([]model.Finding, 0, len(report.Findings))
	for _, f := range report.Findings {
		if filter.Status != "" && f.Status.String() != filter.Status {
			continue
		}
		if query != "" && !strings.Contains(f.SearchText(), query) {
			continue
		}
		results = append(results, f)
	}

	return results
}
