package stats

import "github.com/complyview/complyview/internal/model"

// Summary holds the headline statistics for a single report.
type Summary struct {
	// TotalRequirements is the number of findings in the report.
	TotalRequirements int `json:"total_requirements"`

	// StatusBreakdown maps every canonical status to its count. All four
	// statuses are always present, so the sum of the values equals
	// TotalRequirements even for empty reports.
	StatusBreakdown map[model.Status]int `json:"status_breakdown"`

	// TotalGaps is the number of identified gaps across all findings.
	TotalGaps int `json:"total_gaps"`

	// TotalQuestions is the number of auditor questions across all findings.
	TotalQuestions int `json:"total_questions"`

	// AverageConfidence is the mean confidence over findings with a
	// positive score, rounded to two decimals. Zero when no finding has
	// a computed confidence.
	AverageConfidence float64 `json:"average_confidence"`

	// Timestamp is the report's generated_at metadata, passed through
	// verbatim; empty when absent.
	Timestamp string `json:"timestamp"`
}

// Summarize computes the headline statistics for a report.
//
// The status breakdown starts from all four canonical statuses at zero
// and increments per finding, so callers can rely on every key being
// present. Findings with a zero confidence score are excluded from the
// average entirely; zero is the pipeline's "no confidence computed"
// sentinel, not an actual score.
func Summarize(report *model.ComplianceReport) Summary {
	t := foldFindings(report.Findings)

	breakdown := make(map[model.Status]int, len(model.Statuses))
	for _, status := range model.Statuses {
		breakdown[status] = t.statusCounts[status]
	}

	var avg float64
	if t.confidenceCount > 0 {
		avg = round2(t.confidenceSum / float64(t.confidenceCount))
	}

	return Summary{
		TotalRequirements: t.total,
		StatusBreakdown:   breakdown,
		TotalGaps:         t.totalGaps,
		TotalQuestions:    t.totalQuestions,
		AverageConfidence: avg,
		Timestamp:         report.Metadata.GeneratedAt(),
	}
}
