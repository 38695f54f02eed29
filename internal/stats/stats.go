package stats

import "github.com/complyview/complyview/internal/model"

// Stats holds the extended statistics for a single report.
type Stats struct {
	// Total is the number of findings in the report.
	Total int `json:"total"`

	// ByStatus maps observed statuses to their counts. Unlike the
	// Summary breakdown, statuses with no findings do not appear.
	ByStatus map[model.Status]int `json:"by_status"`

	// ByConfidence buckets every finding by its confidence score.
	ByConfidence ConfidenceBuckets `json:"by_confidence"`

	// Gaps aggregates identified gaps across findings.
	Gaps CountStats `json:"gaps"`

	// Questions aggregates auditor questions across findings.
	Questions CountStats `json:"questions"`
}

// ConfidenceBuckets counts findings per confidence band. The three
// buckets are mutually exclusive and cover all findings, including those
// with the zero "not computed" sentinel, which land in Low.
type ConfidenceBuckets struct {
	// High counts findings with confidence >= 0.8.
	High int `json:"high"`

	// Medium counts findings with 0.6 <= confidence < 0.8.
	Medium int `json:"medium"`

	// Low counts findings with confidence < 0.6.
	Low int `json:"low"`
}

// CountStats is a total with its per-finding average.
type CountStats struct {
	// Total is the summed count across all findings.
	Total int `json:"total"`

	// AvgPerFinding is Total divided by the finding count, rounded to
	// two decimals; 0 for an empty report.
	AvgPerFinding float64 `json:"avg_per_finding"`
}

// Compute derives the extended statistics for a report.
//
// The by-status map is built dynamically from observed statuses only;
// consumers that need the fixed four-key shape should use Summarize.
func Compute(report *model.ComplianceReport) Stats {
	t := foldFindings(report.Findings)

	byStatus := make(map[model.Status]int, len(t.statusCounts))
	for status, count := range t.statusCounts {
		byStatus[status] = count
	}

	return Stats{
		Total:    t.total,
		ByStatus: byStatus,
		ByConfidence: ConfidenceBuckets{
			High:   t.highConfidence,
			Medium: t.mediumConfidence,
			Low:    t.lowConfidence,
		},
		Gaps: CountStats{
			Total:         t.totalGaps,
			AvgPerFinding: safeAvg(t.totalGaps, t.total),
		},
		Questions: CountStats{
			Total:         t.totalQuestions,
			AvgPerFinding: safeAvg(t.totalQuestions, t.total),
		},
	}
}
