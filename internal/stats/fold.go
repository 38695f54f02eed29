package stats

import (
	"math"

	"github.com/complyview/complyview/internal/model"
)

// Confidence bucket thresholds. A finding is "high" confidence at or
// above HighConfidence, "medium" at or above MediumConfidence, and "low"
// below that. Zero-confidence findings therefore land in "low".
const (
	HighConfidence   = 0.8
	MediumConfidence = 0.6
)

// tally is the accumulator for one pass over a report's findings.
// Both Summarize and Compute are shaped from a single fold so the two
// aggregates can never drift apart on the underlying counts.
type tally struct {
	total          int
	statusCounts   map[model.Status]int
	totalGaps      int
	totalQuestions int

	// confidenceSum and confidenceCount cover only findings with a
	// positive confidence score; zero is the "not computed" sentinel.
	confidenceSum   float64
	confidenceCount int

	// Bucket counts cover every finding, sentinel included.
	highConfidence   int
	mediumConfidence int
	lowConfidence    int
}

// foldFindings accumulates all counts in a single pass.
func foldFindings(findings []model.Finding) tally {
	t := tally{statusCounts: make(map[model.Status]int)}

	for _, f := range findings {
		t.total++
		t.statusCounts[f.Status]++
		t.totalGaps += len(f.GapsIdentified)
		t.totalQuestions += len(f.AuditorQuestions)

		if f.ConfidenceScore > 0 {
			t.confidenceSum += f.ConfidenceScore
			t.confidenceCount++
		}

		switch {
		case f.ConfidenceScore >= HighConfidence:
			t.highConfidence++
		case f.ConfidenceScore >= MediumConfidence:
			t.mediumConfidence++
		default:
			t.lowConfidence++
		}
	}

	return t
}

// round2 rounds to two decimal places, the precision used for every
// average in report output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// safeAvg divides total by count rounded to two decimals, returning 0
// for an empty denominator instead of propagating a numeric fault.
func safeAvg(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return round2(float64(total) / float64(count))
}
