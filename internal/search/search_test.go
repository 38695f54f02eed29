package search

import (
	"testing"

	"github.com/complyview/complyview/internal/model"
)

// searchReport builds the fixture report used across search tests.
func searchReport() *model.ComplianceReport {
	return &model.ComplianceReport{
		Findings: []model.Finding{
			{
				RequirementID:   "145.A.40",
				RequirementText: "Equipment, tools and material",
				Status:          model.StatusCompliant,
				Analysis:        "Tooling register is maintained.",
			},
			{
				RequirementID:   "145.A.42",
				RequirementText: "Components",
				Status:          model.StatusNonCompliant,
				Analysis:        "Fuel System component tagging is incomplete.",
				GapsIdentified:  []string{"no quarantine area"},
			},
			{
				RequirementID:    "145.A.48",
				RequirementText:  "Performance of maintenance",
				Status:           model.StatusNonCompliant,
				AuditorQuestions: []string{"How is the fuel sampling documented?"},
			},
			{
				RequirementID:   "145.A.50",
				RequirementText: "Certification of maintenance",
				Status:          model.StatusNeedsReview,
				Analysis:        "Release procedure references retired form.",
			},
		},
	}
}

// TestFindings tests filter composition and ordering.
func TestFindings(t *testing.T) {
	t.Parallel()

	t.Run("empty filter returns all findings in order", func(t *testing.T) {
		t.Parallel()
		report := searchReport()
		results := Findings(report, Filter{})

		if len(results) != len(report.Findings) {
			t.Fatalf("got %d findings, expected %d", len(results), len(report.Findings))
		}
		for i, f := range results {
			if f.RequirementID != report.Findings[i].RequirementID {
				t.Errorf("position %d: got %q, expected original order", i, f.RequirementID)
			}
		}
	})

	t.Run("status filter is exact and case-sensitive", func(t *testing.T) {
		t.Parallel()
		results := Findings(searchReport(), Filter{Status: "NON_COMPLIANT"})
		if len(results) != 2 {
			t.Fatalf("got %d findings, expected 2", len(results))
		}

		if got := Findings(searchReport(), Filter{Status: "non_compliant"}); len(got) != 0 {
			t.Errorf("got %d findings for lowercase status, expected 0", len(got))
		}
		if got := Findings(searchReport(), Filter{Status: "NON"}); len(got) != 0 {
			t.Errorf("got %d findings for partial status, expected 0", len(got))
		}
	})

	t.Run("query matches case-insensitively across fields", func(t *testing.T) {
		t.Parallel()
		// "fuel" appears in one analysis ("Fuel System") and one auditor
		// question ("fuel sampling").
		results := Findings(searchReport(), Filter{Query: "fuel"})
		if len(results) != 2 {
			t.Fatalf("got %d findings, expected 2", len(results))
		}
		if results[0].RequirementID != "145.A.42" || results[1].RequirementID != "145.A.48" {
			t.Error("expected matches in original report order")
		}
	})

	t.Run("query matches gap text", func(t *testing.T) {
		t.Parallel()
		results := Findings(searchReport(), Filter{Query: "quarantine"})
		if len(results) != 1 || results[0].RequirementID != "145.A.42" {
			t.Errorf("got %v, expected the single gap match", results)
		}
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		t.Parallel()
		results := Findings(searchReport(), Filter{Query: "fuel", Status: "NON_COMPLIANT"})
		if len(results) != 2 {
			t.Fatalf("got %d findings, expected 2", len(results))
		}

		results = Findings(searchReport(), Filter{Query: "fuel", Status: "COMPLIANT"})
		if len(results) != 0 {
			t.Errorf("got %d findings, expected 0 when filters conflict", len(results))
		}
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		t.Parallel()
		results := Findings(searchReport(), Filter{Query: "borescope"})
		if results == nil || len(results) != 0 {
			t.Errorf("got %v, expected empty non-nil slice", results)
		}
	})

	t.Run("nil report returns empty slice", func(t *testing.T) {
		t.Parallel()
		results := Findings(nil, Filter{Query: "fuel"})
		if results == nil || len(results) != 0 {
			t.Errorf("got %v, expected empty non-nil slice", results)
		}
	})
}
