package model

import (
	"encoding/json"
	"testing"
)

// TestComplianceReportUnmarshal tests decoding of snapshot JSON,
// including the documented defaults for absent finding fields.
func TestComplianceReportUnmarshal(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"metadata": {"generated_at": "2024-03-01T09:00:00Z", "pipeline": "v2"},
		"findings": [
			{
				"requirement_id": "145.A.30",
				"requirement_text": "Personnel requirements",
				"status": "COMPLIANT",
				"analysis": "Staffing plan documented.",
				"gaps_identified": ["missing training records"],
				"auditor_questions": ["Who approves the plan?"],
				"confidence_score": 0.9
			},
			{
				"requirement_id": "145.A.40",
				"requirement_text": "Equipment and tools"
			}
		]
	}`)

	var report ComplianceReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("reads generated_at", func(t *testing.T) {
		t.Parallel()
		if got := report.Metadata.GeneratedAt(); got != "2024-03-01T09:00:00Z" {
			t.Errorf("got %q, expected %q", got, "2024-03-01T09:00:00Z")
		}
	})

	t.Run("preserves extra metadata keys", func(t *testing.T) {
		t.Parallel()
		if got, ok := report.Metadata["pipeline"].(string); !ok || got != "v2" {
			t.Errorf("got %v, expected pipeline key to survive", report.Metadata["pipeline"])
		}
	})

	t.Run("preserves finding order", func(t *testing.T) {
		t.Parallel()
		if len(report.Findings) != 2 {
			t.Fatalf("got %d findings, expected 2", len(report.Findings))
		}
		if report.Findings[0].RequirementID != "145.A.30" || report.Findings[1].RequirementID != "145.A.40" {
			t.Error("expected findings in file order")
		}
	})

	t.Run("decodes populated finding", func(t *testing.T) {
		t.Parallel()
		f := report.Findings[0]
		if f.Status != StatusCompliant {
			t.Errorf("got status %v, expected COMPLIANT", f.Status)
		}
		if f.ConfidenceScore != 0.9 {
			t.Errorf("got confidence %v, expected 0.9", f.ConfidenceScore)
		}
		if len(f.GapsIdentified) != 1 || len(f.AuditorQuestions) != 1 {
			t.Error("expected gaps and questions to be decoded")
		}
	})

	t.Run("defaults absent finding fields", func(t *testing.T) {
		t.Parallel()
		f := report.Findings[1]
		if f.Status != StatusError {
			t.Errorf("got status %v, expected ERROR for absent status", f.Status)
		}
		if f.ConfidenceScore != 0 {
			t.Errorf("got confidence %v, expected 0 for absent score", f.ConfidenceScore)
		}
		if len(f.GapsIdentified) != 0 || len(f.AuditorQuestions) != 0 {
			t.Error("expected absent arrays to be empty")
		}
	})
}

// TestMetadataGeneratedAt tests the generated_at accessor edge cases.
func TestMetadataGeneratedAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metadata Metadata
		want     string
	}{
		{"present", Metadata{"generated_at": "2024-01-01T00:00:00Z"}, "2024-01-01T00:00:00Z"},
		{"absent", Metadata{}, ""},
		{"nil metadata", nil, ""},
		{"wrong type", Metadata{"generated_at": 12345}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.metadata.GeneratedAt(); got != tt.want {
				t.Errorf("got %q, expected %q", got, tt.want)
			}
		})
	}
}

// TestFindingSearchText tests the searchable text concatenation.
func TestFindingSearchText(t *testing.T) {
	t.Parallel()

	f := Finding{
		RequirementID:    "145.A.42",
		RequirementText:  "Components",
		Analysis:         "Fuel System inspection is incomplete",
		GapsIdentified:   []string{"no tagging procedure", "missing EASA Form 1"},
		AuditorQuestions: []string{"How are parts quarantined?"},
	}

	text := f.SearchText()

	t.Run("lower-cases all fields", func(t *testing.T) {
		t.Parallel()
		if text != "145.a.42 components fuel system inspection is incomplete no tagging procedure missing easa form 1 how are parts quarantined?" {
			t.Errorf("unexpected search text: %q", text)
		}
	})

	t.Run("empty finding yields separators only", func(t *testing.T) {
		t.Parallel()
		if got := (Finding{}).SearchText(); got != "    " {
			t.Errorf("got %q, expected four separating spaces", got)
		}
	})
}
