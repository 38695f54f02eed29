package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
)

// TextWriter outputs human-readable text for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// verbose enables additional detail such as full analysis text.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteListing outputs the snapshot listing, one line per snapshot.
func (w *TextWriter) WriteListing(reports []model.ReportDescriptor) (int, error) {
	var sb strings.Builder

	if len(reports) == 0 {
		sb.WriteString("No report snapshots found.\n")
		return io.WriteString(w.output, sb.String())
	}

	fmt.Fprintf(&sb, "%-50s %s\n", "FILENAME", "GENERATED")
	for _, r := range reports {
		fmt.Fprintf(&sb, "%-50s %s\n", r.Filename, r.Date)
	}

	return io.WriteString(w.output, sb.String())
}

// WriteReport outputs the report header followed by its findings.
func (w *TextWriter) WriteReport(report *model.ComplianceReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("=== Compliance Report ===\n")
	if ts := report.Metadata.GeneratedAt(); ts != "" {
		fmt.Fprintf(&sb, "Generated: %s\n", ts)
	}
	fmt.Fprintf(&sb, "Requirements assessed: %d\n\n", len(report.Findings))

	w.writeFindings(&sb, report.Findings)

	return io.WriteString(w.output, sb.String())
}

// WriteSummary outputs headline statistics.
func (w *TextWriter) WriteSummary(summary stats.Summary) (int, error) {
	var sb strings.Builder

	sb.WriteString("=== Compliance Summary ===\n")
	if summary.Timestamp != "" {
		fmt.Fprintf(&sb, "Generated: %s\n", summary.Timestamp)
	}
	fmt.Fprintf(&sb, "Total requirements: %d\n\n", summary.TotalRequirements)

	sb.WriteString("Status breakdown:\n")
	for _, status := range model.Statuses {
		fmt.Fprintf(&sb, "  %-14s %d\n", statusLabel(status)+":", summary.StatusBreakdown[status])
	}

	fmt.Fprintf(&sb, "\nGaps identified:    %d\n", summary.TotalGaps)
	fmt.Fprintf(&sb, "Auditor questions:  %d\n", summary.TotalQuestions)
	fmt.Fprintf(&sb, "Average confidence: %.2f\n", summary.AverageConfidence)

	return io.WriteString(w.output, sb.String())
}

// WriteStats outputs extended statistics.
func (w *TextWriter) WriteStats(s stats.Stats) (int, error) {
	var sb strings.Builder

	sb.WriteString("=== Compliance Statistics ===\n")
	fmt.Fprintf(&sb, "Total findings: %d\n\n", s.Total)

	sb.WriteString("By status:\n")
	// Iterate the canonical order so output is deterministic; absent
	// statuses are genuinely absent from the sparse map and skipped.
	for _, status := range model.Statuses {
		if count, ok := s.ByStatus[status]; ok {
			fmt.Fprintf(&sb, "  %-14s %d\n", statusLabel(status)+":", count)
		}
	}

	sb.WriteString("\nBy confidence:\n")
	fmt.Fprintf(&sb, "  High (>= %.1f):   %d\n", stats.HighConfidence, s.ByConfidence.High)
	fmt.Fprintf(&sb, "  Medium (>= %.1f): %d\n", stats.MediumConfidence, s.ByConfidence.Medium)
	fmt.Fprintf(&sb, "  Low:             %d\n", s.ByConfidence.Low)

	fmt.Fprintf(&sb, "\nGaps:      %d total, %.2f per finding\n", s.Gaps.Total, s.Gaps.AvgPerFinding)
	fmt.Fprintf(&sb, "Questions: %d total, %.2f per finding\n", s.Questions.Total, s.Questions.AvgPerFinding)

	return io.WriteString(w.output, sb.String())
}

// WriteFindings outputs findings, typically search results.
func (w *TextWriter) WriteFindings(findings []model.Finding) (int, error) {
	var sb strings.Builder

	if len(findings) == 0 {
		sb.WriteString("No findings matched.\n")
		return io.WriteString(w.output, sb.String())
	}

	fmt.Fprintf(&sb, "%d finding(s)\n\n", len(findings))
	w.writeFindings(&sb, findings)

	return io.WriteString(w.output, sb.String())
}

// WriteHistory outputs one line per snapshot with its key numbers.
func (w *TextWriter) WriteHistory(entries []history.Entry) (int, error) {
	var sb strings.Builder

	if len(entries) == 0 {
		sb.WriteString("No report snapshots found.\n")
		return io.WriteString(w.output, sb.String())
	}

	fmt.Fprintf(&sb, "%-21s %6s %10s %14s %6s %11s\n",
		"GENERATED", "REQS", "COMPLIANT", "NON_COMPLIANT", "GAPS", "CONFIDENCE")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-21s %6d %10d %14d %6d %11.2f\n",
			e.Report.Date,
			e.Summary.TotalRequirements,
			e.Summary.StatusBreakdown[model.StatusCompliant],
			e.Summary.StatusBreakdown[model.StatusNonCompliant],
			e.Summary.TotalGaps,
			e.Summary.AverageConfidence,
		)
	}

	return io.WriteString(w.output, sb.String())
}

// writeFindings renders each finding as a short block.
func (w *TextWriter) writeFindings(sb *strings.Builder, findings []model.Finding) {
	for _, f := range findings {
		fmt.Fprintf(sb, "[%s] %s\n", f.Status, f.RequirementID)
		if f.RequirementText != "" {
			fmt.Fprintf(sb, "  %s\n", f.RequirementText)
		}
		if f.ConfidenceScore > 0 {
			fmt.Fprintf(sb, "  Confidence: %.2f\n", f.ConfidenceScore)
		}
		if w.verbose {
			if f.Analysis != "" {
				fmt.Fprintf(sb, "  Analysis: %s\n", f.Analysis)
			}
			for _, gap := range f.GapsIdentified {
				fmt.Fprintf(sb, "  Gap: %s\n", gap)
			}
			for _, q := range f.AuditorQuestions {
				fmt.Fprintf(sb, "  Question: %s\n", q)
			}
		} else {
			if n := len(f.GapsIdentified); n > 0 {
				fmt.Fprintf(sb, "  Gaps: %d\n", n)
			}
			if n := len(f.AuditorQuestions); n > 0 {
				fmt.Fprintf(sb, "  Questions: %d\n", n)
			}
		}
		sb.WriteString("\n")
	}
}
