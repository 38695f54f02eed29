package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for audit documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteListing outputs the snapshot listing as a table.
func (w *MarkdownWriter) WriteListing(reports []model.ReportDescriptor) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance Report Snapshots")
	md.PlainText("")

	if len(reports) == 0 {
		md.PlainText("No report snapshots found.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{"`" + r.Filename + "`", r.Date}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Filename", "Generated"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

// WriteReport outputs the full report with a findings table.
func (w *MarkdownWriter) WriteReport(report *model.ComplianceReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance Report")
	md.PlainText("")

	if ts := report.Metadata.GeneratedAt(); ts != "" {
		md.PlainTextf("Generated: `%s`", ts)
		md.PlainText("")
	}

	w.writeFindingsTable(md, report.Findings)

	return len(md.String()), md.Build()
}

// WriteSummary outputs headline statistics with a status pie chart.
func (w *MarkdownWriter) WriteSummary(summary stats.Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", "`" + summary.Timestamp + "`"},
			{"Total Requirements", strconv.Itoa(summary.TotalRequirements)},
			{"Gaps Identified", strconv.Itoa(summary.TotalGaps)},
			{"Auditor Questions", strconv.Itoa(summary.TotalQuestions)},
			{"Average Confidence", strconv.FormatFloat(summary.AverageConfidence, 'f', 2, 64)},
		},
	})
	md.PlainText("")

	md.H2("Status Breakdown")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		rows = append(rows, []string{statusLabel(status), strconv.Itoa(summary.StatusBreakdown[status])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows:   rows,
	})

	if summary.TotalRequirements > 0 {
		w.writePieChart(md, summary.StatusBreakdown)
	}

	w.writeAlert(md, summary)

	return len(md.String()), md.Build()
}

// WriteStats outputs extended statistics.
func (w *MarkdownWriter) WriteStats(s stats.Stats) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance Statistics")
	md.PlainText("")
	md.PlainTextf("Total findings: %d", s.Total)
	md.PlainText("")

	md.H2("By Status")
	md.PlainText("")
	statusRows := make([][]string, 0, len(s.ByStatus))
	for _, status := range model.Statuses {
		if count, ok := s.ByStatus[status]; ok {
			statusRows = append(statusRows, []string{statusLabel(status), strconv.Itoa(count)})
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Count"},
		Rows:   statusRows,
	})
	md.PlainText("")

	md.H2("By Confidence")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Bucket", "Count"},
		Rows: [][]string{
			{"High (≥ 0.8)", strconv.Itoa(s.ByConfidence.High)},
			{"Medium (≥ 0.6)", strconv.Itoa(s.ByConfidence.Medium)},
			{"Low", strconv.Itoa(s.ByConfidence.Low)},
		},
	})
	md.PlainText("")

	md.H2("Gaps and Questions")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Total", "Avg per Finding"},
		Rows: [][]string{
			{"Gaps", strconv.Itoa(s.Gaps.Total), strconv.FormatFloat(s.Gaps.AvgPerFinding, 'f', 2, 64)},
			{"Questions", strconv.Itoa(s.Questions.Total), strconv.FormatFloat(s.Questions.AvgPerFinding, 'f', 2, 64)},
		},
	})

	return len(md.String()), md.Build()
}

// WriteFindings outputs findings as a table.
func (w *MarkdownWriter) WriteFindings(findings []model.Finding) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Findings")
	md.PlainText("")
	w.writeFindingsTable(md, findings)

	return len(md.String()), md.Build()
}

// WriteHistory outputs cross-snapshot history as a table.
func (w *MarkdownWriter) WriteHistory(entries []history.Entry) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Compliance History")
	md.PlainText("")

	if len(entries) == 0 {
		md.PlainText("No report snapshots found.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Report.Date,
			strconv.Itoa(e.Summary.TotalRequirements),
			strconv.Itoa(e.Summary.StatusBreakdown[model.StatusCompliant]),
			strconv.Itoa(e.Summary.StatusBreakdown[model.StatusNonCompliant]),
			strconv.Itoa(e.Summary.TotalGaps),
			strconv.FormatFloat(e.Summary.AverageConfidence, 'f', 2, 64),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Generated", "Requirements", "Compliant", "Non-Compliant", "Gaps", "Avg Confidence"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

// writeFindingsTable writes a table of findings with details.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	if len(findings) == 0 {
		md.PlainText("No findings.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{
			"`" + f.RequirementID + "`",
			statusLabel(f.Status),
			strconv.FormatFloat(f.ConfidenceScore, 'f', 2, 64),
			truncateCell(f.RequirementText, 60),
			strconv.Itoa(len(f.GapsIdentified)),
			strconv.Itoa(len(f.AuditorQuestions)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Requirement", "Status", "Confidence", "Text", "Gaps", "Questions"},
		Rows:   rows,
	})
	md.PlainText("")

	// Full analysis text goes into collapsible sections so the table
	// stays scannable.
	for _, f := range findings {
		if f.Analysis != "" {
			md.Details(f.RequirementID, f.Analysis)
		}
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart for the status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, breakdown map[model.Status]int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Requirement Status Distribution"),
		piechart.WithShowData(true),
	)

	for _, status := range model.Statuses {
		if count := breakdown[status]; count > 0 {
			chart.LabelAndIntValue(statusLabel(status), uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the status counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary stats.Summary) {
	md.PlainText("")
	switch {
	case summary.StatusBreakdown[model.StatusNonCompliant] > 0:
		md.Cautionf(
			"%d requirement(s) are non-compliant and require corrective action.",
			summary.StatusBreakdown[model.StatusNonCompliant],
		)
	case summary.StatusBreakdown[model.StatusError] > 0:
		md.Warningf(
			"%d requirement(s) could not be assessed and should be re-run.",
			summary.StatusBreakdown[model.StatusError],
		)
	case summary.StatusBreakdown[model.StatusNeedsReview] > 0:
		md.Importantf(
			"%d requirement(s) await human auditor review.",
			summary.StatusBreakdown[model.StatusNeedsReview],
		)
	case summary.TotalRequirements > 0:
		md.Tip("All assessed requirements are compliant.")
	default:
		md.Note("The report contains no findings.")
	}
	md.PlainText("")
}

// truncateCell truncates a string to maxLen characters with ellipsis so
// table cells stay readable.
func truncateCell(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
