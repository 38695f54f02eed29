package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
)

// Writer renders engine results in one output format.
// Each method returns the number of bytes written and any error
// encountered, mirroring io.Writer conventions.
type Writer interface {
	// WriteListing outputs the available report snapshots.
	WriteListing(reports []model.ReportDescriptor) (int, error)

	// WriteReport outputs a full compliance report.
	WriteReport(report *model.ComplianceReport) (int, error)

	// WriteSummary outputs headline statistics.
	WriteSummary(summary stats.Summary) (int, error)

	// WriteStats outputs extended statistics.
	WriteStats(s stats.Stats) (int, error)

	// WriteFindings outputs a sequence of findings, e.g. search results.
	WriteFindings(findings []model.Finding) (int, error)

	// WriteHistory outputs cross-snapshot summary entries.
	WriteHistory(entries []history.Entry) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// titleCaser converts canonical status names into display form.
var titleCaser = cases.Title(language.English)

// statusLabel renders a status for human display: NEEDS_REVIEW becomes
// "Needs Review". The canonical uppercase form stays confined to the
// wire format and machine output.
func statusLabel(s model.Status) string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(s.String()), "_", " "))
}
