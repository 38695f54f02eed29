package report

import (
	"encoding/json"
	"io"

	"github.com/complyview/complyview/internal/history"
	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
)

// JSONWriter outputs results in JSON format.
// This format is designed for tool integration and matches the payloads
// served by the HTTP API.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because it is sufficient for our needs and
// keeps CLI output byte-identical to the HTTP layer, which also uses
// encoding/json.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteListing outputs the snapshot listing as a JSON array.
func (w *JSONWriter) WriteListing(reports []model.ReportDescriptor) (int, error) {
	return w.writeJSON(reports)
}

// WriteReport outputs the full report.
func (w *JSONWriter) WriteReport(report *model.ComplianceReport) (int, error) {
	return w.writeJSON(report)
}

// WriteSummary outputs the summary statistics.
func (w *JSONWriter) WriteSummary(summary stats.Summary) (int, error) {
	return w.writeJSON(summary)
}

// WriteStats outputs the extended statistics.
func (w *JSONWriter) WriteStats(s stats.Stats) (int, error) {
	return w.writeJSON(s)
}

// WriteFindings outputs findings as a JSON array.
func (w *JSONWriter) WriteFindings(findings []model.Finding) (int, error) {
	return w.writeJSON(findings)
}

// WriteHistory outputs history entries as a JSON array.
func (w *JSONWriter) WriteHistory(entries []history.Entry) (int, error) {
	return w.writeJSON(entries)
}

// writeJSON marshals the given value and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
