// Package report renders engine results for output.
//
// This package contains writers for different output formats:
//   - TextWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation and sharing
//
// Design decision: We separate rendering from the data structures
// (which live in model, stats, and history) so new output formats can
// be added without touching the engine. Writers implement the Writer
// interface, allowing the CLI to select a format at runtime.
package report
