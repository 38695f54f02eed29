// Package log provides logging functionality built on top of the
// standard slog package.
//
// Report findings carry regulatory clause text and analysis narratives
// that can run to several kilobytes. When those values end up in log
// attributes (for example while diagnosing a malformed snapshot), a
// single log line can swamp the terminal or a log aggregator. The
// TruncatingHandler bounds every string attribute to a fixed length so
// log output stays readable regardless of what a snapshot contains.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("skipping snapshot",
//	    "filename", name,
//	    "analysis", finding.Analysis, // long text is truncated with an ellipsis
//	)
//	slog.SetDefault(logger)
package log
