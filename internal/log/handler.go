package log

import (
	"context"
	"io"
	"log/slog"
)

// DefaultMaxValueLen is the default maximum length for string attribute
// values. Long enough for any identifier or timestamp, short enough that
// a full requirement clause cannot dominate a log line.
const DefaultMaxValueLen = 256

// Ellipsis is appended to truncated values so readers can tell the
// value was cut rather than empty at that point.
const Ellipsis = "…"

// TruncatingHandler wraps an slog.Handler and bounds the length of
// string attribute values before passing records on.
//
// Design decision: We use a handler wrapper rather than truncating at
// each call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free to log finding fields without thinking about size
type TruncatingHandler struct {
	// handler is the underlying slog handler that receives bounded records.
	handler slog.Handler

	// maxLen is the maximum string value length in bytes.
	maxLen int
}

// NewTruncatingHandler creates a TruncatingHandler wrapping the given
// handler with the given maximum value length. A non-positive maxLen
// falls back to DefaultMaxValueLen. If handler is nil, the returned
// handler wraps slog.Default().Handler().
func NewTruncatingHandler(handler slog.Handler, maxLen int) *TruncatingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &TruncatingHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle bounds the record's attributes and passes it to the underlying handler.
func (h *TruncatingHandler) Handle(ctx context.Context, r slog.Record) error {
	bounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		bounded.AddAttrs(h.truncateAttr(a))
		return true
	})

	return h.handler.Handle(ctx, bounded)
}

// WithAttrs returns a new handler with the given attributes added,
// bounded before being attached.
func (h *TruncatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	boundedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		boundedAttrs[i] = h.truncateAttr(a)
	}
	return &TruncatingHandler{handler: h.handler.WithAttrs(boundedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncatingHandler) WithGroup(name string) slog.Handler {
	return &TruncatingHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr bounds a single attribute, recursively handling groups.
func (h *TruncatingHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		boundedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			boundedAttrs[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(boundedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		if v := a.Value.String(); len(v) > h.maxLen {
			return slog.String(a.Key, v[:h.maxLen]+Ellipsis)
		}
	}

	return a
}

// NewLogger creates a new slog.Logger with text output and bounded
// attribute values.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTruncatingHandler(newTextHandler(w, verbose), DefaultMaxValueLen))
}

// NewJSONLogger creates a new slog.Logger with JSON output and bounded
// attribute values. Useful for structured log aggregation behind the
// HTTP server.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewTruncatingHandler(handler, DefaultMaxValueLen))
}

// newTextHandler builds the underlying text handler with the level
// derived from the verbose flag.
func newTextHandler(w io.Writer, verbose bool) slog.Handler {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}
