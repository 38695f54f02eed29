package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncatingHandler tests attribute bounding behavior.
func TestTruncatingHandler(t *testing.T) {
	t.Parallel()

	t.Run("truncates oversized string values", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncatingHandler(
			slog.NewTextHandler(&buf, nil), 16))

		long := strings.Repeat("a", 100)
		logger.Info("loaded finding", "analysis", long)

		out := buf.String()
		if strings.Contains(out, long) {
			t.Error("expected long value to be truncated")
		}
		if !strings.Contains(out, strings.Repeat("a", 16)+Ellipsis) {
			t.Errorf("expected truncated value with ellipsis, got %q", out)
		}
	})

	t.Run("keeps short values intact", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncatingHandler(
			slog.NewTextHandler(&buf, nil), 16))

		logger.Info("loaded report", "filename", "report.json")

		if !strings.Contains(buf.String(), "report.json") {
			t.Errorf("expected short value untouched, got %q", buf.String())
		}
	})

	t.Run("truncates inside groups", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncatingHandler(
			slog.NewTextHandler(&buf, nil), 8))

		logger.Info("msg", slog.Group("finding",
			slog.String("text", strings.Repeat("x", 50))))

		if strings.Contains(buf.String(), strings.Repeat("x", 50)) {
			t.Error("expected grouped value to be truncated")
		}
	})

	t.Run("truncates WithAttrs attributes", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncatingHandler(
			slog.NewTextHandler(&buf, nil), 8)).With("context", strings.Repeat("y", 50))

		logger.Info("msg")

		if strings.Contains(buf.String(), strings.Repeat("y", 50)) {
			t.Error("expected attached attribute to be truncated")
		}
	})

	t.Run("leaves non-string values alone", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(NewTruncatingHandler(
			slog.NewTextHandler(&buf, nil), 4))

		logger.Info("msg", "count", 123456789)

		if !strings.Contains(buf.String(), "123456789") {
			t.Errorf("expected numeric value untouched, got %q", buf.String())
		}
	})
}

// TestNewLogger tests the level configuration of the constructors.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Info("should not appear")
		logger.Warn("should appear")

		out := buf.String()
		if strings.Contains(out, "should not appear") {
			t.Error("expected info to be suppressed without verbose")
		}
		if !strings.Contains(out, "should appear") {
			t.Error("expected warnings to be logged")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("debug detail")

		if !strings.Contains(buf.String(), "debug detail") {
			t.Error("expected debug output in verbose mode")
		}
	})

	t.Run("json logger emits json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := NewJSONLogger(&buf, true)

		logger.Info("hello", "key", "value")

		out := buf.String()
		if !strings.Contains(out, `"msg":"hello"`) {
			t.Errorf("expected JSON output, got %q", out)
		}
	})
}
