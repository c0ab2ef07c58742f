package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func testLogger(buf *bytes.Buffer, opts ...Option) Logger {
	base := []Option{
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout("none"),
	}

	return Make(buf, append(base, opts...)...)
}

func TestLogger_WritesRecord(t *testing.T) {
	var buf bytes.Buffer

	l := testLogger(&buf)
	l.Info("hello", slog.String("k", "v"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}

	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}

	if rec["k"] != "v" {
		t.Errorf("k = %v, want v", rec["k"])
	}

	if rec["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", rec["level"])
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	l := testLogger(&buf, WithLevel(LevelWarn))

	l.Debug("dropped")
	l.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("unexpected output below level: %q", buf.String())
	}

	l.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn record missing: %q", buf.String())
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	l := testLogger(&buf, WithLevel(LevelTrace))
	l.Trace("fine detail")

	if !strings.Contains(buf.String(), `"TRACE"`) {
		t.Errorf("trace level not renamed: %q", buf.String())
	}
}

func TestLogger_Accessors(t *testing.T) {
	var buf bytes.Buffer

	l := testLogger(&buf, WithLevel(LevelDebug))

	if got := l.Level(); got != LevelDebug {
		t.Errorf("Level() = %v, want %v", got, LevelDebug)
	}

	if got := l.Format(); got != FormatJSON {
		t.Errorf("Format() = %v, want %v", got, FormatJSON)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	l := testLogger(&buf).With(slog.String("component", "test"))
	l.Info("tagged")

	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Errorf("attribute missing: %q", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	base := testLogger(&buf)

	wrapped := base.Wrap(WithLevel(LevelError))
	wrapped.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("wrapped logger ignored level override: %q", buf.String())
	}

	// The base logger keeps its own configuration.
	base.Info("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("base record missing: %q", buf.String())
	}
}

// The zero-value Logger silently drops messages.
func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Info("nowhere")
	l.Error("nowhere")

	if got := l.Level(); got != DefaultLevel {
		t.Errorf("Level() = %v, want default", got)
	}

	if got := l.Format(); got != DefaultFormat {
		t.Errorf("Format() = %v, want default", got)
	}
}
