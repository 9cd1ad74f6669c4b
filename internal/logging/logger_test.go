package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(t *testing.T, format string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)

	var handler slog.Handler
	switch format {
	case "console":
		handler = newConsoleHandler(buf, levelVar)
	case "json":
		handler = newJSONHandler(buf, levelVar)
	default:
		t.Fatalf("unknown format %q", format)
	}
	return slog.New(handler), buf
}

func TestConsoleHandlerLine(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	logger = NewComponentLogger(logger, "merge")

	logger.Info("moved clip", Args(String("path", "/card/GH020013.MP4"), Int("clips", 3))...)

	line := buf.String()
	for _, fragment := range []string{"INFO", "merge: moved clip", "path=/card/GH020013.MP4", "clips=3"} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("line %q missing %q", line, fragment)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be a prefix, not an attribute: %q", line)
	}
}

func TestConsoleHandlerQuotesValues(t *testing.T) {
	logger, buf := newBufferLogger(t, "console")
	logger.Warn("skip", Args(String("reason", "not a clip"))...)
	if !strings.Contains(buf.String(), `reason="not a clip"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.Error("merge failed", Args(Error(nil))...)

	line := buf.String()
	for _, fragment := range []string{`"ts":`, `"level":"error"`, `"msg":"merge failed"`} {
		if !strings.Contains(line, fragment) {
			t.Fatalf("line %q missing %q", line, fragment)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got != slog.LevelInfo {
		t.Fatalf("parseLevel fallback = %v, want info", got)
	}
	if got := parseLevel("debug"); got != slog.LevelDebug {
		t.Fatalf("parseLevel(debug) = %v", got)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("should not panic")
}
