package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerTo(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "file", "a.json")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "file=a.json") {
		t.Errorf("warn line missing: %q", out)
	}

	buf.Reset()
	log.SetLevel("debug")
	log.With("component", "test").Debug("now visible")

	if !strings.Contains(buf.String(), "component=test") {
		t.Errorf("debug line missing after SetLevel: %q", buf.String())
	}
}
