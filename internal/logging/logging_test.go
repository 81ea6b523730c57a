package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meltforce/hybridcoach/internal/config"
)

// TestParseLevel covers every accepted name and the fallback.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestLevelFiltering verifies records below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, config.LogConfig{Level: "warn"})
	log.Info("hidden")
	log.Warn("shown", "rule", "critical_sleep")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "rule=critical_sleep") {
		t.Errorf("warn record missing: %q", out)
	}
}

// TestFileOutput verifies records reach the rotated file as well as the console.
func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coach.log")
	var buf bytes.Buffer
	log := NewWithWriter(&buf, config.LogConfig{Level: "info", File: path, MaxSizeMB: 1})
	log.Info("plan generated", "discipline", "Boxing")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "discipline=Boxing") {
		t.Errorf("file output = %q", data)
	}
	if !strings.Contains(buf.String(), "discipline=Boxing") {
		t.Errorf("console output = %q", buf.String())
	}
}
