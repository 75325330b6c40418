package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/poemfactory/internal/config"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("test message", slog.Int("lines", 3))
	logger.Debug("hidden")

	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("JSON handler should produce one valid JSON record: %v (%q)", err, buf.String())
	}
	if m["msg"] != "test message" {
		t.Errorf("msg = %v", m["msg"])
	}
	if m["app"] != "poemfactory" {
		t.Errorf("app = %v", m["app"])
	}
	if m["lines"] != float64(3) {
		t.Errorf("lines = %v", m["lines"])
	}
}

func TestNewLogger_TextFormatDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LogConfig{Level: "debug", Format: "text"}, &buf)

	logger.Debug("source test")

	if !strings.Contains(buf.String(), "source=") {
		t.Errorf("debug text format should include source information: %q", buf.String())
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "info", Format: "json"}, &bytes.Buffer{})

	if slog.Default().Handler() != logger.Handler() {
		t.Error("NewLogger should set the returned logger as slog default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"unknown": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
