package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ytsubs/internal/logging"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("subtitles downloaded", logging.String("lang", "en"), logging.Int("cue_count", 7))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "subtitles downloaded" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["lang"] != "en" {
		t.Fatalf("unexpected lang attr: %v", record["lang"])
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("dependency missing", logging.String("name", "yt-dlp"))

	line := buf.String()
	if !strings.Contains(line, "WRN") {
		t.Fatalf("missing level tag: %q", line)
	}
	if !strings.Contains(line, "dependency missing") || !strings.Contains(line, "name=yt-dlp") {
		t.Fatalf("unexpected console line: %q", line)
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	logger.Error("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("error line missing: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewDefaultsToJSONForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("probe")
	if !json.Valid(buf.Bytes()) {
		t.Fatalf("expected JSON output for non-terminal writer: %q", buf.String())
	}
}

func TestConsoleGroupsFlatten(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("tool").Info("version probed", logging.String("version", "2025.08.11"))

	if !strings.Contains(buf.String(), "tool.version=2025.08.11") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("must not panic", logging.Error(nil))
}
