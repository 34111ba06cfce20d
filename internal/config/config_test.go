package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ytsubs/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("YTDLP_PATH", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Tool.Binary != "yt-dlp" {
		t.Fatalf("unexpected binary: %q", cfg.Tool.Binary)
	}
	if cfg.Tool.RequestTimeout != 120 {
		t.Fatalf("unexpected timeout: %d", cfg.Tool.RequestTimeout)
	}
	if cfg.Tool.SelfUpdate {
		t.Fatal("expected self-update disabled by default")
	}
	wantTemp := filepath.Join(tempHome, ".cache", "ytsubs")
	if cfg.Paths.TempDir != wantTemp {
		t.Fatalf("unexpected temp dir: got %q want %q", cfg.Paths.TempDir, wantTemp)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("YTDLP_PATH", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tool]
binary = "~/bin/yt-dlp"
self_update = true
request_timeout = 45

[paths]
temp_dir = "~/subs-temp"

[logging]
level = "DEBUG"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Tool.Binary != filepath.Join(tempHome, "bin", "yt-dlp") {
		t.Fatalf("binary not expanded: %q", cfg.Tool.Binary)
	}
	if !cfg.Tool.SelfUpdate || cfg.Tool.RequestTimeout != 45 {
		t.Fatalf("unexpected tool config: %+v", cfg.Tool)
	}
	if cfg.Paths.TempDir != filepath.Join(tempHome, "subs-temp") {
		t.Fatalf("temp dir not expanded: %q", cfg.Paths.TempDir)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadEnvOverridesBinary(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("YTDLP_PATH", "/opt/tools/yt-dlp")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Tool.Binary != "/opt/tools/yt-dlp" {
		t.Fatalf("env override ignored: %q", cfg.Tool.Binary)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero timeout", func(c *config.Config) { c.Tool.RequestTimeout = 0 }},
		{"negative timeout", func(c *config.Config) { c.Tool.RequestTimeout = -5 }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		cfg := config.Default()
		cfg.Logging.Level = "info"
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("YTDLP_PATH", "")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Tool.Binary != "yt-dlp" || cfg.Tool.RequestTimeout != 120 {
		t.Fatalf("sample does not match defaults: %+v", cfg.Tool)
	}
}
