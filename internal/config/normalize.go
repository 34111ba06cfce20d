package config

import (
	"os"
	"path/filepath"
	"strings"
)

// normalize expands paths and applies environment overrides. The tool binary
// stays untouched when it is a bare name so PATH resolution still applies.
func (c *Config) normalize() error {
	if envBinary := strings.TrimSpace(os.Getenv("YTDLP_PATH")); envBinary != "" {
		c.Tool.Binary = envBinary
	}
	c.Tool.Binary = strings.TrimSpace(c.Tool.Binary)
	if c.Tool.Binary == "" {
		c.Tool.Binary = defaultBinary
	}
	if strings.ContainsRune(c.Tool.Binary, filepath.Separator) || strings.HasPrefix(c.Tool.Binary, "~") {
		expanded, err := expandPath(c.Tool.Binary)
		if err != nil {
			return err
		}
		c.Tool.Binary = expanded
	}

	tempDir := strings.TrimSpace(c.Paths.TempDir)
	if tempDir == "" {
		tempDir = defaultTempDir
	}
	expanded, err := expandPath(tempDir)
	if err != nil {
		return err
	}
	c.Paths.TempDir = expanded

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	return nil
}
