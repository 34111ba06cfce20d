package config

import "fmt"

// Validate checks the configuration for values that would break operation.
func (c *Config) Validate() error {
	if c.Tool.RequestTimeout <= 0 {
		return fmt.Errorf("config: tool.request_timeout must be positive, got %d", c.Tool.RequestTimeout)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level: unsupported value %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: logging.format: unsupported value %q", c.Logging.Format)
	}

	return nil
}
