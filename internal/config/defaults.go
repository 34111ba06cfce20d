package config

const (
	defaultBinary         = "yt-dlp"
	defaultRequestTimeout = 120
	defaultTempDir        = "~/.cache/ytsubs"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tool: Tool{
			Binary:         defaultBinary,
			RequestTimeout: defaultRequestTimeout,
		},
		Paths: Paths{
			TempDir: defaultTempDir,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
