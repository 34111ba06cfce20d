// Package config loads and validates the TOML configuration file.
//
// Configuration is resolved in order: explicit --config flag, then
// ~/.config/ytsubs/config.toml, then ./ytsubs.toml, then built-in defaults.
package config
