// Package logging constructs slog loggers with a compact console handler
// for terminals and JSON output otherwise. All output goes to stderr so the
// protocol stream on stdout stays clean.
package logging
