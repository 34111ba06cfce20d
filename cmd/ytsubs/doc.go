// Package main hosts the ytsubs CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the subtitle adapter two ways: the
// serve command runs the MCP stdio server for assistant hosts, and the
// info/langs/fetch commands run the same operations one-shot from a
// terminal. It centralizes configuration resolution and logger setup so
// subcommands can focus on output formatting.
//
// Keep this package lean: new functionality belongs in the internal
// packages first, surfaced here through dedicated commands or flags.
package main
