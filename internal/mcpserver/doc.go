// Package mcpserver exposes the adapter operations as MCP tools over a
// stdio stream. Framing, transport, and serialization are handled by the
// MCP SDK; per-call failures become structured tool errors, never crashes.
package mcpserver
