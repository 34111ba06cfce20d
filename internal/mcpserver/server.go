package mcpserver

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"ytsubs/internal/adapter"
	"ytsubs/internal/logging"
)

const serverName = "YouTube Subtitle Downloader"

const instructions = "Tools for inspecting YouTube videos and fetching their subtitles. " +
	"Call get_video_info for metadata, list_subtitle_languages to see available tracks, " +
	"and download_subtitles to fetch timed cues for one language."

// Server hosts the adapter's three operations as MCP tools over stdio.
type Server struct {
	adapter *adapter.Adapter
	logger  *slog.Logger
	mcp     *server.MCPServer
}

// New wires the adapter operations into an MCP server instance.
func New(a *adapter.Adapter, logger *slog.Logger, version string) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{adapter: a, logger: logger}

	s.mcp = server.NewMCPServer(serverName, version,
		server.WithInstructions(instructions),
		server.WithRecovery(),
	)
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run serves MCP over stdin/stdout until the context is canceled or the
// host closes the stream. Startup performs no network calls.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server listening on stdio")
	stdio := server.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}
