package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("subtitle_workflow",
		mcp.WithPromptDescription("Guided workflow for analyzing a YouTube video's subtitles."),
		mcp.WithArgument("url",
			mcp.ArgumentDescription("URL of the YouTube video"),
			mcp.RequiredArgument(),
		),
	), s.handleSubtitleWorkflow)
}

func (s *Server) handleSubtitleWorkflow(_ context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	url := request.Params.Arguments["url"]
	if url == "" {
		return nil, fmt.Errorf("url argument is required")
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			fmt.Sprintf("I want to analyze the subtitles from this YouTube video: %s", url))),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"First, get basic information about the video.")),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"Then, list available subtitle languages.")),
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(
			"Finally, download the subtitles in my preferred language and analyze their content.")),
	}
	return mcp.NewGetPromptResult("YouTube subtitle analysis workflow", messages), nil
}
