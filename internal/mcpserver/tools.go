package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"ytsubs/internal/adapter"
	"ytsubs/internal/subtitle"
	"ytsubs/internal/ytdlp"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_video_info",
		mcp.WithDescription("Get title, duration, uploader, upload date, view count, and description for a YouTube video."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL or ID of the YouTube video")),
	), s.handleGetVideoInfo)

	s.mcp.AddTool(mcp.NewTool("list_subtitle_languages",
		mcp.WithDescription("List available subtitle languages for a YouTube video, both manually authored and auto-generated. An empty list means the video has no subtitles."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL or ID of the YouTube video")),
	), s.handleListLanguages)

	s.mcp.AddTool(mcp.NewTool("download_subtitles",
		mcp.WithDescription("Download subtitles for a YouTube video in the given language and return timed cues plus a plain-text transcript. Manually authored tracks are preferred over auto-generated ones."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL or ID of the YouTube video")),
		mcp.WithString("lang", mcp.Description("Subtitle language code, e.g. \"en\" (default: en)")),
	), s.handleDownloadSubtitles)
}

func (s *Server) handleGetVideoInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info, err := s.adapter.GetVideoInfo(ctx, url)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(info)
}

func (s *Server) handleListLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entries, err := s.adapter.ListSubtitleLanguages(ctx, url)
	if err != nil {
		return errorResult(err), nil
	}
	if entries == nil {
		entries = []adapter.LanguageEntry{}
	}
	payload := struct {
		Languages []adapter.LanguageEntry `json:"languages"`
	}{Languages: entries}
	return jsonResult(payload)
}

func (s *Server) handleDownloadSubtitles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lang := request.GetString("lang", "en")

	doc, err := s.adapter.DownloadSubtitles(ctx, url, lang)
	if err != nil {
		return errorResult(err), nil
	}
	payload := struct {
		subtitle.Document
		PlainText string `json:"plain_text"`
	}{Document: doc, PlainText: doc.PlainText()}
	return jsonResult(payload)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult converts a classified adapter failure into a structured tool
// error the calling assistant can relay to an end user.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", ytdlp.Kind(err), err))
}
