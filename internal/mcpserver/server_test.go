package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"ytsubs/internal/adapter"
	"ytsubs/internal/ytdlp"
)

type fakeExtractor struct {
	metadata ytdlp.Metadata
	track    []byte
	err      error
}

func (f *fakeExtractor) ExtractMetadata(context.Context, string) (ytdlp.Metadata, error) {
	return f.metadata, f.err
}

func (f *fakeExtractor) ListTracks(context.Context, string) ([]ytdlp.Track, []ytdlp.Track, error) {
	return f.metadata.Manual, f.metadata.Auto, f.err
}

func (f *fakeExtractor) FetchTrack(context.Context, string, string) ([]byte, error) {
	return f.track, f.err
}

func newTestServer(fake *fakeExtractor) *Server {
	return New(adapter.New(fake, nil), nil, "test")
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestGetVideoInfoTool(t *testing.T) {
	srv := newTestServer(&fakeExtractor{metadata: ytdlp.Metadata{
		Title:           "Talk",
		DurationSeconds: 90,
		Uploader:        "Chan",
	}})

	result, err := srv.handleGetVideoInfo(context.Background(), callRequest(map[string]any{"url": "vid"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var info adapter.VideoInfo
	if err := json.Unmarshal([]byte(resultText(t, result)), &info); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if info.Title != "Talk" || info.DurationSeconds != 90 {
		t.Fatalf("unexpected payload: %+v", info)
	}
}

func TestGetVideoInfoToolMissingURL(t *testing.T) {
	srv := newTestServer(&fakeExtractor{})

	result, err := srv.handleGetVideoInfo(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for missing url argument")
	}
}

func TestGetVideoInfoToolExtractionFailure(t *testing.T) {
	srv := newTestServer(&fakeExtractor{
		err: ytdlp.Wrap(ytdlp.ErrExtraction, "extract metadata", "Private video", nil),
	})

	result, err := srv.handleGetVideoInfo(context.Background(), callRequest(map[string]any{"url": "vid"}))
	if err != nil {
		t.Fatalf("handler must not crash on extraction failure: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}
	text := resultText(t, result)
	if !strings.HasPrefix(text, "extraction_failure:") {
		t.Fatalf("expected error kind prefix, got %q", text)
	}
	if !strings.Contains(text, "Private video") {
		t.Fatalf("expected human-readable detail, got %q", text)
	}
}

func TestListSubtitleLanguagesToolEmpty(t *testing.T) {
	srv := newTestServer(&fakeExtractor{})

	result, err := srv.handleListLanguages(context.Background(), callRequest(map[string]any{"url": "vid"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if result.IsError {
		t.Fatalf("empty track list must not be an error: %s", resultText(t, result))
	}

	var payload struct {
		Languages []adapter.LanguageEntry `json:"languages"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Languages == nil || len(payload.Languages) != 0 {
		t.Fatalf("expected explicit empty list, got %+v", payload.Languages)
	}
}

func TestDownloadSubtitlesToolDefaultsLanguage(t *testing.T) {
	srv := newTestServer(&fakeExtractor{
		track: []byte("1\n00:00:01,000 --> 00:00:02,000\nhi\n"),
	})

	result, err := srv.handleDownloadSubtitles(context.Background(), callRequest(map[string]any{"url": "vid"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var payload struct {
		Language  string `json:"language"`
		PlainText string `json:"plain_text"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if payload.Language != "en" {
		t.Fatalf("expected default language en, got %q", payload.Language)
	}
	if payload.PlainText != "hi" {
		t.Fatalf("unexpected plain text: %q", payload.PlainText)
	}
}

func TestDownloadSubtitlesToolLanguageNotAvailable(t *testing.T) {
	srv := newTestServer(&fakeExtractor{
		err: ytdlp.Wrap(ytdlp.ErrLanguageNotAvailable, "fetch track", `no "xx" subtitle track`, nil),
	})

	result, err := srv.handleDownloadSubtitles(context.Background(),
		callRequest(map[string]any{"url": "vid", "lang": "xx"}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}
	if !strings.HasPrefix(resultText(t, result), "language_not_available:") {
		t.Fatalf("expected kind prefix, got %q", resultText(t, result))
	}
}

func TestSubtitleWorkflowPrompt(t *testing.T) {
	srv := newTestServer(&fakeExtractor{})

	var req mcp.GetPromptRequest
	req.Params.Arguments = map[string]string{"url": "https://example.test/v"}

	result, err := srv.handleSubtitleWorkflow(context.Background(), req)
	if err != nil {
		t.Fatalf("prompt handler returned error: %v", err)
	}
	if len(result.Messages) != 4 {
		t.Fatalf("expected 4 workflow messages, got %d", len(result.Messages))
	}
	first, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Messages[0].Content)
	}
	if !strings.Contains(first.Text, "https://example.test/v") {
		t.Fatalf("url missing from prompt: %q", first.Text)
	}
}

func TestSubtitleWorkflowPromptRequiresURL(t *testing.T) {
	srv := newTestServer(&fakeExtractor{})

	var req mcp.GetPromptRequest
	req.Params.Arguments = map[string]string{}
	if _, err := srv.handleSubtitleWorkflow(context.Background(), req); err == nil {
		t.Fatal("expected error for missing url")
	}
}
