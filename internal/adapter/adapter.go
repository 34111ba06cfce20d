package adapter

import (
	"context"
	"log/slog"
	"time"

	"ytsubs/internal/language"
	"ytsubs/internal/logging"
	"ytsubs/internal/subtitle"
	"ytsubs/internal/ytdlp"
)

// maxDescriptionLen bounds how much of the tool-reported description is
// relayed; YouTube descriptions can run to tens of kilobytes.
const maxDescriptionLen = 4096

// VideoInfo is the metadata surfaced by GetVideoInfo.
type VideoInfo struct {
	Title           string `json:"title"`
	DurationSeconds int64  `json:"duration_seconds"`
	UploadDate      string `json:"upload_date,omitempty"`
	Uploader        string `json:"uploader"`
	ViewCount       int64  `json:"view_count"`
	Description     string `json:"description"`
}

// LanguageEntry describes one available subtitle track.
type LanguageEntry struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	AutoGenerated bool   `json:"auto_generated"`
}

// Adapter exposes the three extraction operations over an injected
// Extractor. It holds no per-call state and is safe for concurrent use.
type Adapter struct {
	extractor ytdlp.Extractor
	logger    *slog.Logger
}

// New constructs an Adapter. A nil logger falls back to a no-op logger.
func New(extractor ytdlp.Extractor, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Adapter{extractor: extractor, logger: logger}
}

// GetVideoInfo fetches metadata for the referenced video. Reference validity
// is delegated to the extraction tool; missing fields get zero-value
// defaults rather than failing the call.
func (a *Adapter) GetVideoInfo(ctx context.Context, ref string) (VideoInfo, error) {
	started := time.Now()
	md, err := a.extractor.ExtractMetadata(ctx, ref)
	if err != nil {
		a.logFailure("video info", ref, err)
		return VideoInfo{}, err
	}

	info := VideoInfo{
		Title:           md.Title,
		DurationSeconds: md.DurationSeconds,
		UploadDate:      formatUploadDate(md.UploadDate),
		Uploader:        md.Uploader,
		ViewCount:       md.ViewCount,
		Description:     truncate(md.Description, maxDescriptionLen),
	}
	a.logger.Info("video info fetched",
		logging.String("ref", ref),
		logging.String("title", info.Title),
		logging.Duration("elapsed", time.Since(started)))
	return info, nil
}

// ListSubtitleLanguages enumerates the video's subtitle tracks, manually
// authored tracks first, each group in tool-reported order. Zero tracks is
// a valid result, not an error.
func (a *Adapter) ListSubtitleLanguages(ctx context.Context, ref string) ([]LanguageEntry, error) {
	manual, auto, err := a.extractor.ListTracks(ctx, ref)
	if err != nil {
		a.logFailure("list languages", ref, err)
		return nil, err
	}

	entries := make([]LanguageEntry, 0, len(manual)+len(auto))
	for _, track := range manual {
		entries = append(entries, newEntry(track, false))
	}
	for _, track := range auto {
		entries = append(entries, newEntry(track, true))
	}
	a.logger.Info("subtitle languages listed",
		logging.String("ref", ref),
		logging.Int("manual_count", len(manual)),
		logging.Int("auto_count", len(auto)))
	return entries, nil
}

// DownloadSubtitles fetches the track for the requested language and parses
// it into ordered cues. The language code is not pre-validated against the
// enumerated list; the tool decides availability.
func (a *Adapter) DownloadSubtitles(ctx context.Context, ref, lang string) (subtitle.Document, error) {
	started := time.Now()
	data, err := a.extractor.FetchTrack(ctx, ref, lang)
	if err != nil {
		a.logFailure("download subtitles", ref, err)
		return subtitle.Document{}, err
	}

	cues, err := subtitle.Parse(data)
	if err != nil {
		err = ytdlp.Wrap(ytdlp.ErrMalformedOutput, "download subtitles", "parse subtitle file", err)
		a.logFailure("download subtitles", ref, err)
		return subtitle.Document{}, err
	}
	if len(cues) == 0 {
		err = ytdlp.Wrap(ytdlp.ErrEmptyTrack, "download subtitles",
			"track resolved but contains no cues", nil)
		a.logFailure("download subtitles", ref, err)
		return subtitle.Document{}, err
	}

	a.logger.Info("subtitles downloaded",
		logging.String("ref", ref),
		logging.String("lang", lang),
		logging.Int("cue_count", len(cues)),
		logging.Duration("elapsed", time.Since(started)))
	return subtitle.Document{Language: lang, Cues: cues}, nil
}

func (a *Adapter) logFailure(operation, ref string, err error) {
	a.logger.Warn("operation failed",
		logging.String("operation", operation),
		logging.String("ref", ref),
		logging.String("kind", ytdlp.Kind(err)),
		logging.Error(err))
}

func newEntry(track ytdlp.Track, auto bool) LanguageEntry {
	name := track.Name
	if name == "" {
		name = language.DisplayName(track.Code)
	}
	return LanguageEntry{Code: track.Code, Name: name, AutoGenerated: auto}
}

// formatUploadDate converts the tool's YYYYMMDD form to YYYY-MM-DD, passing
// anything else through untouched.
func formatUploadDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	if _, err := time.Parse("20060102", raw); err != nil {
		return raw
	}
	return raw[:4] + "-" + raw[4:6] + "-" + raw[6:8]
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	// Avoid splitting a multi-byte rune at the boundary.
	for len(cut) > 0 && cut[len(cut)-1]&0xC0 == 0x80 {
		cut = cut[:len(cut)-1]
	}
	return cut + "…"
}
