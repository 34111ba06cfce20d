package ytdlp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Track identifies one subtitle track as reported by the tool.
type Track struct {
	Code string
	Name string
}

// Metadata is the subset of the tool's JSON dump consumed by the adapter.
type Metadata struct {
	Title           string
	DurationSeconds int64
	UploadDate      string
	Uploader        string
	ViewCount       int64
	Description     string
	Manual          []Track
	Auto            []Track
}

// payload mirrors the yt-dlp --dump-single-json shape.
type payload struct {
	Title             string   `json:"title"`
	Duration          float64  `json:"duration"`
	UploadDate        string   `json:"upload_date"`
	Uploader          string   `json:"uploader"`
	Channel           string   `json:"channel"`
	ViewCount         int64    `json:"view_count"`
	Description       string   `json:"description"`
	Subtitles         trackMap `json:"subtitles"`
	AutomaticCaptions trackMap `json:"automatic_captions"`
}

// trackFormat is one downloadable rendition of a track. Only the display
// name matters here; the adapter never fetches by URL.
type trackFormat struct {
	Ext  string `json:"ext"`
	Name string `json:"name"`
}

// trackMap preserves the tool's reported language order. encoding/json maps
// shuffle object keys, so decoding walks the token stream instead.
type trackMap struct {
	tracks []Track
}

func (m *trackMap) UnmarshalJSON(data []byte) error {
	m.tracks = nil
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("subtitle map: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("subtitle map: non-string key %v", keyTok)
		}
		var formats []trackFormat
		if err := dec.Decode(&formats); err != nil {
			return fmt.Errorf("subtitle map %q: %w", code, err)
		}
		name := ""
		for _, f := range formats {
			if f.Name != "" {
				name = f.Name
				break
			}
		}
		m.tracks = append(m.tracks, Track{Code: code, Name: name})
	}

	// Consume the closing brace so trailing garbage surfaces as an error.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func parseMetadata(data []byte) (Metadata, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Metadata{}, Wrap(ErrMalformedOutput, "parse metadata", "", err)
	}
	uploader := p.Uploader
	if uploader == "" {
		uploader = p.Channel
	}
	return Metadata{
		Title:           p.Title,
		DurationSeconds: int64(p.Duration),
		UploadDate:      p.UploadDate,
		Uploader:        uploader,
		ViewCount:       p.ViewCount,
		Description:     p.Description,
		Manual:          p.Subtitles.tracks,
		Auto:            p.AutomaticCaptions.tracks,
	}, nil
}
