// Package ytdlp wraps the external yt-dlp executable behind a narrow
// Extractor interface. All network access, site-specific scraping, and
// subtitle demuxing happen inside the tool; this package only shapes
// invocations and classifies failures.
package ytdlp
