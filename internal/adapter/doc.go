// Package adapter implements the three extraction operations exposed to
// callers: video metadata lookup, subtitle-language enumeration, and
// subtitle download. All real work is delegated to the ytdlp Extractor;
// the adapter validates inputs, reshapes results, and classifies failures.
package adapter
