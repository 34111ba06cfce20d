package ytdlp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying extraction failures. Operations wrap one of
// these markers so callers can route on errors.Is without parsing messages.
var (
	ErrToolUnavailable      = errors.New("extraction tool unavailable")
	ErrExtraction           = errors.New("extraction failed")
	ErrLanguageNotAvailable = errors.New("subtitle language not available")
	ErrEmptyTrack           = errors.New("subtitle track empty")
	ErrMalformedOutput      = errors.New("malformed tool output")
	ErrTimeout              = errors.New("extraction timed out")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrExtraction
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind maps a classified error to the stable code surfaced on the protocol
// boundary. Unclassified errors report as extraction_failure.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrToolUnavailable):
		return "tool_unavailable"
	case errors.Is(err, ErrLanguageNotAvailable):
		return "language_not_available"
	case errors.Is(err, ErrEmptyTrack):
		return "empty_subtitle_track"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed_output"
	case errors.Is(err, ErrTimeout):
		return "extraction_timeout"
	default:
		return "extraction_failure"
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "tool failure"
	}
	return strings.Join(parts, ": ")
}
