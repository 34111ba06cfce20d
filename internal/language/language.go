package language

import (
	"strings"

	xlang "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName resolves a language code reported by the extraction tool to a
// human-readable English name. Returns empty for unrecognized codes; callers
// fall back to whatever name the tool itself reported.
func DisplayName(code string) string {
	normalized := Normalize(code)
	if normalized == "" {
		return ""
	}
	tag, err := xlang.Parse(normalized)
	if err != nil {
		return ""
	}
	return display.English.Tags().Name(tag)
}

// Normalize trims a track code down to its BCP-47 core. yt-dlp suffixes
// original-audio auto tracks with "-orig", which the tag parser rejects.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimSuffix(code, "-orig")
	return code
}
