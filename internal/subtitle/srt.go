package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// Cue is one timed subtitle unit. Times are seconds from stream start.
type Cue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Document is an ordered cue sequence for a single language track.
type Document struct {
	Language string `json:"language"`
	Cues     []Cue  `json:"cues"`
}

// PlainText returns the cue text stripped of all timing, one cue per line.
func (d Document) PlainText() string {
	parts := make([]string, 0, len(d.Cues))
	for _, cue := range d.Cues {
		if text := strings.TrimSpace(cue.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// Parse reads SRT content into ordered cues. Blocks without a timing line
// are skipped; a present but unparseable timing line is an error. Empty or
// whitespace-only input yields zero cues and no error.
func Parse(data []byte) ([]Cue, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		timingIdx := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timingIdx = i
				break
			}
		}
		if timingIdx < 0 {
			continue
		}

		start, end, err := parseTimingLine(lines[timingIdx])
		if err != nil {
			return nil, err
		}
		text := strings.TrimSpace(strings.Join(lines[timingIdx+1:], "\n"))

		cues = append(cues, Cue{Start: start, End: end, Text: text})
	}
	return cues, nil
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	// Position hints may trail the end timestamp; keep the first token.
	endText := strings.TrimSpace(parts[1])
	if idx := strings.IndexByte(endText, ' '); idx >= 0 {
		endText = endText[:idx]
	}
	end, err := parseTimestamp(endText)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma (SRT standard uses comma for milliseconds).
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// FormatTimestamp renders seconds in SRT HH:MM:SS,mmm form.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int64(seconds*1000 + 0.5)
	h := millis / 3600000
	millis -= h * 3600000
	m := millis / 60000
	millis -= m * 60000
	s := millis / 1000
	millis -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, millis)
}

// Render writes the document back out as SRT, used by the fetch command.
func (d Document) Render() string {
	var sb strings.Builder
	for i, cue := range d.Cues {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			i+1, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), cue.Text)
	}
	return sb.String()
}
