// Package subtitle renders segments into SRT and WebVTT documents and
// parses them back for round-trip checks.
package subtitle

import (
	"fmt"
	"math"
	"strings"

	"github.com/openscribe/scribe/pkg/models"
)

// FormatSRT renders segments as an SRT document: 1-indexed blocks of
// index, "HH:MM:SS,mmm --> HH:MM:SS,mmm" and the segment text, separated
// by blank lines. Text is emitted verbatim.
func FormatSRT(segments []models.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n", i+1, srtTimestamp(s.Start), srtTimestamp(s.End), s.Text)
		if i < len(segments)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// srtTimestamp formats seconds as HH:MM:SS,mmm.
func srtTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// splitTimestamp decomposes a seconds value into clock components. The
// small epsilon before flooring keeps values like 62.001 from landing on
// 000 milliseconds through float representation error.
func splitTimestamp(seconds float64) (h, m, s, ms int) {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Floor(seconds*1000 + 1e-6))
	ms = int(totalMillis % 1000)
	totalSeconds := totalMillis / 1000
	s = int(totalSeconds % 60)
	m = int((totalSeconds / 60) % 60)
	h = int(totalSeconds / 3600)
	return h, m, s, ms
}

// ParseSRT decodes an SRT document back into segments. Only the shape
// FormatSRT emits is supported; it exists for verification, not for
// ingesting arbitrary subtitle files.
func ParseSRT(doc string) ([]models.Segment, error) {
	var segments []models.Segment
	for _, block := range splitBlocks(doc) {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			return nil, fmt.Errorf("malformed SRT block: %q", block)
		}
		start, end, err := parseTimeline(lines[1], ",")
		if err != nil {
			return nil, err
		}
		segments = append(segments, models.Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}
	return segments, nil
}

func splitBlocks(doc string) []string {
	var blocks []string
	for _, block := range strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n\n") {
		block = strings.Trim(block, "\n")
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// parseTimeline decodes "HH:MM:SS<sep>mmm --> HH:MM:SS<sep>mmm".
func parseTimeline(line, sep string) (start, end float64, err error) {
	parts := strings.Split(line, " --> ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed timeline: %q", line)
	}
	if start, err = parseTimestamp(parts[0], sep); err != nil {
		return 0, 0, err
	}
	if end, err = parseTimestamp(parts[1], sep); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(ts, sep string) (float64, error) {
	var h, m, s, ms int
	format := "%02d:%02d:%02d" + sep + "%03d"
	if _, err := fmt.Sscanf(strings.TrimSpace(ts), format, &h, &m, &s, &ms); err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", ts, err)
	}
	return float64(h*3600+m*60+s) + float64(ms)/1000, nil
}
