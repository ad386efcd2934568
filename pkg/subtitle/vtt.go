package subtitle

import (
	"fmt"
	"strings"

	"github.com/openscribe/scribe/pkg/models"
)

// vttHeader opens every WebVTT document.
const vttHeader = "WEBVTT\n\n"

// FormatVTT renders segments as a WebVTT document: the WEBVTT header, then
// blocks of "HH:MM:SS.mmm --> HH:MM:SS.mmm" and the segment text, separated
// by blank lines.
func FormatVTT(segments []models.Segment) string {
	var b strings.Builder
	b.WriteString(vttHeader)
	for i, s := range segments {
		fmt.Fprintf(&b, "%s --> %s\n%s\n", vttTimestamp(s.Start), vttTimestamp(s.End), s.Text)
		if i < len(segments)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// vttTimestamp formats seconds as HH:MM:SS.mmm.
func vttTimestamp(seconds float64) string {
	h, m, s, ms := splitTimestamp(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// ParseVTT decodes a WebVTT document produced by FormatVTT.
func ParseVTT(doc string) ([]models.Segment, error) {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	if !strings.HasPrefix(doc, "WEBVTT") {
		return nil, fmt.Errorf("missing WEBVTT header")
	}
	doc = strings.TrimPrefix(doc, "WEBVTT")

	var segments []models.Segment
	for _, block := range splitBlocks(doc) {
		lines := strings.Split(block, "\n")
		if len(lines) < 2 || !strings.Contains(lines[0], " --> ") {
			return nil, fmt.Errorf("malformed VTT block: %q", block)
		}
		start, end, err := parseTimeline(lines[0], ".")
		if err != nil {
			return nil, err
		}
		segments = append(segments, models.Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(lines[1:], "\n"),
		})
	}
	return segments, nil
}
