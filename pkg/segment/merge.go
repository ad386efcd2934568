// Package segment normalizes provider caption fragments into sentence-level
// subtitle segments: a rule-based merge always available, and an optional
// LLM-assisted merge/translate pass.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/openscribe/scribe/pkg/models"
)

// Merge parameters.
const (
	// maxGapSeconds is the silence gap between fragments that forces a new
	// segment.
	maxGapSeconds = 1.5

	// maxLengthChars caps a merged segment's text length in runes.
	maxLengthChars = 200
)

// terminalPunct are the sentence-terminal characters that close a segment.
const terminalPunct = "。！？.!?"

// cjkClass matches CJK ideographs and fullwidth punctuation for the
// whitespace cleanup pass.
const cjkClass = `[\x{4e00}-\x{9fa5}，。！？、：；“”‘’（）【】]`

var cjkSpaceRE = regexp.MustCompile("(" + cjkClass + `)\s+(` + cjkClass + ")")

// Merge folds fragmentary caption chunks into sentence-level segments.
// A new segment starts when the speaker changes, the current text ends in
// sentence-terminal punctuation, the joined text would exceed
// maxLengthChars, or the gap to the next chunk exceeds maxGapSeconds.
// The operation is idempotent: Merge(Merge(s)) == Merge(s).
func Merge(chunks []models.Segment) []models.Segment {
	var merged []models.Segment
	var cur *models.Segment

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(CleanChineseSpacing(cur.Text))
		if cur.Text != "" {
			merged = append(merged, *cur)
		}
		cur = nil
	}

	for _, chunk := range chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}

		if cur != nil && startsNewSegment(*cur, chunk) {
			flush()
		}

		if cur == nil {
			c := chunk
			cur = &c
			continue
		}

		cur.Text = SmartJoin(cur.Text, chunk.Text)
		cur.End = chunk.End
	}
	flush()

	return merged
}

// startsNewSegment decides whether next begins a new segment after cur.
func startsNewSegment(cur, next models.Segment) bool {
	if !cur.SameSpeaker(next) {
		return true
	}
	if r, ok := lastRune(cur.Text); ok && strings.ContainsRune(terminalPunct, r) {
		return true
	}
	if utf8.RuneCountInString(SmartJoin(cur.Text, next.Text)) > maxLengthChars {
		return true
	}
	if next.Start-cur.End > maxGapSeconds {
		return true
	}
	return false
}

// SmartJoin concatenates two text fragments with language-aware spacing:
// a single space when both the left tail and right head are ASCII
// alphanumerics, nothing otherwise.
func SmartJoin(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}

	l, _ := lastRune(left)
	r, _ := utf8.DecodeRuneInString(right)
	if isASCIIAlnum(l) && isASCIIAlnum(r) {
		return left + " " + right
	}
	return left + right
}

// CleanChineseSpacing removes whitespace between CJK characters and
// fullwidth punctuation. The replacement loops because overlapping matches
// leave residues in a single pass; it preserves every non-space character
// in order and is idempotent.
func CleanChineseSpacing(s string) string {
	for {
		out := cjkSpaceRE.ReplaceAllString(s, "$1$2")
		if out == s {
			return out
		}
		s = out
	}
}

func lastRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r, true
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
