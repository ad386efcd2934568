// Package models contains shared domain types passed between services,
// providers, and the executor pipeline.
package models

// Segment is one subtitle line: a timestamped span of text with an optional
// speaker label. Invariant: 0 <= Start <= End and Text is non-empty after trim.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker *string `json:"speaker,omitempty"`
}

// SpeakerOrEmpty returns the speaker label or "" when unset.
func (s Segment) SpeakerOrEmpty() string {
	if s.Speaker == nil {
		return ""
	}
	return *s.Speaker
}

// SameSpeaker reports whether two segments carry the same speaker label.
// Two nil speakers are considered equal.
func (s Segment) SameSpeaker(other Segment) bool {
	return s.SpeakerOrEmpty() == other.SpeakerOrEmpty()
}
