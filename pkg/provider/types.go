// Package provider contains the adapters for the external transcription
// services. Each adapter normalizes its service's wire format into a
// TranscriptResult so the executor stays provider-agnostic.
package provider

import (
	"encoding/json"
	"errors"

	"github.com/openscribe/scribe/pkg/models"
)

// Engine tags identify the provider family that produced a transcript.
const (
	EngineAutoTranscript = "auto-transcript"
	EngineSTT            = "stt"
)

// Sentinel errors for provider operations.
var (
	// ErrPollTimeout indicates an async transcription job did not complete
	// within the polling budget. Fatal for the task.
	ErrPollTimeout = errors.New("transcription job polling timed out")

	// ErrNoCaptions indicates native mode found no pre-existing captions.
	ErrNoCaptions = errors.New("no native captions available")
)

// TranscriptResult is the uniform output of every provider adapter.
type TranscriptResult struct {
	Segments []models.Segment
	// Duration is the media length in seconds as reported by the provider,
	// or derived from the last segment when not reported.
	Duration float64
	Language string
	// IsGenerated is true when AI transcription ran (billable); false for
	// pre-existing captions.
	IsGenerated bool
	// Raw is the original provider payload, persisted alongside the
	// transcript for reprocessing.
	Raw json.RawMessage
}
