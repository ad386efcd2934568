package segment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/openscribe/scribe/pkg/llm"
	"github.com/openscribe/scribe/pkg/models"
)

// Completion temperatures. Merge wants determinism; translate tolerates a
// little variance.
const (
	mergeTemperature     = 0.1
	translateTemperature = 0.3
)

// responseSchema constrains the completion to the shape the normalizer
// consumes. Validation failures route to the fallback path rather than
// corrupting the transcript.
const responseSchema = `{
  "type": "object",
  "required": ["segments"],
  "properties": {
    "segments": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["start", "end", "text"],
        "properties": {
          "start": {"type": "number", "minimum": 0},
          "end": {"type": "number", "minimum": 0},
          "text": {"type": "string", "minLength": 1},
          "speaker": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var compiledResponseSchema = jsonschema.MustCompileString("segments.json", responseSchema)

const mergeSystemPrompt = `You are a subtitle post-processor. You receive caption fragments as a JSON array of objects {i, s, e, t, sp} where i is the index, s/e are start/end seconds, t is the text and sp is the speaker label (may be null).

Merge the fragments into complete sentences by semantics and punctuation. Rules:
- Preserve time ordering. A merged segment's start is the first fragment's start and its end is the last fragment's end.
- Never merge fragments with different speakers.
- Do not invent, drop or rewrite words; only regroup them.

Respond with JSON only: {"segments": [{"start": number, "end": number, "text": string, "speaker": string|null}]}`

const translateSystemPromptFmt = `You are a subtitle translator. You receive subtitle segments as a JSON array of objects {i, s, e, t, sp} where i is the index, s/e are start/end seconds, t is the text and sp is the speaker label (may be null).

Translate every segment's text into %s. Rules:
- Keep timestamps and speakers exactly as given; only rewrite the text.
- Keep one output segment per input segment, in the same order.
- If a segment is already in the target language, return it unchanged.

Respond with JSON only: {"segments": [{"start": number, "end": number, "text": string, "speaker": string|null}]}`

// Completer is the chat-completion dependency of the normalizer.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

// Normalizer turns provider caption fragments into sentence-level segments.
// With a nil Completer it is purely rule-based.
type Normalizer struct {
	completer Completer
}

// NewNormalizer creates a normalizer. completer may be nil.
func NewNormalizer(completer Completer) *Normalizer {
	return &Normalizer{completer: completer}
}

// HasLLM reports whether LLM assistance is available.
func (n *Normalizer) HasLLM() bool {
	return n.completer != nil
}

// Normalize merges fragments into sentences. When useLLM is set and a
// completer is configured the merge is delegated to the LLM; any failure
// there falls back to the rule-based merge, so Normalize never fails.
func (n *Normalizer) Normalize(ctx context.Context, segments []models.Segment, useLLM bool) []models.Segment {
	if len(segments) == 0 {
		return nil
	}

	if useLLM && n.completer != nil {
		merged, err := n.complete(ctx, segments, mergeSystemPrompt, mergeTemperature)
		if err == nil {
			return merged
		}
		slog.Warn("LLM merge failed, falling back to rule-based merge", "error", err)
	}

	return Merge(segments)
}

// Translate rewrites every segment's text into targetLang, preserving
// timestamps and speakers. Unlike the merge path there is no fallback: a
// wrong-language transcript is not a degraded result, it is a wrong one.
func (n *Normalizer) Translate(ctx context.Context, segments []models.Segment, targetLang string) ([]models.Segment, error) {
	if len(segments) == 0 {
		return nil, nil
	}
	if n.completer == nil {
		return nil, fmt.Errorf("translation requested but no LLM configured")
	}

	prompt := fmt.Sprintf(translateSystemPromptFmt, targetLang)
	translated, err := n.complete(ctx, segments, prompt, translateTemperature)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	return translated, nil
}

// compactSegment is the wire shape sent to the LLM. Short keys keep the
// prompt small on long transcripts.
type compactSegment struct {
	Index   int     `json:"i"`
	Start   float64 `json:"s"`
	End     float64 `json:"e"`
	Text    string  `json:"t"`
	Speaker *string `json:"sp"`
}

type segmentsResponse struct {
	Segments []models.Segment `json:"segments"`
}

func (n *Normalizer) complete(ctx context.Context, segments []models.Segment, systemPrompt string, temperature float64) ([]models.Segment, error) {
	compact := make([]compactSegment, len(segments))
	for i, s := range segments {
		compact[i] = compactSegment{Index: i, Start: s.Start, End: s.End, Text: s.Text, Speaker: s.Speaker}
	}
	payload, err := json.Marshal(compact)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal segments: %w", err)
	}

	content, err := n.completer.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature: temperature,
	})
	if err != nil {
		return nil, err
	}

	return parseSegmentsResponse(content)
}

// parseSegmentsResponse validates and decodes the completion body.
func parseSegmentsResponse(content string) ([]models.Segment, error) {
	var doc any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("completion is not valid JSON: %w", err)
	}
	if err := compiledResponseSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("completion failed schema validation: %w", err)
	}

	var sr segmentsResponse
	if err := json.Unmarshal([]byte(content), &sr); err != nil {
		return nil, fmt.Errorf("failed to decode completion: %w", err)
	}
	return sr.Segments, nil
}
