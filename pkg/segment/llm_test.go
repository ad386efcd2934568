package segment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/llm"
	"github.com/openscribe/scribe/pkg/models"
)

// fakeCompleter returns a canned response or error and records the request.
type fakeCompleter struct {
	response string
	err      error
	lastReq  llm.CompletionRequest
	calls    int
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func TestNormalize_WithoutLLMUsesRules(t *testing.T) {
	n := NewNormalizer(nil)
	assert.False(t, n.HasLLM())

	out := n.Normalize(context.Background(), []models.Segment{
		seg("Hello", 0, 1),
		seg("world.", 1.1, 2),
	}, true)

	require.Len(t, out, 1)
	assert.Equal(t, "Hello world.", out[0].Text)
}

func TestNormalize_LLMResponseUsed(t *testing.T) {
	completer := &fakeCompleter{
		response: `{"segments":[{"start":0,"end":2,"text":"Hello world."}]}`,
	}
	n := NewNormalizer(completer)

	out := n.Normalize(context.Background(), []models.Segment{
		seg("Hello", 0, 1),
		seg("world.", 1.1, 2),
	}, true)

	require.Len(t, out, 1)
	assert.Equal(t, "Hello world.", out[0].Text)
	assert.Equal(t, 2.0, out[0].End)
	assert.InDelta(t, 0.1, completer.lastReq.Temperature, 1e-9)

	// The user message carries the compact payload.
	require.Len(t, completer.lastReq.Messages, 2)
	var compact []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(completer.lastReq.Messages[1].Content), &compact))
	require.Len(t, compact, 2)
	assert.Equal(t, "Hello", compact[0]["t"])
}

func TestNormalize_LLMFailureFallsBackToRules(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	n := NewNormalizer(completer)

	out := n.Normalize(context.Background(), []models.Segment{
		seg("Hello", 0, 1),
		seg("world.", 1.1, 2),
	}, true)

	require.Len(t, out, 1)
	assert.Equal(t, "Hello world.", out[0].Text)
}

func TestNormalize_InvalidLLMResponseFallsBackToRules(t *testing.T) {
	responses := []string{
		"not json at all",
		`{"wrong_key": []}`,
		`{"segments": []}`,
		`{"segments": [{"start": 0}]}`,
		`{"segments": [{"start": -1, "end": 2, "text": "x"}]}`,
	}

	for _, resp := range responses {
		n := NewNormalizer(&fakeCompleter{response: resp})
		out := n.Normalize(context.Background(), []models.Segment{
			seg("Hello", 0, 1),
			seg("world.", 1.1, 2),
		}, true)
		require.Len(t, out, 1, "response %q should fall back to rule merge", resp)
		assert.Equal(t, "Hello world.", out[0].Text)
	}
}

func TestNormalize_RuleOnlyWhenLLMNotRequested(t *testing.T) {
	completer := &fakeCompleter{response: `{"segments":[{"start":0,"end":1,"text":"x"}]}`}
	n := NewNormalizer(completer)

	n.Normalize(context.Background(), []models.Segment{seg("Hello.", 0, 1)}, false)
	assert.Zero(t, completer.calls)
}

func TestTranslate_PreservesShapeAndTemperature(t *testing.T) {
	completer := &fakeCompleter{
		response: `{"segments":[{"start":0,"end":1.5,"text":"Bonjour le monde.","speaker":"Speaker 0"}]}`,
	}
	n := NewNormalizer(completer)

	out, err := n.Translate(context.Background(), []models.Segment{
		spokenSeg("Hello world.", 0, 1.5, "Speaker 0"),
	}, "fr")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bonjour le monde.", out[0].Text)
	assert.Equal(t, "Speaker 0", out[0].SpeakerOrEmpty())
	assert.InDelta(t, 0.3, completer.lastReq.Temperature, 1e-9)
}

func TestTranslate_FailureIsAnError(t *testing.T) {
	n := NewNormalizer(&fakeCompleter{err: errors.New("rate limited")})

	_, err := n.Translate(context.Background(), []models.Segment{seg("hi", 0, 1)}, "fr")
	assert.Error(t, err)
}

func TestTranslate_NoLLMIsAnError(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Translate(context.Background(), []models.Segment{seg("hi", 0, 1)}, "fr")
	assert.Error(t, err)
}

func TestTranslate_EmptyInput(t *testing.T) {
	n := NewNormalizer(nil)

	out, err := n.Translate(context.Background(), nil, "fr")
	require.NoError(t, err)
	assert.Empty(t, out)
}
