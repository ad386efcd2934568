package provider

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/config"
)

func intPtr(v int) *int { return &v }

func TestSTT_Transcribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/listen", r.URL.Path)
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "nova-2", r.URL.Query().Get("model"))
		assert.Equal(t, "true", r.URL.Query().Get("punctuate"))
		assert.Equal(t, "true", r.URL.Query().Get("utterances"))
		assert.Equal(t, "true", r.URL.Query().Get("diarize"))
		assert.Equal(t, "true", r.URL.Query().Get("detect_language"))

		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "https://example.com/a.mp3", req["url"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]interface{}{"duration": 125.3},
			"results": map[string]interface{}{
				"channels": []map[string]interface{}{
					{"detected_language": "en"},
				},
				"utterances": []map[string]interface{}{
					{"start": 0.0, "end": 2.5, "transcript": "hello there", "speaker": 0},
					{"start": 2.9, "end": 5.0, "transcript": "general greeting", "speaker": 1},
				},
			},
		})
	}))
	defer server.Close()

	client := NewSTTClient(&config.STTConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "nova-2",
	})

	res, err := client.Transcribe(context.Background(), "https://example.com/a.mp3", STTOptions{
		Diarize:        true,
		DetectLanguage: true,
	})
	require.NoError(t, err)

	assert.True(t, res.IsGenerated)
	assert.Equal(t, 125.3, res.Duration)
	assert.Equal(t, "en", res.Language)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, "hello there", res.Segments[0].Text)
	assert.Equal(t, "Speaker 0", res.Segments[0].SpeakerOrEmpty())
	assert.Equal(t, "Speaker 1", res.Segments[1].SpeakerOrEmpty())
}

func TestResultFromSTTResponse_PrefersUtterances(t *testing.T) {
	sr := &STTResponse{}
	sr.Metadata.Duration = 10
	sr.Results.Utterances = []STTUtterance{
		{Start: 0, End: 2, Transcript: "from utterance", Speaker: intPtr(0)},
	}
	sr.Results.Channels = []struct {
		DetectedLanguage string `json:"detected_language"`
		Alternatives     []struct {
			Transcript string    `json:"transcript"`
			Words      []STTWord `json:"words"`
		} `json:"alternatives"`
	}{
		{DetectedLanguage: "en"},
	}

	res := ResultFromSTTResponse(sr, nil)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, "from utterance", res.Segments[0].Text)
}

func TestSegmentsFromWords_SpeakerChange(t *testing.T) {
	words := []STTWord{
		{Word: "hello", PunctuatedWord: "Hello", Start: 0, End: 0.5, Speaker: intPtr(0)},
		{Word: "there", PunctuatedWord: "there.", Start: 0.6, End: 1.0, Speaker: intPtr(0)},
		{Word: "hi", PunctuatedWord: "Hi.", Start: 1.1, End: 1.4, Speaker: intPtr(1)},
	}

	segments := SegmentsFromWords(words)
	require.Len(t, segments, 2)

	assert.Equal(t, "Hello there.", segments[0].Text)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 1.0, segments[0].End)
	assert.Equal(t, "Speaker 0", segments[0].SpeakerOrEmpty())

	assert.Equal(t, "Hi.", segments[1].Text)
	assert.Equal(t, "Speaker 1", segments[1].SpeakerOrEmpty())
}

func TestSegmentsFromWords_GapBoundary(t *testing.T) {
	words := []STTWord{
		{Word: "one", Start: 0, End: 0.4},
		{Word: "two", Start: 0.5, End: 0.9},
		// 1.1s silence exceeds the 1.0s threshold
		{Word: "three", Start: 2.0, End: 2.4},
	}

	segments := SegmentsFromWords(words)
	require.Len(t, segments, 2)
	assert.Equal(t, "one two", segments[0].Text)
	assert.Equal(t, "three", segments[1].Text)
	assert.Nil(t, segments[1].Speaker)
}

func TestSegmentsFromWords_FallsBackToRawWord(t *testing.T) {
	words := []STTWord{
		{Word: "plain", Start: 0, End: 0.5},
		{Word: "words", PunctuatedWord: "words.", Start: 0.6, End: 1.0},
	}

	segments := SegmentsFromWords(words)
	require.Len(t, segments, 1)
	assert.Equal(t, "plain words.", segments[0].Text)
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"metadata":{"duration":60}}`)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyWebhookSignature(secret, body, signature))
	assert.False(t, VerifyWebhookSignature(secret, body, "deadbeef"))
	assert.False(t, VerifyWebhookSignature(secret, []byte("tampered"), signature))
	assert.False(t, VerifyWebhookSignature("", body, signature))
	assert.False(t, VerifyWebhookSignature(secret, body, ""))
}
