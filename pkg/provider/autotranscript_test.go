package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/config"
)

func newAutoTranscriptClient(t *testing.T, serverURL string, maxPollAttempts int) *AutoTranscriptClient {
	t.Helper()
	return NewAutoTranscriptClient(&config.AutoTranscriptConfig{
		BaseURL:         serverURL,
		APIKey:          "test-key",
		PollInterval:    5 * time.Millisecond,
		MaxPollAttempts: maxPollAttempts,
	})
}

func TestAutoTranscript_SynchronousChunks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transcript", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "native", r.URL.Query().Get("mode"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"text": "hello", "offset": 0, "duration": 1500},
				{"text": "world", "offset": 1500, "duration": 2000},
			},
			"lang": "en",
		})
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	res, err := client.Transcribe(context.Background(), "https://example.com/v", ModeNative, "")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.False(t, res.IsGenerated)
	assert.Equal(t, "en", res.Language)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, "hello", res.Segments[0].Text)
	assert.Equal(t, 0.0, res.Segments[0].Start)
	assert.Equal(t, 1.5, res.Segments[0].End)
	assert.Equal(t, 3.5, res.Segments[1].End)
	assert.Equal(t, 3.5, res.Duration)
}

func TestAutoTranscript_GenerateModeIsBillable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{{"text": "a", "offset": 0, "duration": 1000}},
			"lang":    "en",
		})
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	res, err := client.Transcribe(context.Background(), "https://example.com/v", ModeGenerate, "")
	require.NoError(t, err)
	assert.True(t, res.IsGenerated)
}

func TestAutoTranscript_AsyncJobPolling(t *testing.T) {
	var polls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/transcript":
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{"jobId": "j1"})
		case "/v1/transcript/j1":
			if polls.Add(1) <= 3 {
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "active"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"content": []map[string]interface{}{{"text": "a", "offset": 0, "duration": 1000}},
				"lang":    "en",
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 10)
	res, err := client.Transcribe(context.Background(), "https://example.com/v", ModeAuto, "")
	require.NoError(t, err)

	// The async path always means AI transcription ran.
	assert.True(t, res.IsGenerated)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, "a", res.Segments[0].Text)
	assert.Equal(t, 1.0, res.Duration)
	assert.EqualValues(t, 4, polls.Load())
}

func TestAutoTranscript_PollingBudgetExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/transcript" {
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]string{"jobId": "j1"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "active"})
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	_, err := client.Transcribe(context.Background(), "https://example.com/v", ModeAuto, "")
	assert.ErrorIs(t, err, ErrPollTimeout)
}

func TestAutoTranscript_NativeModeAbsenceIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	res, err := client.Transcribe(context.Background(), "https://example.com/v", ModeNative, "")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestAutoTranscript_NotFoundInAutoModeIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	_, err := client.Transcribe(context.Background(), "https://example.com/v", ModeAuto, "")
	assert.Error(t, err)
}

func TestAutoTranscript_PlainTextContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": "a single untimed transcript",
			"lang":    "en",
		})
	}))
	defer server.Close()

	client := newAutoTranscriptClient(t, server.URL, 3)
	res, err := client.Transcribe(context.Background(), "https://example.com/v", ModeNative, "")
	require.NoError(t, err)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, "a single untimed transcript", res.Segments[0].Text)
	assert.Zero(t, res.Segments[0].End)
}
