package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
)

// Mode selects how the auto-transcript service resolves a request.
type Mode string

// Supported modes.
const (
	// ModeNative only returns pre-existing captions; absence is not an error
	// for the caller (nil result).
	ModeNative Mode = "native"
	// ModeGenerate always runs AI transcription; billable.
	ModeGenerate Mode = "generate"
	// ModeAuto tries native first and falls back to generation.
	ModeAuto Mode = "auto"
)

// AutoTranscriptClient adapts the third-party auto-transcript service:
// synchronous caption fetch plus asynchronous AI transcription with polling.
type AutoTranscriptClient struct {
	baseURL         string
	apiKey          string
	httpClient      *http.Client
	pollInterval    time.Duration
	maxPollAttempts int
}

// NewAutoTranscriptClient creates a new adapter from config.
func NewAutoTranscriptClient(cfg *config.AutoTranscriptConfig) *AutoTranscriptClient {
	return &AutoTranscriptClient{
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		pollInterval:    cfg.PollInterval,
		maxPollAttempts: cfg.MaxPollAttempts,
	}
}

// transcriptResponse is the wire shape of both the initial request and the
// job polling endpoint. Content is either a plain string or a chunk array.
type transcriptResponse struct {
	Content        json.RawMessage `json:"content"`
	Lang           string          `json:"lang"`
	AvailableLangs []string        `json:"availableLangs"`
	Status         string          `json:"status"`
	JobID          string          `json:"jobId"`
	Error          string          `json:"error"`
}

// transcriptChunk is one caption fragment; offsets are in milliseconds.
type transcriptChunk struct {
	Text     string  `json:"text"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Lang     string  `json:"lang"`
}

// Transcribe requests a transcript for the given media URL. A 202 response
// switches to the async path: the job is polled until its content arrives or
// the polling budget (maxPollAttempts × pollInterval, ≈10 minutes with
// defaults) runs out.
//
// In native mode a not-found response yields (nil, nil): absent captions are
// a routing signal, not a failure.
func (c *AutoTranscriptClient) Transcribe(ctx context.Context, mediaURL string, mode Mode, lang string) (*TranscriptResult, error) {
	q := url.Values{}
	q.Set("url", mediaURL)
	q.Set("mode", string(mode))
	if lang != "" {
		q.Set("lang", lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/transcript?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcript request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var tr transcriptResponse
		if err := json.Unmarshal(body, &tr); err != nil {
			return nil, fmt.Errorf("failed to decode transcript response: %w", err)
		}
		// Synchronous resolution: generated only when explicitly requested.
		return c.buildResult(body, &tr, mode == ModeGenerate)

	case http.StatusAccepted:
		var tr transcriptResponse
		if err := json.Unmarshal(body, &tr); err != nil {
			return nil, fmt.Errorf("failed to decode job response: %w", err)
		}
		if tr.JobID == "" {
			return nil, fmt.Errorf("202 response without jobId")
		}
		// Async path means AI transcription ran, billable for auto mode too.
		return c.pollJob(ctx, tr.JobID)

	case http.StatusNotFound:
		if mode == ModeNative {
			return nil, nil
		}
		return nil, fmt.Errorf("transcript not available: %s", summarize(body))

	default:
		return nil, fmt.Errorf("transcript request returned %d: %s", resp.StatusCode, summarize(body))
	}
}

// pollJob polls the async job until content is present. A constant interval
// with a hard attempt cap keeps the worst case at roughly pollInterval ×
// maxPollAttempts.
func (c *AutoTranscriptClient) pollJob(ctx context.Context, jobID string) (*TranscriptResult, error) {
	log := slog.With("job_id", jobID)

	var result *TranscriptResult
	attempt := 0

	operation := func() error {
		attempt++
		body, tr, err := c.fetchJob(ctx, jobID)
		if err != nil {
			return err
		}
		if len(tr.Content) == 0 || string(tr.Content) == "null" {
			log.Debug("Transcription job still active", "attempt", attempt, "status", tr.Status)
			return errStillProcessing
		}
		result, err = c.buildResult(body, tr, true)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(c.pollInterval),
			uint64(c.maxPollAttempts-1),
		),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, errStillProcessing) {
			log.Warn("Transcription job polling exhausted", "attempts", attempt)
			return nil, ErrPollTimeout
		}
		return nil, err
	}

	return result, nil
}

// errStillProcessing marks a poll round that found the job not yet terminal.
var errStillProcessing = errors.New("transcription job still in progress")

// fetchJob performs one poll round-trip.
func (c *AutoTranscriptClient) fetchJob(ctx context.Context, jobID string) ([]byte, *transcriptResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/transcript/"+jobID, nil)
	if err != nil {
		return nil, nil, backoff.Permanent(fmt.Errorf("failed to build poll request: %w", err))
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("poll request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read poll response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, nil, fmt.Errorf("poll returned %d: %s", resp.StatusCode, summarize(body))
	}

	var tr transcriptResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, nil, fmt.Errorf("failed to decode poll response: %w", err)
	}
	return body, &tr, nil
}

// buildResult converts a terminal response into a TranscriptResult. Content
// is either a chunk array (timed) or a plain string (untimed).
func (c *AutoTranscriptClient) buildResult(raw []byte, tr *transcriptResponse, generated bool) (*TranscriptResult, error) {
	result := &TranscriptResult{
		Language:    tr.Lang,
		IsGenerated: generated,
		Raw:         raw,
	}

	var chunks []transcriptChunk
	if err := json.Unmarshal(tr.Content, &chunks); err == nil {
		for _, ch := range chunks {
			if ch.Text == "" {
				continue
			}
			start := ch.Offset / 1000
			end := (ch.Offset + ch.Duration) / 1000
			result.Segments = append(result.Segments, models.Segment{
				Start: start,
				End:   end,
				Text:  ch.Text,
			})
			if end > result.Duration {
				result.Duration = end
			}
		}
		return result, nil
	}

	var text string
	if err := json.Unmarshal(tr.Content, &text); err != nil {
		return nil, fmt.Errorf("transcript content is neither chunks nor text")
	}
	if text != "" {
		result.Segments = append(result.Segments, models.Segment{Text: text})
	}
	return result, nil
}

// summarize truncates a response body for error messages.
func summarize(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
