package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/openscribe/scribe/pkg/config"
)

// VideoMetadata is the platform metadata used for duration-based trial
// gating.
type VideoMetadata struct {
	DurationSeconds int    `json:"duration_seconds"`
	Title           string `json:"title"`
	Thumbnail       string `json:"thumbnail"`
}

// MetadataClient resolves platform video URLs to their metadata.
type MetadataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewMetadataClient creates a new metadata client from config.
func NewMetadataClient(cfg *config.MetadataConfig) *MetadataClient {
	return &MetadataClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Lookup fetches metadata for a video URL. Callers treat any failure as a
// rejection signal — the trial gate never admits optimistically.
func (c *MetadataClient) Lookup(ctx context.Context, videoURL string) (*VideoMetadata, error) {
	q := url.Values{}
	q.Set("url", videoURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/video?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build metadata request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata lookup returned %d: %s", resp.StatusCode, summarize(body))
	}

	var md VideoMetadata
	if err := json.Unmarshal(body, &md); err != nil {
		return nil, fmt.Errorf("failed to decode metadata response: %w", err)
	}
	return &md, nil
}
