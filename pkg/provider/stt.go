package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
)

// wordGapThreshold is the silence gap (seconds) between consecutive words
// that forces a new segment in the word-stream fallback.
const wordGapThreshold = 1.0

// STTClient adapts the synchronous speech-to-text service (diarizing,
// punctuating, utterance-grouping).
type STTClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewSTTClient creates a new adapter from config.
func NewSTTClient(cfg *config.STTConfig) *STTClient {
	return &STTClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

// STTOptions tunes a transcription request.
type STTOptions struct {
	Language       string
	DetectLanguage bool
	Diarize        bool
}

// STTResponse mirrors the provider's wire format.
type STTResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			DetectedLanguage string `json:"detected_language"`
			Alternatives     []struct {
				Transcript string    `json:"transcript"`
				Words      []STTWord `json:"words"`
			} `json:"alternatives"`
		} `json:"channels"`
		Utterances []STTUtterance `json:"utterances"`
	} `json:"results"`
}

// STTWord is one recognized word with timing and optional speaker id.
type STTWord struct {
	Word           string  `json:"word"`
	PunctuatedWord string  `json:"punctuated_word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Speaker        *int    `json:"speaker"`
}

// STTUtterance is a provider-grouped span of words with a single speaker.
type STTUtterance struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Transcript string  `json:"transcript"`
	Speaker    *int    `json:"speaker"`
}

// Transcribe submits the media URL for synchronous transcription.
func (c *STTClient) Transcribe(ctx context.Context, mediaURL string, opts STTOptions) (*TranscriptResult, error) {
	q := url.Values{}
	q.Set("model", c.model)
	q.Set("punctuate", "true")
	q.Set("utterances", "true")
	q.Set("diarize", strconv.FormatBool(opts.Diarize))
	q.Set("detect_language", strconv.FormatBool(opts.DetectLanguage))
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}

	payload, err := json.Marshal(map[string]string{"url": mediaURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listen request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/listen?"+q.Encode(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build listen request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listen request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read listen response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listen returned %d: %s", resp.StatusCode, summarize(body))
	}

	var sr STTResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode listen response: %w", err)
	}

	return ResultFromSTTResponse(&sr, body), nil
}

// ResultFromSTTResponse converts a decoded provider response into a
// TranscriptResult. Exported so the async webhook path can reuse it.
func ResultFromSTTResponse(sr *STTResponse, raw []byte) *TranscriptResult {
	result := &TranscriptResult{
		Duration:    sr.Metadata.Duration,
		IsGenerated: true,
		Raw:         raw,
	}
	if len(sr.Results.Channels) > 0 {
		result.Language = sr.Results.Channels[0].DetectedLanguage
	}

	// Utterances are preferred: the provider already grouped words by
	// semantics and speaker.
	if len(sr.Results.Utterances) > 0 {
		result.Segments = SegmentsFromUtterances(sr.Results.Utterances)
		return result
	}

	if len(sr.Results.Channels) > 0 && len(sr.Results.Channels[0].Alternatives) > 0 {
		result.Segments = SegmentsFromWords(sr.Results.Channels[0].Alternatives[0].Words)
	}
	return result
}

// SegmentsFromUtterances maps provider utterances 1:1 onto segments.
func SegmentsFromUtterances(utterances []STTUtterance) []models.Segment {
	segments := make([]models.Segment, 0, len(utterances))
	for _, u := range utterances {
		if u.Transcript == "" {
			continue
		}
		segments = append(segments, models.Segment{
			Start:   u.Start,
			End:     u.End,
			Text:    u.Transcript,
			Speaker: speakerLabel(u.Speaker),
		})
	}
	return segments
}

// SegmentsFromWords walks the word stream and emits a new segment whenever
// the speaker changes or the silence gap between consecutive words exceeds
// wordGapThreshold.
func SegmentsFromWords(words []STTWord) []models.Segment {
	var segments []models.Segment
	var cur *models.Segment
	var curSpeaker *int

	flush := func() {
		if cur != nil {
			segments = append(segments, *cur)
			cur = nil
		}
	}

	for _, w := range words {
		text := w.PunctuatedWord
		if text == "" {
			text = w.Word
		}
		if text == "" {
			continue
		}

		speakerChanged := cur != nil && !speakerEqual(curSpeaker, w.Speaker)
		gapExceeded := cur != nil && w.Start-cur.End > wordGapThreshold
		if speakerChanged || gapExceeded {
			flush()
		}

		if cur == nil {
			cur = &models.Segment{
				Start:   w.Start,
				End:     w.End,
				Text:    text,
				Speaker: speakerLabel(w.Speaker),
			}
			curSpeaker = w.Speaker
			continue
		}

		cur.Text += " " + text
		cur.End = w.End
	}
	flush()

	return segments
}

func speakerEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func speakerLabel(speaker *int) *string {
	if speaker == nil {
		return nil
	}
	label := fmt.Sprintf("Speaker %d", *speaker)
	return &label
}

// VerifyWebhookSignature checks the HMAC-SHA256 signature the STT service
// sends in the dg-signature header over the raw callback body. The
// comparison is constant-time.
func VerifyWebhookSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
