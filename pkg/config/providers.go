package config

import (
	"fmt"
	"time"
)

// ProvidersConfig groups the external transcription provider settings.
type ProvidersConfig struct {
	AutoTranscript *AutoTranscriptConfig
	STT            *STTConfig
	Metadata       *MetadataConfig
	Subscription   *SubscriptionConfig
}

// AutoTranscriptConfig configures the auto-transcript provider adapter
// (native caption fetch + async AI transcription with polling).
type AutoTranscriptConfig struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
	// MaxPollAttempts caps async job polling; with the default 5s interval
	// this bounds a job at roughly 10 minutes.
	MaxPollAttempts int
}

// STTConfig configures the synchronous speech-to-text provider adapter.
type STTConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	// WebhookSecret signs async callback bodies (dg-signature header).
	WebhookSecret string
}

// MetadataConfig configures the platform metadata lookup used for
// duration-based trial gating.
type MetadataConfig struct {
	BaseURL string
	APIKey  string
}

// SubscriptionConfig configures the billing platform integration.
type SubscriptionConfig struct {
	// WebhookSecret signs subscription event bodies (webhook-signature
	// header). Events with a bad signature are rejected before any credit.
	WebhookSecret string
}

func loadProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		AutoTranscript: &AutoTranscriptConfig{
			BaseURL:         getEnv("AUTO_TRANSCRIPT_BASE_URL", "https://api.supadata.ai"),
			APIKey:          getEnv("AUTO_TRANSCRIPT_API_KEY", ""),
			PollInterval:    time.Duration(getEnvInt("AUTO_TRANSCRIPT_POLL_INTERVAL_SECONDS", 5)) * time.Second,
			MaxPollAttempts: getEnvInt("AUTO_TRANSCRIPT_MAX_POLL_ATTEMPTS", 120),
		},
		STT: &STTConfig{
			BaseURL:       getEnv("STT_BASE_URL", "https://api.deepgram.com"),
			APIKey:        getEnv("STT_API_KEY", ""),
			Model:         getEnv("STT_MODEL", "nova-2"),
			WebhookSecret: getEnv("STT_WEBHOOK_SECRET", ""),
		},
		Metadata: &MetadataConfig{
			BaseURL: getEnv("METADATA_BASE_URL", "https://api.supadata.ai"),
			APIKey:  getEnv("METADATA_API_KEY", ""),
		},
		Subscription: &SubscriptionConfig{
			WebhookSecret: getEnv("SUBSCRIPTION_WEBHOOK_SECRET", ""),
		},
	}
}

// Validate checks provider configuration invariants.
func (c *ProvidersConfig) Validate() error {
	if c.AutoTranscript.PollInterval <= 0 {
		return fmt.Errorf("AUTO_TRANSCRIPT_POLL_INTERVAL_SECONDS must be positive")
	}
	if c.AutoTranscript.MaxPollAttempts <= 0 {
		return fmt.Errorf("AUTO_TRANSCRIPT_MAX_POLL_ATTEMPTS must be positive")
	}
	return nil
}

// LLMConfig configures the optional chat-completion service used for
// LLM-assisted segment merging and translation.
type LLMConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

func loadLLMConfig() *LLMConfig {
	return &LLMConfig{
		Enabled: getEnvBool("LLM_ENABLED", false),
		BaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  getEnv("LLM_API_KEY", ""),
		Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
	}
}
