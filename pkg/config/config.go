// Package config loads and validates service configuration from the
// environment. Every option has a built-in default so a bare environment
// yields a runnable development setup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load() and passed
// to the composition root. Each component receives only the sub-config it
// needs.
type Config struct {
	Task      *TaskConfig
	Trial     *TrialConfig
	Queue     *QueueConfig
	Providers *ProvidersConfig
	LLM       *LLMConfig
	Artifact  *ArtifactConfig
	Retention *RetentionConfig
}

// TaskConfig controls task lifecycle behavior.
type TaskConfig struct {
	// PollIntervalSeconds is advertised to clients as retry_after on creation.
	PollIntervalSeconds int

	// Timeout is the stuck-task threshold: processing tasks whose updated_at
	// is older than this are failed by the sweeper.
	Timeout time.Duration
}

// TrialConfig controls single-use trial gating.
type TrialConfig struct {
	// MaxDuration caps the media duration admitted for trial tasks.
	MaxDuration time.Duration
}

// ArtifactConfig controls the subtitle artifact object store.
type ArtifactConfig struct {
	// BaseURL is the afs-style destination root, e.g. "s3://bucket/scribe"
	// or "file:///var/lib/scribe/artifacts".
	BaseURL string

	// PublicURL is the externally reachable root the stored keys are served
	// from. Defaults to BaseURL when empty.
	PublicURL string
}

// Load reads configuration from the environment, applying defaults and
// validating the result.
func Load() (*Config, error) {
	cfg := &Config{
		Task: &TaskConfig{
			PollIntervalSeconds: getEnvInt("TASK_POLL_INTERVAL_SECONDS", 5),
			Timeout:             time.Duration(getEnvInt("TASK_TIMEOUT_MINUTES", 10)) * time.Minute,
		},
		Trial: &TrialConfig{
			MaxDuration: time.Duration(getEnvInt("TRIAL_MAX_DURATION_MINUTES", 30)) * time.Minute,
		},
		Queue:     loadQueueConfig(),
		Providers: loadProvidersConfig(),
		LLM:       loadLLMConfig(),
		Retention: loadRetentionConfig(),
		Artifact: &ArtifactConfig{
			BaseURL:   getEnv("ARTIFACT_BASE_URL", "file:///tmp/scribe-artifacts"),
			PublicURL: os.Getenv("ARTIFACT_PUBLIC_URL"),
		},
	}
	if cfg.Artifact.PublicURL == "" {
		cfg.Artifact.PublicURL = cfg.Artifact.BaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that env parsing cannot catch.
func (c *Config) Validate() error {
	if c.Task.PollIntervalSeconds <= 0 {
		return fmt.Errorf("TASK_POLL_INTERVAL_SECONDS must be positive")
	}
	if c.Task.Timeout <= 0 {
		return fmt.Errorf("TASK_TIMEOUT_MINUTES must be positive")
	}
	if c.Trial.MaxDuration <= 0 {
		return fmt.Errorf("TRIAL_MAX_DURATION_MINUTES must be positive")
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.Providers.Validate(); err != nil {
		return err
	}
	if err := c.Retention.Validate(); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
