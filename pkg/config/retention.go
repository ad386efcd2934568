package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls how long finished work is kept.
type RetentionConfig struct {
	// TaskRetentionDays is how long terminal tasks (and their transcripts,
	// via cascade) are kept before deletion.
	TaskRetentionDays int

	// WebhookEventTTL is how long processed webhook event ids are kept. It
	// must comfortably exceed the longest provider redelivery window.
	WebhookEventTTL time.Duration

	// CleanupInterval is how often the retention pass runs.
	CleanupInterval time.Duration
}

func loadRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: getEnvInt("TASK_RETENTION_DAYS", 90),
		WebhookEventTTL:   time.Duration(getEnvInt("WEBHOOK_EVENT_TTL_DAYS", 30)) * 24 * time.Hour,
		CleanupInterval:   time.Duration(getEnvInt("CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute,
	}
}

// Validate checks retention configuration invariants.
func (c *RetentionConfig) Validate() error {
	if c.TaskRetentionDays <= 0 {
		return fmt.Errorf("TASK_RETENTION_DAYS must be positive")
	}
	if c.WebhookEventTTL <= 0 {
		return fmt.Errorf("WEBHOOK_EVENT_TTL_DAYS must be positive")
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL_MINUTES must be positive")
	}
	return nil
}
