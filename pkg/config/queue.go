package config

import (
	"fmt"
	"time"
)

// QueueConfig contains dispatcher and worker pool configuration.
type QueueConfig struct {
	// Enabled selects the durable queue-mode dispatcher. When false the
	// in-process cooperative runner is used (development, single node).
	Enabled bool

	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int

	// MaxConcurrentTasks is the global limit of tasks in processing across
	// all replicas, enforced by a database COUNT(*) check before claiming.
	MaxConcurrentTasks int

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration

	// MaxAttempts is the per-task delivery budget for retriable failures.
	MaxAttempts int

	// RetryBackoff is the initial backoff between retried attempts;
	// it doubles per attempt.
	RetryBackoff time.Duration

	// SweepInterval is how often the stuck-task sweeper runs.
	SweepInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for in-flight tasks
	// during shutdown.
	GracefulShutdownTimeout time.Duration
}

func loadQueueConfig() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.Enabled = getEnvBool("QUEUE_ENABLED", cfg.Enabled)
	cfg.WorkerCount = getEnvInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentTasks = getEnvInt("MAX_CONCURRENT_TASKS", cfg.MaxConcurrentTasks)
	return cfg
}

// DefaultQueueConfig returns the built-in dispatcher defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Enabled:                 false,
		WorkerCount:             4,
		MaxConcurrentTasks:      8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxAttempts:             3,
		RetryBackoff:            5 * time.Second,
		SweepInterval:           5 * time.Minute,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}

// Validate checks queue configuration invariants.
func (c *QueueConfig) Validate() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive")
	}
	if c.MaxConcurrentTasks <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_TASKS must be positive")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("queue max attempts must be positive")
	}
	return nil
}
