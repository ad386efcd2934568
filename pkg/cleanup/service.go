// Package cleanup provides data retention: old terminal tasks and expired
// webhook event ids are deleted on a fixed cadence.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/webhookevent"
	"github.com/openscribe/scribe/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes terminal tasks past the retention window (transcripts follow
//     via cascade)
//   - Deletes processed webhook event ids past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"webhook_event_ttl", s.config.WebhookEventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldTasks(ctx)
	s.deleteExpiredWebhookEvents(ctx)
}

func (s *Service) deleteOldTasks(ctx context.Context) {
	count, err := DeleteOldTasks(ctx, s.client, s.config.TaskRetentionDays)
	if err != nil {
		slog.Error("Retention: task deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old tasks", "count", count)
	}
}

func (s *Service) deleteExpiredWebhookEvents(ctx context.Context) {
	count, err := DeleteExpiredWebhookEvents(ctx, s.client, s.config.WebhookEventTTL)
	if err != nil {
		slog.Error("Retention: webhook event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired webhook events", "count", count)
	}
}

// DeleteOldTasks removes terminal tasks older than retentionDays. In-flight
// tasks are never touched, regardless of age.
func DeleteOldTasks(ctx context.Context, client *ent.Client, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	n, err := client.Task.Delete().
		Where(
			task.StatusIn(task.StatusSucceeded, task.StatusFailed),
			task.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old tasks: %w", err)
	}
	return n, nil
}

// DeleteExpiredWebhookEvents removes processed event ids older than ttl.
func DeleteExpiredWebhookEvents(ctx context.Context, client *ent.Client, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	n, err := client.WebhookEvent.Delete().
		Where(webhookevent.ReceivedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired webhook events: %w", err)
	}
	return n, nil
}
