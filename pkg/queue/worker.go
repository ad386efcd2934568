package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that claims and processes tasks.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor Executor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor Executor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. It is safe
// to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check; best-effort and racy with concurrent workers,
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	t, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", t.ID, "worker_id", w.id, "priority", t.Priority)
	log.Info("Task claimed")

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result := w.process(ctx, t)

	// Terminal update uses a background context; the worker ctx may already
	// be cancelled during shutdown.
	applied, err := MarkTerminal(context.Background(), w.client, t.ID, result)
	if err != nil {
		log.Error("Failed to update task terminal status", "error", err)
		return err
	}
	if !applied {
		// The sweeper or a duplicate delivery settled the row first.
		log.Warn("Task already terminal, dropping result", "status", result.Status)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// process executes the task with the configured delivery budget. Only
// retryable failures are re-run; backoff doubles per attempt. The task
// stays in processing across retries; state never regresses to pending.
func (w *Worker) process(ctx context.Context, t *ent.Task) *ExecutionResult {
	log := slog.With("task_id", t.ID, "worker_id", w.id)

	var result *ExecutionResult
	for attempt := 1; ; attempt++ {
		if err := w.recordAttempt(ctx, t.ID); err != nil {
			log.Warn("Failed to record attempt", "error", err)
		}

		result = w.executor.Execute(ctx, t)
		if result == nil {
			result = &ExecutionResult{
				Status: task.StatusFailed,
				Err:    fmt.Errorf("executor returned nil result"),
			}
		}

		if result.Status == task.StatusSucceeded || !result.Retryable || attempt >= w.config.MaxAttempts {
			return result
		}

		backoff := w.config.RetryBackoff << (attempt - 1)
		log.Warn("Task attempt failed, retrying",
			"attempt", attempt, "backoff", backoff, "error", result.Err)

		select {
		case <-ctx.Done():
			return result
		case <-w.stopCh:
			return result
		case <-time.After(backoff):
		}
	}
}

// recordAttempt bumps the delivery counter and refreshes updated_at so the
// sweeper sees the task as live while retries are in flight.
func (w *Worker) recordAttempt(ctx context.Context, taskID string) error {
	return w.client.Task.UpdateOneID(taskID).
		AddAttempts(1).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}

// claimNextTask atomically claims the next pending task using FOR UPDATE
// SKIP LOCKED. Paid tasks are drained before free ones; within a priority
// class ordering is FIFO on created_at.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var claimed *ent.Task
	for _, priority := range []task.Priority{task.PriorityPaid, task.PriorityFree} {
		t, err := tx.Task.Query().
			Where(
				task.StatusEQ(task.StatusPending),
				task.PriorityEQ(priority),
			).
			Order(ent.Asc(task.FieldCreatedAt)).
			Limit(1).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to query pending task: %w", err)
		}
		claimed = t
		break
	}
	if claimed == nil {
		return nil, ErrNoTasksAvailable
	}

	claimed, err = claimed.Update().
		SetStatus(task.StatusProcessing).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
