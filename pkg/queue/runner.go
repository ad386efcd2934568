package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/models"
)

// NopDispatcher is the queue-mode dispatcher. Admission already persisted
// the pending row, and that row is the queue entry; workers find it by
// polling, so there is nothing to hand over.
type NopDispatcher struct{}

// Enqueue is a no-op.
func (NopDispatcher) Enqueue(context.Context, models.Job, task.Priority) error { return nil }

// runnerQueueSize bounds the in-process job buffer. A full buffer rejects
// the enqueue; the row stays pending and startup recovery replays it.
const runnerQueueSize = 256

// Runner is the in-process cooperative dispatcher used when no durable
// queue is wanted (development, single node). Admitted jobs go onto a
// channel serviced by a fixed set of goroutines; the same conditional
// pending -> processing claim as the durable path keeps duplicate delivery
// harmless.
type Runner struct {
	client   *ent.Client
	executor Executor
	workers  int
	jobs     chan models.Job
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner creates an in-process runner with the given worker goroutine
// count.
func NewRunner(client *ent.Client, executor Executor, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		client:   client,
		executor: executor,
		workers:  workers,
		jobs:     make(chan models.Job, runnerQueueSize),
		stopCh:   make(chan struct{}),
	}
}

// Enqueue schedules a job onto the runner. Never blocks: a full buffer is
// reported to the caller, who leaves the row pending for recovery.
func (r *Runner) Enqueue(_ context.Context, job models.Job, _ task.Priority) error {
	select {
	case r.jobs <- job:
		return nil
	default:
		return fmt.Errorf("runner queue full (%d jobs buffered)", runnerQueueSize)
	}
}

// Start spawns the worker goroutines.
func (r *Runner) Start(ctx context.Context) {
	slog.Info("Starting in-process runner", "workers", r.workers)
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.run(ctx, i)
	}
}

// Stop drains nothing: in-flight jobs finish, buffered jobs stay pending in
// the database and are replayed by recovery on next start.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
	slog.Info("In-process runner stopped")
}

func (r *Runner) run(ctx context.Context, id int) {
	defer r.wg.Done()
	log := slog.With("runner_worker", id)

	for {
		select {
		case <-r.stopCh:
			return
		case <-ctx.Done():
			return
		case job := <-r.jobs:
			if err := r.processJob(ctx, job); err != nil {
				log.Error("Job processing failed", "task_id", job.TaskID, "error", err)
			}
		}
	}
}

// processJob claims and executes one job. The conditional claim makes a
// duplicate enqueue (recovery replay racing a live worker) a silent no-op.
func (r *Runner) processJob(ctx context.Context, job models.Job) error {
	n, err := r.client.Task.Update().
		Where(
			task.IDEQ(job.TaskID),
			task.StatusEQ(task.StatusPending),
		).
		SetStatus(task.StatusProcessing).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to claim task: %w", err)
	}
	if n == 0 {
		return nil
	}

	t, err := r.client.Task.Get(ctx, job.TaskID)
	if err != nil {
		return fmt.Errorf("failed to load claimed task: %w", err)
	}

	result := r.executor.Execute(ctx, t)
	if result == nil {
		result = &ExecutionResult{
			Status: task.StatusFailed,
			Err:    fmt.Errorf("executor returned nil result"),
		}
	}

	applied, err := MarkTerminal(context.Background(), r.client, t.ID, result)
	if err != nil {
		return err
	}
	if !applied {
		slog.Warn("Task already terminal, dropping result",
			"task_id", t.ID, "status", result.Status)
	}
	return nil
}

// RecoverPending re-enqueues every pending task onto the dispatcher. Run at
// startup so tasks admitted just before a crash are never lost; a pending
// row always represents work owed, never an error.
func RecoverPending(ctx context.Context, client *ent.Client, dispatch func(ctx context.Context, job models.Job, priority task.Priority) error) (int, error) {
	tasks, err := client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Order(ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan pending tasks: %w", err)
	}

	recovered := 0
	for _, t := range tasks {
		job := models.Job{
			TaskID:     t.ID,
			SourceType: string(t.SourceType),
			SourceURL:  t.SourceURL,
			Params:     t.Params,
		}
		if err := dispatch(ctx, job, t.Priority); err != nil {
			slog.Warn("Failed to re-enqueue pending task", "task_id", t.ID, "error", err)
			continue
		}
		recovered++
	}
	return recovered, nil
}

// RunSweeper periodically fails stuck tasks until ctx is cancelled. The
// worker pool embeds its own sweep loop; this standalone variant serves the
// in-process runner mode.
func RunSweeper(ctx context.Context, client *ent.Client, interval, timeout time.Duration) {
	sweep := func() {
		swept, err := SweepStuckTasks(ctx, client, timeout)
		if err != nil {
			slog.Error("Stuck-task sweep failed", "error", err)
			return
		}
		if swept > 0 {
			slog.Warn("Swept stuck tasks", "count", swept)
		}
	}

	sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
