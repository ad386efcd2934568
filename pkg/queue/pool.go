package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the stuck-task sweeper.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	timeout  time.Duration
	executor Executor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Sweeper state
	sweepMu    sync.Mutex
	lastSweep  time.Time
	tasksSwept int
}

// NewWorkerPool creates a new worker pool. timeout is the stuck-task
// threshold applied by the sweeper.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, timeout time.Duration, executor Executor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		timeout:  timeout,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the sweeper background task. It is
// safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runSweeper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// finish their current tasks before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// runSweeper fails tasks stuck in processing beyond the timeout. It runs
// once at startup (crash recovery) and then on the configured cadence.
func (p *WorkerPool) runSweeper(ctx context.Context) {
	p.sweepOnce(ctx)

	ticker := time.NewTicker(p.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweepOnce(ctx)
		}
	}
}

func (p *WorkerPool) sweepOnce(ctx context.Context) {
	swept, err := SweepStuckTasks(ctx, p.client, p.timeout)
	if err != nil {
		slog.Error("Stuck-task sweep failed", "pod_id", p.podID, "error", err)
		return
	}
	if swept > 0 {
		slog.Warn("Swept stuck tasks", "pod_id", p.podID, "count", swept)
	}

	p.sweepMu.Lock()
	p.lastSweep = time.Now()
	p.tasksSwept += swept
	p.sweepMu.Unlock()
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeTasks, errA := p.client.Task.Query().
		Where(task.StatusEQ(task.StatusProcessing)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active tasks for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status: if we can't reach the DB, we're not healthy.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeTasks <= p.config.MaxConcurrentTasks && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active tasks query failed: %v", errA)
		}
	}

	p.sweepMu.Lock()
	lastSweep := p.lastSweep
	tasksSwept := p.tasksSwept
	p.sweepMu.Unlock()

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		ActiveTasks:   activeTasks,
		MaxConcurrent: p.config.MaxConcurrentTasks,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastSweep:     lastSweep,
		TasksSwept:    tasksSwept,
	}
}
