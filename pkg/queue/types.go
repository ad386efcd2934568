// Package queue provides task dispatch and processing infrastructure: the
// durable worker pool claiming from the tasks table, the in-process
// cooperative runner, and the stuck-task sweeper.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no pending tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Executor drives one claimed task through transcription, normalization,
// formatting, persistence and settlement. The transcript row is written by
// the executor itself (upsert keyed on task_id, so re-delivery stays
// idempotent); the worker only handles claiming, retries and the terminal
// status update.
type Executor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
}

// ExecutionResult is the terminal state of one execution attempt.
type ExecutionResult struct {
	Status      task.Status // succeeded or failed
	Engine      string
	DurationSec float64
	CostMinutes int
	// Retryable marks a failure worth re-running within the delivery budget
	// (network faults, provider 5xx). Validation-class failures are final.
	Retryable bool
	Err       error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveTasks   int            `json:"active_tasks"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastSweep     time.Time      `json:"last_sweep"`
	TasksSwept    int            `json:"tasks_swept"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
