package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
	testdb "github.com/openscribe/scribe/test/database"
)

// fakeExecutor delegates to fn and counts invocations.
type fakeExecutor struct {
	mu    sync.Mutex
	calls int
	fn    func(t *ent.Task) *ExecutionResult
}

func (f *fakeExecutor) Execute(_ context.Context, t *ent.Task) *ExecutionResult {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(t)
	}
	return &ExecutionResult{Status: task.StatusSucceeded}
}

func (f *fakeExecutor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type taskSpec struct {
	status    task.Status
	priority  task.Priority
	createdAt time.Time
	updatedAt time.Time
}

func createTask(t *testing.T, client *ent.Client, spec taskSpec) *ent.Task {
	t.Helper()

	if spec.status == "" {
		spec.status = task.StatusPending
	}
	if spec.priority == "" {
		spec.priority = task.PriorityFree
	}
	if spec.createdAt.IsZero() {
		spec.createdAt = time.Now()
	}
	if spec.updatedAt.IsZero() {
		spec.updatedAt = time.Now()
	}

	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerKey(uuid.New().String()).
		SetSourceType(task.SourceTypeUpload).
		SetSourceURL("https://media.example.com/audio.mp3").
		SetStatus(spec.status).
		SetPriority(spec.priority).
		SetCreatedAt(spec.createdAt).
		SetUpdatedAt(spec.updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.RetryBackoff = time.Millisecond
	return cfg
}

func TestSweepStuckTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	stuck := createTask(t, client.Client, taskSpec{
		status:    task.StatusProcessing,
		updatedAt: now.Add(-11 * time.Minute),
	})
	live := createTask(t, client.Client, taskSpec{
		status:    task.StatusProcessing,
		updatedAt: now.Add(-9 * time.Minute),
	})
	// Pending rows are never stuck, no matter how old.
	pending := createTask(t, client.Client, taskSpec{
		status:    task.StatusPending,
		updatedAt: now.Add(-2 * time.Hour),
	})

	swept, err := SweepStuckTasks(ctx, client.Client, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	reloaded, err := client.Client.Task.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "task timeout", *reloaded.ErrorMessage)

	reloaded, err = client.Client.Task.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusProcessing, reloaded.Status)

	reloaded, err = client.Client.Task.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, reloaded.Status)
}

func TestClaimNextTask_PaidBeforeFree(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	// The free task is older, but paid drains first.
	free := createTask(t, client.Client, taskSpec{
		priority:  task.PriorityFree,
		createdAt: now.Add(-2 * time.Minute),
	})
	paid := createTask(t, client.Client, taskSpec{
		priority:  task.PriorityPaid,
		createdAt: now.Add(-1 * time.Minute),
	})

	w := NewWorker("w1", "pod1", client.Client, testQueueConfig(), &fakeExecutor{})

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, paid.ID, claimed.ID)
	assert.Equal(t, task.StatusProcessing, claimed.Status)

	claimed, err = w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, free.ID, claimed.ID)

	_, err = w.claimNextTask(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimNextTask_FIFOWithinPriority(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	second := createTask(t, client.Client, taskSpec{createdAt: now.Add(-1 * time.Minute)})
	first := createTask(t, client.Client, taskSpec{createdAt: now.Add(-2 * time.Minute)})

	w := NewWorker("w1", "pod1", client.Client, testQueueConfig(), &fakeExecutor{})

	claimed, err := w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)

	claimed, err = w.claimNextTask(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)
}

func TestPollAndProcess_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createTask(t, client.Client, taskSpec{status: task.StatusProcessing})
	createTask(t, client.Client, taskSpec{status: task.StatusPending})

	cfg := testQueueConfig()
	cfg.MaxConcurrentTasks = 1

	w := NewWorker("w1", "pod1", client.Client, cfg, &fakeExecutor{})
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrAtCapacity)
}

func TestPollAndProcess_CompletesTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{})

	executor := &fakeExecutor{fn: func(*ent.Task) *ExecutionResult {
		return &ExecutionResult{
			Status:      task.StatusSucceeded,
			Engine:      "stt",
			DurationSec: 90.5,
			CostMinutes: 2,
		}
	}}

	w := NewWorker("w1", "pod1", client.Client, testQueueConfig(), executor)
	require.NoError(t, w.pollAndProcess(ctx))

	reloaded, err := client.Client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, reloaded.Status)
	require.NotNil(t, reloaded.Engine)
	assert.Equal(t, "stt", *reloaded.Engine)
	assert.Equal(t, 90.5, reloaded.DurationSec)
	assert.Equal(t, 2, reloaded.CostMinutes)
	assert.Equal(t, 1, reloaded.Attempts)
}

func TestProcess_RetriesUpToBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{status: task.StatusProcessing})

	executor := &fakeExecutor{fn: func(*ent.Task) *ExecutionResult {
		return &ExecutionResult{
			Status:    task.StatusFailed,
			Retryable: true,
			Err:       errors.New("provider unavailable"),
		}
	}}

	cfg := testQueueConfig()
	cfg.MaxAttempts = 3

	w := NewWorker("w1", "pod1", client.Client, cfg, executor)
	result := w.process(ctx, created)

	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Equal(t, 3, executor.callCount())

	// Each attempt refreshed the row, keeping it out of the sweeper's reach.
	reloaded, err := client.Client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Attempts)
	assert.Equal(t, task.StatusProcessing, reloaded.Status)
}

func TestProcess_NonRetryableFailureStopsImmediately(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{status: task.StatusProcessing})

	executor := &fakeExecutor{fn: func(*ent.Task) *ExecutionResult {
		return &ExecutionResult{
			Status: task.StatusFailed,
			Err:    errors.New("no captions available"),
		}
	}}

	w := NewWorker("w1", "pod1", client.Client, testQueueConfig(), executor)
	result := w.process(ctx, created)

	assert.Equal(t, task.StatusFailed, result.Status)
	assert.Equal(t, 1, executor.callCount())
}

func TestMarkTerminal_OnlyFromProcessing(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{status: task.StatusProcessing})

	applied, err := MarkTerminal(ctx, client.Client, created.ID, &ExecutionResult{
		Status: task.StatusSucceeded,
	})
	require.NoError(t, err)
	assert.True(t, applied)

	// A second settlement attempt finds the row already terminal.
	applied, err = MarkTerminal(ctx, client.Client, created.ID, &ExecutionResult{
		Status: task.StatusFailed,
		Err:    errors.New("late failure"),
	})
	require.NoError(t, err)
	assert.False(t, applied)

	reloaded, err := client.Client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, reloaded.Status)
	assert.Nil(t, reloaded.ErrorMessage)
}

func TestMarkTerminal_RecordsFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{status: task.StatusProcessing})

	applied, err := MarkTerminal(ctx, client.Client, created.ID, &ExecutionResult{
		Status: task.StatusFailed,
		Engine: "auto_transcript",
		Err:    errors.New("transcript generation timed out"),
	})
	require.NoError(t, err)
	assert.True(t, applied)

	reloaded, err := client.Client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "transcript generation timed out", *reloaded.ErrorMessage)
}

func TestRunner_ProcessJobClaimIsConditional(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{})
	executor := &fakeExecutor{}
	r := NewRunner(client.Client, executor, 1)

	job := models.Job{TaskID: created.ID, SourceType: "upload", SourceURL: created.SourceURL}

	require.NoError(t, r.processJob(ctx, job))
	assert.Equal(t, 1, executor.callCount())

	// A duplicate delivery (recovery replay) finds the row claimed and
	// silently drops the job.
	require.NoError(t, r.processJob(ctx, job))
	assert.Equal(t, 1, executor.callCount())

	reloaded, err := client.Client.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, reloaded.Status)
}

func TestRunner_EnqueueAndRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	created := createTask(t, client.Client, taskSpec{})
	executor := &fakeExecutor{}
	r := NewRunner(client.Client, executor, 2)
	r.Start(ctx)
	defer r.Stop()

	require.NoError(t, r.Enqueue(ctx, models.Job{TaskID: created.ID}, task.PriorityFree))

	require.Eventually(t, func() bool {
		reloaded, err := client.Client.Task.Get(ctx, created.ID)
		return err == nil && reloaded.Status == task.StatusSucceeded
	}, 5*time.Second, 20*time.Millisecond)
}

func TestRecoverPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	now := time.Now()

	older := createTask(t, client.Client, taskSpec{createdAt: now.Add(-2 * time.Minute)})
	newer := createTask(t, client.Client, taskSpec{createdAt: now.Add(-1 * time.Minute)})
	createTask(t, client.Client, taskSpec{status: task.StatusProcessing})
	createTask(t, client.Client, taskSpec{status: task.StatusSucceeded})

	var replayed []string
	recovered, err := RecoverPending(ctx, client.Client, func(_ context.Context, job models.Job, _ task.Priority) error {
		replayed = append(replayed, job.TaskID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, recovered)
	assert.Equal(t, []string{older.ID, newer.ID}, replayed)
}

func TestRecoverPending_DispatchFailureSkips(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	createTask(t, client.Client, taskSpec{})
	createTask(t, client.Client, taskSpec{})

	calls := 0
	recovered, err := RecoverPending(ctx, client.Client, func(context.Context, models.Job, task.Priority) error {
		calls++
		if calls == 1 {
			return errors.New("queue full")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
}
