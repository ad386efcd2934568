package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

// fakeDispatcher records enqueued jobs; failures are injectable.
type fakeDispatcher struct {
	mu   sync.Mutex
	jobs []models.Job
	err  error
}

func (f *fakeDispatcher) Enqueue(_ context.Context, job models.Job, _ enttask.Priority) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

// fakeMetadata answers every lookup with a fixed duration.
type fakeMetadata struct {
	duration int
	err      error
}

func (f *fakeMetadata) Lookup(_ context.Context, _ string) (*provider.VideoMetadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &provider.VideoMetadata{DurationSeconds: f.duration}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Task: &config.TaskConfig{
			PollIntervalSeconds: 5,
			Timeout:             10 * time.Minute,
		},
		Trial: &config.TrialConfig{
			MaxDuration: 30 * time.Minute,
		},
	}
}

type taskServiceFixture struct {
	tasks      *services.TaskService
	billing    *services.BillingService
	dispatcher *fakeDispatcher
	metadata   *fakeMetadata
}

func newTaskServiceFixture(t *testing.T) *taskServiceFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	dispatcher := &fakeDispatcher{}
	metadata := &fakeMetadata{duration: 300}
	tasks := services.NewTaskService(client.Client, testConfig(), billing, metadata, dispatcher)
	return &taskServiceFixture{
		tasks:      tasks,
		billing:    billing,
		dispatcher: dispatcher,
		metadata:   metadata,
	}
}

func authedCaller() models.Caller {
	return models.Caller{UserID: uuid.New().String(), Authenticated: true}
}

func anonCaller() models.Caller {
	return models.Caller{AnonID: uuid.New().String()}
}

func uploadInput() models.CreateTaskInput {
	return models.CreateTaskInput{
		SourceType: "upload",
		SourceURL:  "https://media.example.com/audio.mp3",
	}
}

func TestCreateTask_PaidAdmission(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := authedCaller()

	require.NoError(t, f.billing.Add(ctx, caller.UserID, 30))

	task, err := f.tasks.CreateTask(ctx, uploadInput(), caller)
	require.NoError(t, err)

	assert.Equal(t, enttask.StatusPending, task.Status)
	assert.Equal(t, enttask.PriorityPaid, task.Priority)
	assert.False(t, task.IsTrial)
	require.NotNil(t, task.UserID)
	assert.Equal(t, caller.UserID, *task.UserID)

	require.Len(t, f.dispatcher.jobs, 1)
	assert.Equal(t, task.ID, f.dispatcher.jobs[0].TaskID)
}

func TestCreateTask_AnonymousIsTrialAtFreePriority(t *testing.T) {
	f := newTaskServiceFixture(t)
	caller := anonCaller()

	task, err := f.tasks.CreateTask(context.Background(), uploadInput(), caller)
	require.NoError(t, err)

	assert.True(t, task.IsTrial)
	assert.Equal(t, enttask.PriorityFree, task.Priority)
	require.NotNil(t, task.AnonID)
	assert.Equal(t, caller.AnonID, *task.AnonID)
	assert.Nil(t, task.UserID)
}

func TestCreateTask_ExplicitTrialForAuthenticatedUser(t *testing.T) {
	f := newTaskServiceFixture(t)
	caller := authedCaller()

	// No balance credited: the trial path must skip the balance gate.
	input := uploadInput()
	input.IsTrial = true

	task, err := f.tasks.CreateTask(context.Background(), input, caller)
	require.NoError(t, err)
	assert.True(t, task.IsTrial)
	assert.Equal(t, enttask.PriorityFree, task.Priority)
}

func TestCreateTask_ValidationFailures(t *testing.T) {
	f := newTaskServiceFixture(t)
	caller := anonCaller()

	tests := []struct {
		name  string
		input models.CreateTaskInput
	}{
		{"unknown source type", models.CreateTaskInput{SourceType: "ftp", SourceURL: "https://x.example.com/a"}},
		{"empty url", models.CreateTaskInput{SourceType: "upload", SourceURL: "   "}},
		{"non-http url", models.CreateTaskInput{SourceType: "upload", SourceURL: "file:///etc/passwd"}},
		{"bad language tag", models.CreateTaskInput{
			SourceType: "upload",
			SourceURL:  "https://x.example.com/a",
			Params:     map[string]interface{}{models.ParamLanguage: "no-such-lang-tag!!"},
		}},
		{"non-bool detect_language", models.CreateTaskInput{
			SourceType: "upload",
			SourceURL:  "https://x.example.com/a",
			Params:     map[string]interface{}{models.ParamDetectLanguage: "yes"},
		}},
		{"negative size", models.CreateTaskInput{
			SourceType: "upload",
			SourceURL:  "https://x.example.com/a",
			SizeBytes:  -1,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.tasks.CreateTask(context.Background(), tc.input, caller)
			assert.True(t, services.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateTask_RequiresIdentity(t *testing.T) {
	f := newTaskServiceFixture(t)

	_, err := f.tasks.CreateTask(context.Background(), uploadInput(), models.Caller{})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestCreateTask_TrialExhausted(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := anonCaller()

	require.NoError(t, f.billing.RecordTrial(ctx, "", caller.AnonID))

	_, err := f.tasks.CreateTask(ctx, uploadInput(), caller)
	assert.ErrorIs(t, err, services.ErrTrialExhausted)
}

func TestCreateTask_TrialDurationGate(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()

	input := models.CreateTaskInput{
		SourceType: "youtube",
		SourceURL:  "https://www.youtube.com/watch?v=abc123",
	}

	// 31 minutes exceeds the 30-minute trial cap.
	f.metadata.duration = 31 * 60
	_, err := f.tasks.CreateTask(ctx, input, anonCaller())
	assert.ErrorIs(t, err, services.ErrDurationExceeded)

	f.metadata.duration = 29 * 60
	_, err = f.tasks.CreateTask(ctx, input, anonCaller())
	assert.NoError(t, err)
}

func TestCreateTask_TrialMetadataLookupFailureRejects(t *testing.T) {
	f := newTaskServiceFixture(t)
	f.metadata.err = errors.New("upstream unavailable")

	_, err := f.tasks.CreateTask(context.Background(), models.CreateTaskInput{
		SourceType: "youtube",
		SourceURL:  "https://www.youtube.com/watch?v=abc123",
	}, anonCaller())
	assert.True(t, services.IsValidationError(err))
}

func TestCreateTask_InsufficientBalance(t *testing.T) {
	f := newTaskServiceFixture(t)

	_, err := f.tasks.CreateTask(context.Background(), uploadInput(), authedCaller())
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
}

func TestCreateTask_OneActiveTaskPerOwner(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := authedCaller()

	require.NoError(t, f.billing.Add(ctx, caller.UserID, 30))

	_, err := f.tasks.CreateTask(ctx, uploadInput(), caller)
	require.NoError(t, err)

	_, err = f.tasks.CreateTask(ctx, uploadInput(), caller)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestCreateTask_ConcurrentAdmissionsSameOwner(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := authedCaller()

	require.NoError(t, f.billing.Add(ctx, caller.UserID, 30))

	// Two simultaneous admissions race past the pre-insert active-task check;
	// the partial unique index on the owner key decides the winner and the
	// loser surfaces as a conflict.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.tasks.CreateTask(ctx, uploadInput(), caller)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, services.ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected admission error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
}

func TestCreateTask_DispatchFailureStillAdmits(t *testing.T) {
	f := newTaskServiceFixture(t)
	f.dispatcher.err = errors.New("queue full")

	task, err := f.tasks.CreateTask(context.Background(), uploadInput(), anonCaller())
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusPending, task.Status)
}

func TestGetTask_EnforcesOwnership(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	owner := anonCaller()

	created, err := f.tasks.CreateTask(ctx, uploadInput(), owner)
	require.NoError(t, err)

	got, err := f.tasks.GetTask(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.tasks.GetTask(ctx, created.ID, anonCaller())
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = f.tasks.GetTask(ctx, uuid.New().String(), owner)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListTasks_CursorPagination(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := anonCaller()

	// Owner serialization permits one active task, so terminate each one
	// before admitting the next. The sleep keeps created_at strictly
	// increasing for the cursor comparison.
	var ids []string
	for i := 0; i < 3; i++ {
		task, err := f.tasks.CreateTask(ctx, uploadInput(), caller)
		require.NoError(t, err)
		ids = append(ids, task.ID)

		require.NoError(t, task.Update().SetStatus(enttask.StatusSucceeded).Exec(ctx))
		time.Sleep(5 * time.Millisecond)
	}

	page, err := f.tasks.ListTasks(ctx, caller, models.TaskFilters{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Newest first: the last created task has the latest created_at.
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	cursor := page[1].CreatedAt
	rest, err := f.tasks.ListTasks(ctx, caller, models.TaskFilters{Limit: 2, Cursor: &cursor})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[0], rest[0].ID)
}

func TestListTasks_StatusFilter(t *testing.T) {
	f := newTaskServiceFixture(t)
	ctx := context.Background()
	caller := anonCaller()

	task, err := f.tasks.CreateTask(ctx, uploadInput(), caller)
	require.NoError(t, err)
	require.NoError(t, task.Update().SetStatus(enttask.StatusFailed).Exec(ctx))

	failed, err := f.tasks.ListTasks(ctx, caller, models.TaskFilters{Status: "failed"})
	require.NoError(t, err)
	assert.Len(t, failed, 1)

	pending, err := f.tasks.ListTasks(ctx, caller, models.TaskFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRetryAfter(t *testing.T) {
	f := newTaskServiceFixture(t)
	assert.Equal(t, 5, f.tasks.RetryAfter())
}
