package queue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
	"github.com/openscribe/scribe/pkg/artifact"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/segment"
	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

// sttHandler serves a canned diarized transcription.
func sttHandler(duration float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]interface{}{"duration": duration},
			"results": map[string]interface{}{
				"channels": []map[string]interface{}{{"detected_language": "en"}},
				"utterances": []map[string]interface{}{
					{"start": 0.0, "end": 2.5, "transcript": "Hello there.", "speaker": 0},
					{"start": 2.9, "end": 5.0, "transcript": "General greeting.", "speaker": 1},
				},
			},
		})
	}
}

// nativeCaptionsHandler serves pre-existing captions synchronously.
func nativeCaptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{
				{"text": "第一段。", "offset": 0, "duration": 2000},
				{"text": "第二段。", "offset": 2000, "duration": 2000},
			},
			"lang": "zh",
		})
	}
}

type executorFixture struct {
	client   *ent.Client
	billing  *services.BillingService
	executor *TaskExecutor
}

func newExecutorFixture(t *testing.T, sttURL, autoURL string) *executorFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)

	auto := provider.NewAutoTranscriptClient(&config.AutoTranscriptConfig{
		BaseURL:         autoURL,
		PollInterval:    5 * time.Millisecond,
		MaxPollAttempts: 3,
	})
	stt := provider.NewSTTClient(&config.STTConfig{
		BaseURL: sttURL,
		APIKey:  "test-key",
		Model:   "nova-2",
	})
	store := artifact.NewStore(&config.ArtifactConfig{
		BaseURL: "mem://localhost/scribe-test/" + uuid.New().String(),
	})

	return &executorFixture{
		client:   client.Client,
		billing:  billing,
		executor: NewTaskExecutor(client.Client, auto, stt, segment.NewNormalizer(nil), store, billing),
	}
}

type ownedTaskSpec struct {
	sourceType task.SourceType
	userID     string
	anonID     string
	isTrial    bool
}

func createOwnedTask(t *testing.T, client *ent.Client, spec ownedTaskSpec) *ent.Task {
	t.Helper()

	ownerKey := spec.userID
	if ownerKey == "" {
		ownerKey = spec.anonID
	}

	builder := client.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerKey(ownerKey).
		SetSourceType(spec.sourceType).
		SetSourceURL("https://media.example.com/input").
		SetIsTrial(spec.isTrial).
		SetStatus(task.StatusProcessing)
	if spec.userID != "" {
		builder.SetUserID(spec.userID)
	}
	if spec.anonID != "" {
		builder.SetAnonID(spec.anonID)
	}

	created, err := builder.Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestExecutor_GeneratedTranscriptIsBilled(t *testing.T) {
	sttServer := httptest.NewServer(sttHandler(125.3))
	defer sttServer.Close()

	f := newExecutorFixture(t, sttServer.URL, "")
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, f.billing.Add(ctx, userID, 10))

	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeUpload,
		userID:     userID,
	})

	result := f.executor.Execute(ctx, created)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusSucceeded, result.Status)
	assert.Equal(t, provider.EngineSTT, result.Engine)
	assert.Equal(t, 125.3, result.DurationSec)

	// 125.3s of AI transcription rounds up to 3 minutes.
	assert.Equal(t, 3, result.CostMinutes)

	minutes, err := f.billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 7, minutes)

	tr, err := f.client.Transcript.Query().
		Where(transcript.TaskIDEQ(created.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tr.Segments)
	assert.Contains(t, tr.SrtURL, created.ID)
	assert.Contains(t, tr.VttURL, created.ID)
	assert.NotEmpty(t, tr.RawURL)
}

func TestExecutor_NativeCaptionsAreFree(t *testing.T) {
	autoServer := httptest.NewServer(nativeCaptionsHandler())
	defer autoServer.Close()

	f := newExecutorFixture(t, "", autoServer.URL)
	ctx := context.Background()

	userID := uuid.New().String()
	require.NoError(t, f.billing.Add(ctx, userID, 10))

	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeYoutube,
		userID:     userID,
	})

	result := f.executor.Execute(ctx, created)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusSucceeded, result.Status)
	assert.Equal(t, provider.EngineAutoTranscript, result.Engine)

	// Pre-existing captions never cost minutes, so no deduction happens.
	assert.Zero(t, result.CostMinutes)

	minutes, err := f.billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, minutes)
}

func TestExecutor_TrialRecordedAtSettlement(t *testing.T) {
	sttServer := httptest.NewServer(sttHandler(60))
	defer sttServer.Close()

	f := newExecutorFixture(t, sttServer.URL, "")
	ctx := context.Background()

	anonID := uuid.New().String()
	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeUpload,
		anonID:     anonID,
		isTrial:    true,
	})

	result := f.executor.Execute(ctx, created)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusSucceeded, result.Status)

	used, err := f.billing.CheckTrial(ctx, "", anonID)
	require.NoError(t, err)
	assert.True(t, used)
}

func TestExecutor_DeductShortfallStillSucceeds(t *testing.T) {
	sttServer := httptest.NewServer(sttHandler(125.3))
	defer sttServer.Close()

	f := newExecutorFixture(t, sttServer.URL, "")
	ctx := context.Background()

	// Balance dropped below the cost between admission and completion. The
	// transcript already exists by settlement, so the task still succeeds
	// and the balance is left untouched rather than driven negative.
	userID := uuid.New().String()
	require.NoError(t, f.billing.Add(ctx, userID, 1))

	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeUpload,
		userID:     userID,
	})

	result := f.executor.Execute(ctx, created)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusSucceeded, result.Status)

	minutes, err := f.billing.Minutes(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, minutes)
}

func TestExecutor_RepeatExecutionUpsertsOneTranscript(t *testing.T) {
	sttServer := httptest.NewServer(sttHandler(60))
	defer sttServer.Close()

	f := newExecutorFixture(t, sttServer.URL, "")
	ctx := context.Background()

	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeUpload,
		anonID:     uuid.New().String(),
		isTrial:    true,
	})

	// A retried delivery re-runs the whole pipeline; the transcript is keyed
	// on task_id, so the second run overwrites instead of duplicating.
	result := f.executor.Execute(ctx, created)
	require.Equal(t, task.StatusSucceeded, result.Status)
	result = f.executor.Execute(ctx, created)
	require.Equal(t, task.StatusSucceeded, result.Status)

	count, err := f.client.Transcript.Query().
		Where(transcript.TaskIDEQ(created.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExecutor_EmptyProviderResultFails(t *testing.T) {
	sttServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"metadata": map[string]interface{}{"duration": 10},
			"results":  map[string]interface{}{},
		})
	}))
	defer sttServer.Close()

	f := newExecutorFixture(t, sttServer.URL, "")

	created := createOwnedTask(t, f.client, ownedTaskSpec{
		sourceType: task.SourceTypeUpload,
		anonID:     uuid.New().String(),
		isTrial:    true,
	})

	result := f.executor.Execute(context.Background(), created)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusFailed, result.Status)
	assert.False(t, result.Retryable)
	assert.Error(t, result.Err)
}
