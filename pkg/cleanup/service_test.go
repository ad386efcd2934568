package cleanup_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/cleanup"
	testdb "github.com/openscribe/scribe/test/database"
)

func createTaskAged(t *testing.T, client *ent.Client, status task.Status, age time.Duration) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerKey(uuid.New().String()).
		SetSourceType(task.SourceTypeUpload).
		SetSourceURL("https://media.example.com/audio.mp3").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestDeleteOldTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := createTaskAged(t, client.Client, task.StatusSucceeded, 91*24*time.Hour)
	oldFailed := createTaskAged(t, client.Client, task.StatusFailed, 100*24*time.Hour)
	recent := createTaskAged(t, client.Client, task.StatusSucceeded, 89*24*time.Hour)
	// In-flight tasks survive regardless of age.
	inFlight := createTaskAged(t, client.Client, task.StatusProcessing, 200*24*time.Hour)

	deleted, err := cleanup.DeleteOldTasks(ctx, client.Client, 90)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	for _, id := range []string{old.ID, oldFailed.ID} {
		_, err := client.Client.Task.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err), "task %s should be deleted", id)
	}
	for _, id := range []string{recent.ID, inFlight.ID} {
		_, err := client.Client.Task.Get(ctx, id)
		assert.NoError(t, err, "task %s should survive", id)
	}
}

func TestDeleteOldTasks_CascadesTranscript(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := createTaskAged(t, client.Client, task.StatusSucceeded, 91*24*time.Hour)
	_, err := client.Client.Transcript.Create().
		SetID(uuid.New().String()).
		SetTaskID(old.ID).
		SetSegments([]map[string]interface{}{{"start": 0.0, "end": 1.0, "text": "hi"}}).
		Save(ctx)
	require.NoError(t, err)

	deleted, err := cleanup.DeleteOldTasks(ctx, client.Client, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.Client.Transcript.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestDeleteExpiredWebhookEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetEventID("evt-old").
		SetSource("subscription").
		SetReceivedAt(time.Now().Add(-31 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetEventID("evt-fresh").
		SetSource("subscription").
		Save(ctx)
	require.NoError(t, err)

	deleted, err := cleanup.DeleteExpiredWebhookEvents(ctx, client.Client, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := client.Client.WebhookEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}
