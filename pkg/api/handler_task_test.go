package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enttask "github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/api"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

type nopDispatcher struct{}

func (nopDispatcher) Enqueue(context.Context, models.Job, enttask.Priority) error { return nil }

type fixedMetadata struct{ duration int }

func (f fixedMetadata) Lookup(context.Context, string) (*provider.VideoMetadata, error) {
	return &provider.VideoMetadata{DurationSeconds: f.duration}, nil
}

func newTaskHandler(t *testing.T) (http.Handler, *services.BillingService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		Task:  &config.TaskConfig{PollIntervalSeconds: 5, Timeout: 10 * time.Minute},
		Trial: &config.TrialConfig{MaxDuration: 30 * time.Minute},
	}
	billing := services.NewBillingService(client.Client)
	tasks := services.NewTaskService(client.Client, cfg, billing, fixedMetadata{duration: 300}, nopDispatcher{})
	webhooks := services.NewWebhookService(client.Client, billing)
	server := api.NewServer(client, tasks, webhooks, nil, nil, testSecrets)
	return server.Handler(), billing
}

func doJSON(handler http.Handler, method, url, body, anonID string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if anonID != "" {
		req.Header.Set("X-Anon-ID", anonID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateTaskEndpoint(t *testing.T) {
	handler, _ := newTaskHandler(t)
	anonID := uuid.New().String()

	rec := doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload","source_url":"https://media.example.com/a.mp3"}`, anonID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		TaskID     string `json:"task_id"`
		Status     string `json:"status"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.TaskID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 5, resp.RetryAfter)

	// A second admission for the same owner conflicts while the first is
	// still in flight.
	rec = doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload","source_url":"https://media.example.com/b.mp3"}`, anonID)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")
}

func TestCreateTaskEndpoint_RejectsMissingIdentity(t *testing.T) {
	handler, _ := newTaskHandler(t)

	rec := doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload","source_url":"https://media.example.com/a.mp3"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTaskEndpoint_RejectsInvalidBody(t *testing.T) {
	handler, _ := newTaskHandler(t)

	rec := doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload"}`, uuid.New().String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTaskEndpoint(t *testing.T) {
	handler, _ := newTaskHandler(t)
	anonID := uuid.New().String()

	rec := doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload","source_url":"https://media.example.com/a.mp3"}`, anonID)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		TaskID string `json:"task_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(handler, http.MethodGet, "/api/v1/tasks/"+created.TaskID, "", anonID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.TaskID)

	// Another caller cannot read it.
	rec = doJSON(handler, http.MethodGet, "/api/v1/tasks/"+created.TaskID, "", uuid.New().String())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(handler, http.MethodGet, "/api/v1/tasks/"+uuid.New().String(), "", anonID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksEndpoint(t *testing.T) {
	handler, _ := newTaskHandler(t)
	anonID := uuid.New().String()

	rec := doJSON(handler, http.MethodPost, "/api/v1/tasks",
		`{"source_type":"upload","source_url":"https://media.example.com/a.mp3"}`, anonID)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(handler, http.MethodGet, "/api/v1/tasks", "", anonID)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tasks      []json.RawMessage `json:"tasks"`
		NextCursor *time.Time        `json:"next_cursor"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Tasks, 1)
	assert.NotNil(t, resp.NextCursor)

	// Another caller sees nothing.
	rec = doJSON(handler, http.MethodGet, "/api/v1/tasks", "", uuid.New().String())
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Tasks)
}

func TestListTasksEndpoint_BadCursor(t *testing.T) {
	handler, _ := newTaskHandler(t)

	rec := doJSON(handler, http.MethodGet, "/api/v1/tasks?cursor=yesterday", "", uuid.New().String())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
