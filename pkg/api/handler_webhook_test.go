package api_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/api"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/services"
	testdb "github.com/openscribe/scribe/test/database"
)

var testSecrets = api.WebhookSecrets{
	STT:          "test-stt-secret",
	Subscription: "test-subscription-secret",
}

// stubCompleter records the delivered result and returns a canned error.
type stubCompleter struct {
	err        error
	lastTaskID string
	lastResult *provider.TranscriptResult
}

func (s *stubCompleter) CompleteFromResult(_ context.Context, taskID string, res *provider.TranscriptResult) error {
	s.lastTaskID = taskID
	s.lastResult = res
	return s.err
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newWebhookHandler(t *testing.T, completer api.TaskCompleter) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// The webhook handlers never touch the database client or the task
	// service, so those stay nil here.
	server := api.NewServer(nil, nil, nil, completer, nil, testSecrets)
	return server.Handler()
}

func postSTTWebhook(handler http.Handler, taskID string, body []byte, signature string) *httptest.ResponseRecorder {
	url := "/api/v1/webhooks/stt"
	if taskID != "" {
		url += "?task_id=" + taskID
	}
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("dg-signature", signature)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSTTWebhook_DeliversResult(t *testing.T) {
	completer := &stubCompleter{}
	handler := newWebhookHandler(t, completer)

	body := []byte(`{
		"metadata": {"duration": 125.3},
		"results": {
			"utterances": [
				{"start": 0, "end": 2.5, "transcript": "hello there", "speaker": 0}
			]
		}
	}`)

	rec := postSTTWebhook(handler, "task-1", body, sign(testSecrets.STT, body))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "task-1", completer.lastTaskID)
	require.NotNil(t, completer.lastResult)
	assert.Equal(t, 125.3, completer.lastResult.Duration)
	require.Len(t, completer.lastResult.Segments, 1)
	assert.Equal(t, "hello there", completer.lastResult.Segments[0].Text)
}

func TestSTTWebhook_RejectsBadSignature(t *testing.T) {
	completer := &stubCompleter{}
	handler := newWebhookHandler(t, completer)

	body := []byte(`{"metadata":{"duration":60}}`)
	rec := postSTTWebhook(handler, "task-1", body, "deadbeef")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, completer.lastTaskID)
}

func TestSTTWebhook_RequiresTaskID(t *testing.T) {
	handler := newWebhookHandler(t, &stubCompleter{})

	body := []byte(`{"metadata":{"duration":60}}`)
	rec := postSTTWebhook(handler, "", body, sign(testSecrets.STT, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSTTWebhook_UnknownTask(t *testing.T) {
	handler := newWebhookHandler(t, &stubCompleter{err: services.ErrNotFound})

	body := []byte(`{"metadata":{"duration":60}}`)
	rec := postSTTWebhook(handler, "task-1", body, sign(testSecrets.STT, body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSTTWebhook_DuplicateDeliveryAcknowledged(t *testing.T) {
	handler := newWebhookHandler(t, &stubCompleter{err: services.ErrConflict})

	body := []byte(`{"metadata":{"duration":60}}`)
	rec := postSTTWebhook(handler, "task-1", body, sign(testSecrets.STT, body))

	// Acknowledged so the provider stops redelivering.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already processed")
}

func newSubscriptionHandler(t *testing.T) (http.Handler, *services.BillingService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)
	billing := services.NewBillingService(client.Client)
	webhooks := services.NewWebhookService(client.Client, billing)
	server := api.NewServer(client, nil, webhooks, nil, nil, testSecrets)
	return server.Handler(), billing
}

func postSubscriptionWebhook(handler http.Handler, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/subscription", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("webhook-signature", signature)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func signedSubscriptionPost(handler http.Handler, body string) *httptest.ResponseRecorder {
	return postSubscriptionWebhook(handler, body, sign(testSecrets.Subscription, []byte(body)))
}

func TestSubscriptionWebhook_CreditsOnce(t *testing.T) {
	handler, billing := newSubscriptionHandler(t)
	userID := uuid.New().String()

	body := `{"event_id":"evt-1","type":"invoice.paid","user_id":"` + userID + `","minutes":60}`

	rec := signedSubscriptionPost(handler, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Redelivery is acknowledged without a second credit.
	rec = signedSubscriptionPost(handler, body)
	assert.Equal(t, http.StatusOK, rec.Code)

	minutes, err := billing.Minutes(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 60, minutes)
}

func TestSubscriptionWebhook_IgnoresOtherEventTypes(t *testing.T) {
	handler, billing := newSubscriptionHandler(t)
	userID := uuid.New().String()

	rec := signedSubscriptionPost(handler,
		`{"event_id":"evt-1","type":"invoice.voided","user_id":"`+userID+`","minutes":60}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")

	minutes, err := billing.Minutes(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, minutes)
}

func TestSubscriptionWebhook_RequiresUserID(t *testing.T) {
	handler, _ := newSubscriptionHandler(t)

	rec := signedSubscriptionPost(handler,
		`{"event_id":"evt-1","type":"invoice.paid","minutes":60}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionWebhook_RejectsBadSignature(t *testing.T) {
	handler, billing := newSubscriptionHandler(t)
	userID := uuid.New().String()

	body := `{"event_id":"evt-1","type":"invoice.paid","user_id":"` + userID + `","minutes":60}`

	// Unsigned and wrongly signed requests are refused before any credit.
	rec := postSubscriptionWebhook(handler, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postSubscriptionWebhook(handler, body, "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postSubscriptionWebhook(handler, body, sign("wrong-secret", []byte(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	minutes, err := billing.Minutes(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, minutes)
}

func TestSubscriptionWebhook_RequiresEventID(t *testing.T) {
	handler, _ := newSubscriptionHandler(t)

	rec := signedSubscriptionPost(handler, `{"type":"invoice.paid","user_id":"u1","minutes":60}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
