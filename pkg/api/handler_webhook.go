package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/services"
)

// Signature headers carrying the HMAC-SHA256 hex signature over the raw
// request body, one per webhook source.
const (
	sttSignatureHeader          = "dg-signature"
	subscriptionSignatureHeader = "webhook-signature"
)

// STTWebhook handles POST /api/v1/webhooks/stt: the async speech-to-text
// callback delivering a finished transcription. The task id rides on the
// callback URL as ?task_id=.
func (s *Server) STTWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "unreadable body"})
		return
	}

	if !provider.VerifyWebhookSignature(s.secrets.STT, body, c.GetHeader(sttSignatureHeader)) {
		c.JSON(http.StatusUnauthorized, errorBody{Code: CodeUnauthorized, Message: "invalid signature"})
		return
	}

	taskID := c.Query("task_id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "task_id is required"})
		return
	}

	var sr provider.STTResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "malformed transcription payload"})
		return
	}

	err = s.completer.CompleteFromResult(c.Request.Context(), taskID, provider.ResultFromSTTResponse(&sr, body))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Code: CodeNotFound, Message: "task not found"})
	case errors.Is(err, services.ErrConflict):
		// Duplicate delivery after the task settled. Acknowledge so the
		// provider stops retrying.
		c.JSON(http.StatusOK, gin.H{"status": "already processed"})
	default:
		slog.Error("STT webhook completion failed", "task_id", taskID, "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Code: CodeInternalError, Message: "completion failed"})
	}
}

// SubscriptionWebhook handles POST /api/v1/webhooks/subscription. The body
// signature is checked before anything else; an unsigned request must not
// reach the crediting path. Only invoice.paid events carry an action;
// everything else is acknowledged and dropped. Redelivered event ids are
// acknowledged without re-crediting.
func (s *Server) SubscriptionWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "unreadable body"})
		return
	}

	if !provider.VerifyWebhookSignature(s.secrets.Subscription, body, c.GetHeader(subscriptionSignatureHeader)) {
		c.JSON(http.StatusUnauthorized, errorBody{Code: CodeUnauthorized, Message: "invalid signature"})
		return
	}

	var req SubscriptionEventRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "malformed event payload"})
		return
	}
	if req.EventID == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "event_id and type are required"})
		return
	}

	if req.Type != "invoice.paid" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: "user_id is required"})
		return
	}

	if err := s.webhooks.ProcessInvoicePaid(c.Request.Context(), req.EventID, req.UserID, req.Minutes); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
