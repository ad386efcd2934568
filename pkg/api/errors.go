package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openscribe/scribe/pkg/services"
)

// errorBody is the error envelope returned on every non-2xx response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stable error codes surfaced to clients.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeTrialExhausted      = "TRIAL_EXHAUSTED"
	CodeDurationExceeded    = "DURATION_EXCEEDED"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeConflict            = "CONFLICT"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// respondServiceError maps service-layer errors onto the stable error codes
// and writes the response.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, errorBody{Code: CodeInvalidInput, Message: validErr.Error()})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Code: CodeNotFound, Message: "task not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorBody{Code: CodeUnauthorized, Message: "identity required"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody{Code: CodeForbidden, Message: "access denied"})
	case errors.Is(err, services.ErrTrialExhausted):
		c.JSON(http.StatusForbidden, errorBody{Code: CodeTrialExhausted, Message: "trial already consumed"})
	case errors.Is(err, services.ErrDurationExceeded):
		c.JSON(http.StatusForbidden, errorBody{Code: CodeDurationExceeded, Message: "media exceeds the trial duration cap"})
	case errors.Is(err, services.ErrInsufficientBalance):
		c.JSON(http.StatusForbidden, errorBody{Code: CodeInsufficientBalance, Message: "insufficient balance"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, errorBody{Code: CodeConflict, Message: "another task is already in flight"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, errorBody{Code: CodeInternalError, Message: "internal server error"})
	}
}
