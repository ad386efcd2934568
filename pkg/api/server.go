// Package api exposes the HTTP surface: task admission and lookup, the
// provider and subscription webhooks, and health. It is a thin translation
// layer over the service packages.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openscribe/scribe/pkg/database"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/queue"
	"github.com/openscribe/scribe/pkg/services"
)

// TaskCompleter finalizes a task from an externally delivered provider
// result (the async STT webhook path).
type TaskCompleter interface {
	CompleteFromResult(ctx context.Context, taskID string, res *provider.TranscriptResult) error
}

// PoolHealthReporter exposes worker pool health for the health endpoint.
// Nil in in-process runner mode.
type PoolHealthReporter interface {
	Health() *queue.PoolHealth
}

// WebhookSecrets holds the per-source signing secrets for the public
// webhook endpoints.
type WebhookSecrets struct {
	STT          string
	Subscription string
}

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db        *database.Client
	tasks     *services.TaskService
	webhooks  *services.WebhookService
	completer TaskCompleter
	pool      PoolHealthReporter
	secrets   WebhookSecrets
}

// NewServer creates the API server. pool may be nil (runner mode).
func NewServer(
	db *database.Client,
	tasks *services.TaskService,
	webhooks *services.WebhookService,
	completer TaskCompleter,
	pool PoolHealthReporter,
	secrets WebhookSecrets,
) *Server {
	return &Server{
		db:        db,
		tasks:     tasks,
		webhooks:  webhooks,
		completer: completer,
		pool:      pool,
		secrets:   secrets,
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CallerMiddleware())

	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/tasks", s.CreateTask)
		v1.GET("/tasks", s.ListTasks)
		v1.GET("/tasks/:id", s.GetTask)

		v1.POST("/webhooks/stt", s.STTWebhook)
		v1.POST("/webhooks/subscription", s.SubscriptionWebhook)
	}

	return r
}

// Health returns the service health status, including database reachability
// and, in queue mode, worker pool state.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{"status": "healthy"}
	code := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp["database"] = dbHealth
	if err != nil {
		resp["status"] = "unhealthy"
		resp["error"] = err.Error()
		code = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["pool"] = poolHealth
		if !poolHealth.IsHealthy {
			resp["status"] = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, resp)
}
