// Scribe transcription server: provides the HTTP API, manages queue
// workers or the in-process runner, and drives task processing.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openscribe/scribe/pkg/api"
	"github.com/openscribe/scribe/pkg/artifact"
	"github.com/openscribe/scribe/pkg/cleanup"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/database"
	"github.com/openscribe/scribe/pkg/llm"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/queue"
	"github.com/openscribe/scribe/pkg/segment"
	"github.com/openscribe/scribe/pkg/services"
	"github.com/openscribe/scribe/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting scribe", "version", version.Full(), "http_port", httpPort, "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup sweep: tasks stranded in processing by a crash.
	if swept, err := queue.SweepStuckTasks(ctx, dbClient.Client, cfg.Task.Timeout); err != nil {
		slog.Error("Startup stuck-task sweep failed", "error", err)
		// Non-fatal; the periodic sweeper retries.
	} else if swept > 0 {
		slog.Warn("Failed stuck tasks at startup", "count", swept)
	}

	// 4. Provider adapters and normalizer
	autoClient := provider.NewAutoTranscriptClient(cfg.Providers.AutoTranscript)
	sttClient := provider.NewSTTClient(cfg.Providers.STT)
	metadataClient := provider.NewMetadataClient(cfg.Providers.Metadata)

	var completer segment.Completer
	if cfg.LLM.Enabled {
		completer = llm.NewClient(cfg.LLM)
		slog.Info("LLM normalizer enabled", "model", cfg.LLM.Model)
	}
	normalizer := segment.NewNormalizer(completer)

	store := artifact.NewStore(cfg.Artifact)

	// 5. Services and executor
	billingService := services.NewBillingService(dbClient.Client)
	webhookService := services.NewWebhookService(dbClient.Client, billingService)
	executor := queue.NewTaskExecutor(dbClient.Client, autoClient, sttClient, normalizer, store, billingService)

	// 6. Dispatcher: durable worker pool or in-process runner.
	var (
		dispatcher services.Dispatcher
		pool       *queue.WorkerPool
		runner     *queue.Runner
	)
	if cfg.Queue.Enabled {
		dispatcher = queue.NopDispatcher{}
		pool = queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, cfg.Task.Timeout, executor)
		if err := pool.Start(ctx); err != nil {
			slog.Error("Failed to start worker pool", "error", err)
			os.Exit(1)
		}
	} else {
		runner = queue.NewRunner(dbClient.Client, executor, cfg.Queue.WorkerCount)
		runner.Start(ctx)
		dispatcher = runner

		// The runner has no poll loop, so the sweeper runs standalone.
		sweepCtx, sweepCancel := context.WithCancel(ctx)
		defer sweepCancel()
		go queue.RunSweeper(sweepCtx, dbClient.Client, cfg.Queue.SweepInterval, cfg.Task.Timeout)
	}

	// 7. Startup recovery: replay tasks admitted but never picked up. In
	// queue mode the pending rows are the queue, so this is a no-op there.
	if recovered, err := queue.RecoverPending(ctx, dbClient.Client, dispatcher.Enqueue); err != nil {
		slog.Error("Startup recovery failed", "error", err)
	} else if recovered > 0 {
		slog.Info("Recovered pending tasks", "count", recovered)
	}

	taskService := services.NewTaskService(dbClient.Client, cfg, billingService, metadataClient, dispatcher)

	// Retention: old terminal tasks and expired webhook event ids.
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	var poolHealth api.PoolHealthReporter
	if pool != nil {
		poolHealth = pool
	}
	server := api.NewServer(dbClient, taskService, webhookService, executor, poolHealth, api.WebhookSecrets{
		STT:          cfg.Providers.STT.WebhookSecret,
		Subscription: cfg.Providers.Subscription.WebhookSecret,
	})

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Scribe started successfully",
		"pod_id", podID,
		"queue_enabled", cfg.Queue.Enabled,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: finish in-flight tasks within the budget, then
	// stop the HTTP server. Tasks that overrun are caught by the sweeper on
	// next start.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		if pool != nil {
			pool.Stop()
		}
		if runner != nil {
			runner.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Task processing stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete tasks will be swept")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
