package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/openscribe/scribe/ent"
	enttask "github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/pkg/config"
	"github.com/openscribe/scribe/pkg/models"
	"github.com/openscribe/scribe/pkg/provider"
	"golang.org/x/text/language"
)

// Dispatcher hands admitted tasks to the execution layer. Queue mode treats
// the task row itself as the queue entry; in-process mode schedules onto the
// local runner.
type Dispatcher interface {
	Enqueue(ctx context.Context, job models.Job, priority enttask.Priority) error
}

// MetadataResolver resolves platform video metadata for trial duration
// gating.
type MetadataResolver interface {
	Lookup(ctx context.Context, videoURL string) (*provider.VideoMetadata, error)
}

// TaskService handles task admission, lookup, and listing.
type TaskService struct {
	client     *ent.Client
	cfg        *config.Config
	billing    *BillingService
	metadata   MetadataResolver
	dispatcher Dispatcher
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client, cfg *config.Config, billing *BillingService, metadata MetadataResolver, dispatcher Dispatcher) *TaskService {
	if client == nil {
		panic("NewTaskService: client must not be nil")
	}
	if cfg == nil {
		panic("NewTaskService: cfg must not be nil")
	}
	if billing == nil {
		panic("NewTaskService: billing must not be nil")
	}
	return &TaskService{
		client:     client,
		cfg:        cfg,
		billing:    billing,
		metadata:   metadata,
		dispatcher: dispatcher,
	}
}

// CreateTask validates and admits a transcription request. Every gate fails
// closed; on success the task is persisted in pending and handed to the
// dispatcher.
func (s *TaskService) CreateTask(ctx context.Context, input models.CreateTaskInput, caller models.Caller) (*ent.Task, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// Trial determination: an explicit trial request wins even for
	// authenticated callers (free priority, balance gate skipped).
	effectiveTrial := input.IsTrial || !caller.Authenticated
	if !caller.Authenticated && caller.AnonID == "" {
		return nil, ErrUnauthorized
	}

	if effectiveTrial {
		if err := s.checkTrialGate(ctx, input, caller); err != nil {
			return nil, err
		}
	} else {
		minutes, err := s.billing.Minutes(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		if minutes <= 0 {
			return nil, ErrInsufficientBalance
		}
	}

	// Concurrency gate. The count check gives the friendly path; the partial
	// unique index on (owner_key WHERE status IN pending,processing) closes
	// the race between concurrent admissions.
	ownerKey := caller.OwnerKey()
	active, err := s.client.Task.Query().
		Where(
			enttask.OwnerKeyEQ(ownerKey),
			enttask.StatusIn(enttask.StatusPending, enttask.StatusProcessing),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tasks: %w", err)
	}
	if active > 0 {
		return nil, ErrConflict
	}

	priority := enttask.PriorityFree
	if caller.Authenticated && !effectiveTrial {
		priority = enttask.PriorityPaid
	}

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetOwnerKey(ownerKey).
		SetSourceType(enttask.SourceType(input.SourceType)).
		SetSourceURL(input.SourceURL).
		SetIsTrial(effectiveTrial).
		SetPriority(priority).
		SetStatus(enttask.StatusPending)

	if caller.Authenticated {
		builder.SetUserID(caller.UserID)
	} else {
		builder.SetAnonID(caller.AnonID)
	}
	if input.Params != nil {
		builder.SetParams(input.Params)
	}

	task, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if s.dispatcher != nil {
		job := models.Job{
			TaskID:     task.ID,
			SourceType: input.SourceType,
			SourceURL:  input.SourceURL,
			Params:     input.Params,
		}
		if err := s.dispatcher.Enqueue(ctx, job, priority); err != nil {
			// The row is already pending; startup recovery or the next poll
			// picks it up, so admission still succeeds.
			slog.Warn("Failed to enqueue task", "task_id", task.ID, "error", err)
		}
	}

	return task, nil
}

// checkTrialGate enforces the single-trial rule and, for platform URLs, the
// duration cap. Metadata lookup is best-effort in reach but never admits
// optimistically: lookup failure rejects the request.
func (s *TaskService) checkTrialGate(ctx context.Context, input models.CreateTaskInput, caller models.Caller) error {
	used, err := s.billing.CheckTrial(ctx, caller.UserID, caller.AnonID)
	if err != nil {
		return err
	}
	if used {
		return ErrTrialExhausted
	}

	if input.SourceType == string(enttask.SourceTypeYoutube) {
		if s.metadata == nil {
			return NewValidationError("source_url", "video duration could not be verified")
		}
		md, err := s.metadata.Lookup(ctx, input.SourceURL)
		if err != nil {
			slog.Warn("Video metadata lookup failed",
				"source_url", input.SourceURL, "error", err)
			return NewValidationError("source_url", "video duration could not be verified")
		}
		if float64(md.DurationSeconds) > s.cfg.Trial.MaxDuration.Seconds() {
			return ErrDurationExceeded
		}
	}

	return nil
}

// GetTask retrieves a task by id, enforcing ownership.
func (s *TaskService) GetTask(ctx context.Context, taskID string, caller models.Caller) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(enttask.IDEQ(taskID)).
		WithTranscript().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task.OwnerKey != caller.OwnerKey() {
		return nil, ErrForbidden
	}

	return task, nil
}

// ListTasks lists the caller's tasks, newest first, paginated by created_at
// cursor.
func (s *TaskService) ListTasks(ctx context.Context, caller models.Caller, filters models.TaskFilters) ([]*ent.Task, error) {
	query := s.client.Task.Query().
		Where(enttask.OwnerKeyEQ(caller.OwnerKey()))

	if filters.Status != "" {
		query = query.Where(enttask.StatusEQ(enttask.Status(filters.Status)))
	}
	if filters.Cursor != nil {
		query = query.Where(enttask.CreatedAtLT(*filters.Cursor))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	tasks, err := query.
		Order(ent.Desc(enttask.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// RetryAfter is the poll interval advertised to clients on creation.
func (s *TaskService) RetryAfter() int {
	return s.cfg.Task.PollIntervalSeconds
}

func validateInput(input models.CreateTaskInput) error {
	switch input.SourceType {
	case string(enttask.SourceTypeUpload), string(enttask.SourceTypeURL), string(enttask.SourceTypeYoutube):
	default:
		return NewValidationError("source_type", "must be one of upload, url, youtube")
	}

	if strings.TrimSpace(input.SourceURL) == "" {
		return NewValidationError("source_url", "required")
	}
	if input.SizeBytes < 0 {
		return NewValidationError("size_bytes", "must not be negative")
	}
	u, err := url.Parse(input.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return NewValidationError("source_url", "must be a valid http(s) URL")
	}

	if lang := input.Language(); lang != "" {
		if _, err := language.Parse(lang); err != nil {
			return NewValidationError("params.language", fmt.Sprintf("unrecognized language tag %q", lang))
		}
	}
	if input.Params != nil {
		if v, ok := input.Params[models.ParamDetectLanguage]; ok {
			if _, isBool := v.(bool); !isBool {
				return NewValidationError("params.detect_language", "must be a boolean")
			}
		}
	}

	return nil
}
