package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openscribe/scribe/ent"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
	"github.com/openscribe/scribe/pkg/artifact"
	"github.com/openscribe/scribe/pkg/models"
	"github.com/openscribe/scribe/pkg/provider"
	"github.com/openscribe/scribe/pkg/segment"
	"github.com/openscribe/scribe/pkg/services"
	"github.com/openscribe/scribe/pkg/subtitle"
)

// TaskExecutor drives one task through provider routing, segment
// normalization, subtitle formatting, transcript persistence and
// settlement. Failures before persistence produce a failed result; the
// settlement step never fails a task whose transcript already exists.
type TaskExecutor struct {
	client     *ent.Client
	auto       *provider.AutoTranscriptClient
	stt        *provider.STTClient
	normalizer *segment.Normalizer
	store      *artifact.Store
	billing    *services.BillingService
}

// NewTaskExecutor creates a new executor.
func NewTaskExecutor(
	client *ent.Client,
	auto *provider.AutoTranscriptClient,
	stt *provider.STTClient,
	normalizer *segment.Normalizer,
	store *artifact.Store,
	billing *services.BillingService,
) *TaskExecutor {
	return &TaskExecutor{
		client:     client,
		auto:       auto,
		stt:        stt,
		normalizer: normalizer,
		store:      store,
		billing:    billing,
	}
}

// Execute runs the full pipeline for a claimed task.
func (e *TaskExecutor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	log := slog.With("task_id", t.ID, "source_type", t.SourceType)

	res, engine, err := e.transcribe(ctx, t)
	if err != nil {
		log.Error("Transcription failed", "engine", engine, "error", err)
		return &ExecutionResult{
			Status:    task.StatusFailed,
			Engine:    engine,
			Retryable: isRetryable(err),
			Err:       err,
		}
	}
	if res == nil || len(res.Segments) == 0 {
		return &ExecutionResult{
			Status: task.StatusFailed,
			Engine: engine,
			Err:    fmt.Errorf("provider returned an empty transcript"),
		}
	}

	return e.Finish(ctx, t, res, engine)
}

// transcribe routes the task to its provider adapter by source type.
func (e *TaskExecutor) transcribe(ctx context.Context, t *ent.Task) (*provider.TranscriptResult, string, error) {
	switch t.SourceType {
	case task.SourceTypeYoutube:
		res, err := e.auto.Transcribe(ctx, t.SourceURL, provider.ModeAuto, paramString(t.Params, models.ParamLanguage))
		return res, provider.EngineAutoTranscript, err

	case task.SourceTypeUpload, task.SourceTypeURL:
		res, err := e.stt.Transcribe(ctx, t.SourceURL, provider.STTOptions{
			Diarize:        true,
			DetectLanguage: true,
		})
		return res, provider.EngineSTT, err

	default:
		return nil, "", fmt.Errorf("unknown source type %q", t.SourceType)
	}
}

// Finish runs the post-provider tail of the pipeline: normalization,
// optional translation, formatting, artifact upload, transcript upsert and
// settlement. Exported because the async STT webhook path enters here with
// a provider result of its own.
func (e *TaskExecutor) Finish(ctx context.Context, t *ent.Task, res *provider.TranscriptResult, engine string) *ExecutionResult {
	log := slog.With("task_id", t.ID, "engine", engine)

	// Generated transcripts carry fragment-level chunks; LLM assistance,
	// when available, merges them better than the rules alone.
	segments := e.normalizer.Normalize(ctx, res.Segments, res.IsGenerated)

	// A translation target only applies to the STT path; the auto-transcript
	// provider already receives the language hint in its request.
	targetLang := paramString(t.Params, models.ParamLanguage)
	if engine == provider.EngineSTT && targetLang != "" && e.normalizer.HasLLM() {
		translated, err := e.normalizer.Translate(ctx, segments, targetLang)
		if err != nil {
			log.Error("Translation failed", "target_lang", targetLang, "error", err)
			return &ExecutionResult{
				Status:    task.StatusFailed,
				Engine:    engine,
				Retryable: true,
				Err:       err,
			}
		}
		segments = translated
	}

	costMinutes := 0
	if res.IsGenerated {
		costMinutes = int(math.Ceil(res.Duration / 60))
	}

	srtURL, vttURL, rawURL, err := e.uploadArtifacts(ctx, t.ID, segments, res.Raw)
	if err != nil {
		log.Error("Artifact upload failed", "error", err)
		return &ExecutionResult{
			Status:    task.StatusFailed,
			Engine:    engine,
			Retryable: true,
			Err:       err,
		}
	}

	if err := e.upsertTranscript(ctx, t.ID, segments, res.Raw, srtURL, vttURL, rawURL); err != nil {
		log.Error("Transcript persistence failed", "error", err)
		return &ExecutionResult{
			Status:    task.StatusFailed,
			Engine:    engine,
			Retryable: true,
			Err:       err,
		}
	}

	e.settle(ctx, t, costMinutes)

	log.Info("Task execution complete", "segments", len(segments),
		"duration_sec", res.Duration, "cost_minutes", costMinutes)

	return &ExecutionResult{
		Status:      task.StatusSucceeded,
		Engine:      engine,
		DurationSec: res.Duration,
		CostMinutes: costMinutes,
	}
}

// uploadArtifacts renders SRT and VTT and stores them next to the raw
// provider payload. The three uploads are independent, so they fan out.
func (e *TaskExecutor) uploadArtifacts(ctx context.Context, taskID string, segments []models.Segment, raw json.RawMessage) (srtURL, vttURL, rawURL string, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var uerr error
		srtURL, uerr = e.store.Put(gctx, artifact.TranscriptKey(taskID, artifact.NameSRT), []byte(subtitle.FormatSRT(segments)))
		return uerr
	})
	g.Go(func() error {
		var uerr error
		vttURL, uerr = e.store.Put(gctx, artifact.TranscriptKey(taskID, artifact.NameVTT), []byte(subtitle.FormatVTT(segments)))
		return uerr
	})
	if len(raw) > 0 {
		g.Go(func() error {
			var uerr error
			rawURL, uerr = e.store.Put(gctx, artifact.TranscriptKey(taskID, artifact.NameRaw), raw)
			return uerr
		})
	}

	if err := g.Wait(); err != nil {
		return "", "", "", fmt.Errorf("failed to upload artifacts: %w", err)
	}
	return srtURL, vttURL, rawURL, nil
}

// upsertTranscript writes the transcript row keyed on task_id. Re-delivery
// of the same task overwrites rather than duplicates.
func (e *TaskExecutor) upsertTranscript(ctx context.Context, taskID string, segments []models.Segment, raw json.RawMessage, srtURL, vttURL, rawURL string) error {
	create := e.client.Transcript.Create().
		SetID(uuid.New().String()).
		SetTaskID(taskID).
		SetSegments(segmentMaps(segments)).
		SetSrtURL(srtURL).
		SetVttURL(vttURL).
		SetRawURL(rawURL)
	if payload := rawPayloadMap(raw); payload != nil {
		create.SetRawPayload(payload)
	}

	err := create.
		OnConflictColumns(transcript.FieldTaskID).
		Update(func(u *ent.TranscriptUpsert) {
			u.SetSegments(segmentMaps(segments))
			u.SetSrtURL(srtURL)
			u.SetVttURL(vttURL)
			u.SetRawURL(rawURL)
			if payload := rawPayloadMap(raw); payload != nil {
				u.SetRawPayload(payload)
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert transcript: %w", err)
	}
	return nil
}

// settle records the trial or deducts the balance. By this point the work
// is done and persisted, so a deduction shortfall is logged, never rolled
// back. Preventing it was admission's job.
func (e *TaskExecutor) settle(ctx context.Context, t *ent.Task, costMinutes int) {
	log := slog.With("task_id", t.ID)

	if t.IsTrial {
		if err := e.billing.RecordTrial(ctx, deref(t.UserID), deref(t.AnonID)); err != nil {
			log.Error("Failed to record trial usage", "error", err)
		}
		return
	}

	if t.UserID == nil || costMinutes <= 0 {
		return
	}

	ok, err := e.billing.Deduct(ctx, *t.UserID, costMinutes)
	if err != nil {
		log.Error("Balance deduction failed", "cost_minutes", costMinutes, "error", err)
		return
	}
	if !ok {
		log.Warn("Balance shortfall at settlement, task kept",
			"user_id", *t.UserID, "cost_minutes", costMinutes)
	}
}

// MarkTerminal writes the terminal status conditional on the task still
// being in processing. Returns false when another actor (a duplicate
// delivery or the sweeper) got there first.
func MarkTerminal(ctx context.Context, client *ent.Client, taskID string, result *ExecutionResult) (bool, error) {
	update := client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusProcessing),
		).
		SetStatus(result.Status).
		SetCostMinutes(result.CostMinutes).
		SetUpdatedAt(time.Now())
	if result.Engine != "" {
		update.SetEngine(result.Engine)
	}
	if result.DurationSec > 0 {
		update.SetDurationSec(result.DurationSec)
	}
	if result.Err != nil {
		update.SetErrorMessage(result.Err.Error())
	}

	n, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update terminal status: %w", err)
	}
	return n == 1, nil
}

// CompleteFromResult finalizes a task from an externally delivered provider
// result (the async STT webhook). The task must still be processing.
func (e *TaskExecutor) CompleteFromResult(ctx context.Context, taskID string, res *provider.TranscriptResult) error {
	t, err := e.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	if t.Status != task.StatusProcessing {
		return services.ErrConflict
	}

	result := e.Finish(ctx, t, res, provider.EngineSTT)
	applied, err := MarkTerminal(ctx, e.client, taskID, result)
	if err != nil {
		return err
	}
	if !applied {
		return services.ErrConflict
	}
	return result.Err
}

// isRetryable separates transient provider faults from final ones. Poll
// exhaustion already consumed its whole time budget; re-running it would
// only trip the sweeper.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, provider.ErrPollTimeout):
		return false
	case errors.Is(err, provider.ErrNoCaptions):
		return false
	default:
		return true
	}
}

func paramString(params map[string]interface{}, key string) string {
	if params == nil {
		return ""
	}
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func segmentMaps(segments []models.Segment) []map[string]interface{} {
	out := make([]map[string]interface{}, len(segments))
	for i, s := range segments {
		m := map[string]interface{}{
			"start": s.Start,
			"end":   s.End,
			"text":  s.Text,
		}
		if s.Speaker != nil {
			m["speaker"] = *s.Speaker
		}
		out[i] = m
	}
	return out
}

// rawPayloadMap decodes the provider payload into a JSON object; non-object
// payloads are wrapped so nothing is lost.
func rawPayloadMap(raw json.RawMessage) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err == nil {
		return m
	}
	return map[string]interface{}{"raw": string(raw)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
