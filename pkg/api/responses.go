package api

import (
	"time"

	"github.com/openscribe/scribe/ent"
)

// CreateTaskResponse is returned on admission. RetryAfter tells clients how
// often to poll the task detail endpoint.
type CreateTaskResponse struct {
	TaskID     string `json:"task_id"`
	Status     string `json:"status"`
	RetryAfter int    `json:"retry_after"`
}

// TaskResponse is the task detail shape.
type TaskResponse struct {
	TaskID       string              `json:"task_id"`
	Status       string              `json:"status"`
	SourceType   string              `json:"source_type"`
	IsTrial      bool                `json:"is_trial"`
	Priority     string              `json:"priority"`
	Engine       string              `json:"engine,omitempty"`
	DurationSec  float64             `json:"duration_sec,omitempty"`
	CostMinutes  int                 `json:"cost_minutes"`
	ErrorMessage string              `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Transcript   *TranscriptResponse `json:"transcript,omitempty"`
}

// TranscriptResponse carries the result artifacts of a succeeded task.
type TranscriptResponse struct {
	Segments []map[string]interface{} `json:"segments"`
	SrtURL   string                   `json:"srt_url,omitempty"`
	VttURL   string                   `json:"vtt_url,omitempty"`
	RawURL   string                   `json:"raw_url,omitempty"`
}

// ListTasksResponse is the paginated listing shape. NextCursor is the
// created_at of the last task, to be echoed back as ?cursor=.
type ListTasksResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	NextCursor *time.Time     `json:"next_cursor,omitempty"`
}

// taskResponseFrom maps a task row (with optionally loaded transcript edge)
// to its response shape.
func taskResponseFrom(t *ent.Task) TaskResponse {
	resp := TaskResponse{
		TaskID:      t.ID,
		Status:      string(t.Status),
		SourceType:  string(t.SourceType),
		IsTrial:     t.IsTrial,
		Priority:    string(t.Priority),
		DurationSec: t.DurationSec,
		CostMinutes: t.CostMinutes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Engine != nil {
		resp.Engine = *t.Engine
	}
	if t.ErrorMessage != nil {
		resp.ErrorMessage = *t.ErrorMessage
	}
	if tr := t.Edges.Transcript; tr != nil {
		resp.Transcript = &TranscriptResponse{
			Segments: tr.Segments,
			SrtURL:   tr.SrtURL,
			VttURL:   tr.VttURL,
			RawURL:   tr.RawURL,
		}
	}
	return resp
}
