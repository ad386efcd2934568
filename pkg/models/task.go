package models

import "time"

// Recognized task parameter keys.
const (
	ParamLanguage       = "language"
	ParamDetectLanguage = "detect_language"
)

// CreateTaskInput is the domain-level admission request, transformed from
// the HTTP body by the handler.
type CreateTaskInput struct {
	SourceType string
	SourceURL  string
	SizeBytes  int64
	IsTrial    bool
	Params     map[string]interface{}
}

// Language returns the target subtitle language from Params, if set.
func (in CreateTaskInput) Language() string {
	if in.Params == nil {
		return ""
	}
	if v, ok := in.Params[ParamLanguage].(string); ok {
		return v
	}
	return ""
}

// TaskFilters controls task listing.
type TaskFilters struct {
	Status string
	Cursor *time.Time // created_at of the last seen task; older tasks are returned
	Limit  int
}

// Job is the dispatch envelope handed to the dispatcher on admission.
// It is a snapshot; workers re-read the authoritative row on pickup.
type Job struct {
	TaskID     string
	SourceType string
	SourceURL  string
	Params     map[string]interface{}
}
