// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
)

// Transcript is the model entity for the Transcript schema.
type Transcript struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Normalized subtitle segments {start, end, text, speaker}
	Segments []map[string]interface{} `json:"segments,omitempty"`
	// Original provider response, kept for reprocessing
	RawPayload map[string]interface{} `json:"raw_payload,omitempty"`
	// SrtURL holds the value of the "srt_url" field.
	SrtURL string `json:"srt_url,omitempty"`
	// VttURL holds the value of the "vtt_url" field.
	VttURL string `json:"vtt_url,omitempty"`
	// RawURL holds the value of the "raw_url" field.
	RawURL string `json:"raw_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptQuery when eager-loading is set.
	Edges        TranscriptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptEdges holds the relations/edges for other nodes in the graph.
type TranscriptEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Transcript) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcript.FieldSegments, transcript.FieldRawPayload:
			values[i] = new([]byte)
		case transcript.FieldID, transcript.FieldTaskID, transcript.FieldSrtURL, transcript.FieldVttURL, transcript.FieldRawURL:
			values[i] = new(sql.NullString)
		case transcript.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Transcript fields.
func (_m *Transcript) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcript.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcript.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case transcript.FieldSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Segments); err != nil {
					return fmt.Errorf("unmarshal field segments: %w", err)
				}
			}
		case transcript.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		case transcript.FieldSrtURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field srt_url", values[i])
			} else if value.Valid {
				_m.SrtURL = value.String
			}
		case transcript.FieldVttURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vtt_url", values[i])
			} else if value.Valid {
				_m.VttURL = value.String
			}
		case transcript.FieldRawURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_url", values[i])
			} else if value.Valid {
				_m.RawURL = value.String
			}
		case transcript.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Transcript.
// This includes values selected through modifiers, order, etc.
func (_m *Transcript) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Transcript entity.
func (_m *Transcript) QueryTask() *TaskQuery {
	return NewTranscriptClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this Transcript.
// Note that you need to call Transcript.Unwrap() before calling this method if this Transcript
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Transcript) Update() *TranscriptUpdateOne {
	return NewTranscriptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Transcript entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Transcript) Unwrap() *Transcript {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Transcript is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Transcript) String() string {
	var builder strings.Builder
	builder.WriteString("Transcript(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("segments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Segments))
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteString(", ")
	builder.WriteString("srt_url=")
	builder.WriteString(_m.SrtURL)
	builder.WriteString(", ")
	builder.WriteString("vtt_url=")
	builder.WriteString(_m.VttURL)
	builder.WriteString(", ")
	builder.WriteString("raw_url=")
	builder.WriteString(_m.RawURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Transcripts is a parsable slice of Transcript.
type Transcripts []*Transcript
