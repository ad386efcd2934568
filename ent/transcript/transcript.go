// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transcript type in the database.
	Label = "transcript"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transcript_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldSegments holds the string denoting the segments field in the database.
	FieldSegments = "segments"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// FieldSrtURL holds the string denoting the srt_url field in the database.
	FieldSrtURL = "srt_url"
	// FieldVttURL holds the string denoting the vtt_url field in the database.
	FieldVttURL = "vtt_url"
	// FieldRawURL holds the string denoting the raw_url field in the database.
	FieldRawURL = "raw_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the transcript in the database.
	Table = "transcripts"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "transcripts"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for transcript fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldSegments,
	FieldRawPayload,
	FieldSrtURL,
	FieldVttURL,
	FieldRawURL,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Transcript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// BySrtURL orders the results by the srt_url field.
func BySrtURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrtURL, opts...).ToFunc()
}

// ByVttURL orders the results by the vtt_url field.
func ByVttURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVttURL, opts...).ToFunc()
}

// ByRawURL orders the results by the raw_url field.
func ByRawURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
	)
}
