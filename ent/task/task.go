// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAnonID holds the string denoting the anon_id field in the database.
	FieldAnonID = "anon_id"
	// FieldOwnerKey holds the string denoting the owner_key field in the database.
	FieldOwnerKey = "owner_key"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldIsTrial holds the string denoting the is_trial field in the database.
	FieldIsTrial = "is_trial"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEngine holds the string denoting the engine field in the database.
	FieldEngine = "engine"
	// FieldDurationSec holds the string denoting the duration_sec field in the database.
	FieldDurationSec = "duration_sec"
	// FieldCostMinutes holds the string denoting the cost_minutes field in the database.
	FieldCostMinutes = "cost_minutes"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTranscript holds the string denoting the transcript edge name in mutations.
	EdgeTranscript = "transcript"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// TranscriptTable is the table that holds the transcript relation/edge.
	TranscriptTable = "transcripts"
	// TranscriptInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptInverseTable = "transcripts"
	// TranscriptColumn is the table column denoting the transcript relation/edge.
	TranscriptColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAnonID,
	FieldOwnerKey,
	FieldSourceType,
	FieldTaskType,
	FieldIsTrial,
	FieldPriority,
	FieldSourceURL,
	FieldParams,
	FieldStatus,
	FieldEngine,
	FieldDurationSec,
	FieldCostMinutes,
	FieldAttempts,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultTaskType holds the default value on creation for the "task_type" field.
	DefaultTaskType string
	// DefaultIsTrial holds the default value on creation for the "is_trial" field.
	DefaultIsTrial bool
	// DefaultDurationSec holds the default value on creation for the "duration_sec" field.
	DefaultDurationSec float64
	// DefaultCostMinutes holds the default value on creation for the "cost_minutes" field.
	DefaultCostMinutes int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypeUpload  SourceType = "upload"
	SourceTypeURL     SourceType = "url"
	SourceTypeYoutube SourceType = "youtube"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypeUpload, SourceTypeURL, SourceTypeYoutube:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for source_type field: %q", st)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityFree is the default value of the Priority enum.
const DefaultPriority = PriorityFree

// Priority values.
const (
	PriorityPaid Priority = "paid"
	PriorityFree Priority = "free"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityPaid, PriorityFree:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusSucceeded, StatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAnonID orders the results by the anon_id field.
func ByAnonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnonID, opts...).ToFunc()
}

// ByOwnerKey orders the results by the owner_key field.
func ByOwnerKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerKey, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByIsTrial orders the results by the is_trial field.
func ByIsTrial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTrial, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEngine orders the results by the engine field.
func ByEngine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngine, opts...).ToFunc()
}

// ByDurationSec orders the results by the duration_sec field.
func ByDurationSec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSec, opts...).ToFunc()
}

// ByCostMinutes orders the results by the cost_minutes field.
func ByCostMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostMinutes, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTranscriptField orders the results by transcript field.
func ByTranscriptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptStep(), sql.OrderByField(field, opts...))
	}
}
func newTranscriptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TranscriptTable, TranscriptColumn),
	)
}
