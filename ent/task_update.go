// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openscribe/scribe/ent/predicate"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TaskUpdate) SetUserID(v string) *TaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableUserID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TaskUpdate) ClearUserID() *TaskUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetAnonID sets the "anon_id" field.
func (_u *TaskUpdate) SetAnonID(v string) *TaskUpdate {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAnonID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// ClearAnonID clears the value of the "anon_id" field.
func (_u *TaskUpdate) ClearAnonID() *TaskUpdate {
	_u.mutation.ClearAnonID()
	return _u
}

// SetOwnerKey sets the "owner_key" field.
func (_u *TaskUpdate) SetOwnerKey(v string) *TaskUpdate {
	_u.mutation.SetOwnerKey(v)
	return _u
}

// SetNillableOwnerKey sets the "owner_key" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableOwnerKey(v *string) *TaskUpdate {
	if v != nil {
		_u.SetOwnerKey(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TaskUpdate) SetSourceType(v task.SourceType) *TaskUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSourceType(v *task.SourceType) *TaskUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v string) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetIsTrial sets the "is_trial" field.
func (_u *TaskUpdate) SetIsTrial(v bool) *TaskUpdate {
	_u.mutation.SetIsTrial(v)
	return _u
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsTrial(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsTrial(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v task.Priority) *TaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *task.Priority) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TaskUpdate) SetSourceURL(v string) *TaskUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSourceURL(v *string) *TaskUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *TaskUpdate) SetParams(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *TaskUpdate) ClearParams() *TaskUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEngine sets the "engine" field.
func (_u *TaskUpdate) SetEngine(v string) *TaskUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEngine(v *string) *TaskUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *TaskUpdate) ClearEngine() *TaskUpdate {
	_u.mutation.ClearEngine()
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *TaskUpdate) SetDurationSec(v float64) *TaskUpdate {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDurationSec(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *TaskUpdate) AddDurationSec(v float64) *TaskUpdate {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetCostMinutes sets the "cost_minutes" field.
func (_u *TaskUpdate) SetCostMinutes(v int) *TaskUpdate {
	_u.mutation.ResetCostMinutes()
	_u.mutation.SetCostMinutes(v)
	return _u
}

// SetNillableCostMinutes sets the "cost_minutes" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCostMinutes(v *int) *TaskUpdate {
	if v != nil {
		_u.SetCostMinutes(*v)
	}
	return _u
}

// AddCostMinutes adds value to the "cost_minutes" field.
func (_u *TaskUpdate) AddCostMinutes(v int) *TaskUpdate {
	_u.mutation.AddCostMinutes(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdate) SetAttempts(v int) *TaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAttempts(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdate) AddAttempts(v int) *TaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *TaskUpdate) SetTranscriptID(id string) *TaskUpdate {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableTranscriptID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *TaskUpdate) SetTranscript(v *Transcript) *TaskUpdate {
	return _u.SetTranscriptID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *TaskUpdate) ClearTranscript() *TaskUpdate {
	_u.mutation.ClearTranscript()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(task.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(task.FieldAnonID, field.TypeString, value)
	}
	if _u.mutation.AnonIDCleared() {
		_spec.ClearField(task.FieldAnonID, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerKey(); ok {
		_spec.SetField(task.FieldOwnerKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsTrial(); ok {
		_spec.SetField(task.FieldIsTrial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(task.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(task.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(task.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(task.FieldDurationSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(task.FieldDurationSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostMinutes(); ok {
		_spec.SetField(task.FieldCostMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCostMinutes(); ok {
		_spec.AddField(task.FieldCostMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TranscriptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TranscriptTable,
			Columns: []string{task.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TranscriptTable,
			Columns: []string{task.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetUserID sets the "user_id" field.
func (_u *TaskUpdateOne) SetUserID(v string) *TaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableUserID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TaskUpdateOne) ClearUserID() *TaskUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetAnonID sets the "anon_id" field.
func (_u *TaskUpdateOne) SetAnonID(v string) *TaskUpdateOne {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAnonID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// ClearAnonID clears the value of the "anon_id" field.
func (_u *TaskUpdateOne) ClearAnonID() *TaskUpdateOne {
	_u.mutation.ClearAnonID()
	return _u
}

// SetOwnerKey sets the "owner_key" field.
func (_u *TaskUpdateOne) SetOwnerKey(v string) *TaskUpdateOne {
	_u.mutation.SetOwnerKey(v)
	return _u
}

// SetNillableOwnerKey sets the "owner_key" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableOwnerKey(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetOwnerKey(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TaskUpdateOne) SetSourceType(v task.SourceType) *TaskUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSourceType(v *task.SourceType) *TaskUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v string) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetIsTrial sets the "is_trial" field.
func (_u *TaskUpdateOne) SetIsTrial(v bool) *TaskUpdateOne {
	_u.mutation.SetIsTrial(v)
	return _u
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsTrial(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsTrial(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v task.Priority) *TaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *task.Priority) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *TaskUpdateOne) SetSourceURL(v string) *TaskUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSourceURL(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *TaskUpdateOne) SetParams(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *TaskUpdateOne) ClearParams() *TaskUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEngine sets the "engine" field.
func (_u *TaskUpdateOne) SetEngine(v string) *TaskUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEngine(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *TaskUpdateOne) ClearEngine() *TaskUpdateOne {
	_u.mutation.ClearEngine()
	return _u
}

// SetDurationSec sets the "duration_sec" field.
func (_u *TaskUpdateOne) SetDurationSec(v float64) *TaskUpdateOne {
	_u.mutation.ResetDurationSec()
	_u.mutation.SetDurationSec(v)
	return _u
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDurationSec(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetDurationSec(*v)
	}
	return _u
}

// AddDurationSec adds value to the "duration_sec" field.
func (_u *TaskUpdateOne) AddDurationSec(v float64) *TaskUpdateOne {
	_u.mutation.AddDurationSec(v)
	return _u
}

// SetCostMinutes sets the "cost_minutes" field.
func (_u *TaskUpdateOne) SetCostMinutes(v int) *TaskUpdateOne {
	_u.mutation.ResetCostMinutes()
	_u.mutation.SetCostMinutes(v)
	return _u
}

// SetNillableCostMinutes sets the "cost_minutes" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCostMinutes(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetCostMinutes(*v)
	}
	return _u
}

// AddCostMinutes adds value to the "cost_minutes" field.
func (_u *TaskUpdateOne) AddCostMinutes(v int) *TaskUpdateOne {
	_u.mutation.AddCostMinutes(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TaskUpdateOne) SetAttempts(v int) *TaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAttempts(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TaskUpdateOne) AddAttempts(v int) *TaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_u *TaskUpdateOne) SetTranscriptID(id string) *TaskUpdateOne {
	_u.mutation.SetTranscriptID(id)
	return _u
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTranscriptID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetTranscriptID(*id)
	}
	return _u
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_u *TaskUpdateOne) SetTranscript(v *Transcript) *TaskUpdateOne {
	return _u.SetTranscriptID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearTranscript clears the "transcript" edge to the Transcript entity.
func (_u *TaskUpdateOne) ClearTranscript() *TaskUpdateOne {
	_u.mutation.ClearTranscript()
	return _u
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(task.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(task.FieldAnonID, field.TypeString, value)
	}
	if _u.mutation.AnonIDCleared() {
		_spec.ClearField(task.FieldAnonID, field.TypeString)
	}
	if value, ok := _u.mutation.OwnerKey(); ok {
		_spec.SetField(task.FieldOwnerKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsTrial(); ok {
		_spec.SetField(task.FieldIsTrial, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(task.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(task.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(task.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSec(); ok {
		_spec.SetField(task.FieldDurationSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSec(); ok {
		_spec.AddField(task.FieldDurationSec, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostMinutes(); ok {
		_spec.SetField(task.FieldCostMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCostMinutes(); ok {
		_spec.AddField(task.FieldCostMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(task.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TranscriptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TranscriptTable,
			Columns: []string{task.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TranscriptTable,
			Columns: []string{task.TranscriptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
