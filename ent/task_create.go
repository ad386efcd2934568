// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TaskCreate) SetUserID(v string) *TaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUserID(v *string) *TaskCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAnonID sets the "anon_id" field.
func (_c *TaskCreate) SetAnonID(v string) *TaskCreate {
	_c.mutation.SetAnonID(v)
	return _c
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAnonID(v *string) *TaskCreate {
	if v != nil {
		_c.SetAnonID(*v)
	}
	return _c
}

// SetOwnerKey sets the "owner_key" field.
func (_c *TaskCreate) SetOwnerKey(v string) *TaskCreate {
	_c.mutation.SetOwnerKey(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *TaskCreate) SetSourceType(v task.SourceType) *TaskCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v string) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *string) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetIsTrial sets the "is_trial" field.
func (_c *TaskCreate) SetIsTrial(v bool) *TaskCreate {
	_c.mutation.SetIsTrial(v)
	return _c
}

// SetNillableIsTrial sets the "is_trial" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsTrial(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsTrial(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *TaskCreate) SetSourceURL(v string) *TaskCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *TaskCreate) SetParams(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEngine sets the "engine" field.
func (_c *TaskCreate) SetEngine(v string) *TaskCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEngine(v *string) *TaskCreate {
	if v != nil {
		_c.SetEngine(*v)
	}
	return _c
}

// SetDurationSec sets the "duration_sec" field.
func (_c *TaskCreate) SetDurationSec(v float64) *TaskCreate {
	_c.mutation.SetDurationSec(v)
	return _c
}

// SetNillableDurationSec sets the "duration_sec" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDurationSec(v *float64) *TaskCreate {
	if v != nil {
		_c.SetDurationSec(*v)
	}
	return _c
}

// SetCostMinutes sets the "cost_minutes" field.
func (_c *TaskCreate) SetCostMinutes(v int) *TaskCreate {
	_c.mutation.SetCostMinutes(v)
	return _c
}

// SetNillableCostMinutes sets the "cost_minutes" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCostMinutes(v *int) *TaskCreate {
	if v != nil {
		_c.SetCostMinutes(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TaskCreate) SetAttempts(v int) *TaskCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAttempts(v *int) *TaskCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTranscriptID sets the "transcript" edge to the Transcript entity by ID.
func (_c *TaskCreate) SetTranscriptID(id string) *TaskCreate {
	_c.mutation.SetTranscriptID(id)
	return _c
}

// SetNillableTranscriptID sets the "transcript" edge to the Transcript entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableTranscriptID(id *string) *TaskCreate {
	if id != nil {
		_c = _c.SetTranscriptID(*id)
	}
	return _c
}

// SetTranscript sets the "transcript" edge to the Transcript entity.
func (_c *TaskCreate) SetTranscript(v *Transcript) *TaskCreate {
	return _c.SetTranscriptID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.IsTrial(); !ok {
		v := task.DefaultIsTrial
		_c.mutation.SetIsTrial(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DurationSec(); !ok {
		v := task.DefaultDurationSec
		_c.mutation.SetDurationSec(v)
	}
	if _, ok := _c.mutation.CostMinutes(); !ok {
		v := task.DefaultCostMinutes
		_c.mutation.SetCostMinutes(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := task.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.OwnerKey(); !ok {
		return &ValidationError{Name: "owner_key", err: errors.New(`ent: missing required field "Task.owner_key"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "Task.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := task.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Task.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if _, ok := _c.mutation.IsTrial(); !ok {
		return &ValidationError{Name: "is_trial", err: errors.New(`ent: missing required field "Task.is_trial"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Task.source_url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSec(); !ok {
		return &ValidationError{Name: "duration_sec", err: errors.New(`ent: missing required field "Task.duration_sec"`)}
	}
	if _, ok := _c.mutation.CostMinutes(); !ok {
		return &ValidationError{Name: "cost_minutes", err: errors.New(`ent: missing required field "Task.cost_minutes"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Task.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.AnonID(); ok {
		_spec.SetField(task.FieldAnonID, field.TypeString, value)
		_node.AnonID = &value
	}
	if value, ok := _c.mutation.OwnerKey(); ok {
		_spec.SetField(task.FieldOwnerKey, field.TypeString, value)
		_node.OwnerKey = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(task.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.IsTrial(); ok {
		_spec.SetField(task.FieldIsTrial, field.TypeBool, value)
		_node.IsTrial = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(task.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(task.FieldEngine, field.TypeString, value)
		_node.Engine = &value
	}
	if value, ok := _c.mutation.DurationSec(); ok {
		_spec.SetField(task.FieldDurationSec, field.TypeFloat64, value)
		_node.DurationSec = value
	}
	if value, ok := _c.mutation.CostMinutes(); ok {
		_spec.SetField(task.FieldCostMinutes, field.TypeInt, value)
		_node.CostMinutes = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(task.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TranscriptIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TaskUpsert) SetUserID(v string) *TaskUpsert {
	u.Set(task.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUserID() *TaskUpsert {
	u.SetExcluded(task.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *TaskUpsert) ClearUserID() *TaskUpsert {
	u.SetNull(task.FieldUserID)
	return u
}

// SetAnonID sets the "anon_id" field.
func (u *TaskUpsert) SetAnonID(v string) *TaskUpsert {
	u.Set(task.FieldAnonID, v)
	return u
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAnonID() *TaskUpsert {
	u.SetExcluded(task.FieldAnonID)
	return u
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TaskUpsert) ClearAnonID() *TaskUpsert {
	u.SetNull(task.FieldAnonID)
	return u
}

// SetOwnerKey sets the "owner_key" field.
func (u *TaskUpsert) SetOwnerKey(v string) *TaskUpsert {
	u.Set(task.FieldOwnerKey, v)
	return u
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOwnerKey() *TaskUpsert {
	u.SetExcluded(task.FieldOwnerKey)
	return u
}

// SetSourceType sets the "source_type" field.
func (u *TaskUpsert) SetSourceType(v task.SourceType) *TaskUpsert {
	u.Set(task.FieldSourceType, v)
	return u
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSourceType() *TaskUpsert {
	u.SetExcluded(task.FieldSourceType)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsert) SetTaskType(v string) *TaskUpsert {
	u.Set(task.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskType() *TaskUpsert {
	u.SetExcluded(task.FieldTaskType)
	return u
}

// SetIsTrial sets the "is_trial" field.
func (u *TaskUpsert) SetIsTrial(v bool) *TaskUpsert {
	u.Set(task.FieldIsTrial, v)
	return u
}

// UpdateIsTrial sets the "is_trial" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIsTrial() *TaskUpsert {
	u.SetExcluded(task.FieldIsTrial)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v task.Priority) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *TaskUpsert) SetSourceURL(v string) *TaskUpsert {
	u.Set(task.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSourceURL() *TaskUpsert {
	u.SetExcluded(task.FieldSourceURL)
	return u
}

// SetParams sets the "params" field.
func (u *TaskUpsert) SetParams(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldParams, v)
	return u
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsert) UpdateParams() *TaskUpsert {
	u.SetExcluded(task.FieldParams)
	return u
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsert) ClearParams() *TaskUpsert {
	u.SetNull(task.FieldParams)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetEngine sets the "engine" field.
func (u *TaskUpsert) SetEngine(v string) *TaskUpsert {
	u.Set(task.FieldEngine, v)
	return u
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEngine() *TaskUpsert {
	u.SetExcluded(task.FieldEngine)
	return u
}

// ClearEngine clears the value of the "engine" field.
func (u *TaskUpsert) ClearEngine() *TaskUpsert {
	u.SetNull(task.FieldEngine)
	return u
}

// SetDurationSec sets the "duration_sec" field.
func (u *TaskUpsert) SetDurationSec(v float64) *TaskUpsert {
	u.Set(task.FieldDurationSec, v)
	return u
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDurationSec() *TaskUpsert {
	u.SetExcluded(task.FieldDurationSec)
	return u
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *TaskUpsert) AddDurationSec(v float64) *TaskUpsert {
	u.Add(task.FieldDurationSec, v)
	return u
}

// SetCostMinutes sets the "cost_minutes" field.
func (u *TaskUpsert) SetCostMinutes(v int) *TaskUpsert {
	u.Set(task.FieldCostMinutes, v)
	return u
}

// UpdateCostMinutes sets the "cost_minutes" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCostMinutes() *TaskUpsert {
	u.SetExcluded(task.FieldCostMinutes)
	return u
}

// AddCostMinutes adds v to the "cost_minutes" field.
func (u *TaskUpsert) AddCostMinutes(v int) *TaskUpsert {
	u.Add(task.FieldCostMinutes, v)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsert) SetAttempts(v int) *TaskUpsert {
	u.Set(task.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAttempts() *TaskUpsert {
	u.SetExcluded(task.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsert) AddAttempts(v int) *TaskUpsert {
	u.Add(task.FieldAttempts, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsert) SetErrorMessage(v string) *TaskUpsert {
	u.Set(task.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsert) UpdateErrorMessage() *TaskUpsert {
	u.SetExcluded(task.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsert) ClearErrorMessage() *TaskUpsert {
	u.SetNull(task.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TaskUpsertOne) SetUserID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUserID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *TaskUpsertOne) ClearUserID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearUserID()
	})
}

// SetAnonID sets the "anon_id" field.
func (u *TaskUpsertOne) SetAnonID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAnonID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAnonID()
	})
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TaskUpsertOne) ClearAnonID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAnonID()
	})
}

// SetOwnerKey sets the "owner_key" field.
func (u *TaskUpsertOne) SetOwnerKey(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerKey(v)
	})
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOwnerKey() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerKey()
	})
}

// SetSourceType sets the "source_type" field.
func (u *TaskUpsertOne) SetSourceType(v task.SourceType) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSourceType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceType()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertOne) SetTaskType(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetIsTrial sets the "is_trial" field.
func (u *TaskUpsertOne) SetIsTrial(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIsTrial(v)
	})
}

// UpdateIsTrial sets the "is_trial" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIsTrial() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIsTrial()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v task.Priority) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *TaskUpsertOne) SetSourceURL(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSourceURL() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceURL()
	})
}

// SetParams sets the "params" field.
func (u *TaskUpsertOne) SetParams(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateParams() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsertOne) ClearParams() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParams()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetEngine sets the "engine" field.
func (u *TaskUpsertOne) SetEngine(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEngine() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEngine()
	})
}

// ClearEngine clears the value of the "engine" field.
func (u *TaskUpsertOne) ClearEngine() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEngine()
	})
}

// SetDurationSec sets the "duration_sec" field.
func (u *TaskUpsertOne) SetDurationSec(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDurationSec(v)
	})
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *TaskUpsertOne) AddDurationSec(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddDurationSec(v)
	})
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDurationSec() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDurationSec()
	})
}

// SetCostMinutes sets the "cost_minutes" field.
func (u *TaskUpsertOne) SetCostMinutes(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCostMinutes(v)
	})
}

// AddCostMinutes adds v to the "cost_minutes" field.
func (u *TaskUpsertOne) AddCostMinutes(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddCostMinutes(v)
	})
}

// UpdateCostMinutes sets the "cost_minutes" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCostMinutes() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCostMinutes()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsertOne) SetAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsertOne) AddAttempts(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAttempts() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertOne) SetErrorMessage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertOne) ClearErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TaskUpsertBulk) SetUserID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUserID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *TaskUpsertBulk) ClearUserID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearUserID()
	})
}

// SetAnonID sets the "anon_id" field.
func (u *TaskUpsertBulk) SetAnonID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAnonID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAnonID()
	})
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TaskUpsertBulk) ClearAnonID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAnonID()
	})
}

// SetOwnerKey sets the "owner_key" field.
func (u *TaskUpsertBulk) SetOwnerKey(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnerKey(v)
	})
}

// UpdateOwnerKey sets the "owner_key" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOwnerKey() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnerKey()
	})
}

// SetSourceType sets the "source_type" field.
func (u *TaskUpsertBulk) SetSourceType(v task.SourceType) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceType(v)
	})
}

// UpdateSourceType sets the "source_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSourceType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceType()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertBulk) SetTaskType(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetIsTrial sets the "is_trial" field.
func (u *TaskUpsertBulk) SetIsTrial(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIsTrial(v)
	})
}

// UpdateIsTrial sets the "is_trial" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIsTrial() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIsTrial()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v task.Priority) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *TaskUpsertBulk) SetSourceURL(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSourceURL() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSourceURL()
	})
}

// SetParams sets the "params" field.
func (u *TaskUpsertBulk) SetParams(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateParams() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsertBulk) ClearParams() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParams()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetEngine sets the "engine" field.
func (u *TaskUpsertBulk) SetEngine(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEngine(v)
	})
}

// UpdateEngine sets the "engine" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEngine() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEngine()
	})
}

// ClearEngine clears the value of the "engine" field.
func (u *TaskUpsertBulk) ClearEngine() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEngine()
	})
}

// SetDurationSec sets the "duration_sec" field.
func (u *TaskUpsertBulk) SetDurationSec(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDurationSec(v)
	})
}

// AddDurationSec adds v to the "duration_sec" field.
func (u *TaskUpsertBulk) AddDurationSec(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddDurationSec(v)
	})
}

// UpdateDurationSec sets the "duration_sec" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDurationSec() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDurationSec()
	})
}

// SetCostMinutes sets the "cost_minutes" field.
func (u *TaskUpsertBulk) SetCostMinutes(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCostMinutes(v)
	})
}

// AddCostMinutes adds v to the "cost_minutes" field.
func (u *TaskUpsertBulk) AddCostMinutes(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddCostMinutes(v)
	})
}

// UpdateCostMinutes sets the "cost_minutes" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCostMinutes() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCostMinutes()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TaskUpsertBulk) SetAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TaskUpsertBulk) AddAttempts(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAttempts() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAttempts()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertBulk) SetErrorMessage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertBulk) ClearErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
