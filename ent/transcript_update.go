// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/openscribe/scribe/ent/predicate"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
)

// TranscriptUpdate is the builder for updating Transcript entities.
type TranscriptUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptMutation
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdate) Where(ps ...predicate.Transcript) *TranscriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TranscriptUpdate) SetTaskID(v string) *TranscriptUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableTaskID(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSegments sets the "segments" field.
func (_u *TranscriptUpdate) SetSegments(v []map[string]interface{}) *TranscriptUpdate {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *TranscriptUpdate) AppendSegments(v []map[string]interface{}) *TranscriptUpdate {
	_u.mutation.AppendSegments(v)
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *TranscriptUpdate) SetRawPayload(v map[string]interface{}) *TranscriptUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *TranscriptUpdate) ClearRawPayload() *TranscriptUpdate {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetSrtURL sets the "srt_url" field.
func (_u *TranscriptUpdate) SetSrtURL(v string) *TranscriptUpdate {
	_u.mutation.SetSrtURL(v)
	return _u
}

// SetNillableSrtURL sets the "srt_url" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableSrtURL(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetSrtURL(*v)
	}
	return _u
}

// ClearSrtURL clears the value of the "srt_url" field.
func (_u *TranscriptUpdate) ClearSrtURL() *TranscriptUpdate {
	_u.mutation.ClearSrtURL()
	return _u
}

// SetVttURL sets the "vtt_url" field.
func (_u *TranscriptUpdate) SetVttURL(v string) *TranscriptUpdate {
	_u.mutation.SetVttURL(v)
	return _u
}

// SetNillableVttURL sets the "vtt_url" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableVttURL(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetVttURL(*v)
	}
	return _u
}

// ClearVttURL clears the value of the "vtt_url" field.
func (_u *TranscriptUpdate) ClearVttURL() *TranscriptUpdate {
	_u.mutation.ClearVttURL()
	return _u
}

// SetRawURL sets the "raw_url" field.
func (_u *TranscriptUpdate) SetRawURL(v string) *TranscriptUpdate {
	_u.mutation.SetRawURL(v)
	return _u
}

// SetNillableRawURL sets the "raw_url" field if the given value is not nil.
func (_u *TranscriptUpdate) SetNillableRawURL(v *string) *TranscriptUpdate {
	if v != nil {
		_u.SetRawURL(*v)
	}
	return _u
}

// ClearRawURL clears the value of the "raw_url" field.
func (_u *TranscriptUpdate) ClearRawURL() *TranscriptUpdate {
	_u.mutation.ClearRawURL()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TranscriptUpdate) SetTask(v *Task) *TranscriptUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdate) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TranscriptUpdate) ClearTask() *TranscriptUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.task"`)
	}
	return nil
}

func (_u *TranscriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSegments, value)
		})
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(transcript.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(transcript.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SrtURL(); ok {
		_spec.SetField(transcript.FieldSrtURL, field.TypeString, value)
	}
	if _u.mutation.SrtURLCleared() {
		_spec.ClearField(transcript.FieldSrtURL, field.TypeString)
	}
	if value, ok := _u.mutation.VttURL(); ok {
		_spec.SetField(transcript.FieldVttURL, field.TypeString, value)
	}
	if _u.mutation.VttURLCleared() {
		_spec.ClearField(transcript.FieldVttURL, field.TypeString)
	}
	if value, ok := _u.mutation.RawURL(); ok {
		_spec.SetField(transcript.FieldRawURL, field.TypeString, value)
	}
	if _u.mutation.RawURLCleared() {
		_spec.ClearField(transcript.FieldRawURL, field.TypeString)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcript.TaskTable,
			Columns: []string{transcript.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcript.TaskTable,
			Columns: []string{transcript.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptUpdateOne is the builder for updating a single Transcript entity.
type TranscriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TranscriptUpdateOne) SetTaskID(v string) *TranscriptUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableTaskID(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetSegments sets the "segments" field.
func (_u *TranscriptUpdateOne) SetSegments(v []map[string]interface{}) *TranscriptUpdateOne {
	_u.mutation.SetSegments(v)
	return _u
}

// AppendSegments appends value to the "segments" field.
func (_u *TranscriptUpdateOne) AppendSegments(v []map[string]interface{}) *TranscriptUpdateOne {
	_u.mutation.AppendSegments(v)
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *TranscriptUpdateOne) SetRawPayload(v map[string]interface{}) *TranscriptUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (_u *TranscriptUpdateOne) ClearRawPayload() *TranscriptUpdateOne {
	_u.mutation.ClearRawPayload()
	return _u
}

// SetSrtURL sets the "srt_url" field.
func (_u *TranscriptUpdateOne) SetSrtURL(v string) *TranscriptUpdateOne {
	_u.mutation.SetSrtURL(v)
	return _u
}

// SetNillableSrtURL sets the "srt_url" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableSrtURL(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetSrtURL(*v)
	}
	return _u
}

// ClearSrtURL clears the value of the "srt_url" field.
func (_u *TranscriptUpdateOne) ClearSrtURL() *TranscriptUpdateOne {
	_u.mutation.ClearSrtURL()
	return _u
}

// SetVttURL sets the "vtt_url" field.
func (_u *TranscriptUpdateOne) SetVttURL(v string) *TranscriptUpdateOne {
	_u.mutation.SetVttURL(v)
	return _u
}

// SetNillableVttURL sets the "vtt_url" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableVttURL(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetVttURL(*v)
	}
	return _u
}

// ClearVttURL clears the value of the "vtt_url" field.
func (_u *TranscriptUpdateOne) ClearVttURL() *TranscriptUpdateOne {
	_u.mutation.ClearVttURL()
	return _u
}

// SetRawURL sets the "raw_url" field.
func (_u *TranscriptUpdateOne) SetRawURL(v string) *TranscriptUpdateOne {
	_u.mutation.SetRawURL(v)
	return _u
}

// SetNillableRawURL sets the "raw_url" field if the given value is not nil.
func (_u *TranscriptUpdateOne) SetNillableRawURL(v *string) *TranscriptUpdateOne {
	if v != nil {
		_u.SetRawURL(*v)
	}
	return _u
}

// ClearRawURL clears the value of the "raw_url" field.
func (_u *TranscriptUpdateOne) ClearRawURL() *TranscriptUpdateOne {
	_u.mutation.ClearRawURL()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TranscriptUpdateOne) SetTask(v *Task) *TranscriptUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_u *TranscriptUpdateOne) Mutation() *TranscriptMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TranscriptUpdateOne) ClearTask() *TranscriptUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TranscriptUpdate builder.
func (_u *TranscriptUpdateOne) Where(ps ...predicate.Transcript) *TranscriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptUpdateOne) Select(field string, fields ...string) *TranscriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcript entity.
func (_u *TranscriptUpdateOne) Save(ctx context.Context) (*Transcript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptUpdateOne) SaveX(ctx context.Context) *Transcript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcript.task"`)
	}
	return nil
}

func (_u *TranscriptUpdateOne) sqlSave(ctx context.Context) (_node *Transcript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for _, f := range fields {
			if !transcript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcript.FieldID {
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
	if value, ok := _u.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcript.FieldSegments, value)
		})
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(transcript.FieldRawPayload, field.TypeJSON, value)
	}
	if _u.mutation.RawPayloadCleared() {
		_spec.ClearField(transcript.FieldRawPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SrtURL(); ok {
		_spec.SetField(transcript.FieldSrtURL, field.TypeString, value)
	}
	if _u.mutation.SrtURLCleared() {
		_spec.ClearField(transcript.FieldSrtURL, field.TypeString)
	}
	if value, ok := _u.mutation.VttURL(); ok {
		_spec.SetField(transcript.FieldVttURL, field.TypeString, value)
	}
	if _u.mutation.VttURLCleared() {
		_spec.ClearField(transcript.FieldVttURL, field.TypeString)
	}
	if value, ok := _u.mutation.RawURL(); ok {
		_spec.SetField(transcript.FieldRawURL, field.TypeString, value)
	}
	if _u.mutation.RawURLCleared() {
		_spec.ClearField(transcript.FieldRawURL, field.TypeString)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcript.TaskTable,
			Columns: []string{transcript.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcript.TaskTable,
			Columns: []string{transcript.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
