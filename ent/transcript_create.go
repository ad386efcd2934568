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

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TranscriptCreate) SetTaskID(v string) *TranscriptCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSegments sets the "segments" field.
func (_c *TranscriptCreate) SetSegments(v []map[string]interface{}) *TranscriptCreate {
	_c.mutation.SetSegments(v)
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *TranscriptCreate) SetRawPayload(v map[string]interface{}) *TranscriptCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetSrtURL sets the "srt_url" field.
func (_c *TranscriptCreate) SetSrtURL(v string) *TranscriptCreate {
	_c.mutation.SetSrtURL(v)
	return _c
}

// SetNillableSrtURL sets the "srt_url" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableSrtURL(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetSrtURL(*v)
	}
	return _c
}

// SetVttURL sets the "vtt_url" field.
func (_c *TranscriptCreate) SetVttURL(v string) *TranscriptCreate {
	_c.mutation.SetVttURL(v)
	return _c
}

// SetNillableVttURL sets the "vtt_url" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableVttURL(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetVttURL(*v)
	}
	return _c
}

// SetRawURL sets the "raw_url" field.
func (_c *TranscriptCreate) SetRawURL(v string) *TranscriptCreate {
	_c.mutation.SetRawURL(v)
	return _c
}

// SetNillableRawURL sets the "raw_url" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableRawURL(v *string) *TranscriptCreate {
	if v != nil {
		_c.SetRawURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptCreate) SetCreatedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableCreatedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptCreate) SetID(v string) *TranscriptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TranscriptCreate) SetTask(v *Task) *TranscriptCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcript.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Transcript.task_id"`)}
	}
	if _, ok := _c.mutation.Segments(); !ok {
		return &ValidationError{Name: "segments", err: errors.New(`ent: missing required field "Transcript.segments"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcript.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Transcript.task"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
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
			return nil, fmt.Errorf("unexpected Transcript.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Segments(); ok {
		_spec.SetField(transcript.FieldSegments, field.TypeJSON, value)
		_node.Segments = value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(transcript.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	if value, ok := _c.mutation.SrtURL(); ok {
		_spec.SetField(transcript.FieldSrtURL, field.TypeString, value)
		_node.SrtURL = value
	}
	if value, ok := _c.mutation.VttURL(); ok {
		_spec.SetField(transcript.FieldVttURL, field.TypeString, value)
		_node.VttURL = value
	}
	if value, ok := _c.mutation.RawURL(); ok {
		_spec.SetField(transcript.FieldRawURL, field.TypeString, value)
		_node.RawURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcript.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertOne {
	_c.conflict = opts
	return &TranscriptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflictColumns(columns ...string) *TranscriptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertOne{
		create: _c,
	}
}

type (
	// TranscriptUpsertOne is the builder for "upsert"-ing
	//  one Transcript node.
	TranscriptUpsertOne struct {
		create *TranscriptCreate
	}

	// TranscriptUpsert is the "OnConflict" setter.
	TranscriptUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskID sets the "task_id" field.
func (u *TranscriptUpsert) SetTaskID(v string) *TranscriptUpsert {
	u.Set(transcript.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateTaskID() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldTaskID)
	return u
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsert) SetSegments(v []map[string]interface{}) *TranscriptUpsert {
	u.Set(transcript.FieldSegments, v)
	return u
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSegments() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSegments)
	return u
}

// SetRawPayload sets the "raw_payload" field.
func (u *TranscriptUpsert) SetRawPayload(v map[string]interface{}) *TranscriptUpsert {
	u.Set(transcript.FieldRawPayload, v)
	return u
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateRawPayload() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldRawPayload)
	return u
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *TranscriptUpsert) ClearRawPayload() *TranscriptUpsert {
	u.SetNull(transcript.FieldRawPayload)
	return u
}

// SetSrtURL sets the "srt_url" field.
func (u *TranscriptUpsert) SetSrtURL(v string) *TranscriptUpsert {
	u.Set(transcript.FieldSrtURL, v)
	return u
}

// UpdateSrtURL sets the "srt_url" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSrtURL() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSrtURL)
	return u
}

// ClearSrtURL clears the value of the "srt_url" field.
func (u *TranscriptUpsert) ClearSrtURL() *TranscriptUpsert {
	u.SetNull(transcript.FieldSrtURL)
	return u
}

// SetVttURL sets the "vtt_url" field.
func (u *TranscriptUpsert) SetVttURL(v string) *TranscriptUpsert {
	u.Set(transcript.FieldVttURL, v)
	return u
}

// UpdateVttURL sets the "vtt_url" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateVttURL() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldVttURL)
	return u
}

// ClearVttURL clears the value of the "vtt_url" field.
func (u *TranscriptUpsert) ClearVttURL() *TranscriptUpsert {
	u.SetNull(transcript.FieldVttURL)
	return u
}

// SetRawURL sets the "raw_url" field.
func (u *TranscriptUpsert) SetRawURL(v string) *TranscriptUpsert {
	u.Set(transcript.FieldRawURL, v)
	return u
}

// UpdateRawURL sets the "raw_url" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateRawURL() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldRawURL)
	return u
}

// ClearRawURL clears the value of the "raw_url" field.
func (u *TranscriptUpsert) ClearRawURL() *TranscriptUpsert {
	u.SetNull(transcript.FieldRawURL)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transcript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertOne) UpdateNewValues() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transcript.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(transcript.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranscriptUpsertOne) Ignore() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertOne) DoNothing() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreate.OnConflict
// documentation for more info.
func (u *TranscriptUpsertOne) Update(set func(*TranscriptUpsert)) *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TranscriptUpsertOne) SetTaskID(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateTaskID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTaskID()
	})
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsertOne) SetSegments(v []map[string]interface{}) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSegments(v)
	})
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSegments() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSegments()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *TranscriptUpsertOne) SetRawPayload(v map[string]interface{}) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateRawPayload() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *TranscriptUpsertOne) ClearRawPayload() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearRawPayload()
	})
}

// SetSrtURL sets the "srt_url" field.
func (u *TranscriptUpsertOne) SetSrtURL(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSrtURL(v)
	})
}

// UpdateSrtURL sets the "srt_url" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSrtURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSrtURL()
	})
}

// ClearSrtURL clears the value of the "srt_url" field.
func (u *TranscriptUpsertOne) ClearSrtURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearSrtURL()
	})
}

// SetVttURL sets the "vtt_url" field.
func (u *TranscriptUpsertOne) SetVttURL(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetVttURL(v)
	})
}

// UpdateVttURL sets the "vtt_url" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateVttURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateVttURL()
	})
}

// ClearVttURL clears the value of the "vtt_url" field.
func (u *TranscriptUpsertOne) ClearVttURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearVttURL()
	})
}

// SetRawURL sets the "raw_url" field.
func (u *TranscriptUpsertOne) SetRawURL(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetRawURL(v)
	})
}

// UpdateRawURL sets the "raw_url" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateRawURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateRawURL()
	})
}

// ClearRawURL clears the value of the "raw_url" field.
func (u *TranscriptUpsertOne) ClearRawURL() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearRawURL()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranscriptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TranscriptUpsertOne.ID is not supported by MySQL driver. Use TranscriptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranscriptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
	conflict []sql.ConflictOption
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
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
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertBulk {
	_c.conflict = opts
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflictColumns(columns ...string) *TranscriptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// TranscriptUpsertBulk is the builder for "upsert"-ing
// a bulk of Transcript nodes.
type TranscriptUpsertBulk struct {
	create *TranscriptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transcript.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) UpdateNewValues() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transcript.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(transcript.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) Ignore() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertBulk) DoNothing() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreateBulk.OnConflict
// documentation for more info.
func (u *TranscriptUpsertBulk) Update(set func(*TranscriptUpsert)) *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskID sets the "task_id" field.
func (u *TranscriptUpsertBulk) SetTaskID(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateTaskID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTaskID()
	})
}

// SetSegments sets the "segments" field.
func (u *TranscriptUpsertBulk) SetSegments(v []map[string]interface{}) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSegments(v)
	})
}

// UpdateSegments sets the "segments" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSegments() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSegments()
	})
}

// SetRawPayload sets the "raw_payload" field.
func (u *TranscriptUpsertBulk) SetRawPayload(v map[string]interface{}) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetRawPayload(v)
	})
}

// UpdateRawPayload sets the "raw_payload" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateRawPayload() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateRawPayload()
	})
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (u *TranscriptUpsertBulk) ClearRawPayload() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearRawPayload()
	})
}

// SetSrtURL sets the "srt_url" field.
func (u *TranscriptUpsertBulk) SetSrtURL(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSrtURL(v)
	})
}

// UpdateSrtURL sets the "srt_url" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSrtURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSrtURL()
	})
}

// ClearSrtURL clears the value of the "srt_url" field.
func (u *TranscriptUpsertBulk) ClearSrtURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearSrtURL()
	})
}

// SetVttURL sets the "vtt_url" field.
func (u *TranscriptUpsertBulk) SetVttURL(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetVttURL(v)
	})
}

// UpdateVttURL sets the "vtt_url" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateVttURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateVttURL()
	})
}

// ClearVttURL clears the value of the "vtt_url" field.
func (u *TranscriptUpsertBulk) ClearVttURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearVttURL()
	})
}

// SetRawURL sets the "raw_url" field.
func (u *TranscriptUpsertBulk) SetRawURL(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetRawURL(v)
	})
}

// UpdateRawURL sets the "raw_url" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateRawURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateRawURL()
	})
}

// ClearRawURL clears the value of the "raw_url" field.
func (u *TranscriptUpsertBulk) ClearRawURL() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.ClearRawURL()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranscriptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
