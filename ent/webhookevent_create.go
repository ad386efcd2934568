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
	"github.com/openscribe/scribe/ent/webhookevent"
)

// WebhookEventCreate is the builder for creating a WebhookEvent entity.
type WebhookEventCreate struct {
	config
	mutation *WebhookEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *WebhookEventCreate) SetEventID(v string) *WebhookEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *WebhookEventCreate) SetSource(v string) *WebhookEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *WebhookEventCreate) SetReceivedAt(v time.Time) *WebhookEventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *WebhookEventCreate) SetNillableReceivedAt(v *time.Time) *WebhookEventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEventCreate) SetID(v string) *WebhookEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_c *WebhookEventCreate) Mutation() *WebhookEventMutation {
	return _c.mutation
}

// Save creates the WebhookEvent in the database.
func (_c *WebhookEventCreate) Save(ctx context.Context) (*WebhookEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEventCreate) SaveX(ctx context.Context) *WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEventCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := webhookevent.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "WebhookEvent.event_id"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "WebhookEvent.source"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "WebhookEvent.received_at"`)}
	}
	return nil
}

func (_c *WebhookEventCreate) sqlSave(ctx context.Context) (*WebhookEvent, error) {
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
			return nil, fmt.Errorf("unexpected WebhookEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEventCreate) createSpec() (*WebhookEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookevent.Table, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(webhookevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(webhookevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(webhookevent.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookEvent.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEventUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEventCreate) OnConflict(opts ...sql.ConflictOption) *WebhookEventUpsertOne {
	_c.conflict = opts
	return &WebhookEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEventCreate) OnConflictColumns(columns ...string) *WebhookEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEventUpsertOne{
		create: _c,
	}
}

type (
	// WebhookEventUpsertOne is the builder for "upsert"-ing
	//  one WebhookEvent node.
	WebhookEventUpsertOne struct {
		create *WebhookEventCreate
	}

	// WebhookEventUpsert is the "OnConflict" setter.
	WebhookEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSource sets the "source" field.
func (u *WebhookEventUpsert) SetSource(v string) *WebhookEventUpsert {
	u.Set(webhookevent.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WebhookEventUpsert) UpdateSource() *WebhookEventUpsert {
	u.SetExcluded(webhookevent.FieldSource)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEventUpsertOne) UpdateNewValues() *WebhookEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookevent.FieldID)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(webhookevent.FieldEventID)
		}
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(webhookevent.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookEventUpsertOne) Ignore() *WebhookEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEventUpsertOne) DoNothing() *WebhookEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEventCreate.OnConflict
// documentation for more info.
func (u *WebhookEventUpsertOne) Update(set func(*WebhookEventUpsert)) *WebhookEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *WebhookEventUpsertOne) SetSource(v string) *WebhookEventUpsertOne {
	return u.Update(func(s *WebhookEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WebhookEventUpsertOne) UpdateSource() *WebhookEventUpsertOne {
	return u.Update(func(s *WebhookEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *WebhookEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookEventUpsertOne.ID is not supported by MySQL driver. Use WebhookEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookEventCreateBulk is the builder for creating many WebhookEvent entities in bulk.
type WebhookEventCreateBulk struct {
	config
	err      error
	builders []*WebhookEventCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookEvent entities in the database.
func (_c *WebhookEventCreateBulk) Save(ctx context.Context) ([]*WebhookEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEventMutation)
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
func (_c *WebhookEventCreateBulk) SaveX(ctx context.Context) []*WebhookEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEventUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookEventUpsertBulk {
	_c.conflict = opts
	return &WebhookEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEventCreateBulk) OnConflictColumns(columns ...string) *WebhookEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEventUpsertBulk{
		create: _c,
	}
}

// WebhookEventUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookEvent nodes.
type WebhookEventUpsertBulk struct {
	create *WebhookEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEventUpsertBulk) UpdateNewValues() *WebhookEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookevent.FieldID)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(webhookevent.FieldEventID)
			}
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(webhookevent.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookEventUpsertBulk) Ignore() *WebhookEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEventUpsertBulk) DoNothing() *WebhookEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEventCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookEventUpsertBulk) Update(set func(*WebhookEventUpsert)) *WebhookEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSource sets the "source" field.
func (u *WebhookEventUpsertBulk) SetSource(v string) *WebhookEventUpsertBulk {
	return u.Update(func(s *WebhookEventUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *WebhookEventUpsertBulk) UpdateSource() *WebhookEventUpsertBulk {
	return u.Update(func(s *WebhookEventUpsert) {
		s.UpdateSource()
	})
}

// Exec executes the query.
func (u *WebhookEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
