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
	"github.com/openscribe/scribe/ent/trialusage"
)

// TrialUsageCreate is the builder for creating a TrialUsage entity.
type TrialUsageCreate struct {
	config
	mutation *TrialUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TrialUsageCreate) SetUserID(v string) *TrialUsageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *TrialUsageCreate) SetNillableUserID(v *string) *TrialUsageCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAnonID sets the "anon_id" field.
func (_c *TrialUsageCreate) SetAnonID(v string) *TrialUsageCreate {
	_c.mutation.SetAnonID(v)
	return _c
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_c *TrialUsageCreate) SetNillableAnonID(v *string) *TrialUsageCreate {
	if v != nil {
		_c.SetAnonID(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *TrialUsageCreate) SetUsedAt(v time.Time) *TrialUsageCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *TrialUsageCreate) SetNillableUsedAt(v *time.Time) *TrialUsageCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrialUsageCreate) SetID(v string) *TrialUsageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrialUsageMutation object of the builder.
func (_c *TrialUsageCreate) Mutation() *TrialUsageMutation {
	return _c.mutation
}

// Save creates the TrialUsage in the database.
func (_c *TrialUsageCreate) Save(ctx context.Context) (*TrialUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrialUsageCreate) SaveX(ctx context.Context) *TrialUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrialUsageCreate) defaults() {
	if _, ok := _c.mutation.UsedAt(); !ok {
		v := trialusage.DefaultUsedAt()
		_c.mutation.SetUsedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrialUsageCreate) check() error {
	if _, ok := _c.mutation.UsedAt(); !ok {
		return &ValidationError{Name: "used_at", err: errors.New(`ent: missing required field "TrialUsage.used_at"`)}
	}
	return nil
}

func (_c *TrialUsageCreate) sqlSave(ctx context.Context) (*TrialUsage, error) {
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
			return nil, fmt.Errorf("unexpected TrialUsage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrialUsageCreate) createSpec() (*TrialUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &TrialUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trialusage.Table, sqlgraph.NewFieldSpec(trialusage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(trialusage.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.AnonID(); ok {
		_spec.SetField(trialusage.FieldAnonID, field.TypeString, value)
		_node.AnonID = &value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(trialusage.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrialUsage.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrialUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrialUsageCreate) OnConflict(opts ...sql.ConflictOption) *TrialUsageUpsertOne {
	_c.conflict = opts
	return &TrialUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrialUsageCreate) OnConflictColumns(columns ...string) *TrialUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrialUsageUpsertOne{
		create: _c,
	}
}

type (
	// TrialUsageUpsertOne is the builder for "upsert"-ing
	//  one TrialUsage node.
	TrialUsageUpsertOne struct {
		create *TrialUsageCreate
	}

	// TrialUsageUpsert is the "OnConflict" setter.
	TrialUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TrialUsageUpsert) SetUserID(v string) *TrialUsageUpsert {
	u.Set(trialusage.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TrialUsageUpsert) UpdateUserID() *TrialUsageUpsert {
	u.SetExcluded(trialusage.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *TrialUsageUpsert) ClearUserID() *TrialUsageUpsert {
	u.SetNull(trialusage.FieldUserID)
	return u
}

// SetAnonID sets the "anon_id" field.
func (u *TrialUsageUpsert) SetAnonID(v string) *TrialUsageUpsert {
	u.Set(trialusage.FieldAnonID, v)
	return u
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TrialUsageUpsert) UpdateAnonID() *TrialUsageUpsert {
	u.SetExcluded(trialusage.FieldAnonID)
	return u
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TrialUsageUpsert) ClearAnonID() *TrialUsageUpsert {
	u.SetNull(trialusage.FieldAnonID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trialusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrialUsageUpsertOne) UpdateNewValues() *TrialUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(trialusage.FieldID)
		}
		if _, exists := u.create.mutation.UsedAt(); exists {
			s.SetIgnore(trialusage.FieldUsedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TrialUsageUpsertOne) Ignore() *TrialUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrialUsageUpsertOne) DoNothing() *TrialUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrialUsageCreate.OnConflict
// documentation for more info.
func (u *TrialUsageUpsertOne) Update(set func(*TrialUsageUpsert)) *TrialUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrialUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TrialUsageUpsertOne) SetUserID(v string) *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TrialUsageUpsertOne) UpdateUserID() *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *TrialUsageUpsertOne) ClearUserID() *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.ClearUserID()
	})
}

// SetAnonID sets the "anon_id" field.
func (u *TrialUsageUpsertOne) SetAnonID(v string) *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TrialUsageUpsertOne) UpdateAnonID() *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.UpdateAnonID()
	})
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TrialUsageUpsertOne) ClearAnonID() *TrialUsageUpsertOne {
	return u.Update(func(s *TrialUsageUpsert) {
		s.ClearAnonID()
	})
}

// Exec executes the query.
func (u *TrialUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrialUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrialUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TrialUsageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TrialUsageUpsertOne.ID is not supported by MySQL driver. Use TrialUsageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TrialUsageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TrialUsageCreateBulk is the builder for creating many TrialUsage entities in bulk.
type TrialUsageCreateBulk struct {
	config
	err      error
	builders []*TrialUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the TrialUsage entities in the database.
func (_c *TrialUsageCreateBulk) Save(ctx context.Context) ([]*TrialUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrialUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrialUsageMutation)
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
func (_c *TrialUsageCreateBulk) SaveX(ctx context.Context) []*TrialUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrialUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrialUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrialUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *TrialUsageUpsertBulk {
	_c.conflict = opts
	return &TrialUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrialUsageCreateBulk) OnConflictColumns(columns ...string) *TrialUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrialUsageUpsertBulk{
		create: _c,
	}
}

// TrialUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of TrialUsage nodes.
type TrialUsageUpsertBulk struct {
	create *TrialUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trialusage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrialUsageUpsertBulk) UpdateNewValues() *TrialUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(trialusage.FieldID)
			}
			if _, exists := b.mutation.UsedAt(); exists {
				s.SetIgnore(trialusage.FieldUsedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrialUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TrialUsageUpsertBulk) Ignore() *TrialUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrialUsageUpsertBulk) DoNothing() *TrialUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrialUsageCreateBulk.OnConflict
// documentation for more info.
func (u *TrialUsageUpsertBulk) Update(set func(*TrialUsageUpsert)) *TrialUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrialUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TrialUsageUpsertBulk) SetUserID(v string) *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TrialUsageUpsertBulk) UpdateUserID() *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *TrialUsageUpsertBulk) ClearUserID() *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.ClearUserID()
	})
}

// SetAnonID sets the "anon_id" field.
func (u *TrialUsageUpsertBulk) SetAnonID(v string) *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *TrialUsageUpsertBulk) UpdateAnonID() *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.UpdateAnonID()
	})
}

// ClearAnonID clears the value of the "anon_id" field.
func (u *TrialUsageUpsertBulk) ClearAnonID() *TrialUsageUpsertBulk {
	return u.Update(func(s *TrialUsageUpsert) {
		s.ClearAnonID()
	})
}

// Exec executes the query.
func (u *TrialUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TrialUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrialUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrialUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
