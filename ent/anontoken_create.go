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
	"github.com/openscribe/scribe/ent/anontoken"
)

// AnonTokenCreate is the builder for creating a AnonToken entity.
type AnonTokenCreate struct {
	config
	mutation *AnonTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAnonID sets the "anon_id" field.
func (_c *AnonTokenCreate) SetAnonID(v string) *AnonTokenCreate {
	_c.mutation.SetAnonID(v)
	return _c
}

// SetIPHash sets the "ip_hash" field.
func (_c *AnonTokenCreate) SetIPHash(v string) *AnonTokenCreate {
	_c.mutation.SetIPHash(v)
	return _c
}

// SetNillableIPHash sets the "ip_hash" field if the given value is not nil.
func (_c *AnonTokenCreate) SetNillableIPHash(v *string) *AnonTokenCreate {
	if v != nil {
		_c.SetIPHash(*v)
	}
	return _c
}

// SetUaHash sets the "ua_hash" field.
func (_c *AnonTokenCreate) SetUaHash(v string) *AnonTokenCreate {
	_c.mutation.SetUaHash(v)
	return _c
}

// SetNillableUaHash sets the "ua_hash" field if the given value is not nil.
func (_c *AnonTokenCreate) SetNillableUaHash(v *string) *AnonTokenCreate {
	if v != nil {
		_c.SetUaHash(*v)
	}
	return _c
}

// SetUsedTrial sets the "used_trial" field.
func (_c *AnonTokenCreate) SetUsedTrial(v bool) *AnonTokenCreate {
	_c.mutation.SetUsedTrial(v)
	return _c
}

// SetNillableUsedTrial sets the "used_trial" field if the given value is not nil.
func (_c *AnonTokenCreate) SetNillableUsedTrial(v *bool) *AnonTokenCreate {
	if v != nil {
		_c.SetUsedTrial(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnonTokenCreate) SetCreatedAt(v time.Time) *AnonTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnonTokenCreate) SetNillableCreatedAt(v *time.Time) *AnonTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnonTokenCreate) SetID(v string) *AnonTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnonTokenMutation object of the builder.
func (_c *AnonTokenCreate) Mutation() *AnonTokenMutation {
	return _c.mutation
}

// Save creates the AnonToken in the database.
func (_c *AnonTokenCreate) Save(ctx context.Context) (*AnonToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnonTokenCreate) SaveX(ctx context.Context) *AnonToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnonTokenCreate) defaults() {
	if _, ok := _c.mutation.UsedTrial(); !ok {
		v := anontoken.DefaultUsedTrial
		_c.mutation.SetUsedTrial(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := anontoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnonTokenCreate) check() error {
	if _, ok := _c.mutation.AnonID(); !ok {
		return &ValidationError{Name: "anon_id", err: errors.New(`ent: missing required field "AnonToken.anon_id"`)}
	}
	if _, ok := _c.mutation.UsedTrial(); !ok {
		return &ValidationError{Name: "used_trial", err: errors.New(`ent: missing required field "AnonToken.used_trial"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnonToken.created_at"`)}
	}
	return nil
}

func (_c *AnonTokenCreate) sqlSave(ctx context.Context) (*AnonToken, error) {
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
			return nil, fmt.Errorf("unexpected AnonToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnonTokenCreate) createSpec() (*AnonToken, *sqlgraph.CreateSpec) {
	var (
		_node = &AnonToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(anontoken.Table, sqlgraph.NewFieldSpec(anontoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AnonID(); ok {
		_spec.SetField(anontoken.FieldAnonID, field.TypeString, value)
		_node.AnonID = value
	}
	if value, ok := _c.mutation.IPHash(); ok {
		_spec.SetField(anontoken.FieldIPHash, field.TypeString, value)
		_node.IPHash = value
	}
	if value, ok := _c.mutation.UaHash(); ok {
		_spec.SetField(anontoken.FieldUaHash, field.TypeString, value)
		_node.UaHash = value
	}
	if value, ok := _c.mutation.UsedTrial(); ok {
		_spec.SetField(anontoken.FieldUsedTrial, field.TypeBool, value)
		_node.UsedTrial = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(anontoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnonToken.Create().
//		SetAnonID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnonTokenUpsert) {
//			SetAnonID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnonTokenCreate) OnConflict(opts ...sql.ConflictOption) *AnonTokenUpsertOne {
	_c.conflict = opts
	return &AnonTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnonTokenCreate) OnConflictColumns(columns ...string) *AnonTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnonTokenUpsertOne{
		create: _c,
	}
}

type (
	// AnonTokenUpsertOne is the builder for "upsert"-ing
	//  one AnonToken node.
	AnonTokenUpsertOne struct {
		create *AnonTokenCreate
	}

	// AnonTokenUpsert is the "OnConflict" setter.
	AnonTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetAnonID sets the "anon_id" field.
func (u *AnonTokenUpsert) SetAnonID(v string) *AnonTokenUpsert {
	u.Set(anontoken.FieldAnonID, v)
	return u
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *AnonTokenUpsert) UpdateAnonID() *AnonTokenUpsert {
	u.SetExcluded(anontoken.FieldAnonID)
	return u
}

// SetIPHash sets the "ip_hash" field.
func (u *AnonTokenUpsert) SetIPHash(v string) *AnonTokenUpsert {
	u.Set(anontoken.FieldIPHash, v)
	return u
}

// UpdateIPHash sets the "ip_hash" field to the value that was provided on create.
func (u *AnonTokenUpsert) UpdateIPHash() *AnonTokenUpsert {
	u.SetExcluded(anontoken.FieldIPHash)
	return u
}

// ClearIPHash clears the value of the "ip_hash" field.
func (u *AnonTokenUpsert) ClearIPHash() *AnonTokenUpsert {
	u.SetNull(anontoken.FieldIPHash)
	return u
}

// SetUaHash sets the "ua_hash" field.
func (u *AnonTokenUpsert) SetUaHash(v string) *AnonTokenUpsert {
	u.Set(anontoken.FieldUaHash, v)
	return u
}

// UpdateUaHash sets the "ua_hash" field to the value that was provided on create.
func (u *AnonTokenUpsert) UpdateUaHash() *AnonTokenUpsert {
	u.SetExcluded(anontoken.FieldUaHash)
	return u
}

// ClearUaHash clears the value of the "ua_hash" field.
func (u *AnonTokenUpsert) ClearUaHash() *AnonTokenUpsert {
	u.SetNull(anontoken.FieldUaHash)
	return u
}

// SetUsedTrial sets the "used_trial" field.
func (u *AnonTokenUpsert) SetUsedTrial(v bool) *AnonTokenUpsert {
	u.Set(anontoken.FieldUsedTrial, v)
	return u
}

// UpdateUsedTrial sets the "used_trial" field to the value that was provided on create.
func (u *AnonTokenUpsert) UpdateUsedTrial() *AnonTokenUpsert {
	u.SetExcluded(anontoken.FieldUsedTrial)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(anontoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnonTokenUpsertOne) UpdateNewValues() *AnonTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(anontoken.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(anontoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnonTokenUpsertOne) Ignore() *AnonTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnonTokenUpsertOne) DoNothing() *AnonTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnonTokenCreate.OnConflict
// documentation for more info.
func (u *AnonTokenUpsertOne) Update(set func(*AnonTokenUpsert)) *AnonTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnonTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetAnonID sets the "anon_id" field.
func (u *AnonTokenUpsertOne) SetAnonID(v string) *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *AnonTokenUpsertOne) UpdateAnonID() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateAnonID()
	})
}

// SetIPHash sets the "ip_hash" field.
func (u *AnonTokenUpsertOne) SetIPHash(v string) *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetIPHash(v)
	})
}

// UpdateIPHash sets the "ip_hash" field to the value that was provided on create.
func (u *AnonTokenUpsertOne) UpdateIPHash() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateIPHash()
	})
}

// ClearIPHash clears the value of the "ip_hash" field.
func (u *AnonTokenUpsertOne) ClearIPHash() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.ClearIPHash()
	})
}

// SetUaHash sets the "ua_hash" field.
func (u *AnonTokenUpsertOne) SetUaHash(v string) *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetUaHash(v)
	})
}

// UpdateUaHash sets the "ua_hash" field to the value that was provided on create.
func (u *AnonTokenUpsertOne) UpdateUaHash() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateUaHash()
	})
}

// ClearUaHash clears the value of the "ua_hash" field.
func (u *AnonTokenUpsertOne) ClearUaHash() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.ClearUaHash()
	})
}

// SetUsedTrial sets the "used_trial" field.
func (u *AnonTokenUpsertOne) SetUsedTrial(v bool) *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetUsedTrial(v)
	})
}

// UpdateUsedTrial sets the "used_trial" field to the value that was provided on create.
func (u *AnonTokenUpsertOne) UpdateUsedTrial() *AnonTokenUpsertOne {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateUsedTrial()
	})
}

// Exec executes the query.
func (u *AnonTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnonTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnonTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnonTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnonTokenUpsertOne.ID is not supported by MySQL driver. Use AnonTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnonTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnonTokenCreateBulk is the builder for creating many AnonToken entities in bulk.
type AnonTokenCreateBulk struct {
	config
	err      error
	builders []*AnonTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the AnonToken entities in the database.
func (_c *AnonTokenCreateBulk) Save(ctx context.Context) ([]*AnonToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnonToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnonTokenMutation)
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
func (_c *AnonTokenCreateBulk) SaveX(ctx context.Context) []*AnonToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnonTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnonTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnonToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnonTokenUpsert) {
//			SetAnonID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnonTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnonTokenUpsertBulk {
	_c.conflict = opts
	return &AnonTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnonTokenCreateBulk) OnConflictColumns(columns ...string) *AnonTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnonTokenUpsertBulk{
		create: _c,
	}
}

// AnonTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of AnonToken nodes.
type AnonTokenUpsertBulk struct {
	create *AnonTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(anontoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnonTokenUpsertBulk) UpdateNewValues() *AnonTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(anontoken.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(anontoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnonToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnonTokenUpsertBulk) Ignore() *AnonTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnonTokenUpsertBulk) DoNothing() *AnonTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnonTokenCreateBulk.OnConflict
// documentation for more info.
func (u *AnonTokenUpsertBulk) Update(set func(*AnonTokenUpsert)) *AnonTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnonTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetAnonID sets the "anon_id" field.
func (u *AnonTokenUpsertBulk) SetAnonID(v string) *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetAnonID(v)
	})
}

// UpdateAnonID sets the "anon_id" field to the value that was provided on create.
func (u *AnonTokenUpsertBulk) UpdateAnonID() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateAnonID()
	})
}

// SetIPHash sets the "ip_hash" field.
func (u *AnonTokenUpsertBulk) SetIPHash(v string) *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetIPHash(v)
	})
}

// UpdateIPHash sets the "ip_hash" field to the value that was provided on create.
func (u *AnonTokenUpsertBulk) UpdateIPHash() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateIPHash()
	})
}

// ClearIPHash clears the value of the "ip_hash" field.
func (u *AnonTokenUpsertBulk) ClearIPHash() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.ClearIPHash()
	})
}

// SetUaHash sets the "ua_hash" field.
func (u *AnonTokenUpsertBulk) SetUaHash(v string) *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetUaHash(v)
	})
}

// UpdateUaHash sets the "ua_hash" field to the value that was provided on create.
func (u *AnonTokenUpsertBulk) UpdateUaHash() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateUaHash()
	})
}

// ClearUaHash clears the value of the "ua_hash" field.
func (u *AnonTokenUpsertBulk) ClearUaHash() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.ClearUaHash()
	})
}

// SetUsedTrial sets the "used_trial" field.
func (u *AnonTokenUpsertBulk) SetUsedTrial(v bool) *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.SetUsedTrial(v)
	})
}

// UpdateUsedTrial sets the "used_trial" field to the value that was provided on create.
func (u *AnonTokenUpsertBulk) UpdateUsedTrial() *AnonTokenUpsertBulk {
	return u.Update(func(s *AnonTokenUpsert) {
		s.UpdateUsedTrial()
	})
}

// Exec executes the query.
func (u *AnonTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnonTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnonTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnonTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
