// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openscribe/scribe/ent/anontoken"
	"github.com/openscribe/scribe/ent/predicate"
)

// AnonTokenUpdate is the builder for updating AnonToken entities.
type AnonTokenUpdate struct {
	config
	hooks    []Hook
	mutation *AnonTokenMutation
}

// Where appends a list predicates to the AnonTokenUpdate builder.
func (_u *AnonTokenUpdate) Where(ps ...predicate.AnonToken) *AnonTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnonID sets the "anon_id" field.
func (_u *AnonTokenUpdate) SetAnonID(v string) *AnonTokenUpdate {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *AnonTokenUpdate) SetNillableAnonID(v *string) *AnonTokenUpdate {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// SetIPHash sets the "ip_hash" field.
func (_u *AnonTokenUpdate) SetIPHash(v string) *AnonTokenUpdate {
	_u.mutation.SetIPHash(v)
	return _u
}

// SetNillableIPHash sets the "ip_hash" field if the given value is not nil.
func (_u *AnonTokenUpdate) SetNillableIPHash(v *string) *AnonTokenUpdate {
	if v != nil {
		_u.SetIPHash(*v)
	}
	return _u
}

// ClearIPHash clears the value of the "ip_hash" field.
func (_u *AnonTokenUpdate) ClearIPHash() *AnonTokenUpdate {
	_u.mutation.ClearIPHash()
	return _u
}

// SetUaHash sets the "ua_hash" field.
func (_u *AnonTokenUpdate) SetUaHash(v string) *AnonTokenUpdate {
	_u.mutation.SetUaHash(v)
	return _u
}

// SetNillableUaHash sets the "ua_hash" field if the given value is not nil.
func (_u *AnonTokenUpdate) SetNillableUaHash(v *string) *AnonTokenUpdate {
	if v != nil {
		_u.SetUaHash(*v)
	}
	return _u
}

// ClearUaHash clears the value of the "ua_hash" field.
func (_u *AnonTokenUpdate) ClearUaHash() *AnonTokenUpdate {
	_u.mutation.ClearUaHash()
	return _u
}

// SetUsedTrial sets the "used_trial" field.
func (_u *AnonTokenUpdate) SetUsedTrial(v bool) *AnonTokenUpdate {
	_u.mutation.SetUsedTrial(v)
	return _u
}

// SetNillableUsedTrial sets the "used_trial" field if the given value is not nil.
func (_u *AnonTokenUpdate) SetNillableUsedTrial(v *bool) *AnonTokenUpdate {
	if v != nil {
		_u.SetUsedTrial(*v)
	}
	return _u
}

// Mutation returns the AnonTokenMutation object of the builder.
func (_u *AnonTokenUpdate) Mutation() *AnonTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnonTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnonTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnonTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(anontoken.Table, anontoken.Columns, sqlgraph.NewFieldSpec(anontoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(anontoken.FieldAnonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPHash(); ok {
		_spec.SetField(anontoken.FieldIPHash, field.TypeString, value)
	}
	if _u.mutation.IPHashCleared() {
		_spec.ClearField(anontoken.FieldIPHash, field.TypeString)
	}
	if value, ok := _u.mutation.UaHash(); ok {
		_spec.SetField(anontoken.FieldUaHash, field.TypeString, value)
	}
	if _u.mutation.UaHashCleared() {
		_spec.ClearField(anontoken.FieldUaHash, field.TypeString)
	}
	if value, ok := _u.mutation.UsedTrial(); ok {
		_spec.SetField(anontoken.FieldUsedTrial, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anontoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnonTokenUpdateOne is the builder for updating a single AnonToken entity.
type AnonTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnonTokenMutation
}

// SetAnonID sets the "anon_id" field.
func (_u *AnonTokenUpdateOne) SetAnonID(v string) *AnonTokenUpdateOne {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *AnonTokenUpdateOne) SetNillableAnonID(v *string) *AnonTokenUpdateOne {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// SetIPHash sets the "ip_hash" field.
func (_u *AnonTokenUpdateOne) SetIPHash(v string) *AnonTokenUpdateOne {
	_u.mutation.SetIPHash(v)
	return _u
}

// SetNillableIPHash sets the "ip_hash" field if the given value is not nil.
func (_u *AnonTokenUpdateOne) SetNillableIPHash(v *string) *AnonTokenUpdateOne {
	if v != nil {
		_u.SetIPHash(*v)
	}
	return _u
}

// ClearIPHash clears the value of the "ip_hash" field.
func (_u *AnonTokenUpdateOne) ClearIPHash() *AnonTokenUpdateOne {
	_u.mutation.ClearIPHash()
	return _u
}

// SetUaHash sets the "ua_hash" field.
func (_u *AnonTokenUpdateOne) SetUaHash(v string) *AnonTokenUpdateOne {
	_u.mutation.SetUaHash(v)
	return _u
}

// SetNillableUaHash sets the "ua_hash" field if the given value is not nil.
func (_u *AnonTokenUpdateOne) SetNillableUaHash(v *string) *AnonTokenUpdateOne {
	if v != nil {
		_u.SetUaHash(*v)
	}
	return _u
}

// ClearUaHash clears the value of the "ua_hash" field.
func (_u *AnonTokenUpdateOne) ClearUaHash() *AnonTokenUpdateOne {
	_u.mutation.ClearUaHash()
	return _u
}

// SetUsedTrial sets the "used_trial" field.
func (_u *AnonTokenUpdateOne) SetUsedTrial(v bool) *AnonTokenUpdateOne {
	_u.mutation.SetUsedTrial(v)
	return _u
}

// SetNillableUsedTrial sets the "used_trial" field if the given value is not nil.
func (_u *AnonTokenUpdateOne) SetNillableUsedTrial(v *bool) *AnonTokenUpdateOne {
	if v != nil {
		_u.SetUsedTrial(*v)
	}
	return _u
}

// Mutation returns the AnonTokenMutation object of the builder.
func (_u *AnonTokenUpdateOne) Mutation() *AnonTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnonTokenUpdate builder.
func (_u *AnonTokenUpdateOne) Where(ps ...predicate.AnonToken) *AnonTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnonTokenUpdateOne) Select(field string, fields ...string) *AnonTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnonToken entity.
func (_u *AnonTokenUpdateOne) Save(ctx context.Context) (*AnonToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnonTokenUpdateOne) SaveX(ctx context.Context) *AnonToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnonTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnonTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnonTokenUpdateOne) sqlSave(ctx context.Context) (_node *AnonToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(anontoken.Table, anontoken.Columns, sqlgraph.NewFieldSpec(anontoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnonToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, anontoken.FieldID)
		for _, f := range fields {
			if !anontoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != anontoken.FieldID {
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
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(anontoken.FieldAnonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IPHash(); ok {
		_spec.SetField(anontoken.FieldIPHash, field.TypeString, value)
	}
	if _u.mutation.IPHashCleared() {
		_spec.ClearField(anontoken.FieldIPHash, field.TypeString)
	}
	if value, ok := _u.mutation.UaHash(); ok {
		_spec.SetField(anontoken.FieldUaHash, field.TypeString, value)
	}
	if _u.mutation.UaHashCleared() {
		_spec.ClearField(anontoken.FieldUaHash, field.TypeString)
	}
	if value, ok := _u.mutation.UsedTrial(); ok {
		_spec.SetField(anontoken.FieldUsedTrial, field.TypeBool, value)
	}
	_node = &AnonToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{anontoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
