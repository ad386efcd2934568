// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openscribe/scribe/ent/predicate"
	"github.com/openscribe/scribe/ent/trialusage"
)

// TrialUsageUpdate is the builder for updating TrialUsage entities.
type TrialUsageUpdate struct {
	config
	hooks    []Hook
	mutation *TrialUsageMutation
}

// Where appends a list predicates to the TrialUsageUpdate builder.
func (_u *TrialUsageUpdate) Where(ps ...predicate.TrialUsage) *TrialUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TrialUsageUpdate) SetUserID(v string) *TrialUsageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TrialUsageUpdate) SetNillableUserID(v *string) *TrialUsageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TrialUsageUpdate) ClearUserID() *TrialUsageUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetAnonID sets the "anon_id" field.
func (_u *TrialUsageUpdate) SetAnonID(v string) *TrialUsageUpdate {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *TrialUsageUpdate) SetNillableAnonID(v *string) *TrialUsageUpdate {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// ClearAnonID clears the value of the "anon_id" field.
func (_u *TrialUsageUpdate) ClearAnonID() *TrialUsageUpdate {
	_u.mutation.ClearAnonID()
	return _u
}

// Mutation returns the TrialUsageMutation object of the builder.
func (_u *TrialUsageUpdate) Mutation() *TrialUsageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrialUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrialUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrialUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trialusage.Table, trialusage.Columns, sqlgraph.NewFieldSpec(trialusage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(trialusage.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(trialusage.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(trialusage.FieldAnonID, field.TypeString, value)
	}
	if _u.mutation.AnonIDCleared() {
		_spec.ClearField(trialusage.FieldAnonID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrialUsageUpdateOne is the builder for updating a single TrialUsage entity.
type TrialUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrialUsageMutation
}

// SetUserID sets the "user_id" field.
func (_u *TrialUsageUpdateOne) SetUserID(v string) *TrialUsageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TrialUsageUpdateOne) SetNillableUserID(v *string) *TrialUsageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TrialUsageUpdateOne) ClearUserID() *TrialUsageUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetAnonID sets the "anon_id" field.
func (_u *TrialUsageUpdateOne) SetAnonID(v string) *TrialUsageUpdateOne {
	_u.mutation.SetAnonID(v)
	return _u
}

// SetNillableAnonID sets the "anon_id" field if the given value is not nil.
func (_u *TrialUsageUpdateOne) SetNillableAnonID(v *string) *TrialUsageUpdateOne {
	if v != nil {
		_u.SetAnonID(*v)
	}
	return _u
}

// ClearAnonID clears the value of the "anon_id" field.
func (_u *TrialUsageUpdateOne) ClearAnonID() *TrialUsageUpdateOne {
	_u.mutation.ClearAnonID()
	return _u
}

// Mutation returns the TrialUsageMutation object of the builder.
func (_u *TrialUsageUpdateOne) Mutation() *TrialUsageMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrialUsageUpdate builder.
func (_u *TrialUsageUpdateOne) Where(ps ...predicate.TrialUsage) *TrialUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrialUsageUpdateOne) Select(field string, fields ...string) *TrialUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrialUsage entity.
func (_u *TrialUsageUpdateOne) Save(ctx context.Context) (*TrialUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialUsageUpdateOne) SaveX(ctx context.Context) *TrialUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrialUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrialUsageUpdateOne) sqlSave(ctx context.Context) (_node *TrialUsage, err error) {
	_spec := sqlgraph.NewUpdateSpec(trialusage.Table, trialusage.Columns, sqlgraph.NewFieldSpec(trialusage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrialUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trialusage.FieldID)
		for _, f := range fields {
			if !trialusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trialusage.FieldID {
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
		_spec.SetField(trialusage.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(trialusage.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AnonID(); ok {
		_spec.SetField(trialusage.FieldAnonID, field.TypeString, value)
	}
	if _u.mutation.AnonIDCleared() {
		_spec.ClearField(trialusage.FieldAnonID, field.TypeString)
	}
	_node = &TrialUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
