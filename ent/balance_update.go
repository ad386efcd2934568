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
	"github.com/openscribe/scribe/ent/balance"
	"github.com/openscribe/scribe/ent/predicate"
)

// BalanceUpdate is the builder for updating Balance entities.
type BalanceUpdate struct {
	config
	hooks    []Hook
	mutation *BalanceMutation
}

// Where appends a list predicates to the BalanceUpdate builder.
func (_u *BalanceUpdate) Where(ps ...predicate.Balance) *BalanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BalanceUpdate) SetUserID(v string) *BalanceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BalanceUpdate) SetNillableUserID(v *string) *BalanceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMinutesBalance sets the "minutes_balance" field.
func (_u *BalanceUpdate) SetMinutesBalance(v int) *BalanceUpdate {
	_u.mutation.ResetMinutesBalance()
	_u.mutation.SetMinutesBalance(v)
	return _u
}

// SetNillableMinutesBalance sets the "minutes_balance" field if the given value is not nil.
func (_u *BalanceUpdate) SetNillableMinutesBalance(v *int) *BalanceUpdate {
	if v != nil {
		_u.SetMinutesBalance(*v)
	}
	return _u
}

// AddMinutesBalance adds value to the "minutes_balance" field.
func (_u *BalanceUpdate) AddMinutesBalance(v int) *BalanceUpdate {
	_u.mutation.AddMinutesBalance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BalanceUpdate) SetUpdatedAt(v time.Time) *BalanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BalanceMutation object of the builder.
func (_u *BalanceUpdate) Mutation() *BalanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BalanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BalanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BalanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := balance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalanceUpdate) check() error {
	if v, ok := _u.mutation.MinutesBalance(); ok {
		if err := balance.MinutesBalanceValidator(v); err != nil {
			return &ValidationError{Name: "minutes_balance", err: fmt.Errorf(`ent: validator failed for field "Balance.minutes_balance": %w`, err)}
		}
	}
	return nil
}

func (_u *BalanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balance.Table, balance.Columns, sqlgraph.NewFieldSpec(balance.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(balance.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinutesBalance(); ok {
		_spec.SetField(balance.FieldMinutesBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutesBalance(); ok {
		_spec.AddField(balance.FieldMinutesBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(balance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{balance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BalanceUpdateOne is the builder for updating a single Balance entity.
type BalanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BalanceMutation
}

// SetUserID sets the "user_id" field.
func (_u *BalanceUpdateOne) SetUserID(v string) *BalanceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BalanceUpdateOne) SetNillableUserID(v *string) *BalanceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMinutesBalance sets the "minutes_balance" field.
func (_u *BalanceUpdateOne) SetMinutesBalance(v int) *BalanceUpdateOne {
	_u.mutation.ResetMinutesBalance()
	_u.mutation.SetMinutesBalance(v)
	return _u
}

// SetNillableMinutesBalance sets the "minutes_balance" field if the given value is not nil.
func (_u *BalanceUpdateOne) SetNillableMinutesBalance(v *int) *BalanceUpdateOne {
	if v != nil {
		_u.SetMinutesBalance(*v)
	}
	return _u
}

// AddMinutesBalance adds value to the "minutes_balance" field.
func (_u *BalanceUpdateOne) AddMinutesBalance(v int) *BalanceUpdateOne {
	_u.mutation.AddMinutesBalance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BalanceUpdateOne) SetUpdatedAt(v time.Time) *BalanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BalanceMutation object of the builder.
func (_u *BalanceUpdateOne) Mutation() *BalanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the BalanceUpdate builder.
func (_u *BalanceUpdateOne) Where(ps ...predicate.Balance) *BalanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BalanceUpdateOne) Select(field string, fields ...string) *BalanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Balance entity.
func (_u *BalanceUpdateOne) Save(ctx context.Context) (*Balance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BalanceUpdateOne) SaveX(ctx context.Context) *Balance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BalanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BalanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BalanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := balance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BalanceUpdateOne) check() error {
	if v, ok := _u.mutation.MinutesBalance(); ok {
		if err := balance.MinutesBalanceValidator(v); err != nil {
			return &ValidationError{Name: "minutes_balance", err: fmt.Errorf(`ent: validator failed for field "Balance.minutes_balance": %w`, err)}
		}
	}
	return nil
}

func (_u *BalanceUpdateOne) sqlSave(ctx context.Context) (_node *Balance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(balance.Table, balance.Columns, sqlgraph.NewFieldSpec(balance.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Balance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, balance.FieldID)
		for _, f := range fields {
			if !balance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != balance.FieldID {
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
		_spec.SetField(balance.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinutesBalance(); ok {
		_spec.SetField(balance.FieldMinutesBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinutesBalance(); ok {
		_spec.AddField(balance.FieldMinutesBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(balance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Balance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{balance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
