// Code generated by ent, DO NOT EDIT.

package balance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Balance {
	return predicate.Balance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Balance {
	return predicate.Balance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Balance {
	return predicate.Balance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Balance {
	return predicate.Balance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Balance {
	return predicate.Balance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Balance {
	return predicate.Balance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Balance {
	return predicate.Balance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Balance {
	return predicate.Balance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Balance {
	return predicate.Balance(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldUserID, v))
}

// MinutesBalance applies equality check predicate on the "minutes_balance" field. It's identical to MinutesBalanceEQ.
func MinutesBalance(v int) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldMinutesBalance, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Balance {
	return predicate.Balance(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Balance {
	return predicate.Balance(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Balance {
	return predicate.Balance(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Balance {
	return predicate.Balance(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Balance {
	return predicate.Balance(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Balance {
	return predicate.Balance(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Balance {
	return predicate.Balance(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Balance {
	return predicate.Balance(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Balance {
	return predicate.Balance(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Balance {
	return predicate.Balance(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Balance {
	return predicate.Balance(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Balance {
	return predicate.Balance(sql.FieldContainsFold(FieldUserID, v))
}

// MinutesBalanceEQ applies the EQ predicate on the "minutes_balance" field.
func MinutesBalanceEQ(v int) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldMinutesBalance, v))
}

// MinutesBalanceNEQ applies the NEQ predicate on the "minutes_balance" field.
func MinutesBalanceNEQ(v int) predicate.Balance {
	return predicate.Balance(sql.FieldNEQ(FieldMinutesBalance, v))
}

// MinutesBalanceIn applies the In predicate on the "minutes_balance" field.
func MinutesBalanceIn(vs ...int) predicate.Balance {
	return predicate.Balance(sql.FieldIn(FieldMinutesBalance, vs...))
}

// MinutesBalanceNotIn applies the NotIn predicate on the "minutes_balance" field.
func MinutesBalanceNotIn(vs ...int) predicate.Balance {
	return predicate.Balance(sql.FieldNotIn(FieldMinutesBalance, vs...))
}

// MinutesBalanceGT applies the GT predicate on the "minutes_balance" field.
func MinutesBalanceGT(v int) predicate.Balance {
	return predicate.Balance(sql.FieldGT(FieldMinutesBalance, v))
}

// MinutesBalanceGTE applies the GTE predicate on the "minutes_balance" field.
func MinutesBalanceGTE(v int) predicate.Balance {
	return predicate.Balance(sql.FieldGTE(FieldMinutesBalance, v))
}

// MinutesBalanceLT applies the LT predicate on the "minutes_balance" field.
func MinutesBalanceLT(v int) predicate.Balance {
	return predicate.Balance(sql.FieldLT(FieldMinutesBalance, v))
}

// MinutesBalanceLTE applies the LTE predicate on the "minutes_balance" field.
func MinutesBalanceLTE(v int) predicate.Balance {
	return predicate.Balance(sql.FieldLTE(FieldMinutesBalance, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Balance {
	return predicate.Balance(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Balance) predicate.Balance {
	return predicate.Balance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Balance) predicate.Balance {
	return predicate.Balance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Balance) predicate.Balance {
	return predicate.Balance(sql.NotPredicates(p))
}
