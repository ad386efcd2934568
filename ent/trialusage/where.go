// Code generated by ent, DO NOT EDIT.

package trialusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldUserID, v))
}

// AnonID applies equality check predicate on the "anon_id" field. It's identical to AnonIDEQ.
func AnonID(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldAnonID, v))
}

// UsedAt applies equality check predicate on the "used_at" field. It's identical to UsedAtEQ.
func UsedAt(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldUsedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldContainsFold(FieldUserID, v))
}

// AnonIDEQ applies the EQ predicate on the "anon_id" field.
func AnonIDEQ(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldAnonID, v))
}

// AnonIDNEQ applies the NEQ predicate on the "anon_id" field.
func AnonIDNEQ(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNEQ(FieldAnonID, v))
}

// AnonIDIn applies the In predicate on the "anon_id" field.
func AnonIDIn(vs ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIn(FieldAnonID, vs...))
}

// AnonIDNotIn applies the NotIn predicate on the "anon_id" field.
func AnonIDNotIn(vs ...string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotIn(FieldAnonID, vs...))
}

// AnonIDGT applies the GT predicate on the "anon_id" field.
func AnonIDGT(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGT(FieldAnonID, v))
}

// AnonIDGTE applies the GTE predicate on the "anon_id" field.
func AnonIDGTE(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGTE(FieldAnonID, v))
}

// AnonIDLT applies the LT predicate on the "anon_id" field.
func AnonIDLT(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLT(FieldAnonID, v))
}

// AnonIDLTE applies the LTE predicate on the "anon_id" field.
func AnonIDLTE(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLTE(FieldAnonID, v))
}

// AnonIDContains applies the Contains predicate on the "anon_id" field.
func AnonIDContains(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldContains(FieldAnonID, v))
}

// AnonIDHasPrefix applies the HasPrefix predicate on the "anon_id" field.
func AnonIDHasPrefix(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldHasPrefix(FieldAnonID, v))
}

// AnonIDHasSuffix applies the HasSuffix predicate on the "anon_id" field.
func AnonIDHasSuffix(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldHasSuffix(FieldAnonID, v))
}

// AnonIDIsNil applies the IsNil predicate on the "anon_id" field.
func AnonIDIsNil() predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIsNull(FieldAnonID))
}

// AnonIDNotNil applies the NotNil predicate on the "anon_id" field.
func AnonIDNotNil() predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotNull(FieldAnonID))
}

// AnonIDEqualFold applies the EqualFold predicate on the "anon_id" field.
func AnonIDEqualFold(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEqualFold(FieldAnonID, v))
}

// AnonIDContainsFold applies the ContainsFold predicate on the "anon_id" field.
func AnonIDContainsFold(v string) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldContainsFold(FieldAnonID, v))
}

// UsedAtEQ applies the EQ predicate on the "used_at" field.
func UsedAtEQ(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldEQ(FieldUsedAt, v))
}

// UsedAtNEQ applies the NEQ predicate on the "used_at" field.
func UsedAtNEQ(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNEQ(FieldUsedAt, v))
}

// UsedAtIn applies the In predicate on the "used_at" field.
func UsedAtIn(vs ...time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldIn(FieldUsedAt, vs...))
}

// UsedAtNotIn applies the NotIn predicate on the "used_at" field.
func UsedAtNotIn(vs ...time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldNotIn(FieldUsedAt, vs...))
}

// UsedAtGT applies the GT predicate on the "used_at" field.
func UsedAtGT(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGT(FieldUsedAt, v))
}

// UsedAtGTE applies the GTE predicate on the "used_at" field.
func UsedAtGTE(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldGTE(FieldUsedAt, v))
}

// UsedAtLT applies the LT predicate on the "used_at" field.
func UsedAtLT(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLT(FieldUsedAt, v))
}

// UsedAtLTE applies the LTE predicate on the "used_at" field.
func UsedAtLTE(v time.Time) predicate.TrialUsage {
	return predicate.TrialUsage(sql.FieldLTE(FieldUsedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrialUsage) predicate.TrialUsage {
	return predicate.TrialUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrialUsage) predicate.TrialUsage {
	return predicate.TrialUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrialUsage) predicate.TrialUsage {
	return predicate.TrialUsage(sql.NotPredicates(p))
}
