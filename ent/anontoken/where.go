// Code generated by ent, DO NOT EDIT.

package anontoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/openscribe/scribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContainsFold(FieldID, id))
}

// AnonID applies equality check predicate on the "anon_id" field. It's identical to AnonIDEQ.
func AnonID(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldAnonID, v))
}

// IPHash applies equality check predicate on the "ip_hash" field. It's identical to IPHashEQ.
func IPHash(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldIPHash, v))
}

// UaHash applies equality check predicate on the "ua_hash" field. It's identical to UaHashEQ.
func UaHash(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldUaHash, v))
}

// UsedTrial applies equality check predicate on the "used_trial" field. It's identical to UsedTrialEQ.
func UsedTrial(v bool) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldUsedTrial, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldCreatedAt, v))
}

// AnonIDEQ applies the EQ predicate on the "anon_id" field.
func AnonIDEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldAnonID, v))
}

// AnonIDNEQ applies the NEQ predicate on the "anon_id" field.
func AnonIDNEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldAnonID, v))
}

// AnonIDIn applies the In predicate on the "anon_id" field.
func AnonIDIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIn(FieldAnonID, vs...))
}

// AnonIDNotIn applies the NotIn predicate on the "anon_id" field.
func AnonIDNotIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotIn(FieldAnonID, vs...))
}

// AnonIDGT applies the GT predicate on the "anon_id" field.
func AnonIDGT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGT(FieldAnonID, v))
}

// AnonIDGTE applies the GTE predicate on the "anon_id" field.
func AnonIDGTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGTE(FieldAnonID, v))
}

// AnonIDLT applies the LT predicate on the "anon_id" field.
func AnonIDLT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLT(FieldAnonID, v))
}

// AnonIDLTE applies the LTE predicate on the "anon_id" field.
func AnonIDLTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLTE(FieldAnonID, v))
}

// AnonIDContains applies the Contains predicate on the "anon_id" field.
func AnonIDContains(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContains(FieldAnonID, v))
}

// AnonIDHasPrefix applies the HasPrefix predicate on the "anon_id" field.
func AnonIDHasPrefix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasPrefix(FieldAnonID, v))
}

// AnonIDHasSuffix applies the HasSuffix predicate on the "anon_id" field.
func AnonIDHasSuffix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasSuffix(FieldAnonID, v))
}

// AnonIDEqualFold applies the EqualFold predicate on the "anon_id" field.
func AnonIDEqualFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEqualFold(FieldAnonID, v))
}

// AnonIDContainsFold applies the ContainsFold predicate on the "anon_id" field.
func AnonIDContainsFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContainsFold(FieldAnonID, v))
}

// IPHashEQ applies the EQ predicate on the "ip_hash" field.
func IPHashEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldIPHash, v))
}

// IPHashNEQ applies the NEQ predicate on the "ip_hash" field.
func IPHashNEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldIPHash, v))
}

// IPHashIn applies the In predicate on the "ip_hash" field.
func IPHashIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIn(FieldIPHash, vs...))
}

// IPHashNotIn applies the NotIn predicate on the "ip_hash" field.
func IPHashNotIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotIn(FieldIPHash, vs...))
}

// IPHashGT applies the GT predicate on the "ip_hash" field.
func IPHashGT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGT(FieldIPHash, v))
}

// IPHashGTE applies the GTE predicate on the "ip_hash" field.
func IPHashGTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGTE(FieldIPHash, v))
}

// IPHashLT applies the LT predicate on the "ip_hash" field.
func IPHashLT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLT(FieldIPHash, v))
}

// IPHashLTE applies the LTE predicate on the "ip_hash" field.
func IPHashLTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLTE(FieldIPHash, v))
}

// IPHashContains applies the Contains predicate on the "ip_hash" field.
func IPHashContains(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContains(FieldIPHash, v))
}

// IPHashHasPrefix applies the HasPrefix predicate on the "ip_hash" field.
func IPHashHasPrefix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasPrefix(FieldIPHash, v))
}

// IPHashHasSuffix applies the HasSuffix predicate on the "ip_hash" field.
func IPHashHasSuffix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasSuffix(FieldIPHash, v))
}

// IPHashIsNil applies the IsNil predicate on the "ip_hash" field.
func IPHashIsNil() predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIsNull(FieldIPHash))
}

// IPHashNotNil applies the NotNil predicate on the "ip_hash" field.
func IPHashNotNil() predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotNull(FieldIPHash))
}

// IPHashEqualFold applies the EqualFold predicate on the "ip_hash" field.
func IPHashEqualFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEqualFold(FieldIPHash, v))
}

// IPHashContainsFold applies the ContainsFold predicate on the "ip_hash" field.
func IPHashContainsFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContainsFold(FieldIPHash, v))
}

// UaHashEQ applies the EQ predicate on the "ua_hash" field.
func UaHashEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldUaHash, v))
}

// UaHashNEQ applies the NEQ predicate on the "ua_hash" field.
func UaHashNEQ(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldUaHash, v))
}

// UaHashIn applies the In predicate on the "ua_hash" field.
func UaHashIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIn(FieldUaHash, vs...))
}

// UaHashNotIn applies the NotIn predicate on the "ua_hash" field.
func UaHashNotIn(vs ...string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotIn(FieldUaHash, vs...))
}

// UaHashGT applies the GT predicate on the "ua_hash" field.
func UaHashGT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGT(FieldUaHash, v))
}

// UaHashGTE applies the GTE predicate on the "ua_hash" field.
func UaHashGTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGTE(FieldUaHash, v))
}

// UaHashLT applies the LT predicate on the "ua_hash" field.
func UaHashLT(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLT(FieldUaHash, v))
}

// UaHashLTE applies the LTE predicate on the "ua_hash" field.
func UaHashLTE(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLTE(FieldUaHash, v))
}

// UaHashContains applies the Contains predicate on the "ua_hash" field.
func UaHashContains(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContains(FieldUaHash, v))
}

// UaHashHasPrefix applies the HasPrefix predicate on the "ua_hash" field.
func UaHashHasPrefix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasPrefix(FieldUaHash, v))
}

// UaHashHasSuffix applies the HasSuffix predicate on the "ua_hash" field.
func UaHashHasSuffix(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldHasSuffix(FieldUaHash, v))
}

// UaHashIsNil applies the IsNil predicate on the "ua_hash" field.
func UaHashIsNil() predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIsNull(FieldUaHash))
}

// UaHashNotNil applies the NotNil predicate on the "ua_hash" field.
func UaHashNotNil() predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotNull(FieldUaHash))
}

// UaHashEqualFold applies the EqualFold predicate on the "ua_hash" field.
func UaHashEqualFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEqualFold(FieldUaHash, v))
}

// UaHashContainsFold applies the ContainsFold predicate on the "ua_hash" field.
func UaHashContainsFold(v string) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldContainsFold(FieldUaHash, v))
}

// UsedTrialEQ applies the EQ predicate on the "used_trial" field.
func UsedTrialEQ(v bool) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldUsedTrial, v))
}

// UsedTrialNEQ applies the NEQ predicate on the "used_trial" field.
func UsedTrialNEQ(v bool) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldUsedTrial, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnonToken {
	return predicate.AnonToken(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnonToken) predicate.AnonToken {
	return predicate.AnonToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnonToken) predicate.AnonToken {
	return predicate.AnonToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnonToken) predicate.AnonToken {
	return predicate.AnonToken(sql.NotPredicates(p))
}
