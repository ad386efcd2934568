// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openscribe/scribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// AnonID applies equality check predicate on the "anon_id" field. It's identical to AnonIDEQ.
func AnonID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAnonID, v))
}

// OwnerKey applies equality check predicate on the "owner_key" field. It's identical to OwnerKeyEQ.
func OwnerKey(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOwnerKey, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// IsTrial applies equality check predicate on the "is_trial" field. It's identical to IsTrialEQ.
func IsTrial(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsTrial, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceURL, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEngine, v))
}

// DurationSec applies equality check predicate on the "duration_sec" field. It's identical to DurationSecEQ.
func DurationSec(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDurationSec, v))
}

// CostMinutes applies equality check predicate on the "cost_minutes" field. It's identical to CostMinutesEQ.
func CostMinutes(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCostMinutes, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldUserID, v))
}

// AnonIDEQ applies the EQ predicate on the "anon_id" field.
func AnonIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAnonID, v))
}

// AnonIDNEQ applies the NEQ predicate on the "anon_id" field.
func AnonIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAnonID, v))
}

// AnonIDIn applies the In predicate on the "anon_id" field.
func AnonIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAnonID, vs...))
}

// AnonIDNotIn applies the NotIn predicate on the "anon_id" field.
func AnonIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAnonID, vs...))
}

// AnonIDGT applies the GT predicate on the "anon_id" field.
func AnonIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAnonID, v))
}

// AnonIDGTE applies the GTE predicate on the "anon_id" field.
func AnonIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAnonID, v))
}

// AnonIDLT applies the LT predicate on the "anon_id" field.
func AnonIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAnonID, v))
}

// AnonIDLTE applies the LTE predicate on the "anon_id" field.
func AnonIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAnonID, v))
}

// AnonIDContains applies the Contains predicate on the "anon_id" field.
func AnonIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAnonID, v))
}

// AnonIDHasPrefix applies the HasPrefix predicate on the "anon_id" field.
func AnonIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAnonID, v))
}

// AnonIDHasSuffix applies the HasSuffix predicate on the "anon_id" field.
func AnonIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAnonID, v))
}

// AnonIDIsNil applies the IsNil predicate on the "anon_id" field.
func AnonIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAnonID))
}

// AnonIDNotNil applies the NotNil predicate on the "anon_id" field.
func AnonIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAnonID))
}

// AnonIDEqualFold applies the EqualFold predicate on the "anon_id" field.
func AnonIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAnonID, v))
}

// AnonIDContainsFold applies the ContainsFold predicate on the "anon_id" field.
func AnonIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAnonID, v))
}

// OwnerKeyEQ applies the EQ predicate on the "owner_key" field.
func OwnerKeyEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOwnerKey, v))
}

// OwnerKeyNEQ applies the NEQ predicate on the "owner_key" field.
func OwnerKeyNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOwnerKey, v))
}

// OwnerKeyIn applies the In predicate on the "owner_key" field.
func OwnerKeyIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOwnerKey, vs...))
}

// OwnerKeyNotIn applies the NotIn predicate on the "owner_key" field.
func OwnerKeyNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOwnerKey, vs...))
}

// OwnerKeyGT applies the GT predicate on the "owner_key" field.
func OwnerKeyGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldOwnerKey, v))
}

// OwnerKeyGTE applies the GTE predicate on the "owner_key" field.
func OwnerKeyGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldOwnerKey, v))
}

// OwnerKeyLT applies the LT predicate on the "owner_key" field.
func OwnerKeyLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldOwnerKey, v))
}

// OwnerKeyLTE applies the LTE predicate on the "owner_key" field.
func OwnerKeyLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldOwnerKey, v))
}

// OwnerKeyContains applies the Contains predicate on the "owner_key" field.
func OwnerKeyContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldOwnerKey, v))
}

// OwnerKeyHasPrefix applies the HasPrefix predicate on the "owner_key" field.
func OwnerKeyHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldOwnerKey, v))
}

// OwnerKeyHasSuffix applies the HasSuffix predicate on the "owner_key" field.
func OwnerKeyHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldOwnerKey, v))
}

// OwnerKeyEqualFold applies the EqualFold predicate on the "owner_key" field.
func OwnerKeyEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldOwnerKey, v))
}

// OwnerKeyContainsFold applies the ContainsFold predicate on the "owner_key" field.
func OwnerKeyContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldOwnerKey, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSourceType, vs...))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskType, v))
}

// IsTrialEQ applies the EQ predicate on the "is_trial" field.
func IsTrialEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldIsTrial, v))
}

// IsTrialNEQ applies the NEQ predicate on the "is_trial" field.
func IsTrialNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldIsTrial, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldSourceURL, v))
}

// ParamsIsNil applies the IsNil predicate on the "params" field.
func ParamsIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldParams))
}

// ParamsNotNil applies the NotNil predicate on the "params" field.
func ParamsNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldParams))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineIsNil applies the IsNil predicate on the "engine" field.
func EngineIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEngine))
}

// EngineNotNil applies the NotNil predicate on the "engine" field.
func EngineNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEngine))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldEngine, v))
}

// DurationSecEQ applies the EQ predicate on the "duration_sec" field.
func DurationSecEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDurationSec, v))
}

// DurationSecNEQ applies the NEQ predicate on the "duration_sec" field.
func DurationSecNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDurationSec, v))
}

// DurationSecIn applies the In predicate on the "duration_sec" field.
func DurationSecIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDurationSec, vs...))
}

// DurationSecNotIn applies the NotIn predicate on the "duration_sec" field.
func DurationSecNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDurationSec, vs...))
}

// DurationSecGT applies the GT predicate on the "duration_sec" field.
func DurationSecGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDurationSec, v))
}

// DurationSecGTE applies the GTE predicate on the "duration_sec" field.
func DurationSecGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDurationSec, v))
}

// DurationSecLT applies the LT predicate on the "duration_sec" field.
func DurationSecLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDurationSec, v))
}

// DurationSecLTE applies the LTE predicate on the "duration_sec" field.
func DurationSecLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDurationSec, v))
}

// CostMinutesEQ applies the EQ predicate on the "cost_minutes" field.
func CostMinutesEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCostMinutes, v))
}

// CostMinutesNEQ applies the NEQ predicate on the "cost_minutes" field.
func CostMinutesNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCostMinutes, v))
}

// CostMinutesIn applies the In predicate on the "cost_minutes" field.
func CostMinutesIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCostMinutes, vs...))
}

// CostMinutesNotIn applies the NotIn predicate on the "cost_minutes" field.
func CostMinutesNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCostMinutes, vs...))
}

// CostMinutesGT applies the GT predicate on the "cost_minutes" field.
func CostMinutesGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCostMinutes, v))
}

// CostMinutesGTE applies the GTE predicate on the "cost_minutes" field.
func CostMinutesGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCostMinutes, v))
}

// CostMinutesLT applies the LT predicate on the "cost_minutes" field.
func CostMinutesLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCostMinutes, v))
}

// CostMinutesLTE applies the LTE predicate on the "cost_minutes" field.
func CostMinutesLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCostMinutes, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAttempts, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
