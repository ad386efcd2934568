// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openscribe/scribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTaskID, v))
}

// SrtURL applies equality check predicate on the "srt_url" field. It's identical to SrtURLEQ.
func SrtURL(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldSrtURL, v))
}

// VttURL applies equality check predicate on the "vtt_url" field. It's identical to VttURLEQ.
func VttURL(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldVttURL, v))
}

// RawURL applies equality check predicate on the "raw_url" field. It's identical to RawURLEQ.
func RawURL(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRawURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTaskID, v))
}

// RawPayloadIsNil applies the IsNil predicate on the "raw_payload" field.
func RawPayloadIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldRawPayload))
}

// RawPayloadNotNil applies the NotNil predicate on the "raw_payload" field.
func RawPayloadNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldRawPayload))
}

// SrtURLEQ applies the EQ predicate on the "srt_url" field.
func SrtURLEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldSrtURL, v))
}

// SrtURLNEQ applies the NEQ predicate on the "srt_url" field.
func SrtURLNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldSrtURL, v))
}

// SrtURLIn applies the In predicate on the "srt_url" field.
func SrtURLIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldSrtURL, vs...))
}

// SrtURLNotIn applies the NotIn predicate on the "srt_url" field.
func SrtURLNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldSrtURL, vs...))
}

// SrtURLGT applies the GT predicate on the "srt_url" field.
func SrtURLGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldSrtURL, v))
}

// SrtURLGTE applies the GTE predicate on the "srt_url" field.
func SrtURLGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldSrtURL, v))
}

// SrtURLLT applies the LT predicate on the "srt_url" field.
func SrtURLLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldSrtURL, v))
}

// SrtURLLTE applies the LTE predicate on the "srt_url" field.
func SrtURLLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldSrtURL, v))
}

// SrtURLContains applies the Contains predicate on the "srt_url" field.
func SrtURLContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldSrtURL, v))
}

// SrtURLHasPrefix applies the HasPrefix predicate on the "srt_url" field.
func SrtURLHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldSrtURL, v))
}

// SrtURLHasSuffix applies the HasSuffix predicate on the "srt_url" field.
func SrtURLHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldSrtURL, v))
}

// SrtURLIsNil applies the IsNil predicate on the "srt_url" field.
func SrtURLIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldSrtURL))
}

// SrtURLNotNil applies the NotNil predicate on the "srt_url" field.
func SrtURLNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldSrtURL))
}

// SrtURLEqualFold applies the EqualFold predicate on the "srt_url" field.
func SrtURLEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldSrtURL, v))
}

// SrtURLContainsFold applies the ContainsFold predicate on the "srt_url" field.
func SrtURLContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldSrtURL, v))
}

// VttURLEQ applies the EQ predicate on the "vtt_url" field.
func VttURLEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldVttURL, v))
}

// VttURLNEQ applies the NEQ predicate on the "vtt_url" field.
func VttURLNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldVttURL, v))
}

// VttURLIn applies the In predicate on the "vtt_url" field.
func VttURLIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldVttURL, vs...))
}

// VttURLNotIn applies the NotIn predicate on the "vtt_url" field.
func VttURLNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldVttURL, vs...))
}

// VttURLGT applies the GT predicate on the "vtt_url" field.
func VttURLGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldVttURL, v))
}

// VttURLGTE applies the GTE predicate on the "vtt_url" field.
func VttURLGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldVttURL, v))
}

// VttURLLT applies the LT predicate on the "vtt_url" field.
func VttURLLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldVttURL, v))
}

// VttURLLTE applies the LTE predicate on the "vtt_url" field.
func VttURLLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldVttURL, v))
}

// VttURLContains applies the Contains predicate on the "vtt_url" field.
func VttURLContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldVttURL, v))
}

// VttURLHasPrefix applies the HasPrefix predicate on the "vtt_url" field.
func VttURLHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldVttURL, v))
}

// VttURLHasSuffix applies the HasSuffix predicate on the "vtt_url" field.
func VttURLHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldVttURL, v))
}

// VttURLIsNil applies the IsNil predicate on the "vtt_url" field.
func VttURLIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldVttURL))
}

// VttURLNotNil applies the NotNil predicate on the "vtt_url" field.
func VttURLNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldVttURL))
}

// VttURLEqualFold applies the EqualFold predicate on the "vtt_url" field.
func VttURLEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldVttURL, v))
}

// VttURLContainsFold applies the ContainsFold predicate on the "vtt_url" field.
func VttURLContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldVttURL, v))
}

// RawURLEQ applies the EQ predicate on the "raw_url" field.
func RawURLEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRawURL, v))
}

// RawURLNEQ applies the NEQ predicate on the "raw_url" field.
func RawURLNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldRawURL, v))
}

// RawURLIn applies the In predicate on the "raw_url" field.
func RawURLIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldRawURL, vs...))
}

// RawURLNotIn applies the NotIn predicate on the "raw_url" field.
func RawURLNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldRawURL, vs...))
}

// RawURLGT applies the GT predicate on the "raw_url" field.
func RawURLGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldRawURL, v))
}

// RawURLGTE applies the GTE predicate on the "raw_url" field.
func RawURLGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldRawURL, v))
}

// RawURLLT applies the LT predicate on the "raw_url" field.
func RawURLLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldRawURL, v))
}

// RawURLLTE applies the LTE predicate on the "raw_url" field.
func RawURLLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldRawURL, v))
}

// RawURLContains applies the Contains predicate on the "raw_url" field.
func RawURLContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldRawURL, v))
}

// RawURLHasPrefix applies the HasPrefix predicate on the "raw_url" field.
func RawURLHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldRawURL, v))
}

// RawURLHasSuffix applies the HasSuffix predicate on the "raw_url" field.
func RawURLHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldRawURL, v))
}

// RawURLIsNil applies the IsNil predicate on the "raw_url" field.
func RawURLIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldRawURL))
}

// RawURLNotNil applies the NotNil predicate on the "raw_url" field.
func RawURLNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldRawURL))
}

// RawURLEqualFold applies the EqualFold predicate on the "raw_url" field.
func RawURLEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldRawURL, v))
}

// RawURLContainsFold applies the ContainsFold predicate on the "raw_url" field.
func RawURLContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldRawURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.NotPredicates(p))
}
