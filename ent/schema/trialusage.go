package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrialUsage holds the schema definition for the TrialUsage entity, an
// append-only audit of consumed trials. At least one of user_id / anon_id
// is set; rows are reattributed to the user on signup and never deleted.
type TrialUsage struct {
	ent.Schema
}

// Fields of the TrialUsage.
func (TrialUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.String("anon_id").
			Optional().
			Nillable(),
		field.Time("used_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TrialUsage.
func (TrialUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("anon_id"),
	}
}
