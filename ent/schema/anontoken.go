package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AnonToken holds the schema definition for the AnonToken entity: identity
// for unauthenticated trial callers. used_trial only ever flips to true.
type AnonToken struct {
	ent.Schema
}

// Fields of the AnonToken.
func (AnonToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("anon_id").
			Unique(),
		field.String("ip_hash").
			Optional(),
		field.String("ua_hash").
			Optional(),
		field.Bool("used_trial").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
