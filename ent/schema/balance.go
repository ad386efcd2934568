package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Balance holds the schema definition for the Balance entity: one row per
// user, created zero-based on registration. All deductions go through the
// conditional update in BillingService so the balance never goes negative.
type Balance struct {
	ent.Schema
}

// Fields of the Balance.
func (Balance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("balance_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique(),
		field.Int("minutes_balance").
			Default(0).
			NonNegative(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
