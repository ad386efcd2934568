package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// WebhookEvent holds the schema definition for the WebhookEvent entity.
// One row per processed external event; the unique event_id makes webhook
// handling idempotent under provider redelivery.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("row_id").
			Unique().
			Immutable(),
		field.String("event_id").
			Unique().
			Immutable(),
		field.String("source").
			Comment("Originating webhook: stt | subscription"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}
