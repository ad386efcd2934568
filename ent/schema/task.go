package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one transcription
// request tracked through the pending -> processing -> succeeded/failed
// lifecycle.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Authenticated owner; mutually exclusive with anon_id"),
		field.String("anon_id").
			Optional().
			Nillable().
			Comment("Trial owner issued to unauthenticated callers"),
		field.String("owner_key").
			Comment("Denormalized owner (user_id or anon_id) backing the active-task unique index"),
		field.Enum("source_type").
			Values("upload", "url", "youtube"),
		field.String("task_type").
			Default("transcription"),
		field.Bool("is_trial").
			Default(false),
		field.Enum("priority").
			Values("paid", "free").
			Default("free"),
		field.Text("source_url"),
		field.JSON("params", map[string]interface{}{}).
			Optional().
			Comment("Recognized keys: language, detect_language"),
		field.Enum("status").
			Values("pending", "processing", "succeeded", "failed").
			Default("pending"),
		field.String("engine").
			Optional().
			Nillable().
			Comment("Provider family that produced the transcript"),
		field.Float("duration_sec").
			Default(0),
		field.Int("cost_minutes").
			Default(0).
			Comment("Write-once at settlement; >0 implies billing was attempted"),
		field.Int("attempts").
			Default(0).
			Comment("Dispatcher delivery attempts"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Advances on every mutation; drives the stuck-task sweep"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("transcript", Transcript.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
// The partial unique index serializing per-owner admission (owner_key WHERE
// status IN ('pending','processing')) cannot be expressed here; it is created
// by pkg/database.CreatePartialUniqueIndexes.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_key"),
		index.Fields("status", "created_at"),
		index.Fields("status", "updated_at"),
		index.Fields("status", "priority", "created_at"),
	}
}
