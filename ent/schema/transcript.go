package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Transcript holds the schema definition for the Transcript entity.
// Exactly one row per succeeded Task; written once via upsert so retried
// executor attempts stay idempotent.
type Transcript struct {
	ent.Schema
}

// Fields of the Transcript.
func (Transcript) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transcript_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique(),
		field.JSON("segments", []map[string]interface{}{}).
			Comment("Normalized subtitle segments {start, end, text, speaker}"),
		field.JSON("raw_payload", map[string]interface{}{}).
			Optional().
			Comment("Original provider response, kept for reprocessing"),
		field.String("srt_url").
			Optional(),
		field.String("vtt_url").
			Optional(),
		field.String("raw_url").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Transcript.
func (Transcript) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("transcript").
			Field("task_id").
			Unique().
			Required(),
	}
}
