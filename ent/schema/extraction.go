package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Extraction holds the schema definition for the Extraction entity.
// One-to-one with RawMessage. Stores the validated model output verbatim
// (payload) alongside the canonicalized form (canonical_payload) for audit.
type Extraction struct {
	ent.Schema
}

// Fields of the Extraction.
func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.Int("raw_message_id").
			Unique().
			Immutable(),
		field.String("extractor_name"),
		field.Int("schema_version"),
		field.String("model_name").
			Optional(),
		field.Time("event_time").
			Optional().
			Nillable(),
		field.String("topic").
			Optional(),
		field.Float("impact_score").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.String("sentiment").
			Optional(),
		field.Bool("is_breaking").
			Default(false),
		field.String("breaking_window").
			Optional(),
		field.String("event_fingerprint").
			Optional(),
		field.String("prompt_version").
			Optional(),
		field.String("processing_run_id").
			Optional(),
		field.Text("llm_raw_response").
			Optional(),
		field.Time("validated_at").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Validated model output, pre-canonicalization"),
		field.JSON("canonical_payload", map[string]interface{}{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Latency, retries, provider response id, canonicalization rules"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Extraction.
func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_message", RawMessage.Type).
			Ref("extraction").
			Field("raw_message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Extraction.
func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_fingerprint"),
		// Soft-related scan: recent extractions sharing a topic.
		index.Fields("topic", "created_at"),
	}
}
