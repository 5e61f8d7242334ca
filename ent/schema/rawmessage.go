package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RawMessage holds the schema definition for the RawMessage entity.
// One row per upstream feed message, written once by the ingest gateway.
type RawMessage struct {
	ent.Schema
}

// Fields of the RawMessage.
func (RawMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_channel_id").
			Immutable(),
		field.String("source_channel_name").
			Optional().
			Nillable().
			Immutable(),
		field.String("upstream_message_id").
			Immutable().
			Comment("Message id assigned by the upstream channel"),
		field.Time("message_timestamp_utc").
			Immutable(),
		field.Text("raw_text").
			Immutable(),
		field.Text("normalized_text").
			Immutable(),
		field.JSON("raw_entities", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("forwarded_from").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RawMessage.
func (RawMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("processing_state", ProcessingState.Type).
			Unique(),
		edge.To("extraction", Extraction.Type).
			Unique(),
		edge.To("routing_decision", RoutingDecision.Type).
			Unique(),
		edge.To("event_links", EventMessage.Type),
		edge.To("entity_mentions", EntityMention.Type),
	}
}

// Indexes of the RawMessage.
func (RawMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Source dedup key: the same upstream message is stored once.
		index.Fields("source_channel_id", "upstream_message_id").
			Unique(),
		index.Fields("message_timestamp_utc"),
	}
}
