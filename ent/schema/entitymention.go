package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMention holds the schema definition for the EntityMention entity.
// One row per (raw_message, entity_type, entity_value); re-indexing may
// upgrade event_id but never duplicates the row.
type EntityMention struct {
	ent.Schema
}

// Fields of the EntityMention.
func (EntityMention) Fields() []ent.Field {
	return []ent.Field{
		field.Int("raw_message_id").
			Immutable(),
		field.Int("event_id").
			Optional().
			Nillable(),
		field.String("entity_type").
			MaxLen(32).
			Immutable(),
		field.String("entity_value").
			Immutable(),
		field.String("topic").
			Optional(),
		field.Bool("is_breaking").
			Default(false),
		field.Time("event_time").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EntityMention.
func (EntityMention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_message", RawMessage.Type).
			Ref("entity_mentions").
			Field("raw_message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntityMention.
func (EntityMention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("raw_message_id", "entity_type", "entity_value").
			Unique(),
		index.Fields("entity_type", "entity_value", "event_time"),
	}
}
