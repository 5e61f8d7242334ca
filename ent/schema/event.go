package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: a canonical news
// event that repeated reports collapse into. Lookup key is
// (event_fingerprint, event_time within a topic-aware window).
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_fingerprint").
			MaxLen(512),
		field.String("topic").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Float("impact_score").
			Optional().
			Nillable(),
		field.Bool("is_breaking").
			Default(false),
		field.String("breaking_window").
			Optional().
			Nillable(),
		field.Time("event_time").
			Optional().
			Nillable(),
		field.Time("last_updated_at").
			Default(time.Now),
		field.Int("latest_extraction_id").
			Optional().
			Nillable().
			Comment("Soft reference to the extraction row; set null on deletion"),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("message_links", EventMessage.Type),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_fingerprint"),
		index.Fields("topic", "event_time"),
		index.Fields("topic", "event_time", "impact_score"),
		index.Fields("last_updated_at"),
	}
}
