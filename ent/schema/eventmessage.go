package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventMessage links an Event to the RawMessages that reported it.
// Unique on the pair; a RawMessage links to at most one Event.
type EventMessage struct {
	ent.Schema
}

// Fields of the EventMessage.
func (EventMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id").
			Immutable(),
		field.Int("raw_message_id").
			Immutable(),
		field.Time("linked_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventMessage.
func (EventMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("message_links").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
		edge.From("raw_message", RawMessage.Type).
			Ref("event_links").
			Field("raw_message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EventMessage.
func (EventMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "raw_message_id").
			Unique(),
		index.Fields("raw_message_id"),
	}
}
