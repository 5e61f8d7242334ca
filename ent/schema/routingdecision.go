package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// RoutingDecision holds the schema definition for the RoutingDecision entity.
// One per RawMessage: destination, priority, evidence and triage outcome.
type RoutingDecision struct {
	ent.Schema
}

// Fields of the RoutingDecision.
func (RoutingDecision) Fields() []ent.Field {
	return []ent.Field{
		field.Int("raw_message_id").
			Unique().
			Immutable(),
		field.JSON("store_to", []string{}),
		field.String("publish_priority").
			MaxLen(16),
		field.Bool("requires_evidence").
			Default(false),
		field.String("event_action").
			MaxLen(16),
		field.String("triage_action").
			Optional().
			Nillable(),
		field.JSON("triage_rules", []string{}).
			Optional(),
		field.JSON("flags", []string{}).
			Optional(),
		field.JSON("rules_fired", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RoutingDecision.
func (RoutingDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_message", RawMessage.Type).
			Ref("routing_decision").
			Field("raw_message_id").
			Unique().
			Required().
			Immutable(),
	}
}
