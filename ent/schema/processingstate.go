package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessingState holds the schema definition for the ProcessingState entity.
// One-to-one with RawMessage; tracks the phase-2 extraction lifecycle of a
// message including the worker lease used for crash recovery.
type ProcessingState struct {
	ent.Schema
}

// Fields of the ProcessingState.
func (ProcessingState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("raw_message_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Int("attempt_count").
			Default(0),
		field.Time("last_attempted_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("lease_expires_at").
			Optional().
			Nillable().
			Comment("Set while in_progress; expiry makes the message re-eligible"),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.String("processing_run_id").
			Optional().
			Nillable(),
	}
}

// Edges of the ProcessingState.
func (ProcessingState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_message", RawMessage.Type).
			Ref("processing_state").
			Field("raw_message_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProcessingState.
func (ProcessingState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "lease_expires_at"),
	}
}
