package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PublishedPost holds the schema definition for the PublishedPost entity:
// the outbound digest log used for duplicate suppression.
type PublishedPost struct {
	ent.Schema
}

// Fields of the PublishedPost.
func (PublishedPost) Fields() []ent.Field {
	return []ent.Field{
		field.Int("event_id").
			Optional().
			Nillable(),
		field.String("destination").
			MaxLen(64),
		field.Time("published_at").
			Default(time.Now),
		field.Text("content"),
		field.String("content_hash").
			MaxLen(128),
	}
}

// Indexes of the PublishedPost.
func (PublishedPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("destination", "content_hash"),
		index.Fields("published_at"),
	}
}
