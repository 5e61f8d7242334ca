package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProcessingLock holds the schema definition for the ProcessingLock entity:
// a named advisory lock row. A run holds the lock iff locked_until is in the
// future and owner_run_id matches.
type ProcessingLock struct {
	ent.Schema
}

// Fields of the ProcessingLock.
func (ProcessingLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("lock_name").
			MaxLen(64).
			Unique().
			Immutable(),
		field.Time("locked_until"),
		field.String("owner_run_id"),
	}
}
