// Code generated by ent, DO NOT EDIT.

package eventmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the eventmessage type in the database.
	Label = "event_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRawMessageID holds the string denoting the raw_message_id field in the database.
	FieldRawMessageID = "raw_message_id"
	// FieldLinkedAt holds the string denoting the linked_at field in the database.
	FieldLinkedAt = "linked_at"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// EdgeRawMessage holds the string denoting the raw_message edge name in mutations.
	EdgeRawMessage = "raw_message"
	// Table holds the table name of the eventmessage in the database.
	Table = "event_messages"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "event_messages"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
	// RawMessageTable is the table that holds the raw_message relation/edge.
	RawMessageTable = "event_messages"
	// RawMessageInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawMessageInverseTable = "raw_messages"
	// RawMessageColumn is the table column denoting the raw_message relation/edge.
	RawMessageColumn = "raw_message_id"
)

// Columns holds all SQL columns for eventmessage fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldRawMessageID,
	FieldLinkedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLinkedAt holds the default value on creation for the "linked_at" field.
	DefaultLinkedAt func() time.Time
)

// OrderOption defines the ordering options for the EventMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRawMessageID orders the results by the raw_message_id field.
func ByRawMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMessageID, opts...).ToFunc()
}

// ByLinkedAt orders the results by the linked_at field.
func ByLinkedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLinkedAt, opts...).ToFunc()
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}

// ByRawMessageField orders the results by raw_message field.
func ByRawMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
func newRawMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawMessageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawMessageTable, RawMessageColumn),
	)
}
