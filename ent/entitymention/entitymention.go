// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the entitymention type in the database.
	Label = "entity_mention"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawMessageID holds the string denoting the raw_message_id field in the database.
	FieldRawMessageID = "raw_message_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityValue holds the string denoting the entity_value field in the database.
	FieldEntityValue = "entity_value"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldIsBreaking holds the string denoting the is_breaking field in the database.
	FieldIsBreaking = "is_breaking"
	// FieldEventTime holds the string denoting the event_time field in the database.
	FieldEventTime = "event_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRawMessage holds the string denoting the raw_message edge name in mutations.
	EdgeRawMessage = "raw_message"
	// Table holds the table name of the entitymention in the database.
	Table = "entity_mentions"
	// RawMessageTable is the table that holds the raw_message relation/edge.
	RawMessageTable = "entity_mentions"
	// RawMessageInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawMessageInverseTable = "raw_messages"
	// RawMessageColumn is the table column denoting the raw_message relation/edge.
	RawMessageColumn = "raw_message_id"
)

// Columns holds all SQL columns for entitymention fields.
var Columns = []string{
	FieldID,
	FieldRawMessageID,
	FieldEventID,
	FieldEntityType,
	FieldEntityValue,
	FieldTopic,
	FieldIsBreaking,
	FieldEventTime,
	FieldCreatedAt,
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
	// EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	EntityTypeValidator func(string) error
	// DefaultIsBreaking holds the default value on creation for the "is_breaking" field.
	DefaultIsBreaking bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the EntityMention queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawMessageID orders the results by the raw_message_id field.
func ByRawMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMessageID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityValue orders the results by the entity_value field.
func ByEntityValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityValue, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByIsBreaking orders the results by the is_breaking field.
func ByIsBreaking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBreaking, opts...).ToFunc()
}

// ByEventTime orders the results by the event_time field.
func ByEventTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRawMessageField orders the results by raw_message field.
func ByRawMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newRawMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawMessageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawMessageTable, RawMessageColumn),
	)
}
