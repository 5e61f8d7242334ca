// Code generated by ent, DO NOT EDIT.

package routingdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the routingdecision type in the database.
	Label = "routing_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawMessageID holds the string denoting the raw_message_id field in the database.
	FieldRawMessageID = "raw_message_id"
	// FieldStoreTo holds the string denoting the store_to field in the database.
	FieldStoreTo = "store_to"
	// FieldPublishPriority holds the string denoting the publish_priority field in the database.
	FieldPublishPriority = "publish_priority"
	// FieldRequiresEvidence holds the string denoting the requires_evidence field in the database.
	FieldRequiresEvidence = "requires_evidence"
	// FieldEventAction holds the string denoting the event_action field in the database.
	FieldEventAction = "event_action"
	// FieldTriageAction holds the string denoting the triage_action field in the database.
	FieldTriageAction = "triage_action"
	// FieldTriageRules holds the string denoting the triage_rules field in the database.
	FieldTriageRules = "triage_rules"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldRulesFired holds the string denoting the rules_fired field in the database.
	FieldRulesFired = "rules_fired"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRawMessage holds the string denoting the raw_message edge name in mutations.
	EdgeRawMessage = "raw_message"
	// Table holds the table name of the routingdecision in the database.
	Table = "routing_decisions"
	// RawMessageTable is the table that holds the raw_message relation/edge.
	RawMessageTable = "routing_decisions"
	// RawMessageInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawMessageInverseTable = "raw_messages"
	// RawMessageColumn is the table column denoting the raw_message relation/edge.
	RawMessageColumn = "raw_message_id"
)

// Columns holds all SQL columns for routingdecision fields.
var Columns = []string{
	FieldID,
	FieldRawMessageID,
	FieldStoreTo,
	FieldPublishPriority,
	FieldRequiresEvidence,
	FieldEventAction,
	FieldTriageAction,
	FieldTriageRules,
	FieldFlags,
	FieldRulesFired,
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
	// PublishPriorityValidator is a validator for the "publish_priority" field. It is called by the builders before save.
	PublishPriorityValidator func(string) error
	// DefaultRequiresEvidence holds the default value on creation for the "requires_evidence" field.
	DefaultRequiresEvidence bool
	// EventActionValidator is a validator for the "event_action" field. It is called by the builders before save.
	EventActionValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RoutingDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawMessageID orders the results by the raw_message_id field.
func ByRawMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMessageID, opts...).ToFunc()
}

// ByPublishPriority orders the results by the publish_priority field.
func ByPublishPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishPriority, opts...).ToFunc()
}

// ByRequiresEvidence orders the results by the requires_evidence field.
func ByRequiresEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresEvidence, opts...).ToFunc()
}

// ByEventAction orders the results by the event_action field.
func ByEventAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventAction, opts...).ToFunc()
}

// ByTriageAction orders the results by the triage_action field.
func ByTriageAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageAction, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, RawMessageTable, RawMessageColumn),
	)
}
