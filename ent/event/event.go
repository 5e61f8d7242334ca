// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventFingerprint holds the string denoting the event_fingerprint field in the database.
	FieldEventFingerprint = "event_fingerprint"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldImpactScore holds the string denoting the impact_score field in the database.
	FieldImpactScore = "impact_score"
	// FieldIsBreaking holds the string denoting the is_breaking field in the database.
	FieldIsBreaking = "is_breaking"
	// FieldBreakingWindow holds the string denoting the breaking_window field in the database.
	FieldBreakingWindow = "breaking_window"
	// FieldEventTime holds the string denoting the event_time field in the database.
	FieldEventTime = "event_time"
	// FieldLastUpdatedAt holds the string denoting the last_updated_at field in the database.
	FieldLastUpdatedAt = "last_updated_at"
	// FieldLatestExtractionID holds the string denoting the latest_extraction_id field in the database.
	FieldLatestExtractionID = "latest_extraction_id"
	// EdgeMessageLinks holds the string denoting the message_links edge name in mutations.
	EdgeMessageLinks = "message_links"
	// Table holds the table name of the event in the database.
	Table = "events"
	// MessageLinksTable is the table that holds the message_links relation/edge.
	MessageLinksTable = "event_messages"
	// MessageLinksInverseTable is the table name for the EventMessage entity.
	// It exists in this package in order to avoid circular dependency with the "eventmessage" package.
	MessageLinksInverseTable = "event_messages"
	// MessageLinksColumn is the table column denoting the message_links relation/edge.
	MessageLinksColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldEventFingerprint,
	FieldTopic,
	FieldSummary,
	FieldImpactScore,
	FieldIsBreaking,
	FieldBreakingWindow,
	FieldEventTime,
	FieldLastUpdatedAt,
	FieldLatestExtractionID,
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
	// EventFingerprintValidator is a validator for the "event_fingerprint" field. It is called by the builders before save.
	EventFingerprintValidator func(string) error
	// DefaultIsBreaking holds the default value on creation for the "is_breaking" field.
	DefaultIsBreaking bool
	// DefaultLastUpdatedAt holds the default value on creation for the "last_updated_at" field.
	DefaultLastUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventFingerprint orders the results by the event_fingerprint field.
func ByEventFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventFingerprint, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByImpactScore orders the results by the impact_score field.
func ByImpactScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpactScore, opts...).ToFunc()
}

// ByIsBreaking orders the results by the is_breaking field.
func ByIsBreaking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBreaking, opts...).ToFunc()
}

// ByBreakingWindow orders the results by the breaking_window field.
func ByBreakingWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakingWindow, opts...).ToFunc()
}

// ByEventTime orders the results by the event_time field.
func ByEventTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTime, opts...).ToFunc()
}

// ByLastUpdatedAt orders the results by the last_updated_at field.
func ByLastUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdatedAt, opts...).ToFunc()
}

// ByLatestExtractionID orders the results by the latest_extraction_id field.
func ByLatestExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatestExtractionID, opts...).ToFunc()
}

// ByMessageLinksCount orders the results by message_links count.
func ByMessageLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessageLinksStep(), opts...)
	}
}

// ByMessageLinks orders the results by message_links terms.
func ByMessageLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessageLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessageLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessageLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessageLinksTable, MessageLinksColumn),
	)
}
