// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rawmessage type in the database.
	Label = "raw_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceChannelID holds the string denoting the source_channel_id field in the database.
	FieldSourceChannelID = "source_channel_id"
	// FieldSourceChannelName holds the string denoting the source_channel_name field in the database.
	FieldSourceChannelName = "source_channel_name"
	// FieldUpstreamMessageID holds the string denoting the upstream_message_id field in the database.
	FieldUpstreamMessageID = "upstream_message_id"
	// FieldMessageTimestampUtc holds the string denoting the message_timestamp_utc field in the database.
	FieldMessageTimestampUtc = "message_timestamp_utc"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// FieldRawEntities holds the string denoting the raw_entities field in the database.
	FieldRawEntities = "raw_entities"
	// FieldForwardedFrom holds the string denoting the forwarded_from field in the database.
	FieldForwardedFrom = "forwarded_from"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProcessingState holds the string denoting the processing_state edge name in mutations.
	EdgeProcessingState = "processing_state"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// EdgeRoutingDecision holds the string denoting the routing_decision edge name in mutations.
	EdgeRoutingDecision = "routing_decision"
	// EdgeEventLinks holds the string denoting the event_links edge name in mutations.
	EdgeEventLinks = "event_links"
	// EdgeEntityMentions holds the string denoting the entity_mentions edge name in mutations.
	EdgeEntityMentions = "entity_mentions"
	// Table holds the table name of the rawmessage in the database.
	Table = "raw_messages"
	// ProcessingStateTable is the table that holds the processing_state relation/edge.
	ProcessingStateTable = "processing_states"
	// ProcessingStateInverseTable is the table name for the ProcessingState entity.
	// It exists in this package in order to avoid circular dependency with the "processingstate" package.
	ProcessingStateInverseTable = "processing_states"
	// ProcessingStateColumn is the table column denoting the processing_state relation/edge.
	ProcessingStateColumn = "raw_message_id"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "extractions"
	// ExtractionInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionInverseTable = "extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "raw_message_id"
	// RoutingDecisionTable is the table that holds the routing_decision relation/edge.
	RoutingDecisionTable = "routing_decisions"
	// RoutingDecisionInverseTable is the table name for the RoutingDecision entity.
	// It exists in this package in order to avoid circular dependency with the "routingdecision" package.
	RoutingDecisionInverseTable = "routing_decisions"
	// RoutingDecisionColumn is the table column denoting the routing_decision relation/edge.
	RoutingDecisionColumn = "raw_message_id"
	// EventLinksTable is the table that holds the event_links relation/edge.
	EventLinksTable = "event_messages"
	// EventLinksInverseTable is the table name for the EventMessage entity.
	// It exists in this package in order to avoid circular dependency with the "eventmessage" package.
	EventLinksInverseTable = "event_messages"
	// EventLinksColumn is the table column denoting the event_links relation/edge.
	EventLinksColumn = "raw_message_id"
	// EntityMentionsTable is the table that holds the entity_mentions relation/edge.
	EntityMentionsTable = "entity_mentions"
	// EntityMentionsInverseTable is the table name for the EntityMention entity.
	// It exists in this package in order to avoid circular dependency with the "entitymention" package.
	EntityMentionsInverseTable = "entity_mentions"
	// EntityMentionsColumn is the table column denoting the entity_mentions relation/edge.
	EntityMentionsColumn = "raw_message_id"
)

// Columns holds all SQL columns for rawmessage fields.
var Columns = []string{
	FieldID,
	FieldSourceChannelID,
	FieldSourceChannelName,
	FieldUpstreamMessageID,
	FieldMessageTimestampUtc,
	FieldRawText,
	FieldNormalizedText,
	FieldRawEntities,
	FieldForwardedFrom,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RawMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceChannelID orders the results by the source_channel_id field.
func BySourceChannelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChannelID, opts...).ToFunc()
}

// BySourceChannelName orders the results by the source_channel_name field.
func BySourceChannelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceChannelName, opts...).ToFunc()
}

// ByUpstreamMessageID orders the results by the upstream_message_id field.
func ByUpstreamMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamMessageID, opts...).ToFunc()
}

// ByMessageTimestampUtc orders the results by the message_timestamp_utc field.
func ByMessageTimestampUtc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageTimestampUtc, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}

// ByForwardedFrom orders the results by the forwarded_from field.
func ByForwardedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForwardedFrom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProcessingStateField orders the results by processing_state field.
func ByProcessingStateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProcessingStateStep(), sql.OrderByField(field, opts...))
	}
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}

// ByRoutingDecisionField orders the results by routing_decision field.
func ByRoutingDecisionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoutingDecisionStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventLinksCount orders the results by event_links count.
func ByEventLinksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventLinksStep(), opts...)
	}
}

// ByEventLinks orders the results by event_links terms.
func ByEventLinks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventLinksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEntityMentionsCount orders the results by entity_mentions count.
func ByEntityMentionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntityMentionsStep(), opts...)
	}
}

// ByEntityMentions orders the results by entity_mentions terms.
func ByEntityMentions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityMentionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProcessingStateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProcessingStateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ProcessingStateTable, ProcessingStateColumn),
	)
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ExtractionTable, ExtractionColumn),
	)
}
func newRoutingDecisionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoutingDecisionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, RoutingDecisionTable, RoutingDecisionColumn),
	)
}
func newEventLinksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventLinksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventLinksTable, EventLinksColumn),
	)
}
func newEntityMentionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityMentionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntityMentionsTable, EntityMentionsColumn),
	)
}
