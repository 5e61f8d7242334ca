// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extraction type in the database.
	Label = "extraction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawMessageID holds the string denoting the raw_message_id field in the database.
	FieldRawMessageID = "raw_message_id"
	// FieldExtractorName holds the string denoting the extractor_name field in the database.
	FieldExtractorName = "extractor_name"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldEventTime holds the string denoting the event_time field in the database.
	FieldEventTime = "event_time"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldImpactScore holds the string denoting the impact_score field in the database.
	FieldImpactScore = "impact_score"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSentiment holds the string denoting the sentiment field in the database.
	FieldSentiment = "sentiment"
	// FieldIsBreaking holds the string denoting the is_breaking field in the database.
	FieldIsBreaking = "is_breaking"
	// FieldBreakingWindow holds the string denoting the breaking_window field in the database.
	FieldBreakingWindow = "breaking_window"
	// FieldEventFingerprint holds the string denoting the event_fingerprint field in the database.
	FieldEventFingerprint = "event_fingerprint"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldProcessingRunID holds the string denoting the processing_run_id field in the database.
	FieldProcessingRunID = "processing_run_id"
	// FieldLlmRawResponse holds the string denoting the llm_raw_response field in the database.
	FieldLlmRawResponse = "llm_raw_response"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCanonicalPayload holds the string denoting the canonical_payload field in the database.
	FieldCanonicalPayload = "canonical_payload"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRawMessage holds the string denoting the raw_message edge name in mutations.
	EdgeRawMessage = "raw_message"
	// Table holds the table name of the extraction in the database.
	Table = "extractions"
	// RawMessageTable is the table that holds the raw_message relation/edge.
	RawMessageTable = "extractions"
	// RawMessageInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawMessageInverseTable = "raw_messages"
	// RawMessageColumn is the table column denoting the raw_message relation/edge.
	RawMessageColumn = "raw_message_id"
)

// Columns holds all SQL columns for extraction fields.
var Columns = []string{
	FieldID,
	FieldRawMessageID,
	FieldExtractorName,
	FieldSchemaVersion,
	FieldModelName,
	FieldEventTime,
	FieldTopic,
	FieldImpactScore,
	FieldConfidence,
	FieldSentiment,
	FieldIsBreaking,
	FieldBreakingWindow,
	FieldEventFingerprint,
	FieldPromptVersion,
	FieldProcessingRunID,
	FieldLlmRawResponse,
	FieldValidatedAt,
	FieldPayload,
	FieldCanonicalPayload,
	FieldMetadata,
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
	// DefaultIsBreaking holds the default value on creation for the "is_breaking" field.
	DefaultIsBreaking bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Extraction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawMessageID orders the results by the raw_message_id field.
func ByRawMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMessageID, opts...).ToFunc()
}

// ByExtractorName orders the results by the extractor_name field.
func ByExtractorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractorName, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByEventTime orders the results by the event_time field.
func ByEventTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTime, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByImpactScore orders the results by the impact_score field.
func ByImpactScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpactScore, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySentiment orders the results by the sentiment field.
func BySentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentiment, opts...).ToFunc()
}

// ByIsBreaking orders the results by the is_breaking field.
func ByIsBreaking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsBreaking, opts...).ToFunc()
}

// ByBreakingWindow orders the results by the breaking_window field.
func ByBreakingWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBreakingWindow, opts...).ToFunc()
}

// ByEventFingerprint orders the results by the event_fingerprint field.
func ByEventFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventFingerprint, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByProcessingRunID orders the results by the processing_run_id field.
func ByProcessingRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingRunID, opts...).ToFunc()
}

// ByLlmRawResponse orders the results by the llm_raw_response field.
func ByLlmRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmRawResponse, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
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
