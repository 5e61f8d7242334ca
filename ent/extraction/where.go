// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldID, id))
}

// RawMessageID applies equality check predicate on the "raw_message_id" field. It's identical to RawMessageIDEQ.
func RawMessageID(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldRawMessageID, v))
}

// ExtractorName applies equality check predicate on the "extractor_name" field. It's identical to ExtractorNameEQ.
func ExtractorName(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldExtractorName, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSchemaVersion, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldModelName, v))
}

// EventTime applies equality check predicate on the "event_time" field. It's identical to EventTimeEQ.
func EventTime(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEventTime, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTopic, v))
}

// ImpactScore applies equality check predicate on the "impact_score" field. It's identical to ImpactScoreEQ.
func ImpactScore(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldImpactScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidence, v))
}

// Sentiment applies equality check predicate on the "sentiment" field. It's identical to SentimentEQ.
func Sentiment(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSentiment, v))
}

// IsBreaking applies equality check predicate on the "is_breaking" field. It's identical to IsBreakingEQ.
func IsBreaking(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldIsBreaking, v))
}

// BreakingWindow applies equality check predicate on the "breaking_window" field. It's identical to BreakingWindowEQ.
func BreakingWindow(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldBreakingWindow, v))
}

// EventFingerprint applies equality check predicate on the "event_fingerprint" field. It's identical to EventFingerprintEQ.
func EventFingerprint(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEventFingerprint, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPromptVersion, v))
}

// ProcessingRunID applies equality check predicate on the "processing_run_id" field. It's identical to ProcessingRunIDEQ.
func ProcessingRunID(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProcessingRunID, v))
}

// LlmRawResponse applies equality check predicate on the "llm_raw_response" field. It's identical to LlmRawResponseEQ.
func LlmRawResponse(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldLlmRawResponse, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldValidatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// RawMessageIDEQ applies the EQ predicate on the "raw_message_id" field.
func RawMessageIDEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldRawMessageID, v))
}

// RawMessageIDNEQ applies the NEQ predicate on the "raw_message_id" field.
func RawMessageIDNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldRawMessageID, v))
}

// RawMessageIDIn applies the In predicate on the "raw_message_id" field.
func RawMessageIDIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldRawMessageID, vs...))
}

// RawMessageIDNotIn applies the NotIn predicate on the "raw_message_id" field.
func RawMessageIDNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldRawMessageID, vs...))
}

// ExtractorNameEQ applies the EQ predicate on the "extractor_name" field.
func ExtractorNameEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldExtractorName, v))
}

// ExtractorNameNEQ applies the NEQ predicate on the "extractor_name" field.
func ExtractorNameNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldExtractorName, v))
}

// ExtractorNameIn applies the In predicate on the "extractor_name" field.
func ExtractorNameIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldExtractorName, vs...))
}

// ExtractorNameNotIn applies the NotIn predicate on the "extractor_name" field.
func ExtractorNameNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldExtractorName, vs...))
}

// ExtractorNameGT applies the GT predicate on the "extractor_name" field.
func ExtractorNameGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldExtractorName, v))
}

// ExtractorNameGTE applies the GTE predicate on the "extractor_name" field.
func ExtractorNameGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldExtractorName, v))
}

// ExtractorNameLT applies the LT predicate on the "extractor_name" field.
func ExtractorNameLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldExtractorName, v))
}

// ExtractorNameLTE applies the LTE predicate on the "extractor_name" field.
func ExtractorNameLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldExtractorName, v))
}

// ExtractorNameContains applies the Contains predicate on the "extractor_name" field.
func ExtractorNameContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldExtractorName, v))
}

// ExtractorNameHasPrefix applies the HasPrefix predicate on the "extractor_name" field.
func ExtractorNameHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldExtractorName, v))
}

// ExtractorNameHasSuffix applies the HasSuffix predicate on the "extractor_name" field.
func ExtractorNameHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldExtractorName, v))
}

// ExtractorNameEqualFold applies the EqualFold predicate on the "extractor_name" field.
func ExtractorNameEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldExtractorName, v))
}

// ExtractorNameContainsFold applies the ContainsFold predicate on the "extractor_name" field.
func ExtractorNameContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldExtractorName, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldSchemaVersion, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldModelName, v))
}

// EventTimeEQ applies the EQ predicate on the "event_time" field.
func EventTimeEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEventTime, v))
}

// EventTimeNEQ applies the NEQ predicate on the "event_time" field.
func EventTimeNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldEventTime, v))
}

// EventTimeIn applies the In predicate on the "event_time" field.
func EventTimeIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldEventTime, vs...))
}

// EventTimeNotIn applies the NotIn predicate on the "event_time" field.
func EventTimeNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldEventTime, vs...))
}

// EventTimeGT applies the GT predicate on the "event_time" field.
func EventTimeGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldEventTime, v))
}

// EventTimeGTE applies the GTE predicate on the "event_time" field.
func EventTimeGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldEventTime, v))
}

// EventTimeLT applies the LT predicate on the "event_time" field.
func EventTimeLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldEventTime, v))
}

// EventTimeLTE applies the LTE predicate on the "event_time" field.
func EventTimeLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldEventTime, v))
}

// EventTimeIsNil applies the IsNil predicate on the "event_time" field.
func EventTimeIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldEventTime))
}

// EventTimeNotNil applies the NotNil predicate on the "event_time" field.
func EventTimeNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldEventTime))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldTopic, v))
}

// ImpactScoreEQ applies the EQ predicate on the "impact_score" field.
func ImpactScoreEQ(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldImpactScore, v))
}

// ImpactScoreNEQ applies the NEQ predicate on the "impact_score" field.
func ImpactScoreNEQ(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldImpactScore, v))
}

// ImpactScoreIn applies the In predicate on the "impact_score" field.
func ImpactScoreIn(vs ...float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldImpactScore, vs...))
}

// ImpactScoreNotIn applies the NotIn predicate on the "impact_score" field.
func ImpactScoreNotIn(vs ...float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldImpactScore, vs...))
}

// ImpactScoreGT applies the GT predicate on the "impact_score" field.
func ImpactScoreGT(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldImpactScore, v))
}

// ImpactScoreGTE applies the GTE predicate on the "impact_score" field.
func ImpactScoreGTE(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldImpactScore, v))
}

// ImpactScoreLT applies the LT predicate on the "impact_score" field.
func ImpactScoreLT(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldImpactScore, v))
}

// ImpactScoreLTE applies the LTE predicate on the "impact_score" field.
func ImpactScoreLTE(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldImpactScore, v))
}

// ImpactScoreIsNil applies the IsNil predicate on the "impact_score" field.
func ImpactScoreIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldImpactScore))
}

// ImpactScoreNotNil applies the NotNil predicate on the "impact_score" field.
func ImpactScoreNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldImpactScore))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldConfidence))
}

// SentimentEQ applies the EQ predicate on the "sentiment" field.
func SentimentEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldSentiment, v))
}

// SentimentNEQ applies the NEQ predicate on the "sentiment" field.
func SentimentNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldSentiment, v))
}

// SentimentIn applies the In predicate on the "sentiment" field.
func SentimentIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldSentiment, vs...))
}

// SentimentNotIn applies the NotIn predicate on the "sentiment" field.
func SentimentNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldSentiment, vs...))
}

// SentimentGT applies the GT predicate on the "sentiment" field.
func SentimentGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldSentiment, v))
}

// SentimentGTE applies the GTE predicate on the "sentiment" field.
func SentimentGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldSentiment, v))
}

// SentimentLT applies the LT predicate on the "sentiment" field.
func SentimentLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldSentiment, v))
}

// SentimentLTE applies the LTE predicate on the "sentiment" field.
func SentimentLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldSentiment, v))
}

// SentimentContains applies the Contains predicate on the "sentiment" field.
func SentimentContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldSentiment, v))
}

// SentimentHasPrefix applies the HasPrefix predicate on the "sentiment" field.
func SentimentHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldSentiment, v))
}

// SentimentHasSuffix applies the HasSuffix predicate on the "sentiment" field.
func SentimentHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldSentiment, v))
}

// SentimentIsNil applies the IsNil predicate on the "sentiment" field.
func SentimentIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldSentiment))
}

// SentimentNotNil applies the NotNil predicate on the "sentiment" field.
func SentimentNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldSentiment))
}

// SentimentEqualFold applies the EqualFold predicate on the "sentiment" field.
func SentimentEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldSentiment, v))
}

// SentimentContainsFold applies the ContainsFold predicate on the "sentiment" field.
func SentimentContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldSentiment, v))
}

// IsBreakingEQ applies the EQ predicate on the "is_breaking" field.
func IsBreakingEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldIsBreaking, v))
}

// IsBreakingNEQ applies the NEQ predicate on the "is_breaking" field.
func IsBreakingNEQ(v bool) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldIsBreaking, v))
}

// BreakingWindowEQ applies the EQ predicate on the "breaking_window" field.
func BreakingWindowEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldBreakingWindow, v))
}

// BreakingWindowNEQ applies the NEQ predicate on the "breaking_window" field.
func BreakingWindowNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldBreakingWindow, v))
}

// BreakingWindowIn applies the In predicate on the "breaking_window" field.
func BreakingWindowIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldBreakingWindow, vs...))
}

// BreakingWindowNotIn applies the NotIn predicate on the "breaking_window" field.
func BreakingWindowNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldBreakingWindow, vs...))
}

// BreakingWindowGT applies the GT predicate on the "breaking_window" field.
func BreakingWindowGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldBreakingWindow, v))
}

// BreakingWindowGTE applies the GTE predicate on the "breaking_window" field.
func BreakingWindowGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldBreakingWindow, v))
}

// BreakingWindowLT applies the LT predicate on the "breaking_window" field.
func BreakingWindowLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldBreakingWindow, v))
}

// BreakingWindowLTE applies the LTE predicate on the "breaking_window" field.
func BreakingWindowLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldBreakingWindow, v))
}

// BreakingWindowContains applies the Contains predicate on the "breaking_window" field.
func BreakingWindowContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldBreakingWindow, v))
}

// BreakingWindowHasPrefix applies the HasPrefix predicate on the "breaking_window" field.
func BreakingWindowHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldBreakingWindow, v))
}

// BreakingWindowHasSuffix applies the HasSuffix predicate on the "breaking_window" field.
func BreakingWindowHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldBreakingWindow, v))
}

// BreakingWindowIsNil applies the IsNil predicate on the "breaking_window" field.
func BreakingWindowIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldBreakingWindow))
}

// BreakingWindowNotNil applies the NotNil predicate on the "breaking_window" field.
func BreakingWindowNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldBreakingWindow))
}

// BreakingWindowEqualFold applies the EqualFold predicate on the "breaking_window" field.
func BreakingWindowEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldBreakingWindow, v))
}

// BreakingWindowContainsFold applies the ContainsFold predicate on the "breaking_window" field.
func BreakingWindowContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldBreakingWindow, v))
}

// EventFingerprintEQ applies the EQ predicate on the "event_fingerprint" field.
func EventFingerprintEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEventFingerprint, v))
}

// EventFingerprintNEQ applies the NEQ predicate on the "event_fingerprint" field.
func EventFingerprintNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldEventFingerprint, v))
}

// EventFingerprintIn applies the In predicate on the "event_fingerprint" field.
func EventFingerprintIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldEventFingerprint, vs...))
}

// EventFingerprintNotIn applies the NotIn predicate on the "event_fingerprint" field.
func EventFingerprintNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldEventFingerprint, vs...))
}

// EventFingerprintGT applies the GT predicate on the "event_fingerprint" field.
func EventFingerprintGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldEventFingerprint, v))
}

// EventFingerprintGTE applies the GTE predicate on the "event_fingerprint" field.
func EventFingerprintGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldEventFingerprint, v))
}

// EventFingerprintLT applies the LT predicate on the "event_fingerprint" field.
func EventFingerprintLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldEventFingerprint, v))
}

// EventFingerprintLTE applies the LTE predicate on the "event_fingerprint" field.
func EventFingerprintLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldEventFingerprint, v))
}

// EventFingerprintContains applies the Contains predicate on the "event_fingerprint" field.
func EventFingerprintContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldEventFingerprint, v))
}

// EventFingerprintHasPrefix applies the HasPrefix predicate on the "event_fingerprint" field.
func EventFingerprintHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldEventFingerprint, v))
}

// EventFingerprintHasSuffix applies the HasSuffix predicate on the "event_fingerprint" field.
func EventFingerprintHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldEventFingerprint, v))
}

// EventFingerprintIsNil applies the IsNil predicate on the "event_fingerprint" field.
func EventFingerprintIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldEventFingerprint))
}

// EventFingerprintNotNil applies the NotNil predicate on the "event_fingerprint" field.
func EventFingerprintNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldEventFingerprint))
}

// EventFingerprintEqualFold applies the EqualFold predicate on the "event_fingerprint" field.
func EventFingerprintEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldEventFingerprint, v))
}

// EventFingerprintContainsFold applies the ContainsFold predicate on the "event_fingerprint" field.
func EventFingerprintContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldEventFingerprint, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldPromptVersion, v))
}

// ProcessingRunIDEQ applies the EQ predicate on the "processing_run_id" field.
func ProcessingRunIDEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldProcessingRunID, v))
}

// ProcessingRunIDNEQ applies the NEQ predicate on the "processing_run_id" field.
func ProcessingRunIDNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldProcessingRunID, v))
}

// ProcessingRunIDIn applies the In predicate on the "processing_run_id" field.
func ProcessingRunIDIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldProcessingRunID, vs...))
}

// ProcessingRunIDNotIn applies the NotIn predicate on the "processing_run_id" field.
func ProcessingRunIDNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldProcessingRunID, vs...))
}

// ProcessingRunIDGT applies the GT predicate on the "processing_run_id" field.
func ProcessingRunIDGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldProcessingRunID, v))
}

// ProcessingRunIDGTE applies the GTE predicate on the "processing_run_id" field.
func ProcessingRunIDGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldProcessingRunID, v))
}

// ProcessingRunIDLT applies the LT predicate on the "processing_run_id" field.
func ProcessingRunIDLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldProcessingRunID, v))
}

// ProcessingRunIDLTE applies the LTE predicate on the "processing_run_id" field.
func ProcessingRunIDLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldProcessingRunID, v))
}

// ProcessingRunIDContains applies the Contains predicate on the "processing_run_id" field.
func ProcessingRunIDContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldProcessingRunID, v))
}

// ProcessingRunIDHasPrefix applies the HasPrefix predicate on the "processing_run_id" field.
func ProcessingRunIDHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldProcessingRunID, v))
}

// ProcessingRunIDHasSuffix applies the HasSuffix predicate on the "processing_run_id" field.
func ProcessingRunIDHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldProcessingRunID, v))
}

// ProcessingRunIDIsNil applies the IsNil predicate on the "processing_run_id" field.
func ProcessingRunIDIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldProcessingRunID))
}

// ProcessingRunIDNotNil applies the NotNil predicate on the "processing_run_id" field.
func ProcessingRunIDNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldProcessingRunID))
}

// ProcessingRunIDEqualFold applies the EqualFold predicate on the "processing_run_id" field.
func ProcessingRunIDEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldProcessingRunID, v))
}

// ProcessingRunIDContainsFold applies the ContainsFold predicate on the "processing_run_id" field.
func ProcessingRunIDContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldProcessingRunID, v))
}

// LlmRawResponseEQ applies the EQ predicate on the "llm_raw_response" field.
func LlmRawResponseEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldLlmRawResponse, v))
}

// LlmRawResponseNEQ applies the NEQ predicate on the "llm_raw_response" field.
func LlmRawResponseNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldLlmRawResponse, v))
}

// LlmRawResponseIn applies the In predicate on the "llm_raw_response" field.
func LlmRawResponseIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldLlmRawResponse, vs...))
}

// LlmRawResponseNotIn applies the NotIn predicate on the "llm_raw_response" field.
func LlmRawResponseNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldLlmRawResponse, vs...))
}

// LlmRawResponseGT applies the GT predicate on the "llm_raw_response" field.
func LlmRawResponseGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldLlmRawResponse, v))
}

// LlmRawResponseGTE applies the GTE predicate on the "llm_raw_response" field.
func LlmRawResponseGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldLlmRawResponse, v))
}

// LlmRawResponseLT applies the LT predicate on the "llm_raw_response" field.
func LlmRawResponseLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldLlmRawResponse, v))
}

// LlmRawResponseLTE applies the LTE predicate on the "llm_raw_response" field.
func LlmRawResponseLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldLlmRawResponse, v))
}

// LlmRawResponseContains applies the Contains predicate on the "llm_raw_response" field.
func LlmRawResponseContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldLlmRawResponse, v))
}

// LlmRawResponseHasPrefix applies the HasPrefix predicate on the "llm_raw_response" field.
func LlmRawResponseHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldLlmRawResponse, v))
}

// LlmRawResponseHasSuffix applies the HasSuffix predicate on the "llm_raw_response" field.
func LlmRawResponseHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldLlmRawResponse, v))
}

// LlmRawResponseIsNil applies the IsNil predicate on the "llm_raw_response" field.
func LlmRawResponseIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldLlmRawResponse))
}

// LlmRawResponseNotNil applies the NotNil predicate on the "llm_raw_response" field.
func LlmRawResponseNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldLlmRawResponse))
}

// LlmRawResponseEqualFold applies the EqualFold predicate on the "llm_raw_response" field.
func LlmRawResponseEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldLlmRawResponse, v))
}

// LlmRawResponseContainsFold applies the ContainsFold predicate on the "llm_raw_response" field.
func LlmRawResponseContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldLlmRawResponse, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldValidatedAt))
}

// CanonicalPayloadIsNil applies the IsNil predicate on the "canonical_payload" field.
func CanonicalPayloadIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldCanonicalPayload))
}

// CanonicalPayloadNotNil applies the NotNil predicate on the "canonical_payload" field.
func CanonicalPayloadNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldCanonicalPayload))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRawMessage applies the HasEdge predicate on the "raw_message" edge.
func HasRawMessage() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RawMessageTable, RawMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawMessageWith applies the HasEdge predicate on the "raw_message" edge with a given conditions (other predicates).
func HasRawMessageWith(preds ...predicate.RawMessage) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newRawMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.NotPredicates(p))
}
