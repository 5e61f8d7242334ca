// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExtractorName sets the "extractor_name" field.
func (_u *ExtractionUpdate) SetExtractorName(v string) *ExtractionUpdate {
	_u.mutation.SetExtractorName(v)
	return _u
}

// SetNillableExtractorName sets the "extractor_name" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableExtractorName(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetExtractorName(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *ExtractionUpdate) SetSchemaVersion(v int) *ExtractionUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableSchemaVersion(v *int) *ExtractionUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *ExtractionUpdate) AddSchemaVersion(v int) *ExtractionUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionUpdate) SetModelName(v string) *ExtractionUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableModelName(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionUpdate) ClearModelName() *ExtractionUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *ExtractionUpdate) SetEventTime(v time.Time) *ExtractionUpdate {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableEventTime(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *ExtractionUpdate) ClearEventTime() *ExtractionUpdate {
	_u.mutation.ClearEventTime()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExtractionUpdate) SetTopic(v string) *ExtractionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTopic(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *ExtractionUpdate) ClearTopic() *ExtractionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *ExtractionUpdate) SetImpactScore(v float64) *ExtractionUpdate {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableImpactScore(v *float64) *ExtractionUpdate {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *ExtractionUpdate) AddImpactScore(v float64) *ExtractionUpdate {
	_u.mutation.AddImpactScore(v)
	return _u
}

// ClearImpactScore clears the value of the "impact_score" field.
func (_u *ExtractionUpdate) ClearImpactScore() *ExtractionUpdate {
	_u.mutation.ClearImpactScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdate) SetConfidence(v float64) *ExtractionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableConfidence(v *float64) *ExtractionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdate) AddConfidence(v float64) *ExtractionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionUpdate) ClearConfidence() *ExtractionUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ExtractionUpdate) SetSentiment(v string) *ExtractionUpdate {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableSentiment(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ExtractionUpdate) ClearSentiment() *ExtractionUpdate {
	_u.mutation.ClearSentiment()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *ExtractionUpdate) SetIsBreaking(v bool) *ExtractionUpdate {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableIsBreaking(v *bool) *ExtractionUpdate {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetBreakingWindow sets the "breaking_window" field.
func (_u *ExtractionUpdate) SetBreakingWindow(v string) *ExtractionUpdate {
	_u.mutation.SetBreakingWindow(v)
	return _u
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableBreakingWindow(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetBreakingWindow(*v)
	}
	return _u
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (_u *ExtractionUpdate) ClearBreakingWindow() *ExtractionUpdate {
	_u.mutation.ClearBreakingWindow()
	return _u
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_u *ExtractionUpdate) SetEventFingerprint(v string) *ExtractionUpdate {
	_u.mutation.SetEventFingerprint(v)
	return _u
}

// SetNillableEventFingerprint sets the "event_fingerprint" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableEventFingerprint(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetEventFingerprint(*v)
	}
	return _u
}

// ClearEventFingerprint clears the value of the "event_fingerprint" field.
func (_u *ExtractionUpdate) ClearEventFingerprint() *ExtractionUpdate {
	_u.mutation.ClearEventFingerprint()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ExtractionUpdate) SetPromptVersion(v string) *ExtractionUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillablePromptVersion(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *ExtractionUpdate) ClearPromptVersion() *ExtractionUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_u *ExtractionUpdate) SetProcessingRunID(v string) *ExtractionUpdate {
	_u.mutation.SetProcessingRunID(v)
	return _u
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableProcessingRunID(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetProcessingRunID(*v)
	}
	return _u
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (_u *ExtractionUpdate) ClearProcessingRunID() *ExtractionUpdate {
	_u.mutation.ClearProcessingRunID()
	return _u
}

// SetLlmRawResponse sets the "llm_raw_response" field.
func (_u *ExtractionUpdate) SetLlmRawResponse(v string) *ExtractionUpdate {
	_u.mutation.SetLlmRawResponse(v)
	return _u
}

// SetNillableLlmRawResponse sets the "llm_raw_response" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableLlmRawResponse(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetLlmRawResponse(*v)
	}
	return _u
}

// ClearLlmRawResponse clears the value of the "llm_raw_response" field.
func (_u *ExtractionUpdate) ClearLlmRawResponse() *ExtractionUpdate {
	_u.mutation.ClearLlmRawResponse()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ExtractionUpdate) SetValidatedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableValidatedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ExtractionUpdate) ClearValidatedAt() *ExtractionUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExtractionUpdate) SetPayload(v map[string]interface{}) *ExtractionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *ExtractionUpdate) SetCanonicalPayload(v map[string]interface{}) *ExtractionUpdate {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// ClearCanonicalPayload clears the value of the "canonical_payload" field.
func (_u *ExtractionUpdate) ClearCanonicalPayload() *ExtractionUpdate {
	_u.mutation.ClearCanonicalPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExtractionUpdate) SetMetadata(v map[string]interface{}) *ExtractionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExtractionUpdate) ClearMetadata() *ExtractionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.raw_message"`)
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractorName(); ok {
		_spec.SetField(extraction.FieldExtractorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(extraction.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(extraction.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extraction.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extraction.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(extraction.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(extraction.FieldEventTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(extraction.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(extraction.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(extraction.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(extraction.FieldImpactScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImpactScoreCleared() {
		_spec.ClearField(extraction.FieldImpactScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extraction.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(extraction.FieldSentiment, field.TypeString, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(extraction.FieldSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(extraction.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BreakingWindow(); ok {
		_spec.SetField(extraction.FieldBreakingWindow, field.TypeString, value)
	}
	if _u.mutation.BreakingWindowCleared() {
		_spec.ClearField(extraction.FieldBreakingWindow, field.TypeString)
	}
	if value, ok := _u.mutation.EventFingerprint(); ok {
		_spec.SetField(extraction.FieldEventFingerprint, field.TypeString, value)
	}
	if _u.mutation.EventFingerprintCleared() {
		_spec.ClearField(extraction.FieldEventFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(extraction.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(extraction.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingRunID(); ok {
		_spec.SetField(extraction.FieldProcessingRunID, field.TypeString, value)
	}
	if _u.mutation.ProcessingRunIDCleared() {
		_spec.ClearField(extraction.FieldProcessingRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmRawResponse(); ok {
		_spec.SetField(extraction.FieldLlmRawResponse, field.TypeString, value)
	}
	if _u.mutation.LlmRawResponseCleared() {
		_spec.ClearField(extraction.FieldLlmRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(extraction.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(extraction.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extraction.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(extraction.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if _u.mutation.CanonicalPayloadCleared() {
		_spec.ClearField(extraction.FieldCanonicalPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(extraction.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(extraction.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetExtractorName sets the "extractor_name" field.
func (_u *ExtractionUpdateOne) SetExtractorName(v string) *ExtractionUpdateOne {
	_u.mutation.SetExtractorName(v)
	return _u
}

// SetNillableExtractorName sets the "extractor_name" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableExtractorName(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetExtractorName(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *ExtractionUpdateOne) SetSchemaVersion(v int) *ExtractionUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableSchemaVersion(v *int) *ExtractionUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *ExtractionUpdateOne) AddSchemaVersion(v int) *ExtractionUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionUpdateOne) SetModelName(v string) *ExtractionUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableModelName(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionUpdateOne) ClearModelName() *ExtractionUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *ExtractionUpdateOne) SetEventTime(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableEventTime(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *ExtractionUpdateOne) ClearEventTime() *ExtractionUpdateOne {
	_u.mutation.ClearEventTime()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExtractionUpdateOne) SetTopic(v string) *ExtractionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTopic(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *ExtractionUpdateOne) ClearTopic() *ExtractionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *ExtractionUpdateOne) SetImpactScore(v float64) *ExtractionUpdateOne {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableImpactScore(v *float64) *ExtractionUpdateOne {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *ExtractionUpdateOne) AddImpactScore(v float64) *ExtractionUpdateOne {
	_u.mutation.AddImpactScore(v)
	return _u
}

// ClearImpactScore clears the value of the "impact_score" field.
func (_u *ExtractionUpdateOne) ClearImpactScore() *ExtractionUpdateOne {
	_u.mutation.ClearImpactScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionUpdateOne) SetConfidence(v float64) *ExtractionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableConfidence(v *float64) *ExtractionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionUpdateOne) AddConfidence(v float64) *ExtractionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionUpdateOne) ClearConfidence() *ExtractionUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSentiment sets the "sentiment" field.
func (_u *ExtractionUpdateOne) SetSentiment(v string) *ExtractionUpdateOne {
	_u.mutation.SetSentiment(v)
	return _u
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableSentiment(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetSentiment(*v)
	}
	return _u
}

// ClearSentiment clears the value of the "sentiment" field.
func (_u *ExtractionUpdateOne) ClearSentiment() *ExtractionUpdateOne {
	_u.mutation.ClearSentiment()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *ExtractionUpdateOne) SetIsBreaking(v bool) *ExtractionUpdateOne {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableIsBreaking(v *bool) *ExtractionUpdateOne {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetBreakingWindow sets the "breaking_window" field.
func (_u *ExtractionUpdateOne) SetBreakingWindow(v string) *ExtractionUpdateOne {
	_u.mutation.SetBreakingWindow(v)
	return _u
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableBreakingWindow(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetBreakingWindow(*v)
	}
	return _u
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (_u *ExtractionUpdateOne) ClearBreakingWindow() *ExtractionUpdateOne {
	_u.mutation.ClearBreakingWindow()
	return _u
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_u *ExtractionUpdateOne) SetEventFingerprint(v string) *ExtractionUpdateOne {
	_u.mutation.SetEventFingerprint(v)
	return _u
}

// SetNillableEventFingerprint sets the "event_fingerprint" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableEventFingerprint(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetEventFingerprint(*v)
	}
	return _u
}

// ClearEventFingerprint clears the value of the "event_fingerprint" field.
func (_u *ExtractionUpdateOne) ClearEventFingerprint() *ExtractionUpdateOne {
	_u.mutation.ClearEventFingerprint()
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ExtractionUpdateOne) SetPromptVersion(v string) *ExtractionUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillablePromptVersion(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *ExtractionUpdateOne) ClearPromptVersion() *ExtractionUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_u *ExtractionUpdateOne) SetProcessingRunID(v string) *ExtractionUpdateOne {
	_u.mutation.SetProcessingRunID(v)
	return _u
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableProcessingRunID(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetProcessingRunID(*v)
	}
	return _u
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (_u *ExtractionUpdateOne) ClearProcessingRunID() *ExtractionUpdateOne {
	_u.mutation.ClearProcessingRunID()
	return _u
}

// SetLlmRawResponse sets the "llm_raw_response" field.
func (_u *ExtractionUpdateOne) SetLlmRawResponse(v string) *ExtractionUpdateOne {
	_u.mutation.SetLlmRawResponse(v)
	return _u
}

// SetNillableLlmRawResponse sets the "llm_raw_response" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableLlmRawResponse(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetLlmRawResponse(*v)
	}
	return _u
}

// ClearLlmRawResponse clears the value of the "llm_raw_response" field.
func (_u *ExtractionUpdateOne) ClearLlmRawResponse() *ExtractionUpdateOne {
	_u.mutation.ClearLlmRawResponse()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ExtractionUpdateOne) SetValidatedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableValidatedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ExtractionUpdateOne) ClearValidatedAt() *ExtractionUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ExtractionUpdateOne) SetPayload(v map[string]interface{}) *ExtractionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_u *ExtractionUpdateOne) SetCanonicalPayload(v map[string]interface{}) *ExtractionUpdateOne {
	_u.mutation.SetCanonicalPayload(v)
	return _u
}

// ClearCanonicalPayload clears the value of the "canonical_payload" field.
func (_u *ExtractionUpdateOne) ClearCanonicalPayload() *ExtractionUpdateOne {
	_u.mutation.ClearCanonicalPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExtractionUpdateOne) SetMetadata(v map[string]interface{}) *ExtractionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExtractionUpdateOne) ClearMetadata() *ExtractionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.raw_message"`)
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractorName(); ok {
		_spec.SetField(extraction.FieldExtractorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(extraction.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(extraction.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extraction.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extraction.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(extraction.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(extraction.FieldEventTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(extraction.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(extraction.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(extraction.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(extraction.FieldImpactScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImpactScoreCleared() {
		_spec.ClearField(extraction.FieldImpactScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extraction.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extraction.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Sentiment(); ok {
		_spec.SetField(extraction.FieldSentiment, field.TypeString, value)
	}
	if _u.mutation.SentimentCleared() {
		_spec.ClearField(extraction.FieldSentiment, field.TypeString)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(extraction.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BreakingWindow(); ok {
		_spec.SetField(extraction.FieldBreakingWindow, field.TypeString, value)
	}
	if _u.mutation.BreakingWindowCleared() {
		_spec.ClearField(extraction.FieldBreakingWindow, field.TypeString)
	}
	if value, ok := _u.mutation.EventFingerprint(); ok {
		_spec.SetField(extraction.FieldEventFingerprint, field.TypeString, value)
	}
	if _u.mutation.EventFingerprintCleared() {
		_spec.ClearField(extraction.FieldEventFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(extraction.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(extraction.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingRunID(); ok {
		_spec.SetField(extraction.FieldProcessingRunID, field.TypeString, value)
	}
	if _u.mutation.ProcessingRunIDCleared() {
		_spec.ClearField(extraction.FieldProcessingRunID, field.TypeString)
	}
	if value, ok := _u.mutation.LlmRawResponse(); ok {
		_spec.SetField(extraction.FieldLlmRawResponse, field.TypeString, value)
	}
	if _u.mutation.LlmRawResponseCleared() {
		_spec.ClearField(extraction.FieldLlmRawResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(extraction.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(extraction.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(extraction.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CanonicalPayload(); ok {
		_spec.SetField(extraction.FieldCanonicalPayload, field.TypeJSON, value)
	}
	if _u.mutation.CanonicalPayloadCleared() {
		_spec.ClearField(extraction.FieldCanonicalPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(extraction.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(extraction.FieldMetadata, field.TypeJSON)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
