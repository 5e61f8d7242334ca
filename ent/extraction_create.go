// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
}

// SetRawMessageID sets the "raw_message_id" field.
func (_c *ExtractionCreate) SetRawMessageID(v int) *ExtractionCreate {
	_c.mutation.SetRawMessageID(v)
	return _c
}

// SetExtractorName sets the "extractor_name" field.
func (_c *ExtractionCreate) SetExtractorName(v string) *ExtractionCreate {
	_c.mutation.SetExtractorName(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *ExtractionCreate) SetSchemaVersion(v int) *ExtractionCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionCreate) SetModelName(v string) *ExtractionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableModelName(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetEventTime sets the "event_time" field.
func (_c *ExtractionCreate) SetEventTime(v time.Time) *ExtractionCreate {
	_c.mutation.SetEventTime(v)
	return _c
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableEventTime(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetEventTime(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ExtractionCreate) SetTopic(v string) *ExtractionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableTopic(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetImpactScore sets the "impact_score" field.
func (_c *ExtractionCreate) SetImpactScore(v float64) *ExtractionCreate {
	_c.mutation.SetImpactScore(v)
	return _c
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableImpactScore(v *float64) *ExtractionCreate {
	if v != nil {
		_c.SetImpactScore(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionCreate) SetConfidence(v float64) *ExtractionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableConfidence(v *float64) *ExtractionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSentiment sets the "sentiment" field.
func (_c *ExtractionCreate) SetSentiment(v string) *ExtractionCreate {
	_c.mutation.SetSentiment(v)
	return _c
}

// SetNillableSentiment sets the "sentiment" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableSentiment(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetSentiment(*v)
	}
	return _c
}

// SetIsBreaking sets the "is_breaking" field.
func (_c *ExtractionCreate) SetIsBreaking(v bool) *ExtractionCreate {
	_c.mutation.SetIsBreaking(v)
	return _c
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableIsBreaking(v *bool) *ExtractionCreate {
	if v != nil {
		_c.SetIsBreaking(*v)
	}
	return _c
}

// SetBreakingWindow sets the "breaking_window" field.
func (_c *ExtractionCreate) SetBreakingWindow(v string) *ExtractionCreate {
	_c.mutation.SetBreakingWindow(v)
	return _c
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableBreakingWindow(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetBreakingWindow(*v)
	}
	return _c
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_c *ExtractionCreate) SetEventFingerprint(v string) *ExtractionCreate {
	_c.mutation.SetEventFingerprint(v)
	return _c
}

// SetNillableEventFingerprint sets the "event_fingerprint" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableEventFingerprint(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetEventFingerprint(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ExtractionCreate) SetPromptVersion(v string) *ExtractionCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillablePromptVersion(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_c *ExtractionCreate) SetProcessingRunID(v string) *ExtractionCreate {
	_c.mutation.SetProcessingRunID(v)
	return _c
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableProcessingRunID(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetProcessingRunID(*v)
	}
	return _c
}

// SetLlmRawResponse sets the "llm_raw_response" field.
func (_c *ExtractionCreate) SetLlmRawResponse(v string) *ExtractionCreate {
	_c.mutation.SetLlmRawResponse(v)
	return _c
}

// SetNillableLlmRawResponse sets the "llm_raw_response" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableLlmRawResponse(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetLlmRawResponse(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *ExtractionCreate) SetValidatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableValidatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ExtractionCreate) SetPayload(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (_c *ExtractionCreate) SetCanonicalPayload(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetCanonicalPayload(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExtractionCreate) SetMetadata(v map[string]interface{}) *ExtractionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRawMessage sets the "raw_message" edge to the RawMessage entity.
func (_c *ExtractionCreate) SetRawMessage(v *RawMessage) *ExtractionCreate {
	return _c.SetRawMessageID(v.ID)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.IsBreaking(); !ok {
		v := extraction.DefaultIsBreaking
		_c.mutation.SetIsBreaking(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.RawMessageID(); !ok {
		return &ValidationError{Name: "raw_message_id", err: errors.New(`ent: missing required field "Extraction.raw_message_id"`)}
	}
	if _, ok := _c.mutation.ExtractorName(); !ok {
		return &ValidationError{Name: "extractor_name", err: errors.New(`ent: missing required field "Extraction.extractor_name"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Extraction.schema_version"`)}
	}
	if _, ok := _c.mutation.IsBreaking(); !ok {
		return &ValidationError{Name: "is_breaking", err: errors.New(`ent: missing required field "Extraction.is_breaking"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Extraction.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if len(_c.mutation.RawMessageIDs()) == 0 {
		return &ValidationError{Name: "raw_message", err: errors.New(`ent: missing required edge "Extraction.raw_message"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExtractorName(); ok {
		_spec.SetField(extraction.FieldExtractorName, field.TypeString, value)
		_node.ExtractorName = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(extraction.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extraction.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.EventTime(); ok {
		_spec.SetField(extraction.FieldEventTime, field.TypeTime, value)
		_node.EventTime = &value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(extraction.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ImpactScore(); ok {
		_spec.SetField(extraction.FieldImpactScore, field.TypeFloat64, value)
		_node.ImpactScore = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extraction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Sentiment(); ok {
		_spec.SetField(extraction.FieldSentiment, field.TypeString, value)
		_node.Sentiment = value
	}
	if value, ok := _c.mutation.IsBreaking(); ok {
		_spec.SetField(extraction.FieldIsBreaking, field.TypeBool, value)
		_node.IsBreaking = value
	}
	if value, ok := _c.mutation.BreakingWindow(); ok {
		_spec.SetField(extraction.FieldBreakingWindow, field.TypeString, value)
		_node.BreakingWindow = value
	}
	if value, ok := _c.mutation.EventFingerprint(); ok {
		_spec.SetField(extraction.FieldEventFingerprint, field.TypeString, value)
		_node.EventFingerprint = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(extraction.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.ProcessingRunID(); ok {
		_spec.SetField(extraction.FieldProcessingRunID, field.TypeString, value)
		_node.ProcessingRunID = value
	}
	if value, ok := _c.mutation.LlmRawResponse(); ok {
		_spec.SetField(extraction.FieldLlmRawResponse, field.TypeString, value)
		_node.LlmRawResponse = value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(extraction.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(extraction.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CanonicalPayload(); ok {
		_spec.SetField(extraction.FieldCanonicalPayload, field.TypeJSON, value)
		_node.CanonicalPayload = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(extraction.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RawMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   extraction.RawMessageTable,
			Columns: []string{extraction.RawMessageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RawMessageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
