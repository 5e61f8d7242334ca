// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RawMessageCreate is the builder for creating a RawMessage entity.
type RawMessageCreate struct {
	config
	mutation *RawMessageMutation
	hooks    []Hook
}

// SetSourceChannelID sets the "source_channel_id" field.
func (_c *RawMessageCreate) SetSourceChannelID(v string) *RawMessageCreate {
	_c.mutation.SetSourceChannelID(v)
	return _c
}

// SetSourceChannelName sets the "source_channel_name" field.
func (_c *RawMessageCreate) SetSourceChannelName(v string) *RawMessageCreate {
	_c.mutation.SetSourceChannelName(v)
	return _c
}

// SetNillableSourceChannelName sets the "source_channel_name" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableSourceChannelName(v *string) *RawMessageCreate {
	if v != nil {
		_c.SetSourceChannelName(*v)
	}
	return _c
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (_c *RawMessageCreate) SetUpstreamMessageID(v string) *RawMessageCreate {
	_c.mutation.SetUpstreamMessageID(v)
	return _c
}

// SetMessageTimestampUtc sets the "message_timestamp_utc" field.
func (_c *RawMessageCreate) SetMessageTimestampUtc(v time.Time) *RawMessageCreate {
	_c.mutation.SetMessageTimestampUtc(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *RawMessageCreate) SetRawText(v string) *RawMessageCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNormalizedText sets the "normalized_text" field.
func (_c *RawMessageCreate) SetNormalizedText(v string) *RawMessageCreate {
	_c.mutation.SetNormalizedText(v)
	return _c
}

// SetRawEntities sets the "raw_entities" field.
func (_c *RawMessageCreate) SetRawEntities(v map[string]interface{}) *RawMessageCreate {
	_c.mutation.SetRawEntities(v)
	return _c
}

// SetForwardedFrom sets the "forwarded_from" field.
func (_c *RawMessageCreate) SetForwardedFrom(v string) *RawMessageCreate {
	_c.mutation.SetForwardedFrom(v)
	return _c
}

// SetNillableForwardedFrom sets the "forwarded_from" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableForwardedFrom(v *string) *RawMessageCreate {
	if v != nil {
		_c.SetForwardedFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawMessageCreate) SetCreatedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableCreatedAt(v *time.Time) *RawMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID.
func (_c *RawMessageCreate) SetProcessingStateID(id int) *RawMessageCreate {
	_c.mutation.SetProcessingStateID(id)
	return _c
}

// SetNillableProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID if the given value is not nil.
func (_c *RawMessageCreate) SetNillableProcessingStateID(id *int) *RawMessageCreate {
	if id != nil {
		_c = _c.SetProcessingStateID(*id)
	}
	return _c
}

// SetProcessingState sets the "processing_state" edge to the ProcessingState entity.
func (_c *RawMessageCreate) SetProcessingState(v *ProcessingState) *RawMessageCreate {
	return _c.SetProcessingStateID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the Extraction entity by ID.
func (_c *RawMessageCreate) SetExtractionID(id int) *RawMessageCreate {
	_c.mutation.SetExtractionID(id)
	return _c
}

// SetNillableExtractionID sets the "extraction" edge to the Extraction entity by ID if the given value is not nil.
func (_c *RawMessageCreate) SetNillableExtractionID(id *int) *RawMessageCreate {
	if id != nil {
		_c = _c.SetExtractionID(*id)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_c *RawMessageCreate) SetExtraction(v *Extraction) *RawMessageCreate {
	return _c.SetExtractionID(v.ID)
}

// SetRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID.
func (_c *RawMessageCreate) SetRoutingDecisionID(id int) *RawMessageCreate {
	_c.mutation.SetRoutingDecisionID(id)
	return _c
}

// SetNillableRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID if the given value is not nil.
func (_c *RawMessageCreate) SetNillableRoutingDecisionID(id *int) *RawMessageCreate {
	if id != nil {
		_c = _c.SetRoutingDecisionID(*id)
	}
	return _c
}

// SetRoutingDecision sets the "routing_decision" edge to the RoutingDecision entity.
func (_c *RawMessageCreate) SetRoutingDecision(v *RoutingDecision) *RawMessageCreate {
	return _c.SetRoutingDecisionID(v.ID)
}

// AddEventLinkIDs adds the "event_links" edge to the EventMessage entity by IDs.
func (_c *RawMessageCreate) AddEventLinkIDs(ids ...int) *RawMessageCreate {
	_c.mutation.AddEventLinkIDs(ids...)
	return _c
}

// AddEventLinks adds the "event_links" edges to the EventMessage entity.
func (_c *RawMessageCreate) AddEventLinks(v ...*EventMessage) *RawMessageCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventLinkIDs(ids...)
}

// AddEntityMentionIDs adds the "entity_mentions" edge to the EntityMention entity by IDs.
func (_c *RawMessageCreate) AddEntityMentionIDs(ids ...int) *RawMessageCreate {
	_c.mutation.AddEntityMentionIDs(ids...)
	return _c
}

// AddEntityMentions adds the "entity_mentions" edges to the EntityMention entity.
func (_c *RawMessageCreate) AddEntityMentions(v ...*EntityMention) *RawMessageCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEntityMentionIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_c *RawMessageCreate) Mutation() *RawMessageMutation {
	return _c.mutation
}

// Save creates the RawMessage in the database.
func (_c *RawMessageCreate) Save(ctx context.Context) (*RawMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawMessageCreate) SaveX(ctx context.Context) *RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawMessageCreate) check() error {
	if _, ok := _c.mutation.SourceChannelID(); !ok {
		return &ValidationError{Name: "source_channel_id", err: errors.New(`ent: missing required field "RawMessage.source_channel_id"`)}
	}
	if _, ok := _c.mutation.UpstreamMessageID(); !ok {
		return &ValidationError{Name: "upstream_message_id", err: errors.New(`ent: missing required field "RawMessage.upstream_message_id"`)}
	}
	if _, ok := _c.mutation.MessageTimestampUtc(); !ok {
		return &ValidationError{Name: "message_timestamp_utc", err: errors.New(`ent: missing required field "RawMessage.message_timestamp_utc"`)}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "RawMessage.raw_text"`)}
	}
	if _, ok := _c.mutation.NormalizedText(); !ok {
		return &ValidationError{Name: "normalized_text", err: errors.New(`ent: missing required field "RawMessage.normalized_text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawMessage.created_at"`)}
	}
	return nil
}

func (_c *RawMessageCreate) sqlSave(ctx context.Context) (*RawMessage, error) {
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

func (_c *RawMessageCreate) createSpec() (*RawMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &RawMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawmessage.Table, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceChannelID(); ok {
		_spec.SetField(rawmessage.FieldSourceChannelID, field.TypeString, value)
		_node.SourceChannelID = value
	}
	if value, ok := _c.mutation.SourceChannelName(); ok {
		_spec.SetField(rawmessage.FieldSourceChannelName, field.TypeString, value)
		_node.SourceChannelName = &value
	}
	if value, ok := _c.mutation.UpstreamMessageID(); ok {
		_spec.SetField(rawmessage.FieldUpstreamMessageID, field.TypeString, value)
		_node.UpstreamMessageID = value
	}
	if value, ok := _c.mutation.MessageTimestampUtc(); ok {
		_spec.SetField(rawmessage.FieldMessageTimestampUtc, field.TypeTime, value)
		_node.MessageTimestampUtc = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(rawmessage.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.NormalizedText(); ok {
		_spec.SetField(rawmessage.FieldNormalizedText, field.TypeString, value)
		_node.NormalizedText = value
	}
	if value, ok := _c.mutation.RawEntities(); ok {
		_spec.SetField(rawmessage.FieldRawEntities, field.TypeJSON, value)
		_node.RawEntities = value
	}
	if value, ok := _c.mutation.ForwardedFrom(); ok {
		_spec.SetField(rawmessage.FieldForwardedFrom, field.TypeString, value)
		_node.ForwardedFrom = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProcessingStateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   rawmessage.ProcessingStateTable,
			Columns: []string{rawmessage.ProcessingStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingstate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   rawmessage.ExtractionTable,
			Columns: []string{rawmessage.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoutingDecisionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   rawmessage.RoutingDecisionTable,
			Columns: []string{rawmessage.RoutingDecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.EventLinksTable,
			Columns: []string{rawmessage.EventLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EntityMentionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.EntityMentionsTable,
			Columns: []string{rawmessage.EntityMentionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RawMessageCreateBulk is the builder for creating many RawMessage entities in bulk.
type RawMessageCreateBulk struct {
	config
	err      error
	builders []*RawMessageCreate
}

// Save creates the RawMessage entities in the database.
func (_c *RawMessageCreateBulk) Save(ctx context.Context) ([]*RawMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawMessageMutation)
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
func (_c *RawMessageCreateBulk) SaveX(ctx context.Context) []*RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
