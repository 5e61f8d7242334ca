// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/predicate"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RawMessageUpdate is the builder for updating RawMessage entities.
type RawMessageUpdate struct {
	config
	hooks    []Hook
	mutation *RawMessageMutation
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdate) Where(ps ...predicate.RawMessage) *RawMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID.
func (_u *RawMessageUpdate) SetProcessingStateID(id int) *RawMessageUpdate {
	_u.mutation.SetProcessingStateID(id)
	return _u
}

// SetNillableProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableProcessingStateID(id *int) *RawMessageUpdate {
	if id != nil {
		_u = _u.SetProcessingStateID(*id)
	}
	return _u
}

// SetProcessingState sets the "processing_state" edge to the ProcessingState entity.
func (_u *RawMessageUpdate) SetProcessingState(v *ProcessingState) *RawMessageUpdate {
	return _u.SetProcessingStateID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the Extraction entity by ID.
func (_u *RawMessageUpdate) SetExtractionID(id int) *RawMessageUpdate {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the Extraction entity by ID if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableExtractionID(id *int) *RawMessageUpdate {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *RawMessageUpdate) SetExtraction(v *Extraction) *RawMessageUpdate {
	return _u.SetExtractionID(v.ID)
}

// SetRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID.
func (_u *RawMessageUpdate) SetRoutingDecisionID(id int) *RawMessageUpdate {
	_u.mutation.SetRoutingDecisionID(id)
	return _u
}

// SetNillableRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableRoutingDecisionID(id *int) *RawMessageUpdate {
	if id != nil {
		_u = _u.SetRoutingDecisionID(*id)
	}
	return _u
}

// SetRoutingDecision sets the "routing_decision" edge to the RoutingDecision entity.
func (_u *RawMessageUpdate) SetRoutingDecision(v *RoutingDecision) *RawMessageUpdate {
	return _u.SetRoutingDecisionID(v.ID)
}

// AddEventLinkIDs adds the "event_links" edge to the EventMessage entity by IDs.
func (_u *RawMessageUpdate) AddEventLinkIDs(ids ...int) *RawMessageUpdate {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the EventMessage entity.
func (_u *RawMessageUpdate) AddEventLinks(v ...*EventMessage) *RawMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// AddEntityMentionIDs adds the "entity_mentions" edge to the EntityMention entity by IDs.
func (_u *RawMessageUpdate) AddEntityMentionIDs(ids ...int) *RawMessageUpdate {
	_u.mutation.AddEntityMentionIDs(ids...)
	return _u
}

// AddEntityMentions adds the "entity_mentions" edges to the EntityMention entity.
func (_u *RawMessageUpdate) AddEntityMentions(v ...*EntityMention) *RawMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityMentionIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdate) Mutation() *RawMessageMutation {
	return _u.mutation
}

// ClearProcessingState clears the "processing_state" edge to the ProcessingState entity.
func (_u *RawMessageUpdate) ClearProcessingState() *RawMessageUpdate {
	_u.mutation.ClearProcessingState()
	return _u
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *RawMessageUpdate) ClearExtraction() *RawMessageUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearRoutingDecision clears the "routing_decision" edge to the RoutingDecision entity.
func (_u *RawMessageUpdate) ClearRoutingDecision() *RawMessageUpdate {
	_u.mutation.ClearRoutingDecision()
	return _u
}

// ClearEventLinks clears all "event_links" edges to the EventMessage entity.
func (_u *RawMessageUpdate) ClearEventLinks() *RawMessageUpdate {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to EventMessage entities by IDs.
func (_u *RawMessageUpdate) RemoveEventLinkIDs(ids ...int) *RawMessageUpdate {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to EventMessage entities.
func (_u *RawMessageUpdate) RemoveEventLinks(v ...*EventMessage) *RawMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// ClearEntityMentions clears all "entity_mentions" edges to the EntityMention entity.
func (_u *RawMessageUpdate) ClearEntityMentions() *RawMessageUpdate {
	_u.mutation.ClearEntityMentions()
	return _u
}

// RemoveEntityMentionIDs removes the "entity_mentions" edge to EntityMention entities by IDs.
func (_u *RawMessageUpdate) RemoveEntityMentionIDs(ids ...int) *RawMessageUpdate {
	_u.mutation.RemoveEntityMentionIDs(ids...)
	return _u
}

// RemoveEntityMentions removes "entity_mentions" edges to EntityMention entities.
func (_u *RawMessageUpdate) RemoveEntityMentions(v ...*EntityMention) *RawMessageUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityMentionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceChannelNameCleared() {
		_spec.ClearField(rawmessage.FieldSourceChannelName, field.TypeString)
	}
	if _u.mutation.RawEntitiesCleared() {
		_spec.ClearField(rawmessage.FieldRawEntities, field.TypeJSON)
	}
	if _u.mutation.ForwardedFromCleared() {
		_spec.ClearField(rawmessage.FieldForwardedFrom, field.TypeString)
	}
	if _u.mutation.ProcessingStateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingStateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutingDecisionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutingDecisionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntityMentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityMentionsIDs(); len(nodes) > 0 && !_u.mutation.EntityMentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityMentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawMessageUpdateOne is the builder for updating a single RawMessage entity.
type RawMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawMessageMutation
}

// SetProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID.
func (_u *RawMessageUpdateOne) SetProcessingStateID(id int) *RawMessageUpdateOne {
	_u.mutation.SetProcessingStateID(id)
	return _u
}

// SetNillableProcessingStateID sets the "processing_state" edge to the ProcessingState entity by ID if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableProcessingStateID(id *int) *RawMessageUpdateOne {
	if id != nil {
		_u = _u.SetProcessingStateID(*id)
	}
	return _u
}

// SetProcessingState sets the "processing_state" edge to the ProcessingState entity.
func (_u *RawMessageUpdateOne) SetProcessingState(v *ProcessingState) *RawMessageUpdateOne {
	return _u.SetProcessingStateID(v.ID)
}

// SetExtractionID sets the "extraction" edge to the Extraction entity by ID.
func (_u *RawMessageUpdateOne) SetExtractionID(id int) *RawMessageUpdateOne {
	_u.mutation.SetExtractionID(id)
	return _u
}

// SetNillableExtractionID sets the "extraction" edge to the Extraction entity by ID if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableExtractionID(id *int) *RawMessageUpdateOne {
	if id != nil {
		_u = _u.SetExtractionID(*id)
	}
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *RawMessageUpdateOne) SetExtraction(v *Extraction) *RawMessageUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// SetRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID.
func (_u *RawMessageUpdateOne) SetRoutingDecisionID(id int) *RawMessageUpdateOne {
	_u.mutation.SetRoutingDecisionID(id)
	return _u
}

// SetNillableRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by ID if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableRoutingDecisionID(id *int) *RawMessageUpdateOne {
	if id != nil {
		_u = _u.SetRoutingDecisionID(*id)
	}
	return _u
}

// SetRoutingDecision sets the "routing_decision" edge to the RoutingDecision entity.
func (_u *RawMessageUpdateOne) SetRoutingDecision(v *RoutingDecision) *RawMessageUpdateOne {
	return _u.SetRoutingDecisionID(v.ID)
}

// AddEventLinkIDs adds the "event_links" edge to the EventMessage entity by IDs.
func (_u *RawMessageUpdateOne) AddEventLinkIDs(ids ...int) *RawMessageUpdateOne {
	_u.mutation.AddEventLinkIDs(ids...)
	return _u
}

// AddEventLinks adds the "event_links" edges to the EventMessage entity.
func (_u *RawMessageUpdateOne) AddEventLinks(v ...*EventMessage) *RawMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventLinkIDs(ids...)
}

// AddEntityMentionIDs adds the "entity_mentions" edge to the EntityMention entity by IDs.
func (_u *RawMessageUpdateOne) AddEntityMentionIDs(ids ...int) *RawMessageUpdateOne {
	_u.mutation.AddEntityMentionIDs(ids...)
	return _u
}

// AddEntityMentions adds the "entity_mentions" edges to the EntityMention entity.
func (_u *RawMessageUpdateOne) AddEntityMentions(v ...*EntityMention) *RawMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEntityMentionIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdateOne) Mutation() *RawMessageMutation {
	return _u.mutation
}

// ClearProcessingState clears the "processing_state" edge to the ProcessingState entity.
func (_u *RawMessageUpdateOne) ClearProcessingState() *RawMessageUpdateOne {
	_u.mutation.ClearProcessingState()
	return _u
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *RawMessageUpdateOne) ClearExtraction() *RawMessageUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// ClearRoutingDecision clears the "routing_decision" edge to the RoutingDecision entity.
func (_u *RawMessageUpdateOne) ClearRoutingDecision() *RawMessageUpdateOne {
	_u.mutation.ClearRoutingDecision()
	return _u
}

// ClearEventLinks clears all "event_links" edges to the EventMessage entity.
func (_u *RawMessageUpdateOne) ClearEventLinks() *RawMessageUpdateOne {
	_u.mutation.ClearEventLinks()
	return _u
}

// RemoveEventLinkIDs removes the "event_links" edge to EventMessage entities by IDs.
func (_u *RawMessageUpdateOne) RemoveEventLinkIDs(ids ...int) *RawMessageUpdateOne {
	_u.mutation.RemoveEventLinkIDs(ids...)
	return _u
}

// RemoveEventLinks removes "event_links" edges to EventMessage entities.
func (_u *RawMessageUpdateOne) RemoveEventLinks(v ...*EventMessage) *RawMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventLinkIDs(ids...)
}

// ClearEntityMentions clears all "entity_mentions" edges to the EntityMention entity.
func (_u *RawMessageUpdateOne) ClearEntityMentions() *RawMessageUpdateOne {
	_u.mutation.ClearEntityMentions()
	return _u
}

// RemoveEntityMentionIDs removes the "entity_mentions" edge to EntityMention entities by IDs.
func (_u *RawMessageUpdateOne) RemoveEntityMentionIDs(ids ...int) *RawMessageUpdateOne {
	_u.mutation.RemoveEntityMentionIDs(ids...)
	return _u
}

// RemoveEntityMentions removes "entity_mentions" edges to EntityMention entities.
func (_u *RawMessageUpdateOne) RemoveEntityMentions(v ...*EntityMention) *RawMessageUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEntityMentionIDs(ids...)
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdateOne) Where(ps ...predicate.RawMessage) *RawMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawMessageUpdateOne) Select(field string, fields ...string) *RawMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawMessage entity.
func (_u *RawMessageUpdateOne) Save(ctx context.Context) (*RawMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdateOne) SaveX(ctx context.Context) *RawMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdateOne) sqlSave(ctx context.Context) (_node *RawMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawmessage.FieldID)
		for _, f := range fields {
			if !rawmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawmessage.FieldID {
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
	if _u.mutation.SourceChannelNameCleared() {
		_spec.ClearField(rawmessage.FieldSourceChannelName, field.TypeString)
	}
	if _u.mutation.RawEntitiesCleared() {
		_spec.ClearField(rawmessage.FieldRawEntities, field.TypeJSON)
	}
	if _u.mutation.ForwardedFromCleared() {
		_spec.ClearField(rawmessage.FieldForwardedFrom, field.TypeString)
	}
	if _u.mutation.ProcessingStateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingStateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutingDecisionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutingDecisionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventLinksIDs(); len(nodes) > 0 && !_u.mutation.EventLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EntityMentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEntityMentionsIDs(); len(nodes) > 0 && !_u.mutation.EntityMentionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EntityMentionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RawMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
