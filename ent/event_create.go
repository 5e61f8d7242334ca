// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_c *EventCreate) SetEventFingerprint(v string) *EventCreate {
	_c.mutation.SetEventFingerprint(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *EventCreate) SetTopic(v string) *EventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *EventCreate) SetNillableTopic(v *string) *EventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *EventCreate) SetSummary(v string) *EventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *EventCreate) SetNillableSummary(v *string) *EventCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetImpactScore sets the "impact_score" field.
func (_c *EventCreate) SetImpactScore(v float64) *EventCreate {
	_c.mutation.SetImpactScore(v)
	return _c
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_c *EventCreate) SetNillableImpactScore(v *float64) *EventCreate {
	if v != nil {
		_c.SetImpactScore(*v)
	}
	return _c
}

// SetIsBreaking sets the "is_breaking" field.
func (_c *EventCreate) SetIsBreaking(v bool) *EventCreate {
	_c.mutation.SetIsBreaking(v)
	return _c
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_c *EventCreate) SetNillableIsBreaking(v *bool) *EventCreate {
	if v != nil {
		_c.SetIsBreaking(*v)
	}
	return _c
}

// SetBreakingWindow sets the "breaking_window" field.
func (_c *EventCreate) SetBreakingWindow(v string) *EventCreate {
	_c.mutation.SetBreakingWindow(v)
	return _c
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_c *EventCreate) SetNillableBreakingWindow(v *string) *EventCreate {
	if v != nil {
		_c.SetBreakingWindow(*v)
	}
	return _c
}

// SetEventTime sets the "event_time" field.
func (_c *EventCreate) SetEventTime(v time.Time) *EventCreate {
	_c.mutation.SetEventTime(v)
	return _c
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventTime(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetEventTime(*v)
	}
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *EventCreate) SetLastUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableLastUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// SetLatestExtractionID sets the "latest_extraction_id" field.
func (_c *EventCreate) SetLatestExtractionID(v int) *EventCreate {
	_c.mutation.SetLatestExtractionID(v)
	return _c
}

// SetNillableLatestExtractionID sets the "latest_extraction_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableLatestExtractionID(v *int) *EventCreate {
	if v != nil {
		_c.SetLatestExtractionID(*v)
	}
	return _c
}

// AddMessageLinkIDs adds the "message_links" edge to the EventMessage entity by IDs.
func (_c *EventCreate) AddMessageLinkIDs(ids ...int) *EventCreate {
	_c.mutation.AddMessageLinkIDs(ids...)
	return _c
}

// AddMessageLinks adds the "message_links" edges to the EventMessage entity.
func (_c *EventCreate) AddMessageLinks(v ...*EventMessage) *EventCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.IsBreaking(); !ok {
		v := event.DefaultIsBreaking
		_c.mutation.SetIsBreaking(v)
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := event.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.EventFingerprint(); !ok {
		return &ValidationError{Name: "event_fingerprint", err: errors.New(`ent: missing required field "Event.event_fingerprint"`)}
	}
	if v, ok := _c.mutation.EventFingerprint(); ok {
		if err := event.EventFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "event_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Event.event_fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsBreaking(); !ok {
		return &ValidationError{Name: "is_breaking", err: errors.New(`ent: missing required field "Event.is_breaking"`)}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "Event.last_updated_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventFingerprint(); ok {
		_spec.SetField(event.FieldEventFingerprint, field.TypeString, value)
		_node.EventFingerprint = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(event.FieldTopic, field.TypeString, value)
		_node.Topic = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ImpactScore(); ok {
		_spec.SetField(event.FieldImpactScore, field.TypeFloat64, value)
		_node.ImpactScore = &value
	}
	if value, ok := _c.mutation.IsBreaking(); ok {
		_spec.SetField(event.FieldIsBreaking, field.TypeBool, value)
		_node.IsBreaking = value
	}
	if value, ok := _c.mutation.BreakingWindow(); ok {
		_spec.SetField(event.FieldBreakingWindow, field.TypeString, value)
		_node.BreakingWindow = &value
	}
	if value, ok := _c.mutation.EventTime(); ok {
		_spec.SetField(event.FieldEventTime, field.TypeTime, value)
		_node.EventTime = &value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(event.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	if value, ok := _c.mutation.LatestExtractionID(); ok {
		_spec.SetField(event.FieldLatestExtractionID, field.TypeInt, value)
		_node.LatestExtractionID = &value
	}
	if nodes := _c.mutation.MessageLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
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
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
