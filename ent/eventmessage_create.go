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
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// EventMessageCreate is the builder for creating a EventMessage entity.
type EventMessageCreate struct {
	config
	mutation *EventMessageMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *EventMessageCreate) SetEventID(v int) *EventMessageCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRawMessageID sets the "raw_message_id" field.
func (_c *EventMessageCreate) SetRawMessageID(v int) *EventMessageCreate {
	_c.mutation.SetRawMessageID(v)
	return _c
}

// SetLinkedAt sets the "linked_at" field.
func (_c *EventMessageCreate) SetLinkedAt(v time.Time) *EventMessageCreate {
	_c.mutation.SetLinkedAt(v)
	return _c
}

// SetNillableLinkedAt sets the "linked_at" field if the given value is not nil.
func (_c *EventMessageCreate) SetNillableLinkedAt(v *time.Time) *EventMessageCreate {
	if v != nil {
		_c.SetLinkedAt(*v)
	}
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *EventMessageCreate) SetEvent(v *Event) *EventMessageCreate {
	return _c.SetEventID(v.ID)
}

// SetRawMessage sets the "raw_message" edge to the RawMessage entity.
func (_c *EventMessageCreate) SetRawMessage(v *RawMessage) *EventMessageCreate {
	return _c.SetRawMessageID(v.ID)
}

// Mutation returns the EventMessageMutation object of the builder.
func (_c *EventMessageCreate) Mutation() *EventMessageMutation {
	return _c.mutation
}

// Save creates the EventMessage in the database.
func (_c *EventMessageCreate) Save(ctx context.Context) (*EventMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventMessageCreate) SaveX(ctx context.Context) *EventMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventMessageCreate) defaults() {
	if _, ok := _c.mutation.LinkedAt(); !ok {
		v := eventmessage.DefaultLinkedAt()
		_c.mutation.SetLinkedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventMessageCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EventMessage.event_id"`)}
	}
	if _, ok := _c.mutation.RawMessageID(); !ok {
		return &ValidationError{Name: "raw_message_id", err: errors.New(`ent: missing required field "EventMessage.raw_message_id"`)}
	}
	if _, ok := _c.mutation.LinkedAt(); !ok {
		return &ValidationError{Name: "linked_at", err: errors.New(`ent: missing required field "EventMessage.linked_at"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "EventMessage.event"`)}
	}
	if len(_c.mutation.RawMessageIDs()) == 0 {
		return &ValidationError{Name: "raw_message", err: errors.New(`ent: missing required edge "EventMessage.raw_message"`)}
	}
	return nil
}

func (_c *EventMessageCreate) sqlSave(ctx context.Context) (*EventMessage, error) {
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

func (_c *EventMessageCreate) createSpec() (*EventMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &EventMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventmessage.Table, sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LinkedAt(); ok {
		_spec.SetField(eventmessage.FieldLinkedAt, field.TypeTime, value)
		_node.LinkedAt = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventmessage.EventTable,
			Columns: []string{eventmessage.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RawMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   eventmessage.RawMessageTable,
			Columns: []string{eventmessage.RawMessageColumn},
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

// EventMessageCreateBulk is the builder for creating many EventMessage entities in bulk.
type EventMessageCreateBulk struct {
	config
	err      error
	builders []*EventMessageCreate
}

// Save creates the EventMessage entities in the database.
func (_c *EventMessageCreateBulk) Save(ctx context.Context) ([]*EventMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMessageMutation)
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
func (_c *EventMessageCreateBulk) SaveX(ctx context.Context) []*EventMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
