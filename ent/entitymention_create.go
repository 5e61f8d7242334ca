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
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// EntityMentionCreate is the builder for creating a EntityMention entity.
type EntityMentionCreate struct {
	config
	mutation *EntityMentionMutation
	hooks    []Hook
}

// SetRawMessageID sets the "raw_message_id" field.
func (_c *EntityMentionCreate) SetRawMessageID(v int) *EntityMentionCreate {
	_c.mutation.SetRawMessageID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *EntityMentionCreate) SetEventID(v int) *EntityMentionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableEventID(v *int) *EntityMentionCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityMentionCreate) SetEntityType(v string) *EntityMentionCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityValue sets the "entity_value" field.
func (_c *EntityMentionCreate) SetEntityValue(v string) *EntityMentionCreate {
	_c.mutation.SetEntityValue(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *EntityMentionCreate) SetTopic(v string) *EntityMentionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableTopic(v *string) *EntityMentionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetIsBreaking sets the "is_breaking" field.
func (_c *EntityMentionCreate) SetIsBreaking(v bool) *EntityMentionCreate {
	_c.mutation.SetIsBreaking(v)
	return _c
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableIsBreaking(v *bool) *EntityMentionCreate {
	if v != nil {
		_c.SetIsBreaking(*v)
	}
	return _c
}

// SetEventTime sets the "event_time" field.
func (_c *EntityMentionCreate) SetEventTime(v time.Time) *EntityMentionCreate {
	_c.mutation.SetEventTime(v)
	return _c
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableEventTime(v *time.Time) *EntityMentionCreate {
	if v != nil {
		_c.SetEventTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntityMentionCreate) SetCreatedAt(v time.Time) *EntityMentionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntityMentionCreate) SetNillableCreatedAt(v *time.Time) *EntityMentionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRawMessage sets the "raw_message" edge to the RawMessage entity.
func (_c *EntityMentionCreate) SetRawMessage(v *RawMessage) *EntityMentionCreate {
	return _c.SetRawMessageID(v.ID)
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_c *EntityMentionCreate) Mutation() *EntityMentionMutation {
	return _c.mutation
}

// Save creates the EntityMention in the database.
func (_c *EntityMentionCreate) Save(ctx context.Context) (*EntityMention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityMentionCreate) SaveX(ctx context.Context) *EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityMentionCreate) defaults() {
	if _, ok := _c.mutation.IsBreaking(); !ok {
		v := entitymention.DefaultIsBreaking
		_c.mutation.SetIsBreaking(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entitymention.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityMentionCreate) check() error {
	if _, ok := _c.mutation.RawMessageID(); !ok {
		return &ValidationError{Name: "raw_message_id", err: errors.New(`ent: missing required field "EntityMention.raw_message_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityMention.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := entitymention.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "EntityMention.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityValue(); !ok {
		return &ValidationError{Name: "entity_value", err: errors.New(`ent: missing required field "EntityMention.entity_value"`)}
	}
	if _, ok := _c.mutation.IsBreaking(); !ok {
		return &ValidationError{Name: "is_breaking", err: errors.New(`ent: missing required field "EntityMention.is_breaking"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EntityMention.created_at"`)}
	}
	if len(_c.mutation.RawMessageIDs()) == 0 {
		return &ValidationError{Name: "raw_message", err: errors.New(`ent: missing required edge "EntityMention.raw_message"`)}
	}
	return nil
}

func (_c *EntityMentionCreate) sqlSave(ctx context.Context) (*EntityMention, error) {
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

func (_c *EntityMentionCreate) createSpec() (*EntityMention, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityMention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitymention.Table, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(entitymention.FieldEventID, field.TypeInt, value)
		_node.EventID = &value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitymention.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityValue(); ok {
		_spec.SetField(entitymention.FieldEntityValue, field.TypeString, value)
		_node.EntityValue = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(entitymention.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.IsBreaking(); ok {
		_spec.SetField(entitymention.FieldIsBreaking, field.TypeBool, value)
		_node.IsBreaking = value
	}
	if value, ok := _c.mutation.EventTime(); ok {
		_spec.SetField(entitymention.FieldEventTime, field.TypeTime, value)
		_node.EventTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entitymention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RawMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitymention.RawMessageTable,
			Columns: []string{entitymention.RawMessageColumn},
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

// EntityMentionCreateBulk is the builder for creating many EntityMention entities in bulk.
type EntityMentionCreateBulk struct {
	config
	err      error
	builders []*EntityMentionCreate
}

// Save creates the EntityMention entities in the database.
func (_c *EntityMentionCreateBulk) Save(ctx context.Context) ([]*EntityMention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityMention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMentionMutation)
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
func (_c *EntityMentionCreateBulk) SaveX(ctx context.Context) []*EntityMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMentionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMentionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
