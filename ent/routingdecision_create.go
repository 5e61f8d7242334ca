// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RoutingDecisionCreate is the builder for creating a RoutingDecision entity.
type RoutingDecisionCreate struct {
	config
	mutation *RoutingDecisionMutation
	hooks    []Hook
}

// SetRawMessageID sets the "raw_message_id" field.
func (_c *RoutingDecisionCreate) SetRawMessageID(v int) *RoutingDecisionCreate {
	_c.mutation.SetRawMessageID(v)
	return _c
}

// SetStoreTo sets the "store_to" field.
func (_c *RoutingDecisionCreate) SetStoreTo(v []string) *RoutingDecisionCreate {
	_c.mutation.SetStoreTo(v)
	return _c
}

// SetPublishPriority sets the "publish_priority" field.
func (_c *RoutingDecisionCreate) SetPublishPriority(v string) *RoutingDecisionCreate {
	_c.mutation.SetPublishPriority(v)
	return _c
}

// SetRequiresEvidence sets the "requires_evidence" field.
func (_c *RoutingDecisionCreate) SetRequiresEvidence(v bool) *RoutingDecisionCreate {
	_c.mutation.SetRequiresEvidence(v)
	return _c
}

// SetNillableRequiresEvidence sets the "requires_evidence" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableRequiresEvidence(v *bool) *RoutingDecisionCreate {
	if v != nil {
		_c.SetRequiresEvidence(*v)
	}
	return _c
}

// SetEventAction sets the "event_action" field.
func (_c *RoutingDecisionCreate) SetEventAction(v string) *RoutingDecisionCreate {
	_c.mutation.SetEventAction(v)
	return _c
}

// SetTriageAction sets the "triage_action" field.
func (_c *RoutingDecisionCreate) SetTriageAction(v string) *RoutingDecisionCreate {
	_c.mutation.SetTriageAction(v)
	return _c
}

// SetNillableTriageAction sets the "triage_action" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableTriageAction(v *string) *RoutingDecisionCreate {
	if v != nil {
		_c.SetTriageAction(*v)
	}
	return _c
}

// SetTriageRules sets the "triage_rules" field.
func (_c *RoutingDecisionCreate) SetTriageRules(v []string) *RoutingDecisionCreate {
	_c.mutation.SetTriageRules(v)
	return _c
}

// SetFlags sets the "flags" field.
func (_c *RoutingDecisionCreate) SetFlags(v []string) *RoutingDecisionCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetRulesFired sets the "rules_fired" field.
func (_c *RoutingDecisionCreate) SetRulesFired(v []string) *RoutingDecisionCreate {
	_c.mutation.SetRulesFired(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutingDecisionCreate) SetCreatedAt(v time.Time) *RoutingDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableCreatedAt(v *time.Time) *RoutingDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRawMessage sets the "raw_message" edge to the RawMessage entity.
func (_c *RoutingDecisionCreate) SetRawMessage(v *RawMessage) *RoutingDecisionCreate {
	return _c.SetRawMessageID(v.ID)
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_c *RoutingDecisionCreate) Mutation() *RoutingDecisionMutation {
	return _c.mutation
}

// Save creates the RoutingDecision in the database.
func (_c *RoutingDecisionCreate) Save(ctx context.Context) (*RoutingDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingDecisionCreate) SaveX(ctx context.Context) *RoutingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingDecisionCreate) defaults() {
	if _, ok := _c.mutation.RequiresEvidence(); !ok {
		v := routingdecision.DefaultRequiresEvidence
		_c.mutation.SetRequiresEvidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routingdecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingDecisionCreate) check() error {
	if _, ok := _c.mutation.RawMessageID(); !ok {
		return &ValidationError{Name: "raw_message_id", err: errors.New(`ent: missing required field "RoutingDecision.raw_message_id"`)}
	}
	if _, ok := _c.mutation.StoreTo(); !ok {
		return &ValidationError{Name: "store_to", err: errors.New(`ent: missing required field "RoutingDecision.store_to"`)}
	}
	if _, ok := _c.mutation.PublishPriority(); !ok {
		return &ValidationError{Name: "publish_priority", err: errors.New(`ent: missing required field "RoutingDecision.publish_priority"`)}
	}
	if v, ok := _c.mutation.PublishPriority(); ok {
		if err := routingdecision.PublishPriorityValidator(v); err != nil {
			return &ValidationError{Name: "publish_priority", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.publish_priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresEvidence(); !ok {
		return &ValidationError{Name: "requires_evidence", err: errors.New(`ent: missing required field "RoutingDecision.requires_evidence"`)}
	}
	if _, ok := _c.mutation.EventAction(); !ok {
		return &ValidationError{Name: "event_action", err: errors.New(`ent: missing required field "RoutingDecision.event_action"`)}
	}
	if v, ok := _c.mutation.EventAction(); ok {
		if err := routingdecision.EventActionValidator(v); err != nil {
			return &ValidationError{Name: "event_action", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.event_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutingDecision.created_at"`)}
	}
	if len(_c.mutation.RawMessageIDs()) == 0 {
		return &ValidationError{Name: "raw_message", err: errors.New(`ent: missing required edge "RoutingDecision.raw_message"`)}
	}
	return nil
}

func (_c *RoutingDecisionCreate) sqlSave(ctx context.Context) (*RoutingDecision, error) {
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

func (_c *RoutingDecisionCreate) createSpec() (*RoutingDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingdecision.Table, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StoreTo(); ok {
		_spec.SetField(routingdecision.FieldStoreTo, field.TypeJSON, value)
		_node.StoreTo = value
	}
	if value, ok := _c.mutation.PublishPriority(); ok {
		_spec.SetField(routingdecision.FieldPublishPriority, field.TypeString, value)
		_node.PublishPriority = value
	}
	if value, ok := _c.mutation.RequiresEvidence(); ok {
		_spec.SetField(routingdecision.FieldRequiresEvidence, field.TypeBool, value)
		_node.RequiresEvidence = value
	}
	if value, ok := _c.mutation.EventAction(); ok {
		_spec.SetField(routingdecision.FieldEventAction, field.TypeString, value)
		_node.EventAction = value
	}
	if value, ok := _c.mutation.TriageAction(); ok {
		_spec.SetField(routingdecision.FieldTriageAction, field.TypeString, value)
		_node.TriageAction = &value
	}
	if value, ok := _c.mutation.TriageRules(); ok {
		_spec.SetField(routingdecision.FieldTriageRules, field.TypeJSON, value)
		_node.TriageRules = value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(routingdecision.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.RulesFired(); ok {
		_spec.SetField(routingdecision.FieldRulesFired, field.TypeJSON, value)
		_node.RulesFired = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routingdecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RawMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   routingdecision.RawMessageTable,
			Columns: []string{routingdecision.RawMessageColumn},
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

// RoutingDecisionCreateBulk is the builder for creating many RoutingDecision entities in bulk.
type RoutingDecisionCreateBulk struct {
	config
	err      error
	builders []*RoutingDecisionCreate
}

// Save creates the RoutingDecision entities in the database.
func (_c *RoutingDecisionCreateBulk) Save(ctx context.Context) ([]*RoutingDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingDecisionMutation)
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
func (_c *RoutingDecisionCreateBulk) SaveX(ctx context.Context) []*RoutingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
