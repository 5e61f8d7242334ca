// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// ProcessingStateCreate is the builder for creating a ProcessingState entity.
type ProcessingStateCreate struct {
	config
	mutation *ProcessingStateMutation
	hooks    []Hook
}

// SetRawMessageID sets the "raw_message_id" field.
func (_c *ProcessingStateCreate) SetRawMessageID(v int) *ProcessingStateCreate {
	_c.mutation.SetRawMessageID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingStateCreate) SetStatus(v processingstate.Status) *ProcessingStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableStatus(v *processingstate.Status) *ProcessingStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *ProcessingStateCreate) SetAttemptCount(v int) *ProcessingStateCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableAttemptCount(v *int) *ProcessingStateCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_c *ProcessingStateCreate) SetLastAttemptedAt(v time.Time) *ProcessingStateCreate {
	_c.mutation.SetLastAttemptedAt(v)
	return _c
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableLastAttemptedAt(v *time.Time) *ProcessingStateCreate {
	if v != nil {
		_c.SetLastAttemptedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingStateCreate) SetCompletedAt(v time.Time) *ProcessingStateCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableCompletedAt(v *time.Time) *ProcessingStateCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_c *ProcessingStateCreate) SetLeaseExpiresAt(v time.Time) *ProcessingStateCreate {
	_c.mutation.SetLeaseExpiresAt(v)
	return _c
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingStateCreate {
	if v != nil {
		_c.SetLeaseExpiresAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ProcessingStateCreate) SetLastError(v string) *ProcessingStateCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableLastError(v *string) *ProcessingStateCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_c *ProcessingStateCreate) SetProcessingRunID(v string) *ProcessingStateCreate {
	_c.mutation.SetProcessingRunID(v)
	return _c
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_c *ProcessingStateCreate) SetNillableProcessingRunID(v *string) *ProcessingStateCreate {
	if v != nil {
		_c.SetProcessingRunID(*v)
	}
	return _c
}

// SetRawMessage sets the "raw_message" edge to the RawMessage entity.
func (_c *ProcessingStateCreate) SetRawMessage(v *RawMessage) *ProcessingStateCreate {
	return _c.SetRawMessageID(v.ID)
}

// Mutation returns the ProcessingStateMutation object of the builder.
func (_c *ProcessingStateCreate) Mutation() *ProcessingStateMutation {
	return _c.mutation
}

// Save creates the ProcessingState in the database.
func (_c *ProcessingStateCreate) Save(ctx context.Context) (*ProcessingState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingStateCreate) SaveX(ctx context.Context) *ProcessingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processingstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := processingstate.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingStateCreate) check() error {
	if _, ok := _c.mutation.RawMessageID(); !ok {
		return &ValidationError{Name: "raw_message_id", err: errors.New(`ent: missing required field "ProcessingState.raw_message_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "ProcessingState.attempt_count"`)}
	}
	if len(_c.mutation.RawMessageIDs()) == 0 {
		return &ValidationError{Name: "raw_message", err: errors.New(`ent: missing required edge "ProcessingState.raw_message"`)}
	}
	return nil
}

func (_c *ProcessingStateCreate) sqlSave(ctx context.Context) (*ProcessingState, error) {
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

func (_c *ProcessingStateCreate) createSpec() (*ProcessingState, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingstate.Table, sqlgraph.NewFieldSpec(processingstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(processingstate.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.LastAttemptedAt(); ok {
		_spec.SetField(processingstate.FieldLastAttemptedAt, field.TypeTime, value)
		_node.LastAttemptedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processingstate.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingstate.FieldLeaseExpiresAt, field.TypeTime, value)
		_node.LeaseExpiresAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(processingstate.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.ProcessingRunID(); ok {
		_spec.SetField(processingstate.FieldProcessingRunID, field.TypeString, value)
		_node.ProcessingRunID = &value
	}
	if nodes := _c.mutation.RawMessageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   processingstate.RawMessageTable,
			Columns: []string{processingstate.RawMessageColumn},
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

// ProcessingStateCreateBulk is the builder for creating many ProcessingState entities in bulk.
type ProcessingStateCreateBulk struct {
	config
	err      error
	builders []*ProcessingStateCreate
}

// Save creates the ProcessingState entities in the database.
func (_c *ProcessingStateCreateBulk) Save(ctx context.Context) ([]*ProcessingState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingStateMutation)
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
func (_c *ProcessingStateCreateBulk) SaveX(ctx context.Context) []*ProcessingState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
