// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/processinglock"
)

// ProcessingLockCreate is the builder for creating a ProcessingLock entity.
type ProcessingLockCreate struct {
	config
	mutation *ProcessingLockMutation
	hooks    []Hook
}

// SetLockName sets the "lock_name" field.
func (_c *ProcessingLockCreate) SetLockName(v string) *ProcessingLockCreate {
	_c.mutation.SetLockName(v)
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *ProcessingLockCreate) SetLockedUntil(v time.Time) *ProcessingLockCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetOwnerRunID sets the "owner_run_id" field.
func (_c *ProcessingLockCreate) SetOwnerRunID(v string) *ProcessingLockCreate {
	_c.mutation.SetOwnerRunID(v)
	return _c
}

// Mutation returns the ProcessingLockMutation object of the builder.
func (_c *ProcessingLockCreate) Mutation() *ProcessingLockMutation {
	return _c.mutation
}

// Save creates the ProcessingLock in the database.
func (_c *ProcessingLockCreate) Save(ctx context.Context) (*ProcessingLock, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingLockCreate) SaveX(ctx context.Context) *ProcessingLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingLockCreate) check() error {
	if _, ok := _c.mutation.LockName(); !ok {
		return &ValidationError{Name: "lock_name", err: errors.New(`ent: missing required field "ProcessingLock.lock_name"`)}
	}
	if v, ok := _c.mutation.LockName(); ok {
		if err := processinglock.LockNameValidator(v); err != nil {
			return &ValidationError{Name: "lock_name", err: fmt.Errorf(`ent: validator failed for field "ProcessingLock.lock_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LockedUntil(); !ok {
		return &ValidationError{Name: "locked_until", err: errors.New(`ent: missing required field "ProcessingLock.locked_until"`)}
	}
	if _, ok := _c.mutation.OwnerRunID(); !ok {
		return &ValidationError{Name: "owner_run_id", err: errors.New(`ent: missing required field "ProcessingLock.owner_run_id"`)}
	}
	return nil
}

func (_c *ProcessingLockCreate) sqlSave(ctx context.Context) (*ProcessingLock, error) {
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

func (_c *ProcessingLockCreate) createSpec() (*ProcessingLock, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processinglock.Table, sqlgraph.NewFieldSpec(processinglock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LockName(); ok {
		_spec.SetField(processinglock.FieldLockName, field.TypeString, value)
		_node.LockName = value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(processinglock.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = value
	}
	if value, ok := _c.mutation.OwnerRunID(); ok {
		_spec.SetField(processinglock.FieldOwnerRunID, field.TypeString, value)
		_node.OwnerRunID = value
	}
	return _node, _spec
}

// ProcessingLockCreateBulk is the builder for creating many ProcessingLock entities in bulk.
type ProcessingLockCreateBulk struct {
	config
	err      error
	builders []*ProcessingLockCreate
}

// Save creates the ProcessingLock entities in the database.
func (_c *ProcessingLockCreateBulk) Save(ctx context.Context) ([]*ProcessingLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingLockMutation)
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
func (_c *ProcessingLockCreateBulk) SaveX(ctx context.Context) []*ProcessingLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
