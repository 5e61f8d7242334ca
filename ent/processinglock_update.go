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
	"github.com/civicquant/pipeline/ent/predicate"
	"github.com/civicquant/pipeline/ent/processinglock"
)

// ProcessingLockUpdate is the builder for updating ProcessingLock entities.
type ProcessingLockUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLockMutation
}

// Where appends a list predicates to the ProcessingLockUpdate builder.
func (_u *ProcessingLockUpdate) Where(ps ...predicate.ProcessingLock) *ProcessingLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *ProcessingLockUpdate) SetLockedUntil(v time.Time) *ProcessingLockUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *ProcessingLockUpdate) SetNillableLockedUntil(v *time.Time) *ProcessingLockUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// SetOwnerRunID sets the "owner_run_id" field.
func (_u *ProcessingLockUpdate) SetOwnerRunID(v string) *ProcessingLockUpdate {
	_u.mutation.SetOwnerRunID(v)
	return _u
}

// SetNillableOwnerRunID sets the "owner_run_id" field if the given value is not nil.
func (_u *ProcessingLockUpdate) SetNillableOwnerRunID(v *string) *ProcessingLockUpdate {
	if v != nil {
		_u.SetOwnerRunID(*v)
	}
	return _u
}

// Mutation returns the ProcessingLockMutation object of the builder.
func (_u *ProcessingLockUpdate) Mutation() *ProcessingLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglock.Table, processinglock.Columns, sqlgraph.NewFieldSpec(processinglock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(processinglock.FieldLockedUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerRunID(); ok {
		_spec.SetField(processinglock.FieldOwnerRunID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLockUpdateOne is the builder for updating a single ProcessingLock entity.
type ProcessingLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLockMutation
}

// SetLockedUntil sets the "locked_until" field.
func (_u *ProcessingLockUpdateOne) SetLockedUntil(v time.Time) *ProcessingLockUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *ProcessingLockUpdateOne) SetNillableLockedUntil(v *time.Time) *ProcessingLockUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// SetOwnerRunID sets the "owner_run_id" field.
func (_u *ProcessingLockUpdateOne) SetOwnerRunID(v string) *ProcessingLockUpdateOne {
	_u.mutation.SetOwnerRunID(v)
	return _u
}

// SetNillableOwnerRunID sets the "owner_run_id" field if the given value is not nil.
func (_u *ProcessingLockUpdateOne) SetNillableOwnerRunID(v *string) *ProcessingLockUpdateOne {
	if v != nil {
		_u.SetOwnerRunID(*v)
	}
	return _u
}

// Mutation returns the ProcessingLockMutation object of the builder.
func (_u *ProcessingLockUpdateOne) Mutation() *ProcessingLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingLockUpdate builder.
func (_u *ProcessingLockUpdateOne) Where(ps ...predicate.ProcessingLock) *ProcessingLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLockUpdateOne) Select(field string, fields ...string) *ProcessingLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLock entity.
func (_u *ProcessingLockUpdateOne) Save(ctx context.Context) (*ProcessingLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLockUpdateOne) SaveX(ctx context.Context) *ProcessingLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLockUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglock.Table, processinglock.Columns, sqlgraph.NewFieldSpec(processinglock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglock.FieldID)
		for _, f := range fields {
			if !processinglock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglock.FieldID {
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
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(processinglock.FieldLockedUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OwnerRunID(); ok {
		_spec.SetField(processinglock.FieldOwnerRunID, field.TypeString, value)
	}
	_node = &ProcessingLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
