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
	"github.com/civicquant/pipeline/ent/processingstate"
)

// ProcessingStateUpdate is the builder for updating ProcessingState entities.
type ProcessingStateUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingStateMutation
}

// Where appends a list predicates to the ProcessingStateUpdate builder.
func (_u *ProcessingStateUpdate) Where(ps ...predicate.ProcessingState) *ProcessingStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingStateUpdate) SetStatus(v processingstate.Status) *ProcessingStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableStatus(v *processingstate.Status) *ProcessingStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingStateUpdate) SetAttemptCount(v int) *ProcessingStateUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableAttemptCount(v *int) *ProcessingStateUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingStateUpdate) AddAttemptCount(v int) *ProcessingStateUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *ProcessingStateUpdate) SetLastAttemptedAt(v time.Time) *ProcessingStateUpdate {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableLastAttemptedAt(v *time.Time) *ProcessingStateUpdate {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *ProcessingStateUpdate) ClearLastAttemptedAt() *ProcessingStateUpdate {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingStateUpdate) SetCompletedAt(v time.Time) *ProcessingStateUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingStateUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingStateUpdate) ClearCompletedAt() *ProcessingStateUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ProcessingStateUpdate) SetLeaseExpiresAt(v time.Time) *ProcessingStateUpdate {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingStateUpdate {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ProcessingStateUpdate) ClearLeaseExpiresAt() *ProcessingStateUpdate {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProcessingStateUpdate) SetLastError(v string) *ProcessingStateUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableLastError(v *string) *ProcessingStateUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProcessingStateUpdate) ClearLastError() *ProcessingStateUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_u *ProcessingStateUpdate) SetProcessingRunID(v string) *ProcessingStateUpdate {
	_u.mutation.SetProcessingRunID(v)
	return _u
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_u *ProcessingStateUpdate) SetNillableProcessingRunID(v *string) *ProcessingStateUpdate {
	if v != nil {
		_u.SetProcessingRunID(*v)
	}
	return _u
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (_u *ProcessingStateUpdate) ClearProcessingRunID() *ProcessingStateUpdate {
	_u.mutation.ClearProcessingRunID()
	return _u
}

// Mutation returns the ProcessingStateMutation object of the builder.
func (_u *ProcessingStateUpdate) Mutation() *ProcessingStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processingstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingState.status": %w`, err)}
		}
	}
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingState.raw_message"`)
	}
	return nil
}

func (_u *ProcessingStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingstate.Table, processingstate.Columns, sqlgraph.NewFieldSpec(processingstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(processingstate.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(processingstate.FieldLastAttemptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingstate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingstate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingstate.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(processingstate.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(processingstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(processingstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingRunID(); ok {
		_spec.SetField(processingstate.FieldProcessingRunID, field.TypeString, value)
	}
	if _u.mutation.ProcessingRunIDCleared() {
		_spec.ClearField(processingstate.FieldProcessingRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingStateUpdateOne is the builder for updating a single ProcessingState entity.
type ProcessingStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingStateMutation
}

// SetStatus sets the "status" field.
func (_u *ProcessingStateUpdateOne) SetStatus(v processingstate.Status) *ProcessingStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableStatus(v *processingstate.Status) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ProcessingStateUpdateOne) SetAttemptCount(v int) *ProcessingStateUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableAttemptCount(v *int) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ProcessingStateUpdateOne) AddAttemptCount(v int) *ProcessingStateUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (_u *ProcessingStateUpdateOne) SetLastAttemptedAt(v time.Time) *ProcessingStateUpdateOne {
	_u.mutation.SetLastAttemptedAt(v)
	return _u
}

// SetNillableLastAttemptedAt sets the "last_attempted_at" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableLastAttemptedAt(v *time.Time) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetLastAttemptedAt(*v)
	}
	return _u
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (_u *ProcessingStateUpdateOne) ClearLastAttemptedAt() *ProcessingStateUpdateOne {
	_u.mutation.ClearLastAttemptedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingStateUpdateOne) SetCompletedAt(v time.Time) *ProcessingStateUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingStateUpdateOne) ClearCompletedAt() *ProcessingStateUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (_u *ProcessingStateUpdateOne) SetLeaseExpiresAt(v time.Time) *ProcessingStateUpdateOne {
	_u.mutation.SetLeaseExpiresAt(v)
	return _u
}

// SetNillableLeaseExpiresAt sets the "lease_expires_at" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableLeaseExpiresAt(v *time.Time) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetLeaseExpiresAt(*v)
	}
	return _u
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (_u *ProcessingStateUpdateOne) ClearLeaseExpiresAt() *ProcessingStateUpdateOne {
	_u.mutation.ClearLeaseExpiresAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ProcessingStateUpdateOne) SetLastError(v string) *ProcessingStateUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableLastError(v *string) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ProcessingStateUpdateOne) ClearLastError() *ProcessingStateUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetProcessingRunID sets the "processing_run_id" field.
func (_u *ProcessingStateUpdateOne) SetProcessingRunID(v string) *ProcessingStateUpdateOne {
	_u.mutation.SetProcessingRunID(v)
	return _u
}

// SetNillableProcessingRunID sets the "processing_run_id" field if the given value is not nil.
func (_u *ProcessingStateUpdateOne) SetNillableProcessingRunID(v *string) *ProcessingStateUpdateOne {
	if v != nil {
		_u.SetProcessingRunID(*v)
	}
	return _u
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (_u *ProcessingStateUpdateOne) ClearProcessingRunID() *ProcessingStateUpdateOne {
	_u.mutation.ClearProcessingRunID()
	return _u
}

// Mutation returns the ProcessingStateMutation object of the builder.
func (_u *ProcessingStateUpdateOne) Mutation() *ProcessingStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingStateUpdate builder.
func (_u *ProcessingStateUpdateOne) Where(ps ...predicate.ProcessingState) *ProcessingStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingStateUpdateOne) Select(field string, fields ...string) *ProcessingStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingState entity.
func (_u *ProcessingStateUpdateOne) Save(ctx context.Context) (*ProcessingState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingStateUpdateOne) SaveX(ctx context.Context) *ProcessingState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processingstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingState.status": %w`, err)}
		}
	}
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingState.raw_message"`)
	}
	return nil
}

func (_u *ProcessingStateUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingstate.Table, processingstate.Columns, sqlgraph.NewFieldSpec(processingstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingstate.FieldID)
		for _, f := range fields {
			if !processingstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingstate.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(processingstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(processingstate.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptedAt(); ok {
		_spec.SetField(processingstate.FieldLastAttemptedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptedAtCleared() {
		_spec.ClearField(processingstate.FieldLastAttemptedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingstate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingstate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseExpiresAt(); ok {
		_spec.SetField(processingstate.FieldLeaseExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.LeaseExpiresAtCleared() {
		_spec.ClearField(processingstate.FieldLeaseExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(processingstate.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(processingstate.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingRunID(); ok {
		_spec.SetField(processingstate.FieldProcessingRunID, field.TypeString, value)
	}
	if _u.mutation.ProcessingRunIDCleared() {
		_spec.ClearField(processingstate.FieldProcessingRunID, field.TypeString)
	}
	_node = &ProcessingState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
