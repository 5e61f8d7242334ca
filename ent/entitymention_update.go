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
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/predicate"
)

// EntityMentionUpdate is the builder for updating EntityMention entities.
type EntityMentionUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMentionMutation
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdate) Where(ps ...predicate.EntityMention) *EntityMentionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EntityMentionUpdate) SetEventID(v int) *EntityMentionUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableEventID(v *int) *EntityMentionUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EntityMentionUpdate) AddEventID(v int) *EntityMentionUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *EntityMentionUpdate) ClearEventID() *EntityMentionUpdate {
	_u.mutation.ClearEventID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EntityMentionUpdate) SetTopic(v string) *EntityMentionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableTopic(v *string) *EntityMentionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *EntityMentionUpdate) ClearTopic() *EntityMentionUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *EntityMentionUpdate) SetIsBreaking(v bool) *EntityMentionUpdate {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableIsBreaking(v *bool) *EntityMentionUpdate {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *EntityMentionUpdate) SetEventTime(v time.Time) *EntityMentionUpdate {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *EntityMentionUpdate) SetNillableEventTime(v *time.Time) *EntityMentionUpdate {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *EntityMentionUpdate) ClearEventTime() *EntityMentionUpdate {
	_u.mutation.ClearEventTime()
	return _u
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdate) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityMentionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityMentionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMentionUpdate) check() error {
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMention.raw_message"`)
	}
	return nil
}

func (_u *EntityMentionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(entitymention.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(entitymention.FieldEventID, field.TypeInt, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(entitymention.FieldEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(entitymention.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(entitymention.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(entitymention.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(entitymention.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(entitymention.FieldEventTime, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityMentionUpdateOne is the builder for updating a single EntityMention entity.
type EntityMentionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMentionMutation
}

// SetEventID sets the "event_id" field.
func (_u *EntityMentionUpdateOne) SetEventID(v int) *EntityMentionUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableEventID(v *int) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *EntityMentionUpdateOne) AddEventID(v int) *EntityMentionUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *EntityMentionUpdateOne) ClearEventID() *EntityMentionUpdateOne {
	_u.mutation.ClearEventID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EntityMentionUpdateOne) SetTopic(v string) *EntityMentionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableTopic(v *string) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *EntityMentionUpdateOne) ClearTopic() *EntityMentionUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *EntityMentionUpdateOne) SetIsBreaking(v bool) *EntityMentionUpdateOne {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableIsBreaking(v *bool) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *EntityMentionUpdateOne) SetEventTime(v time.Time) *EntityMentionUpdateOne {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *EntityMentionUpdateOne) SetNillableEventTime(v *time.Time) *EntityMentionUpdateOne {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *EntityMentionUpdateOne) ClearEventTime() *EntityMentionUpdateOne {
	_u.mutation.ClearEventTime()
	return _u
}

// Mutation returns the EntityMentionMutation object of the builder.
func (_u *EntityMentionUpdateOne) Mutation() *EntityMentionMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityMentionUpdate builder.
func (_u *EntityMentionUpdateOne) Where(ps ...predicate.EntityMention) *EntityMentionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityMentionUpdateOne) Select(field string, fields ...string) *EntityMentionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityMention entity.
func (_u *EntityMentionUpdateOne) Save(ctx context.Context) (*EntityMention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) SaveX(ctx context.Context) *EntityMention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityMentionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMentionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMentionUpdateOne) check() error {
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMention.raw_message"`)
	}
	return nil
}

func (_u *EntityMentionUpdateOne) sqlSave(ctx context.Context) (_node *EntityMention, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymention.Table, entitymention.Columns, sqlgraph.NewFieldSpec(entitymention.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityMention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitymention.FieldID)
		for _, f := range fields {
			if !entitymention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitymention.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(entitymention.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(entitymention.FieldEventID, field.TypeInt, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(entitymention.FieldEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(entitymention.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(entitymention.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(entitymention.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(entitymention.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(entitymention.FieldEventTime, field.TypeTime)
	}
	_node = &EntityMention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
