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
	"github.com/civicquant/pipeline/ent/publishedpost"
)

// PublishedPostUpdate is the builder for updating PublishedPost entities.
type PublishedPostUpdate struct {
	config
	hooks    []Hook
	mutation *PublishedPostMutation
}

// Where appends a list predicates to the PublishedPostUpdate builder.
func (_u *PublishedPostUpdate) Where(ps ...predicate.PublishedPost) *PublishedPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *PublishedPostUpdate) SetEventID(v int) *PublishedPostUpdate {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PublishedPostUpdate) SetNillableEventID(v *int) *PublishedPostUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *PublishedPostUpdate) AddEventID(v int) *PublishedPostUpdate {
	_u.mutation.AddEventID(v)
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *PublishedPostUpdate) ClearEventID() *PublishedPostUpdate {
	_u.mutation.ClearEventID()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *PublishedPostUpdate) SetDestination(v string) *PublishedPostUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *PublishedPostUpdate) SetNillableDestination(v *string) *PublishedPostUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PublishedPostUpdate) SetPublishedAt(v time.Time) *PublishedPostUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PublishedPostUpdate) SetNillablePublishedAt(v *time.Time) *PublishedPostUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PublishedPostUpdate) SetContent(v string) *PublishedPostUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PublishedPostUpdate) SetNillableContent(v *string) *PublishedPostUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PublishedPostUpdate) SetContentHash(v string) *PublishedPostUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PublishedPostUpdate) SetNillableContentHash(v *string) *PublishedPostUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// Mutation returns the PublishedPostMutation object of the builder.
func (_u *PublishedPostUpdate) Mutation() *PublishedPostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PublishedPostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishedPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PublishedPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishedPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishedPostUpdate) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := publishedpost.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := publishedpost.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *PublishedPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishedpost.Table, publishedpost.Columns, sqlgraph.NewFieldSpec(publishedpost.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(publishedpost.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(publishedpost.FieldEventID, field.TypeInt, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(publishedpost.FieldEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(publishedpost.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(publishedpost.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(publishedpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(publishedpost.FieldContentHash, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishedpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PublishedPostUpdateOne is the builder for updating a single PublishedPost entity.
type PublishedPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PublishedPostMutation
}

// SetEventID sets the "event_id" field.
func (_u *PublishedPostUpdateOne) SetEventID(v int) *PublishedPostUpdateOne {
	_u.mutation.ResetEventID()
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *PublishedPostUpdateOne) SetNillableEventID(v *int) *PublishedPostUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// AddEventID adds value to the "event_id" field.
func (_u *PublishedPostUpdateOne) AddEventID(v int) *PublishedPostUpdateOne {
	_u.mutation.AddEventID(v)
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *PublishedPostUpdateOne) ClearEventID() *PublishedPostUpdateOne {
	_u.mutation.ClearEventID()
	return _u
}

// SetDestination sets the "destination" field.
func (_u *PublishedPostUpdateOne) SetDestination(v string) *PublishedPostUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *PublishedPostUpdateOne) SetNillableDestination(v *string) *PublishedPostUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PublishedPostUpdateOne) SetPublishedAt(v time.Time) *PublishedPostUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PublishedPostUpdateOne) SetNillablePublishedAt(v *time.Time) *PublishedPostUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PublishedPostUpdateOne) SetContent(v string) *PublishedPostUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PublishedPostUpdateOne) SetNillableContent(v *string) *PublishedPostUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PublishedPostUpdateOne) SetContentHash(v string) *PublishedPostUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PublishedPostUpdateOne) SetNillableContentHash(v *string) *PublishedPostUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// Mutation returns the PublishedPostMutation object of the builder.
func (_u *PublishedPostUpdateOne) Mutation() *PublishedPostMutation {
	return _u.mutation
}

// Where appends a list predicates to the PublishedPostUpdate builder.
func (_u *PublishedPostUpdateOne) Where(ps ...predicate.PublishedPost) *PublishedPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PublishedPostUpdateOne) Select(field string, fields ...string) *PublishedPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PublishedPost entity.
func (_u *PublishedPostUpdateOne) Save(ctx context.Context) (*PublishedPost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PublishedPostUpdateOne) SaveX(ctx context.Context) *PublishedPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PublishedPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PublishedPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PublishedPostUpdateOne) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := publishedpost.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := publishedpost.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *PublishedPostUpdateOne) sqlSave(ctx context.Context) (_node *PublishedPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(publishedpost.Table, publishedpost.Columns, sqlgraph.NewFieldSpec(publishedpost.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PublishedPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, publishedpost.FieldID)
		for _, f := range fields {
			if !publishedpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != publishedpost.FieldID {
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
		_spec.SetField(publishedpost.FieldEventID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEventID(); ok {
		_spec.AddField(publishedpost.FieldEventID, field.TypeInt, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(publishedpost.FieldEventID, field.TypeInt)
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(publishedpost.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(publishedpost.FieldPublishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(publishedpost.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(publishedpost.FieldContentHash, field.TypeString, value)
	}
	_node = &PublishedPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{publishedpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
