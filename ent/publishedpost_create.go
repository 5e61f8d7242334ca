// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/publishedpost"
)

// PublishedPostCreate is the builder for creating a PublishedPost entity.
type PublishedPostCreate struct {
	config
	mutation *PublishedPostMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *PublishedPostCreate) SetEventID(v int) *PublishedPostCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *PublishedPostCreate) SetNillableEventID(v *int) *PublishedPostCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetDestination sets the "destination" field.
func (_c *PublishedPostCreate) SetDestination(v string) *PublishedPostCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *PublishedPostCreate) SetPublishedAt(v time.Time) *PublishedPostCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *PublishedPostCreate) SetNillablePublishedAt(v *time.Time) *PublishedPostCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *PublishedPostCreate) SetContent(v string) *PublishedPostCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *PublishedPostCreate) SetContentHash(v string) *PublishedPostCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// Mutation returns the PublishedPostMutation object of the builder.
func (_c *PublishedPostCreate) Mutation() *PublishedPostMutation {
	return _c.mutation
}

// Save creates the PublishedPost in the database.
func (_c *PublishedPostCreate) Save(ctx context.Context) (*PublishedPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PublishedPostCreate) SaveX(ctx context.Context) *PublishedPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishedPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishedPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PublishedPostCreate) defaults() {
	if _, ok := _c.mutation.PublishedAt(); !ok {
		v := publishedpost.DefaultPublishedAt()
		_c.mutation.SetPublishedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PublishedPostCreate) check() error {
	if _, ok := _c.mutation.Destination(); !ok {
		return &ValidationError{Name: "destination", err: errors.New(`ent: missing required field "PublishedPost.destination"`)}
	}
	if v, ok := _c.mutation.Destination(); ok {
		if err := publishedpost.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.destination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublishedAt(); !ok {
		return &ValidationError{Name: "published_at", err: errors.New(`ent: missing required field "PublishedPost.published_at"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PublishedPost.content"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "PublishedPost.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := publishedpost.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PublishedPost.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_c *PublishedPostCreate) sqlSave(ctx context.Context) (*PublishedPost, error) {
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

func (_c *PublishedPostCreate) createSpec() (*PublishedPost, *sqlgraph.CreateSpec) {
	var (
		_node = &PublishedPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(publishedpost.Table, sqlgraph.NewFieldSpec(publishedpost.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(publishedpost.FieldEventID, field.TypeInt, value)
		_node.EventID = &value
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(publishedpost.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(publishedpost.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(publishedpost.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(publishedpost.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	return _node, _spec
}

// PublishedPostCreateBulk is the builder for creating many PublishedPost entities in bulk.
type PublishedPostCreateBulk struct {
	config
	err      error
	builders []*PublishedPostCreate
}

// Save creates the PublishedPost entities in the database.
func (_c *PublishedPostCreateBulk) Save(ctx context.Context) ([]*PublishedPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PublishedPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PublishedPostMutation)
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
func (_c *PublishedPostCreateBulk) SaveX(ctx context.Context) []*PublishedPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PublishedPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PublishedPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
