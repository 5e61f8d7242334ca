// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/predicate"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RoutingDecisionUpdate is the builder for updating RoutingDecision entities.
type RoutingDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingDecisionMutation
}

// Where appends a list predicates to the RoutingDecisionUpdate builder.
func (_u *RoutingDecisionUpdate) Where(ps ...predicate.RoutingDecision) *RoutingDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStoreTo sets the "store_to" field.
func (_u *RoutingDecisionUpdate) SetStoreTo(v []string) *RoutingDecisionUpdate {
	_u.mutation.SetStoreTo(v)
	return _u
}

// AppendStoreTo appends value to the "store_to" field.
func (_u *RoutingDecisionUpdate) AppendStoreTo(v []string) *RoutingDecisionUpdate {
	_u.mutation.AppendStoreTo(v)
	return _u
}

// SetPublishPriority sets the "publish_priority" field.
func (_u *RoutingDecisionUpdate) SetPublishPriority(v string) *RoutingDecisionUpdate {
	_u.mutation.SetPublishPriority(v)
	return _u
}

// SetNillablePublishPriority sets the "publish_priority" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillablePublishPriority(v *string) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetPublishPriority(*v)
	}
	return _u
}

// SetRequiresEvidence sets the "requires_evidence" field.
func (_u *RoutingDecisionUpdate) SetRequiresEvidence(v bool) *RoutingDecisionUpdate {
	_u.mutation.SetRequiresEvidence(v)
	return _u
}

// SetNillableRequiresEvidence sets the "requires_evidence" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableRequiresEvidence(v *bool) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetRequiresEvidence(*v)
	}
	return _u
}

// SetEventAction sets the "event_action" field.
func (_u *RoutingDecisionUpdate) SetEventAction(v string) *RoutingDecisionUpdate {
	_u.mutation.SetEventAction(v)
	return _u
}

// SetNillableEventAction sets the "event_action" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableEventAction(v *string) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetEventAction(*v)
	}
	return _u
}

// SetTriageAction sets the "triage_action" field.
func (_u *RoutingDecisionUpdate) SetTriageAction(v string) *RoutingDecisionUpdate {
	_u.mutation.SetTriageAction(v)
	return _u
}

// SetNillableTriageAction sets the "triage_action" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableTriageAction(v *string) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetTriageAction(*v)
	}
	return _u
}

// ClearTriageAction clears the value of the "triage_action" field.
func (_u *RoutingDecisionUpdate) ClearTriageAction() *RoutingDecisionUpdate {
	_u.mutation.ClearTriageAction()
	return _u
}

// SetTriageRules sets the "triage_rules" field.
func (_u *RoutingDecisionUpdate) SetTriageRules(v []string) *RoutingDecisionUpdate {
	_u.mutation.SetTriageRules(v)
	return _u
}

// AppendTriageRules appends value to the "triage_rules" field.
func (_u *RoutingDecisionUpdate) AppendTriageRules(v []string) *RoutingDecisionUpdate {
	_u.mutation.AppendTriageRules(v)
	return _u
}

// ClearTriageRules clears the value of the "triage_rules" field.
func (_u *RoutingDecisionUpdate) ClearTriageRules() *RoutingDecisionUpdate {
	_u.mutation.ClearTriageRules()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *RoutingDecisionUpdate) SetFlags(v []string) *RoutingDecisionUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *RoutingDecisionUpdate) AppendFlags(v []string) *RoutingDecisionUpdate {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *RoutingDecisionUpdate) ClearFlags() *RoutingDecisionUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetRulesFired sets the "rules_fired" field.
func (_u *RoutingDecisionUpdate) SetRulesFired(v []string) *RoutingDecisionUpdate {
	_u.mutation.SetRulesFired(v)
	return _u
}

// AppendRulesFired appends value to the "rules_fired" field.
func (_u *RoutingDecisionUpdate) AppendRulesFired(v []string) *RoutingDecisionUpdate {
	_u.mutation.AppendRulesFired(v)
	return _u
}

// ClearRulesFired clears the value of the "rules_fired" field.
func (_u *RoutingDecisionUpdate) ClearRulesFired() *RoutingDecisionUpdate {
	_u.mutation.ClearRulesFired()
	return _u
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_u *RoutingDecisionUpdate) Mutation() *RoutingDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingDecisionUpdate) check() error {
	if v, ok := _u.mutation.PublishPriority(); ok {
		if err := routingdecision.PublishPriorityValidator(v); err != nil {
			return &ValidationError{Name: "publish_priority", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.publish_priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventAction(); ok {
		if err := routingdecision.EventActionValidator(v); err != nil {
			return &ValidationError{Name: "event_action", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.event_action": %w`, err)}
		}
	}
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingDecision.raw_message"`)
	}
	return nil
}

func (_u *RoutingDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingdecision.Table, routingdecision.Columns, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StoreTo(); ok {
		_spec.SetField(routingdecision.FieldStoreTo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStoreTo(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldStoreTo, value)
		})
	}
	if value, ok := _u.mutation.PublishPriority(); ok {
		_spec.SetField(routingdecision.FieldPublishPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiresEvidence(); ok {
		_spec.SetField(routingdecision.FieldRequiresEvidence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventAction(); ok {
		_spec.SetField(routingdecision.FieldEventAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriageAction(); ok {
		_spec.SetField(routingdecision.FieldTriageAction, field.TypeString, value)
	}
	if _u.mutation.TriageActionCleared() {
		_spec.ClearField(routingdecision.FieldTriageAction, field.TypeString)
	}
	if value, ok := _u.mutation.TriageRules(); ok {
		_spec.SetField(routingdecision.FieldTriageRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriageRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldTriageRules, value)
		})
	}
	if _u.mutation.TriageRulesCleared() {
		_spec.ClearField(routingdecision.FieldTriageRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(routingdecision.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(routingdecision.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RulesFired(); ok {
		_spec.SetField(routingdecision.FieldRulesFired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRulesFired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldRulesFired, value)
		})
	}
	if _u.mutation.RulesFiredCleared() {
		_spec.ClearField(routingdecision.FieldRulesFired, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingDecisionUpdateOne is the builder for updating a single RoutingDecision entity.
type RoutingDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingDecisionMutation
}

// SetStoreTo sets the "store_to" field.
func (_u *RoutingDecisionUpdateOne) SetStoreTo(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.SetStoreTo(v)
	return _u
}

// AppendStoreTo appends value to the "store_to" field.
func (_u *RoutingDecisionUpdateOne) AppendStoreTo(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.AppendStoreTo(v)
	return _u
}

// SetPublishPriority sets the "publish_priority" field.
func (_u *RoutingDecisionUpdateOne) SetPublishPriority(v string) *RoutingDecisionUpdateOne {
	_u.mutation.SetPublishPriority(v)
	return _u
}

// SetNillablePublishPriority sets the "publish_priority" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillablePublishPriority(v *string) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetPublishPriority(*v)
	}
	return _u
}

// SetRequiresEvidence sets the "requires_evidence" field.
func (_u *RoutingDecisionUpdateOne) SetRequiresEvidence(v bool) *RoutingDecisionUpdateOne {
	_u.mutation.SetRequiresEvidence(v)
	return _u
}

// SetNillableRequiresEvidence sets the "requires_evidence" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableRequiresEvidence(v *bool) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetRequiresEvidence(*v)
	}
	return _u
}

// SetEventAction sets the "event_action" field.
func (_u *RoutingDecisionUpdateOne) SetEventAction(v string) *RoutingDecisionUpdateOne {
	_u.mutation.SetEventAction(v)
	return _u
}

// SetNillableEventAction sets the "event_action" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableEventAction(v *string) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetEventAction(*v)
	}
	return _u
}

// SetTriageAction sets the "triage_action" field.
func (_u *RoutingDecisionUpdateOne) SetTriageAction(v string) *RoutingDecisionUpdateOne {
	_u.mutation.SetTriageAction(v)
	return _u
}

// SetNillableTriageAction sets the "triage_action" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableTriageAction(v *string) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetTriageAction(*v)
	}
	return _u
}

// ClearTriageAction clears the value of the "triage_action" field.
func (_u *RoutingDecisionUpdateOne) ClearTriageAction() *RoutingDecisionUpdateOne {
	_u.mutation.ClearTriageAction()
	return _u
}

// SetTriageRules sets the "triage_rules" field.
func (_u *RoutingDecisionUpdateOne) SetTriageRules(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.SetTriageRules(v)
	return _u
}

// AppendTriageRules appends value to the "triage_rules" field.
func (_u *RoutingDecisionUpdateOne) AppendTriageRules(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.AppendTriageRules(v)
	return _u
}

// ClearTriageRules clears the value of the "triage_rules" field.
func (_u *RoutingDecisionUpdateOne) ClearTriageRules() *RoutingDecisionUpdateOne {
	_u.mutation.ClearTriageRules()
	return _u
}

// SetFlags sets the "flags" field.
func (_u *RoutingDecisionUpdateOne) SetFlags(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// AppendFlags appends value to the "flags" field.
func (_u *RoutingDecisionUpdateOne) AppendFlags(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.AppendFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *RoutingDecisionUpdateOne) ClearFlags() *RoutingDecisionUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetRulesFired sets the "rules_fired" field.
func (_u *RoutingDecisionUpdateOne) SetRulesFired(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.SetRulesFired(v)
	return _u
}

// AppendRulesFired appends value to the "rules_fired" field.
func (_u *RoutingDecisionUpdateOne) AppendRulesFired(v []string) *RoutingDecisionUpdateOne {
	_u.mutation.AppendRulesFired(v)
	return _u
}

// ClearRulesFired clears the value of the "rules_fired" field.
func (_u *RoutingDecisionUpdateOne) ClearRulesFired() *RoutingDecisionUpdateOne {
	_u.mutation.ClearRulesFired()
	return _u
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_u *RoutingDecisionUpdateOne) Mutation() *RoutingDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoutingDecisionUpdate builder.
func (_u *RoutingDecisionUpdateOne) Where(ps ...predicate.RoutingDecision) *RoutingDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingDecisionUpdateOne) Select(field string, fields ...string) *RoutingDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingDecision entity.
func (_u *RoutingDecisionUpdateOne) Save(ctx context.Context) (*RoutingDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingDecisionUpdateOne) SaveX(ctx context.Context) *RoutingDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingDecisionUpdateOne) check() error {
	if v, ok := _u.mutation.PublishPriority(); ok {
		if err := routingdecision.PublishPriorityValidator(v); err != nil {
			return &ValidationError{Name: "publish_priority", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.publish_priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventAction(); ok {
		if err := routingdecision.EventActionValidator(v); err != nil {
			return &ValidationError{Name: "event_action", err: fmt.Errorf(`ent: validator failed for field "RoutingDecision.event_action": %w`, err)}
		}
	}
	if _u.mutation.RawMessageCleared() && len(_u.mutation.RawMessageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingDecision.raw_message"`)
	}
	return nil
}

func (_u *RoutingDecisionUpdateOne) sqlSave(ctx context.Context) (_node *RoutingDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingdecision.Table, routingdecision.Columns, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingdecision.FieldID)
		for _, f := range fields {
			if !routingdecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingdecision.FieldID {
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
	if value, ok := _u.mutation.StoreTo(); ok {
		_spec.SetField(routingdecision.FieldStoreTo, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStoreTo(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldStoreTo, value)
		})
	}
	if value, ok := _u.mutation.PublishPriority(); ok {
		_spec.SetField(routingdecision.FieldPublishPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequiresEvidence(); ok {
		_spec.SetField(routingdecision.FieldRequiresEvidence, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EventAction(); ok {
		_spec.SetField(routingdecision.FieldEventAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriageAction(); ok {
		_spec.SetField(routingdecision.FieldTriageAction, field.TypeString, value)
	}
	if _u.mutation.TriageActionCleared() {
		_spec.ClearField(routingdecision.FieldTriageAction, field.TypeString)
	}
	if value, ok := _u.mutation.TriageRules(); ok {
		_spec.SetField(routingdecision.FieldTriageRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTriageRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldTriageRules, value)
		})
	}
	if _u.mutation.TriageRulesCleared() {
		_spec.ClearField(routingdecision.FieldTriageRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(routingdecision.FieldFlags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFlags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldFlags, value)
		})
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(routingdecision.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.RulesFired(); ok {
		_spec.SetField(routingdecision.FieldRulesFired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRulesFired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, routingdecision.FieldRulesFired, value)
		})
	}
	if _u.mutation.RulesFiredCleared() {
		_spec.ClearField(routingdecision.FieldRulesFired, field.TypeJSON)
	}
	_node = &RoutingDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
