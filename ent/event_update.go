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
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_u *EventUpdate) SetEventFingerprint(v string) *EventUpdate {
	_u.mutation.SetEventFingerprint(v)
	return _u
}

// SetNillableEventFingerprint sets the "event_fingerprint" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventFingerprint(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventFingerprint(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EventUpdate) SetTopic(v string) *EventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTopic(v *string) *EventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *EventUpdate) ClearTopic() *EventUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdate) SetSummary(v string) *EventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSummary(v *string) *EventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdate) ClearSummary() *EventUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *EventUpdate) SetImpactScore(v float64) *EventUpdate {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *EventUpdate) SetNillableImpactScore(v *float64) *EventUpdate {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *EventUpdate) AddImpactScore(v float64) *EventUpdate {
	_u.mutation.AddImpactScore(v)
	return _u
}

// ClearImpactScore clears the value of the "impact_score" field.
func (_u *EventUpdate) ClearImpactScore() *EventUpdate {
	_u.mutation.ClearImpactScore()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *EventUpdate) SetIsBreaking(v bool) *EventUpdate {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *EventUpdate) SetNillableIsBreaking(v *bool) *EventUpdate {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetBreakingWindow sets the "breaking_window" field.
func (_u *EventUpdate) SetBreakingWindow(v string) *EventUpdate {
	_u.mutation.SetBreakingWindow(v)
	return _u
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_u *EventUpdate) SetNillableBreakingWindow(v *string) *EventUpdate {
	if v != nil {
		_u.SetBreakingWindow(*v)
	}
	return _u
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (_u *EventUpdate) ClearBreakingWindow() *EventUpdate {
	_u.mutation.ClearBreakingWindow()
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *EventUpdate) SetEventTime(v time.Time) *EventUpdate {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventTime(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *EventUpdate) ClearEventTime() *EventUpdate {
	_u.mutation.ClearEventTime()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *EventUpdate) SetLastUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLastUpdatedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// SetLatestExtractionID sets the "latest_extraction_id" field.
func (_u *EventUpdate) SetLatestExtractionID(v int) *EventUpdate {
	_u.mutation.ResetLatestExtractionID()
	_u.mutation.SetLatestExtractionID(v)
	return _u
}

// SetNillableLatestExtractionID sets the "latest_extraction_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableLatestExtractionID(v *int) *EventUpdate {
	if v != nil {
		_u.SetLatestExtractionID(*v)
	}
	return _u
}

// AddLatestExtractionID adds value to the "latest_extraction_id" field.
func (_u *EventUpdate) AddLatestExtractionID(v int) *EventUpdate {
	_u.mutation.AddLatestExtractionID(v)
	return _u
}

// ClearLatestExtractionID clears the value of the "latest_extraction_id" field.
func (_u *EventUpdate) ClearLatestExtractionID() *EventUpdate {
	_u.mutation.ClearLatestExtractionID()
	return _u
}

// AddMessageLinkIDs adds the "message_links" edge to the EventMessage entity by IDs.
func (_u *EventUpdate) AddMessageLinkIDs(ids ...int) *EventUpdate {
	_u.mutation.AddMessageLinkIDs(ids...)
	return _u
}

// AddMessageLinks adds the "message_links" edges to the EventMessage entity.
func (_u *EventUpdate) AddMessageLinks(v ...*EventMessage) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearMessageLinks clears all "message_links" edges to the EventMessage entity.
func (_u *EventUpdate) ClearMessageLinks() *EventUpdate {
	_u.mutation.ClearMessageLinks()
	return _u
}

// RemoveMessageLinkIDs removes the "message_links" edge to EventMessage entities by IDs.
func (_u *EventUpdate) RemoveMessageLinkIDs(ids ...int) *EventUpdate {
	_u.mutation.RemoveMessageLinkIDs(ids...)
	return _u
}

// RemoveMessageLinks removes "message_links" edges to EventMessage entities.
func (_u *EventUpdate) RemoveMessageLinks(v ...*EventMessage) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.EventFingerprint(); ok {
		if err := event.EventFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "event_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Event.event_fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventFingerprint(); ok {
		_spec.SetField(event.FieldEventFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(event.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(event.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(event.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(event.FieldImpactScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImpactScoreCleared() {
		_spec.ClearField(event.FieldImpactScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(event.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BreakingWindow(); ok {
		_spec.SetField(event.FieldBreakingWindow, field.TypeString, value)
	}
	if _u.mutation.BreakingWindowCleared() {
		_spec.ClearField(event.FieldBreakingWindow, field.TypeString)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(event.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(event.FieldEventTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(event.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatestExtractionID(); ok {
		_spec.SetField(event.FieldLatestExtractionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatestExtractionID(); ok {
		_spec.AddField(event.FieldLatestExtractionID, field.TypeInt, value)
	}
	if _u.mutation.LatestExtractionIDCleared() {
		_spec.ClearField(event.FieldLatestExtractionID, field.TypeInt)
	}
	if _u.mutation.MessageLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessageLinksIDs(); len(nodes) > 0 && !_u.mutation.MessageLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (_u *EventUpdateOne) SetEventFingerprint(v string) *EventUpdateOne {
	_u.mutation.SetEventFingerprint(v)
	return _u
}

// SetNillableEventFingerprint sets the "event_fingerprint" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventFingerprint(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventFingerprint(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *EventUpdateOne) SetTopic(v string) *EventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTopic(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *EventUpdateOne) ClearTopic() *EventUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *EventUpdateOne) SetSummary(v string) *EventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSummary(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *EventUpdateOne) ClearSummary() *EventUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetImpactScore sets the "impact_score" field.
func (_u *EventUpdateOne) SetImpactScore(v float64) *EventUpdateOne {
	_u.mutation.ResetImpactScore()
	_u.mutation.SetImpactScore(v)
	return _u
}

// SetNillableImpactScore sets the "impact_score" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableImpactScore(v *float64) *EventUpdateOne {
	if v != nil {
		_u.SetImpactScore(*v)
	}
	return _u
}

// AddImpactScore adds value to the "impact_score" field.
func (_u *EventUpdateOne) AddImpactScore(v float64) *EventUpdateOne {
	_u.mutation.AddImpactScore(v)
	return _u
}

// ClearImpactScore clears the value of the "impact_score" field.
func (_u *EventUpdateOne) ClearImpactScore() *EventUpdateOne {
	_u.mutation.ClearImpactScore()
	return _u
}

// SetIsBreaking sets the "is_breaking" field.
func (_u *EventUpdateOne) SetIsBreaking(v bool) *EventUpdateOne {
	_u.mutation.SetIsBreaking(v)
	return _u
}

// SetNillableIsBreaking sets the "is_breaking" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableIsBreaking(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetIsBreaking(*v)
	}
	return _u
}

// SetBreakingWindow sets the "breaking_window" field.
func (_u *EventUpdateOne) SetBreakingWindow(v string) *EventUpdateOne {
	_u.mutation.SetBreakingWindow(v)
	return _u
}

// SetNillableBreakingWindow sets the "breaking_window" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableBreakingWindow(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetBreakingWindow(*v)
	}
	return _u
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (_u *EventUpdateOne) ClearBreakingWindow() *EventUpdateOne {
	_u.mutation.ClearBreakingWindow()
	return _u
}

// SetEventTime sets the "event_time" field.
func (_u *EventUpdateOne) SetEventTime(v time.Time) *EventUpdateOne {
	_u.mutation.SetEventTime(v)
	return _u
}

// SetNillableEventTime sets the "event_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventTime(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEventTime(*v)
	}
	return _u
}

// ClearEventTime clears the value of the "event_time" field.
func (_u *EventUpdateOne) ClearEventTime() *EventUpdateOne {
	_u.mutation.ClearEventTime()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *EventUpdateOne) SetLastUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLastUpdatedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// SetLatestExtractionID sets the "latest_extraction_id" field.
func (_u *EventUpdateOne) SetLatestExtractionID(v int) *EventUpdateOne {
	_u.mutation.ResetLatestExtractionID()
	_u.mutation.SetLatestExtractionID(v)
	return _u
}

// SetNillableLatestExtractionID sets the "latest_extraction_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableLatestExtractionID(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetLatestExtractionID(*v)
	}
	return _u
}

// AddLatestExtractionID adds value to the "latest_extraction_id" field.
func (_u *EventUpdateOne) AddLatestExtractionID(v int) *EventUpdateOne {
	_u.mutation.AddLatestExtractionID(v)
	return _u
}

// ClearLatestExtractionID clears the value of the "latest_extraction_id" field.
func (_u *EventUpdateOne) ClearLatestExtractionID() *EventUpdateOne {
	_u.mutation.ClearLatestExtractionID()
	return _u
}

// AddMessageLinkIDs adds the "message_links" edge to the EventMessage entity by IDs.
func (_u *EventUpdateOne) AddMessageLinkIDs(ids ...int) *EventUpdateOne {
	_u.mutation.AddMessageLinkIDs(ids...)
	return _u
}

// AddMessageLinks adds the "message_links" edges to the EventMessage entity.
func (_u *EventUpdateOne) AddMessageLinks(v ...*EventMessage) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageLinkIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearMessageLinks clears all "message_links" edges to the EventMessage entity.
func (_u *EventUpdateOne) ClearMessageLinks() *EventUpdateOne {
	_u.mutation.ClearMessageLinks()
	return _u
}

// RemoveMessageLinkIDs removes the "message_links" edge to EventMessage entities by IDs.
func (_u *EventUpdateOne) RemoveMessageLinkIDs(ids ...int) *EventUpdateOne {
	_u.mutation.RemoveMessageLinkIDs(ids...)
	return _u
}

// RemoveMessageLinks removes "message_links" edges to EventMessage entities.
func (_u *EventUpdateOne) RemoveMessageLinks(v ...*EventMessage) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageLinkIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.EventFingerprint(); ok {
		if err := event.EventFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "event_fingerprint", err: fmt.Errorf(`ent: validator failed for field "Event.event_fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.EventFingerprint(); ok {
		_spec.SetField(event.FieldEventFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(event.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(event.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(event.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(event.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ImpactScore(); ok {
		_spec.SetField(event.FieldImpactScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImpactScore(); ok {
		_spec.AddField(event.FieldImpactScore, field.TypeFloat64, value)
	}
	if _u.mutation.ImpactScoreCleared() {
		_spec.ClearField(event.FieldImpactScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsBreaking(); ok {
		_spec.SetField(event.FieldIsBreaking, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BreakingWindow(); ok {
		_spec.SetField(event.FieldBreakingWindow, field.TypeString, value)
	}
	if _u.mutation.BreakingWindowCleared() {
		_spec.ClearField(event.FieldBreakingWindow, field.TypeString)
	}
	if value, ok := _u.mutation.EventTime(); ok {
		_spec.SetField(event.FieldEventTime, field.TypeTime, value)
	}
	if _u.mutation.EventTimeCleared() {
		_spec.ClearField(event.FieldEventTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(event.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LatestExtractionID(); ok {
		_spec.SetField(event.FieldLatestExtractionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatestExtractionID(); ok {
		_spec.AddField(event.FieldLatestExtractionID, field.TypeInt, value)
	}
	if _u.mutation.LatestExtractionIDCleared() {
		_spec.ClearField(event.FieldLatestExtractionID, field.TypeInt)
	}
	if _u.mutation.MessageLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessageLinksIDs(); len(nodes) > 0 && !_u.mutation.MessageLinksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessageLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.MessageLinksTable,
			Columns: []string{event.MessageLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
