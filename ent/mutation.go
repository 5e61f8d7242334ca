// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/predicate"
	"github.com/civicquant/pipeline/ent/processinglock"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/publishedpost"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEntityMention   = "EntityMention"
	TypeEvent           = "Event"
	TypeEventMessage    = "EventMessage"
	TypeExtraction      = "Extraction"
	TypeProcessingLock  = "ProcessingLock"
	TypeProcessingState = "ProcessingState"
	TypePublishedPost   = "PublishedPost"
	TypeRawMessage      = "RawMessage"
	TypeRoutingDecision = "RoutingDecision"
)

// EntityMentionMutation represents an operation that mutates the EntityMention nodes in the graph.
type EntityMentionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	event_id           *int
	addevent_id        *int
	entity_type        *string
	entity_value       *string
	topic              *string
	is_breaking        *bool
	event_time         *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	raw_message        *int
	clearedraw_message bool
	done               bool
	oldValue           func(context.Context) (*EntityMention, error)
	predicates         []predicate.EntityMention
}

var _ ent.Mutation = (*EntityMentionMutation)(nil)

// entitymentionOption allows management of the mutation configuration using functional options.
type entitymentionOption func(*EntityMentionMutation)

// newEntityMentionMutation creates new mutation for the EntityMention entity.
func newEntityMentionMutation(c config, op Op, opts ...entitymentionOption) *EntityMentionMutation {
	m := &EntityMentionMutation{
		config:        c,
		op:            op,
		typ:           TypeEntityMention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityMentionID sets the ID field of the mutation.
func withEntityMentionID(id int) entitymentionOption {
	return func(m *EntityMentionMutation) {
		var (
			err   error
			once  sync.Once
			value *EntityMention
		)
		m.oldValue = func(ctx context.Context) (*EntityMention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntityMention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntityMention sets the old EntityMention of the mutation.
func withEntityMention(node *EntityMention) entitymentionOption {
	return func(m *EntityMentionMutation) {
		m.oldValue = func(context.Context) (*EntityMention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMentionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMentionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMentionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMentionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntityMention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawMessageID sets the "raw_message_id" field.
func (m *EntityMentionMutation) SetRawMessageID(i int) {
	m.raw_message = &i
}

// RawMessageID returns the value of the "raw_message_id" field in the mutation.
func (m *EntityMentionMutation) RawMessageID() (r int, exists bool) {
	v := m.raw_message
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMessageID returns the old "raw_message_id" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldRawMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMessageID: %w", err)
	}
	return oldValue.RawMessageID, nil
}

// ResetRawMessageID resets all changes to the "raw_message_id" field.
func (m *EntityMentionMutation) ResetRawMessageID() {
	m.raw_message = nil
}

// SetEventID sets the "event_id" field.
func (m *EntityMentionMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EntityMentionMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEventID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *EntityMentionMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *EntityMentionMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEventID clears the value of the "event_id" field.
func (m *EntityMentionMutation) ClearEventID() {
	m.event_id = nil
	m.addevent_id = nil
	m.clearedFields[entitymention.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *EntityMentionMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EntityMentionMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
	delete(m.clearedFields, entitymention.FieldEventID)
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMentionMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMentionMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMentionMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityValue sets the "entity_value" field.
func (m *EntityMentionMutation) SetEntityValue(s string) {
	m.entity_value = &s
}

// EntityValue returns the value of the "entity_value" field in the mutation.
func (m *EntityMentionMutation) EntityValue() (r string, exists bool) {
	v := m.entity_value
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityValue returns the old "entity_value" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEntityValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityValue: %w", err)
	}
	return oldValue.EntityValue, nil
}

// ResetEntityValue resets all changes to the "entity_value" field.
func (m *EntityMentionMutation) ResetEntityValue() {
	m.entity_value = nil
}

// SetTopic sets the "topic" field.
func (m *EntityMentionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *EntityMentionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *EntityMentionMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[entitymention.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *EntityMentionMutation) TopicCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *EntityMentionMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, entitymention.FieldTopic)
}

// SetIsBreaking sets the "is_breaking" field.
func (m *EntityMentionMutation) SetIsBreaking(b bool) {
	m.is_breaking = &b
}

// IsBreaking returns the value of the "is_breaking" field in the mutation.
func (m *EntityMentionMutation) IsBreaking() (r bool, exists bool) {
	v := m.is_breaking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBreaking returns the old "is_breaking" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldIsBreaking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBreaking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBreaking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBreaking: %w", err)
	}
	return oldValue.IsBreaking, nil
}

// ResetIsBreaking resets all changes to the "is_breaking" field.
func (m *EntityMentionMutation) ResetIsBreaking() {
	m.is_breaking = nil
}

// SetEventTime sets the "event_time" field.
func (m *EntityMentionMutation) SetEventTime(t time.Time) {
	m.event_time = &t
}

// EventTime returns the value of the "event_time" field in the mutation.
func (m *EntityMentionMutation) EventTime() (r time.Time, exists bool) {
	v := m.event_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTime returns the old "event_time" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldEventTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTime: %w", err)
	}
	return oldValue.EventTime, nil
}

// ClearEventTime clears the value of the "event_time" field.
func (m *EntityMentionMutation) ClearEventTime() {
	m.event_time = nil
	m.clearedFields[entitymention.FieldEventTime] = struct{}{}
}

// EventTimeCleared returns if the "event_time" field was cleared in this mutation.
func (m *EntityMentionMutation) EventTimeCleared() bool {
	_, ok := m.clearedFields[entitymention.FieldEventTime]
	return ok
}

// ResetEventTime resets all changes to the "event_time" field.
func (m *EntityMentionMutation) ResetEventTime() {
	m.event_time = nil
	delete(m.clearedFields, entitymention.FieldEventTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *EntityMentionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntityMentionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EntityMention entity.
// If the EntityMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMentionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntityMentionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRawMessage clears the "raw_message" edge to the RawMessage entity.
func (m *EntityMentionMutation) ClearRawMessage() {
	m.clearedraw_message = true
	m.clearedFields[entitymention.FieldRawMessageID] = struct{}{}
}

// RawMessageCleared reports if the "raw_message" edge to the RawMessage entity was cleared.
func (m *EntityMentionMutation) RawMessageCleared() bool {
	return m.clearedraw_message
}

// RawMessageIDs returns the "raw_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawMessageID instead. It exists only for internal usage by the builders.
func (m *EntityMentionMutation) RawMessageIDs() (ids []int) {
	if id := m.raw_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawMessage resets all changes to the "raw_message" edge.
func (m *EntityMentionMutation) ResetRawMessage() {
	m.raw_message = nil
	m.clearedraw_message = false
}

// Where appends a list predicates to the EntityMentionMutation builder.
func (m *EntityMentionMutation) Where(ps ...predicate.EntityMention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMentionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMentionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntityMention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMentionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMentionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntityMention).
func (m *EntityMentionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMentionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.raw_message != nil {
		fields = append(fields, entitymention.FieldRawMessageID)
	}
	if m.event_id != nil {
		fields = append(fields, entitymention.FieldEventID)
	}
	if m.entity_type != nil {
		fields = append(fields, entitymention.FieldEntityType)
	}
	if m.entity_value != nil {
		fields = append(fields, entitymention.FieldEntityValue)
	}
	if m.topic != nil {
		fields = append(fields, entitymention.FieldTopic)
	}
	if m.is_breaking != nil {
		fields = append(fields, entitymention.FieldIsBreaking)
	}
	if m.event_time != nil {
		fields = append(fields, entitymention.FieldEventTime)
	}
	if m.created_at != nil {
		fields = append(fields, entitymention.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMentionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldRawMessageID:
		return m.RawMessageID()
	case entitymention.FieldEventID:
		return m.EventID()
	case entitymention.FieldEntityType:
		return m.EntityType()
	case entitymention.FieldEntityValue:
		return m.EntityValue()
	case entitymention.FieldTopic:
		return m.Topic()
	case entitymention.FieldIsBreaking:
		return m.IsBreaking()
	case entitymention.FieldEventTime:
		return m.EventTime()
	case entitymention.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMentionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitymention.FieldRawMessageID:
		return m.OldRawMessageID(ctx)
	case entitymention.FieldEventID:
		return m.OldEventID(ctx)
	case entitymention.FieldEntityType:
		return m.OldEntityType(ctx)
	case entitymention.FieldEntityValue:
		return m.OldEntityValue(ctx)
	case entitymention.FieldTopic:
		return m.OldTopic(ctx)
	case entitymention.FieldIsBreaking:
		return m.OldIsBreaking(ctx)
	case entitymention.FieldEventTime:
		return m.OldEventTime(ctx)
	case entitymention.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntityMention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldRawMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMessageID(v)
		return nil
	case entitymention.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case entitymention.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entitymention.FieldEntityValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityValue(v)
		return nil
	case entitymention.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case entitymention.FieldIsBreaking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBreaking(v)
		return nil
	case entitymention.FieldEventTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTime(v)
		return nil
	case entitymention.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMentionMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, entitymention.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMentionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitymention.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMentionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitymention.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown EntityMention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMentionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entitymention.FieldEventID) {
		fields = append(fields, entitymention.FieldEventID)
	}
	if m.FieldCleared(entitymention.FieldTopic) {
		fields = append(fields, entitymention.FieldTopic)
	}
	if m.FieldCleared(entitymention.FieldEventTime) {
		fields = append(fields, entitymention.FieldEventTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMentionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMentionMutation) ClearField(name string) error {
	switch name {
	case entitymention.FieldEventID:
		m.ClearEventID()
		return nil
	case entitymention.FieldTopic:
		m.ClearTopic()
		return nil
	case entitymention.FieldEventTime:
		m.ClearEventTime()
		return nil
	}
	return fmt.Errorf("unknown EntityMention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMentionMutation) ResetField(name string) error {
	switch name {
	case entitymention.FieldRawMessageID:
		m.ResetRawMessageID()
		return nil
	case entitymention.FieldEventID:
		m.ResetEventID()
		return nil
	case entitymention.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entitymention.FieldEntityValue:
		m.ResetEntityValue()
		return nil
	case entitymention.FieldTopic:
		m.ResetTopic()
		return nil
	case entitymention.FieldIsBreaking:
		m.ResetIsBreaking()
		return nil
	case entitymention.FieldEventTime:
		m.ResetEventTime()
		return nil
	case entitymention.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EntityMention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMentionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.raw_message != nil {
		edges = append(edges, entitymention.EdgeRawMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMentionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitymention.EdgeRawMessage:
		if id := m.raw_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMentionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMentionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMentionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedraw_message {
		edges = append(edges, entitymention.EdgeRawMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMentionMutation) EdgeCleared(name string) bool {
	switch name {
	case entitymention.EdgeRawMessage:
		return m.clearedraw_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMentionMutation) ClearEdge(name string) error {
	switch name {
	case entitymention.EdgeRawMessage:
		m.ClearRawMessage()
		return nil
	}
	return fmt.Errorf("unknown EntityMention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMentionMutation) ResetEdge(name string) error {
	switch name {
	case entitymention.EdgeRawMessage:
		m.ResetRawMessage()
		return nil
	}
	return fmt.Errorf("unknown EntityMention edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	event_fingerprint       *string
	topic                   *string
	summary                 *string
	impact_score            *float64
	addimpact_score         *float64
	is_breaking             *bool
	breaking_window         *string
	event_time              *time.Time
	last_updated_at         *time.Time
	latest_extraction_id    *int
	addlatest_extraction_id *int
	clearedFields           map[string]struct{}
	message_links           map[int]struct{}
	removedmessage_links    map[int]struct{}
	clearedmessage_links    bool
	done                    bool
	oldValue                func(context.Context) (*Event, error)
	predicates              []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (m *EventMutation) SetEventFingerprint(s string) {
	m.event_fingerprint = &s
}

// EventFingerprint returns the value of the "event_fingerprint" field in the mutation.
func (m *EventMutation) EventFingerprint() (r string, exists bool) {
	v := m.event_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldEventFingerprint returns the old "event_fingerprint" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventFingerprint: %w", err)
	}
	return oldValue.EventFingerprint, nil
}

// ResetEventFingerprint resets all changes to the "event_fingerprint" field.
func (m *EventMutation) ResetEventFingerprint() {
	m.event_fingerprint = nil
}

// SetTopic sets the "topic" field.
func (m *EventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *EventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTopic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *EventMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[event.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *EventMutation) TopicCleared() bool {
	_, ok := m.clearedFields[event.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *EventMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, event.FieldTopic)
}

// SetSummary sets the "summary" field.
func (m *EventMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *EventMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *EventMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[event.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *EventMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[event.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *EventMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, event.FieldSummary)
}

// SetImpactScore sets the "impact_score" field.
func (m *EventMutation) SetImpactScore(f float64) {
	m.impact_score = &f
	m.addimpact_score = nil
}

// ImpactScore returns the value of the "impact_score" field in the mutation.
func (m *EventMutation) ImpactScore() (r float64, exists bool) {
	v := m.impact_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImpactScore returns the old "impact_score" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldImpactScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpactScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpactScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpactScore: %w", err)
	}
	return oldValue.ImpactScore, nil
}

// AddImpactScore adds f to the "impact_score" field.
func (m *EventMutation) AddImpactScore(f float64) {
	if m.addimpact_score != nil {
		*m.addimpact_score += f
	} else {
		m.addimpact_score = &f
	}
}

// AddedImpactScore returns the value that was added to the "impact_score" field in this mutation.
func (m *EventMutation) AddedImpactScore() (r float64, exists bool) {
	v := m.addimpact_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearImpactScore clears the value of the "impact_score" field.
func (m *EventMutation) ClearImpactScore() {
	m.impact_score = nil
	m.addimpact_score = nil
	m.clearedFields[event.FieldImpactScore] = struct{}{}
}

// ImpactScoreCleared returns if the "impact_score" field was cleared in this mutation.
func (m *EventMutation) ImpactScoreCleared() bool {
	_, ok := m.clearedFields[event.FieldImpactScore]
	return ok
}

// ResetImpactScore resets all changes to the "impact_score" field.
func (m *EventMutation) ResetImpactScore() {
	m.impact_score = nil
	m.addimpact_score = nil
	delete(m.clearedFields, event.FieldImpactScore)
}

// SetIsBreaking sets the "is_breaking" field.
func (m *EventMutation) SetIsBreaking(b bool) {
	m.is_breaking = &b
}

// IsBreaking returns the value of the "is_breaking" field in the mutation.
func (m *EventMutation) IsBreaking() (r bool, exists bool) {
	v := m.is_breaking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBreaking returns the old "is_breaking" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIsBreaking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBreaking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBreaking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBreaking: %w", err)
	}
	return oldValue.IsBreaking, nil
}

// ResetIsBreaking resets all changes to the "is_breaking" field.
func (m *EventMutation) ResetIsBreaking() {
	m.is_breaking = nil
}

// SetBreakingWindow sets the "breaking_window" field.
func (m *EventMutation) SetBreakingWindow(s string) {
	m.breaking_window = &s
}

// BreakingWindow returns the value of the "breaking_window" field in the mutation.
func (m *EventMutation) BreakingWindow() (r string, exists bool) {
	v := m.breaking_window
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakingWindow returns the old "breaking_window" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldBreakingWindow(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakingWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakingWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakingWindow: %w", err)
	}
	return oldValue.BreakingWindow, nil
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (m *EventMutation) ClearBreakingWindow() {
	m.breaking_window = nil
	m.clearedFields[event.FieldBreakingWindow] = struct{}{}
}

// BreakingWindowCleared returns if the "breaking_window" field was cleared in this mutation.
func (m *EventMutation) BreakingWindowCleared() bool {
	_, ok := m.clearedFields[event.FieldBreakingWindow]
	return ok
}

// ResetBreakingWindow resets all changes to the "breaking_window" field.
func (m *EventMutation) ResetBreakingWindow() {
	m.breaking_window = nil
	delete(m.clearedFields, event.FieldBreakingWindow)
}

// SetEventTime sets the "event_time" field.
func (m *EventMutation) SetEventTime(t time.Time) {
	m.event_time = &t
}

// EventTime returns the value of the "event_time" field in the mutation.
func (m *EventMutation) EventTime() (r time.Time, exists bool) {
	v := m.event_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTime returns the old "event_time" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTime: %w", err)
	}
	return oldValue.EventTime, nil
}

// ClearEventTime clears the value of the "event_time" field.
func (m *EventMutation) ClearEventTime() {
	m.event_time = nil
	m.clearedFields[event.FieldEventTime] = struct{}{}
}

// EventTimeCleared returns if the "event_time" field was cleared in this mutation.
func (m *EventMutation) EventTimeCleared() bool {
	_, ok := m.clearedFields[event.FieldEventTime]
	return ok
}

// ResetEventTime resets all changes to the "event_time" field.
func (m *EventMutation) ResetEventTime() {
	m.event_time = nil
	delete(m.clearedFields, event.FieldEventTime)
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *EventMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *EventMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *EventMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// SetLatestExtractionID sets the "latest_extraction_id" field.
func (m *EventMutation) SetLatestExtractionID(i int) {
	m.latest_extraction_id = &i
	m.addlatest_extraction_id = nil
}

// LatestExtractionID returns the value of the "latest_extraction_id" field in the mutation.
func (m *EventMutation) LatestExtractionID() (r int, exists bool) {
	v := m.latest_extraction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLatestExtractionID returns the old "latest_extraction_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLatestExtractionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatestExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatestExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatestExtractionID: %w", err)
	}
	return oldValue.LatestExtractionID, nil
}

// AddLatestExtractionID adds i to the "latest_extraction_id" field.
func (m *EventMutation) AddLatestExtractionID(i int) {
	if m.addlatest_extraction_id != nil {
		*m.addlatest_extraction_id += i
	} else {
		m.addlatest_extraction_id = &i
	}
}

// AddedLatestExtractionID returns the value that was added to the "latest_extraction_id" field in this mutation.
func (m *EventMutation) AddedLatestExtractionID() (r int, exists bool) {
	v := m.addlatest_extraction_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatestExtractionID clears the value of the "latest_extraction_id" field.
func (m *EventMutation) ClearLatestExtractionID() {
	m.latest_extraction_id = nil
	m.addlatest_extraction_id = nil
	m.clearedFields[event.FieldLatestExtractionID] = struct{}{}
}

// LatestExtractionIDCleared returns if the "latest_extraction_id" field was cleared in this mutation.
func (m *EventMutation) LatestExtractionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldLatestExtractionID]
	return ok
}

// ResetLatestExtractionID resets all changes to the "latest_extraction_id" field.
func (m *EventMutation) ResetLatestExtractionID() {
	m.latest_extraction_id = nil
	m.addlatest_extraction_id = nil
	delete(m.clearedFields, event.FieldLatestExtractionID)
}

// AddMessageLinkIDs adds the "message_links" edge to the EventMessage entity by ids.
func (m *EventMutation) AddMessageLinkIDs(ids ...int) {
	if m.message_links == nil {
		m.message_links = make(map[int]struct{})
	}
	for i := range ids {
		m.message_links[ids[i]] = struct{}{}
	}
}

// ClearMessageLinks clears the "message_links" edge to the EventMessage entity.
func (m *EventMutation) ClearMessageLinks() {
	m.clearedmessage_links = true
}

// MessageLinksCleared reports if the "message_links" edge to the EventMessage entity was cleared.
func (m *EventMutation) MessageLinksCleared() bool {
	return m.clearedmessage_links
}

// RemoveMessageLinkIDs removes the "message_links" edge to the EventMessage entity by IDs.
func (m *EventMutation) RemoveMessageLinkIDs(ids ...int) {
	if m.removedmessage_links == nil {
		m.removedmessage_links = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.message_links, ids[i])
		m.removedmessage_links[ids[i]] = struct{}{}
	}
}

// RemovedMessageLinks returns the removed IDs of the "message_links" edge to the EventMessage entity.
func (m *EventMutation) RemovedMessageLinksIDs() (ids []int) {
	for id := range m.removedmessage_links {
		ids = append(ids, id)
	}
	return
}

// MessageLinksIDs returns the "message_links" edge IDs in the mutation.
func (m *EventMutation) MessageLinksIDs() (ids []int) {
	for id := range m.message_links {
		ids = append(ids, id)
	}
	return
}

// ResetMessageLinks resets all changes to the "message_links" edge.
func (m *EventMutation) ResetMessageLinks() {
	m.message_links = nil
	m.clearedmessage_links = false
	m.removedmessage_links = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_fingerprint != nil {
		fields = append(fields, event.FieldEventFingerprint)
	}
	if m.topic != nil {
		fields = append(fields, event.FieldTopic)
	}
	if m.summary != nil {
		fields = append(fields, event.FieldSummary)
	}
	if m.impact_score != nil {
		fields = append(fields, event.FieldImpactScore)
	}
	if m.is_breaking != nil {
		fields = append(fields, event.FieldIsBreaking)
	}
	if m.breaking_window != nil {
		fields = append(fields, event.FieldBreakingWindow)
	}
	if m.event_time != nil {
		fields = append(fields, event.FieldEventTime)
	}
	if m.last_updated_at != nil {
		fields = append(fields, event.FieldLastUpdatedAt)
	}
	if m.latest_extraction_id != nil {
		fields = append(fields, event.FieldLatestExtractionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventFingerprint:
		return m.EventFingerprint()
	case event.FieldTopic:
		return m.Topic()
	case event.FieldSummary:
		return m.Summary()
	case event.FieldImpactScore:
		return m.ImpactScore()
	case event.FieldIsBreaking:
		return m.IsBreaking()
	case event.FieldBreakingWindow:
		return m.BreakingWindow()
	case event.FieldEventTime:
		return m.EventTime()
	case event.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	case event.FieldLatestExtractionID:
		return m.LatestExtractionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventFingerprint:
		return m.OldEventFingerprint(ctx)
	case event.FieldTopic:
		return m.OldTopic(ctx)
	case event.FieldSummary:
		return m.OldSummary(ctx)
	case event.FieldImpactScore:
		return m.OldImpactScore(ctx)
	case event.FieldIsBreaking:
		return m.OldIsBreaking(ctx)
	case event.FieldBreakingWindow:
		return m.OldBreakingWindow(ctx)
	case event.FieldEventTime:
		return m.OldEventTime(ctx)
	case event.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	case event.FieldLatestExtractionID:
		return m.OldLatestExtractionID(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventFingerprint(v)
		return nil
	case event.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case event.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case event.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpactScore(v)
		return nil
	case event.FieldIsBreaking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBreaking(v)
		return nil
	case event.FieldBreakingWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakingWindow(v)
		return nil
	case event.FieldEventTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTime(v)
		return nil
	case event.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	case event.FieldLatestExtractionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatestExtractionID(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addimpact_score != nil {
		fields = append(fields, event.FieldImpactScore)
	}
	if m.addlatest_extraction_id != nil {
		fields = append(fields, event.FieldLatestExtractionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldImpactScore:
		return m.AddedImpactScore()
	case event.FieldLatestExtractionID:
		return m.AddedLatestExtractionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpactScore(v)
		return nil
	case event.FieldLatestExtractionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatestExtractionID(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldTopic) {
		fields = append(fields, event.FieldTopic)
	}
	if m.FieldCleared(event.FieldSummary) {
		fields = append(fields, event.FieldSummary)
	}
	if m.FieldCleared(event.FieldImpactScore) {
		fields = append(fields, event.FieldImpactScore)
	}
	if m.FieldCleared(event.FieldBreakingWindow) {
		fields = append(fields, event.FieldBreakingWindow)
	}
	if m.FieldCleared(event.FieldEventTime) {
		fields = append(fields, event.FieldEventTime)
	}
	if m.FieldCleared(event.FieldLatestExtractionID) {
		fields = append(fields, event.FieldLatestExtractionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldTopic:
		m.ClearTopic()
		return nil
	case event.FieldSummary:
		m.ClearSummary()
		return nil
	case event.FieldImpactScore:
		m.ClearImpactScore()
		return nil
	case event.FieldBreakingWindow:
		m.ClearBreakingWindow()
		return nil
	case event.FieldEventTime:
		m.ClearEventTime()
		return nil
	case event.FieldLatestExtractionID:
		m.ClearLatestExtractionID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventFingerprint:
		m.ResetEventFingerprint()
		return nil
	case event.FieldTopic:
		m.ResetTopic()
		return nil
	case event.FieldSummary:
		m.ResetSummary()
		return nil
	case event.FieldImpactScore:
		m.ResetImpactScore()
		return nil
	case event.FieldIsBreaking:
		m.ResetIsBreaking()
		return nil
	case event.FieldBreakingWindow:
		m.ResetBreakingWindow()
		return nil
	case event.FieldEventTime:
		m.ResetEventTime()
		return nil
	case event.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	case event.FieldLatestExtractionID:
		m.ResetLatestExtractionID()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.message_links != nil {
		edges = append(edges, event.EdgeMessageLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.message_links))
		for id := range m.message_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmessage_links != nil {
		edges = append(edges, event.EdgeMessageLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeMessageLinks:
		ids := make([]ent.Value, 0, len(m.removedmessage_links))
		for id := range m.removedmessage_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmessage_links {
		edges = append(edges, event.EdgeMessageLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeMessageLinks:
		return m.clearedmessage_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeMessageLinks:
		m.ResetMessageLinks()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// EventMessageMutation represents an operation that mutates the EventMessage nodes in the graph.
type EventMessageMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	linked_at          *time.Time
	clearedFields      map[string]struct{}
	event              *int
	clearedevent       bool
	raw_message        *int
	clearedraw_message bool
	done               bool
	oldValue           func(context.Context) (*EventMessage, error)
	predicates         []predicate.EventMessage
}

var _ ent.Mutation = (*EventMessageMutation)(nil)

// eventmessageOption allows management of the mutation configuration using functional options.
type eventmessageOption func(*EventMessageMutation)

// newEventMessageMutation creates new mutation for the EventMessage entity.
func newEventMessageMutation(c config, op Op, opts ...eventmessageOption) *EventMessageMutation {
	m := &EventMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeEventMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventMessageID sets the ID field of the mutation.
func withEventMessageID(id int) eventmessageOption {
	return func(m *EventMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *EventMessage
		)
		m.oldValue = func(ctx context.Context) (*EventMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventMessage sets the old EventMessage of the mutation.
func withEventMessage(node *EventMessage) eventmessageOption {
	return func(m *EventMessageMutation) {
		m.oldValue = func(context.Context) (*EventMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventMessageMutation) SetEventID(i int) {
	m.event = &i
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMessageMutation) EventID() (r int, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventMessage entity.
// If the EventMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMessageMutation) OldEventID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMessageMutation) ResetEventID() {
	m.event = nil
}

// SetRawMessageID sets the "raw_message_id" field.
func (m *EventMessageMutation) SetRawMessageID(i int) {
	m.raw_message = &i
}

// RawMessageID returns the value of the "raw_message_id" field in the mutation.
func (m *EventMessageMutation) RawMessageID() (r int, exists bool) {
	v := m.raw_message
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMessageID returns the old "raw_message_id" field's value of the EventMessage entity.
// If the EventMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMessageMutation) OldRawMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMessageID: %w", err)
	}
	return oldValue.RawMessageID, nil
}

// ResetRawMessageID resets all changes to the "raw_message_id" field.
func (m *EventMessageMutation) ResetRawMessageID() {
	m.raw_message = nil
}

// SetLinkedAt sets the "linked_at" field.
func (m *EventMessageMutation) SetLinkedAt(t time.Time) {
	m.linked_at = &t
}

// LinkedAt returns the value of the "linked_at" field in the mutation.
func (m *EventMessageMutation) LinkedAt() (r time.Time, exists bool) {
	v := m.linked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLinkedAt returns the old "linked_at" field's value of the EventMessage entity.
// If the EventMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMessageMutation) OldLinkedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinkedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinkedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinkedAt: %w", err)
	}
	return oldValue.LinkedAt, nil
}

// ResetLinkedAt resets all changes to the "linked_at" field.
func (m *EventMessageMutation) ResetLinkedAt() {
	m.linked_at = nil
}

// ClearEvent clears the "event" edge to the Event entity.
func (m *EventMessageMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[eventmessage.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the Event entity was cleared.
func (m *EventMessageMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EventMessageMutation) EventIDs() (ids []int) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EventMessageMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// ClearRawMessage clears the "raw_message" edge to the RawMessage entity.
func (m *EventMessageMutation) ClearRawMessage() {
	m.clearedraw_message = true
	m.clearedFields[eventmessage.FieldRawMessageID] = struct{}{}
}

// RawMessageCleared reports if the "raw_message" edge to the RawMessage entity was cleared.
func (m *EventMessageMutation) RawMessageCleared() bool {
	return m.clearedraw_message
}

// RawMessageIDs returns the "raw_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawMessageID instead. It exists only for internal usage by the builders.
func (m *EventMessageMutation) RawMessageIDs() (ids []int) {
	if id := m.raw_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawMessage resets all changes to the "raw_message" edge.
func (m *EventMessageMutation) ResetRawMessage() {
	m.raw_message = nil
	m.clearedraw_message = false
}

// Where appends a list predicates to the EventMessageMutation builder.
func (m *EventMessageMutation) Where(ps ...predicate.EventMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventMessage).
func (m *EventMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMessageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.event != nil {
		fields = append(fields, eventmessage.FieldEventID)
	}
	if m.raw_message != nil {
		fields = append(fields, eventmessage.FieldRawMessageID)
	}
	if m.linked_at != nil {
		fields = append(fields, eventmessage.FieldLinkedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventmessage.FieldEventID:
		return m.EventID()
	case eventmessage.FieldRawMessageID:
		return m.RawMessageID()
	case eventmessage.FieldLinkedAt:
		return m.LinkedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventmessage.FieldEventID:
		return m.OldEventID(ctx)
	case eventmessage.FieldRawMessageID:
		return m.OldRawMessageID(ctx)
	case eventmessage.FieldLinkedAt:
		return m.OldLinkedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventmessage.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventmessage.FieldRawMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMessageID(v)
		return nil
	case eventmessage.FieldLinkedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinkedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EventMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMessageMutation) ResetField(name string) error {
	switch name {
	case eventmessage.FieldEventID:
		m.ResetEventID()
		return nil
	case eventmessage.FieldRawMessageID:
		m.ResetRawMessageID()
		return nil
	case eventmessage.FieldLinkedAt:
		m.ResetLinkedAt()
		return nil
	}
	return fmt.Errorf("unknown EventMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.event != nil {
		edges = append(edges, eventmessage.EdgeEvent)
	}
	if m.raw_message != nil {
		edges = append(edges, eventmessage.EdgeRawMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventmessage.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	case eventmessage.EdgeRawMessage:
		if id := m.raw_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedevent {
		edges = append(edges, eventmessage.EdgeEvent)
	}
	if m.clearedraw_message {
		edges = append(edges, eventmessage.EdgeRawMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case eventmessage.EdgeEvent:
		return m.clearedevent
	case eventmessage.EdgeRawMessage:
		return m.clearedraw_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMessageMutation) ClearEdge(name string) error {
	switch name {
	case eventmessage.EdgeEvent:
		m.ClearEvent()
		return nil
	case eventmessage.EdgeRawMessage:
		m.ClearRawMessage()
		return nil
	}
	return fmt.Errorf("unknown EventMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMessageMutation) ResetEdge(name string) error {
	switch name {
	case eventmessage.EdgeEvent:
		m.ResetEvent()
		return nil
	case eventmessage.EdgeRawMessage:
		m.ResetRawMessage()
		return nil
	}
	return fmt.Errorf("unknown EventMessage edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	extractor_name     *string
	schema_version     *int
	addschema_version  *int
	model_name         *string
	event_time         *time.Time
	topic              *string
	impact_score       *float64
	addimpact_score    *float64
	confidence         *float64
	addconfidence      *float64
	sentiment          *string
	is_breaking        *bool
	breaking_window    *string
	event_fingerprint  *string
	prompt_version     *string
	processing_run_id  *string
	llm_raw_response   *string
	validated_at       *time.Time
	payload            *map[string]interface{}
	canonical_payload  *map[string]interface{}
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	raw_message        *int
	clearedraw_message bool
	done               bool
	oldValue           func(context.Context) (*Extraction, error)
	predicates         []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id int) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawMessageID sets the "raw_message_id" field.
func (m *ExtractionMutation) SetRawMessageID(i int) {
	m.raw_message = &i
}

// RawMessageID returns the value of the "raw_message_id" field in the mutation.
func (m *ExtractionMutation) RawMessageID() (r int, exists bool) {
	v := m.raw_message
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMessageID returns the old "raw_message_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldRawMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMessageID: %w", err)
	}
	return oldValue.RawMessageID, nil
}

// ResetRawMessageID resets all changes to the "raw_message_id" field.
func (m *ExtractionMutation) ResetRawMessageID() {
	m.raw_message = nil
}

// SetExtractorName sets the "extractor_name" field.
func (m *ExtractionMutation) SetExtractorName(s string) {
	m.extractor_name = &s
}

// ExtractorName returns the value of the "extractor_name" field in the mutation.
func (m *ExtractionMutation) ExtractorName() (r string, exists bool) {
	v := m.extractor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractorName returns the old "extractor_name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldExtractorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractorName: %w", err)
	}
	return oldValue.ExtractorName, nil
}

// ResetExtractorName resets all changes to the "extractor_name" field.
func (m *ExtractionMutation) ResetExtractorName() {
	m.extractor_name = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *ExtractionMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *ExtractionMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *ExtractionMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *ExtractionMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *ExtractionMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetModelName sets the "model_name" field.
func (m *ExtractionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extraction.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extraction.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extraction.FieldModelName)
}

// SetEventTime sets the "event_time" field.
func (m *ExtractionMutation) SetEventTime(t time.Time) {
	m.event_time = &t
}

// EventTime returns the value of the "event_time" field in the mutation.
func (m *ExtractionMutation) EventTime() (r time.Time, exists bool) {
	v := m.event_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTime returns the old "event_time" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldEventTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTime: %w", err)
	}
	return oldValue.EventTime, nil
}

// ClearEventTime clears the value of the "event_time" field.
func (m *ExtractionMutation) ClearEventTime() {
	m.event_time = nil
	m.clearedFields[extraction.FieldEventTime] = struct{}{}
}

// EventTimeCleared returns if the "event_time" field was cleared in this mutation.
func (m *ExtractionMutation) EventTimeCleared() bool {
	_, ok := m.clearedFields[extraction.FieldEventTime]
	return ok
}

// ResetEventTime resets all changes to the "event_time" field.
func (m *ExtractionMutation) ResetEventTime() {
	m.event_time = nil
	delete(m.clearedFields, extraction.FieldEventTime)
}

// SetTopic sets the "topic" field.
func (m *ExtractionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ExtractionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *ExtractionMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[extraction.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *ExtractionMutation) TopicCleared() bool {
	_, ok := m.clearedFields[extraction.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *ExtractionMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, extraction.FieldTopic)
}

// SetImpactScore sets the "impact_score" field.
func (m *ExtractionMutation) SetImpactScore(f float64) {
	m.impact_score = &f
	m.addimpact_score = nil
}

// ImpactScore returns the value of the "impact_score" field in the mutation.
func (m *ExtractionMutation) ImpactScore() (r float64, exists bool) {
	v := m.impact_score
	if v == nil {
		return
	}
	return *v, true
}

// OldImpactScore returns the old "impact_score" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldImpactScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpactScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpactScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpactScore: %w", err)
	}
	return oldValue.ImpactScore, nil
}

// AddImpactScore adds f to the "impact_score" field.
func (m *ExtractionMutation) AddImpactScore(f float64) {
	if m.addimpact_score != nil {
		*m.addimpact_score += f
	} else {
		m.addimpact_score = &f
	}
}

// AddedImpactScore returns the value that was added to the "impact_score" field in this mutation.
func (m *ExtractionMutation) AddedImpactScore() (r float64, exists bool) {
	v := m.addimpact_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearImpactScore clears the value of the "impact_score" field.
func (m *ExtractionMutation) ClearImpactScore() {
	m.impact_score = nil
	m.addimpact_score = nil
	m.clearedFields[extraction.FieldImpactScore] = struct{}{}
}

// ImpactScoreCleared returns if the "impact_score" field was cleared in this mutation.
func (m *ExtractionMutation) ImpactScoreCleared() bool {
	_, ok := m.clearedFields[extraction.FieldImpactScore]
	return ok
}

// ResetImpactScore resets all changes to the "impact_score" field.
func (m *ExtractionMutation) ResetImpactScore() {
	m.impact_score = nil
	m.addimpact_score = nil
	delete(m.clearedFields, extraction.FieldImpactScore)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExtractionMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[extraction.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExtractionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[extraction.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, extraction.FieldConfidence)
}

// SetSentiment sets the "sentiment" field.
func (m *ExtractionMutation) SetSentiment(s string) {
	m.sentiment = &s
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *ExtractionMutation) Sentiment() (r string, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldSentiment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ClearSentiment clears the value of the "sentiment" field.
func (m *ExtractionMutation) ClearSentiment() {
	m.sentiment = nil
	m.clearedFields[extraction.FieldSentiment] = struct{}{}
}

// SentimentCleared returns if the "sentiment" field was cleared in this mutation.
func (m *ExtractionMutation) SentimentCleared() bool {
	_, ok := m.clearedFields[extraction.FieldSentiment]
	return ok
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *ExtractionMutation) ResetSentiment() {
	m.sentiment = nil
	delete(m.clearedFields, extraction.FieldSentiment)
}

// SetIsBreaking sets the "is_breaking" field.
func (m *ExtractionMutation) SetIsBreaking(b bool) {
	m.is_breaking = &b
}

// IsBreaking returns the value of the "is_breaking" field in the mutation.
func (m *ExtractionMutation) IsBreaking() (r bool, exists bool) {
	v := m.is_breaking
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBreaking returns the old "is_breaking" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldIsBreaking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBreaking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBreaking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBreaking: %w", err)
	}
	return oldValue.IsBreaking, nil
}

// ResetIsBreaking resets all changes to the "is_breaking" field.
func (m *ExtractionMutation) ResetIsBreaking() {
	m.is_breaking = nil
}

// SetBreakingWindow sets the "breaking_window" field.
func (m *ExtractionMutation) SetBreakingWindow(s string) {
	m.breaking_window = &s
}

// BreakingWindow returns the value of the "breaking_window" field in the mutation.
func (m *ExtractionMutation) BreakingWindow() (r string, exists bool) {
	v := m.breaking_window
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakingWindow returns the old "breaking_window" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldBreakingWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakingWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakingWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakingWindow: %w", err)
	}
	return oldValue.BreakingWindow, nil
}

// ClearBreakingWindow clears the value of the "breaking_window" field.
func (m *ExtractionMutation) ClearBreakingWindow() {
	m.breaking_window = nil
	m.clearedFields[extraction.FieldBreakingWindow] = struct{}{}
}

// BreakingWindowCleared returns if the "breaking_window" field was cleared in this mutation.
func (m *ExtractionMutation) BreakingWindowCleared() bool {
	_, ok := m.clearedFields[extraction.FieldBreakingWindow]
	return ok
}

// ResetBreakingWindow resets all changes to the "breaking_window" field.
func (m *ExtractionMutation) ResetBreakingWindow() {
	m.breaking_window = nil
	delete(m.clearedFields, extraction.FieldBreakingWindow)
}

// SetEventFingerprint sets the "event_fingerprint" field.
func (m *ExtractionMutation) SetEventFingerprint(s string) {
	m.event_fingerprint = &s
}

// EventFingerprint returns the value of the "event_fingerprint" field in the mutation.
func (m *ExtractionMutation) EventFingerprint() (r string, exists bool) {
	v := m.event_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldEventFingerprint returns the old "event_fingerprint" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldEventFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventFingerprint: %w", err)
	}
	return oldValue.EventFingerprint, nil
}

// ClearEventFingerprint clears the value of the "event_fingerprint" field.
func (m *ExtractionMutation) ClearEventFingerprint() {
	m.event_fingerprint = nil
	m.clearedFields[extraction.FieldEventFingerprint] = struct{}{}
}

// EventFingerprintCleared returns if the "event_fingerprint" field was cleared in this mutation.
func (m *ExtractionMutation) EventFingerprintCleared() bool {
	_, ok := m.clearedFields[extraction.FieldEventFingerprint]
	return ok
}

// ResetEventFingerprint resets all changes to the "event_fingerprint" field.
func (m *ExtractionMutation) ResetEventFingerprint() {
	m.event_fingerprint = nil
	delete(m.clearedFields, extraction.FieldEventFingerprint)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ExtractionMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ExtractionMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *ExtractionMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[extraction.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *ExtractionMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[extraction.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ExtractionMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, extraction.FieldPromptVersion)
}

// SetProcessingRunID sets the "processing_run_id" field.
func (m *ExtractionMutation) SetProcessingRunID(s string) {
	m.processing_run_id = &s
}

// ProcessingRunID returns the value of the "processing_run_id" field in the mutation.
func (m *ExtractionMutation) ProcessingRunID() (r string, exists bool) {
	v := m.processing_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingRunID returns the old "processing_run_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldProcessingRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingRunID: %w", err)
	}
	return oldValue.ProcessingRunID, nil
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (m *ExtractionMutation) ClearProcessingRunID() {
	m.processing_run_id = nil
	m.clearedFields[extraction.FieldProcessingRunID] = struct{}{}
}

// ProcessingRunIDCleared returns if the "processing_run_id" field was cleared in this mutation.
func (m *ExtractionMutation) ProcessingRunIDCleared() bool {
	_, ok := m.clearedFields[extraction.FieldProcessingRunID]
	return ok
}

// ResetProcessingRunID resets all changes to the "processing_run_id" field.
func (m *ExtractionMutation) ResetProcessingRunID() {
	m.processing_run_id = nil
	delete(m.clearedFields, extraction.FieldProcessingRunID)
}

// SetLlmRawResponse sets the "llm_raw_response" field.
func (m *ExtractionMutation) SetLlmRawResponse(s string) {
	m.llm_raw_response = &s
}

// LlmRawResponse returns the value of the "llm_raw_response" field in the mutation.
func (m *ExtractionMutation) LlmRawResponse() (r string, exists bool) {
	v := m.llm_raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmRawResponse returns the old "llm_raw_response" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldLlmRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmRawResponse: %w", err)
	}
	return oldValue.LlmRawResponse, nil
}

// ClearLlmRawResponse clears the value of the "llm_raw_response" field.
func (m *ExtractionMutation) ClearLlmRawResponse() {
	m.llm_raw_response = nil
	m.clearedFields[extraction.FieldLlmRawResponse] = struct{}{}
}

// LlmRawResponseCleared returns if the "llm_raw_response" field was cleared in this mutation.
func (m *ExtractionMutation) LlmRawResponseCleared() bool {
	_, ok := m.clearedFields[extraction.FieldLlmRawResponse]
	return ok
}

// ResetLlmRawResponse resets all changes to the "llm_raw_response" field.
func (m *ExtractionMutation) ResetLlmRawResponse() {
	m.llm_raw_response = nil
	delete(m.clearedFields, extraction.FieldLlmRawResponse)
}

// SetValidatedAt sets the "validated_at" field.
func (m *ExtractionMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *ExtractionMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *ExtractionMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[extraction.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *ExtractionMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[extraction.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *ExtractionMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, extraction.FieldValidatedAt)
}

// SetPayload sets the "payload" field.
func (m *ExtractionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ExtractionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ExtractionMutation) ResetPayload() {
	m.payload = nil
}

// SetCanonicalPayload sets the "canonical_payload" field.
func (m *ExtractionMutation) SetCanonicalPayload(value map[string]interface{}) {
	m.canonical_payload = &value
}

// CanonicalPayload returns the value of the "canonical_payload" field in the mutation.
func (m *ExtractionMutation) CanonicalPayload() (r map[string]interface{}, exists bool) {
	v := m.canonical_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalPayload returns the old "canonical_payload" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCanonicalPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalPayload: %w", err)
	}
	return oldValue.CanonicalPayload, nil
}

// ClearCanonicalPayload clears the value of the "canonical_payload" field.
func (m *ExtractionMutation) ClearCanonicalPayload() {
	m.canonical_payload = nil
	m.clearedFields[extraction.FieldCanonicalPayload] = struct{}{}
}

// CanonicalPayloadCleared returns if the "canonical_payload" field was cleared in this mutation.
func (m *ExtractionMutation) CanonicalPayloadCleared() bool {
	_, ok := m.clearedFields[extraction.FieldCanonicalPayload]
	return ok
}

// ResetCanonicalPayload resets all changes to the "canonical_payload" field.
func (m *ExtractionMutation) ResetCanonicalPayload() {
	m.canonical_payload = nil
	delete(m.clearedFields, extraction.FieldCanonicalPayload)
}

// SetMetadata sets the "metadata" field.
func (m *ExtractionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExtractionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExtractionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[extraction.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExtractionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[extraction.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExtractionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, extraction.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRawMessage clears the "raw_message" edge to the RawMessage entity.
func (m *ExtractionMutation) ClearRawMessage() {
	m.clearedraw_message = true
	m.clearedFields[extraction.FieldRawMessageID] = struct{}{}
}

// RawMessageCleared reports if the "raw_message" edge to the RawMessage entity was cleared.
func (m *ExtractionMutation) RawMessageCleared() bool {
	return m.clearedraw_message
}

// RawMessageIDs returns the "raw_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawMessageID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) RawMessageIDs() (ids []int) {
	if id := m.raw_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawMessage resets all changes to the "raw_message" edge.
func (m *ExtractionMutation) ResetRawMessage() {
	m.raw_message = nil
	m.clearedraw_message = false
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.raw_message != nil {
		fields = append(fields, extraction.FieldRawMessageID)
	}
	if m.extractor_name != nil {
		fields = append(fields, extraction.FieldExtractorName)
	}
	if m.schema_version != nil {
		fields = append(fields, extraction.FieldSchemaVersion)
	}
	if m.model_name != nil {
		fields = append(fields, extraction.FieldModelName)
	}
	if m.event_time != nil {
		fields = append(fields, extraction.FieldEventTime)
	}
	if m.topic != nil {
		fields = append(fields, extraction.FieldTopic)
	}
	if m.impact_score != nil {
		fields = append(fields, extraction.FieldImpactScore)
	}
	if m.confidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.sentiment != nil {
		fields = append(fields, extraction.FieldSentiment)
	}
	if m.is_breaking != nil {
		fields = append(fields, extraction.FieldIsBreaking)
	}
	if m.breaking_window != nil {
		fields = append(fields, extraction.FieldBreakingWindow)
	}
	if m.event_fingerprint != nil {
		fields = append(fields, extraction.FieldEventFingerprint)
	}
	if m.prompt_version != nil {
		fields = append(fields, extraction.FieldPromptVersion)
	}
	if m.processing_run_id != nil {
		fields = append(fields, extraction.FieldProcessingRunID)
	}
	if m.llm_raw_response != nil {
		fields = append(fields, extraction.FieldLlmRawResponse)
	}
	if m.validated_at != nil {
		fields = append(fields, extraction.FieldValidatedAt)
	}
	if m.payload != nil {
		fields = append(fields, extraction.FieldPayload)
	}
	if m.canonical_payload != nil {
		fields = append(fields, extraction.FieldCanonicalPayload)
	}
	if m.metadata != nil {
		fields = append(fields, extraction.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldRawMessageID:
		return m.RawMessageID()
	case extraction.FieldExtractorName:
		return m.ExtractorName()
	case extraction.FieldSchemaVersion:
		return m.SchemaVersion()
	case extraction.FieldModelName:
		return m.ModelName()
	case extraction.FieldEventTime:
		return m.EventTime()
	case extraction.FieldTopic:
		return m.Topic()
	case extraction.FieldImpactScore:
		return m.ImpactScore()
	case extraction.FieldConfidence:
		return m.Confidence()
	case extraction.FieldSentiment:
		return m.Sentiment()
	case extraction.FieldIsBreaking:
		return m.IsBreaking()
	case extraction.FieldBreakingWindow:
		return m.BreakingWindow()
	case extraction.FieldEventFingerprint:
		return m.EventFingerprint()
	case extraction.FieldPromptVersion:
		return m.PromptVersion()
	case extraction.FieldProcessingRunID:
		return m.ProcessingRunID()
	case extraction.FieldLlmRawResponse:
		return m.LlmRawResponse()
	case extraction.FieldValidatedAt:
		return m.ValidatedAt()
	case extraction.FieldPayload:
		return m.Payload()
	case extraction.FieldCanonicalPayload:
		return m.CanonicalPayload()
	case extraction.FieldMetadata:
		return m.Metadata()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldRawMessageID:
		return m.OldRawMessageID(ctx)
	case extraction.FieldExtractorName:
		return m.OldExtractorName(ctx)
	case extraction.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case extraction.FieldModelName:
		return m.OldModelName(ctx)
	case extraction.FieldEventTime:
		return m.OldEventTime(ctx)
	case extraction.FieldTopic:
		return m.OldTopic(ctx)
	case extraction.FieldImpactScore:
		return m.OldImpactScore(ctx)
	case extraction.FieldConfidence:
		return m.OldConfidence(ctx)
	case extraction.FieldSentiment:
		return m.OldSentiment(ctx)
	case extraction.FieldIsBreaking:
		return m.OldIsBreaking(ctx)
	case extraction.FieldBreakingWindow:
		return m.OldBreakingWindow(ctx)
	case extraction.FieldEventFingerprint:
		return m.OldEventFingerprint(ctx)
	case extraction.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case extraction.FieldProcessingRunID:
		return m.OldProcessingRunID(ctx)
	case extraction.FieldLlmRawResponse:
		return m.OldLlmRawResponse(ctx)
	case extraction.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case extraction.FieldPayload:
		return m.OldPayload(ctx)
	case extraction.FieldCanonicalPayload:
		return m.OldCanonicalPayload(ctx)
	case extraction.FieldMetadata:
		return m.OldMetadata(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldRawMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMessageID(v)
		return nil
	case extraction.FieldExtractorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractorName(v)
		return nil
	case extraction.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case extraction.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extraction.FieldEventTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTime(v)
		return nil
	case extraction.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case extraction.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpactScore(v)
		return nil
	case extraction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extraction.FieldSentiment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case extraction.FieldIsBreaking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBreaking(v)
		return nil
	case extraction.FieldBreakingWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakingWindow(v)
		return nil
	case extraction.FieldEventFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventFingerprint(v)
		return nil
	case extraction.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case extraction.FieldProcessingRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingRunID(v)
		return nil
	case extraction.FieldLlmRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmRawResponse(v)
		return nil
	case extraction.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case extraction.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case extraction.FieldCanonicalPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalPayload(v)
		return nil
	case extraction.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addschema_version != nil {
		fields = append(fields, extraction.FieldSchemaVersion)
	}
	if m.addimpact_score != nil {
		fields = append(fields, extraction.FieldImpactScore)
	}
	if m.addconfidence != nil {
		fields = append(fields, extraction.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	case extraction.FieldImpactScore:
		return m.AddedImpactScore()
	case extraction.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	case extraction.FieldImpactScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpactScore(v)
		return nil
	case extraction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldModelName) {
		fields = append(fields, extraction.FieldModelName)
	}
	if m.FieldCleared(extraction.FieldEventTime) {
		fields = append(fields, extraction.FieldEventTime)
	}
	if m.FieldCleared(extraction.FieldTopic) {
		fields = append(fields, extraction.FieldTopic)
	}
	if m.FieldCleared(extraction.FieldImpactScore) {
		fields = append(fields, extraction.FieldImpactScore)
	}
	if m.FieldCleared(extraction.FieldConfidence) {
		fields = append(fields, extraction.FieldConfidence)
	}
	if m.FieldCleared(extraction.FieldSentiment) {
		fields = append(fields, extraction.FieldSentiment)
	}
	if m.FieldCleared(extraction.FieldBreakingWindow) {
		fields = append(fields, extraction.FieldBreakingWindow)
	}
	if m.FieldCleared(extraction.FieldEventFingerprint) {
		fields = append(fields, extraction.FieldEventFingerprint)
	}
	if m.FieldCleared(extraction.FieldPromptVersion) {
		fields = append(fields, extraction.FieldPromptVersion)
	}
	if m.FieldCleared(extraction.FieldProcessingRunID) {
		fields = append(fields, extraction.FieldProcessingRunID)
	}
	if m.FieldCleared(extraction.FieldLlmRawResponse) {
		fields = append(fields, extraction.FieldLlmRawResponse)
	}
	if m.FieldCleared(extraction.FieldValidatedAt) {
		fields = append(fields, extraction.FieldValidatedAt)
	}
	if m.FieldCleared(extraction.FieldCanonicalPayload) {
		fields = append(fields, extraction.FieldCanonicalPayload)
	}
	if m.FieldCleared(extraction.FieldMetadata) {
		fields = append(fields, extraction.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldModelName:
		m.ClearModelName()
		return nil
	case extraction.FieldEventTime:
		m.ClearEventTime()
		return nil
	case extraction.FieldTopic:
		m.ClearTopic()
		return nil
	case extraction.FieldImpactScore:
		m.ClearImpactScore()
		return nil
	case extraction.FieldConfidence:
		m.ClearConfidence()
		return nil
	case extraction.FieldSentiment:
		m.ClearSentiment()
		return nil
	case extraction.FieldBreakingWindow:
		m.ClearBreakingWindow()
		return nil
	case extraction.FieldEventFingerprint:
		m.ClearEventFingerprint()
		return nil
	case extraction.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case extraction.FieldProcessingRunID:
		m.ClearProcessingRunID()
		return nil
	case extraction.FieldLlmRawResponse:
		m.ClearLlmRawResponse()
		return nil
	case extraction.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	case extraction.FieldCanonicalPayload:
		m.ClearCanonicalPayload()
		return nil
	case extraction.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldRawMessageID:
		m.ResetRawMessageID()
		return nil
	case extraction.FieldExtractorName:
		m.ResetExtractorName()
		return nil
	case extraction.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case extraction.FieldModelName:
		m.ResetModelName()
		return nil
	case extraction.FieldEventTime:
		m.ResetEventTime()
		return nil
	case extraction.FieldTopic:
		m.ResetTopic()
		return nil
	case extraction.FieldImpactScore:
		m.ResetImpactScore()
		return nil
	case extraction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extraction.FieldSentiment:
		m.ResetSentiment()
		return nil
	case extraction.FieldIsBreaking:
		m.ResetIsBreaking()
		return nil
	case extraction.FieldBreakingWindow:
		m.ResetBreakingWindow()
		return nil
	case extraction.FieldEventFingerprint:
		m.ResetEventFingerprint()
		return nil
	case extraction.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case extraction.FieldProcessingRunID:
		m.ResetProcessingRunID()
		return nil
	case extraction.FieldLlmRawResponse:
		m.ResetLlmRawResponse()
		return nil
	case extraction.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case extraction.FieldPayload:
		m.ResetPayload()
		return nil
	case extraction.FieldCanonicalPayload:
		m.ResetCanonicalPayload()
		return nil
	case extraction.FieldMetadata:
		m.ResetMetadata()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.raw_message != nil {
		edges = append(edges, extraction.EdgeRawMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeRawMessage:
		if id := m.raw_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedraw_message {
		edges = append(edges, extraction.EdgeRawMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeRawMessage:
		return m.clearedraw_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeRawMessage:
		m.ClearRawMessage()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeRawMessage:
		m.ResetRawMessage()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// ProcessingLockMutation represents an operation that mutates the ProcessingLock nodes in the graph.
type ProcessingLockMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lock_name     *string
	locked_until  *time.Time
	owner_run_id  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessingLock, error)
	predicates    []predicate.ProcessingLock
}

var _ ent.Mutation = (*ProcessingLockMutation)(nil)

// processinglockOption allows management of the mutation configuration using functional options.
type processinglockOption func(*ProcessingLockMutation)

// newProcessingLockMutation creates new mutation for the ProcessingLock entity.
func newProcessingLockMutation(c config, op Op, opts ...processinglockOption) *ProcessingLockMutation {
	m := &ProcessingLockMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLockID sets the ID field of the mutation.
func withProcessingLockID(id int) processinglockOption {
	return func(m *ProcessingLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLock
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLock sets the old ProcessingLock of the mutation.
func withProcessingLock(node *ProcessingLock) processinglockOption {
	return func(m *ProcessingLockMutation) {
		m.oldValue = func(context.Context) (*ProcessingLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLockName sets the "lock_name" field.
func (m *ProcessingLockMutation) SetLockName(s string) {
	m.lock_name = &s
}

// LockName returns the value of the "lock_name" field in the mutation.
func (m *ProcessingLockMutation) LockName() (r string, exists bool) {
	v := m.lock_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLockName returns the old "lock_name" field's value of the ProcessingLock entity.
// If the ProcessingLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLockMutation) OldLockName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockName: %w", err)
	}
	return oldValue.LockName, nil
}

// ResetLockName resets all changes to the "lock_name" field.
func (m *ProcessingLockMutation) ResetLockName() {
	m.lock_name = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *ProcessingLockMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *ProcessingLockMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the ProcessingLock entity.
// If the ProcessingLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLockMutation) OldLockedUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *ProcessingLockMutation) ResetLockedUntil() {
	m.locked_until = nil
}

// SetOwnerRunID sets the "owner_run_id" field.
func (m *ProcessingLockMutation) SetOwnerRunID(s string) {
	m.owner_run_id = &s
}

// OwnerRunID returns the value of the "owner_run_id" field in the mutation.
func (m *ProcessingLockMutation) OwnerRunID() (r string, exists bool) {
	v := m.owner_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerRunID returns the old "owner_run_id" field's value of the ProcessingLock entity.
// If the ProcessingLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLockMutation) OldOwnerRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerRunID: %w", err)
	}
	return oldValue.OwnerRunID, nil
}

// ResetOwnerRunID resets all changes to the "owner_run_id" field.
func (m *ProcessingLockMutation) ResetOwnerRunID() {
	m.owner_run_id = nil
}

// Where appends a list predicates to the ProcessingLockMutation builder.
func (m *ProcessingLockMutation) Where(ps ...predicate.ProcessingLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLock).
func (m *ProcessingLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLockMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.lock_name != nil {
		fields = append(fields, processinglock.FieldLockName)
	}
	if m.locked_until != nil {
		fields = append(fields, processinglock.FieldLockedUntil)
	}
	if m.owner_run_id != nil {
		fields = append(fields, processinglock.FieldOwnerRunID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglock.FieldLockName:
		return m.LockName()
	case processinglock.FieldLockedUntil:
		return m.LockedUntil()
	case processinglock.FieldOwnerRunID:
		return m.OwnerRunID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglock.FieldLockName:
		return m.OldLockName(ctx)
	case processinglock.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case processinglock.FieldOwnerRunID:
		return m.OldOwnerRunID(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglock.FieldLockName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockName(v)
		return nil
	case processinglock.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case processinglock.FieldOwnerRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerRunID(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessingLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProcessingLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLockMutation) ResetField(name string) error {
	switch name {
	case processinglock.FieldLockName:
		m.ResetLockName()
		return nil
	case processinglock.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case processinglock.FieldOwnerRunID:
		m.ResetOwnerRunID()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLock edge %s", name)
}

// ProcessingStateMutation represents an operation that mutates the ProcessingState nodes in the graph.
type ProcessingStateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	status             *processingstate.Status
	attempt_count      *int
	addattempt_count   *int
	last_attempted_at  *time.Time
	completed_at       *time.Time
	lease_expires_at   *time.Time
	last_error         *string
	processing_run_id  *string
	clearedFields      map[string]struct{}
	raw_message        *int
	clearedraw_message bool
	done               bool
	oldValue           func(context.Context) (*ProcessingState, error)
	predicates         []predicate.ProcessingState
}

var _ ent.Mutation = (*ProcessingStateMutation)(nil)

// processingstateOption allows management of the mutation configuration using functional options.
type processingstateOption func(*ProcessingStateMutation)

// newProcessingStateMutation creates new mutation for the ProcessingState entity.
func newProcessingStateMutation(c config, op Op, opts ...processingstateOption) *ProcessingStateMutation {
	m := &ProcessingStateMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingStateID sets the ID field of the mutation.
func withProcessingStateID(id int) processingstateOption {
	return func(m *ProcessingStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingState
		)
		m.oldValue = func(ctx context.Context) (*ProcessingState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingState sets the old ProcessingState of the mutation.
func withProcessingState(node *ProcessingState) processingstateOption {
	return func(m *ProcessingStateMutation) {
		m.oldValue = func(context.Context) (*ProcessingState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawMessageID sets the "raw_message_id" field.
func (m *ProcessingStateMutation) SetRawMessageID(i int) {
	m.raw_message = &i
}

// RawMessageID returns the value of the "raw_message_id" field in the mutation.
func (m *ProcessingStateMutation) RawMessageID() (r int, exists bool) {
	v := m.raw_message
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMessageID returns the old "raw_message_id" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldRawMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMessageID: %w", err)
	}
	return oldValue.RawMessageID, nil
}

// ResetRawMessageID resets all changes to the "raw_message_id" field.
func (m *ProcessingStateMutation) ResetRawMessageID() {
	m.raw_message = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingStateMutation) SetStatus(pr processingstate.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingStateMutation) Status() (r processingstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldStatus(ctx context.Context) (v processingstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingStateMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *ProcessingStateMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *ProcessingStateMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *ProcessingStateMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *ProcessingStateMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *ProcessingStateMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (m *ProcessingStateMutation) SetLastAttemptedAt(t time.Time) {
	m.last_attempted_at = &t
}

// LastAttemptedAt returns the value of the "last_attempted_at" field in the mutation.
func (m *ProcessingStateMutation) LastAttemptedAt() (r time.Time, exists bool) {
	v := m.last_attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedAt returns the old "last_attempted_at" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldLastAttemptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedAt: %w", err)
	}
	return oldValue.LastAttemptedAt, nil
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (m *ProcessingStateMutation) ClearLastAttemptedAt() {
	m.last_attempted_at = nil
	m.clearedFields[processingstate.FieldLastAttemptedAt] = struct{}{}
}

// LastAttemptedAtCleared returns if the "last_attempted_at" field was cleared in this mutation.
func (m *ProcessingStateMutation) LastAttemptedAtCleared() bool {
	_, ok := m.clearedFields[processingstate.FieldLastAttemptedAt]
	return ok
}

// ResetLastAttemptedAt resets all changes to the "last_attempted_at" field.
func (m *ProcessingStateMutation) ResetLastAttemptedAt() {
	m.last_attempted_at = nil
	delete(m.clearedFields, processingstate.FieldLastAttemptedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingStateMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingStateMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingStateMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingstate.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingStateMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingstate.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingStateMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingstate.FieldCompletedAt)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *ProcessingStateMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *ProcessingStateMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *ProcessingStateMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[processingstate.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *ProcessingStateMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[processingstate.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *ProcessingStateMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, processingstate.FieldLeaseExpiresAt)
}

// SetLastError sets the "last_error" field.
func (m *ProcessingStateMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ProcessingStateMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ProcessingStateMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[processingstate.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ProcessingStateMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[processingstate.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ProcessingStateMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, processingstate.FieldLastError)
}

// SetProcessingRunID sets the "processing_run_id" field.
func (m *ProcessingStateMutation) SetProcessingRunID(s string) {
	m.processing_run_id = &s
}

// ProcessingRunID returns the value of the "processing_run_id" field in the mutation.
func (m *ProcessingStateMutation) ProcessingRunID() (r string, exists bool) {
	v := m.processing_run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingRunID returns the old "processing_run_id" field's value of the ProcessingState entity.
// If the ProcessingState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingStateMutation) OldProcessingRunID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingRunID: %w", err)
	}
	return oldValue.ProcessingRunID, nil
}

// ClearProcessingRunID clears the value of the "processing_run_id" field.
func (m *ProcessingStateMutation) ClearProcessingRunID() {
	m.processing_run_id = nil
	m.clearedFields[processingstate.FieldProcessingRunID] = struct{}{}
}

// ProcessingRunIDCleared returns if the "processing_run_id" field was cleared in this mutation.
func (m *ProcessingStateMutation) ProcessingRunIDCleared() bool {
	_, ok := m.clearedFields[processingstate.FieldProcessingRunID]
	return ok
}

// ResetProcessingRunID resets all changes to the "processing_run_id" field.
func (m *ProcessingStateMutation) ResetProcessingRunID() {
	m.processing_run_id = nil
	delete(m.clearedFields, processingstate.FieldProcessingRunID)
}

// ClearRawMessage clears the "raw_message" edge to the RawMessage entity.
func (m *ProcessingStateMutation) ClearRawMessage() {
	m.clearedraw_message = true
	m.clearedFields[processingstate.FieldRawMessageID] = struct{}{}
}

// RawMessageCleared reports if the "raw_message" edge to the RawMessage entity was cleared.
func (m *ProcessingStateMutation) RawMessageCleared() bool {
	return m.clearedraw_message
}

// RawMessageIDs returns the "raw_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawMessageID instead. It exists only for internal usage by the builders.
func (m *ProcessingStateMutation) RawMessageIDs() (ids []int) {
	if id := m.raw_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawMessage resets all changes to the "raw_message" edge.
func (m *ProcessingStateMutation) ResetRawMessage() {
	m.raw_message = nil
	m.clearedraw_message = false
}

// Where appends a list predicates to the ProcessingStateMutation builder.
func (m *ProcessingStateMutation) Where(ps ...predicate.ProcessingState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingState).
func (m *ProcessingStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingStateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.raw_message != nil {
		fields = append(fields, processingstate.FieldRawMessageID)
	}
	if m.status != nil {
		fields = append(fields, processingstate.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, processingstate.FieldAttemptCount)
	}
	if m.last_attempted_at != nil {
		fields = append(fields, processingstate.FieldLastAttemptedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingstate.FieldCompletedAt)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, processingstate.FieldLeaseExpiresAt)
	}
	if m.last_error != nil {
		fields = append(fields, processingstate.FieldLastError)
	}
	if m.processing_run_id != nil {
		fields = append(fields, processingstate.FieldProcessingRunID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingstate.FieldRawMessageID:
		return m.RawMessageID()
	case processingstate.FieldStatus:
		return m.Status()
	case processingstate.FieldAttemptCount:
		return m.AttemptCount()
	case processingstate.FieldLastAttemptedAt:
		return m.LastAttemptedAt()
	case processingstate.FieldCompletedAt:
		return m.CompletedAt()
	case processingstate.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case processingstate.FieldLastError:
		return m.LastError()
	case processingstate.FieldProcessingRunID:
		return m.ProcessingRunID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingstate.FieldRawMessageID:
		return m.OldRawMessageID(ctx)
	case processingstate.FieldStatus:
		return m.OldStatus(ctx)
	case processingstate.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case processingstate.FieldLastAttemptedAt:
		return m.OldLastAttemptedAt(ctx)
	case processingstate.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processingstate.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case processingstate.FieldLastError:
		return m.OldLastError(ctx)
	case processingstate.FieldProcessingRunID:
		return m.OldProcessingRunID(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingstate.FieldRawMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMessageID(v)
		return nil
	case processingstate.FieldStatus:
		v, ok := value.(processingstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingstate.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case processingstate.FieldLastAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedAt(v)
		return nil
	case processingstate.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processingstate.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case processingstate.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case processingstate.FieldProcessingRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingRunID(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingStateMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, processingstate.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingstate.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingstate.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingstate.FieldLastAttemptedAt) {
		fields = append(fields, processingstate.FieldLastAttemptedAt)
	}
	if m.FieldCleared(processingstate.FieldCompletedAt) {
		fields = append(fields, processingstate.FieldCompletedAt)
	}
	if m.FieldCleared(processingstate.FieldLeaseExpiresAt) {
		fields = append(fields, processingstate.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(processingstate.FieldLastError) {
		fields = append(fields, processingstate.FieldLastError)
	}
	if m.FieldCleared(processingstate.FieldProcessingRunID) {
		fields = append(fields, processingstate.FieldProcessingRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingStateMutation) ClearField(name string) error {
	switch name {
	case processingstate.FieldLastAttemptedAt:
		m.ClearLastAttemptedAt()
		return nil
	case processingstate.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processingstate.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case processingstate.FieldLastError:
		m.ClearLastError()
		return nil
	case processingstate.FieldProcessingRunID:
		m.ClearProcessingRunID()
		return nil
	}
	return fmt.Errorf("unknown ProcessingState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingStateMutation) ResetField(name string) error {
	switch name {
	case processingstate.FieldRawMessageID:
		m.ResetRawMessageID()
		return nil
	case processingstate.FieldStatus:
		m.ResetStatus()
		return nil
	case processingstate.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case processingstate.FieldLastAttemptedAt:
		m.ResetLastAttemptedAt()
		return nil
	case processingstate.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processingstate.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case processingstate.FieldLastError:
		m.ResetLastError()
		return nil
	case processingstate.FieldProcessingRunID:
		m.ResetProcessingRunID()
		return nil
	}
	return fmt.Errorf("unknown ProcessingState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.raw_message != nil {
		edges = append(edges, processingstate.EdgeRawMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingstate.EdgeRawMessage:
		if id := m.raw_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedraw_message {
		edges = append(edges, processingstate.EdgeRawMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingStateMutation) EdgeCleared(name string) bool {
	switch name {
	case processingstate.EdgeRawMessage:
		return m.clearedraw_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingStateMutation) ClearEdge(name string) error {
	switch name {
	case processingstate.EdgeRawMessage:
		m.ClearRawMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessingState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingStateMutation) ResetEdge(name string) error {
	switch name {
	case processingstate.EdgeRawMessage:
		m.ResetRawMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessingState edge %s", name)
}

// PublishedPostMutation represents an operation that mutates the PublishedPost nodes in the graph.
type PublishedPostMutation struct {
	config
	op            Op
	typ           string
	id            *int
	event_id      *int
	addevent_id   *int
	destination   *string
	published_at  *time.Time
	content       *string
	content_hash  *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PublishedPost, error)
	predicates    []predicate.PublishedPost
}

var _ ent.Mutation = (*PublishedPostMutation)(nil)

// publishedpostOption allows management of the mutation configuration using functional options.
type publishedpostOption func(*PublishedPostMutation)

// newPublishedPostMutation creates new mutation for the PublishedPost entity.
func newPublishedPostMutation(c config, op Op, opts ...publishedpostOption) *PublishedPostMutation {
	m := &PublishedPostMutation{
		config:        c,
		op:            op,
		typ:           TypePublishedPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPublishedPostID sets the ID field of the mutation.
func withPublishedPostID(id int) publishedpostOption {
	return func(m *PublishedPostMutation) {
		var (
			err   error
			once  sync.Once
			value *PublishedPost
		)
		m.oldValue = func(ctx context.Context) (*PublishedPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PublishedPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPublishedPost sets the old PublishedPost of the mutation.
func withPublishedPost(node *PublishedPost) publishedpostOption {
	return func(m *PublishedPostMutation) {
		m.oldValue = func(context.Context) (*PublishedPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PublishedPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PublishedPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PublishedPostMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PublishedPostMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PublishedPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *PublishedPostMutation) SetEventID(i int) {
	m.event_id = &i
	m.addevent_id = nil
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *PublishedPostMutation) EventID() (r int, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the PublishedPost entity.
// If the PublishedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedPostMutation) OldEventID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// AddEventID adds i to the "event_id" field.
func (m *PublishedPostMutation) AddEventID(i int) {
	if m.addevent_id != nil {
		*m.addevent_id += i
	} else {
		m.addevent_id = &i
	}
}

// AddedEventID returns the value that was added to the "event_id" field in this mutation.
func (m *PublishedPostMutation) AddedEventID() (r int, exists bool) {
	v := m.addevent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEventID clears the value of the "event_id" field.
func (m *PublishedPostMutation) ClearEventID() {
	m.event_id = nil
	m.addevent_id = nil
	m.clearedFields[publishedpost.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *PublishedPostMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[publishedpost.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *PublishedPostMutation) ResetEventID() {
	m.event_id = nil
	m.addevent_id = nil
	delete(m.clearedFields, publishedpost.FieldEventID)
}

// SetDestination sets the "destination" field.
func (m *PublishedPostMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *PublishedPostMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the PublishedPost entity.
// If the PublishedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedPostMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ResetDestination resets all changes to the "destination" field.
func (m *PublishedPostMutation) ResetDestination() {
	m.destination = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *PublishedPostMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *PublishedPostMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the PublishedPost entity.
// If the PublishedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedPostMutation) OldPublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *PublishedPostMutation) ResetPublishedAt() {
	m.published_at = nil
}

// SetContent sets the "content" field.
func (m *PublishedPostMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PublishedPostMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the PublishedPost entity.
// If the PublishedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedPostMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PublishedPostMutation) ResetContent() {
	m.content = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PublishedPostMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PublishedPostMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the PublishedPost entity.
// If the PublishedPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PublishedPostMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PublishedPostMutation) ResetContentHash() {
	m.content_hash = nil
}

// Where appends a list predicates to the PublishedPostMutation builder.
func (m *PublishedPostMutation) Where(ps ...predicate.PublishedPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PublishedPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PublishedPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PublishedPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PublishedPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PublishedPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PublishedPost).
func (m *PublishedPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PublishedPostMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.event_id != nil {
		fields = append(fields, publishedpost.FieldEventID)
	}
	if m.destination != nil {
		fields = append(fields, publishedpost.FieldDestination)
	}
	if m.published_at != nil {
		fields = append(fields, publishedpost.FieldPublishedAt)
	}
	if m.content != nil {
		fields = append(fields, publishedpost.FieldContent)
	}
	if m.content_hash != nil {
		fields = append(fields, publishedpost.FieldContentHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PublishedPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case publishedpost.FieldEventID:
		return m.EventID()
	case publishedpost.FieldDestination:
		return m.Destination()
	case publishedpost.FieldPublishedAt:
		return m.PublishedAt()
	case publishedpost.FieldContent:
		return m.Content()
	case publishedpost.FieldContentHash:
		return m.ContentHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PublishedPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case publishedpost.FieldEventID:
		return m.OldEventID(ctx)
	case publishedpost.FieldDestination:
		return m.OldDestination(ctx)
	case publishedpost.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case publishedpost.FieldContent:
		return m.OldContent(ctx)
	case publishedpost.FieldContentHash:
		return m.OldContentHash(ctx)
	}
	return nil, fmt.Errorf("unknown PublishedPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishedPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case publishedpost.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case publishedpost.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case publishedpost.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case publishedpost.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case publishedpost.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	}
	return fmt.Errorf("unknown PublishedPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PublishedPostMutation) AddedFields() []string {
	var fields []string
	if m.addevent_id != nil {
		fields = append(fields, publishedpost.FieldEventID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PublishedPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case publishedpost.FieldEventID:
		return m.AddedEventID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PublishedPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case publishedpost.FieldEventID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEventID(v)
		return nil
	}
	return fmt.Errorf("unknown PublishedPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PublishedPostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(publishedpost.FieldEventID) {
		fields = append(fields, publishedpost.FieldEventID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PublishedPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PublishedPostMutation) ClearField(name string) error {
	switch name {
	case publishedpost.FieldEventID:
		m.ClearEventID()
		return nil
	}
	return fmt.Errorf("unknown PublishedPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PublishedPostMutation) ResetField(name string) error {
	switch name {
	case publishedpost.FieldEventID:
		m.ResetEventID()
		return nil
	case publishedpost.FieldDestination:
		m.ResetDestination()
		return nil
	case publishedpost.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case publishedpost.FieldContent:
		m.ResetContent()
		return nil
	case publishedpost.FieldContentHash:
		m.ResetContentHash()
		return nil
	}
	return fmt.Errorf("unknown PublishedPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PublishedPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PublishedPostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PublishedPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PublishedPostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PublishedPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PublishedPostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PublishedPostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PublishedPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PublishedPostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PublishedPost edge %s", name)
}

// RawMessageMutation represents an operation that mutates the RawMessage nodes in the graph.
type RawMessageMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	source_channel_id       *string
	source_channel_name     *string
	upstream_message_id     *string
	message_timestamp_utc   *time.Time
	raw_text                *string
	normalized_text         *string
	raw_entities            *map[string]interface{}
	forwarded_from          *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	processing_state        *int
	clearedprocessing_state bool
	extraction              *int
	clearedextraction       bool
	routing_decision        *int
	clearedrouting_decision bool
	event_links             map[int]struct{}
	removedevent_links      map[int]struct{}
	clearedevent_links      bool
	entity_mentions         map[int]struct{}
	removedentity_mentions  map[int]struct{}
	clearedentity_mentions  bool
	done                    bool
	oldValue                func(context.Context) (*RawMessage, error)
	predicates              []predicate.RawMessage
}

var _ ent.Mutation = (*RawMessageMutation)(nil)

// rawmessageOption allows management of the mutation configuration using functional options.
type rawmessageOption func(*RawMessageMutation)

// newRawMessageMutation creates new mutation for the RawMessage entity.
func newRawMessageMutation(c config, op Op, opts ...rawmessageOption) *RawMessageMutation {
	m := &RawMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeRawMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawMessageID sets the ID field of the mutation.
func withRawMessageID(id int) rawmessageOption {
	return func(m *RawMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *RawMessage
		)
		m.oldValue = func(ctx context.Context) (*RawMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawMessage sets the old RawMessage of the mutation.
func withRawMessage(node *RawMessage) rawmessageOption {
	return func(m *RawMessageMutation) {
		m.oldValue = func(context.Context) (*RawMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceChannelID sets the "source_channel_id" field.
func (m *RawMessageMutation) SetSourceChannelID(s string) {
	m.source_channel_id = &s
}

// SourceChannelID returns the value of the "source_channel_id" field in the mutation.
func (m *RawMessageMutation) SourceChannelID() (r string, exists bool) {
	v := m.source_channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChannelID returns the old "source_channel_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSourceChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChannelID: %w", err)
	}
	return oldValue.SourceChannelID, nil
}

// ResetSourceChannelID resets all changes to the "source_channel_id" field.
func (m *RawMessageMutation) ResetSourceChannelID() {
	m.source_channel_id = nil
}

// SetSourceChannelName sets the "source_channel_name" field.
func (m *RawMessageMutation) SetSourceChannelName(s string) {
	m.source_channel_name = &s
}

// SourceChannelName returns the value of the "source_channel_name" field in the mutation.
func (m *RawMessageMutation) SourceChannelName() (r string, exists bool) {
	v := m.source_channel_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChannelName returns the old "source_channel_name" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSourceChannelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChannelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChannelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChannelName: %w", err)
	}
	return oldValue.SourceChannelName, nil
}

// ClearSourceChannelName clears the value of the "source_channel_name" field.
func (m *RawMessageMutation) ClearSourceChannelName() {
	m.source_channel_name = nil
	m.clearedFields[rawmessage.FieldSourceChannelName] = struct{}{}
}

// SourceChannelNameCleared returns if the "source_channel_name" field was cleared in this mutation.
func (m *RawMessageMutation) SourceChannelNameCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldSourceChannelName]
	return ok
}

// ResetSourceChannelName resets all changes to the "source_channel_name" field.
func (m *RawMessageMutation) ResetSourceChannelName() {
	m.source_channel_name = nil
	delete(m.clearedFields, rawmessage.FieldSourceChannelName)
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (m *RawMessageMutation) SetUpstreamMessageID(s string) {
	m.upstream_message_id = &s
}

// UpstreamMessageID returns the value of the "upstream_message_id" field in the mutation.
func (m *RawMessageMutation) UpstreamMessageID() (r string, exists bool) {
	v := m.upstream_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamMessageID returns the old "upstream_message_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldUpstreamMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamMessageID: %w", err)
	}
	return oldValue.UpstreamMessageID, nil
}

// ResetUpstreamMessageID resets all changes to the "upstream_message_id" field.
func (m *RawMessageMutation) ResetUpstreamMessageID() {
	m.upstream_message_id = nil
}

// SetMessageTimestampUtc sets the "message_timestamp_utc" field.
func (m *RawMessageMutation) SetMessageTimestampUtc(t time.Time) {
	m.message_timestamp_utc = &t
}

// MessageTimestampUtc returns the value of the "message_timestamp_utc" field in the mutation.
func (m *RawMessageMutation) MessageTimestampUtc() (r time.Time, exists bool) {
	v := m.message_timestamp_utc
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageTimestampUtc returns the old "message_timestamp_utc" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldMessageTimestampUtc(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageTimestampUtc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageTimestampUtc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageTimestampUtc: %w", err)
	}
	return oldValue.MessageTimestampUtc, nil
}

// ResetMessageTimestampUtc resets all changes to the "message_timestamp_utc" field.
func (m *RawMessageMutation) ResetMessageTimestampUtc() {
	m.message_timestamp_utc = nil
}

// SetRawText sets the "raw_text" field.
func (m *RawMessageMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *RawMessageMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *RawMessageMutation) ResetRawText() {
	m.raw_text = nil
}

// SetNormalizedText sets the "normalized_text" field.
func (m *RawMessageMutation) SetNormalizedText(s string) {
	m.normalized_text = &s
}

// NormalizedText returns the value of the "normalized_text" field in the mutation.
func (m *RawMessageMutation) NormalizedText() (r string, exists bool) {
	v := m.normalized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedText returns the old "normalized_text" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldNormalizedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedText: %w", err)
	}
	return oldValue.NormalizedText, nil
}

// ResetNormalizedText resets all changes to the "normalized_text" field.
func (m *RawMessageMutation) ResetNormalizedText() {
	m.normalized_text = nil
}

// SetRawEntities sets the "raw_entities" field.
func (m *RawMessageMutation) SetRawEntities(value map[string]interface{}) {
	m.raw_entities = &value
}

// RawEntities returns the value of the "raw_entities" field in the mutation.
func (m *RawMessageMutation) RawEntities() (r map[string]interface{}, exists bool) {
	v := m.raw_entities
	if v == nil {
		return
	}
	return *v, true
}

// OldRawEntities returns the old "raw_entities" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldRawEntities(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawEntities: %w", err)
	}
	return oldValue.RawEntities, nil
}

// ClearRawEntities clears the value of the "raw_entities" field.
func (m *RawMessageMutation) ClearRawEntities() {
	m.raw_entities = nil
	m.clearedFields[rawmessage.FieldRawEntities] = struct{}{}
}

// RawEntitiesCleared returns if the "raw_entities" field was cleared in this mutation.
func (m *RawMessageMutation) RawEntitiesCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldRawEntities]
	return ok
}

// ResetRawEntities resets all changes to the "raw_entities" field.
func (m *RawMessageMutation) ResetRawEntities() {
	m.raw_entities = nil
	delete(m.clearedFields, rawmessage.FieldRawEntities)
}

// SetForwardedFrom sets the "forwarded_from" field.
func (m *RawMessageMutation) SetForwardedFrom(s string) {
	m.forwarded_from = &s
}

// ForwardedFrom returns the value of the "forwarded_from" field in the mutation.
func (m *RawMessageMutation) ForwardedFrom() (r string, exists bool) {
	v := m.forwarded_from
	if v == nil {
		return
	}
	return *v, true
}

// OldForwardedFrom returns the old "forwarded_from" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldForwardedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldForwardedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldForwardedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldForwardedFrom: %w", err)
	}
	return oldValue.ForwardedFrom, nil
}

// ClearForwardedFrom clears the value of the "forwarded_from" field.
func (m *RawMessageMutation) ClearForwardedFrom() {
	m.forwarded_from = nil
	m.clearedFields[rawmessage.FieldForwardedFrom] = struct{}{}
}

// ForwardedFromCleared returns if the "forwarded_from" field was cleared in this mutation.
func (m *RawMessageMutation) ForwardedFromCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldForwardedFrom]
	return ok
}

// ResetForwardedFrom resets all changes to the "forwarded_from" field.
func (m *RawMessageMutation) ResetForwardedFrom() {
	m.forwarded_from = nil
	delete(m.clearedFields, rawmessage.FieldForwardedFrom)
}

// SetCreatedAt sets the "created_at" field.
func (m *RawMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetProcessingStateID sets the "processing_state" edge to the ProcessingState entity by id.
func (m *RawMessageMutation) SetProcessingStateID(id int) {
	m.processing_state = &id
}

// ClearProcessingState clears the "processing_state" edge to the ProcessingState entity.
func (m *RawMessageMutation) ClearProcessingState() {
	m.clearedprocessing_state = true
}

// ProcessingStateCleared reports if the "processing_state" edge to the ProcessingState entity was cleared.
func (m *RawMessageMutation) ProcessingStateCleared() bool {
	return m.clearedprocessing_state
}

// ProcessingStateID returns the "processing_state" edge ID in the mutation.
func (m *RawMessageMutation) ProcessingStateID() (id int, exists bool) {
	if m.processing_state != nil {
		return *m.processing_state, true
	}
	return
}

// ProcessingStateIDs returns the "processing_state" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProcessingStateID instead. It exists only for internal usage by the builders.
func (m *RawMessageMutation) ProcessingStateIDs() (ids []int) {
	if id := m.processing_state; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProcessingState resets all changes to the "processing_state" edge.
func (m *RawMessageMutation) ResetProcessingState() {
	m.processing_state = nil
	m.clearedprocessing_state = false
}

// SetExtractionID sets the "extraction" edge to the Extraction entity by id.
func (m *RawMessageMutation) SetExtractionID(id int) {
	m.extraction = &id
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (m *RawMessageMutation) ClearExtraction() {
	m.clearedextraction = true
}

// ExtractionCleared reports if the "extraction" edge to the Extraction entity was cleared.
func (m *RawMessageMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionID returns the "extraction" edge ID in the mutation.
func (m *RawMessageMutation) ExtractionID() (id int, exists bool) {
	if m.extraction != nil {
		return *m.extraction, true
	}
	return
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *RawMessageMutation) ExtractionIDs() (ids []int) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *RawMessageMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// SetRoutingDecisionID sets the "routing_decision" edge to the RoutingDecision entity by id.
func (m *RawMessageMutation) SetRoutingDecisionID(id int) {
	m.routing_decision = &id
}

// ClearRoutingDecision clears the "routing_decision" edge to the RoutingDecision entity.
func (m *RawMessageMutation) ClearRoutingDecision() {
	m.clearedrouting_decision = true
}

// RoutingDecisionCleared reports if the "routing_decision" edge to the RoutingDecision entity was cleared.
func (m *RawMessageMutation) RoutingDecisionCleared() bool {
	return m.clearedrouting_decision
}

// RoutingDecisionID returns the "routing_decision" edge ID in the mutation.
func (m *RawMessageMutation) RoutingDecisionID() (id int, exists bool) {
	if m.routing_decision != nil {
		return *m.routing_decision, true
	}
	return
}

// RoutingDecisionIDs returns the "routing_decision" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoutingDecisionID instead. It exists only for internal usage by the builders.
func (m *RawMessageMutation) RoutingDecisionIDs() (ids []int) {
	if id := m.routing_decision; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoutingDecision resets all changes to the "routing_decision" edge.
func (m *RawMessageMutation) ResetRoutingDecision() {
	m.routing_decision = nil
	m.clearedrouting_decision = false
}

// AddEventLinkIDs adds the "event_links" edge to the EventMessage entity by ids.
func (m *RawMessageMutation) AddEventLinkIDs(ids ...int) {
	if m.event_links == nil {
		m.event_links = make(map[int]struct{})
	}
	for i := range ids {
		m.event_links[ids[i]] = struct{}{}
	}
}

// ClearEventLinks clears the "event_links" edge to the EventMessage entity.
func (m *RawMessageMutation) ClearEventLinks() {
	m.clearedevent_links = true
}

// EventLinksCleared reports if the "event_links" edge to the EventMessage entity was cleared.
func (m *RawMessageMutation) EventLinksCleared() bool {
	return m.clearedevent_links
}

// RemoveEventLinkIDs removes the "event_links" edge to the EventMessage entity by IDs.
func (m *RawMessageMutation) RemoveEventLinkIDs(ids ...int) {
	if m.removedevent_links == nil {
		m.removedevent_links = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.event_links, ids[i])
		m.removedevent_links[ids[i]] = struct{}{}
	}
}

// RemovedEventLinks returns the removed IDs of the "event_links" edge to the EventMessage entity.
func (m *RawMessageMutation) RemovedEventLinksIDs() (ids []int) {
	for id := range m.removedevent_links {
		ids = append(ids, id)
	}
	return
}

// EventLinksIDs returns the "event_links" edge IDs in the mutation.
func (m *RawMessageMutation) EventLinksIDs() (ids []int) {
	for id := range m.event_links {
		ids = append(ids, id)
	}
	return
}

// ResetEventLinks resets all changes to the "event_links" edge.
func (m *RawMessageMutation) ResetEventLinks() {
	m.event_links = nil
	m.clearedevent_links = false
	m.removedevent_links = nil
}

// AddEntityMentionIDs adds the "entity_mentions" edge to the EntityMention entity by ids.
func (m *RawMessageMutation) AddEntityMentionIDs(ids ...int) {
	if m.entity_mentions == nil {
		m.entity_mentions = make(map[int]struct{})
	}
	for i := range ids {
		m.entity_mentions[ids[i]] = struct{}{}
	}
}

// ClearEntityMentions clears the "entity_mentions" edge to the EntityMention entity.
func (m *RawMessageMutation) ClearEntityMentions() {
	m.clearedentity_mentions = true
}

// EntityMentionsCleared reports if the "entity_mentions" edge to the EntityMention entity was cleared.
func (m *RawMessageMutation) EntityMentionsCleared() bool {
	return m.clearedentity_mentions
}

// RemoveEntityMentionIDs removes the "entity_mentions" edge to the EntityMention entity by IDs.
func (m *RawMessageMutation) RemoveEntityMentionIDs(ids ...int) {
	if m.removedentity_mentions == nil {
		m.removedentity_mentions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entity_mentions, ids[i])
		m.removedentity_mentions[ids[i]] = struct{}{}
	}
}

// RemovedEntityMentions returns the removed IDs of the "entity_mentions" edge to the EntityMention entity.
func (m *RawMessageMutation) RemovedEntityMentionsIDs() (ids []int) {
	for id := range m.removedentity_mentions {
		ids = append(ids, id)
	}
	return
}

// EntityMentionsIDs returns the "entity_mentions" edge IDs in the mutation.
func (m *RawMessageMutation) EntityMentionsIDs() (ids []int) {
	for id := range m.entity_mentions {
		ids = append(ids, id)
	}
	return
}

// ResetEntityMentions resets all changes to the "entity_mentions" edge.
func (m *RawMessageMutation) ResetEntityMentions() {
	m.entity_mentions = nil
	m.clearedentity_mentions = false
	m.removedentity_mentions = nil
}

// Where appends a list predicates to the RawMessageMutation builder.
func (m *RawMessageMutation) Where(ps ...predicate.RawMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawMessage).
func (m *RawMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_channel_id != nil {
		fields = append(fields, rawmessage.FieldSourceChannelID)
	}
	if m.source_channel_name != nil {
		fields = append(fields, rawmessage.FieldSourceChannelName)
	}
	if m.upstream_message_id != nil {
		fields = append(fields, rawmessage.FieldUpstreamMessageID)
	}
	if m.message_timestamp_utc != nil {
		fields = append(fields, rawmessage.FieldMessageTimestampUtc)
	}
	if m.raw_text != nil {
		fields = append(fields, rawmessage.FieldRawText)
	}
	if m.normalized_text != nil {
		fields = append(fields, rawmessage.FieldNormalizedText)
	}
	if m.raw_entities != nil {
		fields = append(fields, rawmessage.FieldRawEntities)
	}
	if m.forwarded_from != nil {
		fields = append(fields, rawmessage.FieldForwardedFrom)
	}
	if m.created_at != nil {
		fields = append(fields, rawmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawmessage.FieldSourceChannelID:
		return m.SourceChannelID()
	case rawmessage.FieldSourceChannelName:
		return m.SourceChannelName()
	case rawmessage.FieldUpstreamMessageID:
		return m.UpstreamMessageID()
	case rawmessage.FieldMessageTimestampUtc:
		return m.MessageTimestampUtc()
	case rawmessage.FieldRawText:
		return m.RawText()
	case rawmessage.FieldNormalizedText:
		return m.NormalizedText()
	case rawmessage.FieldRawEntities:
		return m.RawEntities()
	case rawmessage.FieldForwardedFrom:
		return m.ForwardedFrom()
	case rawmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawmessage.FieldSourceChannelID:
		return m.OldSourceChannelID(ctx)
	case rawmessage.FieldSourceChannelName:
		return m.OldSourceChannelName(ctx)
	case rawmessage.FieldUpstreamMessageID:
		return m.OldUpstreamMessageID(ctx)
	case rawmessage.FieldMessageTimestampUtc:
		return m.OldMessageTimestampUtc(ctx)
	case rawmessage.FieldRawText:
		return m.OldRawText(ctx)
	case rawmessage.FieldNormalizedText:
		return m.OldNormalizedText(ctx)
	case rawmessage.FieldRawEntities:
		return m.OldRawEntities(ctx)
	case rawmessage.FieldForwardedFrom:
		return m.OldForwardedFrom(ctx)
	case rawmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawmessage.FieldSourceChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChannelID(v)
		return nil
	case rawmessage.FieldSourceChannelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChannelName(v)
		return nil
	case rawmessage.FieldUpstreamMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamMessageID(v)
		return nil
	case rawmessage.FieldMessageTimestampUtc:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageTimestampUtc(v)
		return nil
	case rawmessage.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case rawmessage.FieldNormalizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedText(v)
		return nil
	case rawmessage.FieldRawEntities:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawEntities(v)
		return nil
	case rawmessage.FieldForwardedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetForwardedFrom(v)
		return nil
	case rawmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RawMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawmessage.FieldSourceChannelName) {
		fields = append(fields, rawmessage.FieldSourceChannelName)
	}
	if m.FieldCleared(rawmessage.FieldRawEntities) {
		fields = append(fields, rawmessage.FieldRawEntities)
	}
	if m.FieldCleared(rawmessage.FieldForwardedFrom) {
		fields = append(fields, rawmessage.FieldForwardedFrom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawMessageMutation) ClearField(name string) error {
	switch name {
	case rawmessage.FieldSourceChannelName:
		m.ClearSourceChannelName()
		return nil
	case rawmessage.FieldRawEntities:
		m.ClearRawEntities()
		return nil
	case rawmessage.FieldForwardedFrom:
		m.ClearForwardedFrom()
		return nil
	}
	return fmt.Errorf("unknown RawMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawMessageMutation) ResetField(name string) error {
	switch name {
	case rawmessage.FieldSourceChannelID:
		m.ResetSourceChannelID()
		return nil
	case rawmessage.FieldSourceChannelName:
		m.ResetSourceChannelName()
		return nil
	case rawmessage.FieldUpstreamMessageID:
		m.ResetUpstreamMessageID()
		return nil
	case rawmessage.FieldMessageTimestampUtc:
		m.ResetMessageTimestampUtc()
		return nil
	case rawmessage.FieldRawText:
		m.ResetRawText()
		return nil
	case rawmessage.FieldNormalizedText:
		m.ResetNormalizedText()
		return nil
	case rawmessage.FieldRawEntities:
		m.ResetRawEntities()
		return nil
	case rawmessage.FieldForwardedFrom:
		m.ResetForwardedFrom()
		return nil
	case rawmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.processing_state != nil {
		edges = append(edges, rawmessage.EdgeProcessingState)
	}
	if m.extraction != nil {
		edges = append(edges, rawmessage.EdgeExtraction)
	}
	if m.routing_decision != nil {
		edges = append(edges, rawmessage.EdgeRoutingDecision)
	}
	if m.event_links != nil {
		edges = append(edges, rawmessage.EdgeEventLinks)
	}
	if m.entity_mentions != nil {
		edges = append(edges, rawmessage.EdgeEntityMentions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rawmessage.EdgeProcessingState:
		if id := m.processing_state; id != nil {
			return []ent.Value{*id}
		}
	case rawmessage.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	case rawmessage.EdgeRoutingDecision:
		if id := m.routing_decision; id != nil {
			return []ent.Value{*id}
		}
	case rawmessage.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.event_links))
		for id := range m.event_links {
			ids = append(ids, id)
		}
		return ids
	case rawmessage.EdgeEntityMentions:
		ids := make([]ent.Value, 0, len(m.entity_mentions))
		for id := range m.entity_mentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedevent_links != nil {
		edges = append(edges, rawmessage.EdgeEventLinks)
	}
	if m.removedentity_mentions != nil {
		edges = append(edges, rawmessage.EdgeEntityMentions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rawmessage.EdgeEventLinks:
		ids := make([]ent.Value, 0, len(m.removedevent_links))
		for id := range m.removedevent_links {
			ids = append(ids, id)
		}
		return ids
	case rawmessage.EdgeEntityMentions:
		ids := make([]ent.Value, 0, len(m.removedentity_mentions))
		for id := range m.removedentity_mentions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedprocessing_state {
		edges = append(edges, rawmessage.EdgeProcessingState)
	}
	if m.clearedextraction {
		edges = append(edges, rawmessage.EdgeExtraction)
	}
	if m.clearedrouting_decision {
		edges = append(edges, rawmessage.EdgeRoutingDecision)
	}
	if m.clearedevent_links {
		edges = append(edges, rawmessage.EdgeEventLinks)
	}
	if m.clearedentity_mentions {
		edges = append(edges, rawmessage.EdgeEntityMentions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case rawmessage.EdgeProcessingState:
		return m.clearedprocessing_state
	case rawmessage.EdgeExtraction:
		return m.clearedextraction
	case rawmessage.EdgeRoutingDecision:
		return m.clearedrouting_decision
	case rawmessage.EdgeEventLinks:
		return m.clearedevent_links
	case rawmessage.EdgeEntityMentions:
		return m.clearedentity_mentions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawMessageMutation) ClearEdge(name string) error {
	switch name {
	case rawmessage.EdgeProcessingState:
		m.ClearProcessingState()
		return nil
	case rawmessage.EdgeExtraction:
		m.ClearExtraction()
		return nil
	case rawmessage.EdgeRoutingDecision:
		m.ClearRoutingDecision()
		return nil
	}
	return fmt.Errorf("unknown RawMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawMessageMutation) ResetEdge(name string) error {
	switch name {
	case rawmessage.EdgeProcessingState:
		m.ResetProcessingState()
		return nil
	case rawmessage.EdgeExtraction:
		m.ResetExtraction()
		return nil
	case rawmessage.EdgeRoutingDecision:
		m.ResetRoutingDecision()
		return nil
	case rawmessage.EdgeEventLinks:
		m.ResetEventLinks()
		return nil
	case rawmessage.EdgeEntityMentions:
		m.ResetEntityMentions()
		return nil
	}
	return fmt.Errorf("unknown RawMessage edge %s", name)
}

// RoutingDecisionMutation represents an operation that mutates the RoutingDecision nodes in the graph.
type RoutingDecisionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	store_to           *[]string
	appendstore_to     []string
	publish_priority   *string
	requires_evidence  *bool
	event_action       *string
	triage_action      *string
	triage_rules       *[]string
	appendtriage_rules []string
	flags              *[]string
	appendflags        []string
	rules_fired        *[]string
	appendrules_fired  []string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	raw_message        *int
	clearedraw_message bool
	done               bool
	oldValue           func(context.Context) (*RoutingDecision, error)
	predicates         []predicate.RoutingDecision
}

var _ ent.Mutation = (*RoutingDecisionMutation)(nil)

// routingdecisionOption allows management of the mutation configuration using functional options.
type routingdecisionOption func(*RoutingDecisionMutation)

// newRoutingDecisionMutation creates new mutation for the RoutingDecision entity.
func newRoutingDecisionMutation(c config, op Op, opts ...routingdecisionOption) *RoutingDecisionMutation {
	m := &RoutingDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutingDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutingDecisionID sets the ID field of the mutation.
func withRoutingDecisionID(id int) routingdecisionOption {
	return func(m *RoutingDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutingDecision
		)
		m.oldValue = func(ctx context.Context) (*RoutingDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutingDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutingDecision sets the old RoutingDecision of the mutation.
func withRoutingDecision(node *RoutingDecision) routingdecisionOption {
	return func(m *RoutingDecisionMutation) {
		m.oldValue = func(context.Context) (*RoutingDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutingDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutingDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutingDecisionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutingDecisionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutingDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawMessageID sets the "raw_message_id" field.
func (m *RoutingDecisionMutation) SetRawMessageID(i int) {
	m.raw_message = &i
}

// RawMessageID returns the value of the "raw_message_id" field in the mutation.
func (m *RoutingDecisionMutation) RawMessageID() (r int, exists bool) {
	v := m.raw_message
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMessageID returns the old "raw_message_id" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldRawMessageID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMessageID: %w", err)
	}
	return oldValue.RawMessageID, nil
}

// ResetRawMessageID resets all changes to the "raw_message_id" field.
func (m *RoutingDecisionMutation) ResetRawMessageID() {
	m.raw_message = nil
}

// SetStoreTo sets the "store_to" field.
func (m *RoutingDecisionMutation) SetStoreTo(s []string) {
	m.store_to = &s
	m.appendstore_to = nil
}

// StoreTo returns the value of the "store_to" field in the mutation.
func (m *RoutingDecisionMutation) StoreTo() (r []string, exists bool) {
	v := m.store_to
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreTo returns the old "store_to" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldStoreTo(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreTo: %w", err)
	}
	return oldValue.StoreTo, nil
}

// AppendStoreTo adds s to the "store_to" field.
func (m *RoutingDecisionMutation) AppendStoreTo(s []string) {
	m.appendstore_to = append(m.appendstore_to, s...)
}

// AppendedStoreTo returns the list of values that were appended to the "store_to" field in this mutation.
func (m *RoutingDecisionMutation) AppendedStoreTo() ([]string, bool) {
	if len(m.appendstore_to) == 0 {
		return nil, false
	}
	return m.appendstore_to, true
}

// ResetStoreTo resets all changes to the "store_to" field.
func (m *RoutingDecisionMutation) ResetStoreTo() {
	m.store_to = nil
	m.appendstore_to = nil
}

// SetPublishPriority sets the "publish_priority" field.
func (m *RoutingDecisionMutation) SetPublishPriority(s string) {
	m.publish_priority = &s
}

// PublishPriority returns the value of the "publish_priority" field in the mutation.
func (m *RoutingDecisionMutation) PublishPriority() (r string, exists bool) {
	v := m.publish_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishPriority returns the old "publish_priority" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldPublishPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishPriority: %w", err)
	}
	return oldValue.PublishPriority, nil
}

// ResetPublishPriority resets all changes to the "publish_priority" field.
func (m *RoutingDecisionMutation) ResetPublishPriority() {
	m.publish_priority = nil
}

// SetRequiresEvidence sets the "requires_evidence" field.
func (m *RoutingDecisionMutation) SetRequiresEvidence(b bool) {
	m.requires_evidence = &b
}

// RequiresEvidence returns the value of the "requires_evidence" field in the mutation.
func (m *RoutingDecisionMutation) RequiresEvidence() (r bool, exists bool) {
	v := m.requires_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresEvidence returns the old "requires_evidence" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldRequiresEvidence(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresEvidence: %w", err)
	}
	return oldValue.RequiresEvidence, nil
}

// ResetRequiresEvidence resets all changes to the "requires_evidence" field.
func (m *RoutingDecisionMutation) ResetRequiresEvidence() {
	m.requires_evidence = nil
}

// SetEventAction sets the "event_action" field.
func (m *RoutingDecisionMutation) SetEventAction(s string) {
	m.event_action = &s
}

// EventAction returns the value of the "event_action" field in the mutation.
func (m *RoutingDecisionMutation) EventAction() (r string, exists bool) {
	v := m.event_action
	if v == nil {
		return
	}
	return *v, true
}

// OldEventAction returns the old "event_action" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldEventAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventAction: %w", err)
	}
	return oldValue.EventAction, nil
}

// ResetEventAction resets all changes to the "event_action" field.
func (m *RoutingDecisionMutation) ResetEventAction() {
	m.event_action = nil
}

// SetTriageAction sets the "triage_action" field.
func (m *RoutingDecisionMutation) SetTriageAction(s string) {
	m.triage_action = &s
}

// TriageAction returns the value of the "triage_action" field in the mutation.
func (m *RoutingDecisionMutation) TriageAction() (r string, exists bool) {
	v := m.triage_action
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageAction returns the old "triage_action" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldTriageAction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageAction: %w", err)
	}
	return oldValue.TriageAction, nil
}

// ClearTriageAction clears the value of the "triage_action" field.
func (m *RoutingDecisionMutation) ClearTriageAction() {
	m.triage_action = nil
	m.clearedFields[routingdecision.FieldTriageAction] = struct{}{}
}

// TriageActionCleared returns if the "triage_action" field was cleared in this mutation.
func (m *RoutingDecisionMutation) TriageActionCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldTriageAction]
	return ok
}

// ResetTriageAction resets all changes to the "triage_action" field.
func (m *RoutingDecisionMutation) ResetTriageAction() {
	m.triage_action = nil
	delete(m.clearedFields, routingdecision.FieldTriageAction)
}

// SetTriageRules sets the "triage_rules" field.
func (m *RoutingDecisionMutation) SetTriageRules(s []string) {
	m.triage_rules = &s
	m.appendtriage_rules = nil
}

// TriageRules returns the value of the "triage_rules" field in the mutation.
func (m *RoutingDecisionMutation) TriageRules() (r []string, exists bool) {
	v := m.triage_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageRules returns the old "triage_rules" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldTriageRules(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageRules: %w", err)
	}
	return oldValue.TriageRules, nil
}

// AppendTriageRules adds s to the "triage_rules" field.
func (m *RoutingDecisionMutation) AppendTriageRules(s []string) {
	m.appendtriage_rules = append(m.appendtriage_rules, s...)
}

// AppendedTriageRules returns the list of values that were appended to the "triage_rules" field in this mutation.
func (m *RoutingDecisionMutation) AppendedTriageRules() ([]string, bool) {
	if len(m.appendtriage_rules) == 0 {
		return nil, false
	}
	return m.appendtriage_rules, true
}

// ClearTriageRules clears the value of the "triage_rules" field.
func (m *RoutingDecisionMutation) ClearTriageRules() {
	m.triage_rules = nil
	m.appendtriage_rules = nil
	m.clearedFields[routingdecision.FieldTriageRules] = struct{}{}
}

// TriageRulesCleared returns if the "triage_rules" field was cleared in this mutation.
func (m *RoutingDecisionMutation) TriageRulesCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldTriageRules]
	return ok
}

// ResetTriageRules resets all changes to the "triage_rules" field.
func (m *RoutingDecisionMutation) ResetTriageRules() {
	m.triage_rules = nil
	m.appendtriage_rules = nil
	delete(m.clearedFields, routingdecision.FieldTriageRules)
}

// SetFlags sets the "flags" field.
func (m *RoutingDecisionMutation) SetFlags(s []string) {
	m.flags = &s
	m.appendflags = nil
}

// Flags returns the value of the "flags" field in the mutation.
func (m *RoutingDecisionMutation) Flags() (r []string, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldFlags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// AppendFlags adds s to the "flags" field.
func (m *RoutingDecisionMutation) AppendFlags(s []string) {
	m.appendflags = append(m.appendflags, s...)
}

// AppendedFlags returns the list of values that were appended to the "flags" field in this mutation.
func (m *RoutingDecisionMutation) AppendedFlags() ([]string, bool) {
	if len(m.appendflags) == 0 {
		return nil, false
	}
	return m.appendflags, true
}

// ClearFlags clears the value of the "flags" field.
func (m *RoutingDecisionMutation) ClearFlags() {
	m.flags = nil
	m.appendflags = nil
	m.clearedFields[routingdecision.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *RoutingDecisionMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *RoutingDecisionMutation) ResetFlags() {
	m.flags = nil
	m.appendflags = nil
	delete(m.clearedFields, routingdecision.FieldFlags)
}

// SetRulesFired sets the "rules_fired" field.
func (m *RoutingDecisionMutation) SetRulesFired(s []string) {
	m.rules_fired = &s
	m.appendrules_fired = nil
}

// RulesFired returns the value of the "rules_fired" field in the mutation.
func (m *RoutingDecisionMutation) RulesFired() (r []string, exists bool) {
	v := m.rules_fired
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesFired returns the old "rules_fired" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldRulesFired(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesFired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesFired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesFired: %w", err)
	}
	return oldValue.RulesFired, nil
}

// AppendRulesFired adds s to the "rules_fired" field.
func (m *RoutingDecisionMutation) AppendRulesFired(s []string) {
	m.appendrules_fired = append(m.appendrules_fired, s...)
}

// AppendedRulesFired returns the list of values that were appended to the "rules_fired" field in this mutation.
func (m *RoutingDecisionMutation) AppendedRulesFired() ([]string, bool) {
	if len(m.appendrules_fired) == 0 {
		return nil, false
	}
	return m.appendrules_fired, true
}

// ClearRulesFired clears the value of the "rules_fired" field.
func (m *RoutingDecisionMutation) ClearRulesFired() {
	m.rules_fired = nil
	m.appendrules_fired = nil
	m.clearedFields[routingdecision.FieldRulesFired] = struct{}{}
}

// RulesFiredCleared returns if the "rules_fired" field was cleared in this mutation.
func (m *RoutingDecisionMutation) RulesFiredCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldRulesFired]
	return ok
}

// ResetRulesFired resets all changes to the "rules_fired" field.
func (m *RoutingDecisionMutation) ResetRulesFired() {
	m.rules_fired = nil
	m.appendrules_fired = nil
	delete(m.clearedFields, routingdecision.FieldRulesFired)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutingDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutingDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutingDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRawMessage clears the "raw_message" edge to the RawMessage entity.
func (m *RoutingDecisionMutation) ClearRawMessage() {
	m.clearedraw_message = true
	m.clearedFields[routingdecision.FieldRawMessageID] = struct{}{}
}

// RawMessageCleared reports if the "raw_message" edge to the RawMessage entity was cleared.
func (m *RoutingDecisionMutation) RawMessageCleared() bool {
	return m.clearedraw_message
}

// RawMessageIDs returns the "raw_message" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawMessageID instead. It exists only for internal usage by the builders.
func (m *RoutingDecisionMutation) RawMessageIDs() (ids []int) {
	if id := m.raw_message; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawMessage resets all changes to the "raw_message" edge.
func (m *RoutingDecisionMutation) ResetRawMessage() {
	m.raw_message = nil
	m.clearedraw_message = false
}

// Where appends a list predicates to the RoutingDecisionMutation builder.
func (m *RoutingDecisionMutation) Where(ps ...predicate.RoutingDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutingDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutingDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutingDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutingDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutingDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutingDecision).
func (m *RoutingDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutingDecisionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.raw_message != nil {
		fields = append(fields, routingdecision.FieldRawMessageID)
	}
	if m.store_to != nil {
		fields = append(fields, routingdecision.FieldStoreTo)
	}
	if m.publish_priority != nil {
		fields = append(fields, routingdecision.FieldPublishPriority)
	}
	if m.requires_evidence != nil {
		fields = append(fields, routingdecision.FieldRequiresEvidence)
	}
	if m.event_action != nil {
		fields = append(fields, routingdecision.FieldEventAction)
	}
	if m.triage_action != nil {
		fields = append(fields, routingdecision.FieldTriageAction)
	}
	if m.triage_rules != nil {
		fields = append(fields, routingdecision.FieldTriageRules)
	}
	if m.flags != nil {
		fields = append(fields, routingdecision.FieldFlags)
	}
	if m.rules_fired != nil {
		fields = append(fields, routingdecision.FieldRulesFired)
	}
	if m.created_at != nil {
		fields = append(fields, routingdecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutingDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routingdecision.FieldRawMessageID:
		return m.RawMessageID()
	case routingdecision.FieldStoreTo:
		return m.StoreTo()
	case routingdecision.FieldPublishPriority:
		return m.PublishPriority()
	case routingdecision.FieldRequiresEvidence:
		return m.RequiresEvidence()
	case routingdecision.FieldEventAction:
		return m.EventAction()
	case routingdecision.FieldTriageAction:
		return m.TriageAction()
	case routingdecision.FieldTriageRules:
		return m.TriageRules()
	case routingdecision.FieldFlags:
		return m.Flags()
	case routingdecision.FieldRulesFired:
		return m.RulesFired()
	case routingdecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutingDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routingdecision.FieldRawMessageID:
		return m.OldRawMessageID(ctx)
	case routingdecision.FieldStoreTo:
		return m.OldStoreTo(ctx)
	case routingdecision.FieldPublishPriority:
		return m.OldPublishPriority(ctx)
	case routingdecision.FieldRequiresEvidence:
		return m.OldRequiresEvidence(ctx)
	case routingdecision.FieldEventAction:
		return m.OldEventAction(ctx)
	case routingdecision.FieldTriageAction:
		return m.OldTriageAction(ctx)
	case routingdecision.FieldTriageRules:
		return m.OldTriageRules(ctx)
	case routingdecision.FieldFlags:
		return m.OldFlags(ctx)
	case routingdecision.FieldRulesFired:
		return m.OldRulesFired(ctx)
	case routingdecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutingDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routingdecision.FieldRawMessageID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMessageID(v)
		return nil
	case routingdecision.FieldStoreTo:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreTo(v)
		return nil
	case routingdecision.FieldPublishPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishPriority(v)
		return nil
	case routingdecision.FieldRequiresEvidence:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresEvidence(v)
		return nil
	case routingdecision.FieldEventAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventAction(v)
		return nil
	case routingdecision.FieldTriageAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageAction(v)
		return nil
	case routingdecision.FieldTriageRules:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageRules(v)
		return nil
	case routingdecision.FieldFlags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case routingdecision.FieldRulesFired:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesFired(v)
		return nil
	case routingdecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutingDecisionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutingDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RoutingDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutingDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routingdecision.FieldTriageAction) {
		fields = append(fields, routingdecision.FieldTriageAction)
	}
	if m.FieldCleared(routingdecision.FieldTriageRules) {
		fields = append(fields, routingdecision.FieldTriageRules)
	}
	if m.FieldCleared(routingdecision.FieldFlags) {
		fields = append(fields, routingdecision.FieldFlags)
	}
	if m.FieldCleared(routingdecision.FieldRulesFired) {
		fields = append(fields, routingdecision.FieldRulesFired)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutingDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutingDecisionMutation) ClearField(name string) error {
	switch name {
	case routingdecision.FieldTriageAction:
		m.ClearTriageAction()
		return nil
	case routingdecision.FieldTriageRules:
		m.ClearTriageRules()
		return nil
	case routingdecision.FieldFlags:
		m.ClearFlags()
		return nil
	case routingdecision.FieldRulesFired:
		m.ClearRulesFired()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutingDecisionMutation) ResetField(name string) error {
	switch name {
	case routingdecision.FieldRawMessageID:
		m.ResetRawMessageID()
		return nil
	case routingdecision.FieldStoreTo:
		m.ResetStoreTo()
		return nil
	case routingdecision.FieldPublishPriority:
		m.ResetPublishPriority()
		return nil
	case routingdecision.FieldRequiresEvidence:
		m.ResetRequiresEvidence()
		return nil
	case routingdecision.FieldEventAction:
		m.ResetEventAction()
		return nil
	case routingdecision.FieldTriageAction:
		m.ResetTriageAction()
		return nil
	case routingdecision.FieldTriageRules:
		m.ResetTriageRules()
		return nil
	case routingdecision.FieldFlags:
		m.ResetFlags()
		return nil
	case routingdecision.FieldRulesFired:
		m.ResetRulesFired()
		return nil
	case routingdecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutingDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.raw_message != nil {
		edges = append(edges, routingdecision.EdgeRawMessage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutingDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case routingdecision.EdgeRawMessage:
		if id := m.raw_message; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutingDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutingDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutingDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedraw_message {
		edges = append(edges, routingdecision.EdgeRawMessage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutingDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case routingdecision.EdgeRawMessage:
		return m.clearedraw_message
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutingDecisionMutation) ClearEdge(name string) error {
	switch name {
	case routingdecision.EdgeRawMessage:
		m.ClearRawMessage()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutingDecisionMutation) ResetEdge(name string) error {
	switch name {
	case routingdecision.EdgeRawMessage:
		m.ResetRawMessage()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision edge %s", name)
}
