// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// EventMessage is the model entity for the EventMessage schema.
type EventMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// RawMessageID holds the value of the "raw_message_id" field.
	RawMessageID int `json:"raw_message_id,omitempty"`
	// LinkedAt holds the value of the "linked_at" field.
	LinkedAt time.Time `json:"linked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventMessageQuery when eager-loading is set.
	Edges        EventMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventMessageEdges holds the relations/edges for other nodes in the graph.
type EventMessageEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// RawMessage holds the value of the raw_message edge.
	RawMessage *RawMessage `json:"raw_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventMessageEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// RawMessageOrErr returns the RawMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EventMessageEdges) RawMessageOrErr() (*RawMessage, error) {
	if e.RawMessage != nil {
		return e.RawMessage, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventmessage.FieldID, eventmessage.FieldEventID, eventmessage.FieldRawMessageID:
			values[i] = new(sql.NullInt64)
		case eventmessage.FieldLinkedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventMessage fields.
func (_m *EventMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case eventmessage.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case eventmessage.FieldRawMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_message_id", values[i])
			} else if value.Valid {
				_m.RawMessageID = int(value.Int64)
			}
		case eventmessage.FieldLinkedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field linked_at", values[i])
			} else if value.Valid {
				_m.LinkedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventMessage.
// This includes values selected through modifiers, order, etc.
func (_m *EventMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the EventMessage entity.
func (_m *EventMessage) QueryEvent() *EventQuery {
	return NewEventMessageClient(_m.config).QueryEvent(_m)
}

// QueryRawMessage queries the "raw_message" edge of the EventMessage entity.
func (_m *EventMessage) QueryRawMessage() *RawMessageQuery {
	return NewEventMessageClient(_m.config).QueryRawMessage(_m)
}

// Update returns a builder for updating this EventMessage.
// Note that you need to call EventMessage.Unwrap() before calling this method if this EventMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventMessage) Update() *EventMessageUpdateOne {
	return NewEventMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventMessage) Unwrap() *EventMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventMessage) String() string {
	var builder strings.Builder
	builder.WriteString("EventMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("raw_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMessageID))
	builder.WriteString(", ")
	builder.WriteString("linked_at=")
	builder.WriteString(_m.LinkedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventMessages is a parsable slice of EventMessage.
type EventMessages []*EventMessage
