// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// EntityMention is the model entity for the EntityMention schema.
type EntityMention struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RawMessageID holds the value of the "raw_message_id" field.
	RawMessageID int `json:"raw_message_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID *int `json:"event_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// EntityValue holds the value of the "entity_value" field.
	EntityValue string `json:"entity_value,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// IsBreaking holds the value of the "is_breaking" field.
	IsBreaking bool `json:"is_breaking,omitempty"`
	// EventTime holds the value of the "event_time" field.
	EventTime *time.Time `json:"event_time,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityMentionQuery when eager-loading is set.
	Edges        EntityMentionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityMentionEdges holds the relations/edges for other nodes in the graph.
type EntityMentionEdges struct {
	// RawMessage holds the value of the raw_message edge.
	RawMessage *RawMessage `json:"raw_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RawMessageOrErr returns the RawMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityMentionEdges) RawMessageOrErr() (*RawMessage, error) {
	if e.RawMessage != nil {
		return e.RawMessage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityMention) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldIsBreaking:
			values[i] = new(sql.NullBool)
		case entitymention.FieldID, entitymention.FieldRawMessageID, entitymention.FieldEventID:
			values[i] = new(sql.NullInt64)
		case entitymention.FieldEntityType, entitymention.FieldEntityValue, entitymention.FieldTopic:
			values[i] = new(sql.NullString)
		case entitymention.FieldEventTime, entitymention.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityMention fields.
func (_m *EntityMention) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitymention.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entitymention.FieldRawMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_message_id", values[i])
			} else if value.Valid {
				_m.RawMessageID = int(value.Int64)
			}
		case entitymention.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = new(int)
				*_m.EventID = int(value.Int64)
			}
		case entitymention.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case entitymention.FieldEntityValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_value", values[i])
			} else if value.Valid {
				_m.EntityValue = value.String
			}
		case entitymention.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case entitymention.FieldIsBreaking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_breaking", values[i])
			} else if value.Valid {
				_m.IsBreaking = value.Bool
			}
		case entitymention.FieldEventTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_time", values[i])
			} else if value.Valid {
				_m.EventTime = new(time.Time)
				*_m.EventTime = value.Time
			}
		case entitymention.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntityMention.
// This includes values selected through modifiers, order, etc.
func (_m *EntityMention) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawMessage queries the "raw_message" edge of the EntityMention entity.
func (_m *EntityMention) QueryRawMessage() *RawMessageQuery {
	return NewEntityMentionClient(_m.config).QueryRawMessage(_m)
}

// Update returns a builder for updating this EntityMention.
// Note that you need to call EntityMention.Unwrap() before calling this method if this EntityMention
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityMention) Update() *EntityMentionUpdateOne {
	return NewEntityMentionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityMention entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityMention) Unwrap() *EntityMention {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityMention is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityMention) String() string {
	var builder strings.Builder
	builder.WriteString("EntityMention(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMessageID))
	builder.WriteString(", ")
	if v := _m.EventID; v != nil {
		builder.WriteString("event_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("entity_value=")
	builder.WriteString(_m.EntityValue)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("is_breaking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBreaking))
	builder.WriteString(", ")
	if v := _m.EventTime; v != nil {
		builder.WriteString("event_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityMentions is a parsable slice of EntityMention.
type EntityMentions []*EntityMention
