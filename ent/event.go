// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/event"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventFingerprint holds the value of the "event_fingerprint" field.
	EventFingerprint string `json:"event_fingerprint,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic *string `json:"topic,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// ImpactScore holds the value of the "impact_score" field.
	ImpactScore *float64 `json:"impact_score,omitempty"`
	// IsBreaking holds the value of the "is_breaking" field.
	IsBreaking bool `json:"is_breaking,omitempty"`
	// BreakingWindow holds the value of the "breaking_window" field.
	BreakingWindow *string `json:"breaking_window,omitempty"`
	// EventTime holds the value of the "event_time" field.
	EventTime *time.Time `json:"event_time,omitempty"`
	// LastUpdatedAt holds the value of the "last_updated_at" field.
	LastUpdatedAt time.Time `json:"last_updated_at,omitempty"`
	// Soft reference to the extraction row; set null on deletion
	LatestExtractionID *int `json:"latest_extraction_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EventQuery when eager-loading is set.
	Edges        EventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EventEdges holds the relations/edges for other nodes in the graph.
type EventEdges struct {
	// MessageLinks holds the value of the message_links edge.
	MessageLinks []*EventMessage `json:"message_links,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MessageLinksOrErr returns the MessageLinks value or an error if the edge
// was not loaded in eager-loading.
func (e EventEdges) MessageLinksOrErr() ([]*EventMessage, error) {
	if e.loadedTypes[0] {
		return e.MessageLinks, nil
	}
	return nil, &NotLoadedError{edge: "message_links"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldIsBreaking:
			values[i] = new(sql.NullBool)
		case event.FieldImpactScore:
			values[i] = new(sql.NullFloat64)
		case event.FieldID, event.FieldLatestExtractionID:
			values[i] = new(sql.NullInt64)
		case event.FieldEventFingerprint, event.FieldTopic, event.FieldSummary, event.FieldBreakingWindow:
			values[i] = new(sql.NullString)
		case event.FieldEventTime, event.FieldLastUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case event.FieldEventFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_fingerprint", values[i])
			} else if value.Valid {
				_m.EventFingerprint = value.String
			}
		case event.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = new(string)
				*_m.Topic = value.String
			}
		case event.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case event.FieldImpactScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field impact_score", values[i])
			} else if value.Valid {
				_m.ImpactScore = new(float64)
				*_m.ImpactScore = value.Float64
			}
		case event.FieldIsBreaking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_breaking", values[i])
			} else if value.Valid {
				_m.IsBreaking = value.Bool
			}
		case event.FieldBreakingWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breaking_window", values[i])
			} else if value.Valid {
				_m.BreakingWindow = new(string)
				*_m.BreakingWindow = value.String
			}
		case event.FieldEventTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_time", values[i])
			} else if value.Valid {
				_m.EventTime = new(time.Time)
				*_m.EventTime = value.Time
			}
		case event.FieldLastUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated_at", values[i])
			} else if value.Valid {
				_m.LastUpdatedAt = value.Time
			}
		case event.FieldLatestExtractionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latest_extraction_id", values[i])
			} else if value.Valid {
				_m.LatestExtractionID = new(int)
				*_m.LatestExtractionID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessageLinks queries the "message_links" edge of the Event entity.
func (_m *Event) QueryMessageLinks() *EventMessageQuery {
	return NewEventClient(_m.config).QueryMessageLinks(_m)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_fingerprint=")
	builder.WriteString(_m.EventFingerprint)
	builder.WriteString(", ")
	if v := _m.Topic; v != nil {
		builder.WriteString("topic=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImpactScore; v != nil {
		builder.WriteString("impact_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_breaking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBreaking))
	builder.WriteString(", ")
	if v := _m.BreakingWindow; v != nil {
		builder.WriteString("breaking_window=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EventTime; v != nil {
		builder.WriteString("event_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_updated_at=")
	builder.WriteString(_m.LastUpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LatestExtractionID; v != nil {
		builder.WriteString("latest_extraction_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
