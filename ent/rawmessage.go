// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RawMessage is the model entity for the RawMessage schema.
type RawMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceChannelID holds the value of the "source_channel_id" field.
	SourceChannelID string `json:"source_channel_id,omitempty"`
	// SourceChannelName holds the value of the "source_channel_name" field.
	SourceChannelName *string `json:"source_channel_name,omitempty"`
	// Message id assigned by the upstream channel
	UpstreamMessageID string `json:"upstream_message_id,omitempty"`
	// MessageTimestampUtc holds the value of the "message_timestamp_utc" field.
	MessageTimestampUtc time.Time `json:"message_timestamp_utc,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// NormalizedText holds the value of the "normalized_text" field.
	NormalizedText string `json:"normalized_text,omitempty"`
	// RawEntities holds the value of the "raw_entities" field.
	RawEntities map[string]interface{} `json:"raw_entities,omitempty"`
	// ForwardedFrom holds the value of the "forwarded_from" field.
	ForwardedFrom *string `json:"forwarded_from,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RawMessageQuery when eager-loading is set.
	Edges        RawMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RawMessageEdges holds the relations/edges for other nodes in the graph.
type RawMessageEdges struct {
	// ProcessingState holds the value of the processing_state edge.
	ProcessingState *ProcessingState `json:"processing_state,omitempty"`
	// Extraction holds the value of the extraction edge.
	Extraction *Extraction `json:"extraction,omitempty"`
	// RoutingDecision holds the value of the routing_decision edge.
	RoutingDecision *RoutingDecision `json:"routing_decision,omitempty"`
	// EventLinks holds the value of the event_links edge.
	EventLinks []*EventMessage `json:"event_links,omitempty"`
	// EntityMentions holds the value of the entity_mentions edge.
	EntityMentions []*EntityMention `json:"entity_mentions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProcessingStateOrErr returns the ProcessingState value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RawMessageEdges) ProcessingStateOrErr() (*ProcessingState, error) {
	if e.ProcessingState != nil {
		return e.ProcessingState, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: processingstate.Label}
	}
	return nil, &NotLoadedError{edge: "processing_state"}
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RawMessageEdges) ExtractionOrErr() (*Extraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: extraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// RoutingDecisionOrErr returns the RoutingDecision value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RawMessageEdges) RoutingDecisionOrErr() (*RoutingDecision, error) {
	if e.RoutingDecision != nil {
		return e.RoutingDecision, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: routingdecision.Label}
	}
	return nil, &NotLoadedError{edge: "routing_decision"}
}

// EventLinksOrErr returns the EventLinks value or an error if the edge
// was not loaded in eager-loading.
func (e RawMessageEdges) EventLinksOrErr() ([]*EventMessage, error) {
	if e.loadedTypes[3] {
		return e.EventLinks, nil
	}
	return nil, &NotLoadedError{edge: "event_links"}
}

// EntityMentionsOrErr returns the EntityMentions value or an error if the edge
// was not loaded in eager-loading.
func (e RawMessageEdges) EntityMentionsOrErr() ([]*EntityMention, error) {
	if e.loadedTypes[4] {
		return e.EntityMentions, nil
	}
	return nil, &NotLoadedError{edge: "entity_mentions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldRawEntities:
			values[i] = new([]byte)
		case rawmessage.FieldID:
			values[i] = new(sql.NullInt64)
		case rawmessage.FieldSourceChannelID, rawmessage.FieldSourceChannelName, rawmessage.FieldUpstreamMessageID, rawmessage.FieldRawText, rawmessage.FieldNormalizedText, rawmessage.FieldForwardedFrom:
			values[i] = new(sql.NullString)
		case rawmessage.FieldMessageTimestampUtc, rawmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawMessage fields.
func (_m *RawMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rawmessage.FieldSourceChannelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_channel_id", values[i])
			} else if value.Valid {
				_m.SourceChannelID = value.String
			}
		case rawmessage.FieldSourceChannelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_channel_name", values[i])
			} else if value.Valid {
				_m.SourceChannelName = new(string)
				*_m.SourceChannelName = value.String
			}
		case rawmessage.FieldUpstreamMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_message_id", values[i])
			} else if value.Valid {
				_m.UpstreamMessageID = value.String
			}
		case rawmessage.FieldMessageTimestampUtc:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field message_timestamp_utc", values[i])
			} else if value.Valid {
				_m.MessageTimestampUtc = value.Time
			}
		case rawmessage.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case rawmessage.FieldNormalizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_text", values[i])
			} else if value.Valid {
				_m.NormalizedText = value.String
			}
		case rawmessage.FieldRawEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawEntities); err != nil {
					return fmt.Errorf("unmarshal field raw_entities: %w", err)
				}
			}
		case rawmessage.FieldForwardedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forwarded_from", values[i])
			} else if value.Valid {
				_m.ForwardedFrom = new(string)
				*_m.ForwardedFrom = value.String
			}
		case rawmessage.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RawMessage.
// This includes values selected through modifiers, order, etc.
func (_m *RawMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProcessingState queries the "processing_state" edge of the RawMessage entity.
func (_m *RawMessage) QueryProcessingState() *ProcessingStateQuery {
	return NewRawMessageClient(_m.config).QueryProcessingState(_m)
}

// QueryExtraction queries the "extraction" edge of the RawMessage entity.
func (_m *RawMessage) QueryExtraction() *ExtractionQuery {
	return NewRawMessageClient(_m.config).QueryExtraction(_m)
}

// QueryRoutingDecision queries the "routing_decision" edge of the RawMessage entity.
func (_m *RawMessage) QueryRoutingDecision() *RoutingDecisionQuery {
	return NewRawMessageClient(_m.config).QueryRoutingDecision(_m)
}

// QueryEventLinks queries the "event_links" edge of the RawMessage entity.
func (_m *RawMessage) QueryEventLinks() *EventMessageQuery {
	return NewRawMessageClient(_m.config).QueryEventLinks(_m)
}

// QueryEntityMentions queries the "entity_mentions" edge of the RawMessage entity.
func (_m *RawMessage) QueryEntityMentions() *EntityMentionQuery {
	return NewRawMessageClient(_m.config).QueryEntityMentions(_m)
}

// Update returns a builder for updating this RawMessage.
// Note that you need to call RawMessage.Unwrap() before calling this method if this RawMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawMessage) Update() *RawMessageUpdateOne {
	return NewRawMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawMessage) Unwrap() *RawMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawMessage) String() string {
	var builder strings.Builder
	builder.WriteString("RawMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_channel_id=")
	builder.WriteString(_m.SourceChannelID)
	builder.WriteString(", ")
	if v := _m.SourceChannelName; v != nil {
		builder.WriteString("source_channel_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("upstream_message_id=")
	builder.WriteString(_m.UpstreamMessageID)
	builder.WriteString(", ")
	builder.WriteString("message_timestamp_utc=")
	builder.WriteString(_m.MessageTimestampUtc.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("normalized_text=")
	builder.WriteString(_m.NormalizedText)
	builder.WriteString(", ")
	builder.WriteString("raw_entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawEntities))
	builder.WriteString(", ")
	if v := _m.ForwardedFrom; v != nil {
		builder.WriteString("forwarded_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RawMessages is a parsable slice of RawMessage.
type RawMessages []*RawMessage
