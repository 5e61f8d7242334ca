// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RoutingDecision is the model entity for the RoutingDecision schema.
type RoutingDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RawMessageID holds the value of the "raw_message_id" field.
	RawMessageID int `json:"raw_message_id,omitempty"`
	// StoreTo holds the value of the "store_to" field.
	StoreTo []string `json:"store_to,omitempty"`
	// PublishPriority holds the value of the "publish_priority" field.
	PublishPriority string `json:"publish_priority,omitempty"`
	// RequiresEvidence holds the value of the "requires_evidence" field.
	RequiresEvidence bool `json:"requires_evidence,omitempty"`
	// EventAction holds the value of the "event_action" field.
	EventAction string `json:"event_action,omitempty"`
	// TriageAction holds the value of the "triage_action" field.
	TriageAction *string `json:"triage_action,omitempty"`
	// TriageRules holds the value of the "triage_rules" field.
	TriageRules []string `json:"triage_rules,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags []string `json:"flags,omitempty"`
	// RulesFired holds the value of the "rules_fired" field.
	RulesFired []string `json:"rules_fired,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoutingDecisionQuery when eager-loading is set.
	Edges        RoutingDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoutingDecisionEdges holds the relations/edges for other nodes in the graph.
type RoutingDecisionEdges struct {
	// RawMessage holds the value of the raw_message edge.
	RawMessage *RawMessage `json:"raw_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RawMessageOrErr returns the RawMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoutingDecisionEdges) RawMessageOrErr() (*RawMessage, error) {
	if e.RawMessage != nil {
		return e.RawMessage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoutingDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case routingdecision.FieldStoreTo, routingdecision.FieldTriageRules, routingdecision.FieldFlags, routingdecision.FieldRulesFired:
			values[i] = new([]byte)
		case routingdecision.FieldRequiresEvidence:
			values[i] = new(sql.NullBool)
		case routingdecision.FieldID, routingdecision.FieldRawMessageID:
			values[i] = new(sql.NullInt64)
		case routingdecision.FieldPublishPriority, routingdecision.FieldEventAction, routingdecision.FieldTriageAction:
			values[i] = new(sql.NullString)
		case routingdecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoutingDecision fields.
func (_m *RoutingDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case routingdecision.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case routingdecision.FieldRawMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_message_id", values[i])
			} else if value.Valid {
				_m.RawMessageID = int(value.Int64)
			}
		case routingdecision.FieldStoreTo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field store_to", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StoreTo); err != nil {
					return fmt.Errorf("unmarshal field store_to: %w", err)
				}
			}
		case routingdecision.FieldPublishPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field publish_priority", values[i])
			} else if value.Valid {
				_m.PublishPriority = value.String
			}
		case routingdecision.FieldRequiresEvidence:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_evidence", values[i])
			} else if value.Valid {
				_m.RequiresEvidence = value.Bool
			}
		case routingdecision.FieldEventAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_action", values[i])
			} else if value.Valid {
				_m.EventAction = value.String
			}
		case routingdecision.FieldTriageAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triage_action", values[i])
			} else if value.Valid {
				_m.TriageAction = new(string)
				*_m.TriageAction = value.String
			}
		case routingdecision.FieldTriageRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field triage_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TriageRules); err != nil {
					return fmt.Errorf("unmarshal field triage_rules: %w", err)
				}
			}
		case routingdecision.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case routingdecision.FieldRulesFired:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rules_fired", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RulesFired); err != nil {
					return fmt.Errorf("unmarshal field rules_fired: %w", err)
				}
			}
		case routingdecision.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RoutingDecision.
// This includes values selected through modifiers, order, etc.
func (_m *RoutingDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawMessage queries the "raw_message" edge of the RoutingDecision entity.
func (_m *RoutingDecision) QueryRawMessage() *RawMessageQuery {
	return NewRoutingDecisionClient(_m.config).QueryRawMessage(_m)
}

// Update returns a builder for updating this RoutingDecision.
// Note that you need to call RoutingDecision.Unwrap() before calling this method if this RoutingDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoutingDecision) Update() *RoutingDecisionUpdateOne {
	return NewRoutingDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoutingDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoutingDecision) Unwrap() *RoutingDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoutingDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoutingDecision) String() string {
	var builder strings.Builder
	builder.WriteString("RoutingDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMessageID))
	builder.WriteString(", ")
	builder.WriteString("store_to=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoreTo))
	builder.WriteString(", ")
	builder.WriteString("publish_priority=")
	builder.WriteString(_m.PublishPriority)
	builder.WriteString(", ")
	builder.WriteString("requires_evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresEvidence))
	builder.WriteString(", ")
	builder.WriteString("event_action=")
	builder.WriteString(_m.EventAction)
	builder.WriteString(", ")
	if v := _m.TriageAction; v != nil {
		builder.WriteString("triage_action=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("triage_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageRules))
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("rules_fired=")
	builder.WriteString(fmt.Sprintf("%v", _m.RulesFired))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoutingDecisions is a parsable slice of RoutingDecision.
type RoutingDecisions []*RoutingDecision
