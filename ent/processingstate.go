// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// ProcessingState is the model entity for the ProcessingState schema.
type ProcessingState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RawMessageID holds the value of the "raw_message_id" field.
	RawMessageID int `json:"raw_message_id,omitempty"`
	// Status holds the value of the "status" field.
	Status processingstate.Status `json:"status,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// LastAttemptedAt holds the value of the "last_attempted_at" field.
	LastAttemptedAt *time.Time `json:"last_attempted_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Set while in_progress; expiry makes the message re-eligible
	LeaseExpiresAt *time.Time `json:"lease_expires_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// ProcessingRunID holds the value of the "processing_run_id" field.
	ProcessingRunID *string `json:"processing_run_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessingStateQuery when eager-loading is set.
	Edges        ProcessingStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessingStateEdges holds the relations/edges for other nodes in the graph.
type ProcessingStateEdges struct {
	// RawMessage holds the value of the raw_message edge.
	RawMessage *RawMessage `json:"raw_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RawMessageOrErr returns the RawMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessingStateEdges) RawMessageOrErr() (*RawMessage, error) {
	if e.RawMessage != nil {
		return e.RawMessage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingstate.FieldID, processingstate.FieldRawMessageID, processingstate.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case processingstate.FieldStatus, processingstate.FieldLastError, processingstate.FieldProcessingRunID:
			values[i] = new(sql.NullString)
		case processingstate.FieldLastAttemptedAt, processingstate.FieldCompletedAt, processingstate.FieldLeaseExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingState fields.
func (_m *ProcessingState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case processingstate.FieldRawMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_message_id", values[i])
			} else if value.Valid {
				_m.RawMessageID = int(value.Int64)
			}
		case processingstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processingstate.Status(value.String)
			}
		case processingstate.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case processingstate.FieldLastAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_at", values[i])
			} else if value.Valid {
				_m.LastAttemptedAt = new(time.Time)
				*_m.LastAttemptedAt = value.Time
			}
		case processingstate.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case processingstate.FieldLeaseExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lease_expires_at", values[i])
			} else if value.Valid {
				_m.LeaseExpiresAt = new(time.Time)
				*_m.LeaseExpiresAt = value.Time
			}
		case processingstate.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case processingstate.FieldProcessingRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_run_id", values[i])
			} else if value.Valid {
				_m.ProcessingRunID = new(string)
				*_m.ProcessingRunID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingState.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawMessage queries the "raw_message" edge of the ProcessingState entity.
func (_m *ProcessingState) QueryRawMessage() *RawMessageQuery {
	return NewProcessingStateClient(_m.config).QueryRawMessage(_m)
}

// Update returns a builder for updating this ProcessingState.
// Note that you need to call ProcessingState.Unwrap() before calling this method if this ProcessingState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingState) Update() *ProcessingStateUpdateOne {
	return NewProcessingStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingState) Unwrap() *ProcessingState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingState) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMessageID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	if v := _m.LastAttemptedAt; v != nil {
		builder.WriteString("last_attempted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LeaseExpiresAt; v != nil {
		builder.WriteString("lease_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProcessingRunID; v != nil {
		builder.WriteString("processing_run_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingStates is a parsable slice of ProcessingState.
type ProcessingStates []*ProcessingState
