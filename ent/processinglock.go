// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/processinglock"
)

// ProcessingLock is the model entity for the ProcessingLock schema.
type ProcessingLock struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LockName holds the value of the "lock_name" field.
	LockName string `json:"lock_name,omitempty"`
	// LockedUntil holds the value of the "locked_until" field.
	LockedUntil time.Time `json:"locked_until,omitempty"`
	// OwnerRunID holds the value of the "owner_run_id" field.
	OwnerRunID   string `json:"owner_run_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processinglock.FieldID:
			values[i] = new(sql.NullInt64)
		case processinglock.FieldLockName, processinglock.FieldOwnerRunID:
			values[i] = new(sql.NullString)
		case processinglock.FieldLockedUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingLock fields.
func (_m *ProcessingLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processinglock.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case processinglock.FieldLockName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lock_name", values[i])
			} else if value.Valid {
				_m.LockName = value.String
			}
		case processinglock.FieldLockedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_until", values[i])
			} else if value.Valid {
				_m.LockedUntil = value.Time
			}
		case processinglock.FieldOwnerRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_run_id", values[i])
			} else if value.Valid {
				_m.OwnerRunID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingLock.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessingLock.
// Note that you need to call ProcessingLock.Unwrap() before calling this method if this ProcessingLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingLock) Update() *ProcessingLockUpdateOne {
	return NewProcessingLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingLock) Unwrap() *ProcessingLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingLock) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lock_name=")
	builder.WriteString(_m.LockName)
	builder.WriteString(", ")
	builder.WriteString("locked_until=")
	builder.WriteString(_m.LockedUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("owner_run_id=")
	builder.WriteString(_m.OwnerRunID)
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingLocks is a parsable slice of ProcessingLock.
type ProcessingLocks []*ProcessingLock
