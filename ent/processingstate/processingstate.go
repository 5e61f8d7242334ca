// Code generated by ent, DO NOT EDIT.

package processingstate

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the processingstate type in the database.
	Label = "processing_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawMessageID holds the string denoting the raw_message_id field in the database.
	FieldRawMessageID = "raw_message_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldLastAttemptedAt holds the string denoting the last_attempted_at field in the database.
	FieldLastAttemptedAt = "last_attempted_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLeaseExpiresAt holds the string denoting the lease_expires_at field in the database.
	FieldLeaseExpiresAt = "lease_expires_at"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldProcessingRunID holds the string denoting the processing_run_id field in the database.
	FieldProcessingRunID = "processing_run_id"
	// EdgeRawMessage holds the string denoting the raw_message edge name in mutations.
	EdgeRawMessage = "raw_message"
	// Table holds the table name of the processingstate in the database.
	Table = "processing_states"
	// RawMessageTable is the table that holds the raw_message relation/edge.
	RawMessageTable = "processing_states"
	// RawMessageInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawMessageInverseTable = "raw_messages"
	// RawMessageColumn is the table column denoting the raw_message relation/edge.
	RawMessageColumn = "raw_message_id"
)

// Columns holds all SQL columns for processingstate fields.
var Columns = []string{
	FieldID,
	FieldRawMessageID,
	FieldStatus,
	FieldAttemptCount,
	FieldLastAttemptedAt,
	FieldCompletedAt,
	FieldLeaseExpiresAt,
	FieldLastError,
	FieldProcessingRunID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("processingstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProcessingState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawMessageID orders the results by the raw_message_id field.
func ByRawMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMessageID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByLastAttemptedAt orders the results by the last_attempted_at field.
func ByLastAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLeaseExpiresAt orders the results by the lease_expires_at field.
func ByLeaseExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseExpiresAt, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByProcessingRunID orders the results by the processing_run_id field.
func ByProcessingRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingRunID, opts...).ToFunc()
}

// ByRawMessageField orders the results by raw_message field.
func ByRawMessageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawMessageStep(), sql.OrderByField(field, opts...))
	}
}
func newRawMessageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawMessageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RawMessageTable, RawMessageColumn),
	)
}
