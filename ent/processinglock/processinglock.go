// Code generated by ent, DO NOT EDIT.

package processinglock

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processinglock type in the database.
	Label = "processing_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLockName holds the string denoting the lock_name field in the database.
	FieldLockName = "lock_name"
	// FieldLockedUntil holds the string denoting the locked_until field in the database.
	FieldLockedUntil = "locked_until"
	// FieldOwnerRunID holds the string denoting the owner_run_id field in the database.
	FieldOwnerRunID = "owner_run_id"
	// Table holds the table name of the processinglock in the database.
	Table = "processing_locks"
)

// Columns holds all SQL columns for processinglock fields.
var Columns = []string{
	FieldID,
	FieldLockName,
	FieldLockedUntil,
	FieldOwnerRunID,
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
	// LockNameValidator is a validator for the "lock_name" field. It is called by the builders before save.
	LockNameValidator func(string) error
)

// OrderOption defines the ordering options for the ProcessingLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLockName orders the results by the lock_name field.
func ByLockName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockName, opts...).ToFunc()
}

// ByLockedUntil orders the results by the locked_until field.
func ByLockedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockedUntil, opts...).ToFunc()
}

// ByOwnerRunID orders the results by the owner_run_id field.
func ByOwnerRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerRunID, opts...).ToFunc()
}
