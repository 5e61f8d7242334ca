// Code generated by ent, DO NOT EDIT.

package processinglock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLTE(FieldID, id))
}

// LockName applies equality check predicate on the "lock_name" field. It's identical to LockNameEQ.
func LockName(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldLockName, v))
}

// LockedUntil applies equality check predicate on the "locked_until" field. It's identical to LockedUntilEQ.
func LockedUntil(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldLockedUntil, v))
}

// OwnerRunID applies equality check predicate on the "owner_run_id" field. It's identical to OwnerRunIDEQ.
func OwnerRunID(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldOwnerRunID, v))
}

// LockNameEQ applies the EQ predicate on the "lock_name" field.
func LockNameEQ(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldLockName, v))
}

// LockNameNEQ applies the NEQ predicate on the "lock_name" field.
func LockNameNEQ(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNEQ(FieldLockName, v))
}

// LockNameIn applies the In predicate on the "lock_name" field.
func LockNameIn(vs ...string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldIn(FieldLockName, vs...))
}

// LockNameNotIn applies the NotIn predicate on the "lock_name" field.
func LockNameNotIn(vs ...string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNotIn(FieldLockName, vs...))
}

// LockNameGT applies the GT predicate on the "lock_name" field.
func LockNameGT(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGT(FieldLockName, v))
}

// LockNameGTE applies the GTE predicate on the "lock_name" field.
func LockNameGTE(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGTE(FieldLockName, v))
}

// LockNameLT applies the LT predicate on the "lock_name" field.
func LockNameLT(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLT(FieldLockName, v))
}

// LockNameLTE applies the LTE predicate on the "lock_name" field.
func LockNameLTE(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLTE(FieldLockName, v))
}

// LockNameContains applies the Contains predicate on the "lock_name" field.
func LockNameContains(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldContains(FieldLockName, v))
}

// LockNameHasPrefix applies the HasPrefix predicate on the "lock_name" field.
func LockNameHasPrefix(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldHasPrefix(FieldLockName, v))
}

// LockNameHasSuffix applies the HasSuffix predicate on the "lock_name" field.
func LockNameHasSuffix(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldHasSuffix(FieldLockName, v))
}

// LockNameEqualFold applies the EqualFold predicate on the "lock_name" field.
func LockNameEqualFold(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEqualFold(FieldLockName, v))
}

// LockNameContainsFold applies the ContainsFold predicate on the "lock_name" field.
func LockNameContainsFold(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldContainsFold(FieldLockName, v))
}

// LockedUntilEQ applies the EQ predicate on the "locked_until" field.
func LockedUntilEQ(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldLockedUntil, v))
}

// LockedUntilNEQ applies the NEQ predicate on the "locked_until" field.
func LockedUntilNEQ(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNEQ(FieldLockedUntil, v))
}

// LockedUntilIn applies the In predicate on the "locked_until" field.
func LockedUntilIn(vs ...time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldIn(FieldLockedUntil, vs...))
}

// LockedUntilNotIn applies the NotIn predicate on the "locked_until" field.
func LockedUntilNotIn(vs ...time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNotIn(FieldLockedUntil, vs...))
}

// LockedUntilGT applies the GT predicate on the "locked_until" field.
func LockedUntilGT(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGT(FieldLockedUntil, v))
}

// LockedUntilGTE applies the GTE predicate on the "locked_until" field.
func LockedUntilGTE(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGTE(FieldLockedUntil, v))
}

// LockedUntilLT applies the LT predicate on the "locked_until" field.
func LockedUntilLT(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLT(FieldLockedUntil, v))
}

// LockedUntilLTE applies the LTE predicate on the "locked_until" field.
func LockedUntilLTE(v time.Time) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLTE(FieldLockedUntil, v))
}

// OwnerRunIDEQ applies the EQ predicate on the "owner_run_id" field.
func OwnerRunIDEQ(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEQ(FieldOwnerRunID, v))
}

// OwnerRunIDNEQ applies the NEQ predicate on the "owner_run_id" field.
func OwnerRunIDNEQ(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNEQ(FieldOwnerRunID, v))
}

// OwnerRunIDIn applies the In predicate on the "owner_run_id" field.
func OwnerRunIDIn(vs ...string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldIn(FieldOwnerRunID, vs...))
}

// OwnerRunIDNotIn applies the NotIn predicate on the "owner_run_id" field.
func OwnerRunIDNotIn(vs ...string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldNotIn(FieldOwnerRunID, vs...))
}

// OwnerRunIDGT applies the GT predicate on the "owner_run_id" field.
func OwnerRunIDGT(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGT(FieldOwnerRunID, v))
}

// OwnerRunIDGTE applies the GTE predicate on the "owner_run_id" field.
func OwnerRunIDGTE(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldGTE(FieldOwnerRunID, v))
}

// OwnerRunIDLT applies the LT predicate on the "owner_run_id" field.
func OwnerRunIDLT(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLT(FieldOwnerRunID, v))
}

// OwnerRunIDLTE applies the LTE predicate on the "owner_run_id" field.
func OwnerRunIDLTE(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldLTE(FieldOwnerRunID, v))
}

// OwnerRunIDContains applies the Contains predicate on the "owner_run_id" field.
func OwnerRunIDContains(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldContains(FieldOwnerRunID, v))
}

// OwnerRunIDHasPrefix applies the HasPrefix predicate on the "owner_run_id" field.
func OwnerRunIDHasPrefix(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldHasPrefix(FieldOwnerRunID, v))
}

// OwnerRunIDHasSuffix applies the HasSuffix predicate on the "owner_run_id" field.
func OwnerRunIDHasSuffix(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldHasSuffix(FieldOwnerRunID, v))
}

// OwnerRunIDEqualFold applies the EqualFold predicate on the "owner_run_id" field.
func OwnerRunIDEqualFold(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldEqualFold(FieldOwnerRunID, v))
}

// OwnerRunIDContainsFold applies the ContainsFold predicate on the "owner_run_id" field.
func OwnerRunIDContainsFold(v string) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.FieldContainsFold(FieldOwnerRunID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingLock) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingLock) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingLock) predicate.ProcessingLock {
	return predicate.ProcessingLock(sql.NotPredicates(p))
}
