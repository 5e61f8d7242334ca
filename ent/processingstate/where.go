// Code generated by ent, DO NOT EDIT.

package processingstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldID, id))
}

// RawMessageID applies equality check predicate on the "raw_message_id" field. It's identical to RawMessageIDEQ.
func RawMessageID(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldRawMessageID, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldAttemptCount, v))
}

// LastAttemptedAt applies equality check predicate on the "last_attempted_at" field. It's identical to LastAttemptedAtEQ.
func LastAttemptedAt(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldCompletedAt, v))
}

// LeaseExpiresAt applies equality check predicate on the "lease_expires_at" field. It's identical to LeaseExpiresAtEQ.
func LeaseExpiresAt(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLastError, v))
}

// ProcessingRunID applies equality check predicate on the "processing_run_id" field. It's identical to ProcessingRunIDEQ.
func ProcessingRunID(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldProcessingRunID, v))
}

// RawMessageIDEQ applies the EQ predicate on the "raw_message_id" field.
func RawMessageIDEQ(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldRawMessageID, v))
}

// RawMessageIDNEQ applies the NEQ predicate on the "raw_message_id" field.
func RawMessageIDNEQ(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldRawMessageID, v))
}

// RawMessageIDIn applies the In predicate on the "raw_message_id" field.
func RawMessageIDIn(vs ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldRawMessageID, vs...))
}

// RawMessageIDNotIn applies the NotIn predicate on the "raw_message_id" field.
func RawMessageIDNotIn(vs ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldRawMessageID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldAttemptCount, v))
}

// LastAttemptedAtEQ applies the EQ predicate on the "last_attempted_at" field.
func LastAttemptedAtEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtNEQ applies the NEQ predicate on the "last_attempted_at" field.
func LastAttemptedAtNEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIn applies the In predicate on the "last_attempted_at" field.
func LastAttemptedAtIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtNotIn applies the NotIn predicate on the "last_attempted_at" field.
func LastAttemptedAtNotIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldLastAttemptedAt, vs...))
}

// LastAttemptedAtGT applies the GT predicate on the "last_attempted_at" field.
func LastAttemptedAtGT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtGTE applies the GTE predicate on the "last_attempted_at" field.
func LastAttemptedAtGTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLT applies the LT predicate on the "last_attempted_at" field.
func LastAttemptedAtLT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldLastAttemptedAt, v))
}

// LastAttemptedAtLTE applies the LTE predicate on the "last_attempted_at" field.
func LastAttemptedAtLTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldLastAttemptedAt, v))
}

// LastAttemptedAtIsNil applies the IsNil predicate on the "last_attempted_at" field.
func LastAttemptedAtIsNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIsNull(FieldLastAttemptedAt))
}

// LastAttemptedAtNotNil applies the NotNil predicate on the "last_attempted_at" field.
func LastAttemptedAtNotNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotNull(FieldLastAttemptedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotNull(FieldCompletedAt))
}

// LeaseExpiresAtEQ applies the EQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtNEQ applies the NEQ predicate on the "lease_expires_at" field.
func LeaseExpiresAtNEQ(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIn applies the In predicate on the "lease_expires_at" field.
func LeaseExpiresAtIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtNotIn applies the NotIn predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotIn(vs ...time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldLeaseExpiresAt, vs...))
}

// LeaseExpiresAtGT applies the GT predicate on the "lease_expires_at" field.
func LeaseExpiresAtGT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtGTE applies the GTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtGTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLT applies the LT predicate on the "lease_expires_at" field.
func LeaseExpiresAtLT(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtLTE applies the LTE predicate on the "lease_expires_at" field.
func LeaseExpiresAtLTE(v time.Time) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldLeaseExpiresAt, v))
}

// LeaseExpiresAtIsNil applies the IsNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtIsNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIsNull(FieldLeaseExpiresAt))
}

// LeaseExpiresAtNotNil applies the NotNil predicate on the "lease_expires_at" field.
func LeaseExpiresAtNotNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotNull(FieldLeaseExpiresAt))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldContainsFold(FieldLastError, v))
}

// ProcessingRunIDEQ applies the EQ predicate on the "processing_run_id" field.
func ProcessingRunIDEQ(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEQ(FieldProcessingRunID, v))
}

// ProcessingRunIDNEQ applies the NEQ predicate on the "processing_run_id" field.
func ProcessingRunIDNEQ(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNEQ(FieldProcessingRunID, v))
}

// ProcessingRunIDIn applies the In predicate on the "processing_run_id" field.
func ProcessingRunIDIn(vs ...string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIn(FieldProcessingRunID, vs...))
}

// ProcessingRunIDNotIn applies the NotIn predicate on the "processing_run_id" field.
func ProcessingRunIDNotIn(vs ...string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotIn(FieldProcessingRunID, vs...))
}

// ProcessingRunIDGT applies the GT predicate on the "processing_run_id" field.
func ProcessingRunIDGT(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGT(FieldProcessingRunID, v))
}

// ProcessingRunIDGTE applies the GTE predicate on the "processing_run_id" field.
func ProcessingRunIDGTE(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldGTE(FieldProcessingRunID, v))
}

// ProcessingRunIDLT applies the LT predicate on the "processing_run_id" field.
func ProcessingRunIDLT(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLT(FieldProcessingRunID, v))
}

// ProcessingRunIDLTE applies the LTE predicate on the "processing_run_id" field.
func ProcessingRunIDLTE(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldLTE(FieldProcessingRunID, v))
}

// ProcessingRunIDContains applies the Contains predicate on the "processing_run_id" field.
func ProcessingRunIDContains(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldContains(FieldProcessingRunID, v))
}

// ProcessingRunIDHasPrefix applies the HasPrefix predicate on the "processing_run_id" field.
func ProcessingRunIDHasPrefix(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldHasPrefix(FieldProcessingRunID, v))
}

// ProcessingRunIDHasSuffix applies the HasSuffix predicate on the "processing_run_id" field.
func ProcessingRunIDHasSuffix(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldHasSuffix(FieldProcessingRunID, v))
}

// ProcessingRunIDIsNil applies the IsNil predicate on the "processing_run_id" field.
func ProcessingRunIDIsNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldIsNull(FieldProcessingRunID))
}

// ProcessingRunIDNotNil applies the NotNil predicate on the "processing_run_id" field.
func ProcessingRunIDNotNil() predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldNotNull(FieldProcessingRunID))
}

// ProcessingRunIDEqualFold applies the EqualFold predicate on the "processing_run_id" field.
func ProcessingRunIDEqualFold(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldEqualFold(FieldProcessingRunID, v))
}

// ProcessingRunIDContainsFold applies the ContainsFold predicate on the "processing_run_id" field.
func ProcessingRunIDContainsFold(v string) predicate.ProcessingState {
	return predicate.ProcessingState(sql.FieldContainsFold(FieldProcessingRunID, v))
}

// HasRawMessage applies the HasEdge predicate on the "raw_message" edge.
func HasRawMessage() predicate.ProcessingState {
	return predicate.ProcessingState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RawMessageTable, RawMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawMessageWith applies the HasEdge predicate on the "raw_message" edge with a given conditions (other predicates).
func HasRawMessageWith(preds ...predicate.RawMessage) predicate.ProcessingState {
	return predicate.ProcessingState(func(s *sql.Selector) {
		step := newRawMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingState) predicate.ProcessingState {
	return predicate.ProcessingState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingState) predicate.ProcessingState {
	return predicate.ProcessingState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingState) predicate.ProcessingState {
	return predicate.ProcessingState(sql.NotPredicates(p))
}
