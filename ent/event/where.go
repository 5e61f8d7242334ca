// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// EventFingerprint applies equality check predicate on the "event_fingerprint" field. It's identical to EventFingerprintEQ.
func EventFingerprint(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventFingerprint, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTopic, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSummary, v))
}

// ImpactScore applies equality check predicate on the "impact_score" field. It's identical to ImpactScoreEQ.
func ImpactScore(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldImpactScore, v))
}

// IsBreaking applies equality check predicate on the "is_breaking" field. It's identical to IsBreakingEQ.
func IsBreaking(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIsBreaking, v))
}

// BreakingWindow applies equality check predicate on the "breaking_window" field. It's identical to BreakingWindowEQ.
func BreakingWindow(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBreakingWindow, v))
}

// EventTime applies equality check predicate on the "event_time" field. It's identical to EventTimeEQ.
func EventTime(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventTime, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LatestExtractionID applies equality check predicate on the "latest_extraction_id" field. It's identical to LatestExtractionIDEQ.
func LatestExtractionID(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLatestExtractionID, v))
}

// EventFingerprintEQ applies the EQ predicate on the "event_fingerprint" field.
func EventFingerprintEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventFingerprint, v))
}

// EventFingerprintNEQ applies the NEQ predicate on the "event_fingerprint" field.
func EventFingerprintNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventFingerprint, v))
}

// EventFingerprintIn applies the In predicate on the "event_fingerprint" field.
func EventFingerprintIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventFingerprint, vs...))
}

// EventFingerprintNotIn applies the NotIn predicate on the "event_fingerprint" field.
func EventFingerprintNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventFingerprint, vs...))
}

// EventFingerprintGT applies the GT predicate on the "event_fingerprint" field.
func EventFingerprintGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventFingerprint, v))
}

// EventFingerprintGTE applies the GTE predicate on the "event_fingerprint" field.
func EventFingerprintGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventFingerprint, v))
}

// EventFingerprintLT applies the LT predicate on the "event_fingerprint" field.
func EventFingerprintLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventFingerprint, v))
}

// EventFingerprintLTE applies the LTE predicate on the "event_fingerprint" field.
func EventFingerprintLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventFingerprint, v))
}

// EventFingerprintContains applies the Contains predicate on the "event_fingerprint" field.
func EventFingerprintContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventFingerprint, v))
}

// EventFingerprintHasPrefix applies the HasPrefix predicate on the "event_fingerprint" field.
func EventFingerprintHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventFingerprint, v))
}

// EventFingerprintHasSuffix applies the HasSuffix predicate on the "event_fingerprint" field.
func EventFingerprintHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventFingerprint, v))
}

// EventFingerprintEqualFold applies the EqualFold predicate on the "event_fingerprint" field.
func EventFingerprintEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventFingerprint, v))
}

// EventFingerprintContainsFold applies the ContainsFold predicate on the "event_fingerprint" field.
func EventFingerprintContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventFingerprint, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTopic, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSummary, v))
}

// ImpactScoreEQ applies the EQ predicate on the "impact_score" field.
func ImpactScoreEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldImpactScore, v))
}

// ImpactScoreNEQ applies the NEQ predicate on the "impact_score" field.
func ImpactScoreNEQ(v float64) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldImpactScore, v))
}

// ImpactScoreIn applies the In predicate on the "impact_score" field.
func ImpactScoreIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldImpactScore, vs...))
}

// ImpactScoreNotIn applies the NotIn predicate on the "impact_score" field.
func ImpactScoreNotIn(vs ...float64) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldImpactScore, vs...))
}

// ImpactScoreGT applies the GT predicate on the "impact_score" field.
func ImpactScoreGT(v float64) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldImpactScore, v))
}

// ImpactScoreGTE applies the GTE predicate on the "impact_score" field.
func ImpactScoreGTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldImpactScore, v))
}

// ImpactScoreLT applies the LT predicate on the "impact_score" field.
func ImpactScoreLT(v float64) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldImpactScore, v))
}

// ImpactScoreLTE applies the LTE predicate on the "impact_score" field.
func ImpactScoreLTE(v float64) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldImpactScore, v))
}

// ImpactScoreIsNil applies the IsNil predicate on the "impact_score" field.
func ImpactScoreIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldImpactScore))
}

// ImpactScoreNotNil applies the NotNil predicate on the "impact_score" field.
func ImpactScoreNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldImpactScore))
}

// IsBreakingEQ applies the EQ predicate on the "is_breaking" field.
func IsBreakingEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIsBreaking, v))
}

// IsBreakingNEQ applies the NEQ predicate on the "is_breaking" field.
func IsBreakingNEQ(v bool) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIsBreaking, v))
}

// BreakingWindowEQ applies the EQ predicate on the "breaking_window" field.
func BreakingWindowEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldBreakingWindow, v))
}

// BreakingWindowNEQ applies the NEQ predicate on the "breaking_window" field.
func BreakingWindowNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldBreakingWindow, v))
}

// BreakingWindowIn applies the In predicate on the "breaking_window" field.
func BreakingWindowIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldBreakingWindow, vs...))
}

// BreakingWindowNotIn applies the NotIn predicate on the "breaking_window" field.
func BreakingWindowNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldBreakingWindow, vs...))
}

// BreakingWindowGT applies the GT predicate on the "breaking_window" field.
func BreakingWindowGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldBreakingWindow, v))
}

// BreakingWindowGTE applies the GTE predicate on the "breaking_window" field.
func BreakingWindowGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldBreakingWindow, v))
}

// BreakingWindowLT applies the LT predicate on the "breaking_window" field.
func BreakingWindowLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldBreakingWindow, v))
}

// BreakingWindowLTE applies the LTE predicate on the "breaking_window" field.
func BreakingWindowLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldBreakingWindow, v))
}

// BreakingWindowContains applies the Contains predicate on the "breaking_window" field.
func BreakingWindowContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldBreakingWindow, v))
}

// BreakingWindowHasPrefix applies the HasPrefix predicate on the "breaking_window" field.
func BreakingWindowHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldBreakingWindow, v))
}

// BreakingWindowHasSuffix applies the HasSuffix predicate on the "breaking_window" field.
func BreakingWindowHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldBreakingWindow, v))
}

// BreakingWindowIsNil applies the IsNil predicate on the "breaking_window" field.
func BreakingWindowIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldBreakingWindow))
}

// BreakingWindowNotNil applies the NotNil predicate on the "breaking_window" field.
func BreakingWindowNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldBreakingWindow))
}

// BreakingWindowEqualFold applies the EqualFold predicate on the "breaking_window" field.
func BreakingWindowEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldBreakingWindow, v))
}

// BreakingWindowContainsFold applies the ContainsFold predicate on the "breaking_window" field.
func BreakingWindowContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldBreakingWindow, v))
}

// EventTimeEQ applies the EQ predicate on the "event_time" field.
func EventTimeEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventTime, v))
}

// EventTimeNEQ applies the NEQ predicate on the "event_time" field.
func EventTimeNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventTime, v))
}

// EventTimeIn applies the In predicate on the "event_time" field.
func EventTimeIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventTime, vs...))
}

// EventTimeNotIn applies the NotIn predicate on the "event_time" field.
func EventTimeNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventTime, vs...))
}

// EventTimeGT applies the GT predicate on the "event_time" field.
func EventTimeGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventTime, v))
}

// EventTimeGTE applies the GTE predicate on the "event_time" field.
func EventTimeGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventTime, v))
}

// EventTimeLT applies the LT predicate on the "event_time" field.
func EventTimeLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventTime, v))
}

// EventTimeLTE applies the LTE predicate on the "event_time" field.
func EventTimeLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventTime, v))
}

// EventTimeIsNil applies the IsNil predicate on the "event_time" field.
func EventTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEventTime))
}

// EventTimeNotNil applies the NotNil predicate on the "event_time" field.
func EventTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEventTime))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// LatestExtractionIDEQ applies the EQ predicate on the "latest_extraction_id" field.
func LatestExtractionIDEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLatestExtractionID, v))
}

// LatestExtractionIDNEQ applies the NEQ predicate on the "latest_extraction_id" field.
func LatestExtractionIDNEQ(v int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLatestExtractionID, v))
}

// LatestExtractionIDIn applies the In predicate on the "latest_extraction_id" field.
func LatestExtractionIDIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLatestExtractionID, vs...))
}

// LatestExtractionIDNotIn applies the NotIn predicate on the "latest_extraction_id" field.
func LatestExtractionIDNotIn(vs ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLatestExtractionID, vs...))
}

// LatestExtractionIDGT applies the GT predicate on the "latest_extraction_id" field.
func LatestExtractionIDGT(v int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLatestExtractionID, v))
}

// LatestExtractionIDGTE applies the GTE predicate on the "latest_extraction_id" field.
func LatestExtractionIDGTE(v int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLatestExtractionID, v))
}

// LatestExtractionIDLT applies the LT predicate on the "latest_extraction_id" field.
func LatestExtractionIDLT(v int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLatestExtractionID, v))
}

// LatestExtractionIDLTE applies the LTE predicate on the "latest_extraction_id" field.
func LatestExtractionIDLTE(v int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLatestExtractionID, v))
}

// LatestExtractionIDIsNil applies the IsNil predicate on the "latest_extraction_id" field.
func LatestExtractionIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLatestExtractionID))
}

// LatestExtractionIDNotNil applies the NotNil predicate on the "latest_extraction_id" field.
func LatestExtractionIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLatestExtractionID))
}

// HasMessageLinks applies the HasEdge predicate on the "message_links" edge.
func HasMessageLinks() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessageLinksTable, MessageLinksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessageLinksWith applies the HasEdge predicate on the "message_links" edge with a given conditions (other predicates).
func HasMessageLinksWith(preds ...predicate.EventMessage) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newMessageLinksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
