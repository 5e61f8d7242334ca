// Code generated by ent, DO NOT EDIT.

package routingdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldID, id))
}

// RawMessageID applies equality check predicate on the "raw_message_id" field. It's identical to RawMessageIDEQ.
func RawMessageID(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRawMessageID, v))
}

// PublishPriority applies equality check predicate on the "publish_priority" field. It's identical to PublishPriorityEQ.
func PublishPriority(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldPublishPriority, v))
}

// RequiresEvidence applies equality check predicate on the "requires_evidence" field. It's identical to RequiresEvidenceEQ.
func RequiresEvidence(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRequiresEvidence, v))
}

// EventAction applies equality check predicate on the "event_action" field. It's identical to EventActionEQ.
func EventAction(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldEventAction, v))
}

// TriageAction applies equality check predicate on the "triage_action" field. It's identical to TriageActionEQ.
func TriageAction(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldTriageAction, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// RawMessageIDEQ applies the EQ predicate on the "raw_message_id" field.
func RawMessageIDEQ(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRawMessageID, v))
}

// RawMessageIDNEQ applies the NEQ predicate on the "raw_message_id" field.
func RawMessageIDNEQ(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldRawMessageID, v))
}

// RawMessageIDIn applies the In predicate on the "raw_message_id" field.
func RawMessageIDIn(vs ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldRawMessageID, vs...))
}

// RawMessageIDNotIn applies the NotIn predicate on the "raw_message_id" field.
func RawMessageIDNotIn(vs ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldRawMessageID, vs...))
}

// PublishPriorityEQ applies the EQ predicate on the "publish_priority" field.
func PublishPriorityEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldPublishPriority, v))
}

// PublishPriorityNEQ applies the NEQ predicate on the "publish_priority" field.
func PublishPriorityNEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldPublishPriority, v))
}

// PublishPriorityIn applies the In predicate on the "publish_priority" field.
func PublishPriorityIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldPublishPriority, vs...))
}

// PublishPriorityNotIn applies the NotIn predicate on the "publish_priority" field.
func PublishPriorityNotIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldPublishPriority, vs...))
}

// PublishPriorityGT applies the GT predicate on the "publish_priority" field.
func PublishPriorityGT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldPublishPriority, v))
}

// PublishPriorityGTE applies the GTE predicate on the "publish_priority" field.
func PublishPriorityGTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldPublishPriority, v))
}

// PublishPriorityLT applies the LT predicate on the "publish_priority" field.
func PublishPriorityLT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldPublishPriority, v))
}

// PublishPriorityLTE applies the LTE predicate on the "publish_priority" field.
func PublishPriorityLTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldPublishPriority, v))
}

// PublishPriorityContains applies the Contains predicate on the "publish_priority" field.
func PublishPriorityContains(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContains(FieldPublishPriority, v))
}

// PublishPriorityHasPrefix applies the HasPrefix predicate on the "publish_priority" field.
func PublishPriorityHasPrefix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasPrefix(FieldPublishPriority, v))
}

// PublishPriorityHasSuffix applies the HasSuffix predicate on the "publish_priority" field.
func PublishPriorityHasSuffix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasSuffix(FieldPublishPriority, v))
}

// PublishPriorityEqualFold applies the EqualFold predicate on the "publish_priority" field.
func PublishPriorityEqualFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEqualFold(FieldPublishPriority, v))
}

// PublishPriorityContainsFold applies the ContainsFold predicate on the "publish_priority" field.
func PublishPriorityContainsFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContainsFold(FieldPublishPriority, v))
}

// RequiresEvidenceEQ applies the EQ predicate on the "requires_evidence" field.
func RequiresEvidenceEQ(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRequiresEvidence, v))
}

// RequiresEvidenceNEQ applies the NEQ predicate on the "requires_evidence" field.
func RequiresEvidenceNEQ(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldRequiresEvidence, v))
}

// EventActionEQ applies the EQ predicate on the "event_action" field.
func EventActionEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldEventAction, v))
}

// EventActionNEQ applies the NEQ predicate on the "event_action" field.
func EventActionNEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldEventAction, v))
}

// EventActionIn applies the In predicate on the "event_action" field.
func EventActionIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldEventAction, vs...))
}

// EventActionNotIn applies the NotIn predicate on the "event_action" field.
func EventActionNotIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldEventAction, vs...))
}

// EventActionGT applies the GT predicate on the "event_action" field.
func EventActionGT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldEventAction, v))
}

// EventActionGTE applies the GTE predicate on the "event_action" field.
func EventActionGTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldEventAction, v))
}

// EventActionLT applies the LT predicate on the "event_action" field.
func EventActionLT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldEventAction, v))
}

// EventActionLTE applies the LTE predicate on the "event_action" field.
func EventActionLTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldEventAction, v))
}

// EventActionContains applies the Contains predicate on the "event_action" field.
func EventActionContains(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContains(FieldEventAction, v))
}

// EventActionHasPrefix applies the HasPrefix predicate on the "event_action" field.
func EventActionHasPrefix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasPrefix(FieldEventAction, v))
}

// EventActionHasSuffix applies the HasSuffix predicate on the "event_action" field.
func EventActionHasSuffix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasSuffix(FieldEventAction, v))
}

// EventActionEqualFold applies the EqualFold predicate on the "event_action" field.
func EventActionEqualFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEqualFold(FieldEventAction, v))
}

// EventActionContainsFold applies the ContainsFold predicate on the "event_action" field.
func EventActionContainsFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContainsFold(FieldEventAction, v))
}

// TriageActionEQ applies the EQ predicate on the "triage_action" field.
func TriageActionEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldTriageAction, v))
}

// TriageActionNEQ applies the NEQ predicate on the "triage_action" field.
func TriageActionNEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldTriageAction, v))
}

// TriageActionIn applies the In predicate on the "triage_action" field.
func TriageActionIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldTriageAction, vs...))
}

// TriageActionNotIn applies the NotIn predicate on the "triage_action" field.
func TriageActionNotIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldTriageAction, vs...))
}

// TriageActionGT applies the GT predicate on the "triage_action" field.
func TriageActionGT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldTriageAction, v))
}

// TriageActionGTE applies the GTE predicate on the "triage_action" field.
func TriageActionGTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldTriageAction, v))
}

// TriageActionLT applies the LT predicate on the "triage_action" field.
func TriageActionLT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldTriageAction, v))
}

// TriageActionLTE applies the LTE predicate on the "triage_action" field.
func TriageActionLTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldTriageAction, v))
}

// TriageActionContains applies the Contains predicate on the "triage_action" field.
func TriageActionContains(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContains(FieldTriageAction, v))
}

// TriageActionHasPrefix applies the HasPrefix predicate on the "triage_action" field.
func TriageActionHasPrefix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasPrefix(FieldTriageAction, v))
}

// TriageActionHasSuffix applies the HasSuffix predicate on the "triage_action" field.
func TriageActionHasSuffix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasSuffix(FieldTriageAction, v))
}

// TriageActionIsNil applies the IsNil predicate on the "triage_action" field.
func TriageActionIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldTriageAction))
}

// TriageActionNotNil applies the NotNil predicate on the "triage_action" field.
func TriageActionNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldTriageAction))
}

// TriageActionEqualFold applies the EqualFold predicate on the "triage_action" field.
func TriageActionEqualFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEqualFold(FieldTriageAction, v))
}

// TriageActionContainsFold applies the ContainsFold predicate on the "triage_action" field.
func TriageActionContainsFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContainsFold(FieldTriageAction, v))
}

// TriageRulesIsNil applies the IsNil predicate on the "triage_rules" field.
func TriageRulesIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldTriageRules))
}

// TriageRulesNotNil applies the NotNil predicate on the "triage_rules" field.
func TriageRulesNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldTriageRules))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldFlags))
}

// RulesFiredIsNil applies the IsNil predicate on the "rules_fired" field.
func RulesFiredIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldRulesFired))
}

// RulesFiredNotNil applies the NotNil predicate on the "rules_fired" field.
func RulesFiredNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldRulesFired))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRawMessage applies the HasEdge predicate on the "raw_message" edge.
func HasRawMessage() predicate.RoutingDecision {
	return predicate.RoutingDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RawMessageTable, RawMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawMessageWith applies the HasEdge predicate on the "raw_message" edge with a given conditions (other predicates).
func HasRawMessageWith(preds ...predicate.RawMessage) predicate.RoutingDecision {
	return predicate.RoutingDecision(func(s *sql.Selector) {
		step := newRawMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.NotPredicates(p))
}
