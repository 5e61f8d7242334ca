// Code generated by ent, DO NOT EDIT.

package entitymention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldID, id))
}

// RawMessageID applies equality check predicate on the "raw_message_id" field. It's identical to RawMessageIDEQ.
func RawMessageID(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldRawMessageID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEventID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityType, v))
}

// EntityValue applies equality check predicate on the "entity_value" field. It's identical to EntityValueEQ.
func EntityValue(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityValue, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldTopic, v))
}

// IsBreaking applies equality check predicate on the "is_breaking" field. It's identical to IsBreakingEQ.
func IsBreaking(v bool) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldIsBreaking, v))
}

// EventTime applies equality check predicate on the "event_time" field. It's identical to EventTimeEQ.
func EventTime(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEventTime, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldCreatedAt, v))
}

// RawMessageIDEQ applies the EQ predicate on the "raw_message_id" field.
func RawMessageIDEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldRawMessageID, v))
}

// RawMessageIDNEQ applies the NEQ predicate on the "raw_message_id" field.
func RawMessageIDNEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldRawMessageID, v))
}

// RawMessageIDIn applies the In predicate on the "raw_message_id" field.
func RawMessageIDIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldRawMessageID, vs...))
}

// RawMessageIDNotIn applies the NotIn predicate on the "raw_message_id" field.
func RawMessageIDNotIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldRawMessageID, vs...))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v int) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEventID, v))
}

// EventIDIsNil applies the IsNil predicate on the "event_id" field.
func EventIDIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldEventID))
}

// EventIDNotNil applies the NotNil predicate on the "event_id" field.
func EventIDNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldEventID))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityValueEQ applies the EQ predicate on the "entity_value" field.
func EntityValueEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEntityValue, v))
}

// EntityValueNEQ applies the NEQ predicate on the "entity_value" field.
func EntityValueNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEntityValue, v))
}

// EntityValueIn applies the In predicate on the "entity_value" field.
func EntityValueIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEntityValue, vs...))
}

// EntityValueNotIn applies the NotIn predicate on the "entity_value" field.
func EntityValueNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEntityValue, vs...))
}

// EntityValueGT applies the GT predicate on the "entity_value" field.
func EntityValueGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEntityValue, v))
}

// EntityValueGTE applies the GTE predicate on the "entity_value" field.
func EntityValueGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEntityValue, v))
}

// EntityValueLT applies the LT predicate on the "entity_value" field.
func EntityValueLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEntityValue, v))
}

// EntityValueLTE applies the LTE predicate on the "entity_value" field.
func EntityValueLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEntityValue, v))
}

// EntityValueContains applies the Contains predicate on the "entity_value" field.
func EntityValueContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldEntityValue, v))
}

// EntityValueHasPrefix applies the HasPrefix predicate on the "entity_value" field.
func EntityValueHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldEntityValue, v))
}

// EntityValueHasSuffix applies the HasSuffix predicate on the "entity_value" field.
func EntityValueHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldEntityValue, v))
}

// EntityValueEqualFold applies the EqualFold predicate on the "entity_value" field.
func EntityValueEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldEntityValue, v))
}

// EntityValueContainsFold applies the ContainsFold predicate on the "entity_value" field.
func EntityValueContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldEntityValue, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldContainsFold(FieldTopic, v))
}

// IsBreakingEQ applies the EQ predicate on the "is_breaking" field.
func IsBreakingEQ(v bool) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldIsBreaking, v))
}

// IsBreakingNEQ applies the NEQ predicate on the "is_breaking" field.
func IsBreakingNEQ(v bool) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldIsBreaking, v))
}

// EventTimeEQ applies the EQ predicate on the "event_time" field.
func EventTimeEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldEventTime, v))
}

// EventTimeNEQ applies the NEQ predicate on the "event_time" field.
func EventTimeNEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldEventTime, v))
}

// EventTimeIn applies the In predicate on the "event_time" field.
func EventTimeIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldEventTime, vs...))
}

// EventTimeNotIn applies the NotIn predicate on the "event_time" field.
func EventTimeNotIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldEventTime, vs...))
}

// EventTimeGT applies the GT predicate on the "event_time" field.
func EventTimeGT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldEventTime, v))
}

// EventTimeGTE applies the GTE predicate on the "event_time" field.
func EventTimeGTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldEventTime, v))
}

// EventTimeLT applies the LT predicate on the "event_time" field.
func EventTimeLT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldEventTime, v))
}

// EventTimeLTE applies the LTE predicate on the "event_time" field.
func EventTimeLTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldEventTime, v))
}

// EventTimeIsNil applies the IsNil predicate on the "event_time" field.
func EventTimeIsNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIsNull(FieldEventTime))
}

// EventTimeNotNil applies the NotNil predicate on the "event_time" field.
func EventTimeNotNil() predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotNull(FieldEventTime))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntityMention {
	return predicate.EntityMention(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRawMessage applies the HasEdge predicate on the "raw_message" edge.
func HasRawMessage() predicate.EntityMention {
	return predicate.EntityMention(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RawMessageTable, RawMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawMessageWith applies the HasEdge predicate on the "raw_message" edge with a given conditions (other predicates).
func HasRawMessageWith(preds ...predicate.RawMessage) predicate.EntityMention {
	return predicate.EntityMention(func(s *sql.Selector) {
		step := newRawMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityMention) predicate.EntityMention {
	return predicate.EntityMention(sql.NotPredicates(p))
}
