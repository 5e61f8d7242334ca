// Code generated by ent, DO NOT EDIT.

package eventmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldEventID, v))
}

// RawMessageID applies equality check predicate on the "raw_message_id" field. It's identical to RawMessageIDEQ.
func RawMessageID(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldRawMessageID, v))
}

// LinkedAt applies equality check predicate on the "linked_at" field. It's identical to LinkedAtEQ.
func LinkedAt(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldLinkedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNotIn(FieldEventID, vs...))
}

// RawMessageIDEQ applies the EQ predicate on the "raw_message_id" field.
func RawMessageIDEQ(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldRawMessageID, v))
}

// RawMessageIDNEQ applies the NEQ predicate on the "raw_message_id" field.
func RawMessageIDNEQ(v int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNEQ(FieldRawMessageID, v))
}

// RawMessageIDIn applies the In predicate on the "raw_message_id" field.
func RawMessageIDIn(vs ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldIn(FieldRawMessageID, vs...))
}

// RawMessageIDNotIn applies the NotIn predicate on the "raw_message_id" field.
func RawMessageIDNotIn(vs ...int) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNotIn(FieldRawMessageID, vs...))
}

// LinkedAtEQ applies the EQ predicate on the "linked_at" field.
func LinkedAtEQ(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldEQ(FieldLinkedAt, v))
}

// LinkedAtNEQ applies the NEQ predicate on the "linked_at" field.
func LinkedAtNEQ(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNEQ(FieldLinkedAt, v))
}

// LinkedAtIn applies the In predicate on the "linked_at" field.
func LinkedAtIn(vs ...time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldIn(FieldLinkedAt, vs...))
}

// LinkedAtNotIn applies the NotIn predicate on the "linked_at" field.
func LinkedAtNotIn(vs ...time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldNotIn(FieldLinkedAt, vs...))
}

// LinkedAtGT applies the GT predicate on the "linked_at" field.
func LinkedAtGT(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldGT(FieldLinkedAt, v))
}

// LinkedAtGTE applies the GTE predicate on the "linked_at" field.
func LinkedAtGTE(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldGTE(FieldLinkedAt, v))
}

// LinkedAtLT applies the LT predicate on the "linked_at" field.
func LinkedAtLT(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldLT(FieldLinkedAt, v))
}

// LinkedAtLTE applies the LTE predicate on the "linked_at" field.
func LinkedAtLTE(v time.Time) predicate.EventMessage {
	return predicate.EventMessage(sql.FieldLTE(FieldLinkedAt, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.EventMessage {
	return predicate.EventMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.EventMessage {
	return predicate.EventMessage(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRawMessage applies the HasEdge predicate on the "raw_message" edge.
func HasRawMessage() predicate.EventMessage {
	return predicate.EventMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RawMessageTable, RawMessageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawMessageWith applies the HasEdge predicate on the "raw_message" edge with a given conditions (other predicates).
func HasRawMessageWith(preds ...predicate.RawMessage) predicate.EventMessage {
	return predicate.EventMessage(func(s *sql.Selector) {
		step := newRawMessageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventMessage) predicate.EventMessage {
	return predicate.EventMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventMessage) predicate.EventMessage {
	return predicate.EventMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventMessage) predicate.EventMessage {
	return predicate.EventMessage(sql.NotPredicates(p))
}
