// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EntityMention is the predicate function for entitymention builders.
type EntityMention func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// EventMessage is the predicate function for eventmessage builders.
type EventMessage func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// ProcessingLock is the predicate function for processinglock builders.
type ProcessingLock func(*sql.Selector)

// ProcessingState is the predicate function for processingstate builders.
type ProcessingState func(*sql.Selector)

// PublishedPost is the predicate function for publishedpost builders.
type PublishedPost func(*sql.Selector)

// RawMessage is the predicate function for rawmessage builders.
type RawMessage func(*sql.Selector)

// RoutingDecision is the predicate function for routingdecision builders.
type RoutingDecision func(*sql.Selector)
