// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/processinglock"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/publishedpost"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
	"github.com/civicquant/pipeline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	entitymentionFields := schema.EntityMention{}.Fields()
	_ = entitymentionFields
	// entitymentionDescEntityType is the schema descriptor for entity_type field.
	entitymentionDescEntityType := entitymentionFields[2].Descriptor()
	// entitymention.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	entitymention.EntityTypeValidator = entitymentionDescEntityType.Validators[0].(func(string) error)
	// entitymentionDescIsBreaking is the schema descriptor for is_breaking field.
	entitymentionDescIsBreaking := entitymentionFields[5].Descriptor()
	// entitymention.DefaultIsBreaking holds the default value on creation for the is_breaking field.
	entitymention.DefaultIsBreaking = entitymentionDescIsBreaking.Default.(bool)
	// entitymentionDescCreatedAt is the schema descriptor for created_at field.
	entitymentionDescCreatedAt := entitymentionFields[7].Descriptor()
	// entitymention.DefaultCreatedAt holds the default value on creation for the created_at field.
	entitymention.DefaultCreatedAt = entitymentionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescEventFingerprint is the schema descriptor for event_fingerprint field.
	eventDescEventFingerprint := eventFields[0].Descriptor()
	// event.EventFingerprintValidator is a validator for the "event_fingerprint" field. It is called by the builders before save.
	event.EventFingerprintValidator = eventDescEventFingerprint.Validators[0].(func(string) error)
	// eventDescIsBreaking is the schema descriptor for is_breaking field.
	eventDescIsBreaking := eventFields[4].Descriptor()
	// event.DefaultIsBreaking holds the default value on creation for the is_breaking field.
	event.DefaultIsBreaking = eventDescIsBreaking.Default.(bool)
	// eventDescLastUpdatedAt is the schema descriptor for last_updated_at field.
	eventDescLastUpdatedAt := eventFields[7].Descriptor()
	// event.DefaultLastUpdatedAt holds the default value on creation for the last_updated_at field.
	event.DefaultLastUpdatedAt = eventDescLastUpdatedAt.Default.(func() time.Time)
	eventmessageFields := schema.EventMessage{}.Fields()
	_ = eventmessageFields
	// eventmessageDescLinkedAt is the schema descriptor for linked_at field.
	eventmessageDescLinkedAt := eventmessageFields[2].Descriptor()
	// eventmessage.DefaultLinkedAt holds the default value on creation for the linked_at field.
	eventmessage.DefaultLinkedAt = eventmessageDescLinkedAt.Default.(func() time.Time)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescIsBreaking is the schema descriptor for is_breaking field.
	extractionDescIsBreaking := extractionFields[9].Descriptor()
	// extraction.DefaultIsBreaking holds the default value on creation for the is_breaking field.
	extraction.DefaultIsBreaking = extractionDescIsBreaking.Default.(bool)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[19].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	processinglockFields := schema.ProcessingLock{}.Fields()
	_ = processinglockFields
	// processinglockDescLockName is the schema descriptor for lock_name field.
	processinglockDescLockName := processinglockFields[0].Descriptor()
	// processinglock.LockNameValidator is a validator for the "lock_name" field. It is called by the builders before save.
	processinglock.LockNameValidator = processinglockDescLockName.Validators[0].(func(string) error)
	processingstateFields := schema.ProcessingState{}.Fields()
	_ = processingstateFields
	// processingstateDescAttemptCount is the schema descriptor for attempt_count field.
	processingstateDescAttemptCount := processingstateFields[2].Descriptor()
	// processingstate.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	processingstate.DefaultAttemptCount = processingstateDescAttemptCount.Default.(int)
	publishedpostFields := schema.PublishedPost{}.Fields()
	_ = publishedpostFields
	// publishedpostDescDestination is the schema descriptor for destination field.
	publishedpostDescDestination := publishedpostFields[1].Descriptor()
	// publishedpost.DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	publishedpost.DestinationValidator = publishedpostDescDestination.Validators[0].(func(string) error)
	// publishedpostDescPublishedAt is the schema descriptor for published_at field.
	publishedpostDescPublishedAt := publishedpostFields[2].Descriptor()
	// publishedpost.DefaultPublishedAt holds the default value on creation for the published_at field.
	publishedpost.DefaultPublishedAt = publishedpostDescPublishedAt.Default.(func() time.Time)
	// publishedpostDescContentHash is the schema descriptor for content_hash field.
	publishedpostDescContentHash := publishedpostFields[4].Descriptor()
	// publishedpost.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	publishedpost.ContentHashValidator = publishedpostDescContentHash.Validators[0].(func(string) error)
	rawmessageFields := schema.RawMessage{}.Fields()
	_ = rawmessageFields
	// rawmessageDescCreatedAt is the schema descriptor for created_at field.
	rawmessageDescCreatedAt := rawmessageFields[8].Descriptor()
	// rawmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawmessage.DefaultCreatedAt = rawmessageDescCreatedAt.Default.(func() time.Time)
	routingdecisionFields := schema.RoutingDecision{}.Fields()
	_ = routingdecisionFields
	// routingdecisionDescPublishPriority is the schema descriptor for publish_priority field.
	routingdecisionDescPublishPriority := routingdecisionFields[2].Descriptor()
	// routingdecision.PublishPriorityValidator is a validator for the "publish_priority" field. It is called by the builders before save.
	routingdecision.PublishPriorityValidator = routingdecisionDescPublishPriority.Validators[0].(func(string) error)
	// routingdecisionDescRequiresEvidence is the schema descriptor for requires_evidence field.
	routingdecisionDescRequiresEvidence := routingdecisionFields[3].Descriptor()
	// routingdecision.DefaultRequiresEvidence holds the default value on creation for the requires_evidence field.
	routingdecision.DefaultRequiresEvidence = routingdecisionDescRequiresEvidence.Default.(bool)
	// routingdecisionDescEventAction is the schema descriptor for event_action field.
	routingdecisionDescEventAction := routingdecisionFields[4].Descriptor()
	// routingdecision.EventActionValidator is a validator for the "event_action" field. It is called by the builders before save.
	routingdecision.EventActionValidator = routingdecisionDescEventAction.Validators[0].(func(string) error)
	// routingdecisionDescCreatedAt is the schema descriptor for created_at field.
	routingdecisionDescCreatedAt := routingdecisionFields[9].Descriptor()
	// routingdecision.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingdecision.DefaultCreatedAt = routingdecisionDescCreatedAt.Default.(func() time.Time)
}
