// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EntityMentionsColumns holds the columns for the "entity_mentions" table.
	EntityMentionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt, Nullable: true},
		{Name: "entity_type", Type: field.TypeString, Size: 32},
		{Name: "entity_value", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "is_breaking", Type: field.TypeBool, Default: false},
		{Name: "event_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "raw_message_id", Type: field.TypeInt},
	}
	// EntityMentionsTable holds the schema information for the "entity_mentions" table.
	EntityMentionsTable = &schema.Table{
		Name:       "entity_mentions",
		Columns:    EntityMentionsColumns,
		PrimaryKey: []*schema.Column{EntityMentionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_mentions_raw_messages_entity_mentions",
				Columns:    []*schema.Column{EntityMentionsColumns[8]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entitymention_raw_message_id_entity_type_entity_value",
				Unique:  true,
				Columns: []*schema.Column{EntityMentionsColumns[8], EntityMentionsColumns[2], EntityMentionsColumns[3]},
			},
			{
				Name:    "entitymention_entity_type_entity_value_event_time",
				Unique:  false,
				Columns: []*schema.Column{EntityMentionsColumns[2], EntityMentionsColumns[3], EntityMentionsColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_fingerprint", Type: field.TypeString, Size: 512},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "impact_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_breaking", Type: field.TypeBool, Default: false},
		{Name: "breaking_window", Type: field.TypeString, Nullable: true},
		{Name: "event_time", Type: field.TypeTime, Nullable: true},
		{Name: "last_updated_at", Type: field.TypeTime},
		{Name: "latest_extraction_id", Type: field.TypeInt, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_event_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_topic_event_time",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[7]},
			},
			{
				Name:    "event_topic_event_time_impact_score",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2], EventsColumns[7], EventsColumns[4]},
			},
			{
				Name:    "event_last_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[8]},
			},
		},
	}
	// EventMessagesColumns holds the columns for the "event_messages" table.
	EventMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "linked_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeInt},
		{Name: "raw_message_id", Type: field.TypeInt},
	}
	// EventMessagesTable holds the schema information for the "event_messages" table.
	EventMessagesTable = &schema.Table{
		Name:       "event_messages",
		Columns:    EventMessagesColumns,
		PrimaryKey: []*schema.Column{EventMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_messages_events_message_links",
				Columns:    []*schema.Column{EventMessagesColumns[2]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "event_messages_raw_messages_event_links",
				Columns:    []*schema.Column{EventMessagesColumns[3]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventmessage_event_id_raw_message_id",
				Unique:  true,
				Columns: []*schema.Column{EventMessagesColumns[2], EventMessagesColumns[3]},
			},
			{
				Name:    "eventmessage_raw_message_id",
				Unique:  false,
				Columns: []*schema.Column{EventMessagesColumns[3]},
			},
		},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "extractor_name", Type: field.TypeString},
		{Name: "schema_version", Type: field.TypeInt},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "event_time", Type: field.TypeTime, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "impact_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "sentiment", Type: field.TypeString, Nullable: true},
		{Name: "is_breaking", Type: field.TypeBool, Default: false},
		{Name: "breaking_window", Type: field.TypeString, Nullable: true},
		{Name: "event_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true},
		{Name: "processing_run_id", Type: field.TypeString, Nullable: true},
		{Name: "llm_raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "canonical_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "raw_message_id", Type: field.TypeInt, Unique: true},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_raw_messages_extraction",
				Columns:    []*schema.Column{ExtractionsColumns[20]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_event_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[11]},
			},
			{
				Name:    "extraction_topic_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[5], ExtractionsColumns[19]},
			},
		},
	}
	// ProcessingLocksColumns holds the columns for the "processing_locks" table.
	ProcessingLocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lock_name", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "locked_until", Type: field.TypeTime},
		{Name: "owner_run_id", Type: field.TypeString},
	}
	// ProcessingLocksTable holds the schema information for the "processing_locks" table.
	ProcessingLocksTable = &schema.Table{
		Name:       "processing_locks",
		Columns:    ProcessingLocksColumns,
		PrimaryKey: []*schema.Column{ProcessingLocksColumns[0]},
	}
	// ProcessingStatesColumns holds the columns for the "processing_states" table.
	ProcessingStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "last_attempted_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "processing_run_id", Type: field.TypeString, Nullable: true},
		{Name: "raw_message_id", Type: field.TypeInt, Unique: true},
	}
	// ProcessingStatesTable holds the schema information for the "processing_states" table.
	ProcessingStatesTable = &schema.Table{
		Name:       "processing_states",
		Columns:    ProcessingStatesColumns,
		PrimaryKey: []*schema.Column{ProcessingStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_states_raw_messages_processing_state",
				Columns:    []*schema.Column{ProcessingStatesColumns[8]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingstate_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingStatesColumns[1], ProcessingStatesColumns[5]},
			},
		},
	}
	// PublishedPostsColumns holds the columns for the "published_posts" table.
	PublishedPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeInt, Nullable: true},
		{Name: "destination", Type: field.TypeString, Size: 64},
		{Name: "published_at", Type: field.TypeTime},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString, Size: 128},
	}
	// PublishedPostsTable holds the schema information for the "published_posts" table.
	PublishedPostsTable = &schema.Table{
		Name:       "published_posts",
		Columns:    PublishedPostsColumns,
		PrimaryKey: []*schema.Column{PublishedPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "publishedpost_destination_content_hash",
				Unique:  false,
				Columns: []*schema.Column{PublishedPostsColumns[2], PublishedPostsColumns[5]},
			},
			{
				Name:    "publishedpost_published_at",
				Unique:  false,
				Columns: []*schema.Column{PublishedPostsColumns[3]},
			},
		},
	}
	// RawMessagesColumns holds the columns for the "raw_messages" table.
	RawMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_channel_id", Type: field.TypeString},
		{Name: "source_channel_name", Type: field.TypeString, Nullable: true},
		{Name: "upstream_message_id", Type: field.TypeString},
		{Name: "message_timestamp_utc", Type: field.TypeTime},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "normalized_text", Type: field.TypeString, Size: 2147483647},
		{Name: "raw_entities", Type: field.TypeJSON, Nullable: true},
		{Name: "forwarded_from", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RawMessagesTable holds the schema information for the "raw_messages" table.
	RawMessagesTable = &schema.Table{
		Name:       "raw_messages",
		Columns:    RawMessagesColumns,
		PrimaryKey: []*schema.Column{RawMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawmessage_source_channel_id_upstream_message_id",
				Unique:  true,
				Columns: []*schema.Column{RawMessagesColumns[1], RawMessagesColumns[3]},
			},
			{
				Name:    "rawmessage_message_timestamp_utc",
				Unique:  false,
				Columns: []*schema.Column{RawMessagesColumns[4]},
			},
		},
	}
	// RoutingDecisionsColumns holds the columns for the "routing_decisions" table.
	RoutingDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "store_to", Type: field.TypeJSON},
		{Name: "publish_priority", Type: field.TypeString, Size: 16},
		{Name: "requires_evidence", Type: field.TypeBool, Default: false},
		{Name: "event_action", Type: field.TypeString, Size: 16},
		{Name: "triage_action", Type: field.TypeString, Nullable: true},
		{Name: "triage_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "rules_fired", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "raw_message_id", Type: field.TypeInt, Unique: true},
	}
	// RoutingDecisionsTable holds the schema information for the "routing_decisions" table.
	RoutingDecisionsTable = &schema.Table{
		Name:       "routing_decisions",
		Columns:    RoutingDecisionsColumns,
		PrimaryKey: []*schema.Column{RoutingDecisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routing_decisions_raw_messages_routing_decision",
				Columns:    []*schema.Column{RoutingDecisionsColumns[10]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EntityMentionsTable,
		EventsTable,
		EventMessagesTable,
		ExtractionsTable,
		ProcessingLocksTable,
		ProcessingStatesTable,
		PublishedPostsTable,
		RawMessagesTable,
		RoutingDecisionsTable,
	}
)

func init() {
	EntityMentionsTable.ForeignKeys[0].RefTable = RawMessagesTable
	EventMessagesTable.ForeignKeys[0].RefTable = EventsTable
	EventMessagesTable.ForeignKeys[1].RefTable = RawMessagesTable
	ExtractionsTable.ForeignKeys[0].RefTable = RawMessagesTable
	ProcessingStatesTable.ForeignKeys[0].RefTable = RawMessagesTable
	RoutingDecisionsTable.ForeignKeys[0].RefTable = RawMessagesTable
}
