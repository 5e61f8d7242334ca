package api

// IngestResponse reports what ingestion did with the posted message.
type IngestResponse struct {
	Status       string  `json:"status"`
	RawMessageID int     `json:"raw_message_id"`
	EventID      *int    `json:"event_id"`
	EventAction  *string `json:"event_action"`
}

// ClearDerivedResponse lists what the maintenance reset removed.
type ClearDerivedResponse struct {
	Status        string `json:"status"`
	ClearedTables int    `json:"cleared_tables"`
	ResetStates   int    `json:"reset_states"`
}
