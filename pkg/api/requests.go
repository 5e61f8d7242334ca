package api

import (
	"time"

	"github.com/civicquant/pipeline/pkg/ingest"
)

// IngestRequest is the POST /ingest/telegram body.
type IngestRequest struct {
	SourceChannelID     string                 `json:"source_channel_id" binding:"required"`
	SourceChannelName   *string                `json:"source_channel_name"`
	UpstreamMessageID   string                 `json:"upstream_message_id" binding:"required"`
	MessageTimestampUTC time.Time              `json:"message_timestamp_utc" binding:"required"`
	RawText             string                 `json:"raw_text" binding:"required"`
	RawEntities         map[string]interface{} `json:"raw_entities"`
	ForwardedFrom       *string                `json:"forwarded_from"`
}

func (r IngestRequest) toMessage() ingest.Message {
	return ingest.Message{
		SourceChannelID:     r.SourceChannelID,
		SourceChannelName:   r.SourceChannelName,
		UpstreamMessageID:   r.UpstreamMessageID,
		MessageTimestampUTC: r.MessageTimestampUTC,
		RawText:             r.RawText,
		RawEntities:         r.RawEntities,
		ForwardedFrom:       r.ForwardedFrom,
	}
}

// DigestRunRequest optionally overrides the digest window.
type DigestRunRequest struct {
	WindowHours *int `json:"window_hours"`
}
