// Package ingest stores incoming feed messages exactly once and seeds the
// phase-2 processing state.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/pkg/normalize"
)

// Ingest result statuses.
const (
	StatusCreated   = "created"
	StatusDuplicate = "duplicate"
)

// Message is one incoming feed message as posted by a listener.
type Message struct {
	SourceChannelID     string                 `json:"source_channel_id"`
	SourceChannelName   *string                `json:"source_channel_name"`
	UpstreamMessageID   string                 `json:"upstream_message_id"`
	MessageTimestampUTC time.Time              `json:"message_timestamp_utc"`
	RawText             string                 `json:"raw_text"`
	RawEntities         map[string]interface{} `json:"raw_entities,omitempty"`
	ForwardedFrom       *string                `json:"forwarded_from,omitempty"`
}

// Result reports what ingestion did with a message. EventID is only set for
// duplicates whose original has already been linked to an event.
type Result struct {
	Status       string `json:"status"`
	RawMessageID int    `json:"raw_message_id"`
	EventID      *int   `json:"event_id"`
}

// Service stores raw messages with source-level dedup.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates an ingest service.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "ingest"),
	}
}

// Ingest stores the message and its pending processing state in one
// transaction. A message already stored under the same
// (source_channel_id, upstream_message_id) is reported as a duplicate
// without touching the original row.
func (s *Service) Ingest(ctx context.Context, msg Message) (*Result, error) {
	if existing, err := s.findExisting(ctx, msg); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.RawMessage.Create().
		SetSourceChannelID(msg.SourceChannelID).
		SetUpstreamMessageID(msg.UpstreamMessageID).
		SetMessageTimestampUtc(msg.MessageTimestampUTC.UTC()).
		SetRawText(msg.RawText).
		SetNormalizedText(normalize.MessageText(msg.RawText))
	if msg.SourceChannelName != nil {
		builder.SetSourceChannelName(*msg.SourceChannelName)
	}
	if msg.RawEntities != nil {
		builder.SetRawEntities(msg.RawEntities)
	}
	if msg.ForwardedFrom != nil {
		builder.SetForwardedFrom(*msg.ForwardedFrom)
	}

	raw, err := builder.Save(ctx)
	if err != nil {
		// Two listeners may race on the same upstream message; the unique
		// (source_channel_id, upstream_message_id) index decides the winner.
		if ent.IsConstraintError(err) {
			_ = tx.Rollback()
			existing, lookupErr := s.findExisting(ctx, msg)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if existing == nil {
				return nil, fmt.Errorf("constraint violation but no existing message found: %w", err)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to store raw message: %w", err)
	}

	_, err = tx.ProcessingState.Create().
		SetRawMessageID(raw.ID).
		SetStatus(processingstate.StatusPending).
		SetAttemptCount(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create processing state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ingest: %w", err)
	}

	s.logger.Info("ingest_stored",
		"raw_message_id", raw.ID,
		"source_channel_id", msg.SourceChannelID,
		"phase2_state", "pending")

	return &Result{Status: StatusCreated, RawMessageID: raw.ID}, nil
}

// findExisting returns a duplicate result when the message is already
// stored, nil when it is new.
func (s *Service) findExisting(ctx context.Context, msg Message) (*Result, error) {
	existing, err := s.client.RawMessage.Query().
		Where(
			rawmessage.SourceChannelID(msg.SourceChannelID),
			rawmessage.UpstreamMessageID(msg.UpstreamMessageID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query raw message: %w", err)
	}

	result := &Result{Status: StatusDuplicate, RawMessageID: existing.ID}

	link, err := s.client.EventMessage.Query().
		Where(eventmessage.RawMessageID(existing.ID)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query event link: %w", err)
	}
	if link != nil {
		result.EventID = &link.EventID
	}
	return result, nil
}
