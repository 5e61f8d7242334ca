// Package events maintains the canonical event store: resolving which
// event a new extraction belongs to and creating or refining events.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/pkg/models"
)

// TimeWindow returns the merge half-window for a topic. Macro-economic
// reports reference data windows days wide; breaking news goes stale fast.
func TimeWindow(topic string, isBreaking bool) time.Duration {
	if topic == models.TopicMacroEcon {
		return 48 * time.Hour
	}
	if isBreaking {
		return 6 * time.Hour
	}
	return 24 * time.Hour
}

// Service resolves and upserts events for canonical extractions.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates an event service. The client may be transaction-bound.
func NewService(client *ent.Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default().With("component", "events"),
	}
}

// FindCandidate returns the event a canonical extraction should merge
// into: same fingerprint, event_time within the topic-aware window, most
// recently updated first. Returns nil when no candidate exists.
func (s *Service) FindCandidate(ctx context.Context, p *models.ExtractionPayload) (*ent.Event, error) {
	eventTime := time.Now().UTC()
	if p.EventTime != nil {
		eventTime = *p.EventTime
	}
	window := TimeWindow(p.Topic, p.IsBreaking)

	candidate, err := s.client.Event.Query().
		Where(
			event.EventFingerprint(p.EventFingerprint),
			event.EventTimeNotNil(),
			event.EventTimeGTE(eventTime.Add(-window)),
			event.EventTimeLTE(eventTime.Add(window)),
		).
		Order(ent.Desc(event.FieldLastUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query candidate event: %w", err)
	}
	return candidate, nil
}

// Upsert creates a new event or refines the candidate, links the raw
// message, and returns the event id plus "create" or "update".
func (s *Service) Upsert(ctx context.Context, p *models.ExtractionPayload, rawMessageID int, latestExtractionID *int) (int, string, error) {
	now := time.Now().UTC()
	eventTime := now
	if p.EventTime != nil {
		eventTime = *p.EventTime
	}

	candidate, err := s.FindCandidate(ctx, p)
	if err != nil {
		return 0, "", err
	}

	if candidate == nil {
		builder := s.client.Event.Create().
			SetEventFingerprint(p.EventFingerprint).
			SetImpactScore(p.ImpactScore).
			SetIsBreaking(p.IsBreaking).
			SetBreakingWindow(p.BreakingWindow).
			SetEventTime(eventTime).
			SetLastUpdatedAt(now)
		if p.Topic != "" {
			builder.SetTopic(p.Topic)
		}
		if p.Summary != "" {
			builder.SetSummary(p.Summary)
		}
		if latestExtractionID != nil {
			builder.SetLatestExtractionID(*latestExtractionID)
		}
		created, err := builder.Save(ctx)
		if err != nil {
			return 0, "", fmt.Errorf("failed to create event: %w", err)
		}
		if err := s.linkMessage(ctx, created.ID, rawMessageID); err != nil {
			return 0, "", err
		}
		s.logger.Info("event_create",
			"raw_message_id", rawMessageID,
			"event_id", created.ID,
			"fingerprint", p.EventFingerprint)
		return created.ID, "create", nil
	}

	update := candidate.Update()
	if p.Summary != "" && (candidate.Summary == nil || *candidate.Summary != p.Summary) {
		update.SetSummary(p.Summary)
	}
	if candidate.ImpactScore == nil || p.ImpactScore > *candidate.ImpactScore {
		update.SetImpactScore(p.ImpactScore)
	}
	if candidate.Topic == nil && p.Topic != "" {
		update.SetTopic(p.Topic)
	}
	if p.IsBreaking && !candidate.IsBreaking {
		update.SetIsBreaking(true)
		update.SetBreakingWindow(p.BreakingWindow)
	}
	if candidate.EventTime == nil && p.EventTime != nil {
		update.SetEventTime(*p.EventTime)
	}
	if latestExtractionID != nil {
		update.SetLatestExtractionID(*latestExtractionID)
	}
	update.SetLastUpdatedAt(now)

	if _, err := update.Save(ctx); err != nil {
		return 0, "", fmt.Errorf("failed to update event %d: %w", candidate.ID, err)
	}
	if err := s.linkMessage(ctx, candidate.ID, rawMessageID); err != nil {
		return 0, "", err
	}
	s.logger.Info("event_update",
		"raw_message_id", rawMessageID,
		"event_id", candidate.ID,
		"fingerprint", p.EventFingerprint)
	return candidate.ID, "update", nil
}

// linkMessage records the EventMessage link. A message reprocessed after
// lease expiry may already be linked; the unique pair makes this a no-op.
func (s *Service) linkMessage(ctx context.Context, eventID, rawMessageID int) error {
	exists, err := s.client.EventMessage.Query().
		Where(
			eventmessage.EventID(eventID),
			eventmessage.RawMessageID(rawMessageID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check event link: %w", err)
	}
	if exists {
		return nil
	}

	_, err = s.client.EventMessage.Create().
		SetEventID(eventID).
		SetRawMessageID(rawMessageID).
		SetLinkedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to link message %d to event %d: %w", rawMessageID, eventID, err)
	}
	return nil
}
