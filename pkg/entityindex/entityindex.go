// Package entityindex maintains the per-message entity mention index used
// for "what happened around X" queries.
package entityindex

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/pkg/models"
)

// Entity types recorded in the index.
const (
	TypeCountry = "country"
	TypeOrg     = "org"
	TypePerson  = "person"
	TypeTicker  = "ticker"
)

// Service indexes entity mentions for canonical extractions.
type Service struct {
	client *ent.Client
}

// NewService creates an entity index service. The client may be
// transaction-bound.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// IndexExtraction records one mention per (message, type, value) tuple for
// every entity in the canonical payload. Re-indexing the same message is a
// no-op except that a previously missing event_id is filled in.
func (s *Service) IndexExtraction(ctx context.Context, rawMessageID int, eventID *int, p *models.ExtractionPayload) error {
	groups := []struct {
		entityType string
		values     []string
	}{
		{TypeCountry, p.Entities.Countries},
		{TypeOrg, p.Entities.Orgs},
		{TypePerson, p.Entities.People},
		{TypeTicker, p.Entities.Tickers},
	}

	for _, group := range groups {
		for _, value := range group.values {
			if value == "" {
				continue
			}
			if err := s.upsertMention(ctx, rawMessageID, eventID, group.entityType, value, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) upsertMention(ctx context.Context, rawMessageID int, eventID *int, entityType, entityValue string, p *models.ExtractionPayload) error {
	existing, err := s.client.EntityMention.Query().
		Where(
			entitymention.RawMessageID(rawMessageID),
			entitymention.EntityType(entityType),
			entitymention.EntityValue(entityValue),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query entity mention: %w", err)
	}

	if existing != nil {
		if eventID != nil && existing.EventID == nil {
			if _, err := existing.Update().SetEventID(*eventID).Save(ctx); err != nil {
				return fmt.Errorf("failed to attach event to mention %d: %w", existing.ID, err)
			}
		}
		return nil
	}

	builder := s.client.EntityMention.Create().
		SetRawMessageID(rawMessageID).
		SetEntityType(entityType).
		SetEntityValue(entityValue).
		SetTopic(p.Topic).
		SetIsBreaking(p.IsBreaking)
	if eventID != nil {
		builder.SetEventID(*eventID)
	}
	if p.EventTime != nil {
		builder.SetEventTime(*p.EventTime)
	}
	if _, err := builder.Save(ctx); err != nil {
		// A concurrent indexer may have inserted the same tuple.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create entity mention: %w", err)
	}
	return nil
}

// QueryMentions returns mentions of one entity, newest event first, rows
// without an event_time last. Start and end bound event_time when set;
// a bounded query excludes rows with no event_time.
func (s *Service) QueryMentions(ctx context.Context, entityType, entityValue string, start, end *time.Time) ([]*ent.EntityMention, error) {
	q := s.client.EntityMention.Query().
		Where(
			entitymention.EntityType(entityType),
			entitymention.EntityValue(entityValue),
		)
	if start != nil {
		q = q.Where(entitymention.EventTimeNotNil(), entitymention.EventTimeGTE(*start))
	}
	if end != nil {
		q = q.Where(entitymention.EventTimeNotNil(), entitymention.EventTimeLTE(*end))
	}

	mentions, err := q.
		Order(
			entitymention.ByEventTime(sql.OrderDesc(), sql.OrderNullsLast()),
			entitymention.ByID(sql.OrderDesc()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query entity mentions: %w", err)
	}
	return mentions, nil
}
