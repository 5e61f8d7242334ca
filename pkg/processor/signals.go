package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/civicquant/pipeline/ent"
	entextraction "github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/pkg/triage"
)

// softRelatedWindow bounds the scan for recent same-topic extractions used
// by the repeat-low-delta burst signal.
const softRelatedWindow = 15 * time.Minute

var bandRank = map[string]int{
	triage.ImpactLow:      0,
	triage.ImpactMedium:   1,
	triage.ImpactHigh:     2,
	triage.ImpactCritical: 3,
}

// payloadOf decodes the stored extraction row back into a payload,
// preferring the canonical form.
func payloadOf(row *ent.Extraction) *models.ExtractionPayload {
	source := row.CanonicalPayload
	if len(source) == 0 {
		source = row.Payload
	}
	if len(source) == 0 {
		return &models.ExtractionPayload{}
	}
	raw, err := json.Marshal(source)
	if err != nil {
		return &models.ExtractionPayload{}
	}
	var p models.ExtractionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return &models.ExtractionPayload{}
	}
	return &p
}

func rowImpact(row *ent.Extraction, p *models.ExtractionPayload) float64 {
	if row.ImpactScore != nil {
		return *row.ImpactScore
	}
	return p.ImpactScore
}

// candidateContext summarizes the candidate event's latest extraction for
// the triage novelty comparison. Nil when the event has no usable latest
// extraction.
func candidateContext(ctx context.Context, client *ent.Client, existingEvent *ent.Event) (*triage.CandidateContext, error) {
	if existingEvent == nil || existingEvent.LatestExtractionID == nil {
		return nil, nil
	}
	latest, err := client.Extraction.Get(ctx, *existingEvent.LatestExtractionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest extraction %d: %w", *existingEvent.LatestExtractionID, err)
	}

	p := payloadOf(latest)
	return &triage.CandidateContext{
		ImpactBand:  triage.ImpactBandOf(rowImpact(latest, p)),
		Entities:    triage.EntitySignature(p),
		SummaryTags: triage.SummaryTags(p.Summary),
		SourceClass: triage.SourceClassOf(p.SourceClaimed, p.Summary),
	}, nil
}

// recentRelatedRows returns other extractions on the same topic created
// within the soft-related window ending at now, oldest first.
func recentRelatedRows(ctx context.Context, client *ent.Client, p *models.ExtractionPayload, rawMessageID int, now time.Time) ([]*ent.Extraction, error) {
	rows, err := client.Extraction.Query().
		Where(
			entextraction.RawMessageIDNEQ(rawMessageID),
			entextraction.Topic(p.Topic),
			entextraction.CreatedAtGTE(now.Add(-softRelatedWindow)),
			entextraction.CreatedAtLTE(now),
		).
		Order(ent.Asc(entextraction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent extractions: %w", err)
	}
	return rows, nil
}

// burstSignals walks the recent related rows and reports whether any is
// soft-related to the current extraction, plus how many prior reports said
// the same thing with no new entities and no impact escalation.
func burstSignals(p *models.ExtractionPayload, recent []*ent.Extraction) (softRelated bool, priorCount int) {
	current := toSet(triage.EntitySignature(p))
	currentRank := bandRank[triage.ImpactBandOf(p.ImpactScore)]
	priorUnion := map[string]bool{}

	for _, row := range recent {
		rp := payloadOf(row)
		rowFP := rp.EventFingerprint
		if rowFP == "" {
			rowFP = row.EventFingerprint
		}
		rowEntities := toSet(triage.EntitySignature(rp))

		overlap := 0
		for sig := range current {
			if rowEntities[sig] {
				overlap++
			}
		}
		related := (rowFP != "" && rowFP == p.EventFingerprint) || overlap >= 2
		if !related {
			continue
		}
		softRelated = true
		for sig := range rowEntities {
			priorUnion[sig] = true
		}

		rowRank := bandRank[triage.ImpactBandOf(rowImpact(row, rp))]
		newEntity := false
		for sig := range current {
			if !priorUnion[sig] {
				newEntity = true
				break
			}
		}
		if currentRank <= rowRank && !newEntity {
			priorCount++
		}
	}
	return softRelated, priorCount
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}
