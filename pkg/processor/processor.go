// Package processor runs the phase-2 extraction batch: it leases eligible
// messages, calls the model, and persists the extraction, triage, routing,
// event and entity-index results.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/civicquant/pipeline/ent"
	entextraction "github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/entityindex"
	"github.com/civicquant/pipeline/pkg/events"
	"github.com/civicquant/pipeline/pkg/extraction"
	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/pkg/routing"
	"github.com/civicquant/pipeline/pkg/triage"
)

// Extraction row identity.
const (
	ExtractorName = "openai_chat"
	SchemaVersion = 2
)

// RunSummary is one batch run's outcome counts.
type RunSummary struct {
	ProcessingRunID string `json:"processing_run_id"`
	Selected        int    `json:"selected"`
	Processed       int    `json:"processed"`
	Completed       int    `json:"completed"`
	Failed          int    `json:"failed"`
	Skipped         int    `json:"skipped"`
}

// Service drives the phase-2 extraction pipeline over stored messages.
type Service struct {
	client     *ent.Client
	model      extraction.ModelClient
	settings   config.Settings
	routingCfg routing.Config
	logger     *slog.Logger
}

// NewService creates a processor. The model client is injected so batch
// behavior is testable without a provider.
func NewService(client *ent.Client, model extraction.ModelClient, settings config.Settings, routingCfg routing.Config) *Service {
	return &Service{
		client:     client,
		model:      model,
		settings:   settings,
		routingCfg: routingCfg,
		logger:     slog.Default().With("component", "processor"),
	}
}

// ProcessBatch runs one extraction batch under the scheduler lock. A busy
// lock is not an error: the summary comes back with zero counts.
func (s *Service) ProcessBatch(ctx context.Context) (*RunSummary, error) {
	runID := uuid.New().String()
	summary := &RunSummary{ProcessingRunID: runID}

	acquired, err := s.acquireLock(ctx, runID, s.settings.Phase2SchedulerLockSeconds)
	if err != nil {
		return nil, err
	}
	if !acquired {
		s.logger.Info("phase2_lock_busy", "processing_run_id", runID)
		return summary, nil
	}
	defer s.releaseLock(ctx, runID)

	if !s.settings.Phase2ExtractionEnabled {
		return nil, fmt.Errorf("PHASE2_EXTRACTION_ENABLED must be true for the extraction job")
	}
	if s.model == nil {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when PHASE2_EXTRACTION_ENABLED=true")
	}

	eligible, err := s.EligibleMessages(ctx, s.settings.Phase2BatchSize)
	if err != nil {
		return nil, err
	}
	summary.Selected = len(eligible)

	for _, raw := range eligible {
		state, err := s.ensureState(ctx, raw.ID)
		if err != nil {
			return summary, err
		}
		if state.Status == processingstate.StatusCompleted {
			summary.Skipped++
			continue
		}

		if err := s.markInProgress(ctx, raw.ID, runID); err != nil {
			return summary, err
		}

		if err := s.processOne(ctx, raw, runID); err != nil {
			s.recordFailure(ctx, raw.ID, err)
			summary.Failed++
		} else {
			summary.Completed++
		}
		summary.Processed++
	}

	s.logger.Info("phase2_run_done",
		"processing_run_id", runID,
		"selected", summary.Selected,
		"processed", summary.Processed,
		"completed", summary.Completed,
		"failed", summary.Failed,
		"skipped", summary.Skipped)
	return summary, nil
}

// EligibleMessages returns messages awaiting extraction, oldest first:
// never attempted, pending or failed, or in progress past the lease.
func (s *Service) EligibleMessages(ctx context.Context, batchSize int) ([]*ent.RawMessage, error) {
	now := time.Now().UTC()
	msgs, err := s.client.RawMessage.Query().
		Where(
			rawmessage.Or(
				rawmessage.Not(rawmessage.HasProcessingState()),
				rawmessage.HasProcessingStateWith(
					processingstate.Or(
						processingstate.StatusIn(processingstate.StatusPending, processingstate.StatusFailed),
						processingstate.And(
							processingstate.StatusEQ(processingstate.StatusInProgress),
							processingstate.LeaseExpiresAtNotNil(),
							processingstate.LeaseExpiresAtLTE(now),
						),
					),
				),
			),
		).
		Order(ent.Asc(rawmessage.FieldMessageTimestampUtc), ent.Asc(rawmessage.FieldID)).
		Limit(batchSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible messages: %w", err)
	}
	return msgs, nil
}

func (s *Service) ensureState(ctx context.Context, rawMessageID int) (*ent.ProcessingState, error) {
	state, err := s.client.ProcessingState.Query().
		Where(processingstate.RawMessageID(rawMessageID)).
		Only(ctx)
	if err == nil {
		return state, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query processing state: %w", err)
	}

	state, err = s.client.ProcessingState.Create().
		SetRawMessageID(rawMessageID).
		SetStatus(processingstate.StatusPending).
		SetAttemptCount(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create processing state: %w", err)
	}
	return state, nil
}

// markInProgress leases the message. Committed before the pipeline runs so
// a crash mid-extraction leaves a visible expiring lease.
func (s *Service) markInProgress(ctx context.Context, rawMessageID int, runID string) error {
	now := time.Now().UTC()
	lease := time.Duration(s.settings.Phase2LeaseSeconds) * time.Second

	_, err := s.client.ProcessingState.Update().
		Where(processingstate.RawMessageID(rawMessageID)).
		SetStatus(processingstate.StatusInProgress).
		SetProcessingRunID(runID).
		SetLastAttemptedAt(now).
		AddAttemptCount(1).
		SetLeaseExpiresAt(now.Add(lease)).
		ClearLastError().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to lease message %d: %w", rawMessageID, err)
	}
	return nil
}

// recordFailure marks the state failed with a categorized error. Written
// outside the pipeline transaction, which has already rolled back.
func (s *Service) recordFailure(ctx context.Context, rawMessageID int, cause error) {
	category := classifyError(cause)
	s.logger.Warn("phase2_extraction_failed",
		"raw_message_id", rawMessageID,
		"reason", category,
		"error", cause)

	_, err := s.client.ProcessingState.Update().
		Where(processingstate.RawMessageID(rawMessageID)).
		SetStatus(processingstate.StatusFailed).
		SetLastError(fmt.Sprintf("%s:%s", category, cause.Error())).
		Save(ctx)
	if err != nil {
		s.logger.Error("failed to record failure", "raw_message_id", rawMessageID, "error", err)
	}
}

func classifyError(err error) string {
	var verr *extraction.ValidationError
	if errors.As(err, &verr) {
		return "validation_error"
	}
	var perr *extraction.ProviderError
	if errors.As(err, &perr) {
		return "provider_error"
	}
	return "persistence_error"
}

// processOne runs the full pipeline for a single leased message. All
// writes after the model call share one transaction.
func (s *Service) processOne(ctx context.Context, raw *ent.RawMessage, runID string) error {
	channelName := ""
	if raw.SourceChannelName != nil {
		channelName = *raw.SourceChannelName
	}

	prompt, err := extraction.RenderExtractionPrompt(raw.NormalizedText, raw.MessageTimestampUtc, channelName)
	if err != nil {
		return err
	}
	response, err := s.model.Extract(ctx, prompt.PromptText)
	if err != nil {
		return err
	}
	parsed, err := extraction.ParseAndValidate(response.RawText)
	if err != nil {
		return err
	}
	canonical, rules := extraction.Canonicalize(parsed)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	row, err := s.upsertExtraction(ctx, txc, raw.ID, runID, prompt, response, parsed, canonical, rules)
	if err != nil {
		return err
	}

	eventsSvc := events.NewService(txc)
	existingEvent, err := eventsSvc.FindCandidate(ctx, canonical)
	if err != nil {
		return err
	}
	candidate, err := candidateContext(ctx, txc, existingEvent)
	if err != nil {
		return err
	}

	recent, err := recentRelatedRows(ctx, txc, canonical, raw.ID, raw.MessageTimestampUtc)
	if err != nil {
		return err
	}
	softRelated, priorCount := burstSignals(canonical, recent)

	var existingID *int
	if existingEvent != nil {
		existingID = &existingEvent.ID
	}
	decision := triage.Decide(canonical, triage.Context{
		ExistingEventID:         existingID,
		Candidate:               candidate,
		SoftRelatedMatch:        softRelated,
		BurstLowDeltaPriorCount: priorCount,
	})
	routeDecision := routing.Route(canonical, s.routingCfg, decision, existingEvent != nil)

	if err := storeRoutingDecision(ctx, txc, raw.ID, routeDecision); err != nil {
		return err
	}

	var eventID *int
	if routeDecision.EventAction != models.EventActionIgnore {
		id, _, err := eventsSvc.Upsert(ctx, canonical, raw.ID, &row.ID)
		if err != nil {
			return err
		}
		eventID = &id
	}

	if err := entityindex.NewService(txc).IndexExtraction(ctx, raw.ID, eventID, canonical); err != nil {
		return err
	}

	_, err = txc.ProcessingState.Update().
		Where(processingstate.RawMessageID(raw.ID)).
		SetStatus(processingstate.StatusCompleted).
		SetCompletedAt(time.Now().UTC()).
		ClearLeaseExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete processing state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit pipeline transaction: %w", err)
	}
	return nil
}

func (s *Service) upsertExtraction(
	ctx context.Context,
	client *ent.Client,
	rawMessageID int,
	runID string,
	prompt *extraction.RenderedPrompt,
	response *extraction.Response,
	parsed, canonical *models.ExtractionPayload,
	rules []string,
) (*ent.Extraction, error) {
	payload, err := payloadMap(parsed)
	if err != nil {
		return nil, err
	}
	canonicalPayload, err := payloadMap(canonical)
	if err != nil {
		return nil, err
	}
	metadata := map[string]interface{}{
		"used_external_model":    response.UsedExternalModel,
		"model_name":             response.ModelName,
		"response_id":            response.ResponseID,
		"latency_ms":             response.LatencyMS,
		"retries":                response.Retries,
		"canonicalization_rules": rules,
	}
	now := time.Now().UTC()

	existing, err := client.Extraction.Query().
		Where(entextraction.RawMessageID(rawMessageID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query extraction: %w", err)
	}

	if existing == nil {
		builder := client.Extraction.Create().
			SetRawMessageID(rawMessageID).
			SetExtractorName(ExtractorName).
			SetSchemaVersion(SchemaVersion).
			SetModelName(response.ModelName).
			SetTopic(canonical.Topic).
			SetImpactScore(canonical.ImpactScore).
			SetConfidence(canonical.Confidence).
			SetSentiment(canonical.Sentiment).
			SetIsBreaking(canonical.IsBreaking).
			SetBreakingWindow(canonical.BreakingWindow).
			SetEventFingerprint(canonical.EventFingerprint).
			SetPromptVersion(prompt.PromptVersion).
			SetProcessingRunID(runID).
			SetLlmRawResponse(response.RawText).
			SetValidatedAt(now).
			SetPayload(payload).
			SetCanonicalPayload(canonicalPayload).
			SetMetadata(metadata)
		if canonical.EventTime != nil {
			builder.SetEventTime(*canonical.EventTime)
		}
		row, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction: %w", err)
		}
		return row, nil
	}

	builder := existing.Update().
		SetExtractorName(ExtractorName).
		SetSchemaVersion(SchemaVersion).
		SetModelName(response.ModelName).
		SetTopic(canonical.Topic).
		SetImpactScore(canonical.ImpactScore).
		SetConfidence(canonical.Confidence).
		SetSentiment(canonical.Sentiment).
		SetIsBreaking(canonical.IsBreaking).
		SetBreakingWindow(canonical.BreakingWindow).
		SetEventFingerprint(canonical.EventFingerprint).
		SetPromptVersion(prompt.PromptVersion).
		SetProcessingRunID(runID).
		SetLlmRawResponse(response.RawText).
		SetValidatedAt(now).
		SetPayload(payload).
		SetCanonicalPayload(canonicalPayload).
		SetMetadata(metadata)
	if canonical.EventTime != nil {
		builder.SetEventTime(*canonical.EventTime)
	} else {
		builder.ClearEventTime()
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update extraction: %w", err)
	}
	return row, nil
}

// storeRoutingDecision writes the decision once; a retry after a partial
// failure keeps the original row.
func storeRoutingDecision(ctx context.Context, client *ent.Client, rawMessageID int, d models.RoutingDecisionData) error {
	exists, err := client.RoutingDecision.Query().
		Where(routingdecision.RawMessageID(rawMessageID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query routing decision: %w", err)
	}
	if exists {
		return nil
	}

	builder := client.RoutingDecision.Create().
		SetRawMessageID(rawMessageID).
		SetStoreTo(d.StoreTo).
		SetPublishPriority(d.PublishPriority).
		SetRequiresEvidence(d.RequiresEvidence).
		SetEventAction(d.EventAction).
		SetTriageRules(d.TriageRules).
		SetFlags(d.Flags).
		SetRulesFired(d.RulesFired)
	if d.TriageAction != "" {
		builder.SetTriageAction(d.TriageAction)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to store routing decision: %w", err)
	}
	return nil
}

func payloadMap(p *models.ExtractionPayload) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return out, nil
}
