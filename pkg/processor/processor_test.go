package processor

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/routingdecision"
	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/extraction"
	"github.com/civicquant/pipeline/pkg/routing"
	"github.com/civicquant/pipeline/test/util"
)

const validModelJSON = `{
	"topic": "war_security",
	"entities": {"countries": ["Ukraine", "Russia"], "orgs": [], "people": [], "tickers": []},
	"affected_countries_first_order": ["Ukraine"],
	"market_stats": [],
	"sentiment": "negative",
	"confidence": 0.9,
	"impact_score": 85,
	"is_breaking": true,
	"breaking_window": "1h",
	"event_time": "2026-08-24T10:00:00Z",
	"source_claimed": "Defense Ministry",
	"summary_1_sentence": "The defense ministry said missiles struck an energy facility in Kharkiv.",
	"keywords": ["missile", "energy"],
	"event_fingerprint": "war_security|ministry|ukraine|strike|energy facility|large|2026-08-24|"
}`

type fakeModel struct {
	rawText string
	err     error
	calls   int
}

func (f *fakeModel) Extract(ctx context.Context, promptText string) (*extraction.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &extraction.Response{
		ExtractorName:     "openai_chat",
		UsedExternalModel: true,
		ModelName:         "gpt-4o-mini",
		ResponseID:        "resp-1",
		LatencyMS:         12,
		RawText:           f.rawText,
	}, nil
}

func testSettings() config.Settings {
	return config.Settings{
		Phase2ExtractionEnabled:    true,
		Phase2BatchSize:            50,
		Phase2LeaseSeconds:         600,
		Phase2SchedulerLockSeconds: 540,
	}
}

func createMessage(t *testing.T, client *ent.Client, upstreamID string, ts time.Time) *ent.RawMessage {
	t.Helper()
	raw, err := client.RawMessage.Create().
		SetSourceChannelID("chan-1").
		SetSourceChannelName("Macro Wire").
		SetUpstreamMessageID(upstreamID).
		SetMessageTimestampUtc(ts).
		SetRawText("Missiles struck an energy facility in Kharkiv").
		SetNormalizedText("Missiles struck an energy facility in Kharkiv").
		Save(context.Background())
	require.NoError(t, err)
	return raw
}

func createState(t *testing.T, client *ent.Client, rawID int, status processingstate.Status, lease *time.Time) {
	t.Helper()
	builder := client.ProcessingState.Create().
		SetRawMessageID(rawID).
		SetStatus(status)
	if lease != nil {
		builder.SetLeaseExpiresAt(*lease)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

func TestEligibleMessages(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient, &fakeModel{}, testSettings(), routing.DefaultConfig())

	base := time.Now().UTC().Add(-time.Hour)
	expired := time.Now().UTC().Add(-time.Minute)
	active := time.Now().UTC().Add(10 * time.Minute)

	noState := createMessage(t, entClient, "m-nostate", base)
	pending := createMessage(t, entClient, "m-pending", base.Add(1*time.Minute))
	failed := createMessage(t, entClient, "m-failed", base.Add(2*time.Minute))
	staleLease := createMessage(t, entClient, "m-stale", base.Add(3*time.Minute))
	liveLease := createMessage(t, entClient, "m-live", base.Add(4*time.Minute))
	done := createMessage(t, entClient, "m-done", base.Add(5*time.Minute))

	createState(t, entClient, pending.ID, processingstate.StatusPending, nil)
	createState(t, entClient, failed.ID, processingstate.StatusFailed, nil)
	createState(t, entClient, staleLease.ID, processingstate.StatusInProgress, &expired)
	createState(t, entClient, liveLease.ID, processingstate.StatusInProgress, &active)
	createState(t, entClient, done.ID, processingstate.StatusCompleted, nil)

	eligible, err := svc.EligibleMessages(ctx, 50)
	require.NoError(t, err)

	var ids []int
	for _, m := range eligible {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{noState.ID, pending.ID, failed.ID, staleLease.ID}, ids)

	// Batch size bounds the selection, oldest first.
	limited, err := svc.EligibleMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, noState.ID, limited[0].ID)
}

func TestProcessBatchCompletesPipeline(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	model := &fakeModel{rawText: validModelJSON}
	svc := NewService(entClient, model, testSettings(), routing.DefaultConfig())

	ts := time.Now().UTC().Add(-10 * time.Minute)
	msgA := createMessage(t, entClient, "m-1", ts)
	msgB := createMessage(t, entClient, "m-2", ts.Add(time.Minute))
	createState(t, entClient, msgA.ID, processingstate.StatusPending, nil)
	createState(t, entClient, msgB.ID, processingstate.StatusPending, nil)

	summary, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, summary.ProcessingRunID)
	assert.Equal(t, 2, summary.Selected)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, model.calls)

	// Both reports share a fingerprint within the breaking window: one event.
	eventCount, err := entClient.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, eventCount)

	links, err := entClient.EventMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, links)

	// First report promotes at full priority; the second adds nothing new
	// and is capped to monitor/low.
	decisionA, err := entClient.RoutingDecision.Query().
		Where(routingdecision.RawMessageID(msgA.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"war_security_events"}, decisionA.StoreTo)
	assert.Equal(t, "high", decisionA.PublishPriority)
	require.NotNil(t, decisionA.TriageAction)
	assert.Equal(t, "promote", *decisionA.TriageAction)

	decisionB, err := entClient.RoutingDecision.Query().
		Where(routingdecision.RawMessageID(msgB.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "low", decisionB.PublishPriority)
	require.NotNil(t, decisionB.TriageAction)
	assert.Equal(t, "monitor", *decisionB.TriageAction)
	assert.Contains(t, decisionB.TriageRules, "triage:repeat_downgrade")

	mentions, err := entClient.EntityMention.Query().
		Where(entitymention.EntityType("country")).
		Count(ctx)
	require.NoError(t, err)
	// Two countries per message, one row per (message, type, value).
	assert.Equal(t, 4, mentions)

	states, err := entClient.ProcessingState.Query().All(ctx)
	require.NoError(t, err)
	for _, state := range states {
		assert.Equal(t, processingstate.StatusCompleted, state.Status)
		assert.Equal(t, 1, state.AttemptCount)
		assert.Nil(t, state.LeaseExpiresAt)
		assert.NotNil(t, state.CompletedAt)
		require.NotNil(t, state.ProcessingRunID)
		assert.Equal(t, summary.ProcessingRunID, *state.ProcessingRunID)
	}

	// A second run finds nothing left to do.
	again, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Selected)
}

func TestProcessBatchRecordsValidationFailure(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	model := &fakeModel{rawText: "not json at all"}
	svc := NewService(entClient, model, testSettings(), routing.DefaultConfig())

	msg := createMessage(t, entClient, "m-bad", time.Now().UTC())
	createState(t, entClient, msg.ID, processingstate.StatusPending, nil)

	summary, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Completed)

	state, err := entClient.ProcessingState.Query().
		Where(processingstate.RawMessageID(msg.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processingstate.StatusFailed, state.Status)
	require.NotNil(t, state.LastError)
	assert.True(t, strings.HasPrefix(*state.LastError, "validation_error:"))

	// No derived rows for a failed message.
	extractions, err := entClient.Extraction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, extractions)
	routingRows, err := entClient.RoutingDecision.Query().
		Where(routingdecision.RawMessageID(msg.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, routingRows)
}

func TestProcessBatchRecordsProviderFailure(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	model := &fakeModel{err: &extraction.ProviderError{
		Kind: "status_error",
		Err:  fmt.Errorf("provider returned status 500"),
	}}
	svc := NewService(entClient, model, testSettings(), routing.DefaultConfig())

	msg := createMessage(t, entClient, "m-provider", time.Now().UTC())
	createState(t, entClient, msg.ID, processingstate.StatusPending, nil)

	summary, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)

	state, err := entClient.ProcessingState.Query().
		Where(processingstate.RawMessageID(msg.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processingstate.StatusFailed, state.Status)
	require.NotNil(t, state.LastError)
	assert.True(t, strings.HasPrefix(*state.LastError, "provider_error:"))

	// Failed messages stay eligible for the next run.
	eligible, err := svc.EligibleMessages(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, eligible, 1)
}

func TestProcessBatchLockBusy(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient, &fakeModel{rawText: validModelJSON}, testSettings(), routing.DefaultConfig())

	_, err := entClient.ProcessingLock.Create().
		SetLockName("phase2_extraction").
		SetLockedUntil(time.Now().UTC().Add(5 * time.Minute)).
		SetOwnerRunID("another-run").
		Save(ctx)
	require.NoError(t, err)

	msg := createMessage(t, entClient, "m-locked", time.Now().UTC())
	createState(t, entClient, msg.ID, processingstate.StatusPending, nil)

	summary, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Selected)
	assert.Equal(t, 0, summary.Processed)

	// The foreign lock is untouched.
	lock, err := entClient.ProcessingLock.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "another-run", lock.OwnerRunID)
}

func TestProcessBatchReclaimsExpiredLock(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient, &fakeModel{rawText: validModelJSON}, testSettings(), routing.DefaultConfig())

	_, err := entClient.ProcessingLock.Create().
		SetLockName("phase2_extraction").
		SetLockedUntil(time.Now().UTC().Add(-time.Minute)).
		SetOwnerRunID("dead-run").
		Save(ctx)
	require.NoError(t, err)

	msg := createMessage(t, entClient, "m-reclaim", time.Now().UTC())
	createState(t, entClient, msg.ID, processingstate.StatusPending, nil)

	summary, err := svc.ProcessBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Completed)
}

func TestProcessBatchRequiresFeatureFlag(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	settings := testSettings()
	settings.Phase2ExtractionEnabled = false
	svc := NewService(entClient, &fakeModel{rawText: validModelJSON}, settings, routing.DefaultConfig())

	_, err := svc.ProcessBatch(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PHASE2_EXTRACTION_ENABLED")
}

func TestBurstSignals(t *testing.T) {
	payload, err := extraction.ParseAndValidate(validModelJSON)
	require.NoError(t, err)

	rowFor := func(fingerprint string, impact float64, countries []interface{}) *ent.Extraction {
		return &ent.Extraction{
			Payload: map[string]interface{}{
				"event_fingerprint":  fingerprint,
				"impact_score":       impact,
				"entities":           map[string]interface{}{"countries": countries},
				"summary_1_sentence": "repeat",
			},
		}
	}
	fp := payload.EventFingerprint

	// Two prior reports at the same band with the same entities qualify.
	soft, prior := burstSignals(payload, []*ent.Extraction{
		rowFor(fp, 85, []interface{}{"Ukraine", "Russia"}),
		rowFor(fp, 90, []interface{}{"Ukraine", "Russia"}),
	})
	assert.True(t, soft)
	assert.Equal(t, 2, prior)

	// A lower-impact prior report does not qualify but is still related.
	soft, prior = burstSignals(payload, []*ent.Extraction{
		rowFor(fp, 40, []interface{}{"Ukraine", "Russia"}),
	})
	assert.True(t, soft)
	assert.Equal(t, 0, prior)

	// Different fingerprint and under two shared entities: no signal.
	soft, prior = burstSignals(payload, []*ent.Extraction{
		rowFor("fp-other", 85, []interface{}{"France"}),
	})
	assert.False(t, soft)
	assert.Equal(t, 0, prior)
}
