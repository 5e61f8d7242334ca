package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/test/util"
)

func TestTimeWindow(t *testing.T) {
	assert.Equal(t, 48*time.Hour, TimeWindow(models.TopicMacroEcon, false))
	assert.Equal(t, 48*time.Hour, TimeWindow(models.TopicMacroEcon, true))
	assert.Equal(t, 6*time.Hour, TimeWindow(models.TopicWarSecurity, true))
	assert.Equal(t, 24*time.Hour, TimeWindow(models.TopicEquities, false))
}

func createRawMessage(t *testing.T, client *ent.Client, upstreamID string) int {
	t.Helper()
	raw, err := client.RawMessage.Create().
		SetSourceChannelID("chan-1").
		SetUpstreamMessageID(upstreamID).
		SetMessageTimestampUtc(time.Now().UTC()).
		SetRawText("raw").
		SetNormalizedText("raw").
		Save(context.Background())
	require.NoError(t, err)
	return raw.ID
}

func testPayload(fingerprint string, eventTime time.Time) *models.ExtractionPayload {
	et := eventTime
	return &models.ExtractionPayload{
		Topic:            models.TopicCommodities,
		Sentiment:        "negative",
		Confidence:       0.8,
		ImpactScore:      60,
		BreakingWindow:   "none",
		EventTime:        &et,
		Summary:          "Refinery outage halts production at a major Gulf facility.",
		EventFingerprint: fingerprint,
	}
}

func TestUpsertCreateThenMerge(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC().Truncate(time.Second)
	fp := "commodities|refinery|United States|outage|production|major|2026-08-24|"

	msgA := createRawMessage(t, entClient, "m-101")
	msgB := createRawMessage(t, entClient, "m-102")

	first := testPayload(fp, now)
	firstID, action, err := svc.Upsert(ctx, first, msgA, nil)
	require.NoError(t, err)
	assert.Equal(t, "create", action)

	// Second report of the same event two hours later: higher impact,
	// fresher summary, now flagged breaking.
	second := testPayload(fp, now.Add(2*time.Hour))
	second.ImpactScore = 75
	second.IsBreaking = true
	second.BreakingWindow = "1h"
	second.Summary = "Refinery fire forces full shutdown, exports suspended."

	secondID, action, err := svc.Upsert(ctx, second, msgB, nil)
	require.NoError(t, err)
	assert.Equal(t, "update", action)
	assert.Equal(t, firstID, secondID)

	ev, err := entClient.Event.Get(ctx, firstID)
	require.NoError(t, err)
	require.NotNil(t, ev.ImpactScore)
	assert.Equal(t, 75.0, *ev.ImpactScore)
	require.NotNil(t, ev.Summary)
	assert.Equal(t, second.Summary, *ev.Summary)
	assert.True(t, ev.IsBreaking)
	require.NotNil(t, ev.BreakingWindow)
	assert.Equal(t, "1h", *ev.BreakingWindow)
	// event_time is set at creation and never rewritten by later reports.
	require.NotNil(t, ev.EventTime)
	assert.WithinDuration(t, now, *ev.EventTime, time.Second)

	links, err := entClient.EventMessage.Query().
		Where(eventmessage.EventID(firstID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	total, err := entClient.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestUpsertLowerImpactDoesNotDowngrade(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()
	fp := "macro_econ|fed|United States|hold|rates||2026-08-24|"

	msgA := createRawMessage(t, entClient, "m-201")
	msgB := createRawMessage(t, entClient, "m-202")

	first := testPayload(fp, now)
	first.ImpactScore = 80
	eventID, _, err := svc.Upsert(ctx, first, msgA, nil)
	require.NoError(t, err)

	second := testPayload(fp, now.Add(time.Hour))
	second.ImpactScore = 40
	second.Summary = ""

	_, action, err := svc.Upsert(ctx, second, msgB, nil)
	require.NoError(t, err)
	assert.Equal(t, "update", action)

	ev, err := entClient.Event.Get(ctx, eventID)
	require.NoError(t, err)
	require.NotNil(t, ev.ImpactScore)
	assert.Equal(t, 80.0, *ev.ImpactScore)
	require.NotNil(t, ev.Summary)
	assert.Equal(t, first.Summary, *ev.Summary)
}

func TestUpsertDifferentFingerprintsNeverMerge(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()

	msgA := createRawMessage(t, entClient, "m-301")
	msgB := createRawMessage(t, entClient, "m-302")

	firstID, action, err := svc.Upsert(ctx, testPayload("fp-alpha", now), msgA, nil)
	require.NoError(t, err)
	assert.Equal(t, "create", action)

	secondID, action, err := svc.Upsert(ctx, testPayload("fp-beta", now), msgB, nil)
	require.NoError(t, err)
	assert.Equal(t, "create", action)
	assert.NotEqual(t, firstID, secondID)
}

func TestUpsertOutsideWindowCreatesNewEvent(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()
	fp := "equities|acme|United States|guidance|cut||2026-08-24|"

	msgA := createRawMessage(t, entClient, "m-401")
	msgB := createRawMessage(t, entClient, "m-402")

	first := testPayload(fp, now.Add(-30*time.Hour))
	first.Topic = models.TopicEquities
	firstID, _, err := svc.Upsert(ctx, first, msgA, nil)
	require.NoError(t, err)

	// 30 hours apart with a 24 hour window for equities: separate events.
	second := testPayload(fp, now)
	second.Topic = models.TopicEquities
	secondID, action, err := svc.Upsert(ctx, second, msgB, nil)
	require.NoError(t, err)
	assert.Equal(t, "create", action)
	assert.NotEqual(t, firstID, secondID)
}

func TestUpsertMacroWindowSpansTwoDays(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()
	fp := "macro_econ|cpi|United States|print|3.1%||2026-08-24|"

	msgA := createRawMessage(t, entClient, "m-501")
	msgB := createRawMessage(t, entClient, "m-502")

	first := testPayload(fp, now.Add(-40*time.Hour))
	first.Topic = models.TopicMacroEcon
	firstID, _, err := svc.Upsert(ctx, first, msgA, nil)
	require.NoError(t, err)

	second := testPayload(fp, now)
	second.Topic = models.TopicMacroEcon
	secondID, action, err := svc.Upsert(ctx, second, msgB, nil)
	require.NoError(t, err)
	assert.Equal(t, "update", action)
	assert.Equal(t, firstID, secondID)
}

func TestLinkMessageIdempotent(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()
	msgID := createRawMessage(t, entClient, "m-601")
	eventID, _, err := svc.Upsert(ctx, testPayload("fp-link", now), msgID, nil)
	require.NoError(t, err)

	// Reprocessing the same message after a lease expiry must not create a
	// second link row.
	againID, action, err := svc.Upsert(ctx, testPayload("fp-link", now), msgID, nil)
	require.NoError(t, err)
	assert.Equal(t, "update", action)
	assert.Equal(t, eventID, againID)

	count, err := entClient.EventMessage.Query().
		Where(eventmessage.RawMessageID(msgID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsertSetsLatestExtraction(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC()

	raw, err := entClient.RawMessage.Create().
		SetSourceChannelID("chan-1").
		SetUpstreamMessageID("m-700").
		SetMessageTimestampUtc(now).
		SetRawText("raw").
		SetNormalizedText("raw").
		Save(ctx)
	require.NoError(t, err)

	ext, err := entClient.Extraction.Create().
		SetRawMessageID(raw.ID).
		SetExtractorName("openai_chat").
		SetSchemaVersion(2).
		SetPayload(map[string]interface{}{"topic": "commodities"}).
		Save(ctx)
	require.NoError(t, err)

	eventID, _, err := svc.Upsert(ctx, testPayload("fp-latest", now), raw.ID, &ext.ID)
	require.NoError(t, err)

	ev, err := entClient.Event.Get(ctx, eventID)
	require.NoError(t, err)
	require.NotNil(t, ev.LatestExtractionID)
	assert.Equal(t, ext.ID, *ev.LatestExtractionID)
}
