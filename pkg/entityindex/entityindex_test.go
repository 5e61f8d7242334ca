package entityindex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/pkg/models"
	"github.com/civicquant/pipeline/test/util"
)

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

func indexPayload(eventTime *time.Time) *models.ExtractionPayload {
	return &models.ExtractionPayload{
		Topic: models.TopicWarSecurity,
		Entities: models.Entities{
			Countries: []string{"Ukraine", "Russia"},
			Orgs:      []string{"NATO"},
			People:    []string{"John Smith"},
			Tickers:   []string{"LMT"},
		},
		IsBreaking: true,
		EventTime:  eventTime,
	}
}

func TestIndexExtractionIdempotent(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	msgID := createRawMessage(t, entClient, "m-1")
	now := time.Now().UTC()

	require.NoError(t, svc.IndexExtraction(ctx, msgID, nil, indexPayload(&now)))
	require.NoError(t, svc.IndexExtraction(ctx, msgID, nil, indexPayload(&now)))

	count, err := entClient.EntityMention.Query().
		Where(entitymention.RawMessageID(msgID)).
		Count(ctx)
	require.NoError(t, err)
	// 2 countries + 1 org + 1 person + 1 ticker, once each.
	assert.Equal(t, 5, count)
}

func TestIndexExtractionBackfillsEventID(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	msgID := createRawMessage(t, entClient, "m-2")
	now := time.Now().UTC()
	p := indexPayload(&now)

	require.NoError(t, svc.IndexExtraction(ctx, msgID, nil, p))

	ev, err := entClient.Event.Create().
		SetEventFingerprint("fp-backfill").
		SetLastUpdatedAt(now).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.IndexExtraction(ctx, msgID, &ev.ID, p))

	mentions, err := entClient.EntityMention.Query().
		Where(entitymention.RawMessageID(msgID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, mentions, 5)
	for _, m := range mentions {
		require.NotNil(t, m.EventID)
		assert.Equal(t, ev.ID, *m.EventID)
	}
}

func TestIndexExtractionSkipsEmptyValues(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	msgID := createRawMessage(t, entClient, "m-3")
	p := &models.ExtractionPayload{
		Topic: models.TopicOther,
		Entities: models.Entities{
			Countries: []string{"", "France"},
		},
	}

	require.NoError(t, svc.IndexExtraction(ctx, msgID, nil, p))

	count, err := entClient.EntityMention.Query().
		Where(entitymention.RawMessageID(msgID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestQueryMentionsOrderingAndWindow(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	now := time.Now().UTC().Truncate(time.Second)
	early := now.Add(-48 * time.Hour)
	late := now.Add(-1 * time.Hour)

	msgEarly := createRawMessage(t, entClient, "m-early")
	msgLate := createRawMessage(t, entClient, "m-late")
	msgNoTime := createRawMessage(t, entClient, "m-notime")

	p := func(et *time.Time) *models.ExtractionPayload {
		return &models.ExtractionPayload{
			Topic:     models.TopicGeopolitics,
			Entities:  models.Entities{Countries: []string{"France"}},
			EventTime: et,
		}
	}
	require.NoError(t, svc.IndexExtraction(ctx, msgEarly, nil, p(&early)))
	require.NoError(t, svc.IndexExtraction(ctx, msgLate, nil, p(&late)))
	require.NoError(t, svc.IndexExtraction(ctx, msgNoTime, nil, p(nil)))

	all, err := svc.QueryMentions(ctx, TypeCountry, "France", nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, msgLate, all[0].RawMessageID)
	assert.Equal(t, msgEarly, all[1].RawMessageID)
	assert.Equal(t, msgNoTime, all[2].RawMessageID)

	// Bounded query drops the old mention and the one without event_time.
	start := now.Add(-24 * time.Hour)
	recent, err := svc.QueryMentions(ctx, TypeCountry, "France", &start, &now)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, msgLate, recent[0].RawMessageID)

	none, err := svc.QueryMentions(ctx, TypeTicker, "France", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
