package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/test/util"
)

func testMessage(upstreamID string) Message {
	name := "Macro Wire"
	return Message{
		SourceChannelID:     "chan-1",
		SourceChannelName:   &name,
		UpstreamMessageID:   upstreamID,
		MessageTimestampUTC: time.Now().UTC(),
		RawText:             "🚨 BREAKING: CPI prints 3.1%",
	}
}

func TestIngestCreatesMessageAndPendingState(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	result, err := svc.Ingest(ctx, testMessage("m-1"))
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, result.Status)
	assert.Nil(t, result.EventID)

	raw, err := entClient.RawMessage.Get(ctx, result.RawMessageID)
	require.NoError(t, err)
	assert.Equal(t, "🚨 BREAKING: CPI prints 3.1%", raw.RawText)
	assert.Equal(t, "CPI prints 3.1%", raw.NormalizedText)
	require.NotNil(t, raw.SourceChannelName)
	assert.Equal(t, "Macro Wire", *raw.SourceChannelName)

	state, err := entClient.ProcessingState.Query().
		Where(processingstate.RawMessageID(result.RawMessageID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processingstate.StatusPending, state.Status)
	assert.Equal(t, 0, state.AttemptCount)
}

func TestIngestDuplicateReturnsOriginal(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	first, err := svc.Ingest(ctx, testMessage("m-dup"))
	require.NoError(t, err)

	second, err := svc.Ingest(ctx, testMessage("m-dup"))
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	assert.Equal(t, first.RawMessageID, second.RawMessageID)
	assert.Nil(t, second.EventID)

	count, err := entClient.RawMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	states, err := entClient.ProcessingState.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, states)
}

func TestIngestDuplicateReportsLinkedEvent(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	first, err := svc.Ingest(ctx, testMessage("m-linked"))
	require.NoError(t, err)

	ev, err := entClient.Event.Create().
		SetEventFingerprint("fp-ingest").
		SetLastUpdatedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)
	_, err = entClient.EventMessage.Create().
		SetEventID(ev.ID).
		SetRawMessageID(first.RawMessageID).
		Save(ctx)
	require.NoError(t, err)

	second, err := svc.Ingest(ctx, testMessage("m-linked"))
	require.NoError(t, err)
	assert.Equal(t, StatusDuplicate, second.Status)
	require.NotNil(t, second.EventID)
	assert.Equal(t, ev.ID, *second.EventID)
}

func TestIngestDistinctChannelsDoNotCollide(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient)

	msgA := testMessage("m-shared")
	result, err := svc.Ingest(ctx, msgA)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, result.Status)

	// Same upstream id on a different channel is a new message.
	msgB := testMessage("m-shared")
	msgB.SourceChannelID = "chan-2"
	result, err = svc.Ingest(ctx, msgB)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, result.Status)

	count, err := entClient.RawMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
