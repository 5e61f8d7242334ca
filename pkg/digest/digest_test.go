package digest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent"
	"github.com/civicquant/pipeline/test/util"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

func createEvent(t *testing.T, client *ent.Client, topic, summary string, impact float64, updatedAt time.Time) *ent.Event {
	t.Helper()
	ev, err := client.Event.Create().
		SetEventFingerprint("fp-" + summary).
		SetTopic(topic).
		SetSummary(summary).
		SetImpactScore(impact).
		SetEventTime(updatedAt).
		SetLastUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return ev
}

func TestBuildGroupsByTopic(t *testing.T) {
	generated := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	events := []*ent.Event{
		{Topic: strPtr("macro_econ"), Summary: strPtr("CPI printed at 3.1 percent."), ImpactScore: floatPtr(70)},
		{Topic: strPtr("war_security"), Summary: strPtr("Missiles struck an energy facility."), ImpactScore: floatPtr(85)},
		{Topic: nil, Summary: nil, ImpactScore: nil},
	}

	text := Build(events, 4, generated)

	assert.Contains(t, text, "Civicquant Digest — last 4h (generated 2026-08-24 12:00 UTC)")
	assert.Contains(t, text, "Counts: Macro Econ: 1, Other: 1, War / Security: 1")
	assert.Contains(t, text, "== Macro Econ ==")
	assert.Contains(t, text, "- CPI printed at 3.1 percent. (impact=70, corroboration=unknown)")
	assert.Contains(t, text, "== War / Security ==")
	assert.Contains(t, text, "- (no summary) (impact=n/a, corroboration=unknown)")
	assert.Contains(t, text, "no investment advice")
}

func TestBuildEmpty(t *testing.T) {
	text := Build(nil, 4, time.Now())
	assert.Contains(t, text, "Counts: 0")
}

func TestEventsForDigestWindow(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewService(entClient, &fakeSender{})

	now := time.Now().UTC()
	recent := createEvent(t, entClient, "macro_econ", "Recent event.", 60, now.Add(-time.Hour))
	old := createEvent(t, entClient, "macro_econ", "Old event.", 60, now.Add(-10*time.Hour))

	// An old event whose event_time falls inside the window still appears.
	revived, err := entClient.Event.Create().
		SetEventFingerprint("fp-revived").
		SetTopic("equities").
		SetSummary("Old report of a fresh event.").
		SetEventTime(now.Add(-time.Hour)).
		SetLastUpdatedAt(now.Add(-10 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	events, err := svc.EventsForDigest(ctx, 4)
	require.NoError(t, err)

	ids := make([]int, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	assert.Contains(t, ids, recent.ID)
	assert.Contains(t, ids, revived.ID)
	assert.NotContains(t, ids, old.ID)
}

func TestRunPublishesThenSkipsDuplicate(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	sender := &fakeSender{}
	svc := NewService(entClient, sender)

	fixed := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	createEvent(t, entClient, "macro_econ", "CPI printed at 3.1 percent.", 70, fixed.Add(-time.Hour))

	first, err := svc.Run(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, first.Status)
	require.NotNil(t, first.PublishedPostID)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "CPI printed at 3.1 percent.")
	assert.Len(t, first.EventIDs, 1)

	// Identical content within the window is not re-sent.
	second, err := svc.Run(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, StatusSkippedDuplicate, second.Status)
	assert.Equal(t, first.ContentHash, second.ContentHash)
	assert.Len(t, sender.sent, 1)

	posts, err := entClient.PublishedPost.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, posts)
}

func TestRunSenderFailureDoesNotRecordPost(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	sender := &fakeSender{err: assert.AnError}
	svc := NewService(entClient, sender)

	_, err := svc.Run(ctx, 4)
	require.Error(t, err)

	posts, err := entClient.PublishedPost.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, posts)
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
