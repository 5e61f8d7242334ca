package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/pkg/digest"
	"github.com/civicquant/pipeline/pkg/processor"
)

func adminHeaders() map[string]string {
	return map[string]string{"x-admin-token": adminToken}
}

func TestTriggerPhase2Extractions(t *testing.T) {
	_, router, db := newTestServer(t)
	ctx := context.Background()

	rec := doJSON(t, router, http.MethodPost, "/ingest/telegram", ingestBody("m-run"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var summary processor.RunSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.NotEmpty(t, summary.ProcessingRunID)
	assert.Equal(t, 1, summary.Selected)
	assert.Equal(t, 1, summary.Completed)

	events, err := db.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, events)
}

func TestRunDigestEndpoint(t *testing.T) {
	srv, _, db := newTestServer(t)
	sender := &stubSender{}
	srv.digest = digest.NewService(db.Client, sender)
	router := srv.Router()

	// Process a message so the digest has content.
	rec := doJSON(t, router, http.MethodPost, "/ingest/telegram", ingestBody("m-digest"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/admin/digest/run", `{"window_hours": 6}`, adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"published"`)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "last 6h")

	// An empty body falls back to the configured window.
	rec = doJSON(t, router, http.MethodPost, "/admin/digest/run", "", adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestClearDerivedEndpoint(t *testing.T) {
	_, router, db := newTestServer(t)
	ctx := context.Background()

	rec := doJSON(t, router, http.MethodPost, "/ingest/telegram", ingestBody("m-clear"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	events, err := db.Event.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, events)

	rec = doJSON(t, router, http.MethodPost, "/admin/maintenance/clear-derived", "", adminHeaders())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClearDerivedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cleared", resp.Status)
	assert.Equal(t, 1, resp.ResetStates)

	for name, count := range map[string]func() (int, error){
		"events":      func() (int, error) { return db.Event.Query().Count(ctx) },
		"extractions": func() (int, error) { return db.Extraction.Query().Count(ctx) },
		"routing":     func() (int, error) { return db.RoutingDecision.Query().Count(ctx) },
		"mentions":    func() (int, error) { return db.EntityMention.Query().Count(ctx) },
		"links":       func() (int, error) { return db.EventMessage.Query().Count(ctx) },
		"locks":       func() (int, error) { return db.ProcessingLock.Query().Count(ctx) },
	} {
		n, err := count()
		require.NoError(t, err, name)
		assert.Equal(t, 0, n, name)
	}

	// Raw messages survive; their states are pending again.
	raws, err := db.RawMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, raws)
	state, err := db.ProcessingState.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, processingstate.StatusPending, state.Status)
	assert.Equal(t, 0, state.AttemptCount)
	assert.Nil(t, state.CompletedAt)
}
