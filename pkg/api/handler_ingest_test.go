package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestTelegramCreatesThenDuplicates(t *testing.T) {
	_, router, db := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/ingest/telegram", ingestBody("m-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var created IngestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "created", created.Status)
	assert.Nil(t, created.EventID)

	rec = doJSON(t, router, http.MethodPost, "/ingest/telegram", ingestBody("m-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dup IngestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dup))
	assert.Equal(t, "duplicate", dup.Status)
	assert.Equal(t, created.RawMessageID, dup.RawMessageID)

	count, err := db.RawMessage.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestTelegramRejectsInvalidBody(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/ingest/telegram", `{"raw_text": "x"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/ingest/telegram", "not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
