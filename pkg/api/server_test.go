package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/database"
	"github.com/civicquant/pipeline/pkg/digest"
	"github.com/civicquant/pipeline/pkg/extraction"
	"github.com/civicquant/pipeline/pkg/ingest"
	"github.com/civicquant/pipeline/pkg/processor"
	"github.com/civicquant/pipeline/pkg/routing"
	"github.com/civicquant/pipeline/test/util"
)

const adminToken = "test-admin-token"

const testModelJSON = `{
	"topic": "macro_econ",
	"entities": {"countries": ["United States"], "orgs": [], "people": [], "tickers": []},
	"affected_countries_first_order": ["United States"],
	"market_stats": [],
	"sentiment": "neutral",
	"confidence": 0.9,
	"impact_score": 75,
	"is_breaking": false,
	"breaking_window": "none",
	"event_time": "2026-08-24T10:00:00Z",
	"source_claimed": "Bureau of Labor Statistics",
	"summary_1_sentence": "The bureau said CPI printed at 3.1 percent in July.",
	"keywords": ["cpi"],
	"event_fingerprint": "macro_econ|bls|United States|print|cpi|3.1%|2026-08-24|"
}`

type stubModel struct{ rawText string }

func (m *stubModel) Extract(ctx context.Context, promptText string) (*extraction.Response, error) {
	return &extraction.Response{
		ExtractorName:     "openai_chat",
		UsedExternalModel: true,
		ModelName:         "gpt-4o-mini",
		RawText:           m.rawText,
	}, nil
}

type stubSender struct{ sent []string }

func (s *stubSender) Send(ctx context.Context, text string) error {
	s.sent = append(s.sent, text)
	return nil
}

func newTestServer(t *testing.T) (*Server, *gin.Engine, *database.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	entClient, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, db)

	settings := config.Settings{
		VIPDigestHours:             4,
		Phase2ExtractionEnabled:    true,
		Phase2BatchSize:            50,
		Phase2LeaseSeconds:         600,
		Phase2SchedulerLockSeconds: 540,
		Phase2AdminToken:           adminToken,
	}

	srv := NewServer(
		dbClient,
		ingest.NewService(entClient),
		processor.NewService(entClient, &stubModel{rawText: testModelJSON}, settings, routing.DefaultConfig()),
		digest.NewService(entClient, &stubSender{}),
		settings,
	)
	return srv, srv.Router(), dbClient
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagation(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "", map[string]string{
		"X-Request-ID": "req-123",
	})
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", map[string]string{
		"x-admin-token": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthRejectsWhenTokenUnconfigured(t *testing.T) {
	srv, _, _ := newTestServer(t)
	srv.settings.Phase2AdminToken = ""
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/admin/process/phase2-extractions", "", map[string]string{
		"x-admin-token": "",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func ingestBody(upstreamID string) string {
	ts := time.Now().UTC().Format(time.RFC3339)
	return `{
		"source_channel_id": "chan-1",
		"source_channel_name": "Macro Wire",
		"upstream_message_id": "` + upstreamID + `",
		"message_timestamp_utc": "` + ts + `",
		"raw_text": "CPI printed at 3.1 percent in July"
	}`
}
