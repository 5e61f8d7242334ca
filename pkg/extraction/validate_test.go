package extraction

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayloadJSON(t *testing.T, mutate func(map[string]any)) string {
	t.Helper()
	payload := map[string]any{
		"topic": "central_banks",
		"entities": map[string]any{
			"countries": []string{"United States"},
			"orgs":      []string{"Federal Reserve"},
			"people":    []string{},
			"tickers":   []string{},
		},
		"affected_countries_first_order": []string{"United States"},
		"market_stats": []map[string]any{
			{"label": "rate cut", "value": 25.0, "unit": "bp", "context": nil},
		},
		"sentiment":          "neutral",
		"confidence":         0.9,
		"impact_score":       80.0,
		"is_breaking":        true,
		"breaking_window":    "1h",
		"event_time":         "2026-03-14T09:30:00Z",
		"source_claimed":     "Federal Reserve",
		"summary_1_sentence": "The Federal Reserve cut rates by 25bp.",
		"keywords":           []string{"fed", "rates"},
		"event_fingerprint":  "central_banks|federal reserve|United States|cuts_rates|policy_rate|25bp|2026-03-14|breaking",
	}
	if mutate != nil {
		mutate(payload)
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestParseAndValidateAccepts(t *testing.T) {
	payload, err := ParseAndValidate(validPayloadJSON(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "central_banks", payload.Topic)
	assert.Equal(t, []string{"United States"}, payload.Entities.Countries)
	assert.Equal(t, 0.9, payload.Confidence)
	assert.Equal(t, 80.0, payload.ImpactScore)
	require.NotNil(t, payload.EventTime)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), *payload.EventTime)
	require.NotNil(t, payload.SourceClaimed)
	assert.Equal(t, "Federal Reserve", *payload.SourceClaimed)
}

func TestParseAndValidateInvalidJSON(t *testing.T) {
	_, err := ParseAndValidate("{not json")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrKindInvalidJSON, verr.Kind)
}

func TestParseAndValidateRootMustBeObject(t *testing.T) {
	_, err := ParseAndValidate(`["a","b"]`)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrKindInvalidJSON, verr.Kind)
	assert.Contains(t, verr.Detail, "root must be object")
}

func TestParseAndValidateMissingField(t *testing.T) {
	_, err := ParseAndValidate(validPayloadJSON(t, func(p map[string]any) {
		delete(p, "event_fingerprint")
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrKindSchemaError, verr.Kind)
	assert.Contains(t, verr.Detail, "event_fingerprint")
}

func TestParseAndValidateUnknownField(t *testing.T) {
	_, err := ParseAndValidate(validPayloadJSON(t, func(p map[string]any) {
		p["surprise"] = "field"
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, ErrKindSchemaError, verr.Kind)
}

func TestParseAndValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"confidence above 1", func(p map[string]any) { p["confidence"] = 1.5 }},
		{"confidence below 0", func(p map[string]any) { p["confidence"] = -0.1 }},
		{"impact above 100", func(p map[string]any) { p["impact_score"] = 101.0 }},
		{"impact below 0", func(p map[string]any) { p["impact_score"] = -1.0 }},
		{"unknown topic", func(p map[string]any) { p["topic"] = "sports" }},
		{"unknown sentiment", func(p map[string]any) { p["sentiment"] = "angry" }},
		{"unknown breaking window", func(p map[string]any) { p["breaking_window"] = "2d" }},
		{"empty fingerprint", func(p map[string]any) { p["event_fingerprint"] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAndValidate(validPayloadJSON(t, tt.mutate))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, ErrKindSchemaError, verr.Kind)
		})
	}
}

func TestParseAndValidateTolerantEventTime(t *testing.T) {
	payload, err := ParseAndValidate(validPayloadJSON(t, func(p map[string]any) {
		p["event_time"] = "2026-03-14T09:30:00"
	}))
	require.NoError(t, err)
	require.NotNil(t, payload.EventTime)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), *payload.EventTime)
}

func TestParseAndValidateNullEventTime(t *testing.T) {
	payload, err := ParseAndValidate(validPayloadJSON(t, func(p map[string]any) {
		p["event_time"] = nil
	}))
	require.NoError(t, err)
	assert.Nil(t, payload.EventTime)
}
