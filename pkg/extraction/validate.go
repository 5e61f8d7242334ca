package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/civicquant/pipeline/pkg/models"
)

// Validation error kinds.
const (
	ErrKindInvalidJSON = "invalid_json"
	ErrKindSchemaError = "schema_error"
)

// ValidationError reports a model output that failed strict validation.
type ValidationError struct {
	Kind   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func invalidJSON(detail string) *ValidationError {
	return &ValidationError{Kind: ErrKindInvalidJSON, Detail: detail}
}

func schemaError(detail string) *ValidationError {
	return &ValidationError{Kind: ErrKindSchemaError, Detail: detail}
}

// requiredFields is the exact top-level field set the model must return.
var requiredFields = []string{
	"topic",
	"entities",
	"affected_countries_first_order",
	"market_stats",
	"sentiment",
	"confidence",
	"impact_score",
	"is_breaking",
	"breaking_window",
	"event_time",
	"source_claimed",
	"summary_1_sentence",
	"keywords",
	"event_fingerprint",
}

// wireExtraction mirrors ExtractionPayload but keeps event_time as a raw
// string so non-RFC3339 timestamps the model emits can still be parsed.
type wireExtraction struct {
	Topic                       string              `json:"topic"`
	Entities                    models.Entities     `json:"entities"`
	AffectedCountriesFirstOrder []string            `json:"affected_countries_first_order"`
	MarketStats                 []models.MarketStat `json:"market_stats"`
	Sentiment                   string              `json:"sentiment"`
	Confidence                  float64             `json:"confidence"`
	ImpactScore                 float64             `json:"impact_score"`
	IsBreaking                  bool                `json:"is_breaking"`
	BreakingWindow              string              `json:"breaking_window"`
	EventTime                   *string             `json:"event_time"`
	SourceClaimed               *string             `json:"source_claimed"`
	Summary                     string              `json:"summary_1_sentence"`
	Keywords                    []string            `json:"keywords"`
	EventFingerprint            string              `json:"event_fingerprint"`
}

var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseEventTime(raw string) (*time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable event_time %q", raw)
}

// ParseAndValidate parses raw model text into a validated payload. The
// root must be an object carrying exactly the required fields; semantic
// ranges are enforced on the numeric and enumerated fields.
func ParseAndValidate(rawText string) (*models.ExtractionPayload, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rawText), &root); err != nil {
		var probe any
		if uerr := json.Unmarshal([]byte(rawText), &probe); uerr != nil {
			return nil, invalidJSON(uerr.Error())
		}
		return nil, invalidJSON("root must be object")
	}

	for _, field := range requiredFields {
		if _, ok := root[field]; !ok {
			return nil, schemaError(fmt.Sprintf("missing required field %q", field))
		}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(rawText)))
	dec.DisallowUnknownFields()
	var wire wireExtraction
	if err := dec.Decode(&wire); err != nil {
		return nil, schemaError(err.Error())
	}

	if !models.Topics[wire.Topic] {
		return nil, schemaError(fmt.Sprintf("unknown topic %q", wire.Topic))
	}
	if !models.Sentiments[wire.Sentiment] {
		return nil, schemaError(fmt.Sprintf("unknown sentiment %q", wire.Sentiment))
	}
	if !models.BreakingWindows[wire.BreakingWindow] {
		return nil, schemaError(fmt.Sprintf("unknown breaking_window %q", wire.BreakingWindow))
	}
	if wire.Confidence < 0 || wire.Confidence > 1 {
		return nil, schemaError(fmt.Sprintf("confidence %v outside [0,1]", wire.Confidence))
	}
	if wire.ImpactScore < 0 || wire.ImpactScore > 100 {
		return nil, schemaError(fmt.Sprintf("impact_score %v outside [0,100]", wire.ImpactScore))
	}
	if wire.EventFingerprint == "" {
		return nil, schemaError("event_fingerprint must be non-empty")
	}

	var eventTime *time.Time
	if wire.EventTime != nil && *wire.EventTime != "" {
		parsed, err := parseEventTime(*wire.EventTime)
		if err != nil {
			return nil, schemaError(err.Error())
		}
		eventTime = parsed
	}

	payload := &models.ExtractionPayload{
		Topic:                       wire.Topic,
		Entities:                    wire.Entities,
		AffectedCountriesFirstOrder: wire.AffectedCountriesFirstOrder,
		MarketStats:                 wire.MarketStats,
		Sentiment:                   wire.Sentiment,
		Confidence:                  wire.Confidence,
		ImpactScore:                 wire.ImpactScore,
		IsBreaking:                  wire.IsBreaking,
		BreakingWindow:              wire.BreakingWindow,
		EventTime:                   eventTime,
		SourceClaimed:               wire.SourceClaimed,
		Summary:                     wire.Summary,
		Keywords:                    wire.Keywords,
		EventFingerprint:            wire.EventFingerprint,
	}
	return payload, nil
}
