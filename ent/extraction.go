// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/rawmessage"
)

// Extraction is the model entity for the Extraction schema.
type Extraction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RawMessageID holds the value of the "raw_message_id" field.
	RawMessageID int `json:"raw_message_id,omitempty"`
	// ExtractorName holds the value of the "extractor_name" field.
	ExtractorName string `json:"extractor_name,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion int `json:"schema_version,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// EventTime holds the value of the "event_time" field.
	EventTime *time.Time `json:"event_time,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// ImpactScore holds the value of the "impact_score" field.
	ImpactScore *float64 `json:"impact_score,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Sentiment holds the value of the "sentiment" field.
	Sentiment string `json:"sentiment,omitempty"`
	// IsBreaking holds the value of the "is_breaking" field.
	IsBreaking bool `json:"is_breaking,omitempty"`
	// BreakingWindow holds the value of the "breaking_window" field.
	BreakingWindow string `json:"breaking_window,omitempty"`
	// EventFingerprint holds the value of the "event_fingerprint" field.
	EventFingerprint string `json:"event_fingerprint,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion string `json:"prompt_version,omitempty"`
	// ProcessingRunID holds the value of the "processing_run_id" field.
	ProcessingRunID string `json:"processing_run_id,omitempty"`
	// LlmRawResponse holds the value of the "llm_raw_response" field.
	LlmRawResponse string `json:"llm_raw_response,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// Validated model output, pre-canonicalization
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CanonicalPayload holds the value of the "canonical_payload" field.
	CanonicalPayload map[string]interface{} `json:"canonical_payload,omitempty"`
	// Latency, retries, provider response id, canonicalization rules
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionQuery when eager-loading is set.
	Edges        ExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionEdges holds the relations/edges for other nodes in the graph.
type ExtractionEdges struct {
	// RawMessage holds the value of the raw_message edge.
	RawMessage *RawMessage `json:"raw_message,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RawMessageOrErr returns the RawMessage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionEdges) RawMessageOrErr() (*RawMessage, error) {
	if e.RawMessage != nil {
		return e.RawMessage, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw_message"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Extraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraction.FieldPayload, extraction.FieldCanonicalPayload, extraction.FieldMetadata:
			values[i] = new([]byte)
		case extraction.FieldIsBreaking:
			values[i] = new(sql.NullBool)
		case extraction.FieldImpactScore, extraction.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extraction.FieldID, extraction.FieldRawMessageID, extraction.FieldSchemaVersion:
			values[i] = new(sql.NullInt64)
		case extraction.FieldExtractorName, extraction.FieldModelName, extraction.FieldTopic, extraction.FieldSentiment, extraction.FieldBreakingWindow, extraction.FieldEventFingerprint, extraction.FieldPromptVersion, extraction.FieldProcessingRunID, extraction.FieldLlmRawResponse:
			values[i] = new(sql.NullString)
		case extraction.FieldEventTime, extraction.FieldValidatedAt, extraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Extraction fields.
func (_m *Extraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extraction.FieldRawMessageID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_message_id", values[i])
			} else if value.Valid {
				_m.RawMessageID = int(value.Int64)
			}
		case extraction.FieldExtractorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extractor_name", values[i])
			} else if value.Valid {
				_m.ExtractorName = value.String
			}
		case extraction.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = int(value.Int64)
			}
		case extraction.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case extraction.FieldEventTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_time", values[i])
			} else if value.Valid {
				_m.EventTime = new(time.Time)
				*_m.EventTime = value.Time
			}
		case extraction.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case extraction.FieldImpactScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field impact_score", values[i])
			} else if value.Valid {
				_m.ImpactScore = new(float64)
				*_m.ImpactScore = value.Float64
			}
		case extraction.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case extraction.FieldSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sentiment", values[i])
			} else if value.Valid {
				_m.Sentiment = value.String
			}
		case extraction.FieldIsBreaking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_breaking", values[i])
			} else if value.Valid {
				_m.IsBreaking = value.Bool
			}
		case extraction.FieldBreakingWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field breaking_window", values[i])
			} else if value.Valid {
				_m.BreakingWindow = value.String
			}
		case extraction.FieldEventFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_fingerprint", values[i])
			} else if value.Valid {
				_m.EventFingerprint = value.String
			}
		case extraction.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		case extraction.FieldProcessingRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_run_id", values[i])
			} else if value.Valid {
				_m.ProcessingRunID = value.String
			}
		case extraction.FieldLlmRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_raw_response", values[i])
			} else if value.Valid {
				_m.LlmRawResponse = value.String
			}
		case extraction.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case extraction.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case extraction.FieldCanonicalPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CanonicalPayload); err != nil {
					return fmt.Errorf("unmarshal field canonical_payload: %w", err)
				}
			}
		case extraction.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case extraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Extraction.
// This includes values selected through modifiers, order, etc.
func (_m *Extraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawMessage queries the "raw_message" edge of the Extraction entity.
func (_m *Extraction) QueryRawMessage() *RawMessageQuery {
	return NewExtractionClient(_m.config).QueryRawMessage(_m)
}

// Update returns a builder for updating this Extraction.
// Note that you need to call Extraction.Unwrap() before calling this method if this Extraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Extraction) Update() *ExtractionUpdateOne {
	return NewExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Extraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Extraction) Unwrap() *Extraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Extraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Extraction) String() string {
	var builder strings.Builder
	builder.WriteString("Extraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_message_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMessageID))
	builder.WriteString(", ")
	builder.WriteString("extractor_name=")
	builder.WriteString(_m.ExtractorName)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaVersion))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	if v := _m.EventTime; v != nil {
		builder.WriteString("event_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	if v := _m.ImpactScore; v != nil {
		builder.WriteString("impact_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("sentiment=")
	builder.WriteString(_m.Sentiment)
	builder.WriteString(", ")
	builder.WriteString("is_breaking=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsBreaking))
	builder.WriteString(", ")
	builder.WriteString("breaking_window=")
	builder.WriteString(_m.BreakingWindow)
	builder.WriteString(", ")
	builder.WriteString("event_fingerprint=")
	builder.WriteString(_m.EventFingerprint)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteString(", ")
	builder.WriteString("processing_run_id=")
	builder.WriteString(_m.ProcessingRunID)
	builder.WriteString(", ")
	builder.WriteString("llm_raw_response=")
	builder.WriteString(_m.LlmRawResponse)
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("canonical_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanonicalPayload))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Extractions is a parsable slice of Extraction.
type Extractions []*Extraction
