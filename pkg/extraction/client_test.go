package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"id": "resp-123",
		"choices": []map[string]any{
			{"message": map[string]any{"content": text}},
		},
	})
	return string(body)
}

func blockResponse(segments ...string) string {
	blocks := make([]map[string]any, 0, len(segments))
	for _, s := range segments {
		blocks = append(blocks, map[string]any{"type": "text", "text": s})
	}
	body, _ := json.Marshal(map[string]any{
		"id": "resp-456",
		"choices": []map[string]any{
			{"message": map[string]any{"content": blocks}},
		},
	})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", "test-model", 5*time.Second, maxRetries, WithEndpoint(server.URL))
}

func TestExtractFlatStringShape(t *testing.T) {
	var sawAuth atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(flatResponse(`{"topic":"other"}`)))
	}, 0)

	resp, err := client.Extract(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, `{"topic":"other"}`, resp.RawText)
	assert.Equal(t, "test-model", resp.ModelName)
	assert.Equal(t, "resp-123", resp.ResponseID)
	assert.Equal(t, 0, resp.Retries)
	assert.True(t, resp.UsedExternalModel)
	assert.Equal(t, "Bearer test-key", sawAuth.Load())
}

func TestExtractContentBlockShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(blockResponse(`{"topic":`, `"other"}`)))
	}, 0)

	resp, err := client.Extract(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `{"topic":"other"}`, resp.RawText)
}

func TestExtractSendsDeterministicRequest(t *testing.T) {
	var captured atomic.Value
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		captured.Store(body)
		w.Write([]byte(flatResponse("{}")))
	}, 0)

	_, err := client.Extract(context.Background(), "the prompt")
	require.NoError(t, err)

	body := captured.Load().(map[string]any)
	assert.Equal(t, "test-model", body["model"])
	assert.Equal(t, float64(0), body["temperature"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
	messages := body["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "the prompt", messages[1].(map[string]any)["content"])
}

func TestExtractRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(flatResponse("ok")))
	}, 2)

	resp, err := client.Extract(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Retries)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, 1)

	_, err := client.Extract(context.Background(), "prompt")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "status_error", perr.Kind)
	assert.Equal(t, int32(2), calls.Load(), "max_retries=1 means exactly 2 attempts")
}

func TestExtractEmptyContentIsProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(flatResponse("   ")))
	}, 0)

	_, err := client.Extract(context.Background(), "prompt")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "empty_response", perr.Kind)
}

func TestExtractUndecodableBodyIsProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}, 0)

	_, err := client.Extract(context.Background(), "prompt")
	require.Error(t, err)

	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "decode_error", perr.Kind)
}
