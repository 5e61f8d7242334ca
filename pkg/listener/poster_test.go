package listener

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	name := "Macro Wire"
	return Message{
		ID:          42,
		ChannelID:   "-1001234",
		ChannelName: &name,
		Timestamp:   time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Text:        "CPI prints 3.1%",
	}
}

func fastPoster(baseURL string) *Poster {
	return NewPoster(baseURL, WithBackoff(time.Millisecond, time.Millisecond))
}

func TestPostSendsIngestPayload(t *testing.T) {
	var captured ingestPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ingest/telegram", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := fastPoster(srv.URL).Post(context.Background(), testMessage())
	require.NoError(t, err)

	assert.Equal(t, "-1001234", captured.SourceChannelID)
	require.NotNil(t, captured.SourceChannelName)
	assert.Equal(t, "Macro Wire", *captured.SourceChannelName)
	assert.Equal(t, "42", captured.UpstreamMessageID)
	assert.Equal(t, "2026-08-24T10:30:00Z", captured.MessageTimestampUTC)
	assert.Equal(t, "CPI prints 3.1%", captured.RawText)
	assert.Nil(t, captured.ForwardedFrom)
}

func TestPostRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := fastPoster(srv.URL).Post(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPostRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := fastPoster(srv.URL).Post(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPostTerminalRejectionIsSwallowed(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := fastPoster(srv.URL).Post(context.Background(), testMessage())
	assert.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPostExhaustedRetriesReturnError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := fastPoster(srv.URL).Post(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Equal(t, int32(5), calls.Load())
}

func TestPostHonorsMaxAttemptsOption(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewPoster(srv.URL, WithBackoff(time.Millisecond, time.Millisecond), WithMaxAttempts(2))
	err := p.Post(context.Background(), testMessage())
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
