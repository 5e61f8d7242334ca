package listener

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu      sync.Mutex
	batches [][]Message
	errs    []error
	polls   int
}

func (f *fakeSource) Poll(context.Context) ([]Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.polls
	f.polls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.batches) {
		return f.batches[i], nil
	}
	return nil, nil
}

func TestPollOnceForwardsInOrder(t *testing.T) {
	var mu sync.Mutex
	var received []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload ingestPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		received = append(received, payload.UpstreamMessageID)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := &fakeSource{batches: [][]Message{{
		{ID: 1, ChannelID: "-1", Timestamp: time.Now().UTC(), Text: "first"},
		{ID: 2, ChannelID: "-1", Timestamp: time.Now().UTC(), Text: "second"},
	}}}
	runner := NewRunner(src, fastPoster(srv.URL), time.Minute)

	runner.PollOnce(context.Background())
	assert.Equal(t, []string{"1", "2"}, received)
}

func TestPollOnceSurvivesPollError(t *testing.T) {
	src := &fakeSource{errs: []error{errors.New("flood wait")}}
	runner := NewRunner(src, fastPoster("http://127.0.0.1:0"), time.Minute)

	runner.PollOnce(context.Background())
	assert.Equal(t, 1, src.polls)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	src := &fakeSource{}
	runner := NewRunner(src, fastPoster(srv.URL), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return src.polls >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
}
