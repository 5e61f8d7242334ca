// Package listener polls a feed source and forwards new messages to the
// ingest API.
package listener

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Message is one feed message ready for ingestion.
type Message struct {
	ID            int64
	ChannelID     string
	ChannelName   *string
	Timestamp     time.Time
	Text          string
	ForwardedFrom *string
}

type ingestPayload struct {
	SourceChannelID     string  `json:"source_channel_id"`
	SourceChannelName   *string `json:"source_channel_name"`
	UpstreamMessageID   string  `json:"upstream_message_id"`
	MessageTimestampUTC string  `json:"message_timestamp_utc"`
	RawText             string  `json:"raw_text"`
	ForwardedFrom       *string `json:"forwarded_from,omitempty"`
}

// Poster delivers messages to the ingest endpoint with retries. Transport
// errors, 429 and 5xx are retried with doubling backoff capped at 30s;
// other 4xx are terminal.
type Poster struct {
	ingestURL   string
	httpClient  *http.Client
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	logger      *slog.Logger
}

// PosterOption customizes the poster.
type PosterOption func(*Poster)

// WithPosterHTTPClient overrides the HTTP client.
func WithPosterHTTPClient(hc *http.Client) PosterOption {
	return func(p *Poster) { p.httpClient = hc }
}

// WithBackoff overrides the retry backoff bounds.
func WithBackoff(base, max time.Duration) PosterOption {
	return func(p *Poster) {
		p.baseBackoff = base
		p.maxBackoff = max
	}
}

// WithMaxAttempts overrides the attempt budget.
func WithMaxAttempts(n int) PosterOption {
	return func(p *Poster) { p.maxAttempts = n }
}

// NewPoster creates a poster for the ingest API at baseURL.
func NewPoster(baseURL string, opts ...PosterOption) *Poster {
	p := &Poster{
		ingestURL:   strings.TrimRight(baseURL, "/") + "/ingest/telegram",
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		maxAttempts: 5,
		baseBackoff: time.Second,
		maxBackoff:  30 * time.Second,
		logger:      slog.Default().With("component", "listener_poster"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Post sends one message. A terminal rejection is logged and swallowed so
// one bad message never stalls the feed; exhausted retries return an error.
func (p *Poster) Post(ctx context.Context, msg Message) error {
	payload := ingestPayload{
		SourceChannelID:     msg.ChannelID,
		SourceChannelName:   msg.ChannelName,
		UpstreamMessageID:   fmt.Sprintf("%d", msg.ID),
		MessageTimestampUTC: msg.Timestamp.UTC().Format(time.RFC3339),
		RawText:             msg.Text,
		ForwardedFrom:       msg.ForwardedFrom,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode ingest payload: %w", err)
	}

	backoff := p.baseBackoff
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		retryable, err := p.attempt(ctx, body, msg.ID, attempt)
		if err == nil {
			return nil
		}
		if !retryable {
			p.logger.Error("post_nonretryable", "upstream_message_id", msg.ID, "attempt", attempt, "error", err)
			return nil
		}
		if attempt == p.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > p.maxBackoff {
			backoff = p.maxBackoff
		}
	}

	p.logger.Error("post_failed", "upstream_message_id", msg.ID, "attempts", p.maxAttempts)
	return fmt.Errorf("ingest post failed after %d attempts", p.maxAttempts)
}

func (p *Poster) attempt(ctx context.Context, body []byte, msgID int64, attempt int) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.ingestURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build ingest request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Warn("post_error", "upstream_message_id", msgID, "attempt", attempt, "error", err)
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		p.logger.Info("post_ok", "upstream_message_id", msgID, "attempt", attempt, "status", resp.StatusCode)
		return false, nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		p.logger.Warn("post_retryable",
			"upstream_message_id", msgID,
			"attempt", attempt,
			"status", resp.StatusCode,
			"body", string(snippet))
		return true, fmt.Errorf("ingest returned status %d", resp.StatusCode)
	}
	return false, fmt.Errorf("ingest returned status %d: %s", resp.StatusCode, string(snippet))
}
