package listener

import (
	"context"
	"log/slog"
	"time"
)

// Runner polls the source on an interval and forwards every new message.
// A poll failure is logged and retried on the next tick.
type Runner struct {
	source   Source
	poster   *Poster
	interval time.Duration
	logger   *slog.Logger
}

// NewRunner creates a runner.
func NewRunner(source Source, poster *Poster, interval time.Duration) *Runner {
	return &Runner{
		source:   source,
		poster:   poster,
		interval: interval,
		logger:   slog.Default().With("component", "listener"),
	}
}

// Run polls until the context is canceled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("listener_started", "poll_interval", r.interval.String())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.PollOnce(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// PollOnce fetches and forwards one batch of new messages.
func (r *Runner) PollOnce(ctx context.Context) {
	messages, err := r.source.Poll(ctx)
	if err != nil {
		r.logger.Warn("poll_error", "error", err)
		return
	}

	for _, msg := range messages {
		r.logger.Info("feed_message_received",
			"upstream_message_id", msg.ID,
			"timestamp", msg.Timestamp,
			"preview", preview(msg.Text))
		if err := r.poster.Post(ctx, msg); err != nil {
			r.logger.Error("forward_failed", "upstream_message_id", msg.ID, "error", err)
		}
	}
}

func preview(text string) string {
	const max = 120
	out := make([]rune, 0, max)
	for _, r := range text {
		if r == '\n' {
			r = ' '
		}
		out = append(out, r)
		if len(out) == max {
			break
		}
	}
	return string(out)
}
