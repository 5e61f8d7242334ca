// Feed listener — polls the source channel and forwards new posts to the
// ingest API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/listener"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	if settings.BotToken == "" || settings.SourceChannel == "" {
		slog.Error("TG_BOT_TOKEN and TG_SOURCE_CHANNEL must be set")
		os.Exit(1)
	}
	if settings.IngestAPIBaseURL == "" {
		slog.Error("INGEST_API_BASE_URL must be set")
		os.Exit(1)
	}

	pollInterval := 60 * time.Second
	if raw := os.Getenv("TG_POLL_INTERVAL_S"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			slog.Error("Invalid TG_POLL_INTERVAL_S", "value", raw)
			os.Exit(1)
		}
		pollInterval = time.Duration(seconds) * time.Second
	}

	source := listener.NewBotSource(settings.BotToken, settings.SourceChannel)
	poster := listener.NewPoster(settings.IngestAPIBaseURL)
	runner := listener.NewRunner(source, poster, pollInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	slog.Info("Listener starting",
		"source_channel", settings.SourceChannel,
		"poll_interval", pollInterval.String())

	if err := runner.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("Listener stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Listener stopped")
}
