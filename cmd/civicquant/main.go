// Civicquant pipeline server — HTTP API plus the background extraction
// and digest schedulers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/civicquant/pipeline/pkg/api"
	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/database"
	"github.com/civicquant/pipeline/pkg/digest"
	"github.com/civicquant/pipeline/pkg/extraction"
	"github.com/civicquant/pipeline/pkg/ingest"
	"github.com/civicquant/pipeline/pkg/processor"
	"github.com/civicquant/pipeline/pkg/publish"
	"github.com/civicquant/pipeline/pkg/version"
)

const (
	phase2Interval = time.Minute
	digestInterval = time.Hour
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

	routingCfg, err := config.LoadRoutingConfig(settings.RoutingConfigPath)
	if err != nil {
		slog.Error("Failed to load routing config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	var model extraction.ModelClient
	if settings.OpenAIAPIKey != "" {
		model = extraction.NewClient(
			settings.OpenAIAPIKey,
			settings.OpenAIModel,
			settings.OpenAITimeout,
			settings.OpenAIMaxRetries,
		)
		slog.Info("Model client initialized", "model", settings.OpenAIModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set, extraction runs will fail until configured")
	}

	ingestSvc := ingest.NewService(dbClient.Client)
	processorSvc := processor.NewService(dbClient.Client, model, *settings, routingCfg)
	sender := publish.NewTelegramSender(settings.BotToken, settings.VIPChatID)
	digestSvc := digest.NewService(dbClient.Client, sender)

	server := api.NewServer(dbClient, ingestSvc, processorSvc, digestSvc, *settings)

	addr := fmt.Sprintf("%s:%d", settings.APIHost, settings.APIPort)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	schedulerCtx, stopSchedulers := context.WithCancel(ctx)
	defer stopSchedulers()
	go runPhase2Scheduler(schedulerCtx, processorSvc, settings.Phase2ExtractionEnabled)
	go runDigestScheduler(schedulerCtx, digestSvc, settings.VIPDigestHours)

	slog.Info("Civicquant started",
		"version", version.Full(),
		"phase2_enabled", settings.Phase2ExtractionEnabled,
		"digest_window_hours", settings.VIPDigestHours)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	stopSchedulers()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// runPhase2Scheduler drains the extraction backlog on a fixed interval.
// The advisory lock inside ProcessBatch keeps concurrent replicas safe.
func runPhase2Scheduler(ctx context.Context, svc *processor.Service, enabled bool) {
	if !enabled {
		slog.Info("Phase-2 scheduler disabled")
		return
	}

	ticker := time.NewTicker(phase2Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			summary, err := svc.ProcessBatch(ctx)
			if err != nil {
				slog.Error("Scheduled extraction run failed", "error", err)
				continue
			}
			if summary.Selected > 0 {
				slog.Info("Scheduled extraction run finished",
					"processing_run_id", summary.ProcessingRunID,
					"selected", summary.Selected,
					"completed", summary.Completed,
					"failed", summary.Failed)
			}
		}
	}
}

// runDigestScheduler publishes the VIP digest once per hour. The content
// hash inside Run suppresses duplicates when nothing changed.
func runDigestScheduler(ctx context.Context, svc *digest.Service, windowHours int) {
	ticker := time.NewTicker(digestInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := svc.Run(ctx, windowHours)
			if err != nil {
				slog.Error("Scheduled digest run failed", "error", err)
				continue
			}
			slog.Info("Scheduled digest run finished",
				"status", result.Status,
				"events", len(result.EventIDs))
		}
	}
}
