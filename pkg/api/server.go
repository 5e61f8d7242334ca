// Package api exposes the pipeline over HTTP: ingest, admin triggers for
// the extraction batch and digest, and health.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/civicquant/pipeline/pkg/config"
	"github.com/civicquant/pipeline/pkg/database"
	"github.com/civicquant/pipeline/pkg/digest"
	"github.com/civicquant/pipeline/pkg/ingest"
	"github.com/civicquant/pipeline/pkg/processor"
)

// Server wires the HTTP handlers to the pipeline services.
type Server struct {
	db        *database.Client
	ingest    *ingest.Service
	processor *processor.Service
	digest    *digest.Service
	settings  config.Settings
	logger    *slog.Logger
}

// NewServer creates the API server.
func NewServer(db *database.Client, ingestSvc *ingest.Service, processorSvc *processor.Service, digestSvc *digest.Service, settings config.Settings) *Server {
	return &Server{
		db:        db,
		ingest:    ingestSvc,
		processor: processorSvc,
		digest:    digestSvc,
		settings:  settings,
		logger:    slog.Default().With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())

	r.GET("/health", s.Health)
	r.POST("/ingest/telegram", s.IngestTelegram)

	admin := r.Group("/admin", s.adminAuth())
	admin.POST("/process/phase2-extractions", s.TriggerPhase2Extractions)
	admin.POST("/digest/run", s.RunDigest)
	admin.POST("/maintenance/clear-derived", s.ClearDerived)

	return r
}
