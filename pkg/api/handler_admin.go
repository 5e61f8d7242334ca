package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicquant/pipeline/ent/processingstate"
)

// TriggerPhase2Extractions runs one extraction batch and returns its
// summary. A busy scheduler lock yields a zero-count summary.
func (s *Server) TriggerPhase2Extractions(c *gin.Context) {
	summary, err := s.processor.ProcessBatch(c.Request.Context())
	if err != nil {
		s.logger.Error("phase2_trigger_failed", "request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RunDigest builds and publishes the digest, defaulting to the configured
// window.
func (s *Server) RunDigest(c *gin.Context) {
	var req DigestRunRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	windowHours := s.settings.VIPDigestHours
	if req.WindowHours != nil && *req.WindowHours > 0 {
		windowHours = *req.WindowHours
	}

	result, err := s.digest.Run(c.Request.Context(), windowHours)
	if err != nil {
		s.logger.Error("digest_trigger_failed", "request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClearDerived deletes every derived table, keeps raw_messages, and resets
// processing states to pending so the pipeline can rebuild from scratch.
func (s *Server) ClearDerived(c *gin.Context) {
	resp, err := s.clearDerived(c.Request.Context())
	if err != nil {
		s.logger.Error("clear_derived_failed", "request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) clearDerived(ctx context.Context) (*ClearDerivedResponse, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()
	txc := tx.Client()

	// Order respects foreign keys: links and events before extractions.
	deletes := []func() error{
		func() error { _, err := txc.EventMessage.Delete().Exec(ctx); return err },
		func() error { _, err := txc.PublishedPost.Delete().Exec(ctx); return err },
		func() error { _, err := txc.EntityMention.Delete().Exec(ctx); return err },
		func() error { _, err := txc.Event.Delete().Exec(ctx); return err },
		func() error { _, err := txc.RoutingDecision.Delete().Exec(ctx); return err },
		func() error { _, err := txc.Extraction.Delete().Exec(ctx); return err },
		func() error { _, err := txc.ProcessingLock.Delete().Exec(ctx); return err },
	}
	for _, del := range deletes {
		if err := del(); err != nil {
			return nil, fmt.Errorf("failed to clear derived table: %w", err)
		}
	}

	reset, err := txc.ProcessingState.Update().
		SetStatus(processingstate.StatusPending).
		SetAttemptCount(0).
		ClearLastAttemptedAt().
		ClearCompletedAt().
		ClearLeaseExpiresAt().
		ClearLastError().
		ClearProcessingRunID().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset processing states: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit maintenance reset: %w", err)
	}

	s.logger.Info("clear_derived_done", "reset_states", reset)
	return &ClearDerivedResponse{
		Status:        "cleared",
		ClearedTables: len(deletes),
		ResetStates:   reset,
	}, nil
}
