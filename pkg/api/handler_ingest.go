package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IngestTelegram stores one feed message. Duplicates return 200 with the
// original row's id; faults roll back and return 500.
func (s *Server) IngestTelegram(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := s.ingest.Ingest(c.Request.Context(), req.toMessage())
	if err != nil {
		s.logger.Error("ingest_failed",
			"request_id", c.GetString("request_id"),
			"source_channel_id", req.SourceChannelID,
			"upstream_message_id", req.UpstreamMessageID,
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "ingest failed"})
		return
	}

	s.logger.Info("ingest_ok",
		"request_id", c.GetString("request_id"),
		"source_channel_id", req.SourceChannelID,
		"upstream_message_id", req.UpstreamMessageID,
		"raw_message_id", result.RawMessageID,
		"status", result.Status)

	c.JSON(http.StatusOK, IngestResponse{
		Status:       result.Status,
		RawMessageID: result.RawMessageID,
		EventID:      result.EventID,
	})
}
