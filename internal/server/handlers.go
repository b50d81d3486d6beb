package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentiquery/internal/clients"
	"github.com/spacesedan/sentiquery/internal/sentiment"
)

type errorResponse struct {
	Error string `json:"error"`
}

// AnalyzeQuery handles GET /api/v1/sentiment?subject=...&qualifier=...
func (h *Handler) AnalyzeQuery(c *gin.Context) {
	subject := c.Query("subject")
	qualifier := c.Query("qualifier")

	summary, err := h.analyzer.AnalyzeQuery(c.Request.Context(), subject, qualifier)
	if err != nil {
		c.JSON(statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	if !h.scorerHealthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "scorer": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "scorer": "healthy"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, sentiment.ErrEmptySubject):
		return http.StatusBadRequest
	case errors.Is(err, clients.ErrSourceUnavailable), errors.Is(err, clients.ErrMalformedResponse):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
