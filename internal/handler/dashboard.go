// Package handler exposes the dashboard views over HTTP. Every endpoint is a
// read-only GET returning a uniform response envelope.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/service"
)

// DashboardService is the view-assembly boundary, satisfied by
// *service.Dashboard.
type DashboardService interface {
	OverdueCandidates(ctx context.Context) (*service.FollowupResponse, error)
	PendingReview(ctx context.Context) (*service.PendingReviewResponse, error)
	AwaitingReview(ctx context.Context) (*service.AwaitingReviewResponse, error)
	CEOMetrics(ctx context.Context) (*service.CEOMetricsResponse, error)
}

// Envelope is the uniform response shape for all dashboard endpoints.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DashboardHandler handles the dashboard API requests.
type DashboardHandler struct {
	service DashboardService
	logger  logger.Logger
}

// NewDashboardHandler creates a DashboardHandler with the given dependencies.
func NewDashboardHandler(svc DashboardService, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: svc, logger: log}
}

// Candidates returns high-value candidates overdue for followup.
func (h *DashboardHandler) Candidates(c *gin.Context) {
	data, err := h.service.OverdueCandidates(c.Request.Context())
	if err != nil {
		h.respondError(c, "candidates", err)
		return
	}
	respondOK(c, data)
}

// PendingReview returns the AI-processed human-review queue.
func (h *DashboardHandler) PendingReview(c *gin.Context) {
	data, err := h.service.PendingReview(c.Request.Context())
	if err != nil {
		h.respondError(c, "pending-review", err)
		return
	}
	respondOK(c, data)
}

// AwaitingReview returns the CV-verification queue.
func (h *DashboardHandler) AwaitingReview(c *gin.Context) {
	data, err := h.service.AwaitingReview(c.Request.Context())
	if err != nil {
		h.respondError(c, "awaiting-review", err)
		return
	}
	respondOK(c, data)
}

// CEOMetrics returns the executive metrics bundle.
func (h *DashboardHandler) CEOMetrics(c *gin.Context) {
	data, err := h.service.CEOMetrics(c.Request.Context())
	if err != nil {
		h.respondError(c, "ceo-metrics", err)
		return
	}
	respondOK(c, data)
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError logs the failure with its view name and returns a 500. The
// envelope carries the error message so the dashboard can surface it.
func (h *DashboardHandler) respondError(c *gin.Context, view string, err error) {
	h.logger.Error("view assembly failed",
		logger.String("view", view),
		logger.Error(err),
	)
	c.JSON(http.StatusInternalServerError, Envelope{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
