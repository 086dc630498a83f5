package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brommah/hvc/internal/api"
	"github.com/Brommah/hvc/internal/config"
	"github.com/Brommah/hvc/internal/handler"
	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/service"
	"github.com/Brommah/hvc/internal/telemetry"
)

type emptyService struct{}

func (emptyService) OverdueCandidates(context.Context) (*service.FollowupResponse, error) {
	return &service.FollowupResponse{}, nil
}

func (emptyService) PendingReview(context.Context) (*service.PendingReviewResponse, error) {
	return &service.PendingReviewResponse{}, nil
}

func (emptyService) AwaitingReview(context.Context) (*service.AwaitingReviewResponse, error) {
	return &service.AwaitingReviewResponse{}, nil
}

func (emptyService) CEOMetrics(context.Context) (*service.CEOMetricsResponse, error) {
	return &service.CEOMetricsResponse{}, nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{}
	cfg.Service.Name = "pipeline-dashboard"
	cfg.Service.Version = "test"
	cfg.RateLimit.MaxRequestsPerMinute = 1000
	cfg.RateLimit.WindowSeconds = 60

	log := logger.NewNop()
	dashboard := handler.NewDashboardHandler(emptyService{}, log)

	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	api.SetupRoutes(router, cfg, dashboard, telemetry.NewMetrics(), log, done)
	return router
}

func TestRoutes_Registered(t *testing.T) {
	router := setupRouter(t)

	paths := []string{
		"/health",
		"/metrics",
		"/api/candidates",
		"/api/pending-review",
		"/api/awaiting-review",
		"/api/ceo-metrics",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", http.NoBody)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
