package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Brommah/hvc/internal/config"
	"github.com/Brommah/hvc/internal/handler"
	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/middleware"
	"github.com/Brommah/hvc/internal/telemetry"
)

// SetupRoutes applies the standard middleware chain and registers all
// routes. Recovery runs first to catch panics from everything after it.
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	dashboard *handler.DashboardHandler,
	metrics *telemetry.Metrics,
	log logger.Logger,
	done <-chan struct{},
) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(metrics.Middleware())

	health := handler.NewHealthHandler(cfg.Service.Name, cfg.Service.Version)
	router.GET("/health", health.HealthCheck)
	router.HEAD("/health", health.HealthCheck)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	rateLimitWindow := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second

	views := router.Group("/api")
	views.Use(middleware.RateLimiter(cfg.RateLimit.MaxRequestsPerMinute, rateLimitWindow, done))
	views.GET("/candidates", dashboard.Candidates)
	views.GET("/pending-review", dashboard.PendingReview)
	views.GET("/awaiting-review", dashboard.AwaitingReview)
	views.GET("/ceo-metrics", dashboard.CEOMetrics)
}
