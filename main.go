// Recruiting pipeline dashboard service. Serves live candidate metrics
// computed on demand from the Notion candidate database.
package main

import (
	"fmt"
	"os"

	"github.com/Brommah/hvc/internal/api"
	"github.com/Brommah/hvc/internal/config"
	"github.com/Brommah/hvc/internal/handler"
	"github.com/Brommah/hvc/internal/logger"
	"github.com/Brommah/hvc/internal/notion"
	"github.com/Brommah/hvc/internal/profiling"
	"github.com/Brommah/hvc/internal/service"
	"github.com/Brommah/hvc/internal/telemetry"
)

const defaultConfigPath = "config.yml"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	profiling.StartPprofServer(log)

	return runServer(cfg, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger) int {
	metrics := telemetry.NewMetrics()

	storeOpts := []notion.Option{
		notion.WithTimeout(cfg.Notion.Timeout),
		notion.WithMetrics(metrics),
	}
	if cfg.Notion.BaseURL != "" {
		storeOpts = append(storeOpts, notion.WithBaseURL(cfg.Notion.BaseURL))
	}
	store := notion.NewClient(cfg.Notion.APIKey, log, storeOpts...)

	dashboard := service.NewDashboard(store, cfg.Notion.DatabaseID, log)
	dashboardHandler := handler.NewDashboardHandler(dashboard, log)

	// done signals background goroutines (rate limiter) on shutdown
	done := make(chan struct{})
	defer close(done)

	server := api.NewServer(cfg, dashboardHandler, metrics, log, done)

	log.Info("Dashboard starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("version", cfg.Service.Version),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Dashboard exited cleanly")
	return 0
}
