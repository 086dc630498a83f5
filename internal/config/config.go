// Package config loads the dashboard service configuration from a YAML file
// with environment variable overrides. A .env file is loaded first when
// present, so local development does not require exporting secrets.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName  = "pipeline-dashboard"
	defaultServicePort  = 8094
	defaultVersion      = "0.1.0"
	defaultLoggingLevel = "info"
	defaultLoggingFmt   = "json"

	defaultNotionTimeoutS = 30

	defaultMaxRequestsPerMinute = 60
	defaultWindowSeconds        = 60
)

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Notion    NotionConfig    `yaml:"notion"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
	Debug   bool   `yaml:"debug"`
}

// NotionConfig holds the remote candidate database connection settings.
type NotionConfig struct {
	APIKey     string        `yaml:"api_key"`
	DatabaseID string        `yaml:"database_id"`
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
}

// RateLimitConfig holds rate limiting configuration. The dashboard refetches
// the full candidate set on every request, so the limiter caps fan-out
// against the upstream store.
type RateLimitConfig struct {
	MaxRequestsPerMinute int `yaml:"max_requests_per_minute"`
	WindowSeconds        int `yaml:"window_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the YAML config at path, applies defaults, then applies
// environment variable overrides (env always wins). A missing config file is
// not an error; the service can run on env vars alone.
func Load(path string) (*Config, error) {
	// .env is optional; only a malformed file is fatal.
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parse config: %w", unmarshalErr)
		}
	case os.IsNotExist(err):
		// Fall through to defaults + env.
	default:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	setDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Notion.Timeout == 0 {
		cfg.Notion.Timeout = defaultNotionTimeoutS * time.Second
	}
	if cfg.RateLimit.MaxRequestsPerMinute == 0 {
		cfg.RateLimit.MaxRequestsPerMinute = defaultMaxRequestsPerMinute
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = defaultWindowSeconds
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLoggingFmt
	}
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Notion.APIKey, "NOTION_API_KEY")
	overrideString(&cfg.Notion.DatabaseID, "NOTION_DATABASE_ID")
	overrideString(&cfg.Notion.BaseURL, "NOTION_BASE_URL")
	overrideInt(&cfg.Service.Port, "DASHBOARD_PORT")
	overrideBool(&cfg.Service.Debug, "APP_DEBUG")
	overrideString(&cfg.Logging.Level, "LOG_LEVEL")
	overrideString(&cfg.Logging.Format, "LOG_FORMAT")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// ValidationError describes a configuration field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Message)
}

// Validate checks that required connection settings are present. Missing
// credentials fail fast here rather than on the first upstream call.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: "must be between 1 and 65535"}
	}
	if c.Notion.APIKey == "" {
		return &ValidationError{Field: "notion.api_key", Message: "is required (NOTION_API_KEY)"}
	}
	if c.Notion.DatabaseID == "" {
		return &ValidationError{Field: "notion.database_id", Message: "is required (NOTION_DATABASE_ID)"}
	}
	return nil
}
