package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Role lookup cache
	RoleCacheTTL time.Duration

	// Dashboard metrics cache
	MetricsCacheTTL time.Duration

	// Audit recorder
	AuditQueueSize int

	// Advisory escalation job
	EscalationEnabled  bool
	EscalationSchedule string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		EscalationSchedule: getEnv("ESCALATION_SCHEDULE", "@every 15m"),
	}

	roleCacheTTL, err := strconv.Atoi(getEnv("ROLE_CACHE_TTL", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROLE_CACHE_TTL: %w", err)
	}
	cfg.RoleCacheTTL = time.Duration(roleCacheTTL) * time.Second

	metricsCacheTTL, err := strconv.Atoi(getEnv("METRICS_CACHE_TTL", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_CACHE_TTL: %w", err)
	}
	cfg.MetricsCacheTTL = time.Duration(metricsCacheTTL) * time.Second

	cfg.AuditQueueSize, err = strconv.Atoi(getEnv("AUDIT_QUEUE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUDIT_QUEUE_SIZE: %w", err)
	}

	cfg.EscalationEnabled = getEnv("ESCALATION_ENABLED", "true") == "true"

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
