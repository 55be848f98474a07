// Package config loads runtime settings for the standalone CLI from the
// environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	MetricsDump bool
}

func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if raw := os.Getenv("METRICS_DUMP"); raw != "" {
		dump, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("METRICS_DUMP must be a boolean: %w", err)
		}
		cfg.MetricsDump = dump
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
