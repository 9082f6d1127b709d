package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	// RequestTimeout bounds each individual bulletin fetch.
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string

	// MetricsAddr, when non-empty, serves /healthz and /metrics for the
	// duration of the run. Off by default; a one-shot invocation has
	// nothing worth scraping.
	MetricsAddr string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("METAR_TIMEOUT", "3s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid METAR_TIMEOUT %q", timeoutStr)
	}

	cfg := &Config{
		RequestTimeout: timeout,
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (allowed: text, json)", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
