package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultBodyLimit = 4 << 20

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	Port    int // env: PORT, default: 8080
	Threads int // env: THREADS, default: 8; max concurrently executing handlers

	ShutdownTimeout time.Duration // env: SHUTDOWN_TIMEOUT, default: 10s

	// Largest accepted request body in bytes. Larger bodies are rejected with 413.
	BodyLimit int // env: BODY_LIMIT, default: 4 MiB

	// Logging
	LogLevel  string // env: LOG_LEVEL, default: "info"
	LogFormat string // env: LOG_FORMAT, "text" or "json"
	AccessLog bool   // env: ACCESS_LOG, enabled by default in development

	// Admin listener serving the Prometheus client exposition, disabled when empty
	MetricsAddr string // env: METRICS_ADDR
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}

	threads, err := getEnvInt("THREADS", 8)
	if err != nil {
		return nil, err
	}

	bodyLimit, err := getEnvInt("BODY_LIMIT", defaultBodyLimit)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Env:             getEnv("ENV", "production"),
		Port:            port,
		Threads:         threads,
		ShutdownTimeout: shutdownTimeout,
		BodyLimit:       bodyLimit,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		MetricsAddr:     getEnv("METRICS_ADDR", ""),
	}
	cfg.AccessLog = getEnv("ACCESS_LOG", "") != "" || cfg.IsDev()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that the environment parser cannot express.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Port)
	}
	if c.Threads < 1 {
		return fmt.Errorf("invalid THREADS %d: must be at least 1", c.Threads)
	}
	if c.BodyLimit < 1 {
		return fmt.Errorf("invalid BODY_LIMIT %d: must be at least 1", c.BodyLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %v: must be positive", c.ShutdownTimeout)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

// ServerAddr returns the listen address for the configured port.
func (c *Config) ServerAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
