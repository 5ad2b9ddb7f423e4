package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "THREADS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "ACCESS_LOG", "METRICS_ADDR", "BODY_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Threads != 8 {
		t.Errorf("Threads = %d, want 8", cfg.Threads)
	}
	if cfg.ServerAddr() != ":8080" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), ":8080")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.LogFormat != "text" || cfg.LogLevel != "info" {
		t.Errorf("logging = %q/%q, want text/info", cfg.LogFormat, cfg.LogLevel)
	}
	if cfg.AccessLog {
		t.Error("AccessLog should default to false outside development")
	}
	if cfg.BodyLimit != 4<<20 {
		t.Errorf("BodyLimit = %d, want %d", cfg.BodyLimit, 4<<20)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("THREADS", "32")
	t.Setenv("ENV", "development")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("BODY_LIMIT", "67108864")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr() != ":9090" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), ":9090")
	}
	if cfg.Threads != 32 {
		t.Errorf("Threads = %d, want 32", cfg.Threads)
	}
	if !cfg.AccessLog {
		t.Error("AccessLog should be enabled in development")
	}
	if cfg.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %q, want %q", cfg.MetricsAddr, ":9100")
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
	if cfg.BodyLimit != 64<<20 {
		t.Errorf("BodyLimit = %d, want %d", cfg.BodyLimit, 64<<20)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric port", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"non numeric threads", "THREADS", "many"},
		{"zero threads", "THREADS", "0"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"zero body limit", "BODY_LIMIT", "0"},
		{"non numeric body limit", "BODY_LIMIT", "big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded, want error", tt.key, tt.value)
			}
		})
	}
}
