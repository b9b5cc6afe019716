package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://localhost/voltlearn")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RECORDER_WORKERS", "4")
	t.Setenv("CONTENT_DIR", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "30m")

	cfg := Load()

	if cfg.ServerAddress != ":9090" || cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected server settings: %+v", cfg)
	}
	if cfg.DBDriver != "postgres" || cfg.DBDSN != "postgres://localhost/voltlearn" {
		t.Errorf("unexpected db settings: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if cfg.RecorderWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.RecorderWorkers)
	}
	if cfg.SessionIdleTimeout != 30*time.Minute {
		t.Errorf("expected 30m idle timeout, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.ContentDir != "" {
		t.Errorf("expected embedded content by default, got %q", cfg.ContentDir)
	}
}

func TestDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RECORDER_WORKERS", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")

	cfg := Load()

	if cfg.DBDriver != "sqlite" || cfg.DBDSN != "voltlearn.db" {
		t.Errorf("unexpected db defaults: %s %s", cfg.DBDriver, cfg.DBDSN)
	}
	if cfg.RecorderWorkers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.RecorderWorkers)
	}
	if cfg.SessionIdleTimeout != 2*time.Hour {
		t.Errorf("expected 2h idle timeout, got %s", cfg.SessionIdleTimeout)
	}
	if len(cfg.CORSOrigins) != 1 {
		t.Errorf("expected default origin, got %v", cfg.CORSOrigins)
	}
}
