package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Content
	ContentDir string // empty = modules embedded in the binary

	// Persistence of completed quiz attempts
	DBDriver string // "sqlite" or "postgres"
	DBDSN    string

	CORSOrigins     []string
	RecorderWorkers int

	// Live sessions and checks untouched this long are dropped.
	SessionIdleTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		ContentDir:      os.Getenv("CONTENT_DIR"),
		DBDriver:        getenvDefault("DB_DRIVER", "sqlite"),
		DBDSN:           getenvDefault("DB_DSN", "voltlearn.db"),
		CORSOrigins:     getenvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		RecorderWorkers: getenvInt("RECORDER_WORKERS", 2),

		SessionIdleTimeout: getDurationDefault("SESSION_IDLE_TIMEOUT", 2*time.Hour),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("config: %s=%q must be a positive duration", k, v)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q must be a positive integer", k, v)
	}
	return n
}

func getenvList(k string, fallback []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
