package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltlearn/backend/internal/api"
	"github.com/voltlearn/backend/internal/content"
	"github.com/voltlearn/backend/internal/infrastructure/config"
	"github.com/voltlearn/backend/internal/service"
	"github.com/voltlearn/backend/internal/store"

	_ "github.com/voltlearn/backend/docs" // generated swagger docs
)

// @title           VoltLearn API
// @version         1.0
// @description     Electrical training modules: inline checks and knowledge-check quizzes with recorded results.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	catalog, err := loadCatalog(cfg.ContentDir)
	if err != nil {
		logger.Error("failed to load content", "error", err, "dir", cfg.ContentDir)
		os.Exit(1)
	}
	logger.Info("content loaded", "modules", len(catalog.Modules()), "categories", len(catalog.Categories()))

	db, err := store.Open(context.Background(), store.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logger.Error("failed to open database", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	defer db.Close()

	recorder := service.NewRecorder(db, cfg.RecorderWorkers, logger)
	defer recorder.Close()

	sessions := service.NewSessionService(catalog, recorder, logger)
	handler := api.NewHandler(catalog, sessions, db, logger)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.NewRouter(handler, cfg.CORSOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Idle session eviction ───────────────────────────────────────
	go func() {
		ticker := time.NewTicker(sweepInterval(cfg.SessionIdleTimeout))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessions.EvictIdle(cfg.SessionIdleTimeout)
			}
		}
	}()

	ln, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		logger.Error("server failed to start", "error", err, "address", cfg.ServerAddress)
		os.Exit(1)
	}

	logger.Info("starting server", "address", ln.Addr().String())
	if err := serve(ctx, server, ln, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// serve runs server on ln until ctx is cancelled. It returns only once
// Shutdown has drained in-flight requests, so callers can release what
// the handlers use.
func serve(ctx context.Context, server *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}

// sweepInterval is how often idle sessions are looked for.
func sweepInterval(idle time.Duration) time.Duration {
	return max(idle/4, time.Second)
}

func loadCatalog(dir string) (*content.Catalog, error) {
	if dir == "" {
		return content.Builtin()
	}
	return content.LoadDir(dir)
}
