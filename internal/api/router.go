// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires every route of the API behind the middleware chain
// RequestID → RealIP → Logging → Recoverer → CORS.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, Logging(h.logger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Catalog
	r.Get("/modules", h.listModules)
	r.Get("/modules/{moduleID}", h.getModule)
	r.Get("/categories", h.listCategories)
	r.Get("/categories/{categoryID}/modules", h.listModulesByCategory)

	// Inline checks
	r.Post("/modules/{moduleID}/checks/{questionID}", h.createCheck)
	r.Get("/checks/{checkID}", h.getCheck)
	r.Post("/checks/{checkID}/select", h.selectCheckOption)

	// Knowledge-check sessions
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", h.createSession)
		sr.Get("/{sessionID}", h.getSession)
		sr.Delete("/{sessionID}", h.discardSession)
		sr.Post("/{sessionID}/select", h.selectOption)
		sr.Post("/{sessionID}/next", h.nextQuestion)
		sr.Post("/{sessionID}/previous", h.previousQuestion)
		sr.Post("/{sessionID}/submit", h.submitSession)
		sr.Post("/{sessionID}/restart", h.restartSession)
		sr.Get("/{sessionID}/summary", h.getSummary)
	})

	// Recorded attempts
	r.Get("/modules/{moduleID}/attempts", h.listAttempts)
	r.Get("/modules/{moduleID}/stats", h.getModuleStats)

	// Swagger UI served at /swagger/
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Logging logs one line per request with its status and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
