// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voltlearn/backend/internal/content"
	"github.com/voltlearn/backend/internal/domain/quizsession"
	"github.com/voltlearn/backend/internal/service"
	"github.com/voltlearn/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	catalog  *content.Catalog
	sessions *service.SessionService
	store    store.Store // nil when attempts are not persisted
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(catalog *content.Catalog, sessions *service.SessionService, s store.Store, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
		store:    s,
		logger:   logger,
	}
}

// validator is implemented by request bodies that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg} with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeAndValidate decodes the request body into v and validates it.
// It writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError maps domain and store errors onto HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, content.ErrModuleNotFound),
		errors.Is(err, content.ErrCategoryNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrCheckNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrNotCompleted):
		respondError(w, http.StatusConflict, "session not completed")
	case errors.Is(err, quizsession.ErrNoQuestions):
		respondError(w, http.StatusBadRequest, "no questions match the requested filters")
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
