package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultAttemptLimit = 20

type AttemptResponse struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	ModuleID    string    `json:"module_id" example:"bms-alarm-systems"`
	Score       int       `json:"score" example:"3"`
	Total       int       `json:"total" example:"4"`
	Percentage  int       `json:"percentage" example:"75"`
	Passed      bool      `json:"passed" example:"true"`
	CompletedAt time.Time `json:"completed_at"`
}

type ModuleStatsResponse struct {
	ModuleID      string                  `json:"module_id" example:"bms-alarm-systems"`
	Attempts      int                     `json:"attempts" example:"12"`
	Passes        int                     `json:"passes" example:"9"`
	PassRate      int                     `json:"pass_rate" example:"75"`
	AverageScore  int                     `json:"average_score" example:"78"`
	WeakestID     string                  `json:"weakest_question_id,omitempty" example:"bms-q3"`
	QuestionStats []QuestionStatsResponse `json:"question_stats"`
}

type QuestionStatsResponse struct {
	QuestionID    string `json:"question_id" example:"bms-q1"`
	TimesAnswered int    `json:"times_answered" example:"12"`
	TimesCorrect  int    `json:"times_correct" example:"10"`
	Accuracy      int    `json:"accuracy" example:"83"`
}

// persistenceEnabled writes a 503 when no store is configured.
func (h *Handler) persistenceEnabled(w http.ResponseWriter) bool {
	if h.store == nil {
		respondError(w, http.StatusServiceUnavailable, "attempt recording is disabled")
		return false
	}
	return true
}

// listAttempts lists a module's recorded attempts.
// @Summary      List recorded attempts
// @Description  List a module's submitted knowledge-check attempts, newest first.
// @Tags         Attempts
// @Produce      json
// @Param        moduleID  path      string  true   "Module ID"
// @Param        limit     query     int     false  "Maximum number of attempts"  default(20)
// @Success      200       {array}   AttemptResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      503       {object}  map[string]string
// @Router       /modules/{moduleID}/attempts [get]
func (h *Handler) listAttempts(w http.ResponseWriter, r *http.Request) {
	if !h.persistenceEnabled(w) {
		return
	}
	moduleID := chi.URLParam(r, "moduleID")
	if _, err := h.catalog.Module(moduleID); h.handleError(w, err, "module") {
		return
	}

	limit := defaultAttemptLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	attempts, err := h.store.ListAttempts(r.Context(), moduleID, limit)
	if h.handleError(w, err, "attempt") {
		return
	}
	resp := make([]AttemptResponse, len(attempts))
	for i, a := range attempts {
		resp[i] = AttemptResponse{
			ID:          a.ID,
			SessionID:   a.SessionID,
			ModuleID:    a.BankID,
			Score:       a.Score,
			Total:       a.Total,
			Percentage:  a.Percentage,
			Passed:      a.Passed,
			CompletedAt: a.CompletedAt,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getModuleStats aggregates a module's recorded attempts.
// @Summary      Get module statistics
// @Description  Pass rate, average score and per-question accuracy over recorded attempts.
// @Tags         Attempts
// @Produce      json
// @Param        moduleID  path      string  true  "Module ID"
// @Success      200       {object}  ModuleStatsResponse
// @Failure      404       {object}  map[string]string
// @Failure      503       {object}  map[string]string
// @Router       /modules/{moduleID}/stats [get]
func (h *Handler) getModuleStats(w http.ResponseWriter, r *http.Request) {
	if !h.persistenceEnabled(w) {
		return
	}
	moduleID := chi.URLParam(r, "moduleID")
	if _, err := h.catalog.Module(moduleID); h.handleError(w, err, "module") {
		return
	}

	stats, err := h.store.BankStats(r.Context(), moduleID)
	if h.handleError(w, err, "module") {
		return
	}

	resp := ModuleStatsResponse{
		ModuleID:      stats.BankID,
		Attempts:      stats.Attempts,
		Passes:        stats.Passes,
		PassRate:      stats.PassRate(),
		AverageScore:  stats.AverageScore,
		QuestionStats: make([]QuestionStatsResponse, len(stats.Questions)),
	}
	if weakest, ok := stats.Weakest(); ok {
		resp.WeakestID = weakest.QuestionID
	}
	for i, qs := range stats.Questions {
		resp.QuestionStats[i] = QuestionStatsResponse{
			QuestionID:    qs.QuestionID,
			TimesAnswered: qs.TimesAnswered,
			TimesCorrect:  qs.TimesCorrect,
			Accuracy:      qs.Accuracy(),
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
