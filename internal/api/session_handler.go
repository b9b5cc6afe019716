package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltlearn/backend/internal/domain/questionbank"
	"github.com/voltlearn/backend/internal/domain/quizsession"
	"github.com/voltlearn/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	ModuleID          string             `json:"module_id" example:"bms-alarm-systems"`
	MaxQuestions      *int               `json:"max_questions,omitempty" example:"4"`
	Shuffle           bool               `json:"shuffle" example:"true"`
	Section           string             `json:"section,omitempty" example:"Alarm handling"`
	Difficulty        string             `json:"difficulty,omitempty" example:"intermediate"`
	Balanced          map[string]float64 `json:"balanced,omitempty"`
	BalanceCategories bool               `json:"balance_categories,omitempty" example:"true"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.ModuleID == "" {
		return errors.New("module_id is required")
	}
	if r.MaxQuestions != nil && *r.MaxQuestions < 1 {
		return errors.New("max_questions must be at least 1")
	}
	if r.Difficulty != "" && !questionbank.Difficulty(r.Difficulty).Valid() {
		return errors.New("invalid difficulty: must be basic, intermediate, or advanced")
	}
	for level, share := range r.Balanced {
		if level == "" || !questionbank.Difficulty(level).Valid() {
			return fmt.Errorf("invalid balanced level %q: must be basic, intermediate, or advanced", level)
		}
		if !(share >= 0 && share <= 1) {
			return fmt.Errorf("balanced share for %q must be between 0 and 1", level)
		}
	}
	return nil
}

func (r *CreateSessionRequest) config() quizsession.SessionConfig {
	cfg := quizsession.SessionConfig{
		MaxQuestions: r.MaxQuestions,
		Shuffle:      r.Shuffle,
		Section:      r.Section,
		Difficulty:   questionbank.Difficulty(r.Difficulty),

		BalanceCategories: r.BalanceCategories,
	}
	if len(r.Balanced) > 0 {
		cfg.Balanced = make(quizsession.DifficultyMix, len(r.Balanced))
		for level, share := range r.Balanced {
			cfg.Balanced[questionbank.Difficulty(level)] = share
		}
	}
	return cfg
}

type SelectOptionRequest struct {
	QuestionIndex *int `json:"question_index,omitempty" example:"0"`
	OptionIndex   *int `json:"option_index" example:"2"`
}

func (r *SelectOptionRequest) Validate() error {
	if r.OptionIndex == nil {
		return errors.New("option_index is required")
	}
	return nil
}

type QuestionResponse struct {
	ID      string   `json:"id" example:"bms-q1"`
	Prompt  string   `json:"prompt" example:"Which alarm priority requires immediate attendance?"`
	Options []string `json:"options"`
	Section string   `json:"section,omitempty" example:"Alarm handling"`
	Topic   string   `json:"topic,omitempty"`
}

type SessionResponse struct {
	ID              string           `json:"id" example:"3f2a9c1e7b5d4a6f8e0c2b4d6f8a0c2e"`
	ModuleID        string           `json:"module_id" example:"bms-alarm-systems"`
	State           string           `json:"state" example:"in_progress"`
	CurrentIndex    int              `json:"current_index" example:"0"`
	Total           int              `json:"total" example:"4"`
	Question        QuestionResponse `json:"question"`
	SelectedIndex   *int             `json:"selected_index"`
	Answered        int              `json:"answered" example:"1"`
	NextEnabled     bool             `json:"next_enabled" example:"true"`
	PreviousEnabled bool             `json:"previous_enabled" example:"false"`
	CanSubmit       bool             `json:"can_submit" example:"false"`
	Score           *int             `json:"score,omitempty"`
	PassThreshold   int              `json:"pass_threshold" example:"75"`
	TimeLimitSecs   int              `json:"time_limit_seconds,omitempty" example:"900"`
}

// TransitionResponse is returned by every session action. Applied is false
// when the action was not valid in the session's current state; the session
// is then unchanged.
type TransitionResponse struct {
	Applied bool `json:"applied" example:"true"`
	SessionResponse
}

type SummaryItemResponse struct {
	Index       int    `json:"index" example:"0"`
	QuestionID  string `json:"question_id" example:"bms-q1"`
	Prompt      string `json:"prompt"`
	Chosen      int    `json:"chosen" example:"1"`
	ChosenText  string `json:"chosen_text"`
	Correct     bool   `json:"correct" example:"false"`
	CorrectText string `json:"correct_text,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type SummaryResponse struct {
	SessionID     string                `json:"session_id"`
	ModuleID      string                `json:"module_id" example:"bms-alarm-systems"`
	Score         int                   `json:"score" example:"3"`
	Total         int                   `json:"total" example:"4"`
	Percentage    int                   `json:"percentage" example:"75"`
	PassThreshold int                   `json:"pass_threshold" example:"75"`
	Passed        bool                  `json:"passed" example:"true"`
	Items         []SummaryItemResponse `json:"items"`
}

func toSessionResponse(v service.SessionView) SessionResponse {
	return SessionResponse{
		ID:           v.ID,
		ModuleID:     v.ModuleID,
		State:        v.State.String(),
		CurrentIndex: v.CurrentIndex,
		Total:        v.Total,
		Question: QuestionResponse{
			ID:      v.Question.ID,
			Prompt:  v.Question.Prompt,
			Options: v.Question.Options,
			Section: v.Question.Section,
			Topic:   v.Question.Topic,
		},
		SelectedIndex:   v.Selected,
		Answered:        v.Answered,
		NextEnabled:     v.NextEnabled,
		PreviousEnabled: v.PreviousEnabled,
		CanSubmit:       v.CanSubmit,
		Score:           v.Score,
		PassThreshold:   v.PassThreshold,
		TimeLimitSecs:   int(v.TimeLimit.Seconds()),
	}
}

func toSummaryResponse(s quizsession.Summary) SummaryResponse {
	resp := SummaryResponse{
		SessionID:     s.SessionID,
		ModuleID:      s.BankID,
		Score:         s.Score,
		Total:         s.Total,
		Percentage:    s.Percentage,
		PassThreshold: s.PassThreshold,
		Passed:        s.Passed,
		Items:         make([]SummaryItemResponse, len(s.Items)),
	}
	for i, item := range s.Items {
		resp.Items[i] = SummaryItemResponse{
			Index:       item.Index,
			QuestionID:  item.QuestionID,
			Prompt:      item.Prompt,
			Chosen:      item.Chosen,
			ChosenText:  item.ChosenText,
			Correct:     item.Correct,
			CorrectText: item.CorrectText,
			Explanation: item.Explanation,
		}
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a knowledge-check quiz.
// @Summary      Start a knowledge-check session
// @Description  Build a quiz from a module's questions and start at the first one. balance_categories spreads the questions across the module's exam categories; balanced sets the difficulty shares (0 to 1) within them.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session options"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "module not found"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.sessions.CreateSession(req.ModuleID, req.config())
	if h.handleError(w, err, "module") {
		return
	}
	respondJSON(w, http.StatusCreated, toSessionResponse(view))
}

// getSession returns the current state of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Session(chi.URLParam(r, "sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// selectOption records an answer.
// @Summary      Select an option
// @Description  Answer the current question, or the question at question_index. Answers may be changed until the session is submitted.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SelectOptionRequest  true  "Selection"
// @Success      200        {object}  TransitionResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectOptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	view, applied, err := h.sessions.Select(chi.URLParam(r, "sessionID"), req.QuestionIndex, *req.OptionIndex)
	h.respondTransition(w, view, applied, err)
}

// nextQuestion advances to the next question.
// @Summary      Go to the next question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  TransitionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	view, applied, err := h.sessions.Next(chi.URLParam(r, "sessionID"))
	h.respondTransition(w, view, applied, err)
}

// previousQuestion goes back one question.
// @Summary      Go to the previous question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  TransitionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/previous [post]
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	view, applied, err := h.sessions.Previous(chi.URLParam(r, "sessionID"))
	h.respondTransition(w, view, applied, err)
}

// submitSession scores the quiz.
// @Summary      Submit a session
// @Description  Complete the quiz. Only applied on the last question with every question answered.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  TransitionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/submit [post]
func (h *Handler) submitSession(w http.ResponseWriter, r *http.Request) {
	view, applied, err := h.sessions.Submit(chi.URLParam(r, "sessionID"))
	h.respondTransition(w, view, applied, err)
}

// restartSession clears every answer and returns to the first question.
// @Summary      Restart a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  TransitionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/restart [post]
func (h *Handler) restartSession(w http.ResponseWriter, r *http.Request) {
	view, applied, err := h.sessions.Restart(chi.URLParam(r, "sessionID"))
	h.respondTransition(w, view, applied, err)
}

// getSummary returns the results of a submitted session.
// @Summary      Get a session summary
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SummaryResponse
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string  "session not completed"
// @Router       /sessions/{sessionID}/summary [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sessions.Summary(chi.URLParam(r, "sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// discardSession drops a session.
// @Summary      Discard a session
// @Description  Drop a session, as when the learner leaves the page. Recorded attempts are kept.
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) discardSession(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Discard(chi.URLParam(r, "sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondTransition(w http.ResponseWriter, view service.SessionView, applied bool, err error) {
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, TransitionResponse{
		Applied:         applied,
		SessionResponse: toSessionResponse(view),
	})
}
