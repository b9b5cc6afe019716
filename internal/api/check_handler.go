package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltlearn/backend/internal/service"
)

type SelectCheckRequest struct {
	OptionIndex *int `json:"option_index" example:"1"`
}

func (r *SelectCheckRequest) Validate() error {
	if r.OptionIndex == nil {
		return errors.New("option_index is required")
	}
	return nil
}

type CheckOptionResponse struct {
	Index    int    `json:"index" example:"0"`
	Text     string `json:"text"`
	Selected bool   `json:"selected" example:"false"`
	Mark     string `json:"mark" example:"none" enums:"none,correct,incorrect"`
	Disabled bool   `json:"disabled" example:"false"`
}

type CheckResponse struct {
	ID          string                `json:"id"`
	ModuleID    string                `json:"module_id" example:"bms-alarm-systems"`
	QuestionID  string                `json:"question_id" example:"bms-check-1"`
	Prompt      string                `json:"prompt"`
	State       string                `json:"state" example:"unanswered" enums:"unanswered,answered"`
	Options     []CheckOptionResponse `json:"options"`
	Correct     *bool                 `json:"correct,omitempty"`
	Explanation string                `json:"explanation,omitempty"`
}

type CheckTransitionResponse struct {
	Applied bool `json:"applied" example:"true"`
	CheckResponse
}

func toCheckResponse(v service.CheckView) CheckResponse {
	resp := CheckResponse{
		ID:          v.ID,
		ModuleID:    v.ModuleID,
		QuestionID:  v.QuestionID,
		Prompt:      v.Prompt,
		State:       v.State.String(),
		Options:     make([]CheckOptionResponse, len(v.Options)),
		Correct:     v.Correct,
		Explanation: v.Explanation,
	}
	for i, o := range v.Options {
		resp.Options[i] = CheckOptionResponse{
			Index:    o.Index,
			Text:     o.Text,
			Selected: o.Selected,
			Mark:     o.Mark.String(),
			Disabled: o.Disabled,
		}
	}
	return resp
}

// createCheck starts an inline check.
// @Summary      Start an inline check
// @Description  Create a fresh, unanswered instance of one of a module's inline checks.
// @Tags         Checks
// @Produce      json
// @Param        moduleID    path      string  true  "Module ID"
// @Param        questionID  path      string  true  "Check question ID"
// @Success      201         {object}  CheckResponse
// @Failure      404         {object}  map[string]string
// @Router       /modules/{moduleID}/checks/{questionID} [post]
func (h *Handler) createCheck(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.CreateCheck(chi.URLParam(r, "moduleID"), chi.URLParam(r, "questionID"))
	if h.handleError(w, err, "check") {
		return
	}
	respondJSON(w, http.StatusCreated, toCheckResponse(view))
}

// getCheck returns an inline check.
// @Summary      Get an inline check
// @Tags         Checks
// @Produce      json
// @Param        checkID  path      string  true  "Check ID"
// @Success      200      {object}  CheckResponse
// @Failure      404      {object}  map[string]string
// @Router       /checks/{checkID} [get]
func (h *Handler) getCheck(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Check(chi.URLParam(r, "checkID"))
	if h.handleError(w, err, "check") {
		return
	}
	respondJSON(w, http.StatusOK, toCheckResponse(view))
}

// selectCheckOption answers an inline check.
// @Summary      Answer an inline check
// @Description  The first selection locks the check and reveals the result. Later selections are not applied.
// @Tags         Checks
// @Accept       json
// @Produce      json
// @Param        checkID  path      string              true  "Check ID"
// @Param        body     body      SelectCheckRequest  true  "Selection"
// @Success      200      {object}  CheckTransitionResponse
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /checks/{checkID}/select [post]
func (h *Handler) selectCheckOption(w http.ResponseWriter, r *http.Request) {
	var req SelectCheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	view, applied, err := h.sessions.SelectCheck(chi.URLParam(r, "checkID"), *req.OptionIndex)
	if h.handleError(w, err, "check") {
		return
	}
	respondJSON(w, http.StatusOK, CheckTransitionResponse{
		Applied:       applied,
		CheckResponse: toCheckResponse(view),
	})
}
