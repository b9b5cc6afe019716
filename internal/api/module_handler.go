package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voltlearn/backend/internal/domain/questionbank"
)

// ── Response types ──────────────────────────────────────────────────────────

type ModuleResponse struct {
	ID            string `json:"id" example:"bms-alarm-systems"`
	Title         string `json:"title" example:"BMS Alarm Systems"`
	Category      string `json:"category" example:"Building Services"`
	QuestionCount int    `json:"question_count" example:"4"`
	PassThreshold int    `json:"pass_threshold" example:"75"`
	TimeLimitSecs int    `json:"time_limit_seconds,omitempty" example:"900"`
	CheckCount    int    `json:"check_count" example:"2"`
}

type PageMetaResponse struct {
	Title       string   `json:"title" example:"BMS Alarm Systems | VoltLearn"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// CheckSummaryResponse lists an inline check without its answer key.
type CheckSummaryResponse struct {
	QuestionID string   `json:"question_id" example:"bms-check-1"`
	Prompt     string   `json:"prompt" example:"What is the first action on an unacknowledged critical alarm?"`
	Options    []string `json:"options"`
}

type GetModuleResponse struct {
	ModuleResponse
	Meta       PageMetaResponse       `json:"meta"`
	Sections   []string               `json:"sections"`
	Categories []string               `json:"categories"`
	Checks     []CheckSummaryResponse `json:"checks"`
}

type CategoryResponse struct {
	ID        string   `json:"id" example:"building-services"`
	Name      string   `json:"name" example:"Building Services"`
	ModuleIDs []string `json:"module_ids"`
}

func toModuleResponse(b *questionbank.QuestionBank) ModuleResponse {
	count := b.Exam.QuestionCount
	if count <= 0 || count > len(b.Questions) {
		count = len(b.Questions)
	}
	return ModuleResponse{
		ID:            b.ID,
		Title:         b.Title,
		Category:      b.Category,
		QuestionCount: count,
		PassThreshold: b.Exam.Threshold(),
		TimeLimitSecs: int(b.Exam.TimeLimit.Seconds()),
		CheckCount:    len(b.Checks),
	}
}

func sectionsOf(questions []questionbank.Question) []string {
	seen := make(map[string]bool)
	sections := []string{}
	for _, q := range questions {
		if q.Section == "" || seen[q.Section] {
			continue
		}
		seen[q.Section] = true
		sections = append(sections, q.Section)
	}
	return sections
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listModules lists every training module.
// @Summary      List modules
// @Description  List every training module with its knowledge-check settings.
// @Tags         Modules
// @Produce      json
// @Success      200  {array}   ModuleResponse
// @Router       /modules [get]
func (h *Handler) listModules(w http.ResponseWriter, r *http.Request) {
	banks := h.catalog.Modules()
	resp := make([]ModuleResponse, len(banks))
	for i, b := range banks {
		resp[i] = toModuleResponse(b)
	}
	respondJSON(w, http.StatusOK, resp)
}

// getModule returns one module with its inline checks.
// @Summary      Get a module
// @Description  Get a module's metadata, quiz sections and inline checks. Answer keys are not included.
// @Tags         Modules
// @Produce      json
// @Param        moduleID  path      string  true  "Module ID"
// @Success      200       {object}  GetModuleResponse
// @Failure      404       {object}  map[string]string
// @Router       /modules/{moduleID} [get]
func (h *Handler) getModule(w http.ResponseWriter, r *http.Request) {
	b, err := h.catalog.Module(chi.URLParam(r, "moduleID"))
	if h.handleError(w, err, "module") {
		return
	}

	keywords := b.Meta.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	resp := GetModuleResponse{
		ModuleResponse: toModuleResponse(b),
		Meta: PageMetaResponse{
			Title:       b.Meta.Title,
			Description: b.Meta.Description,
			Keywords:    keywords,
		},
		Sections:   sectionsOf(b.Questions),
		Categories: b.Exam.Categories,
		Checks:     make([]CheckSummaryResponse, len(b.Checks)),
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for i, q := range b.Checks {
		resp.Checks[i] = CheckSummaryResponse{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Options:    q.Options,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}
