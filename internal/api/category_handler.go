package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listCategories lists every course category.
// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	resp := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = CategoryResponse{ID: c.ID, Name: c.Name, ModuleIDs: c.ModuleIDs}
	}
	respondJSON(w, http.StatusOK, resp)
}

// listModulesByCategory lists the modules of one category.
// @Summary      List modules in a category
// @Tags         Categories
// @Produce      json
// @Param        categoryID  path      string  true  "Category ID"
// @Success      200         {array}   ModuleResponse
// @Failure      404         {object}  map[string]string
// @Router       /categories/{categoryID}/modules [get]
func (h *Handler) listModulesByCategory(w http.ResponseWriter, r *http.Request) {
	banks, err := h.catalog.ModulesInCategory(chi.URLParam(r, "categoryID"))
	if h.handleError(w, err, "category") {
		return
	}
	resp := make([]ModuleResponse, len(banks))
	for i, b := range banks {
		resp[i] = toModuleResponse(b)
	}
	respondJSON(w, http.StatusOK, resp)
}
