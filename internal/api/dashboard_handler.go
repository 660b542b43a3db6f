package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/empowerhub/empowerhub-api/internal/api/shared"
	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/service"
)

// DashboardHandler serves the aggregated dashboard and history views.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given dependencies.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET /api/dashboard.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	view, err := h.dashboardService.Dashboard(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DashboardResponse{
		Success:   true,
		Dashboard: view,
	})
}

// History handles GET /api/history/{category}.
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Invalid category")
		return
	}

	entries, err := h.dashboardService.History(r.Context(), userID, category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HistoryResponse{
		Success:  true,
		Category: string(category),
		History:  entries,
	})
}
