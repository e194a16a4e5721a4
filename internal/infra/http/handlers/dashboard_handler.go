package handlers

import (
	"context"
	"net/http"

	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
	"github.com/jcarter-pt/traincrm/internal/usecase"
)

type DashboardProvider interface {
	Execute(ctx context.Context, userID string) (*usecase.DashboardStats, error)
}

type DashboardHandler struct {
	Dashboard DashboardProvider
}

func NewDashboardHandler(dashboard DashboardProvider) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	stats, err := h.Dashboard.Execute(r.Context(), user.ID)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondData(w, http.StatusOK, stats)
}
