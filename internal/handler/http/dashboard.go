package http

import (
	"net/http"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the headline counts for the caller's scope
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	scope, ok := requestScope(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
