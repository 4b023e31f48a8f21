package http

import (
	"net/http"

	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	dashboardService "github.com/sailshr/hrms-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	HR(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.DashboardService
}

func NewDashboardHandler(svc *dashboardService.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: svc}
}

// HR implements DashboardHandler.
func (h *DashboardHandlerImpl) HR(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.HR(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, summary)
}
