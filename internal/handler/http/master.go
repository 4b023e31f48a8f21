package http

import (
	"net/http"

	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	masterService "github.com/sailshr/hrms-backend-go/internal/service/master"
)

type MasterHandler interface {
	Departments(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService *masterService.MasterService
}

func NewMasterHandler(svc *masterService.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: svc}
}

// Departments implements MasterHandler.
func (h *MasterHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, departments)
}

// Overview implements MasterHandler.
func (h *MasterHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.masterService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, overview)
}
