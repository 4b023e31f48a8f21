package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	employeeService "github.com/sailshr/hrms-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService *employeeService.EmployeeService
}

func NewEmployeeHandler(svc *employeeService.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: svc}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.OK(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var payload employee.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Employee create decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.employeeService.Create(r.Context(), payload)
	if err != nil {
		slog.Error("Employee create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "id", created.ID)
	response.Created(w, created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload employee.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Employee update decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, payload)
	if err != nil {
		slog.Error("Employee update service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.OK(w, updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.employeeService.Delete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "id", id)
	response.OK(w, deleted)
}
