package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	leaveService "github.com/sailshr/hrms-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Mine(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	PendingApprovals(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Balances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.LeaveService
}

func NewLeaveHandler(svc *leaveService.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: svc}
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.leaveService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// Mine implements LeaveHandler.
func (h *LeaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.leaveService.Mine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var applyReq leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Leave apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.leaveService.Apply(r.Context(), userID, applyReq)
	if err != nil {
		slog.Error("Leave apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "id", created.ID, "employeeId", created.EmployeeID)
	response.Created(w, created)
}

// PendingApprovals implements LeaveHandler.
func (h *LeaveHandlerImpl) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	userID, role, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.leaveService.PendingApprovals(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	leaveID := chi.URLParam(r, "id")

	var decisionReq leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decisionReq); err != nil {
		slog.Error("Leave decision decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	decided, err := h.leaveService.Decide(r.Context(), userID, leaveID, decisionReq.Action)
	if err != nil {
		slog.Error("Leave decision service error", "error", err, "leaveId", leaveID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "id", decided.ID, "status", decided.Status)
	response.OK(w, decided)
}

// Balances implements LeaveHandler.
func (h *LeaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	userID, role, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.leaveService.Balances(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}
