package http

import (
	"log/slog"
	"net/http"

	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
	attendanceService "github.com/sailshr/hrms-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	PunchIn(w http.ResponseWriter, r *http.Request)
	PunchOut(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.AttendanceService
}

func NewAttendanceHandler(svc *attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: svc}
}

// PunchIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchIn(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.attendanceService.PunchIn(r.Context(), userID)
	if err != nil {
		slog.Error("Punch-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch-in recorded", "employeeId", rec.EmployeeID, "date", rec.Date)
	response.Created(w, rec)
}

// PunchOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) PunchOut(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rec, err := h.attendanceService.PunchOut(r.Context(), userID)
	if err != nil {
		slog.Error("Punch-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch-out recorded", "employeeId", rec.EmployeeID, "workHours", rec.WorkHours)
	response.OK(w, rec)
}

// Me implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID, _, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.attendanceService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	userID, role, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.attendanceService.Today(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// Team implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	userID, role, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.attendanceService.Team(r.Context(), userID, role)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, emptyIfNil(rows))
}

// emptyIfNil keeps empty collections rendering as [] rather than null.
func emptyIfNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
