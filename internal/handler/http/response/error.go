package response

import (
	"errors"
	"net/http"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
	"github.com/sailshr/hrms-backend-go/internal/domain/auth"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErr validator.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(w, validationErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrMissingCredentials):
		BadRequest(w, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrDepartmentInvalid):
		BadRequest(w, err.Error())
	case errors.Is(err, employee.ErrManagerInvalid):
		BadRequest(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrPunchOutBeforeIn):
		BadRequest(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrAlreadyProcessed):
		BadRequest(w, err.Error())
	case errors.Is(err, leave.ErrInvalidAction):
		BadRequest(w, err.Error())
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error())
	case errors.Is(err, leave.ErrNotApprover):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
