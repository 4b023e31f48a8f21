package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
)

// Work-hour thresholds for deriving the day's status.
const (
	fullDayHours = 8
	halfDayHours = 4
)

type AttendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	now            func() time.Time
}

type Option func(*AttendanceService)

// WithNow overrides the clock, used by tests.
func WithNow(now func() time.Time) Option {
	return func(s *AttendanceService) { s.now = now }
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	opts ...Option,
) *AttendanceService {
	s := &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PunchIn opens today's attendance record for the calling user's employee.
// A record that was punched in already cannot be punched in again.
func (s *AttendanceService) PunchIn(ctx context.Context, userID string) (attendance.Record, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.Record{}, err
	}

	now := s.now()
	date := now.Format("2006-01-02")

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, u.EmployeeID, date)
	if err == nil && existing.PunchInAt != nil {
		return attendance.Record{}, attendance.ErrAlreadyPunchedIn
	}

	label := now.Format("15:04")
	rec := attendance.Record{
		EmployeeID: u.EmployeeID,
		Date:       date,
		PunchInAt:  &now,
		PunchIn:    &label,
		Status:     attendance.StatusAbsent, // placeholder until punch-out
		WorkHours:  0,
	}
	if err := s.attendanceRepo.Save(ctx, rec); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to save attendance record: %w", err)
	}
	return rec, nil
}

// PunchOut closes today's record and derives work hours and status.
func (s *AttendanceService) PunchOut(ctx context.Context, userID string) (attendance.Record, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.Record{}, err
	}

	now := s.now()
	date := now.Format("2006-01-02")

	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, u.EmployeeID, date)
	if err != nil || rec.PunchInAt == nil {
		return attendance.Record{}, attendance.ErrNotPunchedIn
	}
	if rec.PunchOutAt != nil {
		return attendance.Record{}, attendance.ErrAlreadyPunchedOut
	}
	if now.Before(*rec.PunchInAt) {
		return attendance.Record{}, attendance.ErrPunchOutBeforeIn
	}

	hours := now.Sub(*rec.PunchInAt).Hours()
	if hours < 0 {
		hours = 0
	}
	rec.WorkHours = math.Round(hours*100) / 100

	switch {
	case rec.WorkHours >= fullDayHours:
		rec.Status = attendance.StatusPresent
	case rec.WorkHours >= halfDayHours:
		rec.Status = attendance.StatusHalfDay
	default:
		rec.Status = attendance.StatusAbsent
	}

	label := now.Format("15:04")
	rec.PunchOutAt = &now
	rec.PunchOut = &label

	if err := s.attendanceRepo.Save(ctx, rec); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to save attendance record: %w", err)
	}
	return rec, nil
}

// Me returns the calling user's own attendance rows.
func (s *AttendanceService) Me(ctx context.Context, userID string) ([]attendance.Record, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByEmployee(ctx, u.EmployeeID)
}

// Today returns the caller's own rows for employees, everything otherwise.
func (s *AttendanceService) Today(ctx context.Context, userID string, role user.Role) ([]attendance.Record, error) {
	if role == user.RoleEmployee {
		return s.Me(ctx, userID)
	}
	return s.attendanceRepo.ListAll(ctx)
}

// Team returns rows for the manager's direct reports; HR and admin see all.
func (s *AttendanceService) Team(ctx context.Context, userID string, role user.Role) ([]attendance.Record, error) {
	if role != user.RoleManager {
		return s.attendanceRepo.ListAll(ctx)
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	reports, err := s.employeeRepo.ListByManager(ctx, u.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct reports: %w", err)
	}
	ids := make([]string, len(reports))
	for i, report := range reports {
		ids[i] = report.ID
	}
	return s.attendanceRepo.ListByEmployees(ctx, ids)
}
