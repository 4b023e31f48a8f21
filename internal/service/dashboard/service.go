package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
)

type WorkforceSummary struct {
	TotalEmployees  int `json:"totalEmployees"`
	ActiveEmployees int `json:"activeEmployees"`
	ExitedEmployees int `json:"exitedEmployees"`
}

type AttendanceSummary struct {
	PresentCount int     `json:"presentCount"`
	AbsentCount  int     `json:"absentCount"`
	HalfDayCount int     `json:"halfDayCount"`
	AverageHours float64 `json:"averageHours"`
}

type LeaveSummary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type HRSummary struct {
	Workforce  WorkforceSummary  `json:"workforce"`
	Attendance AttendanceSummary `json:"attendance"`
	Leave      LeaveSummary      `json:"leave"`
}

type DashboardService struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	requestRepo    leave.LeaveRequestRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	requestRepo leave.LeaveRequestRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		requestRepo:    requestRepo,
	}
}

func (s *DashboardService) HR(ctx context.Context) (HRSummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return HRSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}
	rows, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return HRSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return HRSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var summary HRSummary

	summary.Workforce.TotalEmployees = len(employees)
	for _, emp := range employees {
		switch emp.Status {
		case employee.StatusActive:
			summary.Workforce.ActiveEmployees++
		case employee.StatusExited:
			summary.Workforce.ExitedEmployees++
		}
	}

	var totalHours float64
	for _, row := range rows {
		totalHours += row.WorkHours
		switch row.Status {
		case attendance.StatusPresent:
			summary.Attendance.PresentCount++
		case attendance.StatusAbsent:
			summary.Attendance.AbsentCount++
		case attendance.StatusHalfDay:
			summary.Attendance.HalfDayCount++
		}
	}
	if len(rows) > 0 {
		summary.Attendance.AverageHours = math.Round(totalHours/float64(len(rows))*100) / 100
	}

	for _, req := range requests {
		switch req.Status {
		case leave.StatusPending:
			summary.Leave.Pending++
		case leave.StatusApproved:
			summary.Leave.Approved++
		case leave.StatusRejected:
			summary.Leave.Rejected++
		}
	}

	return summary, nil
}
