// Package master serves static reference data: departments and the product
// overview card.
package master

import (
	"context"
	"fmt"

	"github.com/sailshr/hrms-backend-go/internal/domain/department"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
)

type OverviewMetrics struct {
	EmployeesConfigured   int `json:"employeesConfigured"`
	PendingLeaveApprovals int `json:"pendingLeaveApprovals"`
	ActiveDepartments     int `json:"activeDepartments"`
}

type Overview struct {
	Product         string          `json:"product"`
	TargetEmployees int             `json:"targetEmployees"`
	Scope           []string        `json:"scope"`
	Excluded        []string        `json:"excluded"`
	Metrics         OverviewMetrics `json:"metrics"`
}

type MasterService struct {
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
	requestRepo    leave.LeaveRequestRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	requestRepo leave.LeaveRequestRepository,
) *MasterService {
	return &MasterService{
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		requestRepo:    requestRepo,
	}
}

func (s *MasterService) ListDepartments(ctx context.Context) ([]department.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *MasterService) Overview(ctx context.Context) (Overview, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to list employees: %w", err)
	}
	pending, err := s.requestRepo.ListPending(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to list departments: %w", err)
	}

	return Overview{
		Product:         "Internal HRMS POC",
		TargetEmployees: 500,
		Scope:           []string{"HR Core", "Attendance", "Leave Management"},
		Excluded:        []string{"Payroll", "Statutory Compliance", "Biometric Integration"},
		Metrics: OverviewMetrics{
			EmployeesConfigured:   len(employees),
			PendingLeaveApprovals: len(pending),
			ActiveDepartments:     len(departments),
		},
	}, nil
}
