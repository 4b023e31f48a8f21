package employee

import (
	"context"
	"fmt"

	"github.com/sailshr/hrms-backend-go/internal/domain/department"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
)

type EmployeeService struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *EmployeeService) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, payload employee.Payload) (employee.Employee, error) {
	if err := payload.Validate(employee.ModeCreate); err != nil {
		return employee.Employee{}, err
	}
	if err := s.checkReferences(ctx, payload); err != nil {
		return employee.Employee{}, err
	}
	if err := s.checkUniqueness(ctx, payload, ""); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		EmployeeCode: *payload.EmployeeCode,
		FirstName:    *payload.FirstName,
		LastName:     *payload.LastName,
		FullName:     *payload.FirstName + " " + *payload.LastName,
		Email:        *payload.Email,
		Phone:        payload.Phone,
		JoiningDate:  *payload.JoiningDate,
		DepartmentID: *payload.DepartmentID,
		ManagerID:    payload.ManagerID,
		Role:         *payload.Role,
		Status:       employee.StatusActive,
	}
	if payload.EmploymentStatus != nil && *payload.EmploymentStatus != "" {
		emp.Status = *payload.EmploymentStatus
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, payload employee.Payload) (employee.Employee, error) {
	target, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := payload.Validate(employee.ModeUpdate); err != nil {
		return employee.Employee{}, err
	}
	if err := s.checkReferences(ctx, payload); err != nil {
		return employee.Employee{}, err
	}
	if err := s.checkUniqueness(ctx, payload, id); err != nil {
		return employee.Employee{}, err
	}

	merged := mergePayload(target, payload)
	if err := s.employeeRepo.Update(ctx, merged); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return merged, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) (employee.DeleteResponse, error) {
	// No cascading cleanup: managerId/approverId references to the removed
	// employee are left dangling.
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return employee.DeleteResponse{}, err
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return employee.DeleteResponse{}, fmt.Errorf("failed to delete employee: %w", err)
	}
	return employee.DeleteResponse{DeletedID: id}, nil
}

func (s *EmployeeService) checkReferences(ctx context.Context, payload employee.Payload) error {
	if payload.DepartmentID != nil && *payload.DepartmentID != "" {
		exists, err := s.departmentRepo.Exists(ctx, *payload.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return employee.ErrDepartmentInvalid
		}
	}
	if payload.ManagerID != nil && *payload.ManagerID != "" {
		if _, err := s.employeeRepo.GetByID(ctx, *payload.ManagerID); err != nil {
			return employee.ErrManagerInvalid
		}
	}
	return nil
}

func (s *EmployeeService) checkUniqueness(ctx context.Context, payload employee.Payload, excludeID string) error {
	if payload.EmployeeCode != nil && *payload.EmployeeCode != "" {
		exists, err := s.employeeRepo.ExistsByCode(ctx, *payload.EmployeeCode, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check employee code: %w", err)
		}
		if exists {
			return employee.ErrEmployeeCodeExists
		}
	}
	if payload.Email != nil && *payload.Email != "" {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, *payload.Email, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}
	}
	return nil
}

func mergePayload(target employee.Employee, payload employee.Payload) employee.Employee {
	if payload.EmployeeCode != nil && *payload.EmployeeCode != "" {
		target.EmployeeCode = *payload.EmployeeCode
	}
	if payload.FirstName != nil && *payload.FirstName != "" {
		target.FirstName = *payload.FirstName
	}
	if payload.LastName != nil && *payload.LastName != "" {
		target.LastName = *payload.LastName
	}
	target.FullName = target.FirstName + " " + target.LastName
	if payload.Email != nil && *payload.Email != "" {
		target.Email = *payload.Email
	}
	if payload.Phone != nil {
		target.Phone = payload.Phone
	}
	if payload.JoiningDate != nil && *payload.JoiningDate != "" {
		target.JoiningDate = *payload.JoiningDate
	}
	if payload.DepartmentID != nil && *payload.DepartmentID != "" {
		target.DepartmentID = *payload.DepartmentID
	}
	if payload.ManagerID != nil {
		target.ManagerID = payload.ManagerID
	}
	if payload.Role != nil && *payload.Role != "" {
		target.Role = *payload.Role
	}
	if payload.EmploymentStatus != nil && *payload.EmploymentStatus != "" {
		target.Status = *payload.EmploymentStatus
	}
	return target
}
