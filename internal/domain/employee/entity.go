package employee

import "github.com/sailshr/hrms-backend-go/internal/domain/user"

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusExited   Status = "EXITED"
	StatusOnNotice Status = "ON_NOTICE"
)

type Employee struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employeeCode"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	JoiningDate  string    `json:"joiningDate"`
	DepartmentID string    `json:"departmentId"`
	ManagerID    *string   `json:"managerId,omitempty"`
	Role         user.Role `json:"role"`
	Status       Status    `json:"status"`
}
