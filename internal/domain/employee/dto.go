package employee

import (
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/pkg/validator"
)

type ValidateMode string

const (
	ModeCreate ValidateMode = "create"
	ModeUpdate ValidateMode = "update"
)

// Payload is the partial create/update body. Absent and empty fields are
// treated alike, matching the API contract.
type Payload struct {
	EmployeeCode     *string    `json:"employeeCode,omitempty"`
	FirstName        *string    `json:"firstName,omitempty"`
	LastName         *string    `json:"lastName,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	JoiningDate      *string    `json:"joiningDate,omitempty"`
	DepartmentID     *string    `json:"departmentId,omitempty"`
	ManagerID        *string    `json:"managerId,omitempty"`
	Role             *user.Role `json:"role,omitempty"`
	EmploymentStatus *Status    `json:"employmentStatus,omitempty"`
}

func (p Payload) has(field *string) bool {
	return field != nil && *field != ""
}

// Validate reports the first violation only. Referential checks
// (departmentId, managerId) are done by the service against the store.
func (p Payload) Validate(mode ValidateMode) error {
	if mode == ModeCreate {
		required := []struct {
			name string
			ok   bool
		}{
			{"employeeCode", p.has(p.EmployeeCode)},
			{"firstName", p.has(p.FirstName)},
			{"lastName", p.has(p.LastName)},
			{"email", p.has(p.Email)},
			{"joiningDate", p.has(p.JoiningDate)},
			{"departmentId", p.has(p.DepartmentID)},
			{"role", p.Role != nil && *p.Role != ""},
		}
		for _, field := range required {
			if !field.ok {
				return validator.Required(field.name)
			}
		}
	}

	if p.has(p.Email) && !validator.IsValidEmail(*p.Email) {
		return validator.InvalidFormat("email")
	}

	return nil
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}
