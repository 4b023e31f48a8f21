package employee

import (
	"context"
	"testing"

	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/fixtures"
	"github.com/sailshr/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func rolePtr(r user.Role) *user.Role { return &r }

func newTestService() *EmployeeService {
	return NewEmployeeService(
		memory.NewEmployeeRepository(fixtures.Employees()),
		memory.NewDepartmentRepository(fixtures.Departments()),
	)
}

func validPayload() employee.Payload {
	return employee.Payload{
		EmployeeCode: strPtr("SAIL-006"),
		FirstName:    strPtr("Priya"),
		LastName:     strPtr("Verma"),
		Email:        strPtr("priya.verma@sailshr.local"),
		JoiningDate:  strPtr("2026-03-01"),
		DepartmentID: strPtr("dep-eng"),
		ManagerID:    strPtr("emp-002"),
		Role:         rolePtr(user.RoleEmployee),
	}
}

func TestCreate_Success(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	created, err := svc.Create(ctx, validPayload())
	require.NoError(t, err)

	assert.Equal(t, "emp-1000", created.ID)
	assert.Equal(t, "Priya Verma", created.FullName)
	assert.Equal(t, employee.StatusActive, created.Status)
	require.NotNil(t, created.ManagerID)
	assert.Equal(t, "emp-002", *created.ManagerID)
}

func TestCreate_FirstViolationOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Everything missing: employeeCode is reported first.
	_, err := svc.Create(ctx, employee.Payload{})
	assert.EqualError(t, err, "employeeCode is required")

	payload := validPayload()
	payload.FirstName = nil
	_, err = svc.Create(ctx, payload)
	assert.EqualError(t, err, "firstName is required")

	payload = validPayload()
	payload.Email = strPtr("not-an-email")
	_, err = svc.Create(ctx, payload)
	assert.EqualError(t, err, "email format is invalid")
}

func TestCreate_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	payload := validPayload()
	payload.DepartmentID = strPtr("dep-nope")
	_, err := svc.Create(ctx, payload)
	assert.ErrorIs(t, err, employee.ErrDepartmentInvalid)

	payload = validPayload()
	payload.ManagerID = strPtr("emp-404")
	_, err = svc.Create(ctx, payload)
	assert.ErrorIs(t, err, employee.ErrManagerInvalid)
}

func TestCreate_Duplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	payload := validPayload()
	payload.EmployeeCode = strPtr("SAIL-001")
	_, err := svc.Create(ctx, payload)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)

	payload = validPayload()
	payload.Email = strPtr("aarav.mehta@sailshr.local")
	_, err = svc.Create(ctx, payload)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreate_ExplicitEmploymentStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	status := employee.StatusOnNotice
	payload := validPayload()
	payload.EmploymentStatus = &status
	created, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusOnNotice, created.Status)
}

func TestUpdate_MergeRecomputesFullName(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	updated, err := svc.Update(ctx, "emp-001", employee.Payload{FirstName: strPtr("Arjun")})
	require.NoError(t, err)
	assert.Equal(t, "Arjun", updated.FirstName)
	assert.Equal(t, "Mehta", updated.LastName)
	assert.Equal(t, "Arjun Mehta", updated.FullName)
	assert.Equal(t, "SAIL-001", updated.EmployeeCode, "untouched fields preserved")
}

func TestUpdate_OwnCodeIsNotADuplicate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Update(ctx, "emp-001", employee.Payload{EmployeeCode: strPtr("SAIL-001")})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, "emp-001", employee.Payload{EmployeeCode: strPtr("SAIL-002")})
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestUpdate_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Update(ctx, "emp-404", employee.Payload{FirstName: strPtr("Ghost")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Delete(ctx, "emp-003")
	require.NoError(t, err)
	assert.Equal(t, "emp-003", resp.DeletedID)

	_, err = svc.Get(ctx, "emp-003")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Delete(ctx, "emp-003")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
