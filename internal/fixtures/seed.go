package fixtures

import (
	"time"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
	"github.com/sailshr/hrms-backend-go/internal/domain/department"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the shared password of every seeded account.
const SeedPassword = "Pass@123"

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("fixtures: hashing seed password: " + err.Error())
	}
	return string(hash)
}

func Departments() []department.Department {
	return []department.Department{
		{ID: "dep-eng", Name: "Engineering", HeadID: strPtr("emp-002")},
		{ID: "dep-hr", Name: "Human Resources", HeadID: strPtr("emp-004")},
		{ID: "dep-fin", Name: "Finance", HeadID: strPtr("emp-005")},
	}
}

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			ID:           "emp-001",
			EmployeeCode: "SAIL-001",
			FirstName:    "Aarav",
			LastName:     "Mehta",
			FullName:     "Aarav Mehta",
			Email:        "aarav.mehta@sailshr.local",
			Phone:        strPtr("+919901122334"),
			JoiningDate:  "2024-04-10",
			DepartmentID: "dep-eng",
			ManagerID:    strPtr("emp-002"),
			Role:         user.RoleEmployee,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-002",
			EmployeeCode: "SAIL-002",
			FirstName:    "Ishita",
			LastName:     "Sharma",
			FullName:     "Ishita Sharma",
			Email:        "ishita.sharma@sailshr.local",
			Phone:        strPtr("+919876123456"),
			JoiningDate:  "2023-02-06",
			DepartmentID: "dep-eng",
			Role:         user.RoleManager,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-003",
			EmployeeCode: "SAIL-003",
			FirstName:    "Rohan",
			LastName:     "Nair",
			FullName:     "Rohan Nair",
			Email:        "rohan.nair@sailshr.local",
			Phone:        strPtr("+919845551212"),
			JoiningDate:  "2025-01-19",
			DepartmentID: "dep-fin",
			ManagerID:    strPtr("emp-005"),
			Role:         user.RoleEmployee,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-004",
			EmployeeCode: "SAIL-004",
			FirstName:    "Neha",
			LastName:     "Bansal",
			FullName:     "Neha Bansal",
			Email:        "neha.bansal@sailshr.local",
			JoiningDate:  "2022-09-01",
			DepartmentID: "dep-hr",
			Role:         user.RoleHR,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-005",
			EmployeeCode: "SAIL-005",
			FirstName:    "Kabir",
			LastName:     "Joshi",
			FullName:     "Kabir Joshi",
			Email:        "kabir.joshi@sailshr.local",
			JoiningDate:  "2021-11-12",
			DepartmentID: "dep-fin",
			Role:         user.RoleManager,
			Status:       employee.StatusActive,
		},
		{
			ID:           "emp-999",
			EmployeeCode: "SAIL-999",
			FirstName:    "Admin",
			LastName:     "User",
			FullName:     "Admin User",
			Email:        "admin@sailshr.local",
			JoiningDate:  "2020-01-01",
			DepartmentID: "dep-hr",
			Role:         user.RoleAdmin,
			Status:       employee.StatusActive,
		},
	}
}

func AuthUsers() []user.AuthUser {
	hash := mustHash(SeedPassword)
	return []user.AuthUser{
		{ID: "usr-001", Email: "employee@sailshr.local", PasswordHash: hash, Role: user.RoleEmployee, EmployeeID: "emp-001"},
		{ID: "usr-002", Email: "manager@sailshr.local", PasswordHash: hash, Role: user.RoleManager, EmployeeID: "emp-002"},
		{ID: "usr-003", Email: "hr@sailshr.local", PasswordHash: hash, Role: user.RoleHR, EmployeeID: "emp-004"},
		{ID: "usr-004", Email: "admin@sailshr.local", PasswordHash: hash, Role: user.RoleAdmin, EmployeeID: "emp-999"},
	}
}

func Attendance() []attendance.Record {
	return []attendance.Record{
		{
			EmployeeID: "emp-001",
			Date:       "2026-02-10",
			PunchInAt:  timePtr(time.Date(2026, 2, 10, 9, 22, 0, 0, time.UTC)),
			PunchOutAt: timePtr(time.Date(2026, 2, 10, 18, 19, 0, 0, time.UTC)),
			PunchIn:    strPtr("09:22"),
			PunchOut:   strPtr("18:19"),
			Status:     attendance.StatusPresent,
			WorkHours:  8.95,
		},
		{
			EmployeeID: "emp-002",
			Date:       "2026-02-10",
			PunchInAt:  timePtr(time.Date(2026, 2, 10, 9, 4, 0, 0, time.UTC)),
			PunchOutAt: timePtr(time.Date(2026, 2, 10, 18, 2, 0, 0, time.UTC)),
			PunchIn:    strPtr("09:04"),
			PunchOut:   strPtr("18:02"),
			Status:     attendance.StatusPresent,
			WorkHours:  8.96,
		},
		{
			EmployeeID: "emp-003",
			Date:       "2026-02-10",
			PunchInAt:  timePtr(time.Date(2026, 2, 10, 9, 45, 0, 0, time.UTC)),
			PunchOutAt: timePtr(time.Date(2026, 2, 10, 14, 1, 0, 0, time.UTC)),
			PunchIn:    strPtr("09:45"),
			PunchOut:   strPtr("14:01"),
			Status:     attendance.StatusHalfDay,
			WorkHours:  4.27,
		},
	}
}

func LeaveRequests() []leave.Request {
	return []leave.Request{
		{
			ID:         "leave-001",
			EmployeeID: "emp-001",
			Type:       leave.TypeCasual,
			StartDate:  "2026-02-14",
			EndDate:    "2026-02-14",
			TotalDays:  1,
			Reason:     strPtr("Personal work"),
			Status:     leave.StatusPending,
			ApproverID: strPtr("emp-002"),
		},
		{
			ID:         "leave-002",
			EmployeeID: "emp-003",
			Type:       leave.TypeSick,
			StartDate:  "2026-02-09",
			EndDate:    "2026-02-10",
			TotalDays:  2,
			Reason:     strPtr("Fever"),
			Status:     leave.StatusApproved,
			ApproverID: strPtr("emp-005"),
			DecidedAt:  timePtr(time.Date(2026, 2, 8, 10, 30, 0, 0, time.UTC)),
		},
	}
}

func LeaveBalances() []leave.Balance {
	return []leave.Balance{
		{EmployeeID: "emp-001", CL: 5, SL: 6, PL: 12},
		{EmployeeID: "emp-002", CL: 7, SL: 6, PL: 13},
		{EmployeeID: "emp-003", CL: 4, SL: 4, PL: 10},
		{EmployeeID: "emp-004", CL: 6, SL: 6, PL: 14},
		{EmployeeID: "emp-005", CL: 3, SL: 5, PL: 11},
		{EmployeeID: "emp-999", CL: 10, SL: 10, PL: 20},
	}
}
