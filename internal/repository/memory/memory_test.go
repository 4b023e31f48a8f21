package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
	"github.com/sailshr/hrms-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_SequenceFromSeed(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(fixtures.Employees())

	created, err := repo.Create(ctx, employee.Employee{EmployeeCode: "SAIL-100", FirstName: "New", LastName: "Hire"})
	require.NoError(t, err)
	// Seed tops out at emp-999, so the counter continues from there.
	assert.Equal(t, "emp-1000", created.ID)
}

func TestEmployeeRepository_NoIDReuseAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(fixtures.Employees())

	first, err := repo.Create(ctx, employee.Employee{EmployeeCode: "SAIL-100"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, first.ID))

	second, err := repo.Create(ctx, employee.Employee{EmployeeCode: "SAIL-101"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "emp-1001", second.ID)
}

func TestEmployeeRepository_ExistsExcludesSelf(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(fixtures.Employees())

	exists, err := repo.ExistsByCode(ctx, "SAIL-001", "emp-001")
	require.NoError(t, err)
	assert.False(t, exists, "own code must not count as a duplicate")

	exists, err = repo.ExistsByCode(ctx, "SAIL-001", "emp-002")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "aarav.mehta@sailshr.local", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(fixtures.Employees())

	require.NoError(t, repo.Delete(ctx, "emp-003"))
	_, err := repo.GetByID(ctx, "emp-003")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	err = repo.Delete(ctx, "emp-003")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveRequestRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(fixtures.LeaveRequests())

	tests := []struct {
		name       string
		employeeID string
		start, end string
		want       bool
	}{
		{"same single day as pending request", "emp-001", "2026-02-14", "2026-02-14", true},
		{"range straddling pending request", "emp-001", "2026-02-13", "2026-02-15", true},
		{"touching end boundary", "emp-003", "2026-02-10", "2026-02-12", true},
		{"touching start boundary", "emp-003", "2026-02-07", "2026-02-09", true},
		{"disjoint after", "emp-001", "2026-02-15", "2026-02-16", false},
		{"disjoint before", "emp-003", "2026-02-05", "2026-02-08", false},
		{"other employee same dates", "emp-002", "2026-02-14", "2026-02-14", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.HasOverlap(ctx, tc.employeeID, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLeaveRequestRepository_RejectedDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository([]leave.Request{
		{
			ID:         "leave-001",
			EmployeeID: "emp-001",
			Type:       leave.TypeCasual,
			StartDate:  "2026-03-02",
			EndDate:    "2026-03-04",
			TotalDays:  3,
			Status:     leave.StatusRejected,
		},
	})

	got, err := repo.HasOverlap(ctx, "emp-001", "2026-03-03", "2026-03-03")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestLeaveRequestRepository_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(fixtures.LeaveRequests())

	created, err := repo.Create(ctx, leave.Request{EmployeeID: "emp-001", Type: leave.TypeCasual})
	require.NoError(t, err)
	assert.Equal(t, "leave-003", created.ID)

	next, err := repo.Create(ctx, leave.Request{EmployeeID: "emp-002", Type: leave.TypeSick})
	require.NoError(t, err)
	assert.Equal(t, "leave-004", next.ID)
}

func TestLeaveRequestRepository_PendingScopes(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(fixtures.LeaveRequests())

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "leave-001", pending[0].ID)

	mine, err := repo.ListPendingByApprover(ctx, "emp-002")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "leave-001", mine[0].ID)

	none, err := repo.ListPendingByApprover(ctx, "emp-005")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAttendanceRepository_SaveUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(nil)
	in := time.Date(2026, 3, 2, 9, 10, 0, 0, time.UTC)

	rec := attendance.Record{EmployeeID: "emp-001", Date: "2026-03-02", PunchInAt: &in, Status: attendance.StatusAbsent}
	require.NoError(t, repo.Save(ctx, rec))

	rec.Status = attendance.StatusPresent
	rec.WorkHours = 8.92
	require.NoError(t, repo.Save(ctx, rec))

	rows, err := repo.ListByEmployee(ctx, "emp-001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, attendance.StatusPresent, rows[0].Status)
	assert.Equal(t, 8.92, rows[0].WorkHours)
}

func TestAttendanceRepository_GetByEmployeeAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(fixtures.Attendance())

	rec, err := repo.GetByEmployeeAndDate(ctx, "emp-001", "2026-02-10")
	require.NoError(t, err)
	assert.Equal(t, 8.95, rec.WorkHours)

	_, err = repo.GetByEmployeeAndDate(ctx, "emp-001", "2026-02-11")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestAttendanceRepository_ListByEmployees(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(fixtures.Attendance())

	rows, err := repo.ListByEmployees(ctx, []string{"emp-001", "emp-003"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Contains(t, []string{"emp-001", "emp-003"}, row.EmployeeID)
	}
}
