package memory

import (
	"context"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu   sync.RWMutex
	rows []attendance.Record
}

func NewAttendanceRepository(seed []attendance.Record) *AttendanceRepository {
	rows := make([]attendance.Record, len(seed))
	copy(rows, seed)
	return &AttendanceRepository{rows: rows}
}

func (r *AttendanceRepository) ListAll(ctx context.Context) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]attendance.Record, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []attendance.Record
	for _, row := range r.rows {
		if row.EmployeeID == employeeID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *AttendanceRepository) ListByEmployees(ctx context.Context, employeeIDs []string) ([]attendance.Record, error) {
	members := make(map[string]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		members[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []attendance.Record
	for _, row := range r.rows {
		if _, ok := members[row.EmployeeID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.EmployeeID == employeeID && row.Date == date {
			return row, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) Save(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.EmployeeID == rec.EmployeeID && row.Date == rec.Date {
			r.rows[i] = rec
			return nil
		}
	}
	r.rows = append(r.rows, rec)
	return nil
}
