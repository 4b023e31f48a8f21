package memory

import (
	"context"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
)

type LeaveBalanceRepository struct {
	mu   sync.RWMutex
	rows []leave.Balance
}

func NewLeaveBalanceRepository(seed []leave.Balance) *LeaveBalanceRepository {
	rows := make([]leave.Balance, len(seed))
	copy(rows, seed)
	return &LeaveBalanceRepository{rows: rows}
}

func (r *LeaveBalanceRepository) ListAll(ctx context.Context) ([]leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]leave.Balance, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *LeaveBalanceRepository) GetByEmployee(ctx context.Context, employeeID string) (leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.EmployeeID == employeeID {
			return row, nil
		}
	}
	return leave.Balance{}, leave.ErrBalanceNotFound
}

func (r *LeaveBalanceRepository) Update(ctx context.Context, balance leave.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.EmployeeID == balance.EmployeeID {
			r.rows[i] = balance
			return nil
		}
	}
	return leave.ErrBalanceNotFound
}
