package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu   sync.RWMutex
	rows []leave.Request
	seq  int
}

func NewLeaveRequestRepository(seed []leave.Request) *LeaveRequestRepository {
	rows := make([]leave.Request, len(seed))
	copy(rows, seed)
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return &LeaveRequestRepository{rows: rows, seq: maxIDSuffix(ids, "leave-")}
}

func (r *LeaveRequestRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]leave.Request, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.Request
	for _, row := range r.rows {
		if row.EmployeeID == employeeID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) ListPending(ctx context.Context) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.Request
	for _, row := range r.rows {
		if row.Status == leave.StatusPending {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) ListPendingByApprover(ctx context.Context, approverID string) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []leave.Request
	for _, row := range r.rows {
		if row.Status == leave.StatusPending && row.ApproverID != nil && *row.ApproverID == approverID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return leave.Request{}, leave.ErrLeaveNotFound
}

func (r *LeaveRequestRepository) HasOverlap(ctx context.Context, employeeID, startDate, endDate string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.EmployeeID != employeeID {
			continue
		}
		if row.Status != leave.StatusPending && row.Status != leave.StatusApproved {
			continue
		}
		// Inclusive interval intersection; ISO dates compare lexicographically.
		if startDate <= row.EndDate && row.StartDate <= endDate {
			return true, nil
		}
	}
	return false, nil
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	req.ID = fmt.Sprintf("leave-%03d", r.seq)
	r.rows = append(r.rows, req)
	return req, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == req.ID {
			r.rows[i] = req
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}
