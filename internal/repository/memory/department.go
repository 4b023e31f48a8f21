package memory

import (
	"context"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/department"
)

type DepartmentRepository struct {
	mu   sync.RWMutex
	rows []department.Department
}

func NewDepartmentRepository(seed []department.Department) *DepartmentRepository {
	rows := make([]department.Department, len(seed))
	copy(rows, seed)
	return &DepartmentRepository{rows: rows}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]department.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]department.Department, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *DepartmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return true, nil
		}
	}
	return false, nil
}
