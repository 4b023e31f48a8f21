package memory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu   sync.RWMutex
	rows []employee.Employee
	seq  int
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	rows := make([]employee.Employee, len(seed))
	copy(rows, seed)
	return &EmployeeRepository{rows: rows, seq: maxIDSuffix(seedIDs(rows), "emp-")}
}

func seedIDs(rows []employee.Employee) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}

// maxIDSuffix scans ids of the form <prefix><n> and returns the largest n,
// so sequence numbers are never reused after a delete.
func maxIDSuffix(ids []string, prefix string) int {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]employee.Employee, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []employee.Employee
	for _, row := range r.rows {
		if row.ManagerID != nil && *row.ManagerID == managerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID != excludeID && row.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID != excludeID && row.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	emp.ID = fmt.Sprintf("emp-%03d", r.seq)
	r.rows = append(r.rows, emp)
	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == emp.ID {
			r.rows[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}
