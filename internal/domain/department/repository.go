package department

import "context"

// Departments are static seed data; there are no mutations.
type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	Exists(ctx context.Context, id string) (bool, error)
}
