package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
	ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	// Create assigns the ID and returns the stored record.
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
}
