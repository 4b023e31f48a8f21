package attendance

import "context"

type AttendanceRepository interface {
	ListAll(ctx context.Context) ([]Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	ListByEmployees(ctx context.Context, employeeIDs []string) ([]Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (Record, error)
	// Save inserts or replaces the row keyed by (employeeId, date).
	Save(ctx context.Context, rec Record) error
}
