package leave

import "context"

type LeaveRequestRepository interface {
	ListAll(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	ListPendingByApprover(ctx context.Context, approverID string) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// HasOverlap reports whether the inclusive date range intersects any
	// PENDING or APPROVED request of the same employee.
	HasOverlap(ctx context.Context, employeeID, startDate, endDate string) (bool, error)
	// Create assigns the ID and returns the stored record.
	Create(ctx context.Context, req Request) (Request, error)
	Update(ctx context.Context, req Request) error
}

type LeaveBalanceRepository interface {
	ListAll(ctx context.Context) ([]Balance, error)
	GetByEmployee(ctx context.Context, employeeID string) (Balance, error)
	Update(ctx context.Context, balance Balance) error
}
