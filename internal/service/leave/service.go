package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/sailshr/hrms-backend-go/internal/domain/employee"
	"github.com/sailshr/hrms-backend-go/internal/domain/leave"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/pkg/validator"
)

type LeaveService struct {
	requestRepo  leave.LeaveRequestRepository
	balanceRepo  leave.LeaveBalanceRepository
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	now          func() time.Time
}

type Option func(*LeaveService)

// WithNow overrides the clock, used by tests.
func WithNow(now func() time.Time) Option {
	return func(s *LeaveService) { s.now = now }
}

func NewLeaveService(
	requestRepo leave.LeaveRequestRepository,
	balanceRepo leave.LeaveBalanceRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	opts ...Option,
) *LeaveService {
	s := &LeaveService{
		requestRepo:  requestRepo,
		balanceRepo:  balanceRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply files a leave request for the calling user's employee. The request
// starts PENDING with the employee's manager as default approver.
func (s *LeaveService) Apply(ctx context.Context, userID string, req leave.ApplyRequest) (leave.Request, error) {
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	start, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		return leave.Request{}, validator.Invalid("startDate")
	}
	end, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		return leave.Request{}, validator.Invalid("endDate")
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays <= 0 {
		return leave.Request{}, leave.ErrInvalidDateRange
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return leave.Request{}, err
	}

	overlap, err := s.requestRepo.HasOverlap(ctx, u.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to check overlapping leave requests: %w", err)
	}
	if overlap {
		return leave.Request{}, leave.ErrOverlappingLeave
	}

	balance, err := s.balanceRepo.GetByEmployee(ctx, u.EmployeeID)
	if err != nil {
		return leave.Request{}, err
	}
	if totalDays > balance.Remaining(req.Type) {
		return leave.Request{}, leave.ErrInsufficientBalance
	}

	request := leave.Request{
		EmployeeID: u.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}
	if emp, err := s.employeeRepo.GetByID(ctx, u.EmployeeID); err == nil {
		request.ApproverID = emp.ManagerID
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// Decide resolves a pending request. Managers may only decide requests they
// are the recorded approver for; HR and admin may decide any. Approval
// re-checks and deducts the balance, since it may have changed since apply.
func (s *LeaveService) Decide(ctx context.Context, userID string, leaveID string, action leave.Action) (leave.Request, error) {
	request, err := s.requestRepo.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Request{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrAlreadyProcessed
	}
	if action != leave.ActionApprove && action != leave.ActionReject {
		return leave.Request{}, leave.ErrInvalidAction
	}

	actor, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return leave.Request{}, err
	}
	if actor.Role == user.RoleManager {
		if request.ApproverID == nil || *request.ApproverID != actor.EmployeeID {
			return leave.Request{}, leave.ErrNotApprover
		}
	}

	if action == leave.ActionApprove {
		balance, err := s.balanceRepo.GetByEmployee(ctx, request.EmployeeID)
		if err != nil {
			return leave.Request{}, err
		}
		if request.TotalDays > balance.Remaining(request.Type) {
			return leave.Request{}, leave.ErrInsufficientBalance
		}
		balance.Deduct(request.Type, request.TotalDays)
		if err := s.balanceRepo.Update(ctx, balance); err != nil {
			return leave.Request{}, fmt.Errorf("failed to update leave balance: %w", err)
		}
		request.Status = leave.StatusApproved
	} else {
		request.Status = leave.StatusRejected
	}

	decidedAt := s.now()
	request.ApproverID = &actor.EmployeeID
	request.DecidedAt = &decidedAt

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return request, nil
}

func (s *LeaveService) List(ctx context.Context) ([]leave.Request, error) {
	return s.requestRepo.ListAll(ctx)
}

func (s *LeaveService) Mine(ctx context.Context, userID string) ([]leave.Request, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.ListByEmployee(ctx, u.EmployeeID)
}

// PendingApprovals returns the manager's own approval queue; HR and admin
// see every pending request.
func (s *LeaveService) PendingApprovals(ctx context.Context, userID string, role user.Role) ([]leave.Request, error) {
	if role != user.RoleManager {
		return s.requestRepo.ListPending(ctx)
	}
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.ListPendingByApprover(ctx, u.EmployeeID)
}

// Balances returns the caller's own balance for employees, all balances
// otherwise.
func (s *LeaveService) Balances(ctx context.Context, userID string, role user.Role) ([]leave.Balance, error) {
	if role != user.RoleEmployee {
		return s.balanceRepo.ListAll(ctx)
	}
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.balanceRepo.GetByEmployee(ctx, u.EmployeeID)
	if err != nil {
		return []leave.Balance{}, nil
	}
	return []leave.Balance{balance}, nil
}
