package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound       = errors.New("Leave request not found")
	ErrAlreadyProcessed    = errors.New("Leave request already processed")
	ErrInvalidAction       = errors.New("action must be APPROVE or REJECT")
	ErrOverlappingLeave    = errors.New("Leave request overlaps an existing request")
	ErrBalanceNotFound     = errors.New("Leave balance not found")
	ErrInsufficientBalance = errors.New("Insufficient leave balance")
	ErrInvalidDateRange    = errors.New("endDate must be on or after startDate")
	ErrNotApprover         = errors.New("Only the assigned approver can decide this request")
)
