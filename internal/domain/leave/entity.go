package leave

import "time"

type Type string

const (
	TypeCasual    Type = "CL"
	TypeSick      Type = "SL"
	TypePrivilege Type = "PL"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
	StatusRejected RequestStatus = "REJECTED"
)

type Request struct {
	ID         string        `json:"id"`
	EmployeeID string        `json:"employeeId"`
	Type       Type          `json:"type"`
	StartDate  string        `json:"startDate"`
	EndDate    string        `json:"endDate"`
	TotalDays  int           `json:"totalDays"`
	Reason     *string       `json:"reason,omitempty"`
	Status     RequestStatus `json:"status"`
	ApproverID *string       `json:"approverId,omitempty"`
	DecidedAt  *time.Time    `json:"decidedAt,omitempty"`
}

// Balance tracks remaining days per leave type. Balances are only ever
// decremented, by approval.
type Balance struct {
	EmployeeID string `json:"employeeId"`
	CL         int    `json:"CL"`
	SL         int    `json:"SL"`
	PL         int    `json:"PL"`
}

func (b Balance) Remaining(t Type) int {
	switch t {
	case TypeCasual:
		return b.CL
	case TypeSick:
		return b.SL
	case TypePrivilege:
		return b.PL
	}
	return 0
}

func (b *Balance) Deduct(t Type, days int) {
	switch t {
	case TypeCasual:
		b.CL -= days
	case TypeSick:
		b.SL -= days
	case TypePrivilege:
		b.PL -= days
	}
}
