package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
)

// Record is keyed by (employeeId, date): at most one row per employee per
// calendar date. PunchIn/PunchOut are HH:MM labels frozen at punch time.
type Record struct {
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	PunchInAt  *time.Time `json:"punchInAt,omitempty"`
	PunchOutAt *time.Time `json:"punchOutAt,omitempty"`
	PunchIn    *string    `json:"punchIn,omitempty"`
	PunchOut   *string    `json:"punchOut,omitempty"`
	Status     Status     `json:"status"`
	WorkHours  float64    `json:"workHours"`
}
