package leave

import "github.com/sailshr/hrms-backend-go/internal/pkg/validator"

type ApplyRequest struct {
	Type      Type    `json:"type"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    *string `json:"reason,omitempty"`
}

func (r ApplyRequest) Validate() error {
	if r.Type == "" {
		return validator.Required("type")
	}
	if !validator.IsInSlice(string(r.Type), []string{string(TypeCasual), string(TypeSick), string(TypePrivilege)}) {
		return validator.Invalid("type")
	}
	if r.StartDate == "" {
		return validator.Required("startDate")
	}
	if r.EndDate == "" {
		return validator.Required("endDate")
	}
	return nil
}

type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

type DecisionRequest struct {
	Action Action `json:"action"`
}
