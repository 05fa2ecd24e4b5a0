package punch

import (
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

type CreatePunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Note       string `json:"note,omitempty"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PunchResponse confirms a recorded punch. WorkedHours is only present on an
// "out" punch and measures the span since the immediately preceding "in" of
// the day, not the day's first-in/last-out aggregate; the two figures can
// disagree for employees punching more than twice a day and are reported
// separately on purpose.
type PunchResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Kind         Kind     `json:"kind"`
	EmployeeName string   `json:"employee_name"`
	PunchedAt    string   `json:"punched_at"`
	WorkedHours  *float64 `json:"worked_hours,omitempty"`
	Message      string   `json:"message"`
}

type PunchRecord struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	Kind         Kind   `json:"kind"`
	PunchedAt    string `json:"punched_at"`
	Note         string `json:"note,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

// StatusResponse reports the toggle state for an employee's current business
// day: the most recent punch, if any, and the kind the next punch will get.
type StatusResponse struct {
	LastPunch *PunchRecord `json:"last_punch"`
	NextKind  Kind         `json:"next_kind"`
}

type ListFilter struct {
	EmployeeID   *string
	BusinessDate *string
}
