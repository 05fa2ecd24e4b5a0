package employee

import (
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	GivenName           string   `json:"given_name"`
	FamilyName          string   `json:"family_name"`
	ScheduleDescription string   `json:"schedule_description"`
	ExpectedDailyHours  *float64 `json:"expected_daily_hours,omitempty"`
	ExpectedWeeklyHours *float64 `json:"expected_weekly_hours,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GivenName) {
		errs = append(errs, validator.ValidationError{
			Field:   "given_name",
			Message: "given name is required",
		})
	}
	if validator.IsEmpty(r.FamilyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "family_name",
			Message: "family name is required",
		})
	}
	if validator.IsEmpty(r.ScheduleDescription) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_description",
			Message: "schedule description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	GivenName           string   `json:"given_name"`
	FamilyName          string   `json:"family_name"`
	ScheduleDescription string   `json:"schedule_description"`
	ExpectedDailyHours  *float64 `json:"expected_daily_hours,omitempty"`
	ExpectedWeeklyHours *float64 `json:"expected_weekly_hours,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		GivenName:           r.GivenName,
		FamilyName:          r.FamilyName,
		ScheduleDescription: r.ScheduleDescription,
	}
	return create.Validate()
}

type EmployeeResponse struct {
	ID                  string  `json:"id"`
	GivenName           string  `json:"given_name"`
	FamilyName          string  `json:"family_name"`
	ScheduleDescription string  `json:"schedule_description"`
	ExpectedDailyHours  float64 `json:"expected_daily_hours"`
	ExpectedWeeklyHours float64 `json:"expected_weekly_hours"`
	Active              bool    `json:"active"`
	CreatedAt           string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                  e.ID,
		GivenName:           e.GivenName,
		FamilyName:          e.FamilyName,
		ScheduleDescription: e.ScheduleDescription,
		ExpectedDailyHours:  e.ExpectedDailyHours,
		ExpectedWeeklyHours: e.ExpectedWeeklyHours,
		Active:              e.Active,
		CreatedAt:           e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
