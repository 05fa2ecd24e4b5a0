package report

import (
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

// NoRecord is the placeholder shown for a missing in/out time in day rows.
const NoRecord = "no record"

// ========================================
// CUSTOM RANGE REPORT
// ========================================

type RangeReportRequest struct {
	EmployeeID *string
	StartDate  string
	EndDate    string
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date must be YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be YYYY-MM-DD",
		})
	}

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
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

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type EmployeeInfo struct {
	ID                  string  `json:"id"`
	GivenName           string  `json:"given_name"`
	FamilyName          string  `json:"family_name"`
	ExpectedDailyHours  float64 `json:"expected_daily_hours"`
	ExpectedWeeklyHours float64 `json:"expected_weekly_hours"`
}

// DayRow is one derived business day. Worked may be negative when the stored
// punches are out of order; such rows never contribute to the summary.
type DayRow struct {
	Date     string  `json:"date"`
	In       string  `json:"in"`
	Out      string  `json:"out"`
	Worked   float64 `json:"worked"`
	Expected float64 `json:"expected"`
	Diff     float64 `json:"diff"`
	Met      bool    `json:"met"`
}

// Summary totals only accumulate days with worked > 0. Figures are formatted
// to two decimals as strings, matching the JSON the frontend consumes.
type Summary struct {
	TotalHours    string `json:"total_hours"`
	DaysWorked    int    `json:"days_worked"`
	AvgDaily      string `json:"avg_daily"`
	ExpectedTotal string `json:"expected_total"`
	DiffTotal     string `json:"diff_total"`
}

type RangeReport struct {
	Employee EmployeeInfo `json:"employee"`
	Period   Period       `json:"period"`
	Summary  Summary      `json:"summary"`
	Details  []DayRow     `json:"details"`
}

type EmployeeRangeReport struct {
	Employee EmployeeInfo `json:"employee"`
	Summary  Summary      `json:"summary"`
	Details  []DayRow     `json:"details"`
}

type AllEmployeesReport struct {
	Period    Period                `json:"period"`
	Employees []EmployeeRangeReport `json:"employees"`
}

// ========================================
// DAILY / WEEKLY SNAPSHOTS
// ========================================

type DailyReport struct {
	Date      string           `json:"date"`
	Employees []DailyReportRow `json:"employees"`
}

type DailyReportRow struct {
	EmployeeID   string  `json:"employee_id"`
	Name         string  `json:"name"`
	Schedule     string  `json:"schedule"`
	PunchSummary *string `json:"punch_summary"`
}

type WeeklyReport struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Employees []WeeklyEmployee `json:"employees"`
}

type WeeklyEmployee struct {
	EmployeeID string      `json:"employee_id"`
	Name       string      `json:"name"`
	DaysWorked int         `json:"days_worked"`
	Days       []WeeklyDay `json:"days"`
}

type WeeklyDay struct {
	Date         string  `json:"date"`
	PunchSummary *string `json:"punch_summary"`
}

// ========================================
// COMPLIANCE / DAILY STATUS
// ========================================

// ComplianceRow scores one employee's trailing window. Percentage is a whole
// number string ("90"), the form the dashboard widgets render directly.
type ComplianceRow struct {
	EmployeeID  string `json:"employee_id"`
	Percentage  string `json:"percentage"`
	DaysCounted int    `json:"days_counted"`
	DaysMet     int    `json:"days_met"`
	Tier        string `json:"tier"`
}

type DailyStatusRow struct {
	EmployeeID    string  `json:"employee_id"`
	FirstIn       *string `json:"first_in"`
	LastOut       *string `json:"last_out"`
	WorkedHours   float64 `json:"worked_hours"`
	Punctuality   string  `json:"punctuality"`
	ExpectedStart *string `json:"expected_start"`
}
