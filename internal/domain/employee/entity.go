package employee

import "time"

type Employee struct {
	ID                  string
	GivenName           string
	FamilyName          string
	ScheduleDescription string
	ExpectedDailyHours  float64
	ExpectedWeeklyHours float64
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DisplayName is the "Given Family" form used in punch confirmations.
func (e Employee) DisplayName() string {
	return e.GivenName + " " + e.FamilyName
}

// ListName is the "Family, Given" form used in reports and sheet titles.
func (e Employee) ListName() string {
	return e.FamilyName + ", " + e.GivenName
}

const (
	DefaultDailyHours  = 8.0
	DefaultWeeklyHours = 40.0
)
