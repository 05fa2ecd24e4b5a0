package report

import "context"

// DayPair is one business day collapsed to its earliest "in" and latest
// "out" clock strings (HH:MM:SS, business-local). Either side may be nil
// when the day only has punches of one kind.
type DayPair struct {
	Date    string
	FirstIn *string
	LastOut *string
}

// EmployeeDayPair carries a DayPair together with the owning employee. Date
// is empty for active employees with no punches in the range: the LEFT JOIN
// still produces one row so they appear in all-employees reports with a
// zeroed summary.
type EmployeeDayPair struct {
	EmployeeID          string
	GivenName           string
	FamilyName          string
	ExpectedDailyHours  float64
	ExpectedWeeklyHours float64
	Date                string
	FirstIn             *string
	LastOut             *string
}

// DailySummary is one active employee's concatenated punches for a date,
// e.g. "in:08:01:22, out:17:03:45". Punches is nil when none were recorded.
type DailySummary struct {
	EmployeeID string
	GivenName  string
	FamilyName string
	Schedule   string
	Punches    *string
}

// WeeklySummaryRow is one (employee, day) pair inside a week range.
type WeeklySummaryRow struct {
	EmployeeID string
	GivenName  string
	FamilyName string
	Date       string
	Punches    *string
}

// ReportRepository defines the read-side query primitives the aggregation
// engine consumes. All day grouping happens in SQL at the UTC-3 offset.
type ReportRepository interface {
	// DayPairs retrieves one employee's first-in/last-out per business day
	// within [start, end], ascending by date
	DayPairs(ctx context.Context, employeeID, startDate, endDate string) ([]DayPair, error)

	// DayPairsAll retrieves day pairs for every active employee within
	// [start, end]; employees without punches yield a single empty-date row
	DayPairsAll(ctx context.Context, startDate, endDate string) ([]EmployeeDayPair, error)

	// ComplianceDays retrieves the trailing 10-day window of day pairs for
	// one employee, newest first, capped at 10 qualifying days
	ComplianceDays(ctx context.Context, employeeID string) ([]DayPair, error)

	// DailySummaries retrieves every active employee's concatenated punches
	// for one business date
	DailySummaries(ctx context.Context, date string) ([]DailySummary, error)

	// WeeklySummaries retrieves per-employee per-day punch summaries within
	// [start, end]; only days with punches are returned
	WeeklySummaries(ctx context.Context, startDate, endDate string) ([]WeeklySummaryRow, error)
}
