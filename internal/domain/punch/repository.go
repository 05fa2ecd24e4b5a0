package punch

import "context"

// PunchRepository defines data access methods for punch events. Punches are
// append-only; there is no update or delete.
type PunchRepository interface {
	// Insert records a new punch stamped with the current instant
	Insert(ctx context.Context, employeeID string, kind Kind, note string) (Punch, error)

	// MostRecentOnDay retrieves the employee's latest punch on the given
	// business day (YYYY-MM-DD, UTC-3), or nil when no punch exists
	MostRecentOnDay(ctx context.Context, employeeID string, businessDay string) (*Punch, error)

	// List retrieves punches newest first, optionally filtered by employee
	// or business date, joined with the employee's name
	List(ctx context.Context, filter ListFilter) ([]Punch, error)
}
