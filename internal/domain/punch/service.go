package punch

import "context"

// PunchService defines business logic for clock events
type PunchService interface {
	// Punch records a clock event for an employee. The event kind is derived
	// from the day's toggle state, never from the request; a submission is
	// always accepted and labeled with whatever kind the resolver expects.
	Punch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	// Status reports the current toggle state for an employee's business day
	Status(ctx context.Context, employeeID string) (StatusResponse, error)

	// List retrieves punches with optional filters
	List(ctx context.Context, filter ListFilter) ([]PunchRecord, error)
}
