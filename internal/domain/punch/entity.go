package punch

import "time"

// Kind is the clock event direction. The toggle resolver decides which kind
// the next submitted punch receives; clients never choose it.
type Kind string

const (
	KindIn  Kind = "in"
	KindOut Kind = "out"
)

// Punch is a single immutable clock event. PunchedAt is the UTC instant;
// business-day grouping happens at the fixed UTC-3 offset.
type Punch struct {
	ID         string
	EmployeeID string
	Kind       Kind
	PunchedAt  time.Time
	Note       string
	CreatedAt  time.Time

	// Joined for listings
	EmployeeName *string
}
