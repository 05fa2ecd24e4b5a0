package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
// Deletion is soft: deactivated employees keep their punch history.
type EmployeeRepository interface {
	// ListActive retrieves active employees ordered by family name, given name
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee regardless of active flag
	GetByID(ctx context.Context, id string) (Employee, error)

	// Create inserts a new employee record
	Create(ctx context.Context, e Employee) (Employee, error)

	// Update replaces the mutable fields of an existing employee
	Update(ctx context.Context, e Employee) error

	// Deactivate clears the active flag without removing the record
	Deactivate(ctx context.Context, id string) error

	// CountAll returns the total number of employees, active or not
	CountAll(ctx context.Context) (int64, error)
}
