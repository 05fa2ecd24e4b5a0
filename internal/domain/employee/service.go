package employee

import "context"

// EmployeeService defines business logic for employee administration
type EmployeeService interface {
	// List retrieves all active employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Get retrieves a single employee by ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create registers a new employee, applying default expected hours
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update replaces an employee's profile fields
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-deletes an employee; punch history is retained
	Deactivate(ctx context.Context, id string) error
}
