package employee

import (
	"context"
	"fmt"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e := employee.Employee{
		GivenName:           req.GivenName,
		FamilyName:          req.FamilyName,
		ScheduleDescription: req.ScheduleDescription,
		ExpectedDailyHours:  employee.DefaultDailyHours,
		ExpectedWeeklyHours: employee.DefaultWeeklyHours,
	}
	if req.ExpectedDailyHours != nil {
		e.ExpectedDailyHours = *req.ExpectedDailyHours
	}
	if req.ExpectedWeeklyHours != nil {
		e.ExpectedWeeklyHours = *req.ExpectedWeeklyHours
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	current.GivenName = req.GivenName
	current.FamilyName = req.FamilyName
	current.ScheduleDescription = req.ScheduleDescription
	current.ExpectedDailyHours = employee.DefaultDailyHours
	current.ExpectedWeeklyHours = employee.DefaultWeeklyHours
	if req.ExpectedDailyHours != nil {
		current.ExpectedDailyHours = *req.ExpectedDailyHours
	}
	if req.ExpectedWeeklyHours != nil {
		current.ExpectedWeeklyHours = *req.ExpectedWeeklyHours
	}

	if err := s.employeeRepo.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(current), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}
