package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, given_name, family_name, schedule_description,
			   expected_daily_hours, expected_weekly_hours, active,
			   created_at, updated_at
		FROM employees
		WHERE active
		ORDER BY family_name, given_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.GivenName, &e.FamilyName, &e.ScheduleDescription,
			&e.ExpectedDailyHours, &e.ExpectedWeeklyHours, &e.Active,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, given_name, family_name, schedule_description,
			   expected_daily_hours, expected_weekly_hours, active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.GivenName, &e.FamilyName, &e.ScheduleDescription,
		&e.ExpectedDailyHours, &e.ExpectedWeeklyHours, &e.Active,
		&e.CreatedAt, &e.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			given_name, family_name, schedule_description,
			expected_daily_hours, expected_weekly_hours
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.GivenName,
		e.FamilyName,
		e.ScheduleDescription,
		e.ExpectedDailyHours,
		e.ExpectedWeeklyHours,
	).Scan(&e.ID, &e.Active, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET given_name = $1,
			family_name = $2,
			schedule_description = $3,
			expected_daily_hours = $4,
			expected_weekly_hours = $5,
			updated_at = now() AT TIME ZONE 'utc'
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		e.GivenName,
		e.FamilyName,
		e.ScheduleDescription,
		e.ExpectedDailyHours,
		e.ExpectedWeeklyHours,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET active = FALSE,
			updated_at = now() AT TIME ZONE 'utc'
		WHERE id = $1 AND active
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// CountAll implements employee.EmployeeRepository.
func (r *employeeRepository) CountAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
