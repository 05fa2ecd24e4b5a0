package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rioplata/fichadas-backend/internal/domain/punch"
	"github.com/rioplata/fichadas-backend/internal/pkg/database"
)

// businessDay is the SQL expression converting a stored naive-UTC punch
// instant into its business calendar day at the fixed UTC-3 offset.
const businessDay = `DATE(p.punched_at - INTERVAL '3 hours')`

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Insert implements punch.PunchRepository.
func (r *punchRepository) Insert(ctx context.Context, employeeID string, kind punch.Kind, note string) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, kind, note)
		VALUES ($1, $2, $3)
		RETURNING id, punched_at, created_at
	`

	p := punch.Punch{
		EmployeeID: employeeID,
		Kind:       kind,
		Note:       note,
	}
	err := q.QueryRow(ctx, query, employeeID, kind, note).Scan(&p.ID, &p.PunchedAt, &p.CreatedAt)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to insert punch: %w", err)
	}

	return p, nil
}

// MostRecentOnDay implements punch.PunchRepository.
func (r *punchRepository) MostRecentOnDay(ctx context.Context, employeeID string, businessDate string) (*punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.kind, p.punched_at, p.note, p.created_at
		FROM punches p
		WHERE p.employee_id = $1
		  AND ` + businessDay + ` = $2::date
		ORDER BY p.punched_at DESC
		LIMIT 1
	`

	var p punch.Punch
	err := q.QueryRow(ctx, query, employeeID, businessDate).Scan(
		&p.ID, &p.EmployeeID, &p.Kind, &p.PunchedAt, &p.Note, &p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No punch yet today
		}
		return nil, fmt.Errorf("failed to get most recent punch: %w", err)
	}

	return &p, nil
}

// List implements punch.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.BusinessDate != nil && *filter.BusinessDate != "" {
		baseWhere += fmt.Sprintf(" AND "+businessDay+" = $%d::date", argIdx)
		args = append(args, *filter.BusinessDate)
		argIdx++
	}

	query := `
		SELECT p.id, p.employee_id, p.kind, p.punched_at, p.note, p.created_at,
			   e.given_name || ' ' || e.family_name AS employee_name
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + baseWhere + `
		ORDER BY p.punched_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Kind, &p.PunchedAt, &p.Note, &p.CreatedAt,
			&p.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}
