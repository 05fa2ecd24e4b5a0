package postgresql

import (
	"context"
	"fmt"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
	"github.com/rioplata/fichadas-backend/internal/pkg/database"
)

// businessClock renders a stored punch instant as its HH:MM:SS clock string
// at the UTC-3 offset.
const businessClock = `to_char(p.punched_at - INTERVAL '3 hours', 'HH24:MI:SS')`

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// DayPairs implements report.ReportRepository.
func (r *reportRepository) DayPairs(ctx context.Context, employeeID, startDate, endDate string) ([]report.DayPair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(` + businessDay + `, 'YYYY-MM-DD') AS day,
			   MIN(CASE WHEN p.kind = 'in' THEN ` + businessClock + ` END) AS first_in,
			   MAX(CASE WHEN p.kind = 'out' THEN ` + businessClock + ` END) AS last_out
		FROM punches p
		WHERE p.employee_id = $1
		  AND ` + businessDay + ` BETWEEN $2::date AND $3::date
		GROUP BY ` + businessDay + `
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query day pairs: %v", report.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pairs []report.DayPair
	for rows.Next() {
		var pair report.DayPair
		if err := rows.Scan(&pair.Date, &pair.FirstIn, &pair.LastOut); err != nil {
			return nil, fmt.Errorf("failed to scan day pair: %w", err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}

// DayPairsAll implements report.ReportRepository. The LEFT JOIN keeps active
// employees without punches in range: they surface as one row with an empty
// day, which the aggregator turns into a zeroed summary.
func (r *reportRepository) DayPairsAll(ctx context.Context, startDate, endDate string) ([]report.EmployeeDayPair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.given_name, e.family_name,
			   e.expected_daily_hours, e.expected_weekly_hours,
			   to_char(` + businessDay + `, 'YYYY-MM-DD') AS day,
			   MIN(CASE WHEN p.kind = 'in' THEN ` + businessClock + ` END) AS first_in,
			   MAX(CASE WHEN p.kind = 'out' THEN ` + businessClock + ` END) AS last_out
		FROM employees e
		LEFT JOIN punches p ON e.id = p.employee_id
			AND ` + businessDay + ` BETWEEN $1::date AND $2::date
		WHERE e.active
		GROUP BY e.id, e.given_name, e.family_name,
				 e.expected_daily_hours, e.expected_weekly_hours, ` + businessDay + `
		ORDER BY e.family_name, e.given_name, day
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query day pairs for all employees: %v", report.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pairs []report.EmployeeDayPair
	for rows.Next() {
		var pair report.EmployeeDayPair
		var day *string
		if err := rows.Scan(
			&pair.EmployeeID, &pair.GivenName, &pair.FamilyName,
			&pair.ExpectedDailyHours, &pair.ExpectedWeeklyHours,
			&day, &pair.FirstIn, &pair.LastOut,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee day pair: %w", err)
		}
		if day != nil {
			pair.Date = *day
		}
		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}

// ComplianceDays implements report.ReportRepository. The horizon is the 10
// calendar days up to and including today (business time); at most 10 days
// with punch data come back, newest first.
func (r *reportRepository) ComplianceDays(ctx context.Context, employeeID string) ([]report.DayPair, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(` + businessDay + `, 'YYYY-MM-DD') AS day,
			   MIN(CASE WHEN p.kind = 'in' THEN ` + businessClock + ` END) AS first_in,
			   MAX(CASE WHEN p.kind = 'out' THEN ` + businessClock + ` END) AS last_out
		FROM punches p
		WHERE p.employee_id = $1
		  AND ` + businessDay + ` >= DATE(now() AT TIME ZONE 'utc' - INTERVAL '3 hours') - 10
		  AND ` + businessDay + ` <= DATE(now() AT TIME ZONE 'utc' - INTERVAL '3 hours')
		GROUP BY ` + businessDay + `
		ORDER BY day DESC
		LIMIT 10
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query compliance days: %v", report.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var pairs []report.DayPair
	for rows.Next() {
		var pair report.DayPair
		if err := rows.Scan(&pair.Date, &pair.FirstIn, &pair.LastOut); err != nil {
			return nil, fmt.Errorf("failed to scan compliance day: %w", err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}

// DailySummaries implements report.ReportRepository.
func (r *reportRepository) DailySummaries(ctx context.Context, date string) ([]report.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.given_name, e.family_name, e.schedule_description,
			   string_agg(p.kind || ':' || ` + businessClock + `, ', ' ORDER BY p.punched_at) AS punches
		FROM employees e
		LEFT JOIN punches p ON e.id = p.employee_id
			AND ` + businessDay + ` = $1::date
		WHERE e.active
		GROUP BY e.id, e.given_name, e.family_name, e.schedule_description
		ORDER BY e.family_name, e.given_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query daily summaries: %v", report.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var summaries []report.DailySummary
	for rows.Next() {
		var s report.DailySummary
		if err := rows.Scan(&s.EmployeeID, &s.GivenName, &s.FamilyName, &s.Schedule, &s.Punches); err != nil {
			return nil, fmt.Errorf("failed to scan daily summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// WeeklySummaries implements report.ReportRepository.
func (r *reportRepository) WeeklySummaries(ctx context.Context, startDate, endDate string) ([]report.WeeklySummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.given_name, e.family_name,
			   to_char(` + businessDay + `, 'YYYY-MM-DD') AS day,
			   string_agg(p.kind || ':' || ` + businessClock + `, ', ' ORDER BY p.punched_at) AS punches
		FROM employees e
		JOIN punches p ON e.id = p.employee_id
		WHERE e.active
		  AND ` + businessDay + ` BETWEEN $1::date AND $2::date
		GROUP BY e.id, e.given_name, e.family_name, ` + businessDay + `
		ORDER BY e.family_name, e.given_name, day
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query weekly summaries: %v", report.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []report.WeeklySummaryRow
	for rows.Next() {
		var row report.WeeklySummaryRow
		if err := rows.Scan(&row.EmployeeID, &row.GivenName, &row.FamilyName, &row.Date, &row.Punches); err != nil {
			return nil, fmt.Errorf("failed to scan weekly summary: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
