package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/pkg/database"
	"github.com/rioplata/fichadas-backend/internal/repository/postgresql"
)

// sampleEmployees are seeded into an empty database so a fresh install has
// someone to punch.
var sampleEmployees = []employee.Employee{
	{
		GivenName:           "Juan",
		FamilyName:          "Pérez",
		ScheduleDescription: "Lunes a Viernes 9:00 a 18:00",
		ExpectedDailyHours:  8.0,
		ExpectedWeeklyHours: 40.0,
		Active:              true,
	},
	{
		GivenName:           "María",
		FamilyName:          "González",
		ScheduleDescription: "Lunes a Viernes 8:00 a 17:00",
		ExpectedDailyHours:  8.0,
		ExpectedWeeklyHours: 40.0,
		Active:              true,
	},
	{
		GivenName:           "Carlos",
		FamilyName:          "López",
		ScheduleDescription: "Lunes a Sábado 10:00 a 19:00",
		ExpectedDailyHours:  8.0,
		ExpectedWeeklyHours: 48.0,
		Active:              true,
	},
}

// SeedSampleEmployees inserts the sample roster when the employees table is
// empty. A database with any record at all, active or not, is left untouched.
func SeedSampleEmployees(ctx context.Context, db *database.DB, repo employee.EmployeeRepository) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	err = postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		for _, e := range sampleEmployees {
			if _, err := repo.Create(ctx, e); err != nil {
				return fmt.Errorf("failed to seed employee %s: %w", e.FamilyName, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Seeded sample employees", "count", len(sampleEmployees))
	return nil
}
