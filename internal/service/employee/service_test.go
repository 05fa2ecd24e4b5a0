package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

func floatPtr(v float64) *float64 { return &v }

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.seq++
	e.ID = fmt.Sprintf("employee-%d", f.seq)
	e.Active = true
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	if _, ok := f.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Active = false
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func TestCreateAppliesDefaultHours(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		GivenName:           "Juan",
		FamilyName:          "Pérez",
		ScheduleDescription: "Lunes a Viernes 9:00 a 18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, created.ExpectedDailyHours)
	assert.Equal(t, 40.0, created.ExpectedWeeklyHours)
	assert.True(t, created.Active)
}

func TestCreateKeepsExplicitHours(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		GivenName:           "Carlos",
		FamilyName:          "López",
		ScheduleDescription: "Lunes a Sábado 10:00 a 19:00",
		ExpectedDailyHours:  floatPtr(8),
		ExpectedWeeklyHours: floatPtr(48),
	})
	require.NoError(t, err)

	assert.Equal(t, 48.0, created.ExpectedWeeklyHours)
}

func TestCreateValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{GivenName: "Juan"})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "family_name")
	assert.Contains(t, validationErrs.ToMap(), "schedule_description")
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	_, err := svc.Update(context.Background(), "missing", employee.UpdateEmployeeRequest{
		GivenName:           "Juan",
		FamilyName:          "Pérez",
		ScheduleDescription: "Lunes a Viernes 9:00 a 18:00",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeactivateHidesFromList(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		GivenName:           "María",
		FamilyName:          "González",
		ScheduleDescription: "Lunes a Viernes 8:00 a 17:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Deactivated employees stay retrievable by ID.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
