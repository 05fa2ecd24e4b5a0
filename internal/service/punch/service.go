package punch

import (
	"context"
	"fmt"

	"github.com/rioplata/fichadas-backend/internal/domain/attendance"
	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/domain/punch"
	"github.com/rioplata/fichadas-backend/internal/pkg/timeclock"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
	}
}

// Punch implements punch.PunchService. The toggle state is re-derived from
// the store on every call: no punch today or a trailing "out" means the next
// event is an "in", a trailing "in" means an "out". The submission is never
// rejected for ordering.
func (s *PunchServiceImpl) Punch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	if !emp.Active {
		return punch.PunchResponse{}, employee.ErrEmployeeInactive
	}

	today := timeclock.Today()
	last, err := s.punchRepo.MostRecentOnDay(ctx, req.EmployeeID, today)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to resolve punch state: %w", err)
	}

	kind := punch.KindIn
	var workedHours *float64
	if last != nil && last.Kind == punch.KindIn {
		kind = punch.KindOut

		// Elapsed span since the immediately preceding "in", at minute
		// resolution. This is the point-in-time confirmation figure, not
		// the day's first-in/last-out aggregate.
		inClock := timeclock.Clock(last.PunchedAt)
		outClock := timeclock.Clock(timeclock.Now())
		worked := attendance.WorkedHours(&inClock, &outClock)
		workedHours = &worked
	}

	created, err := s.punchRepo.Insert(ctx, req.EmployeeID, kind, req.Note)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	message := fmt.Sprintf("Punch %s recorded successfully", kind)
	if workedHours != nil {
		message = fmt.Sprintf("Thanks for your work! You worked %.2f hours today.", *workedHours)
	}

	return punch.PunchResponse{
		ID:           created.ID,
		EmployeeID:   created.EmployeeID,
		Kind:         created.Kind,
		EmployeeName: emp.DisplayName(),
		PunchedAt:    timeclock.BusinessDate(created.PunchedAt) + " " + timeclock.Clock(created.PunchedAt),
		WorkedHours:  workedHours,
		Message:      message,
	}, nil
}

// Status implements punch.PunchService.
func (s *PunchServiceImpl) Status(ctx context.Context, employeeID string) (punch.StatusResponse, error) {
	last, err := s.punchRepo.MostRecentOnDay(ctx, employeeID, timeclock.Today())
	if err != nil {
		return punch.StatusResponse{}, fmt.Errorf("failed to resolve punch state: %w", err)
	}

	status := punch.StatusResponse{NextKind: punch.KindIn}
	if last != nil {
		record := toRecord(*last)
		status.LastPunch = &record
		if last.Kind == punch.KindIn {
			status.NextKind = punch.KindOut
		}
	}

	return status, nil
}

// List implements punch.PunchService.
func (s *PunchServiceImpl) List(ctx context.Context, filter punch.ListFilter) ([]punch.PunchRecord, error) {
	punches, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	records := make([]punch.PunchRecord, 0, len(punches))
	for _, p := range punches {
		records = append(records, toRecord(p))
	}
	return records, nil
}

func toRecord(p punch.Punch) punch.PunchRecord {
	record := punch.PunchRecord{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Kind:       p.Kind,
		PunchedAt:  timeclock.BusinessDate(p.PunchedAt) + " " + timeclock.Clock(p.PunchedAt),
		Note:       p.Note,
	}
	if p.EmployeeName != nil {
		record.EmployeeName = *p.EmployeeName
	}
	return record
}
