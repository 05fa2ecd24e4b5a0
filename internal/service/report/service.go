package report

import (
	"context"
	"fmt"

	"github.com/rioplata/fichadas-backend/internal/domain/attendance"
	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/domain/report"
	"github.com/rioplata/fichadas-backend/internal/domain/schedule"
	"github.com/rioplata/fichadas-backend/internal/pkg/timeclock"
	"github.com/rioplata/fichadas-backend/internal/pkg/validator"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	reportRepo   report.ReportRepository
}

func NewReportService(employeeRepo employee.EmployeeRepository, reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		reportRepo:   reportRepo,
	}
}

// RangeReport implements report.ReportService.
func (s *ReportServiceImpl) RangeReport(ctx context.Context, req report.RangeReportRequest) (report.RangeReport, error) {
	if err := req.Validate(); err != nil {
		return report.RangeReport{}, err
	}
	if req.EmployeeID == nil {
		return report.RangeReport{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee id is required",
		}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
	if err != nil {
		return report.RangeReport{}, err
	}

	pairs, err := s.reportRepo.DayPairs(ctx, emp.ID, req.StartDate, req.EndDate)
	if err != nil {
		return report.RangeReport{}, fmt.Errorf("failed to get punch data: %w", err)
	}

	details, summary := buildDetails(pairs, emp.ExpectedDailyHours)

	return report.RangeReport{
		Employee: toEmployeeInfo(emp),
		Period:   report.Period{StartDate: req.StartDate, EndDate: req.EndDate},
		Summary:  summary,
		Details:  details,
	}, nil
}

// RangeReportAll implements report.ReportService. Active employees with no
// punches in range still appear, carrying a zeroed summary and no details.
func (s *ReportServiceImpl) RangeReportAll(ctx context.Context, req report.RangeReportRequest) (report.AllEmployeesReport, error) {
	if err := req.Validate(); err != nil {
		return report.AllEmployeesReport{}, err
	}

	rows, err := s.reportRepo.DayPairsAll(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return report.AllEmployeesReport{}, fmt.Errorf("failed to get punch data: %w", err)
	}

	// Group rows by employee, preserving the repository's name ordering.
	var order []string
	grouped := make(map[string][]report.EmployeeDayPair)
	for _, row := range rows {
		if _, seen := grouped[row.EmployeeID]; !seen {
			order = append(order, row.EmployeeID)
		}
		grouped[row.EmployeeID] = append(grouped[row.EmployeeID], row)
	}

	employees := make([]report.EmployeeRangeReport, 0, len(order))
	for _, id := range order {
		group := grouped[id]

		var pairs []report.DayPair
		for _, row := range group {
			if row.Date == "" {
				continue // LEFT JOIN placeholder: no punches in range
			}
			pairs = append(pairs, report.DayPair{
				Date:    row.Date,
				FirstIn: row.FirstIn,
				LastOut: row.LastOut,
			})
		}

		details, summary := buildDetails(pairs, group[0].ExpectedDailyHours)
		employees = append(employees, report.EmployeeRangeReport{
			Employee: report.EmployeeInfo{
				ID:                  group[0].EmployeeID,
				GivenName:           group[0].GivenName,
				FamilyName:          group[0].FamilyName,
				ExpectedDailyHours:  group[0].ExpectedDailyHours,
				ExpectedWeeklyHours: group[0].ExpectedWeeklyHours,
			},
			Summary: summary,
			Details: details,
		})
	}

	return report.AllEmployeesReport{
		Period:    report.Period{StartDate: req.StartDate, EndDate: req.EndDate},
		Employees: employees,
	}, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, date string) (report.DailyReport, error) {
	if date == "" {
		date = timeclock.Today()
	} else if _, ok := validator.IsValidDate(date); !ok {
		return report.DailyReport{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}}
	}

	summaries, err := s.reportRepo.DailySummaries(ctx, date)
	if err != nil {
		return report.DailyReport{}, fmt.Errorf("failed to get daily summaries: %w", err)
	}

	rows := make([]report.DailyReportRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, report.DailyReportRow{
			EmployeeID:   summary.EmployeeID,
			Name:         summary.FamilyName + ", " + summary.GivenName,
			Schedule:     summary.Schedule,
			PunchSummary: summary.Punches,
		})
	}

	return report.DailyReport{Date: date, Employees: rows}, nil
}

// Weekly implements report.ReportService.
func (s *ReportServiceImpl) Weekly(ctx context.Context, startDate, endDate string) (report.WeeklyReport, error) {
	if startDate == "" || endDate == "" {
		startDate, endDate = timeclock.CurrentWeek(timeclock.Now())
	} else {
		req := report.RangeReportRequest{StartDate: startDate, EndDate: endDate}
		if err := req.Validate(); err != nil {
			return report.WeeklyReport{}, err
		}
	}

	rows, err := s.reportRepo.WeeklySummaries(ctx, startDate, endDate)
	if err != nil {
		return report.WeeklyReport{}, fmt.Errorf("failed to get weekly summaries: %w", err)
	}

	var order []string
	grouped := make(map[string]*report.WeeklyEmployee)
	for _, row := range rows {
		entry, seen := grouped[row.EmployeeID]
		if !seen {
			entry = &report.WeeklyEmployee{
				EmployeeID: row.EmployeeID,
				Name:       row.FamilyName + ", " + row.GivenName,
			}
			grouped[row.EmployeeID] = entry
			order = append(order, row.EmployeeID)
		}
		entry.Days = append(entry.Days, report.WeeklyDay{
			Date:         row.Date,
			PunchSummary: row.Punches,
		})
		entry.DaysWorked = len(entry.Days)
	}

	employees := make([]report.WeeklyEmployee, 0, len(order))
	for _, id := range order {
		employees = append(employees, *grouped[id])
	}

	return report.WeeklyReport{
		StartDate: startDate,
		EndDate:   endDate,
		Employees: employees,
	}, nil
}

// Compliance implements report.ReportService.
func (s *ReportServiceImpl) Compliance(ctx context.Context) ([]report.ComplianceRow, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	rows := make([]report.ComplianceRow, 0, len(employees))
	for _, emp := range employees {
		pairs, err := s.reportRepo.ComplianceDays(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get compliance days: %w", err)
		}

		days := make([]attendance.DayAttendance, 0, len(pairs))
		for _, pair := range pairs {
			days = append(days, attendance.NewDayAttendance(pair.Date, pair.FirstIn, pair.LastOut, emp.ExpectedDailyHours))
		}

		window := attendance.ScoreCompliance(days)
		rows = append(rows, report.ComplianceRow{
			EmployeeID:  emp.ID,
			Percentage:  fmt.Sprintf("%.0f", window.Percentage),
			DaysCounted: window.DaysCounted,
			DaysMet:     window.DaysMet,
			Tier:        string(window.Tier),
		})
	}

	return rows, nil
}

// DailyStatus implements report.ReportService.
func (s *ReportServiceImpl) DailyStatus(ctx context.Context) ([]report.DailyStatusRow, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	today := timeclock.Today()
	rows, err := s.reportRepo.DayPairsAll(ctx, today, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's punch data: %w", err)
	}

	pairsByEmployee := make(map[string]report.EmployeeDayPair, len(rows))
	for _, row := range rows {
		pairsByEmployee[row.EmployeeID] = row
	}

	statuses := make([]report.DailyStatusRow, 0, len(employees))
	for _, emp := range employees {
		pair := pairsByEmployee[emp.ID]

		expected := schedule.ParseExpectedStart(emp.ScheduleDescription)
		var expectedStart *string
		if expected != nil {
			formatted := expected.String()
			expectedStart = &formatted
		}

		statuses = append(statuses, report.DailyStatusRow{
			EmployeeID:    emp.ID,
			FirstIn:       pair.FirstIn,
			LastOut:       pair.LastOut,
			WorkedHours:   attendance.WorkedHours(pair.FirstIn, pair.LastOut),
			Punctuality:   string(attendance.Classify(pair.FirstIn, expected)),
			ExpectedStart: expectedStart,
		})
	}

	return statuses, nil
}

// buildDetails derives day rows and the range summary from day pairs. Only
// days with worked > 0 accumulate into the totals, so an anomalous negative
// day shows up in details but cannot drag the summary below reality.
func buildDetails(pairs []report.DayPair, expectedDaily float64) ([]report.DayRow, report.Summary) {
	details := make([]report.DayRow, 0, len(pairs))
	totalHours := 0.0
	daysWorked := 0

	for _, pair := range pairs {
		day := attendance.NewDayAttendance(pair.Date, pair.FirstIn, pair.LastOut, expectedDaily)

		if day.WorkedHours > 0 {
			totalHours += day.WorkedHours
			daysWorked++
		}

		in := report.NoRecord
		if day.FirstIn != nil {
			in = *day.FirstIn
		}
		out := report.NoRecord
		if day.LastOut != nil {
			out = *day.LastOut
		}

		details = append(details, report.DayRow{
			Date:     day.Date,
			In:       in,
			Out:      out,
			Worked:   day.WorkedHours,
			Expected: day.ExpectedHours,
			Diff:     day.Difference,
			Met:      day.MetExpectation,
		})
	}

	avgDaily := 0.0
	if daysWorked > 0 {
		avgDaily = totalHours / float64(daysWorked)
	}
	expectedTotal := expectedDaily * float64(daysWorked)

	summary := report.Summary{
		TotalHours:    fmt.Sprintf("%.2f", totalHours),
		DaysWorked:    daysWorked,
		AvgDaily:      fmt.Sprintf("%.2f", avgDaily),
		ExpectedTotal: fmt.Sprintf("%.2f", expectedTotal),
		DiffTotal:     fmt.Sprintf("%.2f", totalHours-expectedTotal),
	}

	return details, summary
}

func toEmployeeInfo(e employee.Employee) report.EmployeeInfo {
	return report.EmployeeInfo{
		ID:                  e.ID,
		GivenName:           e.GivenName,
		FamilyName:          e.FamilyName,
		ExpectedDailyHours:  e.ExpectedDailyHours,
		ExpectedWeeklyHours: e.ExpectedWeeklyHours,
	}
}
