package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/domain/report"
)

func TestExportRangeWorkbookAllEmployees(t *testing.T) {
	repo := &fakeReportRepo{
		allRows: []report.EmployeeDayPair{
			{
				EmployeeID:         mariaID,
				GivenName:          "María",
				FamilyName:         "González",
				ExpectedDailyHours: 8,
				Date:               "2026-08-03",
				FirstIn:            strPtr("08:00:00"),
				LastOut:            strPtr("17:00:00"),
			},
			{
				EmployeeID:         juanID,
				GivenName:          "Juan",
				FamilyName:         "Pérez",
				ExpectedDailyHours: 8,
			},
		},
	}
	svc := NewReportService(&fakeEmployeeRepo{}, repo)

	f, filename, err := svc.ExportRangeWorkbook(context.Background(), report.RangeReportRequest{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-07",
	})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "report_all_2026-08-01_2026-08-07.xlsx", filename)

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "González, María")
	assert.Contains(t, sheets, "Pérez, Juan")
	assert.NotContains(t, sheets, "Sheet1")

	title, err := f.GetCellValue("González, María", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Attendance Report - María González", title)

	header, err := f.GetCellValue("González, María", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue("González, María", "A5")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-03", date)

	met, err := f.GetCellValue("González, María", "G5")
	require.NoError(t, err)
	assert.Equal(t, "YES", met)

	// Empty sheet still carries the summary block with zeroed totals.
	label, err := f.GetCellValue("Pérez, Juan", "A6")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY", label)

	total, err := f.GetCellValue("Pérez, Juan", "B7")
	require.NoError(t, err)
	assert.Equal(t, "0.00", total)
}

func TestExportRangeWorkbookSingleEmployee(t *testing.T) {
	repo := &fakeReportRepo{
		dayPairs: map[string][]report.DayPair{
			juanID: {
				{Date: "2026-08-03", FirstIn: strPtr("09:00:00"), LastOut: strPtr("18:00:00")},
			},
		},
	}
	svc := NewReportService(&fakeEmployeeRepo{employees: []employee.Employee{juan()}}, repo)

	id := juanID
	f, filename, err := svc.ExportRangeWorkbook(context.Background(), report.RangeReportRequest{
		EmployeeID: &id,
		StartDate:  "2026-08-01",
		EndDate:    "2026-08-07",
	})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "report_Pérez_2026-08-01_2026-08-07.xlsx", filename)
	assert.Equal(t, []string{"Attendance Report"}, f.GetSheetList())
}

func TestSheetNameTruncation(t *testing.T) {
	assert.Equal(t, "Fernández de la Cruz y Montoya",
		sheetName("Fernández de la Cruz y Montoya, Maximiliano"))
	assert.Equal(t, "Pérez, Juan", sheetName("Pérez, Juan"))
	assert.Equal(t, "AB", sheetName("A[/\\?*:]B"))
}
