package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
)

// Spreadsheet fill colors: green for days that met the expectation, red for
// days that fell short, grey for the header row.
const (
	fillMet    = "#90EE90"
	fillMissed = "#FFCCCB"
	fillHeader = "#D9D9D9"
)

const maxSheetNameLen = 30

var sheetHeaders = []string{"Date", "First In", "Last Out", "Worked", "Expected", "Diff", "Met"}

type sheetStyles struct {
	title  int
	header int
	met    int
	missed int
}

// ExportRangeWorkbook implements report.ReportService. Without an employee id
// the workbook carries one sheet per active employee; with one, a single
// sheet for that employee.
func (s *ReportServiceImpl) ExportRangeWorkbook(ctx context.Context, req report.RangeReportRequest) (*excelize.File, string, error) {
	f := excelize.NewFile()

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook styles: %w", err)
	}

	var filename string
	if req.EmployeeID != nil {
		single, err := s.RangeReport(ctx, req)
		if err != nil {
			return nil, "", err
		}
		writeEmployeeSheet(f, "Attendance Report", styles, report.EmployeeRangeReport{
			Employee: single.Employee,
			Summary:  single.Summary,
			Details:  single.Details,
		}, single.Period)
		filename = fmt.Sprintf("report_%s_%s_%s.xlsx", single.Employee.FamilyName, req.StartDate, req.EndDate)
	} else {
		all, err := s.RangeReportAll(ctx, req)
		if err != nil {
			return nil, "", err
		}
		for _, emp := range all.Employees {
			name := sheetName(emp.Employee.FamilyName + ", " + emp.Employee.GivenName)
			writeEmployeeSheet(f, name, styles, emp, all.Period)
		}
		filename = fmt.Sprintf("report_all_%s_%s.xlsx", req.StartDate, req.EndDate)
	}

	f.DeleteSheet("Sheet1")
	return f, filename, nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{fillHeader}, Pattern: 1},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	met, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fillMet}, Pattern: 1},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	missed, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fillMissed}, Pattern: 1},
	})
	if err != nil {
		return sheetStyles{}, err
	}
	return sheetStyles{title: title, header: header, met: met, missed: missed}, nil
}

func writeEmployeeSheet(f *excelize.File, name string, styles sheetStyles, emp report.EmployeeRangeReport, period report.Period) {
	f.NewSheet(name)

	f.SetCellValue(name, "A1", fmt.Sprintf("Attendance Report - %s %s", emp.Employee.GivenName, emp.Employee.FamilyName))
	f.MergeCell(name, "A1", "G1")
	f.SetCellStyle(name, "A1", "G1", styles.title)

	f.SetCellValue(name, "A2", fmt.Sprintf("Period: %s to %s", period.StartDate, period.EndDate))
	f.MergeCell(name, "A2", "G2")

	for i, h := range sheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(name, cell, h)
	}
	f.SetCellStyle(name, "A4", "G4", styles.header)

	row := 5
	for _, day := range emp.Details {
		met := "NO"
		if day.Met {
			met = "YES"
		}
		f.SetCellValue(name, fmt.Sprintf("A%d", row), day.Date)
		f.SetCellValue(name, fmt.Sprintf("B%d", row), day.In)
		f.SetCellValue(name, fmt.Sprintf("C%d", row), day.Out)
		f.SetCellValue(name, fmt.Sprintf("D%d", row), day.Worked)
		f.SetCellValue(name, fmt.Sprintf("E%d", row), day.Expected)
		f.SetCellValue(name, fmt.Sprintf("F%d", row), day.Diff)
		f.SetCellValue(name, fmt.Sprintf("G%d", row), met)

		// Only days with punch data on both ends get a verdict color.
		if day.Worked > 0 {
			cell := fmt.Sprintf("G%d", row)
			if day.Met {
				f.SetCellStyle(name, cell, cell, styles.met)
			} else {
				f.SetCellStyle(name, cell, cell, styles.missed)
			}
		}
		row++
	}

	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "SUMMARY")
	f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.header)
	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "Total Hours")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), emp.Summary.TotalHours)
	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "Days Worked")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), emp.Summary.DaysWorked)
	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "Avg Daily")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), emp.Summary.AvgDaily)
	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "Expected Total")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), emp.Summary.ExpectedTotal)
	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "Diff Total")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), emp.Summary.DiffTotal)

	f.SetColWidth(name, "A", "A", 12)
	f.SetColWidth(name, "B", "G", 15)
}

// sheetName sanitizes a display name into a legal sheet name. Excel caps
// sheet names at 31 characters and forbids a handful of punctuation.
func sheetName(name string) string {
	replacer := strings.NewReplacer("\\", "", "/", "", "?", "", "*", "", "[", "", "]", "", ":", "")
	name = replacer.Replace(name)
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}
