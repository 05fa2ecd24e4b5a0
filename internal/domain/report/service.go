package report

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// ReportService defines the aggregation engine. Every call recomputes from
// the record store; nothing derived is cached between requests.
type ReportService interface {
	// RangeReport builds the custom-range report for one employee
	RangeReport(ctx context.Context, req RangeReportRequest) (RangeReport, error)

	// RangeReportAll builds the custom-range report for every active
	// employee, including those without punches in range
	RangeReportAll(ctx context.Context, req RangeReportRequest) (AllEmployeesReport, error)

	// Daily builds the snapshot for one business date; empty date means today
	Daily(ctx context.Context, date string) (DailyReport, error)

	// Weekly builds the snapshot for [start, end]; empty bounds mean the
	// current Sunday-based calendar week
	Weekly(ctx context.Context, startDate, endDate string) (WeeklyReport, error)

	// Compliance scores the trailing window for every active employee
	Compliance(ctx context.Context) ([]ComplianceRow, error)

	// DailyStatus classifies today's punctuality for every active employee
	DailyStatus(ctx context.Context) ([]DailyStatusRow, error)

	// ExportRangeWorkbook projects a custom-range report into a spreadsheet,
	// one sheet per employee. Returns the workbook and a download filename.
	ExportRangeWorkbook(ctx context.Context, req RangeReportRequest) (*excelize.File, string, error)
}
