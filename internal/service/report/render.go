package report

import (
	"fmt"
	"strings"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
)

// RenderDaily formats a daily snapshot as the plain-text body of the daily
// report email.
func RenderDaily(r report.DailyReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("DAILY ATTENDANCE REPORT - %s\n", r.Date))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(r.Employees) == 0 {
		b.WriteString("No active employees.\n")
		return b.String()
	}

	for _, row := range r.Employees {
		b.WriteString(row.Name + "\n")
		b.WriteString(fmt.Sprintf("Schedule: %s\n", row.Schedule))
		if row.PunchSummary != nil {
			b.WriteString(fmt.Sprintf("Punches: %s\n", *row.PunchSummary))
		} else {
			b.WriteString("Punches: no punches\n")
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return b.String()
}

// RenderWeekly formats a weekly snapshot as the plain-text body of the weekly
// report email.
func RenderWeekly(r report.WeeklyReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("WEEKLY ATTENDANCE REPORT - %s to %s\n", r.StartDate, r.EndDate))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(r.Employees) == 0 {
		b.WriteString("No punches recorded this week.\n")
		return b.String()
	}

	for _, emp := range r.Employees {
		b.WriteString(fmt.Sprintf("%s (%d days worked)\n", emp.Name, emp.DaysWorked))
		for _, day := range emp.Days {
			if day.PunchSummary != nil {
				b.WriteString(fmt.Sprintf("  %s: %s\n", day.Date, *day.PunchSummary))
			} else {
				b.WriteString(fmt.Sprintf("  %s: no punches\n", day.Date))
			}
		}
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}

	return b.String()
}
