package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
)

func TestRenderDaily(t *testing.T) {
	r := report.DailyReport{
		Date: "2026-08-03",
		Employees: []report.DailyReportRow{
			{
				Name:         "González, María",
				Schedule:     "Lunes a Viernes 8:00 a 17:00",
				PunchSummary: strPtr("in:08:01:22, out:17:03:45"),
			},
			{
				Name:     "Pérez, Juan",
				Schedule: "Lunes a Viernes 9:00 a 18:00",
			},
		},
	}

	body := RenderDaily(r)
	assert.True(t, strings.HasPrefix(body, "DAILY ATTENDANCE REPORT - 2026-08-03\n"))
	assert.Contains(t, body, "González, María")
	assert.Contains(t, body, "Punches: in:08:01:22, out:17:03:45")
	assert.Contains(t, body, "Punches: no punches")
}

func TestRenderDailyEmpty(t *testing.T) {
	body := RenderDaily(report.DailyReport{Date: "2026-08-03"})
	assert.Contains(t, body, "No active employees.")
}

func TestRenderWeekly(t *testing.T) {
	r := report.WeeklyReport{
		StartDate: "2026-08-02",
		EndDate:   "2026-08-08",
		Employees: []report.WeeklyEmployee{
			{
				Name:       "Pérez, Juan",
				DaysWorked: 2,
				Days: []report.WeeklyDay{
					{Date: "2026-08-03", PunchSummary: strPtr("in:09:00:00, out:18:00:00")},
					{Date: "2026-08-04", PunchSummary: strPtr("in:09:02:00, out:18:05:00")},
				},
			},
		},
	}

	body := RenderWeekly(r)
	assert.True(t, strings.HasPrefix(body, "WEEKLY ATTENDANCE REPORT - 2026-08-02 to 2026-08-08\n"))
	assert.Contains(t, body, "Pérez, Juan (2 days worked)")
	assert.Contains(t, body, "  2026-08-03: in:09:00:00, out:18:00:00")
}

func TestRenderWeeklyEmpty(t *testing.T) {
	body := RenderWeekly(report.WeeklyReport{StartDate: "2026-08-02", EndDate: "2026-08-08"})
	assert.Contains(t, body, "No punches recorded this week.")
}
