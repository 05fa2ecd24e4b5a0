package report

import (
	"context"
	"fmt"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
	"github.com/rioplata/fichadas-backend/internal/pkg/email"
	"github.com/rioplata/fichadas-backend/internal/pkg/timeclock"
)

// Mailer renders report snapshots and hands them to the email service. It is
// shared by the scheduled jobs and the on-demand trigger endpoints.
type Mailer struct {
	reportSvc report.ReportService
	emailSvc  email.EmailService
}

func NewMailer(reportSvc report.ReportService, emailSvc email.EmailService) *Mailer {
	return &Mailer{
		reportSvc: reportSvc,
		emailSvc:  emailSvc,
	}
}

// SendDaily emails today's snapshot.
func (m *Mailer) SendDaily(ctx context.Context) error {
	date := timeclock.Today()

	r, err := m.reportSvc.Daily(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to build daily report: %w", err)
	}

	subject := fmt.Sprintf("Daily Attendance Report - %s", date)
	if err := m.emailSvc.SendReport(subject, RenderDaily(r)); err != nil {
		return fmt.Errorf("failed to send daily report: %w", err)
	}
	return nil
}

// SendWeekly emails the snapshot for the week before the current one: the
// Monday morning job reports on the week that just closed.
func (m *Mailer) SendWeekly(ctx context.Context) error {
	start, end := timeclock.PreviousWeek(timeclock.Now())

	r, err := m.reportSvc.Weekly(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to build weekly report: %w", err)
	}

	subject := fmt.Sprintf("Weekly Attendance Report - %s to %s", start, end)
	if err := m.emailSvc.SendReport(subject, RenderWeekly(r)); err != nil {
		return fmt.Errorf("failed to send weekly report: %w", err)
	}
	return nil
}
