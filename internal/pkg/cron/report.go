package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/rioplata/fichadas-backend/internal/config"
	"github.com/rioplata/fichadas-backend/internal/pkg/timeclock"
	reportsvc "github.com/rioplata/fichadas-backend/internal/service/report"
)

// ReportJobs delivers the scheduled report emails. Both jobs tick hourly and
// gate on the business-local wall clock, so delivery windows follow UTC-3
// regardless of where the server runs.
type ReportJobs struct {
	mailer *reportsvc.Mailer
	cfg    config.ReportConfig
}

func NewReportJobs(mailer *reportsvc.Mailer, cfg config.ReportConfig) *ReportJobs {
	return &ReportJobs{
		mailer: mailer,
		cfg:    cfg,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_report_email", 1*time.Hour, j.SendDailyReport)
	scheduler.AddJob("weekly_report_email", 1*time.Hour, j.SendWeeklyReport)
}

func (j *ReportJobs) SendDailyReport(ctx context.Context) error {
	if timeclock.Now().Hour() != j.cfg.DailySendHour {
		return nil
	}

	slog.Info("Cron: Sending daily attendance report")
	return j.mailer.SendDaily(ctx)
}

func (j *ReportJobs) SendWeeklyReport(ctx context.Context) error {
	now := timeclock.Now()
	if now.Weekday() != time.Weekday(j.cfg.WeeklySendDay) || now.Hour() != j.cfg.WeeklySendHour {
		return nil
	}

	slog.Info("Cron: Sending weekly attendance report")
	return j.mailer.SendWeekly(ctx)
}
