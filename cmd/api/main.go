package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rioplata/fichadas-backend/internal/config"
	"github.com/rioplata/fichadas-backend/internal/fixtures"
	appHTTP "github.com/rioplata/fichadas-backend/internal/handler/http"
	"github.com/rioplata/fichadas-backend/internal/pkg/cron"
	"github.com/rioplata/fichadas-backend/internal/pkg/database"
	"github.com/rioplata/fichadas-backend/internal/pkg/email"
	"github.com/rioplata/fichadas-backend/internal/repository/postgresql"
	employeeService "github.com/rioplata/fichadas-backend/internal/service/employee"
	punchService "github.com/rioplata/fichadas-backend/internal/service/punch"
	reportService "github.com/rioplata/fichadas-backend/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	if err := fixtures.SeedSampleEmployees(context.Background(), db, employeeRepo); err != nil {
		log.Fatal("Failed to seed sample employees:", err)
	}

	emailSvc := email.NewEmailService(cfg.SMTP)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, reportRepo)
	mailer := reportService.NewMailer(reportSvc, emailSvc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, reportSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, mailer)

	scheduler := cron.NewScheduler()
	cron.NewReportJobs(mailer, cfg.Report).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(employeeHandler, punchHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
