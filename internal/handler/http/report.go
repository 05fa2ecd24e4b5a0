package http

import (
	"fmt"
	"net/http"

	"github.com/rioplata/fichadas-backend/internal/domain/report"
	"github.com/rioplata/fichadas-backend/internal/handler/http/response"
	reportsvc "github.com/rioplata/fichadas-backend/internal/service/report"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Range(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	EmailDaily(w http.ResponseWriter, r *http.Request)
	EmailWeekly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	mailer        *reportsvc.Mailer
}

func NewReportHandler(reportService report.ReportService, mailer *reportsvc.Mailer) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		mailer:        mailer,
	}
}

// Daily handles GET /reports/daily
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.reportService.Daily(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Weekly handles GET /reports/weekly
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.reportService.Weekly(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Range handles GET /reports/range. With an employee_id query parameter it
// returns the single-employee report, without one the all-employees report.
func (h *reportHandlerImpl) Range(w http.ResponseWriter, r *http.Request) {
	req := rangeRequest(r)

	if req.EmployeeID != nil {
		result, err := h.reportService.RangeReport(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.reportService.RangeReportAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Export handles GET /reports/range/export, streaming the range report as an
// xlsx attachment.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := rangeRequest(r)

	workbook, filename, err := h.reportService.ExportRangeWorkbook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(w); err != nil {
		// Headers are gone; nothing left to do but log via the request logger.
		return
	}
}

// EmailDaily handles POST /reports/email/daily
func (h *reportHandlerImpl) EmailDaily(w http.ResponseWriter, r *http.Request) {
	if err := h.mailer.SendDaily(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily report email sent", nil)
}

// EmailWeekly handles POST /reports/email/weekly
func (h *reportHandlerImpl) EmailWeekly(w http.ResponseWriter, r *http.Request) {
	if err := h.mailer.SendWeekly(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly report email sent", nil)
}

func rangeRequest(r *http.Request) report.RangeReportRequest {
	req := report.RangeReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}
	return req
}
