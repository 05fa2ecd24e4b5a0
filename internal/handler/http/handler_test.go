package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rioplata/fichadas-backend/internal/domain/employee"
	"github.com/rioplata/fichadas-backend/internal/domain/punch"
	"github.com/rioplata/fichadas-backend/internal/domain/report"
	reportsvc "github.com/rioplata/fichadas-backend/internal/service/report"
)

const testEmployeeID = "4f1c6f64-0000-4000-8000-000000000001"

type fakeEmployeeService struct {
	employees map[string]employee.EmployeeResponse
}

func (f *fakeEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	out := make([]employee.EmployeeResponse, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	resp := employee.EmployeeResponse{
		ID:                  testEmployeeID,
		GivenName:           req.GivenName,
		FamilyName:          req.FamilyName,
		ScheduleDescription: req.ScheduleDescription,
		ExpectedDailyHours:  employee.DefaultDailyHours,
		ExpectedWeeklyHours: employee.DefaultWeeklyHours,
		Active:              true,
	}
	f.employees[resp.ID] = resp
	return resp, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	e, ok := f.employees[id]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeService) Deactivate(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

type fakePunchService struct{}

func (f *fakePunchService) Punch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}
	return punch.PunchResponse{
		ID:         "punch-1",
		EmployeeID: req.EmployeeID,
		Kind:       punch.KindIn,
		PunchedAt:  "2026-08-03 09:00:00",
		Message:    "Punch in recorded successfully",
	}, nil
}

func (f *fakePunchService) Status(ctx context.Context, employeeID string) (punch.StatusResponse, error) {
	return punch.StatusResponse{NextKind: punch.KindIn}, nil
}

func (f *fakePunchService) List(ctx context.Context, filter punch.ListFilter) ([]punch.PunchRecord, error) {
	return []punch.PunchRecord{}, nil
}

type fakeReportService struct{}

func (f *fakeReportService) RangeReport(ctx context.Context, req report.RangeReportRequest) (report.RangeReport, error) {
	if err := req.Validate(); err != nil {
		return report.RangeReport{}, err
	}
	return report.RangeReport{Period: report.Period{StartDate: req.StartDate, EndDate: req.EndDate}}, nil
}

func (f *fakeReportService) RangeReportAll(ctx context.Context, req report.RangeReportRequest) (report.AllEmployeesReport, error) {
	if err := req.Validate(); err != nil {
		return report.AllEmployeesReport{}, err
	}
	return report.AllEmployeesReport{Period: report.Period{StartDate: req.StartDate, EndDate: req.EndDate}}, nil
}

func (f *fakeReportService) Daily(ctx context.Context, date string) (report.DailyReport, error) {
	return report.DailyReport{Date: date}, nil
}

func (f *fakeReportService) Weekly(ctx context.Context, startDate, endDate string) (report.WeeklyReport, error) {
	return report.WeeklyReport{StartDate: startDate, EndDate: endDate}, nil
}

func (f *fakeReportService) Compliance(ctx context.Context) ([]report.ComplianceRow, error) {
	return []report.ComplianceRow{}, nil
}

func (f *fakeReportService) DailyStatus(ctx context.Context) ([]report.DailyStatusRow, error) {
	return []report.DailyStatusRow{}, nil
}

func (f *fakeReportService) ExportRangeWorkbook(ctx context.Context, req report.RangeReportRequest) (*excelize.File, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	wb := excelize.NewFile()
	return wb, "report_all_" + req.StartDate + "_" + req.EndDate + ".xlsx", nil
}

type fakeEmailService struct {
	subjects []string
}

func (f *fakeEmailService) SendReport(subject, body string) error {
	f.subjects = append(f.subjects, subject)
	return nil
}

func newTestRouter() (http.Handler, *fakeEmailService) {
	employeeSvc := &fakeEmployeeService{
		employees: map[string]employee.EmployeeResponse{
			testEmployeeID: {
				ID:         testEmployeeID,
				GivenName:  "Juan",
				FamilyName: "Pérez",
				Active:     true,
			},
		},
	}
	reportSvc := &fakeReportService{}
	emailSvc := &fakeEmailService{}
	mailer := reportsvc.NewMailer(reportSvc, emailSvc)

	router := NewRouter(
		NewEmployeeHandler(employeeSvc, reportSvc),
		NewPunchHandler(&fakePunchService{}),
		NewReportHandler(reportSvc, mailer),
	)
	return router, emailSvc
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListEmployeesEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    []employee.EmployeeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Juan", resp.Data[0].GivenName)
}

func TestGetEmployeeNotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/4f1c6f64-0000-4000-8000-000000000099", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEmployeeValidation(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees", map[string]string{
		"given_name": "Juan",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "family_name")
}

func TestPunchEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/punches", map[string]string{
		"employee_id": testEmployeeID,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "recorded successfully")
}

func TestPunchEndpointRejectsBadBody(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/punches", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpointHeaders(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/range/export?start_date=2026-08-01&end_date=2026-08-07", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report_all_2026-08-01_2026-08-07.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestExportEndpointValidatesDates(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/reports/range/export", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEmailTriggerEndpoints(t *testing.T) {
	router, emailSvc := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/reports/email/daily", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/reports/email/weekly", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, emailSvc.subjects, 2)
	assert.Contains(t, emailSvc.subjects[0], "Daily Attendance Report")
	assert.Contains(t, emailSvc.subjects[1], "Weekly Attendance Report")
}
