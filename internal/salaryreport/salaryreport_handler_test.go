package salaryreport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-diamond-payroll/internal/salaryreport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryReportService struct {
	salaryreport.Service
	ReportFn func(ctx context.Context, req salaryreport.ReportRequest) (salaryreport.ReportResponse, error)
	ExcelFn  func(ctx context.Context, req salaryreport.ReportRequest) ([]byte, string, error)
}

func (f *fakeSalaryReportService) Report(ctx context.Context, req salaryreport.ReportRequest) (salaryreport.ReportResponse, error) {
	return f.ReportFn(ctx, req)
}

func (f *fakeSalaryReportService) Excel(ctx context.Context, req salaryreport.ReportRequest) ([]byte, string, error) {
	return f.ExcelFn(ctx, req)
}

func newRouter(svc salaryreport.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := salaryreport.NewHandler(svc)
	r := gin.New()
	r.GET("/salary-report", h.Report)
	r.GET("/salary-report/excel", h.Excel)
	return r
}

func TestSalaryReportHandler(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		svc := &fakeSalaryReportService{
			ReportFn: func(ctx context.Context, req salaryreport.ReportRequest) (salaryreport.ReportResponse, error) {
				assert.Equal(t, 3, req.Month)
				return salaryreport.ReportResponse{Month: 3, Year: 2024}, nil
			},
		}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary-report?month=3&year=2024", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"month":3`)
	})

	t.Run("excel attachment", func(t *testing.T) {
		svc := &fakeSalaryReportService{
			ExcelFn: func(ctx context.Context, req salaryreport.ReportRequest) ([]byte, string, error) {
				return []byte("xlsx"), "salary-report-2024-03.xlsx", nil
			},
		}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary-report/excel?month=3&year=2024", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "salary-report-2024-03.xlsx")
	})

	t.Run("bad month", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&fakeSalaryReportService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/salary-report?month=0&year=1999", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
