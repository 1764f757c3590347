package salaryreport

import (
	"context"
	"fmt"
	"time"

	"go-diamond-payroll/internal/department"
	"go-diamond-payroll/internal/diamondentry"
	"go-diamond-payroll/internal/employee"
	salaryreporterrors "go-diamond-payroll/internal/salaryreport/errors"
	"go-diamond-payroll/internal/salarytransfer"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/wage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=salaryreport_service.go -destination=mock/salaryreport_service_mock.go -package=mock
type Service interface {
	Report(ctx context.Context, req ReportRequest) (ReportResponse, error)
	Excel(ctx context.Context, req ReportRequest) ([]byte, string, error)
	PDF(ctx context.Context, req ReportRequest) ([]byte, string, error)
}

type service struct {
	empRepo     employee.Repository
	entryRepo   diamondentry.Repository
	paymentRepo salarytransfer.Repository
	deptRepo    department.Repository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	empRepo employee.Repository,
	entryRepo diamondentry.Repository,
	paymentRepo salarytransfer.Repository,
	deptRepo department.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salaryreport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryreport.service")
	}
	return &service{
		empRepo:     empRepo,
		entryRepo:   entryRepo,
		paymentRepo: paymentRepo,
		deptRepo:    deptRepo,
		now:         time.Now,
		logger:      l,
	}
}

// Report builds one row per active employee with month-scoped wages and
// what was already paid for that month.
func (s *service) Report(ctx context.Context, req ReportRequest) (ReportResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	month, year := req.Month, req.Year
	if month == 0 || year == 0 {
		now := s.now().UTC()
		month, year = int(now.Month()), now.Year()
	}

	var (
		emps  []employee.Employee
		depts []department.Department
		paid  map[string]decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		active := true
		var err error
		emps, _, err = s.empRepo.FindAll(gctx, employee.Filter{DepartmentID: req.DepartmentID, Active: &active})
		return err
	})
	g.Go(func() error {
		var err error
		depts, err = s.deptRepo.FindAll(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		paid, err = s.paymentRepo.SumPaidByEmployee(gctx, month, year)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("salary report load failed", zap.Error(err))
		return ReportResponse{}, err
	}

	names := make(map[string]string, len(depts))
	for _, d := range depts {
		names[d.ID.String()] = d.Name
	}
	if req.DepartmentID != "" {
		if _, ok := names[req.DepartmentID]; !ok {
			return ReportResponse{}, salaryreporterrors.ErrDepartmentNotFound
		}
	}

	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID.String()
	}
	totals, err := s.entryRepo.SumByEmployee(ctx, ids, month, year)
	if err != nil {
		return ReportResponse{}, err
	}

	resp := ReportResponse{
		Month:        month,
		Year:         year,
		DepartmentID: req.DepartmentID,
		Rows:         make([]ReportRow, 0, len(emps)),
		Totals: ReportTotals{
			GrossSalary: decimal.Zero,
			Deductions:  decimal.Zero,
			NetSalary:   decimal.Zero,
			PaidAmount:  decimal.Zero,
		},
	}
	for _, e := range emps {
		t := totals[e.ID.String()]
		r := wage.CalculateTotals(e.Figures(), t.Total, t.EntryCount)
		paidAmount, ok := paid[e.ID.String()]
		if !ok {
			paidAmount = decimal.Zero
		}

		row := ReportRow{
			EmployeeID:    e.ID.String(),
			EmployeeCode:  e.EmployeeCode,
			Name:          e.Name,
			EmployeeType:  e.EmployeeType,
			Department:    names[e.DepartmentIDString()],
			SubDepartment: e.SubDepartment,
			EntryCount:    r.EntryCount,
			EntryTotal:    r.EntryTotal,
			GrossSalary:   r.GrossSalary,
			Deductions:    r.Deductions,
			NetSalary:     r.NetSalary,
			PaidAmount:    paidAmount,
		}
		resp.Rows = append(resp.Rows, row)

		resp.Totals.Employees++
		resp.Totals.EntryCount += row.EntryCount
		resp.Totals.GrossSalary = resp.Totals.GrossSalary.Add(row.GrossSalary)
		resp.Totals.Deductions = resp.Totals.Deductions.Add(row.Deductions)
		resp.Totals.NetSalary = resp.Totals.NetSalary.Add(row.NetSalary)
		resp.Totals.PaidAmount = resp.Totals.PaidAmount.Add(row.PaidAmount)
	}
	return resp, nil
}

func (s *service) Excel(ctx context.Context, req ReportRequest) ([]byte, string, error) {
	report, err := s.Report(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := BuildWorkbook(report)
	if err != nil {
		return nil, "", renderError(err)
	}
	return data, fmt.Sprintf("salary-report-%d-%02d.xlsx", report.Year, report.Month), nil
}

func (s *service) PDF(ctx context.Context, req ReportRequest) ([]byte, string, error) {
	report, err := s.Report(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := RenderPDF(report)
	if err != nil {
		return nil, "", renderError(err)
	}
	return data, fmt.Sprintf("salary-report-%d-%02d.pdf", report.Year, report.Month), nil
}

func renderError(err error) error {
	return salaryreporterrors.ErrRenderFailed.WithErr(err)
}
