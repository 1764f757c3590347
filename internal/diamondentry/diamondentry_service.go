package diamondentry

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	diamondentryerrors "go-diamond-payroll/internal/diamondentry/errors"
	"go-diamond-payroll/internal/diamondprice"
	"go-diamond-payroll/internal/employee"
	employeeerrors "go-diamond-payroll/internal/employee/errors"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/shared/response"
	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=diamondentry_service.go -destination=mock/diamondentry_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryMutationResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateRequest) (EntryMutationResponse, error)
	GetAll(ctx context.Context, req ListEntriesRequest) ([]EntryResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (EntryResponse, error)
	Update(ctx context.Context, id string, req UpdateEntryRequest) (EntryMutationResponse, error)
	Delete(ctx context.Context, id string) (EntryMutationResponse, error)
	SalarySummary(ctx context.Context, employeeID string, req PeriodRequest) (SalarySummaryResponse, error)
	DepartmentMonthlySalary(ctx context.Context, departmentID string, req PeriodRequest) (DepartmentMonthlyResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	empRepo   employee.Repository
	priceRepo diamondprice.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	empRepo employee.Repository,
	priceRepo diamondprice.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("diamondentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diamondentry.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		empRepo:   empRepo,
		priceRepo: priceRepo,
		now:       time.Now,
		logger:    l,
	}
}

// txRepos groups the repositories bound to one transaction.
type txRepos struct {
	entries   Repository
	employees employee.Repository
	prices    diamondprice.Repository
}

func (s *service) begin(ctx context.Context) (*sql.Tx, txRepos, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, txRepos{}, err
	}
	return tx, txRepos{
		entries:   s.repo.WithTx(tx),
		employees: s.empRepo.WithTx(tx),
		prices:    s.priceRepo.WithTx(tx),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateEntryRequest) (EntryMutationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	date, err := parseDate(req.Date)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	tx, q, err := s.begin(ctx)
	if err != nil {
		return EntryMutationResponse{}, err
	}
	defer tx.Rollback()

	emp, err := lockActiveEmployee(ctx, q.employees, req.EmployeeID)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	price, _, err := diamondprice.Resolve(ctx, q.prices, priceQuery(emp, req.Category), diamondprice.PrecedenceCreate)
	if err != nil {
		log.Warn("create diamond entry price unresolved",
			zap.String("employee_id", req.EmployeeID),
			zap.String("category", req.Category),
			zap.Error(err),
		)
		return EntryMutationResponse{}, err
	}

	entry := newEntry(emp, date, req.Category, req.Quantity, price.Price)
	if err := q.entries.Create(ctx, entry); err != nil {
		log.Error("create diamond entry persist failed", zap.Error(err))
		return EntryMutationResponse{}, err
	}

	salary, err := recompute(ctx, q.employees, emp)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryMutationResponse{}, err
	}

	log.Info("create diamond entry success",
		zap.String("entry_id", entry.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("daily_salary", entry.DailySalary.String()),
	)
	resp := mapToResponse(*entry)
	return EntryMutationResponse{Entry: &resp, Employees: []EmployeeSalary{salary}}, nil
}

// BulkCreate stores every item or none of them.
func (s *service) BulkCreate(ctx context.Context, req BulkCreateRequest) (EntryMutationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if len(req.Entries) == 0 {
		return EntryMutationResponse{}, diamondentryerrors.ErrEmptyBulk
	}

	dates := make([]time.Time, len(req.Entries))
	for i, item := range req.Entries {
		d, err := parseDate(item.Date)
		if err != nil {
			return EntryMutationResponse{}, err
		}
		dates[i] = d
	}

	tx, q, err := s.begin(ctx)
	if err != nil {
		return EntryMutationResponse{}, err
	}
	defer tx.Rollback()

	emp, err := lockActiveEmployee(ctx, q.employees, req.EmployeeID)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	prices := make(map[string]decimal.Decimal)
	entries := make([]DiamondEntry, 0, len(req.Entries))
	for i, item := range req.Entries {
		category := strings.TrimSpace(item.Category)
		price, ok := prices[category]
		if !ok {
			rule, _, err := diamondprice.Resolve(ctx, q.prices, priceQuery(emp, category), diamondprice.PrecedenceCreate)
			if err != nil {
				return EntryMutationResponse{}, err
			}
			price = rule.Price
			prices[category] = price
		}
		entries = append(entries, *newEntry(emp, dates[i], category, item.Quantity, price))
	}

	if err := q.entries.CreateBatch(ctx, entries); err != nil {
		log.Error("bulk create diamond entries persist failed", zap.Error(err))
		return EntryMutationResponse{}, err
	}

	salary, err := recompute(ctx, q.employees, emp)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryMutationResponse{}, err
	}

	log.Info("bulk create diamond entries success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("count", len(entries)),
	)
	return EntryMutationResponse{Entries: mapToListResponse(entries), Employees: []EmployeeSalary{salary}}, nil
}

func (s *service) GetAll(ctx context.Context, req ListEntriesRequest) ([]EntryResponse, *response.PaginationMeta, error) {
	if (req.Month == 0) != (req.Year == 0) {
		return nil, nil, diamondentryerrors.ErrInvalidPeriod
	}

	filter := Filter{
		EmployeeID:   req.EmployeeID,
		DepartmentID: req.DepartmentID,
		Category:     strings.TrimSpace(req.Category),
		Month:        req.Month,
		Year:         req.Year,
		Page:         req.Page,
		PageSize:     req.PageSize,
	}
	if filter.Page > 0 && filter.PageSize == 0 {
		filter.PageSize = 20
	}

	entries, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var meta *response.PaginationMeta
	if filter.Page > 0 {
		m := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
		meta = &m
	}
	return mapToListResponse(entries), meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EntryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EntryResponse{}, diamondentryerrors.ErrInvalidEntryID
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EntryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*entry), nil
}

// Update edits quantity, date, category or owner. A category change
// re-resolves the price with update precedence; otherwise the snapshot stays.
func (s *service) Update(ctx context.Context, id string, req UpdateEntryRequest) (EntryMutationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return EntryMutationResponse{}, diamondentryerrors.ErrInvalidEntryID
	}

	var date time.Time
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			return EntryMutationResponse{}, err
		}
		date = d
	}

	tx, q, err := s.begin(ctx)
	if err != nil {
		return EntryMutationResponse{}, err
	}
	defer tx.Rollback()

	entry, err := q.entries.FindByIDForUpdate(ctx, id)
	if err != nil {
		return EntryMutationResponse{}, mapRepositoryError(err)
	}

	ownerID := entry.EmployeeID.String()
	targetID := ownerID
	if req.EmployeeID != "" {
		targetID = req.EmployeeID
	}

	locked, err := lockEmployees(ctx, q.employees, ownerID, targetID)
	if err != nil {
		return EntryMutationResponse{}, err
	}
	target := locked[targetID]
	if targetID != ownerID {
		if !target.IsActive {
			return EntryMutationResponse{}, employeeerrors.ErrEmployeeInactive
		}
		entry.EmployeeID = target.ID
		entry.DepartmentID = target.DepartmentID
		entry.SubDepartment = target.SubDepartment
	}

	if !date.IsZero() {
		entry.Date = date
	}
	if req.Quantity > 0 {
		entry.Quantity = req.Quantity
	}

	price := entry.DiamondPrice
	if category := strings.TrimSpace(req.Category); category != "" && category != entry.Category {
		rule, _, err := diamondprice.Resolve(ctx, q.prices, priceQuery(target, category), diamondprice.PrecedenceUpdate)
		if err != nil {
			return EntryMutationResponse{}, err
		}
		entry.Category = category
		price = rule.Price
	}
	entry.ApplyPrice(price)

	if err := q.entries.Update(ctx, entry); err != nil {
		log.Error("update diamond entry persist failed", zap.Error(err))
		return EntryMutationResponse{}, err
	}

	salaries := make([]EmployeeSalary, 0, len(locked))
	for _, empID := range sortedKeys(locked) {
		salary, err := recompute(ctx, q.employees, locked[empID])
		if err != nil {
			return EntryMutationResponse{}, err
		}
		salaries = append(salaries, salary)
	}

	if err := tx.Commit(); err != nil {
		return EntryMutationResponse{}, err
	}

	log.Info("update diamond entry success",
		zap.String("entry_id", id),
		zap.Int("employees_recomputed", len(salaries)),
	)
	resp := mapToResponse(*entry)
	return EntryMutationResponse{Entry: &resp, Employees: salaries}, nil
}

func (s *service) Delete(ctx context.Context, id string) (EntryMutationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(id); err != nil {
		return EntryMutationResponse{}, diamondentryerrors.ErrInvalidEntryID
	}

	tx, q, err := s.begin(ctx)
	if err != nil {
		return EntryMutationResponse{}, err
	}
	defer tx.Rollback()

	entry, err := q.entries.FindByIDForUpdate(ctx, id)
	if err != nil {
		return EntryMutationResponse{}, mapRepositoryError(err)
	}

	emp, err := q.employees.FindByIDForUpdate(ctx, entry.EmployeeID.String())
	if err != nil {
		return EntryMutationResponse{}, mapEmployeeError(err)
	}

	if err := q.entries.Delete(ctx, id); err != nil {
		return EntryMutationResponse{}, mapRepositoryError(err)
	}

	salary, err := recompute(ctx, q.employees, emp)
	if err != nil {
		return EntryMutationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EntryMutationResponse{}, err
	}

	log.Info("delete diamond entry success",
		zap.String("entry_id", id),
		zap.String("employee_id", emp.ID.String()),
	)
	return EntryMutationResponse{Employees: []EmployeeSalary{salary}}, nil
}

// SalarySummary runs the calculator over all entries, or one month when
// month and year are given.
func (s *service) SalarySummary(ctx context.Context, employeeID string, req PeriodRequest) (SalarySummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalarySummaryResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if (req.Month == 0) != (req.Year == 0) {
		return SalarySummaryResponse{}, diamondentryerrors.ErrInvalidPeriod
	}

	emp, err := s.empRepo.FindByID(ctx, employeeID)
	if err != nil {
		return SalarySummaryResponse{}, mapEmployeeError(err)
	}

	figures, err := s.empRepo.ListEntryFigures(ctx, employeeID)
	if err != nil {
		return SalarySummaryResponse{}, err
	}
	if req.Month > 0 {
		figures = wage.FilterMonth(figures, req.Month, req.Year)
	}

	return SalarySummaryResponse{
		EmployeeID:   emp.ID.String(),
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		EmployeeType: emp.EmployeeType,
		Month:        req.Month,
		Year:         req.Year,
		Calculated:   wage.Calculate(emp.Figures(), figures),
		Stored:       storedSalary(emp),
		Categories:   wage.ByCategory(figures),
	}, nil
}

// DepartmentMonthlySalary returns month-scoped figures for every active
// employee of the department. Month and year default to the current month.
func (s *service) DepartmentMonthlySalary(ctx context.Context, departmentID string, req PeriodRequest) (DepartmentMonthlyResponse, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return DepartmentMonthlyResponse{}, diamondentryerrors.ErrInvalidDepartmentID
	}
	month, year := req.Month, req.Year
	if month == 0 || year == 0 {
		now := s.now().UTC()
		month, year = int(now.Month()), now.Year()
	}

	active := true
	emps, _, err := s.empRepo.FindAll(ctx, employee.Filter{DepartmentID: departmentID, Active: &active})
	if err != nil {
		return DepartmentMonthlyResponse{}, err
	}

	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID.String()
	}

	totals, err := s.repo.SumByEmployee(ctx, ids, month, year)
	if err != nil {
		return DepartmentMonthlyResponse{}, err
	}

	resp := DepartmentMonthlyResponse{
		DepartmentID: departmentID,
		Month:        month,
		Year:         year,
		Employees:    make([]EmployeeMonthlyRow, 0, len(emps)),
		TotalGross:   decimal.Zero,
		TotalNet:     decimal.Zero,
	}
	for _, e := range emps {
		t := totals[e.ID.String()]
		r := wage.CalculateTotals(e.Figures(), t.Total, t.EntryCount)
		resp.Employees = append(resp.Employees, EmployeeMonthlyRow{
			EmployeeID:    e.ID.String(),
			EmployeeCode:  e.EmployeeCode,
			Name:          e.Name,
			EmployeeType:  e.EmployeeType,
			SubDepartment: e.SubDepartment,
			EntryCount:    r.EntryCount,
			EntryTotal:    r.EntryTotal,
			GrossSalary:   r.GrossSalary,
			Deductions:    r.Deductions,
			NetSalary:     r.NetSalary,
		})
		resp.TotalEntries += r.EntryCount
		resp.TotalGross = resp.TotalGross.Add(r.GrossSalary)
		resp.TotalNet = resp.TotalNet.Add(r.NetSalary)
	}
	return resp, nil
}

// recompute refreshes a locked employee's stored figures from all of their
// entries. Fix employees do not depend on entries.
func recompute(ctx context.Context, repo employee.Repository, emp *employee.Employee) (EmployeeSalary, error) {
	var figures []wage.EntryFigures
	if emp.EmployeeType == wage.TypeChutak {
		var err error
		figures, err = repo.ListEntryFigures(ctx, emp.ID.String())
		if err != nil {
			return EmployeeSalary{}, err
		}
	}
	emp.Recalculate(figures)
	if err := repo.Update(ctx, emp); err != nil {
		return EmployeeSalary{}, err
	}
	return storedSalary(emp), nil
}

func lockActiveEmployee(ctx context.Context, repo employee.Repository, id string) (*employee.Employee, error) {
	emp, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapEmployeeError(err)
	}
	if !emp.IsActive {
		return nil, employeeerrors.ErrEmployeeInactive
	}
	return emp, nil
}

// lockEmployees takes row locks in id order so two concurrent reassignments
// cannot deadlock each other.
func lockEmployees(ctx context.Context, repo employee.Repository, ids ...string) (map[string]*employee.Employee, error) {
	uniq := slices.Compact(slices.Sorted(slices.Values(ids)))
	out := make(map[string]*employee.Employee, len(uniq))
	for _, id := range uniq {
		emp, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, mapEmployeeError(err)
		}
		out[id] = emp
	}
	return out, nil
}

func sortedKeys(m map[string]*employee.Employee) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func priceQuery(emp *employee.Employee, category string) diamondprice.Query {
	return diamondprice.Query{
		Category:      category,
		DepartmentID:  emp.DepartmentIDString(),
		SubDepartment: emp.SubDepartment,
	}
}

func newEntry(emp *employee.Employee, date time.Time, category string, quantity int, price decimal.Decimal) *DiamondEntry {
	entry := &DiamondEntry{
		ID:            uuid.New(),
		EmployeeID:    emp.ID,
		Date:          date,
		Category:      strings.TrimSpace(category),
		Quantity:      quantity,
		DepartmentID:  emp.DepartmentID,
		SubDepartment: emp.SubDepartment,
	}
	entry.ApplyPrice(price)
	return entry
}

func parseDate(v string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(v), time.UTC)
	if err != nil {
		return time.Time{}, diamondentryerrors.ErrInvalidDate
	}
	return d, nil
}

func storedSalary(emp *employee.Employee) EmployeeSalary {
	return EmployeeSalary{
		EmployeeID:  emp.ID.String(),
		GrossSalary: emp.GrossSalary,
		NetSalary:   emp.NetSalary,
	}
}

func mapToResponse(e DiamondEntry) EntryResponse {
	resp := EntryResponse{
		ID:            e.ID.String(),
		EmployeeID:    e.EmployeeID.String(),
		Date:          e.Date.Format(dateLayout),
		Category:      e.Category,
		Quantity:      e.Quantity,
		DiamondPrice:  e.DiamondPrice,
		DailySalary:   e.DailySalary,
		MonthlySalary: e.MonthlySalary,
		YearlySalary:  e.YearlySalary,
		SubDepartment: e.SubDepartment,
	}
	if e.DepartmentID != nil {
		resp.DepartmentID = e.DepartmentID.String()
	}
	return resp
}

func mapToListResponse(entries []DiamondEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
