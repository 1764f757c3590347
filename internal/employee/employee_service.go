package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-diamond-payroll/internal/department"
	employeeerrors "go-diamond-payroll/internal/employee/errors"
	"go-diamond-payroll/internal/events"
	"go-diamond-payroll/internal/messaging/kafka"
	"go-diamond-payroll/internal/shared/contextutil"
	"go-diamond-payroll/internal/shared/counter"
	"go-diamond-payroll/internal/shared/response"
	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, *response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	deptRepo department.Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	deptRepo department.Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		deptRepo: deptRepo,
		counter:  counter,
		outbox:   outboxRepo,
		rdb:      rdb,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department_id", req.DepartmentID),
	)

	if err := validateFields(req.EmployeeFields); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	deptTx := s.deptRepo.WithTx(tx)

	dept, err := s.lockDepartment(ctx, deptTx, req.DepartmentID, req.SubDepartment)
	if err != nil {
		return EmployeeResponse{}, err
	}

	code := strings.TrimSpace(req.EmployeeID)
	if code == "" {
		next, err := s.counter.WithTx(tx).NextValue(ctx, counter.EmployeeCodeKey)
		if err != nil {
			s.logger.Error("create employee generate code failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		code = fmt.Sprintf("EMP-%06d", next)
	}

	emp := &Employee{
		ID:           uuid.New(),
		EmployeeCode: code,
		IsActive:     true,
	}
	applyFields(emp, req.EmployeeFields)
	emp.Recalculate(nil)

	if err := qtx.Create(ctx, emp); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if dept != nil && emp.SubDepartment != "" {
		dept.AttachEmployee(emp.SubDepartment, emp.ID)
		if err := deptTx.Update(ctx, dept); err != nil {
			s.logger.Error("create employee attach sub-department failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if s.outbox != nil {
		ev, err := kafka.NewOutboxEvent(rid, "employee", emp.ID.String(), events.EmployeeCreatedType, events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:    events.EmployeeCreatedType,
				RequestID:    rid,
				EmployeeID:   emp.ID.String(),
				EmployeeCode: emp.EmployeeCode,
				EmployeeType: emp.EmployeeType,
				DepartmentID: emp.DepartmentIDString(),
				OccurredAt:   time.Now().UTC(),
			})
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, ev); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if dept != nil {
		s.invalidateDepartments(ctx)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID.String()),
		zap.String("employee_code", emp.EmployeeCode),
	)
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, *response.PaginationMeta, error) {
	filter := Filter{
		DepartmentID: req.DepartmentID,
		EmployeeType: req.EmployeeType,
		Query:        strings.TrimSpace(req.Query),
		Page:         req.Page,
		PageSize:     req.PageSize,
	}
	switch req.Active {
	case "", "true":
		active := true
		filter.Active = &active
	case "false":
		active := false
		filter.Active = &active
	}
	if filter.Page > 0 && filter.PageSize == 0 {
		filter.PageSize = 20
	}

	emps, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, nil, mapRepositoryError(err)
	}

	var meta *response.PaginationMeta
	if filter.Page > 0 {
		m := response.NewPaginationMeta(total, filter.Page, filter.PageSize)
		meta = &m
	}
	return mapToListResponse(emps), meta, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if err := validateFields(req.EmployeeFields); err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	deptTx := s.deptRepo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	oldDept, oldSub := emp.DepartmentIDString(), emp.SubDepartment
	moved := oldDept != req.DepartmentID || !strings.EqualFold(oldSub, req.SubDepartment)

	var target *department.Department
	if moved {
		target, err = s.lockDepartment(ctx, deptTx, req.DepartmentID, req.SubDepartment)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if oldDept != "" && oldDept != req.DepartmentID {
			if err := s.detach(ctx, deptTx, oldDept, emp.ID); err != nil {
				return EmployeeResponse{}, err
			}
		}
	}

	applyFields(emp, req.EmployeeFields)
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	var entries []wage.EntryFigures
	if emp.EmployeeType == wage.TypeChutak {
		entries, err = qtx.ListEntryFigures(ctx, id)
		if err != nil {
			return EmployeeResponse{}, err
		}
	}
	emp.Recalculate(entries)

	if err := qtx.Update(ctx, emp); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if target != nil {
		target.DetachEmployee(emp.ID)
		if emp.SubDepartment != "" {
			target.AttachEmployee(emp.SubDepartment, emp.ID)
		}
		if err := deptTx.Update(ctx, target); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if moved {
		s.invalidateDepartments(ctx)
	}

	s.logger.Info("update employee success",
		zap.String("employee_id", id),
		zap.String("gross_salary", emp.GrossSalary.String()),
		zap.String("net_salary", emp.NetSalary.String()),
	)
	return mapToResponse(*emp), nil
}

// Delete deactivates the employee and drops them from their sub-department.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	deptID := emp.DepartmentIDString()
	if deptID != "" {
		if err := s.detach(ctx, s.deptRepo.WithTx(tx), deptID, emp.ID); err != nil {
			return err
		}
	}

	emp.IsActive = false
	if err := qtx.Update(ctx, emp); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if deptID != "" {
		s.invalidateDepartments(ctx)
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// lockDepartment loads and locks the department an employee is joining.
// It returns nil when no department is given.
func (s *service) lockDepartment(ctx context.Context, repo department.Repository, departmentID, sub string) (*department.Department, error) {
	if departmentID == "" {
		if sub != "" {
			return nil, employeeerrors.ErrSubDepartmentWithoutDepartment
		}
		return nil, nil
	}

	dept, err := repo.FindByIDForUpdate(ctx, departmentID)
	if err != nil {
		return nil, mapDepartmentError(err)
	}
	if sub != "" && !dept.HasSub(sub) {
		return nil, employeeerrors.ErrSubDepartmentNotFound
	}
	return dept, nil
}

func (s *service) detach(ctx context.Context, repo department.Repository, departmentID string, employeeID uuid.UUID) error {
	dept, err := repo.FindByIDForUpdate(ctx, departmentID)
	if err != nil {
		// The old department may already be gone; nothing to clean up.
		if errors.Is(mapDepartmentError(err), employeeerrors.ErrDepartmentNotFound) {
			return nil
		}
		return err
	}
	dept.DetachEmployee(employeeID)
	return repo.Update(ctx, dept)
}

func (s *service) invalidateDepartments(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, department.ListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department list cache",
			zap.Error(err),
			zap.String("key", department.ListCacheKey),
		)
	}
}

func validateFields(f EmployeeFields) error {
	if f.Salary.IsNegative() || f.AdvancedSalary.IsNegative() || f.PF.IsNegative() || f.PT.IsNegative() {
		return employeeerrors.ErrNegativeAmount
	}
	for _, v := range []decimal.Decimal{f.Salary, f.AdvancedSalary, f.PF, f.PT} {
		if !wage.IsMoney(v) {
			return employeeerrors.ErrAmountPrecision
		}
	}
	return nil
}

func applyFields(emp *Employee, f EmployeeFields) {
	emp.Name = strings.TrimSpace(f.Name)
	emp.Email = strings.ToLower(strings.TrimSpace(f.Email))
	emp.Mobile = f.Mobile
	emp.DepartmentID = uuidPtr(f.DepartmentID)
	emp.SubDepartment = f.SubDepartment
	emp.EmployeeType = f.EmployeeType
	if emp.EmployeeType == "" {
		emp.EmployeeType = wage.TypeFix
	}
	emp.Salary = f.Salary
	emp.AdvancedSalary = f.AdvancedSalary
	emp.PF = f.PF
	emp.PT = f.PT
	emp.BankName = f.BankName
	emp.AccountNumber = f.AccountNumber
	emp.IFSCCode = strings.ToUpper(f.IFSCCode)
	emp.AccountHolderName = f.AccountHolderName
	emp.AadharNumber = f.AadharNumber
	emp.PANNumber = strings.ToUpper(f.PANNumber)
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                emp.ID.String(),
		EmployeeID:        emp.EmployeeCode,
		Name:              emp.Name,
		Email:             emp.Email,
		Mobile:            emp.Mobile,
		DepartmentID:      emp.DepartmentIDString(),
		SubDepartment:     emp.SubDepartment,
		EmployeeType:      emp.EmployeeType,
		Salary:            emp.Salary,
		AdvancedSalary:    emp.AdvancedSalary,
		PF:                emp.PF,
		PT:                emp.PT,
		GrossSalary:       emp.GrossSalary,
		NetSalary:         emp.NetSalary,
		BankName:          emp.BankName,
		AccountNumber:     emp.AccountNumber,
		IFSCCode:          emp.IFSCCode,
		AccountHolderName: emp.AccountHolderName,
		AadharNumber:      emp.AadharNumber,
		PANNumber:         emp.PANNumber,
		IsActive:          emp.IsActive,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
