package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "go-diamond-payroll/internal/department/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ListCacheKey holds the active department list. Anything that edits a
// department, including sub-department back-references, must delete it.
const ListCacheKey = "departments:list"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
	AddSubDepartment(ctx context.Context, id string, req AddSubDepartmentRequest) (DepartmentResponse, error)
	RemoveSubDepartment(ctx context.Context, id, name string) (DepartmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("create department requested", zap.String("name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    true,
	}
	dept.setSubs([]SubDepartment{})
	for _, name := range req.SubDepartments {
		if !dept.AddSub(strings.TrimSpace(name)) {
			return DepartmentResponse{}, departmenterrors.ErrSubDepartmentExists
		}
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateList(ctx)
	s.logger.Info("create department success", zap.String("department_id", dept.ID.String()))
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ListCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ListCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ListCacheKey, jsonData, time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.String("department_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.ManagerID = nil
	if req.ManagerID != "" {
		managerDept, err := qtx.GetEmployeeDepartmentID(ctx, req.ManagerID)
		if err != nil {
			return DepartmentResponse{}, err
		}
		if managerDept != dept.ID.String() {
			s.logger.Warn("update department manager outside department",
				zap.String("department_id", id),
				zap.String("manager_id", req.ManagerID),
			)
			return DepartmentResponse{}, departmenterrors.ErrManagerNotInDepartment
		}
		managerID := uuid.MustParse(req.ManagerID)
		dept.ManagerID = &managerID
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = req.Description
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateList(ctx)
	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.CountActiveEmployees(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return departmenterrors.ErrDepartmentHasEmployees
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateList(ctx)
	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func (s *service) AddSubDepartment(ctx context.Context, id string, req AddSubDepartmentRequest) (DepartmentResponse, error) {
	return s.mutateSubs(ctx, id, func(dept *Department) error {
		if !dept.AddSub(strings.TrimSpace(req.Name)) {
			return departmenterrors.ErrSubDepartmentExists
		}
		return nil
	})
}

func (s *service) RemoveSubDepartment(ctx context.Context, id, name string) (DepartmentResponse, error) {
	return s.mutateSubs(ctx, id, func(dept *Department) error {
		ok, occupied := dept.RemoveSub(name)
		if !ok {
			return departmenterrors.ErrSubDepartmentNotFound
		}
		if occupied {
			return departmenterrors.ErrSubDepartmentHasEmployees
		}
		return nil
	})
}

func (s *service) mutateSubs(ctx context.Context, id string, fn func(*Department) error) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := fn(dept); err != nil {
		return DepartmentResponse{}, err
	}

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateList(ctx)
	return mapToResponse(*dept), nil
}

func (s *service) invalidateList(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ListCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department list cache", zap.Error(err))
	}
}

func mapToResponse(d Department) DepartmentResponse {
	subs := d.Subs()
	out := make([]SubDepartmentResponse, len(subs))
	for i, sub := range subs {
		ids := make([]string, len(sub.Employees))
		for j, id := range sub.Employees {
			ids[j] = id.String()
		}
		out[i] = SubDepartmentResponse{Name: sub.Name, Employees: ids}
	}

	resp := DepartmentResponse{
		ID:             d.ID.String(),
		Name:           d.Name,
		Description:    d.Description,
		SubDepartments: out,
		IsActive:       d.IsActive,
	}
	if d.ManagerID != nil {
		resp.ManagerID = d.ManagerID.String()
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
