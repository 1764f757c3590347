package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-diamond-payroll/internal/department"
	departmenterrors "go-diamond-payroll/internal/department/errors"
	departmentMock "go-diamond-payroll/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func newDepartment(subs ...department.SubDepartment) *department.Department {
	if subs == nil {
		subs = []department.SubDepartment{}
	}
	return &department.Department{
		ID:             uuid.New(),
		Name:           "Polishing",
		SubDepartments: datatypes.NewJSONType(subs),
		IsActive:       true,
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "Polishing", d.Name)
			assert.Len(t, d.Subs(), 2)
			assert.True(t, d.IsActive)
			return nil
		})
		deps.redismock.ExpectDel(department.ListCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:           " Polishing ",
			SubDepartments: []string{"4P", "Table"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Polishing", resp.Name)
		assert.Len(t, resp.SubDepartments, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate sub-department names", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{
			Name:           "Polishing",
			SubDepartments: []string{"4P", "4p"},
		})

		assert.ErrorIs(t, err, departmenterrors.ErrSubDepartmentExists)
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(errors.New(`ERROR: duplicate key value violates unique constraint "uq_department_name"`))

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Polishing"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := []department.DepartmentResponse{{ID: uuid.NewString(), Name: "Cutting"}}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(department.ListCacheKey).SetVal(string(payload))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment(department.SubDepartment{Name: "4P", Employees: []uuid.UUID{}})
		deps.redismock.ExpectGet(department.ListCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, true).Return([]department.Department{*dept}, nil)

		expected := []department.DepartmentResponse{{
			ID:             dept.ID.String(),
			Name:           dept.Name,
			SubDepartments: []department.SubDepartmentResponse{{Name: "4P", Employees: []string{}}},
			IsActive:       true,
		}}
		payload, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(department.ListCacheKey, payload, time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(department.ListCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx, true).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("manager from same department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment()
		managerID := uuid.NewString()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().GetEmployeeDepartmentID(ctx, managerID).Return(dept.ID.String(), nil)
		deps.repo.EXPECT().Update(ctx, dept).Return(nil)
		deps.redismock.ExpectDel(department.ListCacheKey).SetVal(1)

		resp, err := deps.service.Update(ctx, dept.ID.String(), department.UpdateDepartmentRequest{
			Name:      "Polishing",
			ManagerID: managerID,
		})

		assert.NoError(t, err)
		assert.Equal(t, managerID, resp.ManagerID)
	})

	t.Run("manager from another department", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment()
		managerID := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().GetEmployeeDepartmentID(ctx, managerID).Return(uuid.NewString(), nil)

		_, err := deps.service.Update(ctx, dept.ID.String(), department.UpdateDepartmentRequest{
			Name:      "Polishing",
			ManagerID: managerID,
		})

		assert.ErrorIs(t, err, departmenterrors.ErrManagerNotInDepartment)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "nope", department.UpdateDepartmentRequest{Name: "x"})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected while employees remain", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id).Return(int64(3), nil)

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redismock.ExpectDel(department.ListCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, id))
	})
}

func TestDepartmentService_SubDepartments(t *testing.T) {
	ctx := context.Background()

	t.Run("add", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, dept.ID.String()).Return(dept, nil)
		deps.repo.EXPECT().Update(ctx, dept).Return(nil)
		deps.redismock.ExpectDel(department.ListCacheKey).SetVal(1)

		resp, err := deps.service.AddSubDepartment(ctx, dept.ID.String(), department.AddSubDepartmentRequest{Name: "Table"})

		assert.NoError(t, err)
		assert.Equal(t, "Table", resp.SubDepartments[0].Name)
	})

	t.Run("remove rejected while employees remain", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment(department.SubDepartment{Name: "Table", Employees: []uuid.UUID{uuid.New()}})
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, dept.ID.String()).Return(dept, nil)

		_, err := deps.service.RemoveSubDepartment(ctx, dept.ID.String(), "Table")

		assert.ErrorIs(t, err, departmenterrors.ErrSubDepartmentHasEmployees)
	})

	t.Run("remove unknown", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := newDepartment()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDForUpdate(ctx, dept.ID.String()).Return(dept, nil)

		_, err := deps.service.RemoveSubDepartment(ctx, dept.ID.String(), "Ghost")

		assert.ErrorIs(t, err, departmenterrors.ErrSubDepartmentNotFound)
	})
}
