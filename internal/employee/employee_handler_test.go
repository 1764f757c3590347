package employee_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-diamond-payroll/internal/employee"
	employeeerrors "go-diamond-payroll/internal/employee/errors"
	"go-diamond-payroll/internal/shared/apperror"
	"go-diamond-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn  func(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, *response.PaginationMeta, error)
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, *response.PaginationMeta, error) {
	return f.GetAllFn(ctx, req)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func jsonContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Ravi Patel", req.Name)
				assert.Equal(t, "Chutak", req.EmployeeType)
				assert.True(t, decimal.NewFromInt(1000).Equal(req.Salary))
				return employee.EmployeeResponse{ID: uuid.NewString(), EmployeeID: "EMP-000001", Name: req.Name}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := jsonContext(http.MethodPost, "/employees",
			`{"name":"Ravi Patel","email":"ravi@example.com","employeeType":"Chutak","salary":1000,"panNumber":"ABCDE1234F","aadharNumber":"123412341234"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "EMP-000001")
	})

	t.Run("invalid pan", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := jsonContext(http.MethodPost, "/employees",
			`{"name":"Ravi","email":"ravi@example.com","panNumber":"1234"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})

	t.Run("unknown employee type", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})

		c, w := jsonContext(http.MethodPost, "/employees",
			`{"name":"Ravi","email":"ravi@example.com","employeeType":"Weekly"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}
		h := employee.NewHandler(svc)

		c, w := jsonContext(http.MethodPost, "/employees", `{"name":"Ravi","email":"ravi@example.com"}`)
		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")
	})

	t.Run("duplicate code returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeAlreadyExists
			},
		}
		h := employee.NewHandler(svc)

		c, w := jsonContext(http.MethodPost, "/employees", `{"name":"Ravi","email":"ravi@example.com","employeeId":"EMP-1"}`)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, *response.PaginationMeta, error) {
			assert.Equal(t, "Chutak", req.EmployeeType)
			assert.Equal(t, "false", req.Active)
			assert.Equal(t, 2, req.Page)
			meta := response.NewPaginationMeta(30, req.Page, 10)
			return []employee.EmployeeResponse{{Name: "Ravi"}}, &meta, nil
		},
	}
	r := gin.New()
	r.GET("/employees", employee.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?type=Chutak&active=false&page=2&pageSize=10", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	r := gin.New()
	r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
}

func TestEmployeeHandler_Update(t *testing.T) {
	id := uuid.NewString()
	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, gotID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, gotID)
			if assert.NotNil(t, req.IsActive) {
				assert.False(t, *req.IsActive)
			}
			return employee.EmployeeResponse{ID: id, Name: req.Name}, nil
		},
	}
	r := gin.New()
	r.PUT("/employees/:id", employee.NewHandler(svc).Update)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/employees/"+id,
		strings.NewReader(`{"name":"Ravi","email":"ravi@example.com","isActive":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, id string) error { return nil },
	}
	r := gin.New()
	r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
