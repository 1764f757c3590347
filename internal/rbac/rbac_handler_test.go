package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-diamond-payroll/internal/domain"
	"go-diamond-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	EnforceFn     func(req domain.EnforceRequest) (bool, error)
	PermissionsFn func(role string) ([]domain.PermissionResponse, error)
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.EnforceFn(req)
}

func (f *fakeService) PermissionsForRole(role string) ([]domain.PermissionResponse, error) {
	return f.PermissionsFn(role)
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("uses caller role", func(t *testing.T) {
		svc := &fakeService{EnforceFn: func(req domain.EnforceRequest) (bool, error) {
			assert.Equal(t, "accountant", req.Role)
			return req.Resource == "salary" && req.Action == "pay", nil
		}}
		h := rbac.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(`{"resource":"salary","action":"pay","role":"admin"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("role", "accountant")

		h.Enforce(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := rbac.NewHandler(&fakeService{})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(`{"resource":"salary"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Enforce(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
		return []domain.PermissionResponse{{Resource: "report", Action: "read"}}, nil
	}}
	h := rbac.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	c.Set("role", "accountant")

	h.Permissions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resource":"report"`)
}
