package auth_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-diamond-payroll/internal/auth"
	autherrors "go-diamond-payroll/internal/auth/errors"
	"go-diamond-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	auth.Service
	LoginFn   func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	RefreshFn func(ctx context.Context, token string) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, req)
}

func (f *fakeAuthService) Refresh(ctx context.Context, token string) (auth.AuthResponse, error) {
	return f.RefreshFn(ctx, token)
}

func newRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := auth.NewHandler(svc, false, tokens)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.POST("/auth/logout", h.Logout)
	return r
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets http-only cookies", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
				assert.Equal(t, "ravi", req.Login)
				return auth.AuthResponse{
					User:      user.UserResponse{Username: "ravi"},
					TokenPair: auth.TokenPair{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 3600},
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"login":"ravi","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		access := cookieNamed(w, "access_token")
		if assert.NotNil(t, access) {
			assert.Equal(t, "acc", access.Value)
			assert.True(t, access.HttpOnly)
		}
		assert.Contains(t, w.Body.String(), `"accessToken":"acc"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"login":"ravi","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, cookieNamed(w, "access_token"))
	})

	t.Run("missing password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"login":"ravi"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(&fakeAuthService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := &fakeAuthService{
		RefreshFn: func(ctx context.Context, token string) (auth.AuthResponse, error) {
			assert.Equal(t, "from-cookie", token)
			return auth.AuthResponse{TokenPair: auth.TokenPair{AccessToken: "new", RefreshToken: "new-ref", ExpiresIn: 60}}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "from-cookie"})
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", cookieNamed(w, "access_token").Value)
}

func TestAuthHandler_Logout(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(&fakeAuthService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, cookieNamed(w, "refresh_token").MaxAge)
}
