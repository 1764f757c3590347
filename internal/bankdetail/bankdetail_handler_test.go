package bankdetail_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-diamond-payroll/internal/bankdetail"
	bankdetailerrors "go-diamond-payroll/internal/bankdetail/errors"
	"go-diamond-payroll/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeBankDetailService struct {
	bankdetail.Service
	DepositFn func(ctx context.Context, id string, req bankdetail.DepositRequest) (bankdetail.BankDetailResponse, error)
}

func (f *fakeBankDetailService) Deposit(ctx context.Context, id string, req bankdetail.DepositRequest) (bankdetail.BankDetailResponse, error) {
	return f.DepositFn(ctx, id, req)
}

func newRouter(svc bankdetail.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := bankdetail.NewHandler(svc)
	r := gin.New()
	r.POST("/bank-details", h.Create)
	r.POST("/bank-details/:id/deposit", h.Deposit)
	return r
}

func TestBankDetailHandler_Deposit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBankDetailService{
			DepositFn: func(ctx context.Context, id string, req bankdetail.DepositRequest) (bankdetail.BankDetailResponse, error) {
				assert.Equal(t, "b-1", id)
				assert.True(t, dec("250").Equal(req.Amount))
				return bankdetail.BankDetailResponse{ID: id, Amount: dec("1250")}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bank-details/b-1/deposit", strings.NewReader(`{"amount":"250"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"b-1"`)
	})

	t.Run("service rejects non-positive amount", func(t *testing.T) {
		svc := &fakeBankDetailService{
			DepositFn: func(ctx context.Context, id string, req bankdetail.DepositRequest) (bankdetail.BankDetailResponse, error) {
				return bankdetail.BankDetailResponse{}, bankdetailerrors.ErrInvalidDeposit
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bank-details/b-1/deposit", strings.NewReader(`{"amount":"-5"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestBankDetailHandler_CreateValidation(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bank-details", strings.NewReader(`{"bankName":"SBI","accountNumber":"12ab","accountHolderName":"X","ifscCode":"SBIN"}`))
	req.Header.Set("Content-Type", "application/json")
	newRouter(&fakeBankDetailService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeValidation)
}
