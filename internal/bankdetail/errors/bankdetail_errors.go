package bankdetailerrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrBankDetailNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bank detail not found",
		http.StatusNotFound,
	)
	ErrInvalidBankDetailID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid bank detail ID",
		http.StatusBadRequest,
	)
	ErrAccountNumberExists = apperror.New(
		apperror.CodeConflict,
		"Bank account number already exists",
		http.StatusConflict,
	)
	ErrAmountPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Amount allows at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDeposit = apperror.New(
		apperror.CodeInvalidInput,
		"Deposit amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrBankDetailInactive = apperror.New(
		apperror.CodeInvalidState,
		"Bank detail is inactive",
		http.StatusConflict,
	)
)
