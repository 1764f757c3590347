package salarytransfererrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary payment not found",
		http.StatusNotFound,
	)
	ErrInvalidPaymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary payment ID",
		http.StatusBadRequest,
	)
	ErrReceiptConflict = apperror.New(
		apperror.CodeConflict,
		"Receipt number already issued",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be 1-12 and year 2000-2100",
		http.StatusBadRequest,
	)
	ErrBankDetailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A funding bank detail is required to mark salaries as paid",
		http.StatusBadRequest,
	)
	ErrNoPaymentsForEmployee = apperror.New(
		apperror.CodeNotFound,
		"Employee has no salary payments",
		http.StatusNotFound,
	)
	ErrPaymentEmployeeMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Payment does not belong to this employee",
		http.StatusBadRequest,
	)
)
