package diamondentryerrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Diamond entry not found",
		http.StatusNotFound,
	)
	ErrInvalidEntryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid diamond entry ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month and year must be given together",
		http.StatusBadRequest,
	)
	ErrEmptyBulk = apperror.New(
		apperror.CodeInvalidInput,
		"At least one entry is required",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
