package salaryreporterrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render salary report",
		http.StatusInternalServerError,
	)
)
