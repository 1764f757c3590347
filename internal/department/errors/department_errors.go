package departmenterrors

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
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusConflict,
	)
	ErrDepartmentHasEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Department still has active employees",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
	ErrSubDepartmentExists = apperror.New(
		apperror.CodeConflict,
		"Sub-department already exists in this department",
		http.StatusConflict,
	)
	ErrSubDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Sub-department not found",
		http.StatusNotFound,
	)
	ErrSubDepartmentHasEmployees = apperror.New(
		apperror.CodeInvalidState,
		"Sub-department still has employees assigned",
		http.StatusConflict,
	)
	ErrManagerNotInDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Manager must be an employee of this department",
		http.StatusBadRequest,
	)
)
