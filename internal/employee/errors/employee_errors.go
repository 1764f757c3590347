package employeeerrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not active",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrSubDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Sub-department does not exist in the selected department",
		http.StatusBadRequest,
	)
	ErrSubDepartmentWithoutDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Sub-department requires a department",
		http.StatusBadRequest,
	)
	ErrAmountPrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Salary, advance, PF and PT allow at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Salary, advance, PF and PT cannot be negative",
		http.StatusBadRequest,
	)
)
