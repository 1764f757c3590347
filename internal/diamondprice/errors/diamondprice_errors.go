package diamondpriceerrors

import (
	"go-diamond-payroll/internal/shared/apperror"
	"net/http"
)

var (
	// ErrPriceNotFound means no rule resolves for an entry's category.
	ErrPriceNotFound = apperror.New(
		apperror.CodePriceNotFound,
		"No diamond price configured for this category",
		http.StatusNotFound,
	)
	ErrDiamondPriceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Diamond price not found",
		http.StatusNotFound,
	)
	ErrInvalidDiamondPriceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid diamond price ID",
		http.StatusBadRequest,
	)
	ErrPricePrecision = apperror.New(
		apperror.CodeInvalidInput,
		"Price allows at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be greater than zero",
		http.StatusBadRequest,
	)
	ErrSubDepartmentRequiresDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Sub-department price requires a department",
		http.StatusBadRequest,
	)
	ErrDefaultCannotBeScoped = apperror.New(
		apperror.CodeInvalidInput,
		"A default price cannot be scoped to a department",
		http.StatusBadRequest,
	)
	ErrDiamondPriceConflict = apperror.New(
		apperror.CodeConflict,
		"Diamond price rule already exists",
		http.StatusConflict,
	)
)
