package usererrors

import (
	"net/http"

	"go-diamond-payroll/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A user with the same username or email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)

	ErrLastAdmin = apperror.New(
		apperror.CodeConflict,
		"At least one active admin must remain",
		http.StatusConflict,
	)

	ErrSelfUpdate = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role or status",
		http.StatusForbidden,
	)
)
