package diamondentry

import (
	"errors"

	diamondentryerrors "go-diamond-payroll/internal/diamondentry/errors"
	employeeerrors "go-diamond-payroll/internal/employee/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return diamondentryerrors.ErrEntryNotFound
	}
	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
