package salarytransfer

import (
	"errors"
	"strings"

	employeeerrors "go-diamond-payroll/internal/employee/errors"
	salarytransfererrors "go-diamond-payroll/internal/salarytransfer/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarytransfererrors.ErrPaymentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_payment_receipt" {
		return salarytransfererrors.ErrReceiptConflict
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_payment_receipt") {
		return salarytransfererrors.ErrReceiptConflict
	}

	return err
}

func mapEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
