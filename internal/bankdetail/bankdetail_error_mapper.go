package bankdetail

import (
	"errors"
	"strings"

	bankdetailerrors "go-diamond-payroll/internal/bankdetail/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bankdetailerrors.ErrBankDetailNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_bank_account_number" {
		return bankdetailerrors.ErrAccountNumberExists
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_bank_account_number") {
		return bankdetailerrors.ErrAccountNumberExists
	}

	return err
}

// MapRepositoryError exposes the mapping to packages that lock bank rows
// inside their own transactions.
func MapRepositoryError(err error) error {
	return mapRepositoryError(err)
}
