package user

import (
	"errors"
	"strings"

	usererrors "go-diamond-payroll/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrUserAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}

// MapRepositoryError lets the auth package reuse the account error mapping.
func MapRepositoryError(err error) error {
	return mapRepositoryError(err)
}
