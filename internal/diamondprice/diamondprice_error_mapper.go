package diamondprice

import (
	"errors"

	diamondpriceerrors "go-diamond-payroll/internal/diamondprice/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return diamondpriceerrors.ErrDiamondPriceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return diamondpriceerrors.ErrDiamondPriceConflict
	}

	return err
}
