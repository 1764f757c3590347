package bankdetail_test

import (
	"context"
	"testing"

	"go-diamond-payroll/internal/bankdetail"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_LockAndDebitInCallerTx(t *testing.T) {
	ctx := context.Background()
	gdb, mock := setupGorm(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bankdetails" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bank_name", "account_number", "amount", "is_active"}).
			AddRow(id.String(), "HDFC", "001122334455", "5000.00", true))
	mock.ExpectExec(`UPDATE "bankdetails" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	repo := bankdetail.NewRepository(gdb).WithTx(tx)

	bank, err := repo.FindByIDForUpdate(ctx, id.String())
	require.NoError(t, err)
	bank.Debit(decimal.NewFromInt(890))
	require.NoError(t, repo.Update(ctx, bank))
	require.NoError(t, tx.Commit())

	assert.True(t, decimal.NewFromInt(4110).Equal(bank.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}
