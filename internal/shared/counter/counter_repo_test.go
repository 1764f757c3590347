package counter_test

import (
	"context"
	"errors"
	"testing"

	"go-diamond-payroll/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestReceiptKey(t *testing.T) {
	assert.Equal(t, "salary_receipt:2025", counter.ReceiptKey(2025))
}

func TestRepository_NextValue(t *testing.T) {
	ctx := context.Background()

	t.Run("returns upserted value", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		repo := counter.NewRepository(gdb)

		mock.ExpectQuery("INSERT INTO app_counters").
			WithArgs(counter.ReceiptKey(2025)).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

		v, err := repo.NextValue(ctx, counter.ReceiptKey(2025))

		assert.NoError(t, err)
		assert.Equal(t, int64(42), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs inside caller transaction", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		sqlDB, err := gdb.DB()
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO app_counters").
			WithArgs(counter.EmployeeCodeKey).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))
		mock.ExpectCommit()

		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		v, err := counter.NewRepository(gdb).WithTx(tx).NextValue(ctx, counter.EmployeeCodeKey)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, int64(7), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates db error", func(t *testing.T) {
		gdb, mock := setupGorm(t)
		repo := counter.NewRepository(gdb)

		mock.ExpectQuery("INSERT INTO app_counters").
			WillReturnError(errors.New("db down"))

		_, err := repo.NextValue(ctx, "x")
		assert.EqualError(t, err, "db down")
	})
}
