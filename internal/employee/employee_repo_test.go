package employee_test

import (
	"context"
	"testing"

	"go-diamond-payroll/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestRepository_LockRunsInCallerTx(t *testing.T) {
	ctx := context.Background()
	gdb, mock := setupGorm(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_code", "name"}).
			AddRow(id.String(), "EMP-000001", "Ravi Patel"))
	mock.ExpectQuery(`SELECT date, category, quantity, daily_salary FROM "diamondentries" WHERE employee_id = \$1`).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"category", "quantity", "daily_salary"}).
			AddRow("4P", 10, "30.00"))
	mock.ExpectRollback()

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	repo := employee.NewRepository(gdb).WithTx(tx)

	emp, err := repo.FindByIDForUpdate(ctx, id.String())
	require.NoError(t, err)
	figures, err := repo.ListEntryFigures(ctx, id.String())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Equal(t, "EMP-000001", emp.EmployeeCode)
	require.Len(t, figures, 1)
	assert.Equal(t, 10, figures[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
