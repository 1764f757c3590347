package app

import (
	"go-diamond-payroll/internal/bankdetail"
	"go-diamond-payroll/internal/department"
	"go-diamond-payroll/internal/diamondentry"
	"go-diamond-payroll/internal/diamondprice"
	"go-diamond-payroll/internal/employee"
	"go-diamond-payroll/internal/salarytransfer"
	"go-diamond-payroll/internal/user"

	"gorm.io/gorm"
)

// The outbox and the counters are written with raw SQL, so their tables are
// declared here rather than derived from a model.
var infraDDL = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		request_id TEXT,
		aggregate_type VARCHAR(50) NOT NULL,
		aggregate_id TEXT NOT NULL,
		event_type VARCHAR(100) NOT NULL,
		topic VARCHAR(150) NOT NULL,
		payload JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		retry_count INT NOT NULL DEFAULT 0,
		error_message TEXT,
		next_retry_at TIMESTAMPTZ,
		processed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
		ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE TABLE IF NOT EXISTS app_counters (
		counter_key VARCHAR(100) PRIMARY KEY,
		last_value BIGINT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate brings the schema up to date. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&department.Department{},
		&employee.Employee{},
		&diamondprice.DiamondPrice{},
		&diamondentry.DiamondEntry{},
		&bankdetail.BankDetail{},
		&salarytransfer.SalaryPayment{},
	); err != nil {
		return err
	}

	for _, stmt := range infraDDL {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
