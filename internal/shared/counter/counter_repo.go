package counter

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

const (
	EmployeeCodeKey = "employee_code"
)

// ReceiptKey scopes the receipt sequence to a calendar year so numbering
// restarts every January.
func ReceiptKey(year int) string {
	return fmt.Sprintf("salary_receipt:%d", year)
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	NextValue(ctx context.Context, key string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

// NextValue increments and returns the sequence for key in a single UPSERT so
// concurrent callers never observe the same value.
func (r *repository) NextValue(ctx context.Context, key string) (int64, error) {
	var nextValue int64

	err := r.conn(ctx).Raw(`
		INSERT INTO app_counters (counter_key, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (counter_key) DO UPDATE
		SET last_value = app_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, key).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
