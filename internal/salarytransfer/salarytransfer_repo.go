package salarytransfer

import (
	"context"
	"database/sql"

	"go-diamond-payroll/internal/shared/scope"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Filter struct {
	EmployeeID string
	Month      int
	Year       int
	Page       int
	PageSize   int
}

//go:generate mockgen -source=salarytransfer_repo.go -destination=mock/salarytransfer_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payment *SalaryPayment) error
	FindAll(ctx context.Context, filter Filter) ([]SalaryPayment, int64, error)
	FindByID(ctx context.Context, id string) (*SalaryPayment, error)
	FindLatestByEmployee(ctx context.Context, employeeID string) (*SalaryPayment, error)
	MarkArchived(ctx context.Context, id, receiptURL string) error
	SumPaidByEmployee(ctx context.Context, month, year int) (map[string]decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, payment *SalaryPayment) error {
	return r.conn(ctx).Create(payment).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]SalaryPayment, int64, error) {
	q := r.conn(ctx).Model(&SalaryPayment{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Month > 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year > 0 {
		q = q.Where("year = ?", filter.Year)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 {
		q = q.Scopes(scope.Paginate(filter.Page, filter.PageSize))
	}

	var payments []SalaryPayment
	err := q.Order("paid_at DESC").Find(&payments).Error
	return payments, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryPayment, error) {
	var payment SalaryPayment
	err := r.conn(ctx).First(&payment, "id = ?", id).Error
	return &payment, err
}

func (r *repository) FindLatestByEmployee(ctx context.Context, employeeID string) (*SalaryPayment, error) {
	var payment SalaryPayment
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("paid_at DESC").
		First(&payment).Error
	return &payment, err
}

// MarkArchived records the archived receipt location. Payments are otherwise
// never updated.
func (r *repository) MarkArchived(ctx context.Context, id, receiptURL string) error {
	res := r.conn(ctx).
		Model(&SalaryPayment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"receipt_url": receiptURL,
			"status":      PaymentStatusArchived,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumPaidByEmployee totals what was paid to each employee for a period.
func (r *repository) SumPaidByEmployee(ctx context.Context, month, year int) (map[string]decimal.Decimal, error) {
	var rows []struct {
		EmployeeID string
		Total      decimal.Decimal
	}
	err := r.conn(ctx).
		Model(&SalaryPayment{}).
		Select("employee_id::text AS employee_id, COALESCE(SUM(amount), 0) AS total").
		Where("month = ? AND year = ?", month, year).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.EmployeeID] = row.Total
	}
	return out, nil
}
