package diamondentry

import (
	"context"
	"database/sql"

	"go-diamond-payroll/internal/shared/scope"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	EmployeeID   string
	DepartmentID string
	Category     string
	// Month and Year are applied only when both are set.
	Month    int
	Year     int
	Page     int
	PageSize int
}

// EmployeeTotal aggregates one employee's entries for a period.
type EmployeeTotal struct {
	EmployeeID string
	EntryCount int
	Total      decimal.Decimal
}

//go:generate mockgen -source=diamondentry_repo.go -destination=mock/diamondentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *DiamondEntry) error
	CreateBatch(ctx context.Context, entries []DiamondEntry) error
	FindAll(ctx context.Context, filter Filter) ([]DiamondEntry, int64, error)
	FindByID(ctx context.Context, id string) (*DiamondEntry, error)
	FindByIDForUpdate(ctx context.Context, id string) (*DiamondEntry, error)
	Update(ctx context.Context, entry *DiamondEntry) error
	Delete(ctx context.Context, id string) error
	SumByEmployee(ctx context.Context, employeeIDs []string, month, year int) (map[string]EmployeeTotal, error)
	DeleteForPeriod(ctx context.Context, employeeID string, month, year int) (int64, error)
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

func (r *repository) Create(ctx context.Context, entry *DiamondEntry) error {
	return r.conn(ctx).Create(entry).Error
}

func (r *repository) CreateBatch(ctx context.Context, entries []DiamondEntry) error {
	return r.conn(ctx).CreateInBatches(entries, 100).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]DiamondEntry, int64, error) {
	q := r.conn(ctx).Model(&DiamondEntry{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Month > 0 && filter.Year > 0 {
		q = q.Scopes(scope.Period("date", filter.Month, filter.Year))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 {
		q = q.Scopes(scope.Paginate(filter.Page, filter.PageSize))
	}

	var entries []DiamondEntry
	err := q.Order("date DESC, created_at DESC").Find(&entries).Error
	return entries, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*DiamondEntry, error) {
	var entry DiamondEntry
	err := r.conn(ctx).First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*DiamondEntry, error) {
	var entry DiamondEntry
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) Update(ctx context.Context, entry *DiamondEntry) error {
	return r.conn(ctx).Save(entry).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&DiamondEntry{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) SumByEmployee(ctx context.Context, employeeIDs []string, month, year int) (map[string]EmployeeTotal, error) {
	out := make(map[string]EmployeeTotal, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}

	var rows []EmployeeTotal
	err := r.conn(ctx).
		Model(&DiamondEntry{}).
		Select("employee_id::text AS employee_id, COUNT(*) AS entry_count, COALESCE(SUM(daily_salary), 0) AS total").
		Where("employee_id IN ?", employeeIDs).
		Scopes(scope.Period("date", month, year)).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.EmployeeID] = row
	}
	return out, nil
}

// DeleteForPeriod removes the employee's entries dated inside the month.
func (r *repository) DeleteForPeriod(ctx context.Context, employeeID string, month, year int) (int64, error) {
	res := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Scopes(scope.Period("date", month, year)).
		Delete(&DiamondEntry{})
	return res.RowsAffected, res.Error
}
