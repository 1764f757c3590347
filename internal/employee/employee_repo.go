package employee

import (
	"context"
	"database/sql"

	"go-diamond-payroll/internal/shared/scope"
	"go-diamond-payroll/internal/wage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	DepartmentID string
	EmployeeType string
	// Active nil means both active and inactive.
	Active   *bool
	Query    string
	Page     int
	PageSize int
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context, filter Filter) ([]Employee, int64, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	ListEntryFigures(ctx context.Context, employeeID string) ([]wage.EntryFigures, error)
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Create(emp).Error
}

// FindAll returns one page when filter.Page is set, otherwise every match.
func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Employee, int64, error) {
	q := r.conn(ctx).Model(&Employee{})
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.EmployeeType != "" {
		q = q.Where("employee_type = ?", filter.EmployeeType)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR employee_code ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 {
		q = q.Scopes(scope.Paginate(filter.Page, filter.PageSize))
	}

	var emps []Employee
	err := q.Order("employee_code ASC").Find(&emps).Error
	return emps, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.conn(ctx).First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.conn(ctx).Save(emp).Error
}

// ListEntryFigures reads every diamond entry of the employee, all time.
func (r *repository) ListEntryFigures(ctx context.Context, employeeID string) ([]wage.EntryFigures, error) {
	var entries []wage.EntryFigures
	err := r.conn(ctx).
		Table("diamondentries").
		Select("date, category, quantity, daily_salary").
		Where("employee_id = ?", employeeID).
		Order("date ASC").
		Scan(&entries).Error
	return entries, err
}
