package department

import (
	"context"
	"database/sql"

	"go-diamond-payroll/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context, activeOnly bool) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	GetEmployeeDepartmentID(ctx context.Context, employeeID string) (string, error)
	CountActiveEmployees(ctx context.Context, departmentID string) (int64, error)
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

// conn routes queries through the caller's transaction when one is bound.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Department, error) {
	var depts []Department
	q := r.conn(ctx).Order("name ASC")
	if activeOnly {
		q = q.Scopes(scope.Active())
	}
	err := q.Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) GetEmployeeDepartmentID(ctx context.Context, employeeID string) (string, error) {
	var departmentID sql.NullString
	err := r.conn(ctx).
		Table("employees").
		Select("department_id::text").
		Where("id = ?", employeeID).
		Where("is_active = ?", true).
		Scan(&departmentID).Error
	return departmentID.String, err
}

func (r *repository) CountActiveEmployees(ctx context.Context, departmentID string) (int64, error) {
	var n int64
	err := r.conn(ctx).
		Table("employees").
		Where("department_id = ?", departmentID).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}
