package diamondprice

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Filter struct {
	Category     string
	DepartmentID string
	ActiveOnly   bool
}

//go:generate mockgen -source=diamondprice_repo.go -destination=mock/diamondprice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, price *DiamondPrice) error
	FindAll(ctx context.Context, filter Filter) ([]DiamondPrice, error)
	FindByID(ctx context.Context, id string) (*DiamondPrice, error)
	Update(ctx context.Context, price *DiamondPrice) error
	Delete(ctx context.Context, id string) error
	FindScoped(ctx context.Context, category, departmentID, subDepartment string) (*DiamondPrice, error)
	FindDepartmentOnly(ctx context.Context, category, departmentID string) (*DiamondPrice, error)
	FindDefault(ctx context.Context, category string) (*DiamondPrice, error)
	UnsetDefaults(ctx context.Context, category, exceptID string) error
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

func (r *repository) Create(ctx context.Context, price *DiamondPrice) error {
	return r.conn(ctx).Create(price).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]DiamondPrice, error) {
	q := r.conn(ctx)
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var prices []DiamondPrice
	err := q.Order("category ASC, is_default DESC, updated_at DESC").Find(&prices).Error
	return prices, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*DiamondPrice, error) {
	var price DiamondPrice
	err := r.conn(ctx).First(&price, "id = ?", id).Error
	return &price, err
}

func (r *repository) Update(ctx context.Context, price *DiamondPrice) error {
	return r.conn(ctx).Save(price).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&DiamondPrice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) active(ctx context.Context, category string) *gorm.DB {
	return r.conn(ctx).
		Where("category = ?", category).
		Where("is_active = ?", true).
		Order("updated_at DESC")
}

func (r *repository) FindScoped(ctx context.Context, category, departmentID, subDepartment string) (*DiamondPrice, error) {
	var price DiamondPrice
	err := r.active(ctx, category).
		Where("department_id = ?", departmentID).
		Where("LOWER(sub_department) = LOWER(?)", subDepartment).
		First(&price).Error
	return &price, err
}

func (r *repository) FindDepartmentOnly(ctx context.Context, category, departmentID string) (*DiamondPrice, error) {
	var price DiamondPrice
	err := r.active(ctx, category).
		Where("department_id = ?", departmentID).
		Where("(sub_department IS NULL OR sub_department = '')").
		First(&price).Error
	return &price, err
}

func (r *repository) FindDefault(ctx context.Context, category string) (*DiamondPrice, error) {
	var price DiamondPrice
	err := r.active(ctx, category).
		Where("is_default = ?", true).
		First(&price).Error
	return &price, err
}

// UnsetDefaults clears is_default on every other rule of the category.
func (r *repository) UnsetDefaults(ctx context.Context, category, exceptID string) error {
	q := r.conn(ctx).Model(&DiamondPrice{}).
		Where("category = ?", category).
		Where("is_default = ?", true)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_default", false).Error
}
