package bankdetail

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=bankdetail_repo.go -destination=mock/bankdetail_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, bank *BankDetail) error
	FindAll(ctx context.Context, activeOnly bool) ([]BankDetail, error)
	FindByID(ctx context.Context, id string) (*BankDetail, error)
	FindByIDForUpdate(ctx context.Context, id string) (*BankDetail, error)
	Update(ctx context.Context, bank *BankDetail) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, bank *BankDetail) error {
	return r.conn(ctx).Create(bank).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]BankDetail, error) {
	q := r.conn(ctx).Model(&BankDetail{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var banks []BankDetail
	err := q.Order("bank_name ASC, account_number ASC").Find(&banks).Error
	return banks, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*BankDetail, error) {
	var bank BankDetail
	err := r.conn(ctx).First(&bank, "id = ?", id).Error
	return &bank, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*BankDetail, error) {
	var bank BankDetail
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&bank, "id = ?", id).Error
	return &bank, err
}

func (r *repository) Update(ctx context.Context, bank *BankDetail) error {
	return r.conn(ctx).Save(bank).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&BankDetail{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
