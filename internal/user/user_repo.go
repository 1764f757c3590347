package user

import (
	"context"
	"database/sql"
	"strings"

	"go-diamond-payroll/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	Role     string
	Page     int
	PageSize int
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context, filter Filter) ([]User, int64, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*User, error)
	FindByLogin(ctx context.Context, login string) (*User, error)
	Update(ctx context.Context, u *User) error
	LockActiveByRole(ctx context.Context, role string) ([]User, error)
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn(ctx).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]User, int64, error) {
	q := r.conn(ctx).Model(&User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []User
	q = q.Order("username ASC")
	if filter.Page > 0 {
		q = q.Scopes(scope.Paginate(filter.Page, filter.PageSize))
	}
	err := q.Find(&users).Error
	return users, total, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&u, "id = ?", id).Error
	return &u, err
}

// FindByLogin matches either the username or the email, case-insensitively.
func (r *repository) FindByLogin(ctx context.Context, login string) (*User, error) {
	var u User
	login = strings.ToLower(strings.TrimSpace(login))
	err := r.conn(ctx).
		Where("LOWER(username) = ? OR LOWER(email) = ?", login, login).
		First(&u).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn(ctx).Save(u).Error
}

// LockActiveByRole locks every active account holding role, in id order, so
// concurrent demotions serialize on the same rows.
func (r *repository) LockActiveByRole(ctx context.Context, role string) ([]User, error) {
	var users []User
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role = ? AND is_active = ?", role, true).
		Order("id ASC").
		Find(&users).Error
	return users, err
}
