package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a dashboard account. Payroll employees never log in.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string         `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uq_user_username"`
	Email     string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	Password  string         `gorm:"column:password;type:text;not null"`
	Role      string         `gorm:"column:role;type:varchar(20);not null;default:accountant"`
	IsActive  bool           `gorm:"column:is_active;not null;default:true"`
	LastLogin *time.Time     `gorm:"column:last_login"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
