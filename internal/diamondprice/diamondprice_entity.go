package diamondprice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiamondPrice is a per-category price rule. A rule is scoped to a
// department, a department and sub-department, or flagged as the default.
type DiamondPrice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category      string          `gorm:"type:varchar(50);not null;index:idx_diamond_price_lookup,priority:1"`
	Price         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DepartmentID  *uuid.UUID      `gorm:"type:uuid;index:idx_diamond_price_lookup,priority:2"`
	SubDepartment *string         `gorm:"type:varchar(100)"`
	IsDefault     bool            `gorm:"not null;default:false"`
	IsActive      bool            `gorm:"not null;default:true"`
	Description   string          `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DiamondPrice) TableName() string {
	return "diamondprices"
}
