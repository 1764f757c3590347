package diamondentry

import (
	"time"

	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiamondEntry is one production record. DiamondPrice is the price in force
// when the entry was created; later price-rule edits never touch it.
type DiamondEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_diamond_entry_employee_date,priority:1"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_diamond_entry_employee_date,priority:2"`
	Category      string          `gorm:"type:varchar(50);not null"`
	Quantity      int             `gorm:"not null"`
	DiamondPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DailySalary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MonthlySalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	YearlySalary  decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	DepartmentID  *uuid.UUID      `gorm:"type:uuid;index"`
	SubDepartment string          `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DiamondEntry) TableName() string {
	return "diamondentries"
}

// ApplyPrice snapshots price onto the entry and refreshes the derived salaries.
func (e *DiamondEntry) ApplyPrice(price decimal.Decimal) {
	e.DiamondPrice = price
	e.DailySalary, e.MonthlySalary, e.YearlySalary = wage.DailySalary(e.Quantity, price)
}

func (e *DiamondEntry) Figures() wage.EntryFigures {
	return wage.EntryFigures{
		Date:        e.Date,
		Category:    e.Category,
		Quantity:    e.Quantity,
		DailySalary: e.DailySalary,
	}
}
