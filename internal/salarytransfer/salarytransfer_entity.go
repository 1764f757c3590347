package salarytransfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentMethod = "Bank Transfer"

	PaymentStatusPaid     = "paid"
	PaymentStatusArchived = "archived"
)

// SalaryPayment is an append-only settlement receipt. The employee figures
// are snapshots taken inside the settlement transaction, before the
// employee's compensation is wiped.
type SalaryPayment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_salary_payment_employee_period,priority:1"`
	Month         int             `gorm:"not null;index:idx_salary_payment_employee_period,priority:3"`
	Year          int             `gorm:"not null;index:idx_salary_payment_employee_period,priority:2"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrossSalary   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Deductions    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(50);not null;default:'Bank Transfer'"`
	BankDetailID  *uuid.UUID      `gorm:"type:uuid"`
	ReceiptNumber string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_salary_payment_receipt"`
	EntryCount    int             `gorm:"not null;default:0"`
	PaidAt        time.Time       `gorm:"not null"`
	ReceiptURL    string          `gorm:"type:varchar(255)"`
	Status        string          `gorm:"type:varchar(20);not null;default:'paid'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SalaryPayment) TableName() string {
	return "salarypayments"
}

// ReceiptNumber formats a yearly sequence value as SR-<year>-<6 digits>.
func ReceiptNumber(year int, seq int64) string {
	return fmt.Sprintf("SR-%d-%06d", year, seq)
}

// ReceiptObjectName is where the archived PDF of p is stored.
func ReceiptObjectName(p SalaryPayment) string {
	return fmt.Sprintf("receipts/%d/%02d/%s.pdf", p.Year, p.Month, p.ReceiptNumber)
}
