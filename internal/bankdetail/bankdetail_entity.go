package bankdetail

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankDetail is a company payout account. Amount is the running balance and
// never goes below zero.
type BankDetail struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BankName          string          `gorm:"type:varchar(100);not null"`
	AccountNumber     string          `gorm:"type:varchar(34);not null;uniqueIndex:uq_bank_account_number"`
	AccountHolderName string          `gorm:"type:varchar(100);not null"`
	IFSCCode          string          `gorm:"column:ifsc_code;type:varchar(11);not null"`
	Branch            string          `gorm:"type:varchar(100)"`
	Amount            decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	IsActive          bool            `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (BankDetail) TableName() string {
	return "bankdetails"
}

// Debit subtracts amount and clamps the balance at zero.
func (b *BankDetail) Debit(amount decimal.Decimal) {
	b.Amount = ClampDebit(b.Amount, amount)
}

func (b *BankDetail) Credit(amount decimal.Decimal) {
	b.Amount = b.Amount.Add(amount)
}

// ClampDebit returns max(0, balance - amount).
func ClampDebit(balance, amount decimal.Decimal) decimal.Decimal {
	next := balance.Sub(amount)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
