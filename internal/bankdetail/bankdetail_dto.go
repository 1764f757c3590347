package bankdetail

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankDetailRequest struct {
	BankName          string          `json:"bankName" binding:"required,max=100"`
	AccountNumber     string          `json:"accountNumber" binding:"required,numeric,min=6,max=34"`
	AccountHolderName string          `json:"accountHolderName" binding:"required,max=100"`
	IFSCCode          string          `json:"ifscCode" binding:"required,len=11,alphanum"`
	Branch            string          `json:"branch" binding:"omitempty,max=100"`
	Amount            decimal.Decimal `json:"amount"`
	IsActive          *bool           `json:"isActive"`
}

type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type ListBankDetailsRequest struct {
	IncludeInactive bool `form:"includeInactive"`
}

type BankDetailResponse struct {
	ID                string          `json:"id"`
	BankName          string          `json:"bankName"`
	AccountNumber     string          `json:"accountNumber"`
	AccountHolderName string          `json:"accountHolderName"`
	IFSCCode          string          `json:"ifscCode"`
	Branch            string          `json:"branch,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
