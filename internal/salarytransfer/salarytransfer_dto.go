package salarytransfer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bulk row statuses.
const (
	StatusSuccess            = "Success"
	StatusNoBankDetails      = "Failed - No Bank Details"
	StatusPaymentRecordError = "Failed - Payment Record Error"
	StatusPending            = "Pending"
)

type PayRequest struct {
	Month         int    `json:"month" binding:"required,min=1,max=12"`
	Year          int    `json:"year" binding:"required,min=2000,max=2100"`
	BankDetailID  string `json:"bankDetailId" binding:"omitempty,uuid"`
	PaymentMethod string `json:"paymentMethod" binding:"omitempty,max=50"`
}

// BulkTransferRequest previews when MarkAsPaid is false. Month and year
// default to the current month.
type BulkTransferRequest struct {
	BankDetailID  string `json:"bankDetailId" form:"bankDetailId" binding:"omitempty,uuid"`
	MarkAsPaid    bool   `json:"markAsPaid" form:"markAsPaid"`
	Month         int    `json:"month" form:"month" binding:"omitempty,min=1,max=12"`
	Year          int    `json:"year" form:"year" binding:"omitempty,min=2000,max=2100"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" binding:"omitempty,max=50"`
}

type ListPaymentsRequest struct {
	EmployeeID string `form:"employeeId" binding:"omitempty,uuid"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

type ReceiptRequest struct {
	PaymentID string `form:"paymentId" binding:"omitempty,uuid"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Amount        decimal.Decimal `json:"amount"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	Deductions    decimal.Decimal `json:"deductions"`
	PaymentMethod string          `json:"paymentMethod"`
	BankDetailID  string          `json:"bankDetailId,omitempty"`
	ReceiptNumber string          `json:"receiptNumber"`
	EntryCount    int             `json:"entryCount"`
	PaidAt        time.Time       `json:"paidAt"`
	ReceiptURL    string          `json:"receiptUrl,omitempty"`
	Status        string          `json:"status"`
}

// SettledEmployee is the employee as left by a settlement.
type SettledEmployee struct {
	ID             string          `json:"id"`
	EmployeeCode   string          `json:"employeeId"`
	Name           string          `json:"name"`
	EmployeeType   string          `json:"employeeType"`
	Salary         decimal.Decimal `json:"salary"`
	AdvancedSalary decimal.Decimal `json:"advancedSalary"`
	PF             decimal.Decimal `json:"pf"`
	PT             decimal.Decimal `json:"pt"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	NetSalary      decimal.Decimal `json:"netSalary"`
}

type PayResponse struct {
	Employee     SettledEmployee  `json:"employee"`
	BankDetailID string           `json:"bankDetailId,omitempty"`
	BankBalance  *decimal.Decimal `json:"bankBalance,omitempty"`
	Payment      PaymentResponse  `json:"payment"`
}

type BulkTransferRow struct {
	EmployeeID        string          `json:"employeeId"`
	EmployeeCode      string          `json:"employeeCode"`
	Name              string          `json:"name"`
	BankName          string          `json:"bankName,omitempty"`
	AccountNumber     string          `json:"accountNumber,omitempty"`
	IFSCCode          string          `json:"ifscCode,omitempty"`
	AccountHolderName string          `json:"accountHolderName,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	PaymentID         string          `json:"paymentId,omitempty"`
	ReceiptNumber     string          `json:"receiptNumber,omitempty"`
	Error             string          `json:"error,omitempty"`
}

type BulkTransferResponse struct {
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	MarkAsPaid   bool              `json:"markAsPaid"`
	Employees    []BulkTransferRow `json:"employees"`
	TotalAmount  decimal.Decimal   `json:"totalAmount"`
	SuccessCount int               `json:"successCount"`
	FailedCount  int               `json:"failedCount"`
	BankDetailID string            `json:"bankDetailId,omitempty"`
	BankBalance  *decimal.Decimal  `json:"bankBalance,omitempty"`
}
