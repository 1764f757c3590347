package salarytransfer_test

import (
	"bytes"
	"testing"
	"time"

	"go-diamond-payroll/internal/salarytransfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "SR-2025-000001", salarytransfer.ReceiptNumber(2025, 1))
	assert.Equal(t, "SR-2025-123456", salarytransfer.ReceiptNumber(2025, 123456))
}

func TestRenderReceipt(t *testing.T) {
	data, err := salarytransfer.RenderReceipt(salarytransfer.Receipt{
		Payment: salarytransfer.SalaryPayment{
			Month: 3, Year: 2024, ReceiptNumber: "SR-2024-000001",
			Amount: dec("890"), GrossSalary: dec("1060"), Deductions: dec("170"),
			PaymentMethod: salarytransfer.DefaultPaymentMethod, EntryCount: 2,
			PaidAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		EmployeeCode:  "EMP-000001",
		EmployeeName:  "Ravi Patel",
		BankName:      "HDFC",
		AccountNumber: "001122334455",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestBuildTransferSheet(t *testing.T) {
	data, err := salarytransfer.BuildTransferSheet(salarytransfer.BulkTransferResponse{
		Month: 3,
		Year:  2024,
		Employees: []salarytransfer.BulkTransferRow{
			{EmployeeCode: "EMP-1", Name: "Ravi", AccountNumber: "0011223344", Amount: dec("890"), Status: salarytransfer.StatusPending},
			{EmployeeCode: "EMP-2", Name: "Mina", Status: salarytransfer.StatusNoBankDetails},
		},
		TotalAmount: dec("890"),
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, _ := f.GetCellValue("Transfers", "A1")
	assert.Equal(t, "Salary transfer 03/2024", title)

	acc, _ := f.GetCellValue("Transfers", "D4")
	assert.Equal(t, "0011223344", acc)

	status, _ := f.GetCellValue("Transfers", "H5")
	assert.Equal(t, salarytransfer.StatusNoBankDetails, status)

	label, _ := f.GetCellValue("Transfers", "F6")
	assert.Equal(t, "Total", label)
}
