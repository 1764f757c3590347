package salarytransfer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const transferSheet = "Transfers"

var transferHeaders = []string{
	"Employee ID", "Name", "Bank", "Account Number", "IFSC", "Account Holder", "Amount", "Status",
}

// BuildTransferSheet lays out a bulk transfer summary as an xlsx workbook the
// bank upload desk can work from.
func BuildTransferSheet(resp BulkTransferResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transferSheet); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	amountStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	f.SetCellValue(transferSheet, "A1", fmt.Sprintf("Salary transfer %02d/%d", resp.Month, resp.Year))
	for i, h := range transferHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s3", col)
		f.SetCellValue(transferSheet, cell, h)
		f.SetCellStyle(transferSheet, cell, cell, headerStyle)
	}

	row := 4
	for _, r := range resp.Employees {
		amount, _ := r.Amount.Float64()
		f.SetCellValue(transferSheet, fmt.Sprintf("A%d", row), r.EmployeeCode)
		f.SetCellValue(transferSheet, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(transferSheet, fmt.Sprintf("C%d", row), r.BankName)
		f.SetCellStr(transferSheet, fmt.Sprintf("D%d", row), r.AccountNumber)
		f.SetCellValue(transferSheet, fmt.Sprintf("E%d", row), r.IFSCCode)
		f.SetCellValue(transferSheet, fmt.Sprintf("F%d", row), r.AccountHolderName)
		f.SetCellValue(transferSheet, fmt.Sprintf("G%d", row), amount)
		f.SetCellStyle(transferSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), amountStyle)
		f.SetCellValue(transferSheet, fmt.Sprintf("H%d", row), r.Status)
		row++
	}

	total, _ := resp.TotalAmount.Float64()
	f.SetCellValue(transferSheet, fmt.Sprintf("F%d", row), "Total")
	f.SetCellValue(transferSheet, fmt.Sprintf("G%d", row), total)
	f.SetCellStyle(transferSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("G%d", row), headerStyle)

	for i, w := range []float64{14, 28, 20, 22, 14, 28, 14, 30} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(transferSheet, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write transfer sheet: %w", err)
	}
	return buf.Bytes(), nil
}
