package salarytransfer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Receipt is everything printed on a salary receipt.
type Receipt struct {
	Payment       SalaryPayment
	EmployeeCode  string
	EmployeeName  string
	BankName      string
	AccountNumber string
}

func RenderReceipt(r Receipt) ([]byte, error) {
	p := r.Payment

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Receipt "+p.ReceiptNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Salary Receipt")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	line("Receipt No.", p.ReceiptNumber)
	line("Paid On", p.PaidAt.Format("02 Jan 2006"))
	line("Period", fmt.Sprintf("%02d/%d", p.Month, p.Year))
	line("Employee", fmt.Sprintf("%s (%s)", r.EmployeeName, r.EmployeeCode))
	line("Payment Method", p.PaymentMethod)
	if r.AccountNumber != "" {
		line("Credited To", fmt.Sprintf("%s %s", r.BankName, maskAccount(r.AccountNumber)))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Amount (INR)", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	row := func(label, amount string) {
		pdf.CellFormat(120, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, amount, "1", 1, "R", false, 0, "")
	}
	row(fmt.Sprintf("Gross salary (%d entries)", p.EntryCount), p.GrossSalary.StringFixed(2))
	row("Deductions (advance, PF, PT)", p.Deductions.Neg().StringFixed(2))

	pdf.SetFont("Helvetica", "B", 11)
	row("Net paid", p.Amount.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", p.ReceiptNumber, err)
	}
	return buf.Bytes(), nil
}

func maskAccount(acc string) string {
	if len(acc) <= 4 {
		return acc
	}
	return "XXXX" + acc[len(acc)-4:]
}
