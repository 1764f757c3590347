package salaryreport

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Salary Report"

var reportHeaders = []string{
	"Employee ID", "Name", "Type", "Department", "Sub-department",
	"Entries", "Entry Total", "Gross", "Deductions", "Net", "Paid",
}

func BuildWorkbook(report ReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#8EA9DB", Style: 1},
		},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	f.SetCellValue(reportSheet, "A1", fmt.Sprintf("Salary report %02d/%d", report.Month, report.Year))
	for i, h := range reportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s3", col)
		f.SetCellValue(reportSheet, cell, h)
		f.SetCellStyle(reportSheet, cell, cell, boldStyle)
	}

	row := 4
	for _, r := range report.Rows {
		f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), r.EmployeeCode)
		f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(reportSheet, fmt.Sprintf("C%d", row), r.EmployeeType)
		f.SetCellValue(reportSheet, fmt.Sprintf("D%d", row), r.Department)
		f.SetCellValue(reportSheet, fmt.Sprintf("E%d", row), r.SubDepartment)
		f.SetCellValue(reportSheet, fmt.Sprintf("F%d", row), r.EntryCount)
		setMoney(f, fmt.Sprintf("G%d", row), r.EntryTotal)
		setMoney(f, fmt.Sprintf("H%d", row), r.GrossSalary)
		setMoney(f, fmt.Sprintf("I%d", row), r.Deductions)
		setMoney(f, fmt.Sprintf("J%d", row), r.NetSalary)
		setMoney(f, fmt.Sprintf("K%d", row), r.PaidAmount)
		f.SetCellStyle(reportSheet, fmt.Sprintf("G%d", row), fmt.Sprintf("K%d", row), moneyStyle)
		row++
	}

	t := report.Totals
	f.SetCellValue(reportSheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(reportSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%d employees", t.Employees))
	f.SetCellValue(reportSheet, fmt.Sprintf("F%d", row), t.EntryCount)
	setMoney(f, fmt.Sprintf("H%d", row), t.GrossSalary)
	setMoney(f, fmt.Sprintf("I%d", row), t.Deductions)
	setMoney(f, fmt.Sprintf("J%d", row), t.NetSalary)
	setMoney(f, fmt.Sprintf("K%d", row), t.PaidAmount)
	f.SetCellStyle(reportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("K%d", row), boldStyle)

	for i, w := range []float64{14, 26, 9, 20, 16, 9, 13, 13, 13, 13, 13} {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(reportSheet, col, col, w)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write salary report: %w", err)
	}
	return buf.Bytes(), nil
}

func setMoney(f *excelize.File, cell string, v decimal.Decimal) {
	n, _ := v.Round(2).Float64()
	f.SetCellValue(reportSheet, cell, n)
}

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Employee", 28, "L"},
	{"Name", 48, "L"},
	{"Type", 16, "L"},
	{"Department", 36, "L"},
	{"Entries", 16, "R"},
	{"Gross", 28, "R"},
	{"Deductions", 28, "R"},
	{"Net", 28, "R"},
	{"Paid", 28, "R"},
}

// RenderPDF prints the report as an A4 landscape table.
func RenderPDF(report ReportResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Salary report %02d/%d", report.Month, report.Year), false)
	pdf.SetAutoPageBreak(true, 12)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(217, 225, 242)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Salary Report %02d/%d", report.Month, report.Year))
	pdf.Ln(12)
	header()

	for _, r := range report.Rows {
		values := []string{
			r.EmployeeCode,
			r.Name,
			r.EmployeeType,
			r.Department,
			fmt.Sprintf("%d", r.EntryCount),
			r.GrossSalary.StringFixed(2),
			r.Deductions.StringFixed(2),
			r.NetSalary.StringFixed(2),
			r.PaidAmount.StringFixed(2),
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, 6, values[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := report.Totals
	pdf.SetFont("Helvetica", "B", 9)
	totals := []string{
		"Total", fmt.Sprintf("%d employees", t.Employees), "", "",
		fmt.Sprintf("%d", t.EntryCount),
		t.GrossSalary.StringFixed(2),
		t.Deductions.StringFixed(2),
		t.NetSalary.StringFixed(2),
		t.PaidAmount.StringFixed(2),
	}
	for i, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, totals[i], "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
