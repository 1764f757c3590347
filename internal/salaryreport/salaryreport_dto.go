package salaryreport

import "github.com/shopspring/decimal"

// ReportRequest defaults to the current month when month or year is missing.
type ReportRequest struct {
	Month        int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year         int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
}

type ReportRow struct {
	EmployeeID    string          `json:"employeeId"`
	EmployeeCode  string          `json:"employeeCode"`
	Name          string          `json:"name"`
	EmployeeType  string          `json:"employeeType"`
	Department    string          `json:"department,omitempty"`
	SubDepartment string          `json:"subDepartment,omitempty"`
	EntryCount    int             `json:"entryCount"`
	EntryTotal    decimal.Decimal `json:"entryTotal"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
}

type ReportTotals struct {
	Employees   int             `json:"employees"`
	EntryCount  int             `json:"entryCount"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}

type ReportResponse struct {
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	DepartmentID string       `json:"departmentId,omitempty"`
	Rows         []ReportRow  `json:"rows"`
	Totals       ReportTotals `json:"totals"`
}
