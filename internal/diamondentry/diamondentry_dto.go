package diamondentry

import (
	"go-diamond-payroll/internal/wage"

	"github.com/shopspring/decimal"
)

type CreateEntryRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	Category   string `json:"category" binding:"required,max=50"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type BulkEntryItem struct {
	Date     string `json:"date" binding:"required"`
	Category string `json:"category" binding:"required,max=50"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type BulkCreateRequest struct {
	EmployeeID string          `json:"employeeId" binding:"required,uuid"`
	Entries    []BulkEntryItem `json:"entries" binding:"required,min=1,max=500,dive"`
}

// UpdateEntryRequest leaves fields unchanged when they are empty or zero.
type UpdateEntryRequest struct {
	EmployeeID string `json:"employeeId" binding:"omitempty,uuid"`
	Date       string `json:"date"`
	Category   string `json:"category" binding:"omitempty,max=50"`
	Quantity   int    `json:"quantity" binding:"omitempty,min=1"`
}

type ListEntriesRequest struct {
	EmployeeID   string `form:"employeeId" binding:"omitempty,uuid"`
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
	Category     string `form:"category" binding:"omitempty,max=50"`
	Month        int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year         int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

type PeriodRequest struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type EntryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	DiamondPrice  decimal.Decimal `json:"diamondPrice"`
	DailySalary   decimal.Decimal `json:"dailySalary"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	YearlySalary  decimal.Decimal `json:"yearlySalary"`
	DepartmentID  string          `json:"departmentId,omitempty"`
	SubDepartment string          `json:"subDepartment,omitempty"`
}

// EmployeeSalary is the stored figure pair after a write settles.
type EmployeeSalary struct {
	EmployeeID  string          `json:"employeeId"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
	NetSalary   decimal.Decimal `json:"netSalary"`
}

type EntryMutationResponse struct {
	Entry     *EntryResponse   `json:"entry,omitempty"`
	Entries   []EntryResponse  `json:"entries,omitempty"`
	Employees []EmployeeSalary `json:"employees"`
}

type SalarySummaryResponse struct {
	EmployeeID   string                   `json:"employeeId"`
	EmployeeCode string                   `json:"employeeCode"`
	Name         string                   `json:"name"`
	EmployeeType string                   `json:"employeeType"`
	Month        int                      `json:"month,omitempty"`
	Year         int                      `json:"year,omitempty"`
	Calculated   wage.Result              `json:"calculated"`
	Stored       EmployeeSalary           `json:"stored"`
	Categories   []wage.CategoryBreakdown `json:"categories"`
}

type EmployeeMonthlyRow struct {
	EmployeeID    string          `json:"employeeId"`
	EmployeeCode  string          `json:"employeeCode"`
	Name          string          `json:"name"`
	EmployeeType  string          `json:"employeeType"`
	SubDepartment string          `json:"subDepartment,omitempty"`
	EntryCount    int             `json:"entryCount"`
	EntryTotal    decimal.Decimal `json:"entryTotal"`
	GrossSalary   decimal.Decimal `json:"grossSalary"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetSalary     decimal.Decimal `json:"netSalary"`
}

type DepartmentMonthlyResponse struct {
	DepartmentID string               `json:"departmentId"`
	Month        int                  `json:"month"`
	Year         int                  `json:"year"`
	Employees    []EmployeeMonthlyRow `json:"employees"`
	TotalEntries int                  `json:"totalEntries"`
	TotalGross   decimal.Decimal      `json:"totalGross"`
	TotalNet     decimal.Decimal      `json:"totalNet"`
}
