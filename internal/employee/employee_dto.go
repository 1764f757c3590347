package employee

import "github.com/shopspring/decimal"

// EmployeeFields is shared by create and update.
type EmployeeFields struct {
	Name              string          `json:"name" binding:"required,max=150"`
	Email             string          `json:"email" binding:"required,email"`
	Mobile            string          `json:"mobile" binding:"omitempty,max=20"`
	DepartmentID      string          `json:"departmentId" binding:"omitempty,uuid"`
	SubDepartment     string          `json:"subDepartment" binding:"omitempty,max=100"`
	EmployeeType      string          `json:"employeeType" binding:"omitempty,oneof=Fix Chutak"`
	Salary            decimal.Decimal `json:"salary"`
	AdvancedSalary    decimal.Decimal `json:"advancedSalary"`
	PF                decimal.Decimal `json:"pf"`
	PT                decimal.Decimal `json:"pt"`
	BankName          string          `json:"bankName" binding:"omitempty,max=100"`
	AccountNumber     string          `json:"accountNumber" binding:"omitempty,numeric,min=6,max=30"`
	IFSCCode          string          `json:"ifscCode" binding:"omitempty,len=11"`
	AccountHolderName string          `json:"accountHolderName" binding:"omitempty,max=150"`
	AadharNumber      string          `json:"aadharNumber" binding:"omitempty,aadhar"`
	PANNumber         string          `json:"panNumber" binding:"omitempty,pan"`
}

type CreateEmployeeRequest struct {
	EmployeeFields
	EmployeeID string `json:"employeeId" binding:"omitempty,max=30"`
}

type UpdateEmployeeRequest struct {
	EmployeeFields
	IsActive *bool `json:"isActive"`
}

type ListEmployeesRequest struct {
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
	EmployeeType string `form:"type" binding:"omitempty,oneof=Fix Chutak"`
	Active       string `form:"active" binding:"omitempty,oneof=true false all"`
	Query        string `form:"q" binding:"omitempty,max=100"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employeeId"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Mobile            string          `json:"mobile,omitempty"`
	DepartmentID      string          `json:"departmentId,omitempty"`
	SubDepartment     string          `json:"subDepartment,omitempty"`
	EmployeeType      string          `json:"employeeType"`
	Salary            decimal.Decimal `json:"salary"`
	AdvancedSalary    decimal.Decimal `json:"advancedSalary"`
	PF                decimal.Decimal `json:"pf"`
	PT                decimal.Decimal `json:"pt"`
	GrossSalary       decimal.Decimal `json:"grossSalary"`
	NetSalary         decimal.Decimal `json:"netSalary"`
	BankName          string          `json:"bankName,omitempty"`
	AccountNumber     string          `json:"accountNumber,omitempty"`
	IFSCCode          string          `json:"ifscCode,omitempty"`
	AccountHolderName string          `json:"accountHolderName,omitempty"`
	AadharNumber      string          `json:"aadharNumber,omitempty"`
	PANNumber         string          `json:"panNumber,omitempty"`
	IsActive          bool            `json:"isActive"`
}
