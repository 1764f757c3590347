package employee

import (
	"time"

	"go-diamond-payroll/internal/wage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeCode      string          `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_code"`
	Name              string          `gorm:"type:varchar(150);not null"`
	Email             string          `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Mobile            string          `gorm:"type:varchar(20)"`
	DepartmentID      *uuid.UUID      `gorm:"type:uuid;index"`
	SubDepartment     string          `gorm:"type:varchar(100)"`
	EmployeeType      string          `gorm:"type:varchar(10);not null;default:'Fix'"`
	Salary            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AdvancedSalary    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PF                decimal.Decimal `gorm:"column:pf;type:numeric(14,2);not null;default:0"`
	PT                decimal.Decimal `gorm:"column:pt;type:numeric(14,2);not null;default:0"`
	GrossSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	BankName          string          `gorm:"type:varchar(100)"`
	AccountNumber     string          `gorm:"type:varchar(30)"`
	IFSCCode          string          `gorm:"column:ifsc_code;type:varchar(20)"`
	AccountHolderName string          `gorm:"type:varchar(150)"`
	AadharNumber      string          `gorm:"type:varchar(12)"`
	PANNumber         string          `gorm:"column:pan_number;type:varchar(10)"`
	IsActive          bool            `gorm:"not null;default:true;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) Figures() wage.EmployeeFigures {
	return wage.EmployeeFigures{
		EmployeeType:   e.EmployeeType,
		Salary:         e.Salary,
		AdvancedSalary: e.AdvancedSalary,
		PF:             e.PF,
		PT:             e.PT,
		GrossSalary:    e.GrossSalary,
	}
}

func (e *Employee) SetWageFigures(gross, net decimal.Decimal) {
	e.GrossSalary = gross
	e.NetSalary = net
}

// Recalculate refreshes the stored gross and net. For Fix employees gross
// follows salary; entries only matter for Chutak.
func (e *Employee) Recalculate(entries []wage.EntryFigures) wage.Result {
	if e.EmployeeType != wage.TypeChutak {
		e.GrossSalary = e.Salary
	}
	r := wage.Calculate(e.Figures(), entries)
	wage.Apply(r, e)
	return r
}

// ZeroCompensation clears every figure after a salary has been paid out.
func (e *Employee) ZeroCompensation() {
	e.Salary = decimal.Zero
	e.AdvancedSalary = decimal.Zero
	e.PF = decimal.Zero
	e.PT = decimal.Zero
	e.GrossSalary = decimal.Zero
	e.NetSalary = decimal.Zero
}

func (e *Employee) HasBankDetails() bool {
	return e.AccountNumber != ""
}

func (e *Employee) DepartmentIDString() string {
	if e.DepartmentID == nil {
		return ""
	}
	return e.DepartmentID.String()
}
