package employee_test

import (
	"testing"

	"go-diamond-payroll/internal/employee"
	"go-diamond-payroll/internal/wage"

	"github.com/stretchr/testify/assert"
)

func TestEmployee_RecalculateFixIgnoresEntries(t *testing.T) {
	emp := &employee.Employee{EmployeeType: wage.TypeFix, Salary: dec("25000"), PF: dec("1800"), PT: dec("200")}

	r := emp.Recalculate([]wage.EntryFigures{{DailySalary: dec("999")}})

	assert.True(t, dec("25000").Equal(emp.GrossSalary))
	assert.True(t, dec("23000").Equal(emp.NetSalary))
	assert.True(t, dec("2000").Equal(r.Deductions))
}

func TestEmployee_ZeroCompensation(t *testing.T) {
	emp := &employee.Employee{
		EmployeeType: wage.TypeChutak, Salary: dec("1000"), AdvancedSalary: dec("100"),
		PF: dec("50"), PT: dec("20"), GrossSalary: dec("1060"), NetSalary: dec("890"),
		AccountNumber: "1234567890",
	}

	emp.ZeroCompensation()

	for _, v := range []string{
		emp.Salary.String(), emp.AdvancedSalary.String(), emp.PF.String(),
		emp.PT.String(), emp.GrossSalary.String(), emp.NetSalary.String(),
	} {
		assert.Equal(t, "0", v)
	}
	assert.True(t, emp.HasBankDetails())
}
