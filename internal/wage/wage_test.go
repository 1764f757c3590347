package wage_test

import (
	"testing"
	"time"

	"go-diamond-payroll/internal/wage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type target struct {
	gross, net decimal.Decimal
}

func (t *target) SetWageFigures(gross, net decimal.Decimal) {
	t.gross, t.net = gross, net
}

func chutak() wage.EmployeeFigures {
	return wage.EmployeeFigures{
		EmployeeType:   wage.TypeChutak,
		Salary:         d("1000"),
		AdvancedSalary: d("100"),
		PF:             d("50"),
		PT:             d("20"),
	}
}

func entry(date time.Time, qty int, price string) wage.EntryFigures {
	daily, _, _ := wage.DailySalary(qty, d(price))
	return wage.EntryFigures{Date: date, Category: "A", Quantity: qty, DailySalary: daily}
}

func TestCalculate_ChutakScenario(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []wage.EntryFigures{entry(day, 10, "3"), entry(day, 10, "3")}

	res := wage.Calculate(chutak(), entries)

	assert.True(t, d("1060").Equal(res.GrossSalary), res.GrossSalary.String())
	assert.True(t, d("890").Equal(res.NetSalary), res.NetSalary.String())
	assert.True(t, d("170").Equal(res.Deductions))
	assert.Equal(t, 2, res.EntryCount)

	// one entry removed
	res = wage.Calculate(chutak(), entries[:1])

	assert.True(t, d("1030").Equal(res.GrossSalary), res.GrossSalary.String())
	assert.True(t, d("860").Equal(res.NetSalary), res.NetSalary.String())
}

func TestCalculate_Idempotent(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries := []wage.EntryFigures{entry(day, 7, "2.5"), entry(day, 3, "4")}

	first := wage.Calculate(chutak(), entries)
	second := wage.Calculate(chutak(), entries)

	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.Equal(t, first.EntryCount, second.EntryCount)
}

func TestCalculate_Fix(t *testing.T) {
	t.Run("uses stored gross", func(t *testing.T) {
		emp := wage.EmployeeFigures{EmployeeType: wage.TypeFix, Salary: d("500"), GrossSalary: d("800"), PF: d("30")}
		entries := []wage.EntryFigures{entry(time.Now(), 100, "10")}

		res := wage.Calculate(emp, entries)

		assert.True(t, d("800").Equal(res.GrossSalary))
		assert.True(t, d("770").Equal(res.NetSalary))
		assert.Equal(t, 1, res.EntryCount)
	})

	t.Run("falls back to salary", func(t *testing.T) {
		emp := wage.EmployeeFigures{EmployeeType: wage.TypeFix, Salary: d("500"), PT: d("20")}

		res := wage.Calculate(emp, nil)

		assert.True(t, d("500").Equal(res.GrossSalary))
		assert.True(t, d("480").Equal(res.NetSalary))
	})

	t.Run("unknown type behaves like fix", func(t *testing.T) {
		emp := wage.EmployeeFigures{EmployeeType: "Contract", Salary: d("300")}

		res := wage.Calculate(emp, []wage.EntryFigures{entry(time.Now(), 1, "99")})

		assert.True(t, d("300").Equal(res.GrossSalary))
	})
}

func TestCalculate_ZeroValues(t *testing.T) {
	res := wage.Calculate(wage.EmployeeFigures{EmployeeType: wage.TypeChutak}, nil)

	assert.True(t, res.GrossSalary.IsZero())
	assert.True(t, res.NetSalary.IsZero())
	assert.Equal(t, 0, res.EntryCount)
}

func TestFilterMonth(t *testing.T) {
	entries := []wage.EntryFigures{
		entry(time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), 1, "1"),
		entry(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 1, "1"),
		entry(time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), 1, "1"),
		entry(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 1, "1"),
	}

	got := wage.FilterMonth(entries, 3, 2025)

	assert.Len(t, got, 2)
}

func TestDailySalary(t *testing.T) {
	daily, monthly, yearly := wage.DailySalary(10, d("3"))

	assert.True(t, d("30").Equal(daily))
	assert.True(t, d("900").Equal(monthly))
	assert.True(t, d("10950").Equal(yearly))
}

func TestApply(t *testing.T) {
	tg := &target{}
	wage.Apply(wage.Result{GrossSalary: d("10"), NetSalary: d("4")}, tg)

	assert.True(t, d("10").Equal(tg.gross))
	assert.True(t, d("4").Equal(tg.net))
}

func TestByCategory(t *testing.T) {
	now := time.Now()
	entries := []wage.EntryFigures{
		{Date: now, Category: "A", Quantity: 2, DailySalary: d("6")},
		{Date: now, Category: "B", Quantity: 1, DailySalary: d("5")},
		{Date: now, Category: "A", Quantity: 3, DailySalary: d("9")},
	}

	got := wage.ByCategory(entries)

	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Category)
	assert.Equal(t, 5, got[0].Quantity)
	assert.Equal(t, 2, got[0].EntryCount)
	assert.True(t, d("15").Equal(got[0].TotalSalary))
}

func TestIsMoney(t *testing.T) {
	assert.True(t, wage.IsMoney(d("12.50")))
	assert.True(t, wage.IsMoney(d("12.500")))
	assert.True(t, wage.IsMoney(d("-3")))
	assert.False(t, wage.IsMoney(d("0.005")))
	assert.False(t, wage.IsMoney(d("100.125")))
}
