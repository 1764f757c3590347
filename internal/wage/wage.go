// Package wage derives gross and net pay from an employee's compensation
// fields and their diamond entries. Everything here is a pure function of its
// inputs; callers persist the result.
package wage

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeFix    = "Fix"
	TypeChutak = "Chutak"
)

// Vestigial multiples kept on every entry.
const (
	DaysPerMonth = 30
	DaysPerYear  = 365
)

type EmployeeFigures struct {
	EmployeeType   string
	Salary         decimal.Decimal
	AdvancedSalary decimal.Decimal
	PF             decimal.Decimal
	PT             decimal.Decimal
	GrossSalary    decimal.Decimal
}

type EntryFigures struct {
	Date        time.Time
	Category    string
	Quantity    int
	DailySalary decimal.Decimal
}

type Result struct {
	GrossSalary decimal.Decimal `json:"grossSalary"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	Deductions  decimal.Decimal `json:"deductions"`
	EntryTotal  decimal.Decimal `json:"entryTotal"`
	EntryCount  int             `json:"entryCount"`
}

// Target receives a computed Result.
type Target interface {
	SetWageFigures(gross, net decimal.Decimal)
}

// IsMoney reports whether d fits the two decimal places money is stored with.
func IsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

func Deductions(emp EmployeeFigures) decimal.Decimal {
	return emp.AdvancedSalary.Add(emp.PF).Add(emp.PT)
}

// Calculate sums entries and delegates to CalculateTotals.
func Calculate(emp EmployeeFigures, entries []EntryFigures) Result {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.DailySalary)
	}
	return CalculateTotals(emp, total, len(entries))
}

// CalculateTotals is Calculate for callers that already aggregated their
// entries in SQL.
//
// Chutak: gross = salary + entryTotal.
// Fix and anything else: gross = stored gross, or salary when gross is zero.
// Both: net = gross - (advance + pf + pt).
func CalculateTotals(emp EmployeeFigures, entryTotal decimal.Decimal, entryCount int) Result {
	deductions := Deductions(emp)

	var gross decimal.Decimal
	if emp.EmployeeType == TypeChutak {
		gross = emp.Salary.Add(entryTotal)
	} else {
		gross = emp.GrossSalary
		if gross.IsZero() {
			gross = emp.Salary
		}
	}

	return Result{
		GrossSalary: gross,
		NetSalary:   gross.Sub(deductions),
		Deductions:  deductions,
		EntryTotal:  entryTotal,
		EntryCount:  entryCount,
	}
}

// FilterMonth keeps entries dated inside the given calendar month (UTC).
func FilterMonth(entries []EntryFigures, month, year int) []EntryFigures {
	out := make([]EntryFigures, 0, len(entries))
	for _, e := range entries {
		d := e.Date.UTC()
		if int(d.Month()) == month && d.Year() == year {
			out = append(out, e)
		}
	}
	return out
}

func Apply(r Result, t Target) {
	t.SetWageFigures(r.GrossSalary, r.NetSalary)
}

// DailySalary returns quantity x price together with the monthly and yearly
// multiples stored alongside every entry.
func DailySalary(quantity int, price decimal.Decimal) (daily, monthly, yearly decimal.Decimal) {
	daily = price.Mul(decimal.NewFromInt(int64(quantity)))
	monthly = daily.Mul(decimal.NewFromInt(DaysPerMonth))
	yearly = daily.Mul(decimal.NewFromInt(DaysPerYear))
	return daily, monthly, yearly
}

// CategoryBreakdown groups entries by category code.
type CategoryBreakdown struct {
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	EntryCount  int             `json:"entryCount"`
	TotalSalary decimal.Decimal `json:"totalSalary"`
}

func ByCategory(entries []EntryFigures) []CategoryBreakdown {
	idx := make(map[string]int)
	out := make([]CategoryBreakdown, 0)
	for _, e := range entries {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryBreakdown{Category: e.Category, TotalSalary: decimal.Zero})
		}
		out[i].Quantity += e.Quantity
		out[i].EntryCount++
		out[i].TotalSalary = out[i].TotalSalary.Add(e.DailySalary)
	}
	return out
}
