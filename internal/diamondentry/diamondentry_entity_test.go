package diamondentry_test

import (
	"testing"

	"go-diamond-payroll/internal/diamondentry"

	"github.com/stretchr/testify/assert"
)

func TestDiamondEntry_ApplyPrice(t *testing.T) {
	e := &diamondentry.DiamondEntry{Date: day("2024-03-01"), Category: "4P", Quantity: 12}
	e.ApplyPrice(dec("2.25"))

	assert.True(t, dec("27").Equal(e.DailySalary))
	assert.True(t, dec("810").Equal(e.MonthlySalary))
	assert.True(t, dec("9855").Equal(e.YearlySalary))

	f := e.Figures()
	assert.Equal(t, "4P", f.Category)
	assert.Equal(t, 12, f.Quantity)
	assert.True(t, e.DailySalary.Equal(f.DailySalary))
}
