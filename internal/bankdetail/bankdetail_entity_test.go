package bankdetail_test

import (
	"testing"

	"go-diamond-payroll/internal/bankdetail"

	"github.com/stretchr/testify/assert"
)

func TestClampDebit(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
	}{
		{"covered", "1000", "830", "170"},
		{"exact", "830", "830", "0"},
		{"overdrawn clamps to zero", "500", "830", "0"},
		{"zero debit", "500", "0", "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bankdetail.ClampDebit(dec(tt.balance), dec(tt.amount))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestBankDetail_DebitCredit(t *testing.T) {
	b := &bankdetail.BankDetail{Amount: dec("100")}

	b.Debit(dec("250"))
	assert.True(t, b.Amount.IsZero())

	b.Credit(dec("40.25"))
	assert.True(t, dec("40.25").Equal(b.Amount))
}
