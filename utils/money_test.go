package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{5, "5.00"},
		{2.5, "2.50"},
		{0.1, "0.10"},
		{1.005, "1.01"},
		{1234.567, "1234.57"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount), "amount %v", tt.amount)
	}
}

func TestMoney_SumsWithoutDrift(t *testing.T) {
	total := decimal.Zero
	for i := 0; i < 3; i++ {
		total = total.Add(Money(0.1))
	}

	assert.True(t, total.Equal(decimal.RequireFromString("0.3")))
	assert.Equal(t, "0.30", FormatMoney(total))
}
