package utils

import "github.com/shopspring/decimal"

// Money converts an API amount into an exact decimal. NewFromFloat keeps the
// shortest representation, so 0.1 stays 0.1 instead of its binary expansion.
func Money(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount)
}

// FormatMoney renders an amount with two decimals, rounding half away from zero.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatAmount(amount float64) string {
	return FormatMoney(Money(amount))
}
