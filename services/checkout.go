package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentTolerance absorbs sub-cent rounding when comparing the amount paid
// with the total due.
var PaymentTolerance = decimal.New(1, -2)

// ValidatePayment parses the raw payment field and returns the change due.
// A payment is accepted when it falls short of total by less than
// PaymentTolerance; the change is never negative.
func ValidatePayment(raw string, total decimal.Decimal) (decimal.Decimal, error) {
	paid, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidPayment
	}
	if paid.Add(PaymentTolerance).LessThanOrEqual(total) {
		return decimal.Zero, ErrInvalidPayment
	}

	change := paid.Sub(total)
	if change.IsNegative() {
		change = decimal.Zero
	}
	return change, nil
}
