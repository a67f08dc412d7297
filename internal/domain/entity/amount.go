package entity

import "github.com/shopspring/decimal"

const (
	// AmountScale is the number of decimal places stored for money.
	AmountScale = 2
	// AmountIntegerDigits is the number of digits allowed before the decimal point.
	AmountIntegerDigits = 13
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// FitsAmountColumn reports whether amount is stored exactly by a
// decimal(15,2) column: at most two decimal places and thirteen integer digits.
func FitsAmountColumn(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(AmountScale)) && amount.Abs().LessThan(amountLimit)
}
