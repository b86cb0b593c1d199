// Package currencyutils provides common currency parsing and formatting
// operations used throughout the application.
package currencyutils

import (
	"regexp"
	"strings"

	"fjacquet/budget-chat/internal/budgeterror"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`^[€$£¥]`)

// ParseAmount parses a string representation of an amount into a decimal
// value rounded to 2 decimal places. It accepts an optional leading currency
// symbol, thousands separators and surrounding whitespace, e.g. "$1,234.5",
// "  99.9 ", "1'250".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, &budgeterror.InvalidAmountError{Value: amountStr}
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, &budgeterror.InvalidAmountError{Value: amountStr, Err: err}
	}

	return amount.Round(2), nil
}

// StandardizeAmount converts currency text to a form accepted by
// decimal.NewFromString. It strips a leading currency symbol, whitespace and
// thousands separators (commas and apostrophes).
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")
	return strings.TrimSpace(amountStr)
}

// FormatUSD formats a decimal amount for display with a dollar sign,
// thousands separators and two decimal places, e.g. "$1,234.50".
// Negative amounts render as "-$12.00".
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	formatted := "$" + b.String() + fracPart
	if amount.IsNegative() {
		return "-" + formatted
	}
	return formatted
}
