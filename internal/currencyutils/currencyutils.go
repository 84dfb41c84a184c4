// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[€$£¥₹₣\s']`)

// ParseAmount parses a user-entered amount string into a decimal value.
// It tolerates currency symbols, thousand separators and both decimal
// separators: "1,234.56", "1'234.56", "$1234.56" and "1234,56" all parse.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount converts common amount string formats into one that
// decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// Comma as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}

// FormatAmount renders an amount with the configured currency symbol,
// e.g. "$1234.56".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return symbol + amount.StringFixed(2)
}

// FormatSigned renders an amount with a direction sign and the currency
// symbol: expenses as "-$50.00", income as "+$200.00".
func FormatSigned(amount decimal.Decimal, symbol string, isExpense bool) string {
	sign := "+"
	if isExpense {
		sign = "-"
	}
	return sign + FormatAmount(amount, symbol)
}
