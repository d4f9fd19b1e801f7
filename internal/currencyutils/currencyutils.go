// Package currencyutils provides amount parsing and formatting for the dollar
// figures that appear in credit analysis details ("$1,250.00", "1 250,00 €").
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	symbolPattern = regexp.MustCompile(`[€$£¥\s]|USD|EUR|GBP|CHF`)
	amountPattern = regexp.MustCompile(`-?[€$£¥]?\s?\d[\d,.']*`)
)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1234.56", "1234,56" and
// strips currency symbols.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts currency string formats into one decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolPattern.ReplaceAllString(amountStr, "")
	amountStr = strings.TrimRight(amountStr, ".,")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			// decimal comma (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// apostrophe thousands separator (1'234.56)
	return strings.ReplaceAll(amountStr, "'", "")
}

// ExtractAmount finds the first amount-looking token in free text such as
// "$2,300 (charged off)" and parses it. ok is false when nothing parses.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	token := amountPattern.FindString(text)
	if token == "" {
		return decimal.Zero, false
	}
	amount, err := ParseAmount(token)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatAmount formats an amount with two decimals and a currency symbol,
// e.g. "$1234.56". An empty currency yields the bare number.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)

	switch strings.ToUpper(currency) {
	case "":
		return formatted
	case "USD":
		return "$" + formatted
	case "EUR":
		return "€" + formatted
	case "GBP":
		return "£" + formatted
	default:
		return currency + " " + formatted
	}
}
