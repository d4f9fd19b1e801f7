package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Empty string", "", decimal.Zero, false},
		{"Simple decimal", "123.45", decimal.RequireFromString("123.45"), false},
		{"Negative decimal", "-123.45", decimal.RequireFromString("-123.45"), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"Comma decimal separator", "123,45", decimal.RequireFromString("123.45"), false},
		{"Comma thousands separator", "1,234.56", decimal.RequireFromString("1234.56"), false},
		{"Comma thousands without cents", "12,500", decimal.NewFromInt(12500), false},
		{"Apostrophe thousands separator", "1'234.56", decimal.RequireFromString("1234.56"), false},
		{"European format", "1.234,56", decimal.RequireFromString("1234.56"), false},
		{"Dollar sign", "$500", decimal.NewFromInt(500), false},
		{"Dollar sign with thousands", "$1,250.00", decimal.NewFromInt(1250), false},
		{"Currency code", "USD 75.10", decimal.RequireFromString("75.10"), false},
		{"Trailing period", "$300.", decimal.NewFromInt(300), false},
		{"Surrounding spaces", "  123.45  ", decimal.RequireFromString("123.45"), false},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(result), "expected %s but got %s", tc.expected, result)
		})
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected decimal.Decimal
		ok       bool
	}{
		{"plain dollars", "$500", decimal.NewFromInt(500), true},
		{"amount with note", "$2,300 (charged off)", decimal.NewFromInt(2300), true},
		{"leading words", "approx. $1,050.25 remaining", decimal.RequireFromString("1050.25"), true},
		{"no digits", "unknown", decimal.Zero, false},
		{"empty", "", decimal.Zero, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractAmount(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.True(t, tc.expected.Equal(got), "expected %s but got %s", tc.expected, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
	assert.Equal(t, "$1234.50", FormatAmount(amount, "usd"))
	assert.Equal(t, "€1234.50", FormatAmount(amount, "EUR"))
	assert.Equal(t, "CAD 1234.50", FormatAmount(amount, "CAD"))
}
