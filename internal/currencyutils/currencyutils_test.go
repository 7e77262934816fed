package currencyutils

import (
	"testing"

	"fjacquet/tdstatement/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	originalLogger := log
	defer func() {
		log = originalLogger
	}()

	customLogger := logging.NewMockLogger()
	SetLogger(customLogger)
	assert.Same(t, customLogger, log)

	SetLogger(nil)
	assert.Same(t, customLogger, log)

	_, err := ParseAmount("12.3.4")
	assert.Error(t, err)
	assert.True(t, customLogger.HasEntry("DEBUG", "Amount is not a decimal"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  decimal.Decimal
		hasError  bool
	}{
		{"Simple decimal", "123.45", decimal.RequireFromString("123.45"), false},
		{"Negative decimal", "-123.45", decimal.RequireFromString("-123.45"), false},
		{"Integer", "100", decimal.NewFromInt(100), false},
		{"Thousand separator", "1,234.56", decimal.RequireFromString("1234.56"), false},
		{"Dollar sign", "$1,234.56", decimal.RequireFromString("1234.56"), false},
		{"Negative dollar", "-$25.00", decimal.RequireFromString("-25"), false},
		{"Trailing minus", "25.00-", decimal.RequireFromString("-25"), false},
		{"Parentheses", "(25.00)", decimal.RequireFromString("-25"), false},
		{"With spaces", "  123.45  ", decimal.RequireFromString("123.45"), false},
		{"Percentage rate", "19.24", decimal.RequireFromString("19.24"), false},
		{"Empty string", "", decimal.Zero, true},
		{"Malformed decimal", "123.45.67", decimal.Zero, true},
		{"Non-numeric", "abc", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1,234.56", "1234.56"},
		{"$ 12.00", "12.00"},
		{"USD 12.00", "12.00"},
		{"(5.10)", "-5.10"},
		{"5.10-", "-5.10"},
		{"-5.10", "-5.10"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}
