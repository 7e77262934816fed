// Package currencyutils parses statement amounts into decimals.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/tdstatement/internal/logging"
)

var log logging.Logger = logging.NewLogrusAdapter("info", "json")

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var symbolsRe = regexp.MustCompile(`[$\s]|USD`)

// ParseAmount parses a statement amount into a decimal value.
// It handles formats like "1,234.56", "$1,234.56", "-25.00", "25.00-" and "(25.00)".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("failed to parse empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		log.Debug("Amount is not a decimal", logging.Field{Key: logging.FieldValue, Value: amountStr})
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts a statement amount string to a form accepted by
// decimal.NewFromString. Thousands separators and dollar signs are removed,
// trailing minus signs and accounting parentheses become a leading minus.
func StandardizeAmount(amountStr string) string {
	amountStr = symbolsRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, ",", "")

	negative := false
	if strings.HasPrefix(amountStr, "(") && strings.HasSuffix(amountStr, ")") {
		amountStr = amountStr[1 : len(amountStr)-1]
		negative = true
	}
	if strings.HasSuffix(amountStr, "-") {
		amountStr = strings.TrimSuffix(amountStr, "-")
		negative = true
	}
	if negative && !strings.HasPrefix(amountStr, "-") {
		amountStr = "-" + amountStr
	}

	return amountStr
}
