package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction as increasing (credit) or decreasing
// (debit) the account balance.
type Direction string

// IsFixed reports whether the direction can be applied to a row without
// looking at the row itself.
func (d Direction) IsFixed() bool {
	return d == Debit || d == Credit
}

// Apply signs an unsigned amount: debits become non-positive, credits
// non-negative. Other directions return the amount untouched.
func (d Direction) Apply(amount decimal.Decimal) decimal.Decimal {
	switch d {
	case Debit:
		return amount.Abs().Neg()
	case Credit:
		return amount.Abs()
	default:
		return amount
	}
}

// ParseDirection converts a textual direction such as "debit" or "CR".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit", "dr", "dbit":
		return Debit, nil
	case "credit", "cr", "crdt":
		return Credit, nil
	case "mixed":
		return Mixed, nil
	case "none":
		return None, nil
	}
	return Inherit, fmt.Errorf("unknown direction %q", s)
}
