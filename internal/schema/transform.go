package schema

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/tdstatement/internal/currencyutils"
	"fjacquet/tdstatement/internal/dateutils"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/textutils"
)

// Transform converts a captured string into a typed value.
type Transform int

const (
	// Clean trims and collapses inner whitespace.
	Clean Transform = iota
	// Trim only strips surrounding whitespace.
	Trim
	// Decimal parses an amount with optional thousands separators.
	Decimal
	// Int parses an integer with optional thousands separators.
	Int
	// Date parses a complete, loosely formatted date.
	Date
	// StatementDate resolves a month/day line item against the statement
	// period.
	StatementDate
)

var transformNames = map[Transform]string{
	Clean:         "clean",
	Trim:          "trim",
	Decimal:       "decimal",
	Int:           "int",
	Date:          "date",
	StatementDate: "statement_date",
}

func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return fmt.Sprintf("transform(%d)", int(t))
}

// Apply converts value. Statement dates need the statement period; without
// one they fail like any other unparseable value.
func (t Transform) Apply(value string, period *dateutils.Period) (any, error) {
	switch t {
	case Clean:
		return textutils.Clean(value), nil
	case Trim:
		return textutils.Trim(value), nil
	case Decimal:
		return currencyutils.ParseAmount(value)
	case Int:
		n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(value), ",", ""))
		if err != nil {
			return nil, fmt.Errorf("failed to parse integer %q: %w", value, err)
		}
		return n, nil
	case Date:
		d, _, err := dateutils.ParseDate(value)
		if err != nil {
			return nil, err
		}
		return models.NewDate(d), nil
	case StatementDate:
		if period == nil {
			return nil, fmt.Errorf("no statement period to resolve %q", value)
		}
		d, ok := period.Resolve(value)
		if !ok {
			return nil, fmt.Errorf("unable to resolve %q within %s", value, period)
		}
		return models.NewDate(d), nil
	}
	return nil, fmt.Errorf("unknown transform %s", t)
}

// FieldTransforms maps record fields to transforms. Fields not listed use
// Default.
type FieldTransforms struct {
	ByName  map[string]Transform
	Default Transform
}

// For returns the transform declared for field.
func (f FieldTransforms) For(field string) Transform {
	if t, ok := f.ByName[field]; ok {
		return t
	}
	return f.Default
}
