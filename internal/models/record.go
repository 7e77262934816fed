package models

import (
	"github.com/shopspring/decimal"
)

// RawRecord holds the named groups captured by a table row pattern. A key is
// present only when its group participated in the match.
type RawRecord map[string]string

// Clone returns a copy that can be mutated independently.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ActivityTables maps a table name to its rows in document order.
type ActivityTables map[string][]RawRecord

// Last returns the most recent row of the table, or nil.
func (a ActivityTables) Last(table string) RawRecord {
	rows := a[table]
	if len(rows) == 0 {
		return nil
	}
	return rows[len(rows)-1]
}

// Counts returns the number of rows per non-empty table.
func (a ActivityTables) Counts() map[string]int {
	counts := make(map[string]int, len(a))
	for name, rows := range a {
		if len(rows) > 0 {
			counts[name] = len(rows)
		}
	}
	return counts
}

// Record is a normalized transaction or summary row. Values are strings,
// decimal.Decimal, Date, int, Direction or *ParsedDescription.
type Record map[string]any

// Amount returns the signed amount of the record.
func (r Record) Amount() (decimal.Decimal, bool) {
	v, ok := r[FieldAmount].(decimal.Decimal)
	return v, ok
}

// Direction returns the resolved direction of the record.
func (r Record) Direction() Direction {
	d, _ := r[FieldDirection].(Direction)
	return d
}

// Date returns a date-valued field.
func (r Record) Date(field string) (Date, bool) {
	d, ok := r[field].(Date)
	return d, ok
}

// String returns a string-valued field.
func (r Record) String(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// ParsedDescription returns the parsed description attached to the record.
func (r Record) ParsedDescription() *ParsedDescription {
	pd, _ := r[FieldParsedDescription].(*ParsedDescription)
	return pd
}
