package models

import (
	"github.com/shopspring/decimal"

	"fjacquet/tdstatement/internal/dateutils"
)

// Metadata holds header-level facts of a statement. Values are Date,
// decimal.Decimal, int or string.
type Metadata map[string]any

// Date returns a date-valued entry.
func (m Metadata) Date(key string) (Date, bool) {
	d, ok := m[key].(Date)
	return d, ok
}

// Decimal returns a decimal-valued entry.
func (m Metadata) Decimal(key string) (decimal.Decimal, bool) {
	d, ok := m[key].(decimal.Decimal)
	return d, ok
}

// Period returns the statement period when both bounds were extracted.
func (m Metadata) Period() (dateutils.Period, bool) {
	start, ok := m.Date(MetaPeriodStart)
	if !ok {
		return dateutils.Period{}, false
	}
	end, ok := m.Date(MetaPeriodEnd)
	if !ok {
		return dateutils.Period{}, false
	}
	return dateutils.Period{Start: start.Time, End: end.Time}, true
}

// Identity identifies the source document.
type Identity struct {
	Hash      string `json:"hash"`
	Filename  string `json:"filename"`
	PageCount int    `json:"page_count"`
}

// Document is the result of parsing one statement. It is not modified after
// the orchestrator returns it.
type Document struct {
	Identity     Identity            `json:"identity"`
	DocumentType string              `json:"document_type"`
	Metadata     Metadata            `json:"metadata"`
	Activity     map[string][]Record `json:"activity"`
}

// Counts returns the number of records per non-empty activity table.
func (d *Document) Counts() map[string]int {
	counts := make(map[string]int, len(d.Activity))
	for name, records := range d.Activity {
		if len(records) > 0 {
			counts[name] = len(records)
		}
	}
	return counts
}
