package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/tdstatement/internal/models"
)

// dateFields lists the record fields that hold the transaction date, by
// preference.
var dateFields = []string{"posting_date", "post_date", "activity_date", "check_date"}

// Row is the flat CSV view of one normalized record.
type Row struct {
	Filename        string `csv:"filename"`
	DocumentType    string `csv:"document_type"`
	Table           string `csv:"table"`
	Date            string `csv:"date"`
	Description     string `csv:"description"`
	Amount          string `csv:"amount"`
	Direction       string `csv:"direction"`
	Label           string `csv:"label"`
	TransactionNote string `csv:"transaction_note"`
	ReferenceNumber string `csv:"reference_number"`
	SerialNumber    string `csv:"serial_number"`
	Key             string `csv:"key"`
	Value           string `csv:"value"`
}

// Rows flattens the activity of docs in table name order.
func (e *Exporter) Rows(docs ...*models.Document) []Row {
	var rows []Row
	for _, doc := range docs {
		for _, table := range tableNames(doc) {
			for _, rec := range doc.Activity[table] {
				rows = append(rows, e.row(doc, table, rec))
			}
		}
	}
	return rows
}

func (e *Exporter) row(doc *models.Document, table string, rec models.Record) Row {
	r := Row{
		Filename:        doc.Identity.Filename,
		DocumentType:    doc.DocumentType,
		Table:           table,
		Description:     e.text(rec[models.FieldDescription]),
		Amount:          e.text(rec[models.FieldAmount]),
		Direction:       e.text(rec[models.FieldDirection]),
		ReferenceNumber: e.text(rec["reference_number"]),
		SerialNumber:    e.text(rec["serial_number"]),
		Key:             e.text(rec["key"]),
		Value:           e.text(rec["value"]),
	}
	for _, f := range dateFields {
		if d, ok := rec.Date(f); ok {
			r.Date = d.Format(e.opts.DateFormat)
			break
		}
	}
	if pd := rec.ParsedDescription(); pd != nil {
		r.Label = pd.Label
		r.TransactionNote = pd.TransactionNote
	}
	return r
}

// text renders a record or metadata value for tabular output.
func (e *Exporter) text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case models.Date:
		return x.Format(e.opts.DateFormat)
	case models.Direction:
		return string(x)
	case *models.ParsedDescription:
		if x == nil {
			return ""
		}
		return x.Label
	default:
		return fmt.Sprint(x)
	}
}

func tableNames(doc *models.Document) []string {
	names := make([]string, 0, len(doc.Activity))
	for name := range doc.Activity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// columns returns the union of record fields of a table, with the parsed
// description last.
func columns(records []models.Record) []string {
	seen := make(map[string]bool)
	var cols []string
	hasParsed := false
	for _, rec := range records {
		for k := range rec {
			if k == models.FieldParsedDescription {
				hasParsed = true
				continue
			}
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	if hasParsed {
		cols = append(cols, models.FieldParsedDescription)
	}
	return cols
}

// sheetName makes a table name acceptable as a worksheet name.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if len([]rune(name)) > 31 {
		name = string([]rune(name)[:31])
	}
	return name
}
