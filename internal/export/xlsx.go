package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
)

const metadataSheet = "Metadata"

// WriteXLSX writes a workbook with a metadata sheet and one sheet per
// activity table. Rows of several documents share the table sheets and are
// told apart by the filename column.
func (e *Exporter) WriteXLSX(w io.Writer, docs ...*models.Document) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", metadataSheet); err != nil {
		return err
	}
	if err := e.writeMetadata(f, docs); err != nil {
		return err
	}

	tables := make(map[string][]models.Record)
	owners := make(map[string][]string)
	for _, doc := range docs {
		for _, name := range tableNames(doc) {
			for _, rec := range doc.Activity[name] {
				tables[name] = append(tables[name], rec)
				owners[name] = append(owners[name], doc.Identity.Filename)
			}
		}
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := e.writeTable(f, name, tables[name], owners[name]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeMetadata(f *excelize.File, docs []*models.Document) error {
	if err := f.SetSheetRow(metadataSheet, "A1", &[]any{"filename", "document_type", "key", "value"}); err != nil {
		return err
	}
	row := 2
	for _, doc := range docs {
		keys := make([]string, 0, len(doc.Metadata))
		for k := range doc.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []any{doc.Identity.Filename, doc.DocumentType, k, e.cell(doc.Metadata[k])}
			if err := f.SetSheetRow(metadataSheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (e *Exporter) writeTable(f *excelize.File, name string, records []models.Record, owners []string) error {
	sheet := sheetName(name)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
	}

	cols := columns(records)
	header := make([]any, 0, len(cols)+1)
	header = append(header, "filename")
	for _, c := range cols {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		values := make([]any, 0, len(cols)+1)
		values = append(values, owners[i])
		for _, c := range cols {
			values = append(values, e.cell(rec[c]))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	e.logger.Debug("Wrote worksheet",
		logging.Field{Key: logging.FieldTable, Value: name},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}

// cell keeps amounts numeric so spreadsheets can sum them.
func (e *Exporter) cell(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case int:
		return x
	default:
		return e.text(v)
	}
}
