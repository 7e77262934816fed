package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"fjacquet/tdstatement/internal/models"
)

// WriteCSV writes every record of docs as one CSV row with a header.
func (e *Exporter) WriteCSV(w io.Writer, docs ...*models.Document) error {
	rows := e.Rows(docs...)

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = e.opts.Delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// ReadCSV reads rows written by WriteCSV with the same delimiter.
func (e *Exporter) ReadCSV(r io.Reader) ([]Row, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = e.opts.Delimiter

	var rows []Row
	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		return nil, fmt.Errorf("error reading CSV data: %w", err)
	}
	return rows, nil
}
