// Package tables walks the line stream of a statement and collects the rows
// of every table it recognizes.
package tables

import (
	"strings"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/schema"
	"fjacquet/tdstatement/internal/textutils"
)

// Extractor is a single-pass state machine over the lines of one document.
// Its only state while running is the active table schema.
type Extractor struct {
	parser.BaseParser
	tables []*schema.TableSchema
	cutoff schema.CutoffSet
}

// New creates an Extractor for tables, detected in declaration order.
func New(tables []*schema.TableSchema, cutoff schema.CutoffSet, logger logging.Logger) *Extractor {
	return &Extractor{
		BaseParser: parser.NewBaseParser(logger),
		tables:     tables,
		cutoff:     cutoff,
	}
}

// Extract returns the raw rows of every table found in lines, in document
// order. Tables that produced no row are absent.
//
// For each line:
//   - a blank line ends the active table;
//   - while a table is active, a cutoff line ends it and is discarded, a
//     line matching the row pattern appends a row and any other line is
//     appended to the description of the previous row;
//   - every line is then tested as a table name. On a match the table
//     becomes active and, when the next line is its column heading, the
//     cursor jumps Skip() lines ahead.
func (e *Extractor) Extract(lines []string) models.ActivityTables {
	data := make(models.ActivityTables)
	var active *schema.TableSchema

	for n := 0; n < len(lines); {
		line := lines[n]

		if textutils.IsBlank(line) {
			active = nil
			n++
			continue
		}

		if active != nil {
			if e.cutoff.Matches(line) {
				active = nil
				n++
				continue
			}
			if rec, ok := active.ParseRow(line); ok {
				data[active.Name] = append(data[active.Name], rec)
			} else {
				e.continueRow(data, active, line, n)
			}
		}

		if found := e.detect(line); found != nil {
			active = found
			if n+1 < len(lines) && found.HeaderPattern != nil && found.HeaderPattern.MatchString(lines[n+1]) {
				n += found.Skip()
				continue
			}
		}

		n++
	}

	return data
}

// detect returns the first table whose name pattern matches line.
func (e *Extractor) detect(line string) *schema.TableSchema {
	for _, t := range e.tables {
		if t.NamePattern.MatchString(line) {
			return t
		}
	}
	return nil
}

// continueRow appends line to the description of the last row of the active
// table.
func (e *Extractor) continueRow(data models.ActivityTables, active *schema.TableSchema, line string, n int) {
	last := data.Last(active.Name)
	if last == nil {
		e.GetLogger().Warn("Unexpected line occurrence occurred with no previous record.",
			logging.Field{Key: logging.FieldTable, Value: active.Name},
			logging.Field{Key: logging.FieldLine, Value: n + 1})
		return
	}

	desc, ok := last[models.FieldDescription]
	if !ok {
		e.GetLogger().Debug("Dropping continuation line for row without description",
			logging.Field{Key: logging.FieldTable, Value: active.Name},
			logging.Field{Key: logging.FieldLine, Value: n + 1})
		return
	}

	last[models.FieldDescription] = desc + "\n" + strings.TrimSpace(line)
}
