// Package normalizer turns raw table rows into typed, direction-signed
// records.
package normalizer

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/tdstatement/internal/dateutils"
	"fjacquet/tdstatement/internal/description"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/parsererror"
	"fjacquet/tdstatement/internal/schema"
)

// Normalizer finalizes the rows of one document type.
type Normalizer struct {
	parser.BaseParser
	registry     *schema.Registry
	descriptions *description.Parser
}

// New creates a Normalizer for registry.
func New(registry *schema.Registry, logger logging.Logger) *Normalizer {
	return &Normalizer{
		BaseParser:   parser.NewBaseParser(logger),
		registry:     registry,
		descriptions: description.New(registry.Descriptions, logger),
	}
}

// NormalizeAll normalizes every table of activity. Rows whose direction
// cannot be resolved are reported through the returned error; all other rows
// are still normalized.
func (n *Normalizer) NormalizeAll(activity models.ActivityTables, md models.Metadata) (map[string][]models.Record, error) {
	out := make(map[string][]models.Record, len(activity))
	var errs []error

	for _, name := range n.tableOrder(activity) {
		table, ok := n.registry.Table(name)
		if !ok {
			n.GetLogger().Warn("Skipping rows of unknown table",
				logging.Field{Key: logging.FieldTable, Value: name})
			continue
		}

		rows := activity[name]
		records := make([]models.Record, 0, len(rows))
		for i, raw := range rows {
			rec, err := n.Normalize(table, raw, md, i+1)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			records = append(records, rec)
		}
		out[name] = records
	}

	return out, errors.Join(errs...)
}

// tableOrder lists the tables of activity in registry declaration order.
func (n *Normalizer) tableOrder(activity models.ActivityTables) []string {
	names := make([]string, 0, len(activity))
	seen := make(map[string]bool, len(activity))
	for _, name := range n.registry.TableNames() {
		if _, ok := activity[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range activity {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Normalize produces the record for one raw row of table. row is the 1-based
// position of the row in its table and only used for error reporting.
func (n *Normalizer) Normalize(table *schema.TableSchema, raw models.RawRecord, md models.Metadata, row int) (models.Record, error) {
	rec := make(models.Record, len(raw)+2)

	var pd *models.ParsedDescription
	if desc, ok := raw[models.FieldDescription]; ok && desc != "" {
		pd = n.descriptions.Parse(desc)
	}

	var period *dateutils.Period
	if p, ok := md.Period(); ok {
		period = &p
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, field := range keys {
		if table.Direction == models.Mixed && field == table.CreditFlagField {
			continue
		}
		value := raw[field]
		if strings.TrimSpace(value) == "" {
			continue
		}

		transform := n.registry.Fields.For(field)
		v, err := transform.Apply(value, period)
		if err != nil {
			perr := &parsererror.ParseError{Parser: n.registry.Type, Field: field, Value: value, Err: err}
			n.GetLogger().Debug("Dropping field",
				logging.Field{Key: logging.FieldTable, Value: table.Name},
				logging.Field{Key: logging.FieldField, Value: field},
				logging.Field{Key: logging.FieldError, Value: perr.Error()})
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		rec[field] = v
	}

	direction, err := resolveDirection(table, raw, row)
	if err != nil {
		return nil, err
	}

	if direction.IsFixed() {
		rec[models.FieldDirection] = direction
		if amount, ok := rec[models.FieldAmount].(decimal.Decimal); ok {
			rec[models.FieldAmount] = direction.Apply(amount)
		}
	}

	if pd != nil {
		if pd.Direction == models.Inherit && direction.IsFixed() {
			pd.Direction = direction
		}
		rec[models.FieldParsedDescription] = pd
	}

	return rec, nil
}

// resolveDirection returns the direction of a row. Summary tables resolve to
// models.None.
func resolveDirection(table *schema.TableSchema, raw models.RawRecord, row int) (models.Direction, error) {
	switch table.Direction {
	case models.Debit, models.Credit, models.None:
		return table.Direction, nil
	case models.Mixed:
		missing := &parsererror.DirectionError{Table: table.Name, Field: table.CreditFlagField, Row: row}
		if table.CreditFlagField == "" {
			return models.Inherit, missing
		}
		if flag := strings.TrimSpace(raw[table.CreditFlagField]); flag != "" {
			d, err := models.ParseDirection(flag)
			if err != nil || !d.IsFixed() {
				return models.Inherit, missing
			}
			return d, nil
		}
		if table.UnflaggedDirection.IsFixed() {
			return table.UnflaggedDirection, nil
		}
		return models.Inherit, missing
	}
	return models.Inherit, &parsererror.DirectionError{Table: table.Name, Row: row}
}
