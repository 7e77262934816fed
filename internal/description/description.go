// Package description decomposes free-text transaction descriptions into a
// label, a direction and named sub-fields.
package description

import (
	"fjacquet/tdstatement/internal/dateutils"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/schema"
	"fjacquet/tdstatement/internal/textutils"
)

// Parser applies an ordered description table.
type Parser struct {
	parser.BaseParser
	table schema.DescriptionTable
}

// New creates a Parser over table.
func New(table schema.DescriptionTable, logger logging.Logger) *Parser {
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		table:      table,
	}
}

// Parse tries every entry in declaration order and decomposes desc with the
// first one that matches. It returns nil when nothing matches.
func (p *Parser) Parse(desc string) *models.ParsedDescription {
	for _, entry := range p.table.Entries {
		groups, ok := schema.NamedGroups(entry.Pattern, desc)
		if !ok {
			continue
		}
		return p.build(entry, groups)
	}
	return nil
}

func (p *Parser) build(entry schema.DescriptionEntry, groups map[string]string) *models.ParsedDescription {
	pd := &models.ParsedDescription{
		Label:     entry.Label,
		Direction: entry.Direction,
	}

	if info, ok := groups[models.SubAuthorizationInfo]; ok {
		delete(groups, models.SubAuthorizationInfo)
		if digits := textutils.RemoveSpaces(info); textutils.IsDigits(digits) {
			groups[models.SubAuthorizationPhone] = digits
		} else {
			groups[models.SubAuthorizationCity] = info
		}
	}

	if location := groups[models.SubAuthorizationLocation]; location != "" {
		for _, re := range p.table.Merchants {
			if merchant, ok := schema.NamedGroups(re, location); ok {
				for k, v := range merchant {
					groups[k] = v
				}
				break
			}
		}
	}

	for name, raw := range groups {
		if name == models.SubAuthorizationDate {
			d, err := dateutils.ParseAuthorizationDate(raw)
			if err != nil {
				p.GetLogger().WithError(err).Debug("Dropping authorization date",
					logging.Field{Key: logging.FieldLabel, Value: entry.Label},
					logging.Field{Key: logging.FieldValue, Value: raw})
				continue
			}
			date := models.NewDate(d)
			pd.AuthorizationDate = &date
			continue
		}

		value := textutils.Clean(raw)
		if value == "" {
			continue
		}
		if !pd.Set(name, value) {
			p.GetLogger().Debug("Ignoring unknown description sub-field",
				logging.Field{Key: logging.FieldLabel, Value: entry.Label},
				logging.Field{Key: logging.FieldField, Value: name})
		}
	}

	return pd
}
