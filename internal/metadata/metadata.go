// Package metadata extracts header-level facts from the first page of a
// statement.
package metadata

import (
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/parsererror"
	"fjacquet/tdstatement/internal/schema"
)

// Extractor applies an ordered list of metadata entries.
type Extractor struct {
	parser.BaseParser
	entries []schema.MetadataEntry
}

// New creates an Extractor over entries.
func New(entries []schema.MetadataEntry, logger logging.Logger) *Extractor {
	return &Extractor{
		BaseParser: parser.NewBaseParser(logger),
		entries:    entries,
	}
}

// Extract runs every entry against page. Entries that do not match add
// nothing; values whose transform fails are left out. A key set by an
// earlier entry is never replaced by a later one.
func (e *Extractor) Extract(page string) models.Metadata {
	md := make(models.Metadata)

	for _, entry := range e.entries {
		groups, ok := schema.NamedGroups(entry.Pattern, page)
		if !ok {
			continue
		}

		for _, name := range entry.Pattern.SubexpNames() {
			raw, ok := groups[name]
			if !ok {
				continue
			}
			if _, exists := md[name]; exists {
				continue
			}

			value, err := entry.Transform.Apply(raw, nil)
			if err != nil {
				e.GetLogger().Debug("Skipping metadata value",
					logging.Field{Key: logging.FieldError, Value: (&parsererror.ParseError{
						Parser: "metadata", Field: name, Value: raw, Err: err,
					}).Error()},
					logging.Field{Key: logging.FieldField, Value: name})
				continue
			}
			md[name] = value
		}
	}

	return md
}
