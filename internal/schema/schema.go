// Package schema declares how statements of each supported document type are
// read: which tables exist and how their rows look, which header facts are
// extracted and how free-text descriptions are decomposed.
//
// Everything in this package is configuration. Registries are built by
// constructor functions, never mutated after construction and passed
// explicitly to the components that read them.
package schema

import (
	"regexp"

	"fjacquet/tdstatement/internal/models"
)

// DefaultSkipLines is the number of lines consumed from a table name line
// when its column heading is confirmed on the next line.
const DefaultSkipLines = 2

// TableSchema describes one named table of a statement.
type TableSchema struct {
	Name string
	// NamePattern recognizes the line that opens the table.
	NamePattern *regexp.Regexp
	// HeaderPattern confirms the line following the name line. Optional.
	HeaderPattern *regexp.Regexp
	// RowPattern parses one data row through named groups.
	RowPattern *regexp.Regexp
	Direction  models.Direction
	// SkipLines overrides DefaultSkipLines when positive.
	SkipLines int
	// CreditFlagField names the row field carrying a credit indicator in
	// mixed tables. A non-empty value marks the row as a credit.
	CreditFlagField string
	// UnflaggedDirection applies to mixed rows without a credit indicator.
	UnflaggedDirection models.Direction
}

// Skip returns the effective number of lines to consume after a confirmed
// header.
func (t *TableSchema) Skip() int {
	if t.SkipLines > 0 {
		return t.SkipLines
	}
	return DefaultSkipLines
}

// ParseRow matches line against the row pattern. Only groups that took part
// in the match are present in the returned record.
func (t *TableSchema) ParseRow(line string) (models.RawRecord, bool) {
	groups, ok := NamedGroups(t.RowPattern, line)
	if !ok {
		return nil, false
	}
	return models.RawRecord(groups), true
}

// NamedGroups returns the named groups of the first match of re in s. Groups
// that did not participate in the match are omitted.
func NamedGroups(re *regexp.Regexp, s string) (map[string]string, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, false
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" || loc[2*i] < 0 {
			continue
		}
		groups[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return groups, true
}

// MetadataEntry extracts header facts from the first page. Every named group
// of Pattern is converted with Transform.
type MetadataEntry struct {
	Pattern   *regexp.Regexp
	Transform Transform
}

// DescriptionEntry classifies a transaction description. Entries are tried
// in declaration order and the first match wins.
type DescriptionEntry struct {
	Label     string
	Pattern   *regexp.Regexp
	Direction models.Direction
}

// DescriptionTable is the ordered description pattern list of a registry plus
// the merchant patterns tried against a matched authorization location.
type DescriptionTable struct {
	Entries   []DescriptionEntry
	Merchants []*regexp.Regexp
}

// Registry bundles everything needed to parse one document type.
type Registry struct {
	// Type is the stable identifier reported in parsed documents.
	Type string
	// Marker is the first-page phrase identifying the document type.
	Marker       string
	Tables       []*TableSchema
	Metadata     []MetadataEntry
	Descriptions DescriptionTable
	Fields       FieldTransforms
}

// Table returns the schema with the given name.
func (r *Registry) Table(name string) (*TableSchema, bool) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// TableNames lists table names in declaration order.
func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.Tables))
	for _, t := range r.Tables {
		names = append(names, t.Name)
	}
	return names
}
