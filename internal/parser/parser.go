package parser

import (
	"context"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
)

// LoggerConfigurable is implemented by components whose logger can be
// replaced after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// PageParser parses statement text that has already been extracted, one
// string per page.
type PageParser interface {
	ParsePages(pages []string, identity models.Identity) (*models.Document, error)
}

// DocumentParser parses a statement file, extracting its text first.
type DocumentParser interface {
	PageParser
	ParseFile(ctx context.Context, path string) (*models.Document, error)
}
