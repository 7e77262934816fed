// Package statementparser turns statement files into parsed documents. It
// classifies the first page, runs the table state machine over every line,
// extracts metadata from page one and normalizes the rows.
package statementparser

import (
	"context"
	"fmt"
	"path/filepath"

	"fjacquet/tdstatement/internal/classifier"
	"fjacquet/tdstatement/internal/fileutils"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/metadata"
	"fjacquet/tdstatement/internal/models"
	"fjacquet/tdstatement/internal/normalizer"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/parsererror"
	"fjacquet/tdstatement/internal/pdfparser"
	"fjacquet/tdstatement/internal/schema"
	"fjacquet/tdstatement/internal/tables"
	"fjacquet/tdstatement/internal/textutils"
)

// Hasher computes the content digest used as document identity.
type Hasher func(path string) (string, error)

// pipeline holds the per-registry components. They are built once and only
// read afterwards, so documents can be parsed concurrently.
type pipeline struct {
	tables     *tables.Extractor
	metadata   *metadata.Extractor
	normalizer *normalizer.Normalizer
}

// Parser implements parser.DocumentParser.
type Parser struct {
	parser.BaseParser
	classifier *classifier.Classifier
	pipelines  map[string]*pipeline
	extractor  pdfparser.PDFExtractor
	hasher     Hasher
}

var _ parser.DocumentParser = (*Parser)(nil)

// New creates a parser over the given registry set. A nil set uses the
// built-in registries and a nil extractor reads files with the auto engine.
func New(set *schema.Set, extractor pdfparser.PDFExtractor, logger logging.Logger) *Parser {
	base := parser.NewBaseParser(logger)
	logger = base.GetLogger()

	if set == nil {
		set = schema.Default()
	}
	if extractor == nil {
		extractor, _ = pdfparser.New(pdfparser.EngineAuto, "", logger)
	}

	p := &Parser{
		BaseParser: base,
		classifier: classifier.New(set.Registries, logger),
		pipelines:  make(map[string]*pipeline, len(set.Registries)),
		extractor:  extractor,
		hasher:     fileutils.HashFile,
	}
	for _, reg := range set.Registries {
		p.pipelines[reg.Type] = &pipeline{
			tables:     tables.New(reg.Tables, set.Cutoff, logger),
			metadata:   metadata.New(reg.Metadata, logger),
			normalizer: normalizer.New(reg, logger),
		}
	}
	return p
}

// SetHasher replaces the content hashing collaborator.
func (p *Parser) SetHasher(h Hasher) {
	if h != nil {
		p.hasher = h
	}
}

// Classify returns the registry whose marker appears on the first page.
func (p *Parser) Classify(pages []string) (*schema.Registry, error) {
	if len(pages) == 0 {
		return nil, parsererror.ErrNoPages
	}
	return p.classifier.Classify(pages[0])
}

// ClassifyFile extracts the file and classifies its first page.
func (p *Parser) ClassifyFile(ctx context.Context, path string) (*schema.Registry, error) {
	pages, err := p.extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, err
	}
	reg, err := p.Classify(pages)
	return reg, withFilePath(err, path)
}

// ParsePages parses text that was already extracted, one string per page.
func (p *Parser) ParsePages(pages []string, identity models.Identity) (*models.Document, error) {
	return p.parse(pages, identity, identity.Filename)
}

func (p *Parser) parse(pages []string, identity models.Identity, path string) (*models.Document, error) {
	reg, err := p.Classify(pages)
	if err != nil {
		return nil, withFilePath(err, path)
	}
	pl := p.pipelines[reg.Type]

	logger := p.GetLogger().WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldDocumentType, Value: reg.Type})

	var lines []string
	for _, page := range pages {
		lines = append(lines, textutils.SplitLines(page)...)
	}

	md := pl.metadata.Extract(pages[0])
	raw := pl.tables.Extract(lines)
	logger.Debug("Extracted activity tables",
		logging.Field{Key: logging.FieldPages, Value: len(pages)},
		logging.Field{Key: logging.FieldCounts, Value: raw.Counts()})

	activity, err := pl.normalizer.NormalizeAll(raw, md)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize '%s': %w", path, err)
	}

	if identity.PageCount == 0 {
		identity.PageCount = len(pages)
	}
	return &models.Document{
		Identity:     identity,
		DocumentType: reg.Type,
		Metadata:     md,
		Activity:     activity,
	}, nil
}

// ParseFile extracts, hashes and parses one statement file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*models.Document, error) {
	pages, err := p.extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, err
	}

	hash, err := p.hasher(path)
	if err != nil {
		return nil, fmt.Errorf("failed to hash '%s': %w", path, err)
	}

	return p.parse(pages, models.Identity{
		Hash:      hash,
		Filename:  filepath.Base(path),
		PageCount: len(pages),
	}, path)
}

func withFilePath(err error, path string) error {
	if e, ok := err.(*parsererror.UnrecognizedDocumentTypeError); ok && e.FilePath == "" {
		e.FilePath = path
	}
	return err
}
