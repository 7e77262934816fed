// Package container provides dependency injection for the tdstatement
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/tdstatement/internal/batch"
	"fjacquet/tdstatement/internal/config"
	"fjacquet/tdstatement/internal/export"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/pdfparser"
	"fjacquet/tdstatement/internal/schema"
	"fjacquet/tdstatement/internal/statementparser"
)

// Option customizes container construction, mostly for tests.
type Option func(*options)

type options struct {
	logger    logging.Logger
	extractor pdfparser.PDFExtractor
	set       *schema.Set
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExtractor replaces the configured text extraction engine.
func WithExtractor(extractor pdfparser.PDFExtractor) Option {
	return func(o *options) { o.extractor = extractor }
}

// WithSchemas replaces the built-in registries.
func WithSchemas(set *schema.Set) Option {
	return func(o *options) { o.set = set }
}

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	schemas   *schema.Set
	extractor pdfparser.PDFExtractor
	parser    *statementparser.Parser
	processor *batch.Processor
	exporter  *export.Exporter
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.NewLogger(cfg)
	}

	set := o.set
	if set == nil {
		set = schema.Default()
	}

	extractor := o.extractor
	if extractor == nil {
		var err error
		extractor, err = pdfparser.New(cfg.Extraction.Engine, cfg.Extraction.PdftotextPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create extractor: %w", err)
		}
	}

	c := &Container{
		logger:    logger,
		config:    cfg,
		schemas:   set,
		extractor: extractor,
		parser:    statementparser.New(set, extractor, logger),
		processor: batch.NewProcessor(logger, cfg.Processing.Workers),
		exporter: export.New(export.Options{
			Delimiter:  cfg.Delimiter(),
			DateFormat: cfg.Export.DateFormat,
		}, logger),
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldEngine, Value: cfg.Extraction.Engine},
		logging.Field{Key: logging.FieldWorkers, Value: cfg.Processing.Workers},
		logging.Field{Key: logging.FieldCount, Value: len(set.Registries)})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetSchemas returns the registries documents are classified against.
func (c *Container) GetSchemas() *schema.Set {
	return c.schemas
}

// GetExtractor returns the text extraction collaborator.
func (c *Container) GetExtractor() pdfparser.PDFExtractor {
	return c.extractor
}

// GetParser returns the statement parser.
func (c *Container) GetParser() *statementparser.Parser {
	return c.parser
}

// GetProcessor returns the per-document worker pool.
func (c *Container) GetProcessor() *batch.Processor {
	return c.processor
}

// GetExporter returns the output encoder.
func (c *Container) GetExporter() *export.Exporter {
	return c.exporter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
