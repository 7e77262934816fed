// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/tdstatement/internal/logging"
)

// BaseParser provides common functionality for the components that turn
// statement text into documents. It implements the LoggerConfigurable
// interface.
//
// Components embed BaseParser to inherit the shared logger:
//
//	type Normalizer struct {
//		parser.BaseParser
//		// component-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a new BaseParser instance with the provided logger.
// If logger is nil, a default JSON logger writing to stderr is used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}

	return BaseParser{
		logger: logger,
	}
}

// SetLogger implements the LoggerConfigurable interface.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
