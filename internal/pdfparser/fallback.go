package pdfparser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fjacquet/tdstatement/internal/logging"
)

// FallbackExtractor tries each extractor in turn and returns the first
// result that contains any text.
type FallbackExtractor struct {
	extractors []PDFExtractor
	logger     logging.Logger
}

// NewFallbackExtractor creates a chain over the given extractors.
func NewFallbackExtractor(logger logging.Logger, extractors ...PDFExtractor) *FallbackExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}
	return &FallbackExtractor{extractors: extractors, logger: logger}
}

// Name implements Named.
func (e *FallbackExtractor) Name() string {
	names := make([]string, 0, len(e.extractors))
	for _, x := range e.extractors {
		names = append(names, engineName(x))
	}
	return strings.Join(names, ",")
}

// ExtractPages implements PDFExtractor.
func (e *FallbackExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	var errs []error
	for _, x := range e.extractors {
		pages, err := x.ExtractPages(ctx, path)
		if err == nil && hasText(pages) {
			return pages, nil
		}
		if err == nil {
			err = fmt.Errorf("%s extracted no text", engineName(x))
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
		e.logger.WithError(err).Debug("Extraction engine failed, trying next",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: logging.FieldEngine, Value: engineName(x)})
	}
	if len(errs) == 0 {
		errs = append(errs, errors.New("no extraction engine configured"))
	}
	return nil, extractionError(path, e.Name(), errors.Join(errs...))
}

func hasText(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
