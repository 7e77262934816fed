// Package pdfparser provides the text extraction collaborators that turn a
// statement file into per-page plain text with its physical layout preserved.
package pdfparser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/parsererror"
)

// Extraction engines selectable through configuration.
const (
	EngineAuto      = "auto"
	EnginePdftotext = "pdftotext"
	EngineNative    = "native"
	EngineText      = "text"
)

// PageSeparator separates pages in pdftotext output and in pre-extracted
// text files.
const PageSeparator = "\f"

// PDFExtractor defines the interface for extracting per-page text from a
// statement file. It allows the orchestrator to be tested without real PDFs.
type PDFExtractor interface {
	// ExtractPages returns the text of every page in document order.
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// Named is implemented by extractors that report their engine name in errors.
type Named interface {
	Name() string
}

// New returns the extractor for the configured engine. The auto engine reads
// .txt files directly and tries pdftotext before the native reader for PDFs.
func New(engine, pdftotextPath string, logger logging.Logger) (PDFExtractor, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}

	switch engine {
	case EnginePdftotext:
		return NewByExtension(NewPdftotextExtractor(pdftotextPath)), nil
	case EngineNative:
		return NewByExtension(NewNativeExtractor()), nil
	case EngineText:
		return NewTextExtractor(), nil
	case EngineAuto, "":
		return NewByExtension(NewFallbackExtractor(logger,
			NewPdftotextExtractor(pdftotextPath),
			NewNativeExtractor(),
		)), nil
	default:
		return nil, fmt.Errorf("unknown extraction engine %q", engine)
	}
}

// ByExtension reads .txt files as pre-extracted pages and hands every other
// file to the PDF extractor.
type ByExtension struct {
	text PDFExtractor
	pdf  PDFExtractor
}

// NewByExtension wraps a PDF extractor with plain-text support.
func NewByExtension(pdf PDFExtractor) *ByExtension {
	return &ByExtension{text: NewTextExtractor(), pdf: pdf}
}

// ExtractPages dispatches on the file extension.
func (e *ByExtension) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return e.text.ExtractPages(ctx, path)
	}
	return e.pdf.ExtractPages(ctx, path)
}

// SplitPages splits form-feed separated text into pages. The empty page
// after a trailing form feed is dropped.
func SplitPages(text string) []string {
	if text == "" {
		return nil
	}
	pages := strings.Split(text, PageSeparator)
	if len(pages) > 1 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	return pages
}

func engineName(e PDFExtractor) string {
	if n, ok := e.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", e)
}

func extractionError(path, engine string, err error) error {
	return &parsererror.ExtractionError{FilePath: path, Engine: engine, Err: err}
}

// MockPDFExtractor implements PDFExtractor for testing purposes.
// It returns predefined pages instead of reading any file.
type MockPDFExtractor struct {
	MockPages []string
	MockErr   error
	Calls     []string
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(pages []string, err error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockPages: pages,
		MockErr:   err,
	}
}

// ExtractPages returns the predefined pages or error.
func (e *MockPDFExtractor) ExtractPages(_ context.Context, path string) ([]string, error) {
	e.Calls = append(e.Calls, path)
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockPages, nil
}

// Name implements Named.
func (e *MockPDFExtractor) Name() string {
	return "mock"
}
