package pdfparser

import (
	"context"
	"fmt"
	"os"
)

// TextExtractor reads text that was extracted ahead of time, with pages
// separated by form feeds.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Name implements Named.
func (e *TextExtractor) Name() string {
	return EngineText
}

// ExtractPages implements PDFExtractor.
func (e *TextExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, extractionError(path, e.Name(), err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, extractionError(path, e.Name(), err)
	}
	pages := SplitPages(string(data))
	if len(pages) == 0 {
		return nil, extractionError(path, e.Name(), fmt.Errorf("file is empty"))
	}
	return pages, nil
}
