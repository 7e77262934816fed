package pdfparser

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultPdftotextPath is the binary looked up on PATH when none is configured.
const DefaultPdftotextPath = "pdftotext"

// PdftotextExtractor runs poppler's pdftotext in layout mode. Page breaks
// arrive as form feeds on stdout.
type PdftotextExtractor struct {
	Path string
}

// NewPdftotextExtractor creates an extractor for the given binary.
func NewPdftotextExtractor(path string) *PdftotextExtractor {
	if path == "" {
		path = DefaultPdftotextPath
	}
	return &PdftotextExtractor{Path: path}
}

// Name implements Named.
func (e *PdftotextExtractor) Name() string {
	return EnginePdftotext
}

// ExtractPages implements PDFExtractor.
func (e *PdftotextExtractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	bin, err := exec.LookPath(e.Path)
	if err != nil {
		return nil, extractionError(path, e.Name(), fmt.Errorf("pdftotext not available: %w", err))
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-layout", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return nil, extractionError(path, e.Name(), err)
	}

	pages := SplitPages(stdout.String())
	if len(pages) == 0 {
		return nil, extractionError(path, e.Name(), fmt.Errorf("pdftotext produced no output"))
	}
	return pages, nil
}
