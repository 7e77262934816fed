// Package export writes parsed documents as JSON lines, CSV, XLSX or YAML.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/tdstatement/internal/dateutils"
	"fjacquet/tdstatement/internal/fileutils"
	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/models"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name or file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json", "jsonl", "ndjson":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// FormatFromPath derives the format from the output file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q", path)
	}
	return ParseFormat(ext)
}

// Options control value rendering in tabular formats.
type Options struct {
	Delimiter  rune
	DateFormat string
}

// DefaultOptions returns comma separated output with ISO dates.
func DefaultOptions() Options {
	return Options{Delimiter: ',', DateFormat: dateutils.DateLayoutISO}
}

// Exporter encodes documents.
type Exporter struct {
	logger logging.Logger
	opts   Options
}

// New creates an exporter. Zero option values fall back to DefaultOptions.
func New(opts Options, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "json")
	}
	def := DefaultOptions()
	if opts.Delimiter == 0 {
		opts.Delimiter = def.Delimiter
	}
	if opts.DateFormat == "" {
		opts.DateFormat = def.DateFormat
	}
	return &Exporter{logger: logger, opts: opts}
}

// Write encodes docs to w.
func (e *Exporter) Write(w io.Writer, format Format, docs ...*models.Document) error {
	switch format {
	case FormatJSON:
		return WriteJSONLines(w, docs...)
	case FormatCSV:
		return e.WriteCSV(w, docs...)
	case FormatXLSX:
		return e.WriteXLSX(w, docs...)
	case FormatYAML:
		return WriteYAML(w, docs...)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// WriteFile encodes docs into a new file at path.
func (e *Exporter) WriteFile(path string, format Format, docs ...*models.Document) (err error) {
	f, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := e.Write(f, format, docs...); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.logger.Info("Exported statements",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
		logging.Field{Key: logging.FieldCount, Value: len(docs)})
	return nil
}
