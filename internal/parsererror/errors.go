package parsererror

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrUnrecognizedDocumentType = errors.New("unrecognized document type")
	ErrMissingDirection         = errors.New("missing transaction direction")
	ErrNoPages                  = errors.New("document has no pages")
)

// ParseError represents a field that could not be converted. It is logged and
// the field is left out of the record.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnrecognizedDocumentTypeError is returned when no registry marker is found
// on the first page. Processing of that document stops.
type UnrecognizedDocumentTypeError struct {
	FilePath string
	Snippet  string // Optional: start of the first page for debugging
}

func (e *UnrecognizedDocumentTypeError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("cannot discern content type of '%s'. First page starts with: '%s'",
			e.FilePath, e.Snippet)
	}
	return fmt.Sprintf("cannot discern content type of '%s'", e.FilePath)
}

func (e *UnrecognizedDocumentTypeError) Unwrap() error {
	return ErrUnrecognizedDocumentType
}

// ExtractionError wraps a failure of the text extraction collaborator.
type ExtractionError struct {
	FilePath string
	Engine   string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Engine != "" {
		return fmt.Sprintf("text extraction with %s failed for '%s': %v", e.Engine, e.FilePath, e.Err)
	}
	return fmt.Sprintf("text extraction failed for '%s': %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// DirectionError reports a row of a mixed table that carries no direction
// indicator. Its amount cannot be signed.
type DirectionError struct {
	Table string
	Field string
	Row   int
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("table '%s' row %d: no direction indicator in field '%s'", e.Table, e.Row, e.Field)
}

func (e *DirectionError) Unwrap() error {
	return ErrMissingDirection
}

// InvalidFormatError represents an error where the input file does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string // Optional: a snippet of the actual content for debugging
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// Snippet returns at most n runes of s on a single line, for error messages.
func Snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		if r == '\n' || r == '\r' || r == '\f' || r == '\t' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}
