package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "basic parse error",
			err: &ParseError{
				Parser: "account",
				Field:  "amount",
				Value:  "invalid",
				Err:    errors.New("invalid decimal"),
			},
			expected: "account: failed to parse amount='invalid': invalid decimal",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				Parser: "credit_card",
				Field:  "post_date",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "credit_card: failed to parse post_date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{
		Parser: "account",
		Field:  "amount",
		Value:  "invalid",
		Err:    originalErr,
	}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestUnrecognizedDocumentTypeError(t *testing.T) {
	withSnippet := &UnrecognizedDocumentTypeError{FilePath: "a.pdf", Snippet: "ANNUAL REPORT"}
	assert.Equal(t, "cannot discern content type of 'a.pdf'. First page starts with: 'ANNUAL REPORT'", withSnippet.Error())

	without := &UnrecognizedDocumentTypeError{FilePath: "b.pdf"}
	assert.Equal(t, "cannot discern content type of 'b.pdf'", without.Error())

	wrapped := fmt.Errorf("parse: %w", without)
	assert.True(t, errors.Is(wrapped, ErrUnrecognizedDocumentType))

	var target *UnrecognizedDocumentTypeError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "b.pdf", target.FilePath)
}

func TestExtractionError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &ExtractionError{FilePath: "a.pdf", Engine: "pdftotext", Err: cause}
	assert.Equal(t, "text extraction with pdftotext failed for 'a.pdf': exit status 1", err.Error())
	assert.True(t, errors.Is(err, cause))

	noEngine := &ExtractionError{FilePath: "a.pdf", Err: cause}
	assert.Equal(t, "text extraction failed for 'a.pdf': exit status 1", noEngine.Error())
}

func TestDirectionError(t *testing.T) {
	err := &DirectionError{Table: "Transactions", Field: "credit_flag", Row: 3}
	assert.Equal(t, "table 'Transactions' row 3: no direction indicator in field 'credit_flag'", err.Error())
	assert.True(t, errors.Is(err, ErrMissingDirection))
	assert.False(t, errors.Is(err, ErrUnrecognizedDocumentType))
}

func TestInvalidFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InvalidFormatError
		expected string
	}{
		{
			name: "invalid format error with content snippet",
			err: &InvalidFormatError{
				FilePath:             "/path/to/file.pdf",
				ExpectedFormat:       "PDF",
				ActualContentSnippet: "<?xml version=",
				Msg:                  "file appears to be XML",
			},
			expected: "invalid format in file '/path/to/file.pdf': file appears to be XML. Expected: PDF. Content snippet: '<?xml version='",
		},
		{
			name: "invalid format error without content snippet",
			err: &InvalidFormatError{
				FilePath:       "/path/to/file.csv",
				ExpectedFormat: "PDF or pre-extracted text",
				Msg:            "unsupported extension",
			},
			expected: "invalid format in file '/path/to/file.csv': unsupported extension. Expected: PDF or pre-extracted text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "ab cd", Snippet("ab\ncd", 10))
	assert.Equal(t, "abc", Snippet("abcdef", 3))
	assert.Equal(t, "", Snippet("", 3))
}
