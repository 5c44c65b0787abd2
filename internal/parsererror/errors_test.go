package parsererror

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "unsupported format",
			err: &UnsupportedFormatError{
				FilePath:  "ledger.txt",
				Extension: ".txt",
				Supported: []string{".csv", ".xlsx"},
			},
			expected: "unsupported file format '.txt' for 'ledger.txt': expected one of [.csv .xlsx]",
		},
		{
			name:     "missing column",
			err:      &MissingColumnError{FilePath: "ledger.csv", Column: "Operación"},
			expected: "file 'ledger.csv' does not contain the required column 'Operación'",
		},
		{
			name:     "sheet layout reports one-based coordinates",
			err:      &SheetLayoutError{Sheet: "Hoja1", Field: "buyer", Row: 5, Column: 2, Reason: "outside grid"},
			expected: "sheet 'Hoja1': field buyer at row 6 column 3: outside grid",
		},
		{
			name:     "validation",
			err:      &ValidationError{Key: "ledger.encoding", Reason: "unknown encoding"},
			expected: "invalid configuration ledger.encoding: unknown encoding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDirectoryError_Unwrap(t *testing.T) {
	err := &DirectoryError{Path: "/nope", Err: os.ErrNotExist}
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/nope")
}

func TestParseError_As(t *testing.T) {
	inner := errors.New("zip: not a valid zip file")
	wrapped := fmt.Errorf("loading ledger: %w", &ParseError{Parser: "xlsx", File: "a.xlsx", Err: inner})

	var parseErr *ParseError
	assert.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "a.xlsx", parseErr.File)
	assert.True(t, errors.Is(wrapped, inner))
}
