// Package parsererror holds the typed errors returned by the workbook and ledger pipelines.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrEmptyDestination is returned by writers that receive no destination path.
var ErrEmptyDestination = errors.New("no destination path")

// UnsupportedFormatError is returned when a ledger file has an extension the
// pipeline cannot read.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format '%s' for '%s': expected one of %v",
		e.Extension, e.FilePath, e.Supported)
}

// MissingColumnError is returned when a required column is absent from a table.
type MissingColumnError struct {
	FilePath string
	Column   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("file '%s' does not contain the required column '%s'", e.FilePath, e.Column)
}

// DirectoryError is returned when the input directory cannot be enumerated.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot read directory '%s': %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// SheetLayoutError reports a sheet whose grid does not match the expected layout.
type SheetLayoutError struct {
	Sheet  string
	Field  string
	Row    int
	Column int
	Reason string
}

func (e *SheetLayoutError) Error() string {
	return fmt.Sprintf("sheet '%s': field %s at row %d column %d: %s",
		e.Sheet, e.Field, e.Row+1, e.Column+1, e.Reason)
}

// ParseError represents an error while reading a single input file.
type ParseError struct {
	Parser string
	File   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to read '%s': %v", e.Parser, e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an invalid configuration value.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}
