package models

import "fmt"

// DiagnosticKind classifies a unit of input that was skipped or degraded.
type DiagnosticKind string

const (
	DiagnosticEmptySheet    DiagnosticKind = "empty_sheet"
	DiagnosticSheetError    DiagnosticKind = "sheet_error"
	DiagnosticFileError     DiagnosticKind = "file_error"
	DiagnosticMalformedLine DiagnosticKind = "malformed_line"
	DiagnosticMissingColumn DiagnosticKind = "missing_column"
	DiagnosticVendorError   DiagnosticKind = "vendor_error"
)

// Diagnostic records something a pipeline skipped without failing the run.
// Row is 1-based; 0 means the diagnostic is not about a single row.
type Diagnostic struct {
	File    string         `csv:"file"`
	Sheet   string         `csv:"sheet"`
	Row     int            `csv:"row"`
	Kind    DiagnosticKind `csv:"kind"`
	Message string         `csv:"message"`
}

func (d Diagnostic) String() string {
	location := d.File
	if d.Sheet != "" {
		location += "[" + d.Sheet + "]"
	}
	if d.Row > 0 {
		location += fmt.Sprintf(":%d", d.Row)
	}
	return fmt.Sprintf("%s %s: %s", location, d.Kind, d.Message)
}

// CountKind returns how many diagnostics have the given kind.
func CountKind(diags []Diagnostic, kind DiagnosticKind) int {
	n := 0
	for _, d := range diags {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
