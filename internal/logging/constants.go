package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldSheet      = "sheet"
	FieldRow        = "row"
	FieldKind       = "kind"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldRunID      = "run_id"
	FieldDelimiter  = "delimiter"
	FieldEncoding   = "encoding"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
)
