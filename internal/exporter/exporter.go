// Package exporter writes consolidated and filtered tables to .xlsx or .csv files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"path/filepath"

	"fjacquet/notas-pedidos/internal/fileutils"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// Supported output extensions. A destination without extension gets DefaultExtension.
const (
	ExtensionXLSX    = ".xlsx"
	ExtensionCSV     = ".csv"
	DefaultExtension = ExtensionXLSX
	DefaultSheetName = "Sheet1"
	DefaultDateFmt   = "dd/mm/yyyy"
)

// Outcome is what an export did.
type Outcome int

const (
	// OutcomeExported means the file was written.
	OutcomeExported Outcome = iota
	// OutcomeNoResults means there was nothing to write.
	OutcomeNoResults
	// OutcomeCancelled means no destination was given.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExported:
		return "exported"
	case OutcomeNoResults:
		return "no results"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures an Exporter.
type Options struct {
	// Delimiter separates fields in .csv output.
	Delimiter rune
	// DateColumns hold Excel date serials to be written as dates in .xlsx output.
	DateColumns []string
	// DateFormat is the number format applied to date cells.
	DateFormat string
}

// DefaultOptions returns comma-delimited output with the order and ledger date columns.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ',',
		DateColumns: []string{models.ColumnDate, models.LedgerDate, models.LedgerLoadedDate},
		DateFormat:  DefaultDateFmt,
	}
}

// Exporter writes tables to disk.
type Exporter struct {
	opts   Options
	logger logging.Logger
}

// NewExporter creates an Exporter. A nil logger discards output.
func NewExporter(opts Options, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFmt
	}
	return &Exporter{opts: opts, logger: logger}
}

// Destination returns path with the default extension added when it has none.
func Destination(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + DefaultExtension
}

// ExportTable writes table to path. An empty table is OutcomeNoResults, checked
// before the destination; otherwise an empty path is OutcomeCancelled. Neither
// writes anything.
func (e *Exporter) ExportTable(table *models.Table, path string) (Outcome, string, error) {
	if table == nil || table.Len() == 0 {
		return OutcomeNoResults, "", nil
	}
	if path == "" {
		return OutcomeCancelled, "", nil
	}

	dest := Destination(path)
	var err error
	switch ext := fileutils.Extension(dest); ext {
	case ExtensionXLSX:
		err = e.writeXLSX(table, dest)
	case ExtensionCSV:
		err = e.writeTableCSV(table, dest)
	default:
		return OutcomeCancelled, "", &parsererror.UnsupportedFormatError{
			FilePath:  dest,
			Extension: ext,
			Supported: []string{ExtensionXLSX, ExtensionCSV},
		}
	}
	if err != nil {
		return OutcomeCancelled, "", err
	}

	e.logger.Info("Table exported",
		logging.F(logging.FieldOutputFile, dest),
		logging.F(logging.FieldCount, table.Len()))
	return OutcomeExported, dest, nil
}

// ExportOrders writes consolidated records. CSV output goes through the
// records' csv struct tags; .xlsx output through the table writer.
func (e *Exporter) ExportOrders(records []models.OrderRecord, path string) (Outcome, string, error) {
	if len(records) == 0 {
		return OutcomeNoResults, "", nil
	}
	if path == "" {
		return OutcomeCancelled, "", nil
	}

	dest := Destination(path)
	if fileutils.Extension(dest) != ExtensionCSV {
		return e.ExportTable(models.OrdersToTable(records), dest)
	}

	if err := e.marshalCSV(&records, dest); err != nil {
		return OutcomeCancelled, "", err
	}
	e.logger.Info("Orders exported",
		logging.F(logging.FieldOutputFile, dest),
		logging.F(logging.FieldCount, len(records)))
	return OutcomeExported, dest, nil
}

// WriteDiagnostics writes a CSV report of diagnostics. Nothing is written when
// path is empty.
func (e *Exporter) WriteDiagnostics(diags []models.Diagnostic, path string) error {
	if path == "" {
		return nil
	}
	if diags == nil {
		diags = []models.Diagnostic{}
	}
	if err := e.marshalCSV(&diags, path); err != nil {
		return err
	}
	e.logger.Info("Diagnostics report written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(diags)))
	return nil
}

func (e *Exporter) marshalCSV(rows any, path string) error {
	file, err := fileutils.CreateFile(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = e.opts.Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
