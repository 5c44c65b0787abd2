package orderparser

import (
	"fmt"
	"path/filepath"

	"fjacquet/notas-pedidos/internal/fileutils"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/parser"
	"fjacquet/notas-pedidos/internal/parsererror"
	"fjacquet/notas-pedidos/internal/workbook"

	"github.com/google/uuid"
)

// WorkbookExtension is the only file type the consolidator reads.
const WorkbookExtension = ".xlsx"

// Consolidation is the outcome of consolidating a directory.
type Consolidation struct {
	RunID       string
	Directory   string
	Files       int
	Records     []models.OrderRecord
	Diagnostics []models.Diagnostic
}

// Empty reports whether no record was extracted.
func (c *Consolidation) Empty() bool { return len(c.Records) == 0 }

// Table returns the records as the consolidated table.
func (c *Consolidation) Table() *models.Table {
	return models.OrdersToTable(c.Records)
}

// Consolidator reads every order workbook of a directory.
type Consolidator struct {
	parser.BaseParser
	extractor *Extractor
}

// NewConsolidator creates a Consolidator using extractor for every sheet.
func NewConsolidator(extractor *Extractor, logger logging.Logger) *Consolidator {
	if extractor == nil {
		extractor = NewExtractor(DefaultLayout())
	}
	return &Consolidator{
		BaseParser: parser.NewBaseParser(logger),
		extractor:  extractor,
	}
}

// Consolidate extracts the records of every .xlsx file directly inside dir,
// in file name order, then sheet order, then row order. Files and sheets that
// cannot be read are reported as diagnostics. Only a directory that cannot be
// listed is an error.
func (c *Consolidator) Consolidate(dir string) (*Consolidation, error) {
	files, err := fileutils.ListFilesWithExtension(dir, WorkbookExtension)
	if err != nil {
		return nil, &parsererror.DirectoryError{Path: dir, Err: err}
	}

	result := &Consolidation{
		RunID:     uuid.NewString(),
		Directory: dir,
		Files:     len(files),
	}
	logger := c.GetLogger().WithField(logging.FieldRunID, result.RunID)
	diags := parser.NewBaseParser(logger).NewDiagnostics()

	logger.Info("Consolidating order workbooks",
		logging.F(logging.FieldInputFile, dir),
		logging.F(logging.FieldCount, len(files)))

	for _, path := range files {
		records := c.consolidateFile(path, logger, diags)
		result.Records = append(result.Records, records...)
	}

	result.Diagnostics = diags.Items()
	logger.Info("Consolidation finished",
		logging.F(logging.FieldCount, len(result.Records)),
		logging.F(logging.FieldSkipped, len(result.Diagnostics)))
	return result, nil
}

func (c *Consolidator) consolidateFile(path string, logger logging.Logger, diags *parser.Diagnostics) []models.OrderRecord {
	name := filepath.Base(path)
	wb, err := workbook.Open(path)
	if err != nil {
		diags.Add(models.Diagnostic{File: name, Kind: models.DiagnosticFileError, Message: err.Error()})
		return nil
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			logger.WithError(cerr).Warn("Failed to close workbook", logging.F(logging.FieldFile, name))
		}
	}()

	var records []models.OrderRecord
	for _, sheet := range wb.Sheets() {
		sheetRecords, err := c.consolidateSheet(wb, sheet)
		if err != nil {
			diags.Add(models.Diagnostic{File: name, Sheet: sheet, Kind: models.DiagnosticSheetError, Message: err.Error()})
			continue
		}
		if sheetRecords.Empty {
			diags.Add(models.Diagnostic{File: name, Sheet: sheet, Kind: models.DiagnosticEmptySheet, Message: "sheet is empty"})
			continue
		}
		logger.Debug("Sheet extracted",
			logging.F(logging.FieldFile, name),
			logging.F(logging.FieldSheet, sheet),
			logging.F(logging.FieldCount, len(sheetRecords.Records)))
		records = append(records, sheetRecords.Records...)
	}
	return records
}

func (c *Consolidator) consolidateSheet(wb *workbook.Workbook, sheet string) (result SheetResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = SheetResult{}
			err = fmt.Errorf("unexpected sheet content: %v", p)
		}
	}()

	grid, err := wb.Grid(sheet)
	if err != nil {
		return SheetResult{}, err
	}
	return c.extractor.Extract(sheet, grid)
}
