// Package workbook reads .xlsx sheets into rectangular grids of raw cell text.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open .xlsx file.
type Workbook struct {
	path string
	file *excelize.File
}

// Open opens the workbook at path. Cell values are read unformatted, so dates
// come back as Excel serial numbers and numbers without display formatting.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %s: %w", path, err)
	}
	return &Workbook{path: path, file: f}, nil
}

// Path returns the file the workbook was opened from.
func (w *Workbook) Path() string { return w.path }

// Sheets returns the sheet names in workbook order.
func (w *Workbook) Sheets() []string {
	return w.file.GetSheetList()
}

// Grid reads a whole sheet.
func (w *Workbook) Grid(sheet string) (*Grid, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheet, err)
	}
	return NewGrid(rows), nil
}

// FirstGrid reads the first sheet and returns its name with the grid.
func (w *Workbook) FirstGrid() (string, *Grid, error) {
	sheets := w.Sheets()
	if len(sheets) == 0 {
		return "", nil, fmt.Errorf("workbook %s has no sheets", w.path)
	}
	grid, err := w.Grid(sheets[0])
	if err != nil {
		return "", nil, err
	}
	return sheets[0], grid, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}
