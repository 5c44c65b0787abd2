package exporter

import (
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fjacquet/notas-pedidos/internal/fileutils"
	"fjacquet/notas-pedidos/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

func (e *Exporter) writeXLSX(table *models.Table, path string) (err error) {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dateFormat := e.opts.DateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return fmt.Errorf("error creating date style: %w", err)
	}

	sw, err := f.NewStreamWriter(DefaultSheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet writer: %w", err)
	}

	columns := table.Columns()
	isDate := make([]bool, len(columns))
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
		isDate[i] = e.isDateColumn(c)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for r, row := range table.Rows {
		values := make([]any, len(row))
		for c, v := range row {
			values[c] = xlsxValue(v, isDate[c], dateStyle)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("error writing row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("error flushing sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeTableCSV(table *models.Table, path string) error {
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
	w := gocsv.NewSafeCSVWriter(csvWriter)

	if err := w.Write(table.Columns()); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = csvValue(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (e *Exporter) isDateColumn(column string) bool {
	for _, d := range e.opts.DateColumns {
		if d == column {
			return true
		}
	}
	return false
}

// xlsxValue converts a table cell to what the sheet should hold: numeric text
// becomes a number and a serial in a date column becomes a styled date.
func xlsxValue(v any, isDate bool, dateStyle int) any {
	text, isText := v.(string)
	if !isText {
		if isDate {
			if serial, ok := v.(float64); ok {
				return dateCell(serial, dateStyle, v)
			}
		}
		return v
	}

	number, ok := numericText(text)
	if !ok {
		return text
	}
	if isDate {
		return dateCell(number, dateStyle, number)
	}
	return number
}

func dateCell(serial float64, style int, fallback any) any {
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return fallback
	}
	return excelize.Cell{StyleID: style, Value: t}
}

// numericText parses plain decimal text. Text with leading zeros or exponent
// notation, such as a product code, stays text.
func numericText(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" || s != text {
		return 0, false
	}
	digits := strings.TrimPrefix(s, "-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return 0, false
	}
	for _, r := range digits {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func csvValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}
