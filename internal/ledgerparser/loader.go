package ledgerparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/textutils"
	"fjacquet/notas-pedidos/internal/workbook"

	"golang.org/x/text/transform"
)

// MalformedLine is a CSV line that was skipped.
type MalformedLine struct {
	Line   int
	Reason string
}

// ReadCSV decodes r with opts.Encoding and parses it as a delimited table whose
// first record is the header. Lines that cannot be parsed, or that have more
// fields than the header, are skipped and returned. Short lines are padded
// with nulls and empty fields are null.
func ReadCSV(r io.Reader, opts Options) (*models.Table, []MalformedLine, error) {
	enc, err := textutils.LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	reader.Comma = opts.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return models.NewTable(nil), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading header: %w", err)
	}

	table := models.NewTable(NormalizeHeaders(header))
	var skipped []MalformedLine
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped = append(skipped, MalformedLine{Line: parseErr.StartLine, Reason: parseErr.Err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("error reading ledger: %w", err)
		}
		if len(record) > table.Width() {
			line, _ := reader.FieldPos(0)
			skipped = append(skipped, MalformedLine{
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, saw %d", table.Width(), len(record)),
			})
			continue
		}
		table.AppendRow(textCells(record))
	}
	return table, skipped, nil
}

// ReadGrid turns a sheet grid into a table: the first row is the header and
// fully empty rows are dropped.
func ReadGrid(grid *workbook.Grid) *models.Table {
	if grid.Height() == 0 {
		return models.NewTable(nil)
	}
	table := models.NewTable(NormalizeHeaders(grid.Row(0)))
	for i := 1; i < grid.Height(); i++ {
		row := grid.Row(i)
		if isBlank(row) {
			continue
		}
		table.AppendRow(textCells(row))
	}
	return table
}

// NormalizeHeaders names blank headers "Unnamed: <position>" and suffixes
// repeated names with ".1", ".2", ... in order of appearance.
func NormalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	counts := make(map[string]int, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if strings.TrimSpace(h) == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for used[name] {
			counts[h]++
			name = h + "." + strconv.Itoa(counts[h])
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}

func textCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = v
		}
	}
	return cells
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
