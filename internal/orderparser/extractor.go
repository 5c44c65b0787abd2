// Package orderparser extracts line items from order sheets and consolidates
// a directory of order workbooks into one table.
package orderparser

import (
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/numconv"
	"fjacquet/notas-pedidos/internal/parsererror"
	"fjacquet/notas-pedidos/internal/textutils"
	"fjacquet/notas-pedidos/internal/workbook"
)

// SheetResult is what one sheet yields. Empty marks a sheet with no data rows.
type SheetResult struct {
	Records []models.OrderRecord
	Empty   bool
}

// Extractor turns an order sheet grid into records according to a Layout.
type Extractor struct {
	layout Layout
}

// NewExtractor creates an Extractor for layout.
func NewExtractor(layout Layout) *Extractor {
	return &Extractor{layout: layout}
}

// Layout returns the extractor's layout.
func (e *Extractor) Layout() Layout { return e.layout }

type header struct {
	date, laboratory, pharmacy, buyer, orderAmount, orderQuantity string
}

// Extract reads the header fields and line items of one sheet. A sheet that
// does not fit the layout returns a *parsererror.SheetLayoutError and no records.
func (e *Extractor) Extract(sheet string, grid *workbook.Grid) (SheetResult, error) {
	if e.layout.CollapseBlankRows {
		grid = grid.WithoutBlankRows()
	}
	if grid.Height() < e.layout.MinRows || grid.Width() == 0 {
		return SheetResult{Empty: true}, nil
	}

	h, err := e.readHeader(sheet, grid)
	if err != nil {
		return SheetResult{}, err
	}

	if grid.Width() < e.layout.ItemsWidth {
		return SheetResult{}, &parsererror.SheetLayoutError{
			Sheet:  sheet,
			Field:  "items",
			Row:    e.layout.ItemsStartRow,
			Column: e.layout.ItemsWidth - 1,
			Reason: "line item table is narrower than expected",
		}
	}

	name, account, hasAccount := textutils.SplitNameAndAccount(h.pharmacy)
	accountNumber := models.OptionalInt{}
	if hasAccount {
		accountNumber = models.SomeInt(account)
	}

	var records []models.OrderRecord
	end := grid.Height() - e.layout.ItemsTrailingRows
	for r := e.layout.ItemsStartRow; r < end; r++ {
		row := grid.Row(r)
		cols := e.layout.Items
		if numconv.IsZero(row[cols.Quantity]) {
			continue
		}
		records = append(records, models.OrderRecord{
			Date:              h.date,
			Buyer:             h.buyer,
			Laboratory:        h.laboratory,
			OrderAmount:       h.orderAmount,
			OrderQuantity:     h.orderQuantity,
			PharmacyName:      name,
			AccountNumber:     accountNumber,
			LineQuantity:      row[cols.Quantity],
			Barcode:           row[cols.Barcode],
			ProductName:       row[cols.Product],
			Price:             row[cols.Price],
			PharmacyLineField: row[cols.PharmacyLine],
			Discount:          row[cols.Discount],
			Cost:              row[cols.Cost],
			TotalAmount:       row[cols.Total],
		})
	}

	return SheetResult{Records: records}, nil
}

func (e *Extractor) readHeader(sheet string, grid *workbook.Grid) (header, error) {
	var h header
	fields := []struct {
		name string
		cell Cell
		dest *string
	}{
		{"date", e.layout.Date, &h.date},
		{"buyer", e.layout.Buyer, &h.buyer},
		{"order amount", e.layout.OrderAmount, &h.orderAmount},
		{"order quantity", e.layout.OrderQuantity, &h.orderQuantity},
		{"laboratory", e.layout.Laboratory, &h.laboratory},
		{"pharmacy", e.layout.PharmacyAccount, &h.pharmacy},
	}
	for _, f := range fields {
		value, ok := grid.Cell(f.cell.Row, f.cell.Column)
		if !ok {
			return header{}, &parsererror.SheetLayoutError{
				Sheet:  sheet,
				Field:  f.name,
				Row:    f.cell.Row,
				Column: f.cell.Column,
				Reason: "cell " + f.cell.String() + " is outside the sheet",
			}
		}
		*f.dest = value
	}
	return h, nil
}
