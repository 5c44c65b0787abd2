package orderparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Cell is a 0-based (row, column) position in a sheet grid.
type Cell struct {
	Row    int
	Column int
}

// String returns the cell in A1 notation.
func (c Cell) String() string {
	name, err := excelize.CoordinatesToCellName(c.Column+1, c.Row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row+1, c.Column+1)
	}
	return name
}

// ItemColumns gives the 0-based column of each line item field.
type ItemColumns struct {
	Quantity     int
	Barcode      int
	Product      int
	Price        int
	PharmacyLine int
	Discount     int
	Cost         int
	Total        int
}

// Layout describes where an order sheet keeps its fields.
type Layout struct {
	Date            Cell
	Laboratory      Cell
	PharmacyAccount Cell
	Buyer           Cell
	OrderAmount     Cell
	OrderQuantity   Cell

	// ItemsStartRow is the first row of the line item table.
	ItemsStartRow int
	// ItemsTrailingRows is how many rows at the bottom of the sheet are not items.
	ItemsTrailingRows int
	// ItemsWidth is the number of columns the line item table spans from column A.
	ItemsWidth int
	Items      ItemColumns

	// MinRows is the smallest row count a sheet needs to hold any data.
	MinRows int

	// CollapseBlankRows drops fully blank rows before any coordinate is read,
	// so positions count only rows that hold data.
	CollapseBlankRows bool
}

// DefaultLayout is the order sheet layout. The first sheet row is a column
// header row; the totals row closes the item table.
func DefaultLayout() Layout {
	return Layout{
		Date:              Cell{Row: 1, Column: 8}, // I2
		Laboratory:        Cell{Row: 1, Column: 4}, // E2
		PharmacyAccount:   Cell{Row: 3, Column: 4}, // E4
		Buyer:             Cell{Row: 5, Column: 2}, // C6
		OrderAmount:       Cell{Row: 5, Column: 5}, // F6
		OrderQuantity:     Cell{Row: 6, Column: 5}, // F7
		ItemsStartRow:     10,
		ItemsTrailingRows: 1,
		ItemsWidth:        9,
		Items: ItemColumns{
			Quantity:     0,
			Barcode:      1,
			Product:      2,
			Price:        4,
			PharmacyLine: 5,
			Discount:     6,
			Cost:         7,
			Total:        8,
		},
		MinRows: 2,
	}
}
