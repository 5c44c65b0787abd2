package workbook

import "strings"

// Grid is a rectangular block of cell text. Row 0 is the sheet's first row and
// every row has Width cells; an empty string is an empty cell.
type Grid struct {
	rows  [][]string
	width int
}

// NewGrid pads rows to the widest row.
func NewGrid(rows [][]string) *Grid {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	padded := make([][]string, len(rows))
	for i, r := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], r)
	}
	return &Grid{rows: padded, width: width}
}

// Height is the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.width
}

// Cell returns the text at (row, col). ok is false outside the grid.
func (g *Grid) Cell(row, col int) (string, bool) {
	if !g.InBounds(row, col) {
		return "", false
	}
	return g.rows[row][col], true
}

// Row returns a copy of row i, or nil when out of range.
func (g *Grid) Row(i int) []string {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return append([]string(nil), g.rows[i]...)
}

// WithoutBlankRows returns a grid holding only the rows with at least one
// non-blank cell. The width is kept.
func (g *Grid) WithoutBlankRows() *Grid {
	rows := make([][]string, 0, len(g.rows))
	for _, r := range g.rows {
		for _, c := range r {
			if strings.TrimSpace(c) != "" {
				rows = append(rows, r)
				break
			}
		}
	}
	return &Grid{rows: rows, width: g.width}
}
