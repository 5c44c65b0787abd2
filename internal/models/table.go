package models

import "fmt"

// Row holds one table row. A nil element is a null cell.
type Row []any

// Table is an ordered, column-named grid of values, the in-memory form of a
// ledger or consolidated export.
type Table struct {
	columns []string
	index   map[string]int
	Rows    []Row
}

// NewTable creates an empty table with the given column names.
// Later duplicates of a name are reachable only by position.
func NewTable(columns []string) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, exists := t.index[c]; !exists {
			t.index[c] = i
		}
	}
	return t
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Width is the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Len is the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of a column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// HasColumn reports whether the table has a column with that name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// AppendRow adds a row, padding with nulls or truncating to the table width.
func (t *Table) AppendRow(values []any) {
	row := make(Row, len(t.columns))
	copy(row, values)
	t.Rows = append(t.Rows, row)
}

// Value returns the cell at row i in the named column.
func (t *Table) Value(i int, column string) (any, bool) {
	c, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[i][c], true
}

// AddColumn appends a column filled with nulls. Adding an existing column is a no-op.
func (t *Table) AddColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	t.columns = append(t.columns, name)
	i := len(t.columns) - 1
	t.index[name] = i
	for r := range t.Rows {
		t.Rows[r] = append(t.Rows[r], nil)
	}
	return i
}

// SetColumn computes every cell of a column from its row, creating the column when absent.
func (t *Table) SetColumn(name string, fn func(view RowView) any) {
	c := t.AddColumn(name)
	for r := range t.Rows {
		t.Rows[r][c] = fn(t.View(r))
	}
}

// MapColumn replaces every cell of an existing column.
func (t *Table) MapColumn(name string, fn func(v any) any) error {
	c, ok := t.index[name]
	if !ok {
		return fmt.Errorf("column %q not found", name)
	}
	for r := range t.Rows {
		t.Rows[r][c] = fn(t.Rows[r][c])
	}
	return nil
}

// Filter returns a new table holding the rows for which keep returns true.
// Rows are shared with the receiver.
func (t *Table) Filter(keep func(view RowView) bool) *Table {
	out := NewTable(t.columns)
	for r := range t.Rows {
		if keep(t.View(r)) {
			out.Rows = append(out.Rows, t.Rows[r])
		}
	}
	return out
}

// View returns a read-only accessor for row i.
func (t *Table) View(i int) RowView {
	return RowView{table: t, index: i}
}

// RowView reads cells of one row by column name.
type RowView struct {
	table *Table
	index int
}

// Index is the row's position in its table.
func (v RowView) Index() int { return v.index }

// Value returns the named cell; ok is false when the column does not exist.
func (v RowView) Value(column string) (any, bool) {
	return v.table.Value(v.index, column)
}

// String returns the named cell when it holds text.
func (v RowView) String(column string) (string, bool) {
	value, ok := v.Value(column)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
