// Package models provides the data structures used throughout the application.
package models

import "strconv"

// OptionalInt is an integer cell that may be absent.
type OptionalInt struct {
	Value int64
	Valid bool
}

// SomeInt returns a present OptionalInt.
func SomeInt(v int64) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

// MarshalCSV renders absent values as an empty field.
func (o OptionalInt) MarshalCSV() (string, error) {
	if !o.Valid {
		return "", nil
	}
	return strconv.FormatInt(o.Value, 10), nil
}

// Any returns the value, or nil when absent.
func (o OptionalInt) Any() any {
	if !o.Valid {
		return nil
	}
	return o.Value
}

// OrderRecord is one line item of an order sheet, flattened together with the
// sheet's header fields. Values other than AccountNumber keep the raw cell text.
type OrderRecord struct {
	Date              string      `csv:"FECHA"`
	Buyer             string      `csv:"COMPRADOR"`
	Laboratory        string      `csv:"LABORATORIO"`
	OrderAmount       string      `csv:"IMPORTE PEDIDO"`
	OrderQuantity     string      `csv:"CANTIDAD PEDIDO"`
	PharmacyName      string      `csv:"DROGUERIA"`
	AccountNumber     OptionalInt `csv:"Num Cuenta"`
	LineQuantity      string      `csv:"Can"`
	Barcode           string      `csv:"Codebar"`
	ProductName       string      `csv:"Producto"`
	Price             string      `csv:"Precio"`
	PharmacyLineField string      `csv:"drog"`
	Discount          string      `csv:"Desc."`
	Cost              string      `csv:"Costo"`
	TotalAmount       string      `csv:"Imp. Total"`
}

// Values returns the record's cells in OrderColumns order. Empty text becomes nil.
func (r OrderRecord) Values() []any {
	return []any{
		cell(r.Date), cell(r.Buyer), cell(r.Laboratory), cell(r.OrderAmount), cell(r.OrderQuantity),
		cell(r.PharmacyName), r.AccountNumber.Any(), cell(r.LineQuantity), cell(r.Barcode), cell(r.ProductName),
		cell(r.Price), cell(r.PharmacyLineField), cell(r.Discount), cell(r.Cost), cell(r.TotalAmount),
	}
}

// OrdersToTable builds the consolidated table from records.
func OrdersToTable(records []OrderRecord) *Table {
	table := NewTable(OrderColumns)
	for _, r := range records {
		table.AppendRow(r.Values())
	}
	return table
}

func cell(s string) any {
	if s == "" {
		return nil
	}
	return s
}
