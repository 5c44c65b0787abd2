package models

// Consolidated order columns, in export order.
const (
	ColumnDate              = "FECHA"
	ColumnBuyer             = "COMPRADOR"
	ColumnLaboratory        = "LABORATORIO"
	ColumnOrderAmount       = "IMPORTE PEDIDO"
	ColumnOrderQuantity     = "CANTIDAD PEDIDO"
	ColumnPharmacy          = "DROGUERIA"
	ColumnAccountNumber     = "Num Cuenta"
	ColumnLineQuantity      = "Can"
	ColumnBarcode           = "Codebar"
	ColumnProduct           = "Producto"
	ColumnPrice             = "Precio"
	ColumnPharmacyLineField = "drog"
	ColumnDiscount          = "Desc."
	ColumnCost              = "Costo"
	ColumnTotalAmount       = "Imp. Total"
)

// OrderColumns is the fixed schema of the consolidated table.
var OrderColumns = []string{
	ColumnDate, ColumnBuyer, ColumnLaboratory, ColumnOrderAmount, ColumnOrderQuantity,
	ColumnPharmacy, ColumnAccountNumber, ColumnLineQuantity, ColumnBarcode, ColumnProduct,
	ColumnPrice, ColumnPharmacyLineField, ColumnDiscount, ColumnCost, ColumnTotalAmount,
}

// Ledger columns read or written by the ledger pipeline.
const (
	LedgerOperation      = "Operación"
	LedgerVendor         = "Proveedor/Cliente"
	LedgerDate           = "Fecha"
	LedgerQuantity       = "Cantidad"
	LedgerBarcode        = "Cod.Barras"
	LedgerLot            = "Nro.Lote"
	LedgerCost           = "Costo"
	LedgerTotalCost      = "Total Costo"
	LedgerUnitPrice      = "Unitario"
	LedgerTotal          = "Total"
	LedgerLoaded         = "Cargado"
	LedgerLoadedQuantity = "Cantidad Cargada"
	LedgerLoadedDate     = "Fecha Cargada"
)

// DefaultLedgerNumericColumns are coerced to numbers before export.
var DefaultLedgerNumericColumns = []string{
	LedgerBarcode, LedgerQuantity, LedgerLot, LedgerCost, LedgerTotalCost, LedgerUnitPrice, LedgerTotal,
}

// PermissionDirectory is used for output directories created on export.
const PermissionDirectory = 0750
