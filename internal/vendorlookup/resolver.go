package vendorlookup

import (
	"fmt"

	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/textutils"
)

// Record is a row that exposes its cells by column name.
type Record interface {
	Value(column string) (any, bool)
}

// Resolver picks the vendor of a ledger row.
type Resolver struct {
	table  LookupTable
	logger logging.Logger
}

// NewResolver creates a resolver over table. A nil logger discards output.
func NewResolver(table LookupTable, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Resolver{table: table, logger: logger}
}

// Table returns the lookup table the resolver was built with.
func (r *Resolver) Table() LookupTable { return r.table }

// Resolve returns the vendor mapped to the invoice code found in the row's
// operation text, or the row's existing vendor value when there is no mapped
// code. It never fails: a nil record or any fault during resolution yields nil.
func (r *Resolver) Resolve(rec Record) any {
	vendor, err := r.TryResolve(rec)
	if err != nil {
		r.logger.Warn("Vendor resolution failed", logging.F(logging.FieldReason, err.Error()))
		return nil
	}
	return vendor
}

// TryResolve is Resolve with the fault reported to the caller instead of logged.
// The vendor is nil whenever err is not nil.
func (r *Resolver) TryResolve(rec Record) (vendor any, err error) {
	defer func() {
		if p := recover(); p != nil {
			vendor = nil
			err = fmt.Errorf("vendor resolution: %v", p)
		}
	}()

	if rec == nil {
		return nil, fmt.Errorf("vendor resolution: no record")
	}

	existing, _ := rec.Value(models.LedgerVendor)
	operation, _ := rec.Value(models.LedgerOperation)
	text, isText := operation.(string)
	if !isText {
		return existing, nil
	}

	code, found := textutils.ExtractInvoiceCode(text)
	if !found {
		return existing, nil
	}
	if name, mapped := r.table.Lookup(code); mapped {
		return name, nil
	}
	return existing, nil
}
