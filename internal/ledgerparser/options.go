package ledgerparser

import "fjacquet/notas-pedidos/internal/models"

// Defaults for ledger exports.
const (
	DefaultDelimiter       = ';'
	DefaultEncoding        = "ISO-8859-1"
	DefaultExclusionPrefix = "PD X "
	DefaultLoadedMarker    = "Cargado"
)

// Options controls how a ledger file is read and filtered.
type Options struct {
	// Delimiter separates CSV fields.
	Delimiter rune
	// Encoding names the CSV text encoding, see textutils.LookupEncoding.
	Encoding string
	// ExclusionPrefix drops rows whose operation text starts with it. Empty disables the filter.
	ExclusionPrefix string
	// LoadedMarker is the constant written to the load status column.
	LoadedMarker string
	// NumericColumns are coerced to numbers.
	NumericColumns []string
}

// DefaultOptions returns the options for the usual ledger export.
func DefaultOptions() Options {
	return Options{
		Delimiter:       DefaultDelimiter,
		Encoding:        DefaultEncoding,
		ExclusionPrefix: DefaultExclusionPrefix,
		LoadedMarker:    DefaultLoadedMarker,
		NumericColumns:  append([]string(nil), models.DefaultLedgerNumericColumns...),
	}
}
