// Package ledgerparser loads a ledger export, resolves vendors from invoice
// codes, normalizes numeric columns and drops excluded operations.
package ledgerparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/notas-pedidos/internal/fileutils"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
	"fjacquet/notas-pedidos/internal/numconv"
	"fjacquet/notas-pedidos/internal/parser"
	"fjacquet/notas-pedidos/internal/parsererror"
	"fjacquet/notas-pedidos/internal/vendorlookup"
	"fjacquet/notas-pedidos/internal/workbook"
)

// Supported ledger file extensions.
const (
	ExtensionCSV  = ".csv"
	ExtensionXLSX = ".xlsx"
)

// Result is a processed ledger.
type Result struct {
	Source      string
	Table       *models.Table
	Loaded      int
	Excluded    int
	Diagnostics []models.Diagnostic
}

// Empty reports whether no row survived filtering.
func (r *Result) Empty() bool {
	return r.Table == nil || r.Table.Len() == 0
}

// Pipeline processes ledger files.
type Pipeline struct {
	parser.BaseParser
	resolver *vendorlookup.Resolver
	opts     Options
}

// NewPipeline creates a Pipeline. A nil resolver uses the default vendor table.
func NewPipeline(resolver *vendorlookup.Resolver, opts Options, logger logging.Logger) *Pipeline {
	base := parser.NewBaseParser(logger)
	if resolver == nil {
		resolver = vendorlookup.NewResolver(vendorlookup.DefaultLookupTable(), base.GetLogger())
	}
	return &Pipeline{BaseParser: base, resolver: resolver, opts: opts}
}

// Options returns the pipeline's options.
func (p *Pipeline) Options() Options { return p.opts }

// Process loads the ledger at path and returns the filtered table.
// An unsupported extension, an unreadable file or a missing operation column
// is an error; every other problem is reported in Result.Diagnostics.
func (p *Pipeline) Process(path string) (*Result, error) {
	logger := p.GetLogger().WithField(logging.FieldInputFile, path)
	diags := parser.NewBaseParser(logger).NewDiagnostics()
	name := filepath.Base(path)

	table, err := p.load(path, name, diags)
	if err != nil {
		return nil, err
	}
	if !table.HasColumn(models.LedgerOperation) {
		return nil, &parsererror.MissingColumnError{FilePath: path, Column: models.LedgerOperation}
	}
	logger.Info("Ledger loaded", logging.F(logging.FieldCount, table.Len()))

	p.resolveVendors(table, name, diags)
	p.coerceNumericColumns(table, name, diags)
	p.synthesizeColumns(table, name, diags)

	filtered := p.filter(table)
	result := &Result{
		Source:      path,
		Table:       filtered,
		Loaded:      table.Len(),
		Excluded:    table.Len() - filtered.Len(),
		Diagnostics: diags.Items(),
	}
	logger.Info("Ledger filtered",
		logging.F(logging.FieldCount, filtered.Len()),
		logging.F(logging.FieldSkipped, result.Excluded))
	return result, nil
}

func (p *Pipeline) load(path, name string, diags *parser.Diagnostics) (*models.Table, error) {
	switch ext := fileutils.Extension(path); ext {
	case ExtensionCSV:
		f, err := fileutils.OpenFile(path)
		if err != nil {
			return nil, &parsererror.ParseError{Parser: "ledger", File: path, Err: err}
		}
		defer func() { _ = f.Close() }()

		table, skipped, err := ReadCSV(f, p.opts)
		if err != nil {
			return nil, &parsererror.ParseError{Parser: "ledger", File: path, Err: err}
		}
		for _, s := range skipped {
			diags.Add(models.Diagnostic{File: name, Row: s.Line, Kind: models.DiagnosticMalformedLine, Message: s.Reason})
		}
		return table, nil

	case ExtensionXLSX:
		wb, err := workbook.Open(path)
		if err != nil {
			return nil, &parsererror.ParseError{Parser: "ledger", File: path, Err: err}
		}
		defer func() { _ = wb.Close() }()

		_, grid, err := wb.FirstGrid()
		if err != nil {
			return nil, &parsererror.ParseError{Parser: "ledger", File: path, Err: err}
		}
		return ReadGrid(grid), nil

	default:
		return nil, &parsererror.UnsupportedFormatError{
			FilePath:  path,
			Extension: ext,
			Supported: []string{ExtensionCSV, ExtensionXLSX},
		}
	}
}

func (p *Pipeline) resolveVendors(table *models.Table, name string, diags *parser.Diagnostics) {
	table.SetColumn(models.LedgerVendor, func(row models.RowView) any {
		v, err := p.resolver.TryResolve(row)
		if err != nil {
			diags.Add(models.Diagnostic{File: name, Row: row.Index() + 1, Kind: models.DiagnosticVendorError, Message: err.Error()})
			return nil
		}
		return v
	})
}

func (p *Pipeline) coerceNumericColumns(table *models.Table, name string, diags *parser.Diagnostics) {
	for _, column := range p.opts.NumericColumns {
		err := table.MapColumn(column, func(v any) any { return numconv.Coerce(v) })
		if err != nil {
			diags.Add(models.Diagnostic{
				File:    name,
				Kind:    models.DiagnosticMissingColumn,
				Message: fmt.Sprintf("numeric column %q not found, left as is", column),
			})
		}
	}
}

func (p *Pipeline) synthesizeColumns(table *models.Table, name string, diags *parser.Diagnostics) {
	marker := p.opts.LoadedMarker
	table.SetColumn(models.LedgerLoaded, func(models.RowView) any { return marker })
	p.echoColumn(table, models.LedgerQuantity, models.LedgerLoadedQuantity, name, diags)
	p.echoColumn(table, models.LedgerDate, models.LedgerLoadedDate, name, diags)
}

func (p *Pipeline) echoColumn(table *models.Table, source, target, name string, diags *parser.Diagnostics) {
	if !table.HasColumn(source) {
		diags.Add(models.Diagnostic{
			File:    name,
			Kind:    models.DiagnosticMissingColumn,
			Message: fmt.Sprintf("column %q not found, %q left empty", source, target),
		})
	}
	table.SetColumn(target, func(row models.RowView) any {
		v, _ := row.Value(source)
		return v
	})
}

func (p *Pipeline) filter(table *models.Table) *models.Table {
	prefix := p.opts.ExclusionPrefix
	return table.Filter(func(row models.RowView) bool {
		if prefix == "" {
			return true
		}
		operation, isText := row.String(models.LedgerOperation)
		return !isText || !strings.HasPrefix(operation, prefix)
	})
}
