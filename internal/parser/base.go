// Package parser provides the logging and diagnostics plumbing shared by the
// order and ledger pipelines.
package parser

import (
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
)

// BaseParser provides common functionality for pipeline implementations.
// Pipelines embed it:
//
//	type Consolidator struct {
//		parser.BaseParser
//		// pipeline-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to an info-level text logger.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the logger. nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger.
func (b BaseParser) GetLogger() logging.Logger {
	return b.logger
}

// NewDiagnostics starts a diagnostics list that logs through the parser's logger.
func (b BaseParser) NewDiagnostics() *Diagnostics {
	return &Diagnostics{logger: b.logger}
}

// Diagnostics collects the units of input a single run skipped or degraded.
type Diagnostics struct {
	logger logging.Logger
	items  []models.Diagnostic
}

// Add records d and logs it at warn level.
func (d *Diagnostics) Add(diag models.Diagnostic) {
	d.items = append(d.items, diag)
	if d.logger == nil {
		return
	}
	fields := []logging.Field{
		logging.F(logging.FieldKind, string(diag.Kind)),
		logging.F(logging.FieldFile, diag.File),
	}
	if diag.Sheet != "" {
		fields = append(fields, logging.F(logging.FieldSheet, diag.Sheet))
	}
	if diag.Row > 0 {
		fields = append(fields, logging.F(logging.FieldRow, diag.Row))
	}
	d.logger.Warn(diag.Message, fields...)
}

// Len returns the number of diagnostics collected.
func (d *Diagnostics) Len() int { return len(d.items) }

// Items returns the collected diagnostics in the order they were added.
func (d *Diagnostics) Items() []models.Diagnostic {
	return append([]models.Diagnostic(nil), d.items...)
}
