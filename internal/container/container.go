// Package container provides dependency injection for the notas-pedidos application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/notas-pedidos/internal/config"
	"fjacquet/notas-pedidos/internal/exporter"
	"fjacquet/notas-pedidos/internal/ledgerparser"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/orderparser"
	"fjacquet/notas-pedidos/internal/vendorlookup"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	resolver     *vendorlookup.Resolver
	consolidator *orderparser.Consolidator
	ledger       *ledgerparser.Pipeline
	exporter     *exporter.Exporter
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithLogger(cfg, nil)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
// A nil logger is built from the configuration.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	table, err := vendorlookup.LoadLookupTable(cfg.Vendor.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor table: %w", err)
	}
	resolver := vendorlookup.NewResolver(table, logger)

	consolidator := orderparser.NewConsolidator(orderparser.NewExtractor(OrderLayout(cfg)), logger)
	ledger := ledgerparser.NewPipeline(resolver, LedgerOptions(cfg), logger)
	exp := exporter.NewExporter(ExportOptions(cfg), logger)

	logger.Debug("Container initialized",
		logging.F(logging.FieldCount, table.Len()),
		logging.F(logging.FieldEncoding, cfg.Ledger.Encoding),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter),
		logging.F(logging.FieldFormat, cfg.Log.Format))

	return &Container{
		logger:       logger,
		config:       cfg,
		resolver:     resolver,
		consolidator: consolidator,
		ledger:       ledger,
		exporter:     exp,
	}, nil
}

// OrderLayout returns the order sheet layout adjusted by the configuration.
func OrderLayout(cfg *config.Config) orderparser.Layout {
	layout := orderparser.DefaultLayout()
	layout.CollapseBlankRows = cfg.Orders.CollapseBlankRows
	return layout
}

// LedgerOptions maps the configuration onto ledger pipeline options.
func LedgerOptions(cfg *config.Config) ledgerparser.Options {
	opts := ledgerparser.DefaultOptions()
	opts.Delimiter = config.Rune(cfg.Ledger.Delimiter)
	opts.Encoding = cfg.Ledger.Encoding
	opts.ExclusionPrefix = cfg.Ledger.ExclusionPrefix
	opts.LoadedMarker = cfg.Ledger.LoadedMarker
	if len(cfg.Ledger.NumericColumns) > 0 {
		opts.NumericColumns = append([]string(nil), cfg.Ledger.NumericColumns...)
	}
	return opts
}

// ExportOptions maps the configuration onto exporter options.
func ExportOptions(cfg *config.Config) exporter.Options {
	opts := exporter.DefaultOptions()
	opts.Delimiter = config.Rune(cfg.CSV.Delimiter)
	if cfg.Export.DateFormat != "" {
		opts.DateFormat = cfg.Export.DateFormat
	}
	return opts
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetResolver returns the vendor resolver.
func (c *Container) GetResolver() *vendorlookup.Resolver {
	return c.resolver
}

// GetConsolidator returns the order workbook consolidator.
func (c *Container) GetConsolidator() *orderparser.Consolidator {
	return c.consolidator
}

// GetLedgerPipeline returns the ledger pipeline.
func (c *Container) GetLedgerPipeline() *ledgerparser.Pipeline {
	return c.ledger
}

// GetExporter returns the table exporter.
func (c *Container) GetExporter() *exporter.Exporter {
	return c.exporter
}
