// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"

	"fjacquet/notas-pedidos/internal/config"
	"fjacquet/notas-pedidos/internal/container"
	"fjacquet/notas-pedidos/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Report string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired dependencies once PersistentPreRunE has run.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "notas-pedidos",
		Short: "A CLI tool to consolidate order notes and filter ledger exports.",
		Long: `notas-pedidos consolidates order note workbooks ("notas de pedido") into one flat table.
It also filters ledger exports, resolving the vendor from the invoice code in each operation.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to notas-pedidos!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initContainer()
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the config.yaml search.
	ConfigFile string

	// LogLevel overrides log.level from the configuration.
	LogLevel string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (.xlsx or .csv)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Report, "report", "r", "", "Write a CSV report of skipped items")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.notas-pedidos, .notas-pedidos and .)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
}

func initContainer() error {
	cfg, err := config.InitializeConfigFrom(ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if LogLevel != "" {
		cfg.Log.Level = strings.ToLower(LogLevel)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the application container, nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the shared command logger.
func GetLogger() logging.Logger {
	return Log
}
