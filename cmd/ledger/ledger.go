// Package ledger handles the ledger filtering command
package ledger

import (
	"fjacquet/notas-pedidos/cmd/common"
	"fjacquet/notas-pedidos/cmd/root"
	"fjacquet/notas-pedidos/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the ledger command
var Cmd = &cobra.Command{
	Use:   "ledger",
	Short: "Filter a ledger export and resolve vendors",
	Long: `Filter a ledger export (.csv or .xlsx) and resolve the vendor of each row.

The vendor is taken from the invoice code embedded in the Operación column. Numeric
columns are normalized, load-tracking columns are added and rows whose operation starts
with the exclusion prefix are dropped.

Example:
  notas-pedidos ledger -i movimientos.csv -o filtrado.xlsx`,
	RunE: ledgerFunc,
}

func ledgerFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return common.ErrContainerNotInitialized
	}
	log := appContainer.GetLogger()
	log.Info("Ledger command called",
		logging.F(logging.FieldInputFile, root.SharedFlags.Input),
		logging.F(logging.FieldOutputFile, root.SharedFlags.Output))

	result, err := appContainer.GetLedgerPipeline().Process(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	exp := appContainer.GetExporter()
	outcome, path, err := exp.ExportTable(result.Table, root.SharedFlags.Output)
	if err != nil {
		return err
	}
	return common.Finish(cmd.OutOrStdout(), exp, outcome, path, result.Diagnostics, root.SharedFlags.Report, log)
}
