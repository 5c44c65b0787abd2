// Package consolidate handles the order note consolidation command
package consolidate

import (
	"fjacquet/notas-pedidos/cmd/common"
	"fjacquet/notas-pedidos/cmd/root"
	"fjacquet/notas-pedidos/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the consolidate command
var Cmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Consolidate order note workbooks",
	Long: `Consolidate every .xlsx order note workbook in the input directory into one table.

Each sheet is read with the fixed order note layout: header fields at fixed cells and
line items below them. Line items with a zero quantity are dropped. Sheets and files that
cannot be read are skipped and listed in the optional report.

Example:
  notas-pedidos consolidate -i pedidos/ -o consolidado.xlsx --report omitidos.csv`,
	RunE: consolidateFunc,
}

func consolidateFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return common.ErrContainerNotInitialized
	}
	log := appContainer.GetLogger()
	log.Info("Consolidate command called",
		logging.F(logging.FieldInputFile, root.SharedFlags.Input),
		logging.F(logging.FieldOutputFile, root.SharedFlags.Output))

	result, err := appContainer.GetConsolidator().Consolidate(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	exp := appContainer.GetExporter()
	outcome, path, err := exp.ExportOrders(result.Records, root.SharedFlags.Output)
	if err != nil {
		return err
	}
	return common.Finish(cmd.OutOrStdout(), exp, outcome, path, result.Diagnostics, root.SharedFlags.Report, log)
}
