// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/notas-pedidos/internal/exporter"
	"fjacquet/notas-pedidos/internal/logging"
	"fjacquet/notas-pedidos/internal/models"
)

// ErrContainerNotInitialized is returned when a command runs before the root
// pre-run hook wired the application.
var ErrContainerNotInitialized = errors.New("container not initialized")

// OutcomeMessage renders the user-facing message for an export outcome.
func OutcomeMessage(outcome exporter.Outcome, path string) string {
	switch outcome {
	case exporter.OutcomeExported:
		return fmt.Sprintf("Exported: %s", path)
	case exporter.OutcomeNoResults:
		return "No results: nothing to export"
	case exporter.OutcomeCancelled:
		return "Cancelled: no output file given"
	default:
		return outcome.String()
	}
}

// Finish writes the optional diagnostics report and prints the outcome message.
func Finish(w io.Writer, exp *exporter.Exporter, outcome exporter.Outcome, path string,
	diags []models.Diagnostic, reportPath string, log logging.Logger) error {
	if len(diags) > 0 {
		log.Warn("Some items were skipped", logging.F(logging.FieldSkipped, len(diags)))
	}
	if err := exp.WriteDiagnostics(diags, reportPath); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	_, err := fmt.Fprintln(w, OutcomeMessage(outcome, path))
	return err
}
