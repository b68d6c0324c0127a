// Package importer handles the workbook import command
package importer

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/normalizer"
	"ledgerdesk/arap/internal/xlsx"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import receivables and payables from an Excel workbook",
	Long: `Import reads the receivable and payable sheets of an Excel workbook,
normalizes the rows and replaces both stored collections with the result.
Column headers are matched against the known aliases in either language.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatalf("Error: --input workbook is required")
	}
	root.Log.Info("Workbook import command called")

	if root.SharedFlags.Validate {
		ok, err := xlsx.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error validating workbook: %v", err)
		}
		if !ok {
			root.Log.Fatalf("Error: %s is not a readable workbook", root.SharedFlags.Input)
		}
	}

	result, err := xlsx.ParseFile(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.Fatalf("Error parsing workbook: %v", err)
	}

	receivables := normalizer.NormalizeReceivables(result.ReceivableRows)
	payables := normalizer.NormalizePayables(result.PayableRows)

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	if err := l.ImportWorkbook(result.SourceFile, receivables, payables); err != nil {
		root.Log.Fatalf("Error importing workbook: %v", err)
	}

	cmd.Printf("Imported %d receivables and %d payables from %s\n",
		len(receivables), len(payables), result.SourceFile)
}
