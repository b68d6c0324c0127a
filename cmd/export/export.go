// Package export handles the workbook and CSV export commands
package export

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/xlsx"
)

var transactionsCSV string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored collections to an Excel workbook",
	Long: `Export writes both stored collections to a two-sheet Excel workbook in
the template layout. With --transactions-csv the derived transaction feed
is additionally written as a CSV file.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVar(&transactionsCSV, "transactions-csv", "", "Also write the transaction feed to this CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Output == "" {
		root.Log.Fatalf("Error: --output workbook is required")
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	if err := xlsx.ExportFile(root.SharedFlags.Output, l.Receivables().Records(), l.Payables().Records(), root.Log); err != nil {
		root.Log.Fatalf("Error exporting workbook: %v", err)
	}
	cmd.Printf("Exported %d receivables and %d payables to %s\n",
		l.Receivables().Len(), l.Payables().Len(), root.SharedFlags.Output)

	if transactionsCSV != "" {
		transactions := l.Transactions()
		if err := xlsx.WriteTransactionsCSV(transactionsCSV, transactions, root.Log); err != nil {
			root.Log.Fatalf("Error writing transactions CSV: %v", err)
		}
		cmd.Printf("Wrote %d transactions to %s\n", len(transactions), transactionsCSV)
	}
}
