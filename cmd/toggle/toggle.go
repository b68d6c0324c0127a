// Package toggle handles flipping a record between pending and completed
package toggle

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/models"
)

var (
	kindFlag string
	idFlag   int
)

// Cmd represents the toggle command
var Cmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle a record between pending and completed",
	Long: `Toggle flips the status of a record. The transaction feed is re-derived
afterwards, so a completed record drops out of the pending views.`,
	Run: toggleFunc,
}

func init() {
	Cmd.Flags().StringVar(&kindFlag, "kind", "", "Record kind (receivable or payable)")
	Cmd.Flags().IntVar(&idFlag, "id", 0, "Record id")
}

func toggleFunc(cmd *cobra.Command, args []string) {
	kind, err := models.ParseKind(kindFlag)
	if err != nil {
		root.Log.Fatalf("Error: %v", err)
	}
	if idFlag <= 0 {
		root.Log.Fatalf("Error: --id is required")
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	var status models.Status
	switch kind {
	case models.KindReceivable:
		rec, err := l.Receivables().ToggleStatus(idFlag)
		if err != nil {
			root.Log.Fatalf("Error toggling receivable: %v", err)
		}
		status = rec.Status
		l.RecordActivity("toggle", kind, rec.CustomerName)
	case models.KindPayable:
		rec, err := l.Payables().ToggleStatus(idFlag)
		if err != nil {
			root.Log.Fatalf("Error toggling payable: %v", err)
		}
		status = rec.Status
		l.RecordActivity("toggle", kind, rec.SupplierName)
	}
	cmd.Printf("%s %d is now %s\n", kind, idFlag, status)
}
