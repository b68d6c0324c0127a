// Package remove handles record deletion
package remove

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/models"
)

var (
	kindFlag string
	idFlag   int
)

// Cmd represents the remove command
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a record",
	Long:  `Remove deletes a record and drops its entry from the transaction feed.`,
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().StringVar(&kindFlag, "kind", "", "Record kind (receivable or payable)")
	Cmd.Flags().IntVar(&idFlag, "id", 0, "Record id")
}

func removeFunc(cmd *cobra.Command, args []string) {
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

	switch kind {
	case models.KindReceivable:
		err = l.Receivables().Delete(idFlag)
	case models.KindPayable:
		err = l.Payables().Delete(idFlag)
	}
	if err != nil {
		root.Log.Fatalf("Error removing record: %v", err)
	}
	l.RecordActivity("remove", kind, "")
	cmd.Printf("Removed %s %d\n", kind, idFlag)
}
