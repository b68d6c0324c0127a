// Package complete handles settling a transaction-feed entry
package complete

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
)

// Cmd represents the complete command
var Cmd = &cobra.Command{
	Use:   "complete <transaction-id>",
	Short: "Mark a transaction as completed by its feed id",
	Long: `Complete settles a transaction-feed entry, such as receivable-3 or
payable-1. The change is applied to the underlying record; the feed is
re-derived from it. Completing an already-completed transaction is a no-op.`,
	Args: cobra.ExactArgs(1),
	Run:  completeFunc,
}

func completeFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	tx, err := l.CompleteTransaction(args[0])
	if err != nil {
		root.Log.Fatalf("Error completing transaction: %v", err)
	}
	cmd.Printf("%s (%s, %s) is now %s\n", tx.ID, tx.Counterparty, tx.Amount.StringFixed(2), tx.Status)
}
