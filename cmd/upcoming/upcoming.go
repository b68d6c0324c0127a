// Package upcoming handles the pending-payments view
package upcoming

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/projector"
)

var days int

// Cmd represents the upcoming command
var Cmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show pending transactions due within a window, most urgent first",
	Long: `Upcoming lists the pending transaction feed ordered by urgency, limited
to entries due within the given number of days. Overdue entries are always
included; entries without a due date never are.`,
	Run: upcomingFunc,
}

func init() {
	Cmd.Flags().IntVar(&days, "days", 7, "Due-date window in days")
}

func upcomingFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tCOUNTERPARTY\tAMOUNT\tDUE\tDAYS\tPRIORITY")
	for _, tx := range projector.PendingByUrgency(l.Transactions()) {
		if tx.DueDate.IsZero() || tx.DaysRemaining > days {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			tx.ID, tx.Counterparty, tx.Amount.StringFixed(2), tx.DueDate, tx.DaysRemaining, tx.Priority)
	}
}
