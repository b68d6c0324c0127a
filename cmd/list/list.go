// Package list handles the record listing command
package list

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/models"
	"ledgerdesk/arap/internal/repository"
)

var (
	kindFlag   string
	statusFlag string
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List stored receivable and payable records",
	Long: `List prints the stored records of one or both collections, optionally
filtered by status.`,
	Run: listFunc,
}

func init() {
	Cmd.Flags().StringVar(&kindFlag, "kind", "all", "Collection to list (receivable, payable or all)")
	Cmd.Flags().StringVar(&statusFlag, "status", repository.FilterAll, "Status filter (pending, completed or all)")
}

func listFunc(cmd *cobra.Command, args []string) {
	if kindFlag != "all" {
		if _, err := models.ParseKind(kindFlag); err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
	}
	if statusFlag != repository.FilterAll {
		if _, err := models.ParseStatus(statusFlag); err != nil {
			root.Log.Fatalf("Error: %v", err)
		}
	}

	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if kindFlag == "all" || kindFlag == string(models.KindReceivable) {
		fmt.Fprintln(w, "RECEIVABLES")
		fmt.Fprintln(w, "ID\tCUSTOMER\tCONTRACT\tAMOUNT\tDUE\tSTATUS")
		for _, r := range l.Receivables().FilterByStatus(statusFlag) {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.CustomerName, r.ContractNumber, r.Amount.StringFixed(2), r.DueDate, r.Status)
		}
	}
	if kindFlag == "all" || kindFlag == string(models.KindPayable) {
		fmt.Fprintln(w, "PAYABLES")
		fmt.Fprintln(w, "ID\tSUPPLIER\tORDER\tAMOUNT\tDUE\tSTATUS")
		for _, p := range l.Payables().FilterByStatus(statusFlag) {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.SupplierName, p.PurchaseOrder, p.Amount.StringFixed(2), p.DueDate, p.Status)
		}
	}
}
