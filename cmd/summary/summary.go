// Package summary handles the aging summary report command
package summary

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/report"
)

var format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the aging summary of pending amounts",
	Long: `Summary buckets pending amounts by how close to due they are: overdue,
due this week, due next week, later. Totals are reported per collection
together with the net position.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVar(&format, "format", "text", "Output format (text or json)")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	out, err := report.NewGenerator(root.Log).Generate(report.Build(l.Transactions()), format)
	if err != nil {
		root.Log.Fatalf("Error generating summary: %v", err)
	}
	cmd.Print(string(out))
	if len(out) > 0 && out[len(out)-1] != '\n' {
		cmd.Println()
	}
}
