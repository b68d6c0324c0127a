// Package activity handles the recent-activity feed command
package activity

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
)

// Cmd represents the activity command
var Cmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent mutations, most recent first",
	Long: `Activity prints the recent-activity feed: imports, additions, edits,
removals and completions, capped to the most recent entries.`,
	Run: activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) {
	l, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "TIME\tACTION\tKIND\tDETAIL")
	for _, entry := range l.Activity() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Time.Format("2006-01-02 15:04"), entry.Action, entry.Kind, entry.Detail)
	}
}
