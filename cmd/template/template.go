// Package template handles the import template command
package template

import (
	"github.com/spf13/cobra"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/internal/xlsx"
)

// defaultPath is used when no --output is given.
const defaultPath = "arap-template.xlsx"

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write the bilingual import template workbook",
	Long: `Template writes an Excel workbook with the expected receivable and
payable sheets, their column headers and a few sample rows. Fill it in and
feed it back through the import command.`,
	Run: templateFunc,
}

func templateFunc(cmd *cobra.Command, args []string) {
	path := root.SharedFlags.Output
	if path == "" {
		path = defaultPath
	}
	if err := xlsx.WriteTemplate(path, root.Log); err != nil {
		root.Log.Fatalf("Error writing template: %v", err)
	}
	cmd.Printf("Template written to %s\n", path)
}
