package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"ledgerdesk/arap/cmd/activity"
	"ledgerdesk/arap/cmd/add"
	"ledgerdesk/arap/cmd/complete"
	"ledgerdesk/arap/cmd/edit"
	"ledgerdesk/arap/cmd/export"
	"ledgerdesk/arap/cmd/importer"
	"ledgerdesk/arap/cmd/list"
	"ledgerdesk/arap/cmd/remove"
	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/cmd/summary"
	"ledgerdesk/arap/cmd/template"
	"ledgerdesk/arap/cmd/toggle"
	"ledgerdesk/arap/cmd/upcoming"
)

func init() {
	// Load environment variables before any command wiring, so flags and
	// config see them.
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(importer.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(template.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(toggle.Cmd)
	root.Cmd.AddCommand(complete.Cmd)
	root.Cmd.AddCommand(upcoming.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(activity.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
