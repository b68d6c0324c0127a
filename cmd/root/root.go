// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerdesk/arap/internal/config"
	"ledgerdesk/arap/internal/ledger"
	"ledgerdesk/arap/internal/logging"
	"ledgerdesk/arap/internal/normalizer"
	"ledgerdesk/arap/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration
	Cfg = &config.Config{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "arap",
		Short: "A CLI tool to manage accounts receivable and payable with due-date tracking.",
		Long: `arap manages accounts-receivable and accounts-payable records imported
from Excel workbooks. It keeps a derived feed of pending transactions with
due-date urgency classification, and exports workbooks, CSV feeds and aging
summaries. All state is stored as JSON files in a local data directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to arap!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(Cfg)

			if Cfg.Import.Aliases != "" {
				if err := normalizer.LoadAliasOverrides(Cfg.Import.Aliases); err != nil {
					Log.Fatalf("Error loading column alias overrides: %v", err)
				}
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before import")
}

// OpenLedger opens the ledger backed by the configured data directory.
func OpenLedger() (*ledger.Ledger, error) {
	st, err := store.New(Cfg.Data.Dir, Log)
	if err != nil {
		return nil, fmt.Errorf("error opening data directory %s: %w", Cfg.Data.Dir, err)
	}
	l, err := ledger.Open(st, Log)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	return l, nil
}
