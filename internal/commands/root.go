package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homeledger-dev/homeledger/internal/buildinfo"
	"github.com/homeledger-dev/homeledger/internal/config"
	"github.com/homeledger-dev/homeledger/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "homeledger",
		Short:   "Plain-file personal double-entry bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBalancesCommand())
	rootCmd.AddCommand(newRecurCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}

// openLedger resolves a ledger directory into its config and store.
func openLedger(dir string) (*config.Config, *store.Store, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, nil, err
	}

	dataDir := cfg.Ledger.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(absDir, dataDir)
	}
	return cfg, store.New(dataDir), nil
}
