package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homeledger-dev/homeledger/internal/accounts"
	"github.com/homeledger-dev/homeledger/internal/config"
	"github.com/homeledger-dev/homeledger/internal/gitops"
	"github.com/homeledger-dev/homeledger/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(dir, name string, noGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write homeledger.yaml.
	cfg := config.Default(name)
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the starter chart of accounts and empty rule list.
	st := store.New(filepath.Join(dir, cfg.Ledger.DataDir))
	if err := st.SaveAccounts(accounts.DefaultChart()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := st.SaveRecurring(nil); err != nil {
		return fmt.Errorf("writing recurring rules: %w", err)
	}
	if err := st.SaveTransactions(nil); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized ledger %q at %s\n", name, dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized ledger %q at %s (%s)\n", name, dir, hash)
	return nil
}
