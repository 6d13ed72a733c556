package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/homeledger-dev/homeledger/internal/auditlog"
	"github.com/homeledger-dev/homeledger/internal/gitops"
	"github.com/homeledger-dev/homeledger/internal/id"
	"github.com/homeledger-dev/homeledger/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var format string
	var bankAccount string
	var incomeAccount string
	var expenseAccount string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := importer.Targets{
				BankAccountID: bankAccount,
				IncomeID:      incomeAccount,
				ExpenseID:     expenseAccount,
			}
			return runImport(dir, args[0], format, targets)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")
	cmd.Flags().StringVar(&format, "format", "chase", "bank CSV format")
	cmd.Flags().StringVar(&bankAccount, "account", "checking", "bank account the statement belongs to")
	cmd.Flags().StringVar(&incomeAccount, "income", "salary", "offset account for money in")
	cmd.Flags().StringVar(&expenseAccount, "expense", "uncategorized", "offset account for money out")

	return cmd
}

func runImport(dir, file, format string, targets importer.Targets) error {
	cfg, st, err := openLedger(dir)
	if err != nil {
		return err
	}

	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file, err)
	}
	if len(rows) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	txns, rowErrs, err := st.LoadTransactions()
	if err != nil {
		return err
	}
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "warning: %s\n", re.Error())
	}

	// Keep createdAt monotonic across the whole ledger.
	createdAt := time.Now().UnixMilli()
	for _, txn := range txns {
		if txn.CreatedAt >= createdAt {
			createdAt = txn.CreatedAt + 1
		}
	}

	imported := importer.Convert(rows, targets, id.New, createdAt)
	if err := st.SaveTransactions(append(txns, imported...)); err != nil {
		return err
	}

	entries := make([]auditlog.Entry, 0, len(imported))
	for _, txn := range imported {
		entries = append(entries, auditlog.Entry{
			Timestamp: time.Now(),
			Action:    "import",
			RefID:     txn.ID,
			Details:   fmt.Sprintf("imported %q from %s", txn.Payee, file),
		})
	}
	if err := auditlog.Append(st.Dir(), entries); err != nil {
		return err
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(dir) {
		msg := fmt.Sprintf("import: %d transaction(s) from %s", len(imported), file)
		if _, err := gitops.CommitAll(dir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d transaction(s).\n", len(imported))
	return nil
}
