package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homeledger-dev/homeledger/internal/accounts"
	"github.com/homeledger-dev/homeledger/internal/ledger"
)

func newValidateCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the ledger for inconsistencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runValidate(dir string) error {
	_, st, err := openLedger(dir)
	if err != nil {
		return err
	}

	accts, err := st.LoadAccounts()
	if err != nil {
		return err
	}
	txns, rowErrs, err := st.LoadTransactions()
	if err != nil {
		return err
	}

	problems := 0

	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "row: %s\n", re.Error())
		problems++
	}

	_, treeWarnings := accounts.BuildForest(accts)
	treeWarnings = append(treeWarnings, accounts.TypeMismatches(accts)...)
	for _, a := range accts {
		_, pathWarnings := accounts.Path(a, accts)
		treeWarnings = append(treeWarnings, pathWarnings...)
	}
	for _, w := range treeWarnings {
		fmt.Fprintf(os.Stderr, "chart: %s\n", w)
		problems++
	}

	svc := accounts.NewService(accts)
	for _, ve := range ledger.ValidateTransactions(txns, svc) {
		fmt.Fprintf(os.Stderr, "transaction: %s\n", ve.Error())
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("Ledger is clean.")
	return nil
}
