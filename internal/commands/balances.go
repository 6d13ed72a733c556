package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/homeledger-dev/homeledger/internal/ledger"
	"github.com/homeledger-dev/homeledger/internal/model"
)

func newBalancesCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show subtree balances for every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBalances(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "ledger directory")

	return cmd
}

func runBalances(dir string) error {
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
	for _, re := range rowErrs {
		fmt.Fprintf(os.Stderr, "warning: %s\n", re.Error())
	}

	rows := ledger.FlattenedBalances(accts, txns)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tTYPE\tBALANCE\tBUDGET")
	for _, row := range rows {
		balance := row.Balance
		// Liability subtotals are naturally negative under the
		// debit/credit convention; flip the sign for display only.
		if row.Type == model.AccountTypeLiability {
			balance = balance.Neg()
		}
		budget := ""
		if !row.Budget.IsZero() {
			budget = row.Budget.StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, row.Type, balance.StringFixed(2), budget)
	}
	return w.Flush()
}
