package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/accounts"
	"github.com/homeledger-dev/homeledger/internal/model"
)

// BalanceRow is one account's aggregate, independent of tree position.
type BalanceRow struct {
	ID      string
	Name    string
	Type    model.AccountType
	Balance decimal.Decimal // subtree balance: own plus all descendants
	Budget  decimal.Decimal
}

// AccountBalance sums every split booked directly against accountID.
// Liability balances come out naturally negative under the debit/credit
// convention; sign presentation is the caller's concern.
func AccountBalance(accountID string, txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		for _, s := range txn.Splits {
			if s.AccountID == accountID {
				total = total.Add(s.Amount)
			}
		}
	}
	return total
}

// SubtreeBalance is an account's own balance plus the subtree balances
// of its direct children.
func SubtreeBalance(acct model.Account, accts []model.Account, txns []model.Transaction) decimal.Decimal {
	return subtreeTotals(accts, txns)[acct.ID]
}

// FlattenedBalances returns one row per account, in input order, each
// carrying its subtree balance. All totals come from a single bottom-up
// pass over the parent index instead of one recursive walk per account.
func FlattenedBalances(accts []model.Account, txns []model.Transaction) []BalanceRow {
	totals := subtreeTotals(accts, txns)
	rows := make([]BalanceRow, 0, len(accts))
	for _, a := range accts {
		rows = append(rows, BalanceRow{
			ID:      a.ID,
			Name:    a.Name,
			Type:    a.Type,
			Balance: totals[a.ID],
			Budget:  a.Budget,
		})
	}
	return rows
}

// subtreeTotals aggregates every account's subtree balance in one pass:
// direct balances from a single scan of the splits, then a post-order
// walk over the child index. The in-progress set breaks parent cycles.
func subtreeTotals(accts []model.Account, txns []model.Transaction) map[string]decimal.Decimal {
	own := make(map[string]decimal.Decimal, len(accts))
	for _, txn := range txns {
		for _, s := range txn.Splits {
			own[s.AccountID] = own[s.AccountID].Add(s.Amount)
		}
	}

	idx := accounts.ChildIndex(accts)
	totals := make(map[string]decimal.Decimal, len(accts))
	inProgress := make(map[string]bool)

	var walk func(a model.Account) decimal.Decimal
	walk = func(a model.Account) decimal.Decimal {
		if t, done := totals[a.ID]; done {
			return t
		}
		if inProgress[a.ID] {
			return decimal.Zero
		}
		inProgress[a.ID] = true
		total := own[a.ID]
		for _, child := range idx[a.ID] {
			total = total.Add(walk(child))
		}
		totals[a.ID] = total
		return total
	}

	for _, a := range idx[""] {
		walk(a)
	}
	// Accounts trapped in a parent cycle are unreachable from any root;
	// still give them totals so every account has a row.
	for _, a := range accts {
		if _, done := totals[a.ID]; !done {
			walk(a)
		}
	}
	return totals
}
