package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Check       int
	TxnID       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("check %d [%s]: %s", e.Check, e.TxnID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id string) bool
}

// ValidateTransactions checks 4 invariants over a transaction set.
// The engine itself never rejects transactions on any of these; this is
// how downstream consumers detect and flag the bad ones.
func ValidateTransactions(txns []model.Transaction, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Check 1: splits sum to zero within tolerance.
	for _, txn := range txns {
		total := decimal.Zero
		for _, s := range txn.Splits {
			total = total.Add(s.Amount)
		}
		if total.Abs().GreaterThan(model.BalanceTolerance) {
			errs = append(errs, ValidationError{
				Check:       1,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("splits sum to %s, not zero", total),
			})
		}
	}

	for _, txn := range txns {
		// Check 2: at least two splits per transaction.
		if len(txn.Splits) < 2 {
			errs = append(errs, ValidationError{
				Check:       2,
				TxnID:       txn.ID,
				Description: fmt.Sprintf("%d split(s), double-entry needs at least 2", len(txn.Splits)),
			})
		}

		// Check 3: valid account references.
		for _, s := range txn.Splits {
			if !accounts.Exists(s.AccountID) {
				errs = append(errs, ValidationError{
					Check:       3,
					TxnID:       txn.ID,
					Description: fmt.Sprintf("unknown account %q", s.AccountID),
				})
			}
		}
	}

	// Check 4: unique transaction IDs.
	seen := make(map[string]bool, len(txns))
	for _, txn := range txns {
		if seen[txn.ID] {
			errs = append(errs, ValidationError{
				Check:       4,
				TxnID:       txn.ID,
				Description: "duplicate transaction ID",
			})
		}
		seen[txn.ID] = true
	}

	return errs
}
