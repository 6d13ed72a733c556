package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/date"
)

// Split is one account-amount line item within a transaction.
// Positive amounts are debits, negative amounts are credits.
type Split struct {
	AccountID string          `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
}

// Transaction is a dated double-entry with two or more splits.
// Splits are expected to sum to zero; the engine records unbalanced
// transactions as-is and leaves flagging them to validation.
type Transaction struct {
	ID          string    `json:"id"`
	Date        date.Date `json:"date"`
	Payee       string    `json:"payee,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   int64     `json:"createdAt"` // Unix milliseconds, strictly increasing per ledger
	Splits      []Split   `json:"splits"`
}

// BalanceTolerance is how far from zero a transaction's split total may
// drift before it counts as unbalanced. Kept loose (a cent) because
// imported data may carry float rounding from other tools.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// IsBalanced reports whether the splits sum to zero within tolerance.
func (t Transaction) IsBalanced() bool {
	total := decimal.Zero
	for _, s := range t.Splits {
		total = total.Add(s.Amount)
	}
	return total.Abs().LessThanOrEqual(BalanceTolerance)
}

// BankTransaction is a parsed bank-export CSV row, the raw material the
// importer turns into balanced ledger transactions.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}
