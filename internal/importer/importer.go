// Package importer turns bank CSV exports into balanced ledger
// transactions: one split against the bank account, the offsetting split
// against an income or expense account chosen by sign.
package importer

import (
	"io"
	"strings"

	"github.com/homeledger-dev/homeledger/internal/date"
	"github.com/homeledger-dev/homeledger/internal/model"
)

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// Targets names the accounts an import books against.
type Targets struct {
	BankAccountID string // asset/liability account the statement belongs to
	IncomeID      string // offset for money in
	ExpenseID     string // offset for money out
}

// Convert builds a balanced two-split transaction per bank row. Money in
// debits the bank account and credits the income offset; money out does
// the reverse against the expense offset. IDs and creation timestamps
// come from the passed sources so conversion stays deterministic in
// tests; createdAt increments per transaction to stay monotonic.
func Convert(rows []model.BankTransaction, targets Targets, newID func() string, createdAt int64) []model.Transaction {
	txns := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		offset := targets.ExpenseID
		if row.Amount.IsPositive() {
			offset = targets.IncomeID
		}
		txns = append(txns, model.Transaction{
			ID:          newID(),
			Date:        date.FromTime(row.Date),
			Payee:       row.Description,
			Description: row.Reference,
			CreatedAt:   createdAt,
			Splits: []model.Split{
				{AccountID: targets.BankAccountID, Amount: row.Amount},
				{AccountID: offset, Amount: row.Amount.Neg()},
			},
		})
		createdAt++
	}
	return txns
}
