// Package store persists the three ledger artifacts under a data
// directory: accounts.json, transactions.csv, recurring.json. The engine
// packages never touch disk; everything goes through here.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/ledger"
	"github.com/homeledger-dev/homeledger/internal/model"
)

const (
	accountsFile     = "accounts.json"
	transactionsFile = "transactions.csv"
	recurringFile    = "recurring.json"
)

// The stored JSON carries amounts and budgets as bare numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Store reads and writes ledger files under a single data directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// LoadAccounts reads accounts.json. A missing file is an empty chart.
func (s *Store) LoadAccounts() ([]model.Account, error) {
	var accts []model.Account
	if err := s.loadJSON(accountsFile, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// SaveAccounts writes accounts.json.
func (s *Store) SaveAccounts(accts []model.Account) error {
	return s.saveJSON(accountsFile, accts)
}

// LoadTransactions reads transactions.csv. Skipped rows are reported in
// the second return value; only an unreadable file is an error.
func (s *Store) LoadTransactions() ([]model.Transaction, []ledger.RowError, error) {
	path := filepath.Join(s.dir, transactionsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading transactions: %w", err)
	}
	txns, rowErrs := ledger.Parse(string(data))
	return txns, rowErrs, nil
}

// SaveTransactions writes transactions.csv.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(s.dir, transactionsFile)
	if err := os.WriteFile(path, []byte(ledger.Serialize(txns)), 0o644); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}

// LoadRecurring reads recurring.json. A missing file means no rules.
func (s *Store) LoadRecurring() ([]model.RecurringTransaction, error) {
	var rules []model.RecurringTransaction
	if err := s.loadJSON(recurringFile, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveRecurring writes recurring.json.
func (s *Store) SaveRecurring(rules []model.RecurringTransaction) error {
	return s.saveJSON(recurringFile, rules)
}

func (s *Store) loadJSON(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	data = append(data, '\n')
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
