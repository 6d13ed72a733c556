package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeEquity    AccountType = "equity"
)

// Account is one node in the chart of accounts. Accounts form a forest
// keyed by ParentID; an empty ParentID marks a root. A child's type is
// expected to match its root's type but this is not enforced — traversal
// code has to cope with mixed hierarchies.
type Account struct {
	ID       string          `json:"id"`
	ParentID string          `json:"parentId,omitempty"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Budget   decimal.Decimal `json:"budget,omitzero"`
}
