package accounts

import (
	"github.com/shopspring/decimal"

	"github.com/homeledger-dev/homeledger/internal/model"
)

// DefaultChart returns the starter chart of accounts for a new ledger.
func DefaultChart() []model.Account {
	budget := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []model.Account{
		{ID: "checking", Name: "Checking", Type: model.AccountTypeAsset},
		{ID: "savings", Name: "Savings", Type: model.AccountTypeAsset},
		{ID: "credit-card", Name: "Credit Card", Type: model.AccountTypeLiability},
		{ID: "opening-balances", Name: "Opening Balances", Type: model.AccountTypeEquity},
		{ID: "salary", Name: "Salary", Type: model.AccountTypeIncome},
		{ID: "housing", Name: "Housing", Type: model.AccountTypeExpense},
		{ID: "rent", ParentID: "housing", Name: "Rent", Type: model.AccountTypeExpense, Budget: budget(1500)},
		{ID: "utilities", ParentID: "housing", Name: "Utilities", Type: model.AccountTypeExpense, Budget: budget(200)},
		{ID: "food", Name: "Food", Type: model.AccountTypeExpense},
		{ID: "groceries", ParentID: "food", Name: "Groceries", Type: model.AccountTypeExpense, Budget: budget(500)},
		{ID: "dining-out", ParentID: "food", Name: "Dining Out", Type: model.AccountTypeExpense, Budget: budget(150)},
		{ID: "uncategorized", Name: "Uncategorized", Type: model.AccountTypeExpense},
	}
}
