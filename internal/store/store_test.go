package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger-dev/homeledger/internal/date"
	"github.com/homeledger-dev/homeledger/internal/model"
)

func day(s string) date.Date {
	d, err := date.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestMissingFilesAreEmpty(t *testing.T) {
	st := New(t.TempDir())

	accts, err := st.LoadAccounts()
	require.NoError(t, err)
	assert.Empty(t, accts)

	txns, rowErrs, err := st.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.Empty(t, rowErrs)

	rules, err := st.LoadRecurring()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestAccountsRoundTrip(t *testing.T) {
	st := New(t.TempDir())

	accts := []model.Account{
		{ID: "food", Name: "Food", Type: model.AccountTypeExpense},
		{ID: "groceries", ParentID: "food", Name: "Groceries", Type: model.AccountTypeExpense, Budget: dec("500")},
	}
	require.NoError(t, st.SaveAccounts(accts))

	got, err := st.LoadAccounts()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "food", got[1].ParentID)
	assert.True(t, got[1].Budget.Equal(dec("500")))
}

func TestAccountsJSONShape(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	require.NoError(t, st.SaveAccounts([]model.Account{
		{ID: "rent", ParentID: "housing", Name: "Rent", Type: model.AccountTypeExpense, Budget: dec("1500")},
	}))

	data, err := os.ReadFile(filepath.Join(dir, "accounts.json"))
	require.NoError(t, err)

	text := string(data)
	// Budgets are stored as bare numbers, not quoted strings.
	assert.Contains(t, text, `"budget": 1500`)
	assert.Contains(t, text, `"parentId": "housing"`)
	assert.NotContains(t, text, `"budget": "1500"`)
}

func TestTransactionsRoundTrip(t *testing.T) {
	st := New(t.TempDir())

	txns := []model.Transaction{
		{
			ID:        "t1",
			Date:      day("2024-01-15"),
			Payee:     "Employer",
			CreatedAt: 100,
			Splits: []model.Split{
				{AccountID: "checking", Amount: dec("3000")},
				{AccountID: "salary", Amount: dec("-3000")},
			},
		},
	}
	require.NoError(t, st.SaveTransactions(txns))

	got, rowErrs, err := st.LoadTransactions()
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
	assert.Len(t, got[0].Splits, 2)
}

func TestTransactionsDamagedRowsReported(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	text := "Transaction ID,Date,Created At,Payee,Description,Account ID,Amount\n" +
		"t1,2024-01-01,100,\"P\",\"D\",checking,10\n" +
		"junk,row\n" +
		"t1,2024-01-01,100,\"P\",\"D\",salary,-10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(text), 0o644))

	got, rowErrs, err := st.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, rowErrs, 1)
	assert.True(t, strings.Contains(rowErrs[0].Error(), "malformed"))
}

func TestRecurringRoundTrip(t *testing.T) {
	st := New(t.TempDir())

	rules := []model.RecurringTransaction{
		{
			ID:          "r1",
			Frequency:   model.FrequencyMonthly,
			NextDueDate: day("2024-02-01"),
			Payee:       "Landlord",
			Description: "Rent",
			Splits: []model.Split{
				{AccountID: "rent", Amount: dec("1500")},
				{AccountID: "checking", Amount: dec("-1500")},
			},
			Active: true,
		},
	}
	require.NoError(t, st.SaveRecurring(rules))

	got, err := st.LoadRecurring()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.FrequencyMonthly, got[0].Frequency)
	assert.Equal(t, "2024-02-01", got[0].NextDueDate.String())
	assert.True(t, got[0].LastRun.IsZero())
	assert.True(t, got[0].Active)
}
