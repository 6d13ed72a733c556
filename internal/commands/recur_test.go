package commands

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger-dev/homeledger/internal/auditlog"
	"github.com/homeledger-dev/homeledger/internal/date"
	"github.com/homeledger-dev/homeledger/internal/model"
)

func day(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	require.NoError(t, err)
	return d
}

func setupLedgerWithRule(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Household", true))

	_, st, err := openLedger(dir)
	require.NoError(t, err)

	rule := model.RecurringTransaction{
		ID:          "rule-rent",
		Frequency:   model.FrequencyMonthly,
		NextDueDate: day(t, "2024-02-01"),
		Payee:       "Landlord",
		Description: "Rent",
		Splits: []model.Split{
			{AccountID: "rent", Amount: decimal.NewFromInt(1500)},
			{AccountID: "checking", Amount: decimal.NewFromInt(-1500)},
		},
		Active: true,
	}
	require.NoError(t, st.SaveRecurring([]model.RecurringTransaction{rule}))
	return dir
}

func TestRunRecur_MaterializesAndPersists(t *testing.T) {
	dir := setupLedgerWithRule(t)

	require.NoError(t, runRecur(dir, day(t, "2024-02-10"), ""))

	_, st, err := openLedger(dir)
	require.NoError(t, err)

	txns, rowErrs, err := st.LoadTransactions()
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, txns, 1)
	assert.Equal(t, "2024-02-01", txns[0].Date.String())
	assert.Equal(t, "Rent (recurring)", txns[0].Description)
	assert.True(t, txns[0].IsBalanced())

	rules, err := st.LoadRecurring()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "2024-03-01", rules[0].NextDueDate.String())
	assert.Equal(t, "2024-02-01", rules[0].LastRun.String())

	entries, err := auditlog.Read(st.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recur-run", entries[0].Action)
	assert.Equal(t, txns[0].ID, entries[0].RefID)
}

func TestRunRecur_SecondRunEmitsNothing(t *testing.T) {
	dir := setupLedgerWithRule(t)
	today := day(t, "2024-02-10")

	require.NoError(t, runRecur(dir, today, ""))
	require.NoError(t, runRecur(dir, today, ""))

	_, st, err := openLedger(dir)
	require.NoError(t, err)

	txns, _, err := st.LoadTransactions()
	require.NoError(t, err)
	assert.Len(t, txns, 1, "second run with the same today must not duplicate")
}

func TestRunRecur_CatchUpOverride(t *testing.T) {
	dir := setupLedgerWithRule(t)

	require.NoError(t, runRecur(dir, day(t, "2024-04-15"), "all"))

	_, st, err := openLedger(dir)
	require.NoError(t, err)

	txns, _, err := st.LoadTransactions()
	require.NoError(t, err)
	assert.Len(t, txns, 3, "feb, mar, apr")
}
