package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeledger-dev/homeledger/internal/model"
)

func txn(id string, createdAt int64, splits ...model.Split) model.Transaction {
	return model.Transaction{
		ID:        id,
		Date:      day("2024-01-01"),
		CreatedAt: createdAt,
		Splits:    splits,
	}
}

func split(accountID, amount string) model.Split {
	return model.Split{AccountID: accountID, Amount: dec(amount)}
}

func TestAccountBalance(t *testing.T) {
	txns := []model.Transaction{
		txn("t1", 1, split("checking", "100"), split("salary", "-100")),
		txn("t2", 2, split("checking", "-30"), split("groceries", "30")),
	}

	assert.True(t, AccountBalance("checking", txns).Equal(dec("70")))
	assert.True(t, AccountBalance("salary", txns).Equal(dec("-100")))
	assert.True(t, AccountBalance("groceries", txns).Equal(dec("30")))
	assert.True(t, AccountBalance("unused", txns).IsZero())
}

func TestSubtreeBalance_ChildRollsUpToParent(t *testing.T) {
	// A(root) <- B(child); a single 100 split on B shows on both.
	accts := []model.Account{
		{ID: "A", Name: "A", Type: model.AccountTypeAsset},
		{ID: "B", ParentID: "A", Name: "B", Type: model.AccountTypeAsset},
	}
	txns := []model.Transaction{txn("t1", 1, split("B", "100"))}

	rows := FlattenedBalances(accts, txns)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(dec("100")), "A: got %s", rows[0].Balance)
	assert.True(t, rows[1].Balance.Equal(dec("100")), "B: got %s", rows[1].Balance)
}

func TestFlattenedBalances_Identity(t *testing.T) {
	accts := []model.Account{
		{ID: "assets", Name: "Assets", Type: model.AccountTypeAsset},
		{ID: "checking", ParentID: "assets", Name: "Checking", Type: model.AccountTypeAsset},
		{ID: "savings", ParentID: "assets", Name: "Savings", Type: model.AccountTypeAsset},
		{ID: "salary", Name: "Salary", Type: model.AccountTypeIncome},
	}
	txns := []model.Transaction{
		txn("t1", 1, split("checking", "250"), split("salary", "-250")),
		txn("t2", 2, split("savings", "40"), split("checking", "-40")),
	}

	rows := FlattenedBalances(accts, txns)
	byID := make(map[string]BalanceRow)
	for _, r := range rows {
		byID[r.ID] = r
	}

	// Leaf rows equal the direct account balance.
	for _, leaf := range []string{"checking", "savings", "salary"} {
		assert.True(t, byID[leaf].Balance.Equal(AccountBalance(leaf, txns)), leaf)
	}

	// Internal rows equal own balance plus direct children's rows.
	wantAssets := AccountBalance("assets", txns).
		Add(byID["checking"].Balance).
		Add(byID["savings"].Balance)
	assert.True(t, byID["assets"].Balance.Equal(wantAssets))

	// Matches the per-call recursive form too.
	assert.True(t, SubtreeBalance(accts[0], accts, txns).Equal(wantAssets))
}

func TestFlattenedBalances_CarriesBudgetAndType(t *testing.T) {
	accts := []model.Account{
		{ID: "rent", Name: "Rent", Type: model.AccountTypeExpense, Budget: dec("1500")},
	}
	rows := FlattenedBalances(accts, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rent", rows[0].Name)
	assert.Equal(t, model.AccountTypeExpense, rows[0].Type)
	assert.True(t, rows[0].Budget.Equal(dec("1500")))
	assert.True(t, rows[0].Balance.IsZero())
}

func TestFlattenedBalances_LiabilityKeepsNaturalSign(t *testing.T) {
	accts := []model.Account{
		{ID: "card", Name: "Card", Type: model.AccountTypeLiability},
		{ID: "groceries", Name: "Groceries", Type: model.AccountTypeExpense},
	}
	// Charge on the card: liability goes negative and stays negative —
	// flipping the sign for display is the consumer's job.
	txns := []model.Transaction{
		txn("t1", 1, split("groceries", "60"), split("card", "-60")),
	}

	rows := FlattenedBalances(accts, txns)
	assert.True(t, rows[0].Balance.Equal(dec("-60")))
}

func TestFlattenedBalances_OrphanCountsOnlyItself(t *testing.T) {
	accts := []model.Account{
		{ID: "top", Name: "Top", Type: model.AccountTypeExpense},
		{ID: "stray", ParentID: "gone", Name: "Stray", Type: model.AccountTypeExpense},
	}
	txns := []model.Transaction{txn("t1", 1, split("stray", "10"), split("top", "5"))}

	rows := FlattenedBalances(accts, txns)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(dec("5")), "orphan must not roll into top")
	assert.True(t, rows[1].Balance.Equal(dec("10")))
}

func TestFlattenedBalances_ParentCycleTerminates(t *testing.T) {
	accts := []model.Account{
		{ID: "a", ParentID: "b", Name: "A", Type: model.AccountTypeAsset},
		{ID: "b", ParentID: "a", Name: "B", Type: model.AccountTypeAsset},
	}
	txns := []model.Transaction{txn("t1", 1, split("a", "10"), split("b", "20"))}

	rows := FlattenedBalances(accts, txns)
	require.Len(t, rows, 2, "every account still gets a row")
}
