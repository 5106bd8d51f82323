package ledger

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLedger opens a fresh database in a temp dir, migrated from the
// repository's migration files, with one user to stamp journal entries.
func newTestLedger(t *testing.T) (*Ledger, *store.Store, *model.User) {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	user := &model.User{Name: "tester"}
	user.ID, err = s.CreateUser(user)
	require.NoError(t, err)

	return New(s), s, user
}

func createAccount(t *testing.T, s *store.Store, name, code string, accType model.AccountType, balance string) *model.Account {
	t.Helper()

	acc := &model.Account{
		Name:    name,
		Code:    code,
		Type:    accType,
		Balance: decimal.RequireFromString(balance),
	}

	id, err := s.CreateAccount(acc)
	require.NoError(t, err)
	acc.ID = id
	return acc
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func balanceOf(t *testing.T, s *store.Store, id int64) decimal.Decimal {
	t.Helper()
	acc, err := s.GetAccountByID(id)
	require.NoError(t, err)
	return acc.Balance
}

func TestPostAssetToLiability(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "0")
	loan := createAccount(t, s, "Loans", "164", model.TypeLiability, "0")

	tx, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-01-15"),
		Description:     "Loan received",
		DebitAccountID:  bank.ID,
		CreditAccountID: loan.ID,
		Amount:          decimal.RequireFromString("100.00"),
		UserID:          user.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.NotNil(t, tx.Journal)
	assert.Equal(t, user.ID, tx.Journal.UserID)

	// Debiting the asset grows it; crediting the liability grows it too.
	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("100")))
	assert.True(t, balanceOf(t, s, loan.ID).Equal(decimal.RequireFromString("100")))
}

func TestPostExpenseFromAsset(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "1000.00")
	rent := createAccount(t, s, "Rent", "613", model.TypeExpense, "0")

	_, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-02-01"),
		Description:     "February rent",
		DebitAccountID:  rent.ID,
		CreditAccountID: bank.ID,
		Amount:          decimal.RequireFromString("250.00"),
		UserID:          user.ID,
	})
	require.NoError(t, err)

	assert.True(t, balanceOf(t, s, rent.ID).Equal(decimal.RequireFromString("250")))
	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("750")))
}

func TestPostRejectsSameAccount(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "0")

	_, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-01-01"),
		Description:     "self transfer",
		DebitAccountID:  bank.ID,
		CreditAccountID: bank.ID,
		Amount:          decimal.RequireFromString("10.00"),
		UserID:          user.ID,
	})
	require.ErrorIs(t, err, ErrSameAccount)

	transactions, err := s.GetAllTransactions(10)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestPostRejectsInvalidAmounts(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "0")
	sales := createAccount(t, s, "Product sales", "701", model.TypeRevenue, "0")

	for _, amount := range []string{"0", "-5.00", "1.005"} {
		_, err := l.Post(PostInput{
			Date:            mustDate(t, "2026-01-01"),
			Description:     "bad amount",
			DebitAccountID:  bank.ID,
			CreditAccountID: sales.ID,
			Amount:          decimal.RequireFromString(amount),
			UserID:          user.ID,
		})
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
	}

	assert.True(t, balanceOf(t, s, bank.ID).IsZero())
	assert.True(t, balanceOf(t, s, sales.ID).IsZero())
}

func TestPostMissingAccount(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "500.00")

	_, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-01-01"),
		Description:     "to nowhere",
		DebitAccountID:  bank.ID,
		CreditAccountID: 9999,
		Amount:          decimal.RequireFromString("50.00"),
		UserID:          user.ID,
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	// The failed posting touched nothing.
	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("500")))
}

// A journal entry referencing a nonexistent user violates a foreign key in the
// middle of the posting, after the transaction row is already written. The
// whole unit must roll back.
func TestPostRollsBackOnJournalFailure(t *testing.T) {
	l, s, _ := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "300.00")
	sales := createAccount(t, s, "Product sales", "701", model.TypeRevenue, "0")

	_, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-01-01"),
		Description:     "orphan journal user",
		DebitAccountID:  bank.ID,
		CreditAccountID: sales.ID,
		Amount:          decimal.RequireFromString("75.00"),
		UserID:          424242,
	})
	require.Error(t, err)

	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("300")))
	assert.True(t, balanceOf(t, s, sales.ID).IsZero())

	transactions, err := s.GetAllTransactions(10)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestReverseRestoresBalances(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "1000.00")
	loan := createAccount(t, s, "Loans", "164", model.TypeLiability, "200.00")

	tx, err := l.Post(PostInput{
		Date:            mustDate(t, "2026-03-10"),
		Description:     "Loan top-up",
		DebitAccountID:  bank.ID,
		CreditAccountID: loan.ID,
		Amount:          decimal.RequireFromString("100.00"),
		UserID:          user.ID,
	})
	require.NoError(t, err)

	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("1100")))
	assert.True(t, balanceOf(t, s, loan.ID).Equal(decimal.RequireFromString("300")))

	require.NoError(t, l.Reverse(tx.ID))

	assert.True(t, balanceOf(t, s, bank.ID).Equal(decimal.RequireFromString("1000")))
	assert.True(t, balanceOf(t, s, loan.ID).Equal(decimal.RequireFromString("200")))

	_, err = s.GetTransactionByID(tx.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetJournalEntryByTransaction(tx.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReverseMissingTransaction(t *testing.T) {
	l, _, _ := newTestLedger(t)

	err := l.Reverse(12345)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestJournalEntryPerPosting(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "0")
	sales := createAccount(t, s, "Product sales", "701", model.TypeRevenue, "0")

	for i := 0; i < 3; i++ {
		_, err := l.Post(PostInput{
			Date:            mustDate(t, "2026-01-05"),
			Description:     "Sale",
			DebitAccountID:  bank.ID,
			CreditAccountID: sales.ID,
			Amount:          decimal.RequireFromString("10.00"),
			UserID:          user.ID,
		})
		require.NoError(t, err)
	}

	lines, err := s.ListJournal(10)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, "tester", line.UserName)
		assert.Equal(t, "Bank", line.DebitAccount)
		assert.Equal(t, "Product sales", line.CreditAccount)
	}
}

func TestConcurrentPostsSerialize(t *testing.T) {
	l, s, user := newTestLedger(t)

	bank := createAccount(t, s, "Bank", "512", model.TypeAsset, "0")
	sales := createAccount(t, s, "Product sales", "701", model.TypeRevenue, "0")
	cash := createAccount(t, s, "Cash", "530", model.TypeAsset, "0")
	services := createAccount(t, s, "Services", "706", model.TypeRevenue, "0")

	const perPair = 20

	var wg sync.WaitGroup
	post := func(debitID, creditID int64) {
		defer wg.Done()
		_, err := l.Post(PostInput{
			Date:            mustDate(t, "2026-04-01"),
			Description:     "concurrent",
			DebitAccountID:  debitID,
			CreditAccountID: creditID,
			Amount:          decimal.RequireFromString("1.00"),
			UserID:          user.ID,
		})
		assert.NoError(t, err)
	}

	wg.Add(2 * perPair)
	for i := 0; i < perPair; i++ {
		go post(bank.ID, sales.ID)
		go post(cash.ID, services.ID)
	}
	wg.Wait()

	want := decimal.NewFromInt(perPair)
	assert.True(t, balanceOf(t, s, bank.ID).Equal(want))
	assert.True(t, balanceOf(t, s, sales.ID).Equal(want))
	assert.True(t, balanceOf(t, s, cash.ID).Equal(want))
	assert.True(t, balanceOf(t, s, services.ID).Equal(want))

	transactions, err := s.GetAllTransactions(100)
	require.NoError(t, err)
	assert.Len(t, transactions, 2*perPair)
}
