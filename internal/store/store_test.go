package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedAccount(t *testing.T, s *Store, name, code string, accType model.AccountType) int64 {
	t.Helper()

	id, err := s.CreateAccount(&model.Account{
		Name:    name,
		Code:    code,
		Type:    accType,
		Balance: decimal.Zero,
	})
	require.NoError(t, err)
	return id
}

func seedUser(t *testing.T, s *Store, name string) int64 {
	t.Helper()

	id, err := s.CreateUser(&model.User{Name: name})
	require.NoError(t, err)
	return id
}

func TestCreateAccountDuplicateCode(t *testing.T) {
	s := newTestStore(t)

	seedAccount(t, s, "Bank", "512", model.TypeAsset)

	_, err := s.CreateAccount(&model.Account{
		Name:    "Other bank",
		Code:    "512",
		Type:    model.TypeAsset,
		Balance: decimal.Zero,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAccountByID(99)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetAccountByCode("999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccountBalanceRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateAccount(&model.Account{
		Name:    "Bank",
		Code:    "512",
		Type:    model.TypeAsset,
		Balance: decimal.RequireFromString("1234.56"),
	})
	require.NoError(t, err)

	acc, err := s.GetAccountByID(id)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("1234.56")))

	require.NoError(t, s.UpdateAccountBalance(id, 99901))

	acc, err = s.GetAccountByID(id)
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("999.01")))
}

func TestGetAllAccountsOrderedByCode(t *testing.T) {
	s := newTestStore(t)

	seedAccount(t, s, "Product sales", "701", model.TypeRevenue)
	seedAccount(t, s, "Suppliers", "401", model.TypeLiability)
	seedAccount(t, s, "Bank", "512", model.TypeAsset)

	accounts, err := s.GetAllAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	assert.Equal(t, "401", accounts[0].Code)
	assert.Equal(t, "512", accounts[1].Code)
	assert.Equal(t, "701", accounts[2].Code)
}

func TestCountReferencingTransactions(t *testing.T) {
	s := newTestStore(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)
	cash := seedAccount(t, s, "Cash", "530", model.TypeAsset)

	_, err := s.CreateTransaction(&model.Transaction{
		Date:            time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Description:     "Sale",
		DebitAccountID:  bank,
		CreditAccountID: sales,
		Amount:          decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	for id, want := range map[int64]int64{bank: 1, sales: 1, cash: 0} {
		count, err := s.CountReferencingTransactions(id)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestJournalEntryUniquePerTransaction(t *testing.T) {
	s := newTestStore(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)
	user := seedUser(t, s, "alice")

	txID, err := s.CreateTransaction(&model.Transaction{
		Date:            time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Description:     "Sale",
		DebitAccountID:  bank,
		CreditAccountID: sales,
		Amount:          decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	_, err = s.CreateJournalEntry(&model.JournalEntry{
		TransactionID: txID,
		UserID:        user,
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)

	_, err = s.CreateJournalEntry(&model.JournalEntry{
		TransactionID: txID,
		UserID:        user,
		CreatedAt:     time.Now(),
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestListJournalNewestFirst(t *testing.T) {
	s := newTestStore(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)
	user := seedUser(t, s, "alice")

	for i, desc := range []string{"first", "second", "third"} {
		txID, err := s.CreateTransaction(&model.Transaction{
			Date:            time.Date(2026, 1, 10+i, 0, 0, 0, 0, time.UTC),
			Description:     desc,
			DebitAccountID:  bank,
			CreditAccountID: sales,
			Amount:          decimal.RequireFromString("10.00"),
		})
		require.NoError(t, err)

		_, err = s.CreateJournalEntry(&model.JournalEntry{
			TransactionID: txID,
			UserID:        user,
			CreatedAt:     time.Now(),
		})
		require.NoError(t, err)
	}

	lines, err := s.ListJournal(10)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "third", lines[0].Description)
	assert.Equal(t, "first", lines[2].Description)
	assert.Equal(t, "alice", lines[0].UserName)
}

// Write transactions start on separate pool connections. With a deferred
// BEGIN two of them upgrading to the write lock at once would fail with
// SQLITE_BUSY instead of waiting; the immediate txlock in the DSN makes
// them queue on the busy timeout, so every writer must commit.
func TestConcurrentExecTxWritersAllCommit(t *testing.T) {
	s := newTestStore(t)

	const writers = 10

	ids := make([]int64, writers)
	for i := range ids {
		ids[i] = seedAccount(t, s, fmt.Sprintf("Expense %d", i), fmt.Sprintf("6%02d", i), model.TypeExpense)
	}

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(id int64) {
			defer wg.Done()
			err := s.ExecTx(func(r Repository) error {
				acc, err := r.GetAccountByID(id)
				if err != nil {
					return err
				}
				return r.UpdateAccountBalance(acc.ID, 100)
			})
			assert.NoError(t, err)
		}(ids[i])
	}
	wg.Wait()

	for _, id := range ids {
		acc, err := s.GetAccountByID(id)
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(decimal.RequireFromString("1.00")))
	}
}

func TestUserDuplicateName(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "alice")

	_, err := s.CreateUser(&model.User{Name: "alice"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestUsersWithoutEmailDoNotCollide(t *testing.T) {
	s := newTestStore(t)

	seedUser(t, s, "alice")
	seedUser(t, s, "bob")

	users, err := s.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestProductVATRateRoundTrip(t *testing.T) {
	s := newTestStore(t)

	// 5.5 percent survives the basis-point storage exactly.
	id, err := s.CreateProduct(&model.Product{
		Name:      "Book",
		UnitPrice: decimal.RequireFromString("12.00"),
		VATRate:   decimal.RequireFromString("5.5"),
	})
	require.NoError(t, err)

	p, err := s.GetProductByID(id)
	require.NoError(t, err)
	assert.True(t, p.VATRate.Equal(decimal.RequireFromString("5.5")))
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("12.00")))
}

func TestInvoiceWithLinesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	user := seedUser(t, s, "alice")

	clientID, err := s.CreateClient(&model.Client{Name: "ACME"})
	require.NoError(t, err)

	productID, err := s.CreateProduct(&model.Product{
		Name:      "Consulting",
		UnitPrice: decimal.RequireFromString("100.00"),
		VATRate:   decimal.RequireFromString("20"),
	})
	require.NoError(t, err)

	inv := &model.Invoice{
		Number:    "INV-2026-001",
		IssueDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:    model.StatusDraft,
		Subtotal:  decimal.RequireFromString("200.00"),
		VATRate:   decimal.RequireFromString("20"),
		VAT:       decimal.RequireFromString("40.00"),
		Total:     decimal.RequireFromString("240.00"),
		ClientID:  clientID,
		CreatedBy: user,
	}
	lines := []*model.InvoiceLine{{
		ProductID:   productID,
		Description: "Consulting",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("100.00"),
		Subtotal:    decimal.RequireFromString("200.00"),
		VATRate:     decimal.RequireFromString("20"),
		VAT:         decimal.RequireFromString("40.00"),
		Total:       decimal.RequireFromString("240.00"),
	}}

	id, err := s.CreateInvoiceWithLines(inv, lines)
	require.NoError(t, err)

	got, err := s.GetInvoiceByID(id)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	require.NotNil(t, got.Client)

	assert.Equal(t, "INV-2026-001", got.Number)
	assert.Equal(t, "ACME", got.Client.Name)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("240.00")))
	assert.True(t, got.Lines[0].VAT.Equal(decimal.RequireFromString("40.00")))

	// Duplicate numbers are refused.
	_, err = s.CreateInvoiceWithLines(inv, lines)
	require.ErrorIs(t, err, ErrConflict)
}
