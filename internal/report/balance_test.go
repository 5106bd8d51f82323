package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/azeroual/comptable/internal/ledger"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooks(t *testing.T) (*Balance, *ledger.Ledger, *store.Store, int64) {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	userID, err := s.CreateUser(&model.User{Name: "tester"})
	require.NoError(t, err)

	return NewBalance(s), ledger.New(s), s, userID
}

func seedAccount(t *testing.T, s *store.Store, name, code string, accType model.AccountType) int64 {
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

func post(t *testing.T, l *ledger.Ledger, debitID, creditID, userID int64, amount string) {
	t.Helper()

	_, err := l.Post(ledger.PostInput{
		Date:            time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Description:     "posting",
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          decimal.RequireFromString(amount),
		UserID:          userID,
	})
	require.NoError(t, err)
}

func TestSnapshotTotalsAndResidual(t *testing.T) {
	b, l, s, userID := newTestBooks(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	loan := seedAccount(t, s, "Loans", "164", model.TypeLiability)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)
	rent := seedAccount(t, s, "Rent", "613", model.TypeExpense)

	post(t, l, bank, loan, userID, "1000.00")
	post(t, l, bank, sales, userID, "250.00")
	post(t, l, rent, bank, userID, "400.00")

	snap, err := b.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Rows, 4)

	// Rows follow chart order: 164, 512, 613, 701.
	byCode := make(map[string]Row, len(snap.Rows))
	for _, row := range snap.Rows {
		byCode[row.Account.Code] = row
	}

	assert.True(t, byCode["512"].Account.Balance.Equal(decimal.RequireFromString("850")))
	assert.True(t, byCode["512"].Debit.Equal(decimal.RequireFromString("1250")))
	assert.True(t, byCode["512"].Credit.Equal(decimal.RequireFromString("400")))

	assert.True(t, byCode["164"].Account.Balance.Equal(decimal.RequireFromString("1000")))
	assert.True(t, byCode["701"].Account.Balance.Equal(decimal.RequireFromString("250")))
	assert.True(t, byCode["613"].Account.Balance.Equal(decimal.RequireFromString("400")))

	// Every euro was debited somewhere and credited somewhere.
	assert.True(t, snap.TotalDebit.Equal(snap.TotalCredit))
	assert.True(t, snap.TotalDebit.Equal(decimal.RequireFromString("1650")))

	// Assets + expenses equal liabilities + revenue.
	assert.True(t, snap.Residual().IsZero())
}

func TestResidualAfterReversal(t *testing.T) {
	b, l, s, userID := newTestBooks(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)

	tx, err := l.Post(ledger.PostInput{
		Date:            time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		Description:     "sale",
		DebitAccountID:  bank,
		CreditAccountID: sales,
		Amount:          decimal.RequireFromString("99.99"),
		UserID:          userID,
	})
	require.NoError(t, err)
	require.NoError(t, l.Reverse(tx.ID))

	snap, err := b.Snapshot()
	require.NoError(t, err)

	assert.True(t, snap.Residual().IsZero())
	assert.True(t, snap.TotalDebit.IsZero())
	assert.True(t, snap.TotalCredit.IsZero())
}

func TestWriteCSV(t *testing.T) {
	b, l, s, userID := newTestBooks(t)

	bank := seedAccount(t, s, "Bank", "512", model.TypeAsset)
	sales := seedAccount(t, s, "Product sales", "701", model.TypeRevenue)

	post(t, l, bank, sales, userID, "150.50")

	snap, err := b.Snapshot()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snap.WriteCSV(&buf))

	out := buf.String()
	assert.Contains(t, out, "Account Code,Account Name,Debit,Credit,Final Balance")
	assert.Contains(t, out, "512,Bank,150.50,0.00,150.50")
	assert.Contains(t, out, "701,Product sales,0.00,150.50,150.50")
}
