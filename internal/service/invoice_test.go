package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	s, err := store.NewStore(filepath.Join(t.TempDir(), "test.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return NewService(s, config.NewDefault()), s
}

type invoiceFixture struct {
	userID   int64
	clientID int64
	standard int64 // 20% VAT, 100.00
	reduced  int64 // 5.5% VAT, 10.00
}

func seedInvoiceFixture(t *testing.T, svc *Service) invoiceFixture {
	t.Helper()

	user, err := svc.User.Create("alice", "")
	require.NoError(t, err)

	client, err := svc.Client.Create("ACME", "", "", "")
	require.NoError(t, err)

	standard, err := svc.Product.Create("Consulting", "",
		decimal.RequireFromString("100.00"), decimal.RequireFromString("20"), nil)
	require.NoError(t, err)

	reduced, err := svc.Product.Create("Book", "",
		decimal.RequireFromString("10.00"), decimal.RequireFromString("5.5"), nil)
	require.NoError(t, err)

	return invoiceFixture{
		userID:   user.ID,
		clientID: client.ID,
		standard: standard.ID,
		reduced:  reduced.ID,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInvoiceCreateComputesTotals(t *testing.T) {
	svc, _ := newTestService(t)
	fx := seedInvoiceFixture(t, svc)

	inv, err := svc.Invoice.Create(InvoiceInput{
		Number:    "INV-2026-001",
		IssueDate: date(2026, 2, 1),
		DueDate:   date(2026, 3, 1),
		Status:    model.StatusDraft,
		ClientID:  fx.clientID,
		Lines: []InvoiceLineInput{
			{ProductID: fx.standard, Quantity: decimal.NewFromInt(2)},
		},
	}, fx.userID)
	require.NoError(t, err)

	// 2 x 100.00 = 200.00, 20% VAT = 40.00
	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, inv.VAT.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("240.00")))

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Consulting", inv.Lines[0].Description)
	assert.True(t, inv.Lines[0].UnitPrice.Equal(decimal.RequireFromString("100.00")))
}

func TestInvoiceMixedRatesKeepPerLineVAT(t *testing.T) {
	svc, _ := newTestService(t)
	fx := seedInvoiceFixture(t, svc)

	inv, err := svc.Invoice.Create(InvoiceInput{
		Number:    "INV-2026-002",
		IssueDate: date(2026, 2, 1),
		DueDate:   date(2026, 3, 1),
		Status:    model.StatusDraft,
		ClientID:  fx.clientID,
		Lines: []InvoiceLineInput{
			{ProductID: fx.standard, Quantity: decimal.NewFromInt(1)},
			{ProductID: fx.reduced, Quantity: decimal.NewFromInt(4)},
		},
	}, fx.userID)
	require.NoError(t, err)

	require.Len(t, inv.Lines, 2)

	// 100.00 at 20% and 40.00 at 5.5%: each line carries its own rate.
	assert.True(t, inv.Lines[0].VAT.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, inv.Lines[1].VAT.Equal(decimal.RequireFromString("2.20")))

	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("140.00")))
	assert.True(t, inv.VAT.Equal(decimal.RequireFromString("22.20")))
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("162.20")))

	// The header rate is presentational and ends up as the last line's rate.
	assert.True(t, inv.VATRate.Equal(decimal.RequireFromString("5.5")))
}

func TestInvoiceLineOverrides(t *testing.T) {
	svc, _ := newTestService(t)
	fx := seedInvoiceFixture(t, svc)

	inv, err := svc.Invoice.Create(InvoiceInput{
		Number:    "INV-2026-003",
		IssueDate: date(2026, 2, 1),
		DueDate:   date(2026, 2, 1),
		Status:    model.StatusSent,
		ClientID:  fx.clientID,
		Lines: []InvoiceLineInput{{
			ProductID:   fx.standard,
			Description: "Discounted consulting",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.RequireFromString("80.00"),
		}},
	}, fx.userID)
	require.NoError(t, err)

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Discounted consulting", inv.Lines[0].Description)
	assert.True(t, inv.Lines[0].Subtotal.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, inv.Lines[0].VAT.Equal(decimal.RequireFromString("16.00")))
}

func TestInvoiceCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	fx := seedInvoiceFixture(t, svc)

	valid := InvoiceInput{
		Number:    "INV-2026-004",
		IssueDate: date(2026, 2, 1),
		DueDate:   date(2026, 3, 1),
		Status:    model.StatusDraft,
		ClientID:  fx.clientID,
		Lines: []InvoiceLineInput{
			{ProductID: fx.standard, Quantity: decimal.NewFromInt(1)},
		},
	}

	tests := []struct {
		name   string
		mutate func(in *InvoiceInput)
	}{
		{"empty number", func(in *InvoiceInput) { in.Number = "  " }},
		{"due before issue", func(in *InvoiceInput) { in.DueDate = date(2026, 1, 31) }},
		{"no lines", func(in *InvoiceInput) { in.Lines = nil }},
		{"zero quantity", func(in *InvoiceInput) {
			in.Lines = []InvoiceLineInput{{ProductID: fx.standard, Quantity: decimal.Zero}}
		}},
		{"unknown product", func(in *InvoiceInput) {
			in.Lines = []InvoiceLineInput{{ProductID: 9999, Quantity: decimal.NewFromInt(1)}}
		}},
		{"unknown client", func(in *InvoiceInput) { in.ClientID = 9999 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := svc.Invoice.Create(in, fx.userID)
			require.Error(t, err)
		})
	}

	// Nothing was stored by the failed attempts.
	invoices, err := svc.Invoice.List()
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestClientDeleteRefusedWhileInvoiced(t *testing.T) {
	svc, _ := newTestService(t)
	fx := seedInvoiceFixture(t, svc)

	_, err := svc.Invoice.Create(InvoiceInput{
		Number:    "INV-2026-005",
		IssueDate: date(2026, 2, 1),
		DueDate:   date(2026, 3, 1),
		Status:    model.StatusDraft,
		ClientID:  fx.clientID,
		Lines: []InvoiceLineInput{
			{ProductID: fx.standard, Quantity: decimal.NewFromInt(1)},
		},
	}, fx.userID)
	require.NoError(t, err)

	err = svc.Client.Delete(fx.clientID)
	require.ErrorIs(t, err, store.ErrConflict)
}
