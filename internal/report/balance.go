// Package report builds the trial balance: every account's current balance
// plus per-leg debit/credit totals for display.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/store"
	"github.com/shopspring/decimal"
)

type Balance struct {
	store *store.Store
}

func NewBalance(s *store.Store) *Balance {
	return &Balance{store: s}
}

// Row pairs an account with its debit-side and credit-side transaction
// totals. The totals are a read-only aggregation for presentation; the
// account's running balance never derives from them.
type Row struct {
	Account *model.Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

type Snapshot struct {
	Rows         []Row
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	TotalBalance decimal.Decimal
}

// Snapshot reads every account ordered by code, with current balances as
// maintained by the posting engine, and accumulates the grand totals in the
// same pass.
func (b *Balance) Snapshot() (*Snapshot, error) {
	accounts, err := b.store.GetAllAccounts()
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Rows:         make([]Row, 0, len(accounts)),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		TotalBalance: decimal.Zero,
	}

	for _, acc := range accounts {
		debitCents, creditCents, err := b.store.LegTotals(acc.ID)
		if err != nil {
			return nil, err
		}

		row := Row{
			Account: acc,
			Debit:   money.FromCents(debitCents),
			Credit:  money.FromCents(creditCents),
		}

		snap.Rows = append(snap.Rows, row)
		snap.TotalDebit = snap.TotalDebit.Add(row.Debit)
		snap.TotalCredit = snap.TotalCredit.Add(row.Credit)
		snap.TotalBalance = snap.TotalBalance.Add(acc.Balance)
	}

	return snap, nil
}

// Residual is the accounting-equation check: the sum of asset and expense
// balances minus the sum of liability and revenue balances. Zero after any
// sequence of balanced postings starting from all-zero balances.
func (s *Snapshot) Residual() decimal.Decimal {
	residual := decimal.Zero
	for _, row := range s.Rows {
		switch row.Account.Type {
		case model.TypeAsset, model.TypeExpense:
			residual = residual.Add(row.Account.Balance)
		case model.TypeLiability, model.TypeRevenue:
			residual = residual.Sub(row.Account.Balance)
		}
	}
	return residual
}

// WriteCSV writes the snapshot in the export layout:
// code, name, debit total, credit total, final balance.
func (s *Snapshot) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Account Code", "Account Name", "Debit", "Credit", "Final Balance"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range s.Rows {
		record := []string{
			row.Account.Code,
			row.Account.Name,
			money.Plain(row.Debit),
			money.Plain(row.Credit),
			money.Plain(row.Account.Balance),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
