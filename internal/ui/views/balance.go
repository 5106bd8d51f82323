package views

import (
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/report"
	"github.com/pterm/pterm"
)

type BalanceView struct{}

func NewBalanceView() *BalanceView {
	return &BalanceView{}
}

func (v *BalanceView) Render(snap *report.Snapshot, currency string) error {
	if len(snap.Rows) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	pterm.DefaultSection.Printf("Trial Balance")

	tableData := pterm.TableData{
		{"Code", "Name", "Type", "Debit", "Credit", "Balance"},
	}

	for _, row := range snap.Rows {
		balance := money.Format(row.Account.Balance, currency)

		var coloredBalance string
		switch row.Account.Type {
		case model.TypeAsset, model.TypeRevenue:
			coloredBalance = pterm.Green(balance)
		case model.TypeLiability, model.TypeExpense:
			coloredBalance = pterm.Red(balance)
		default:
			coloredBalance = balance
		}

		tableData = append(tableData, []string{
			row.Account.Code,
			row.Account.Name,
			string(row.Account.Type),
			money.Format(row.Debit, currency),
			money.Format(row.Credit, currency),
			coloredBalance,
		})
	}

	tableData = append(tableData, []string{
		"",
		pterm.Bold.Sprint("Total"),
		"",
		pterm.Bold.Sprint(money.Format(snap.TotalDebit, currency)),
		pterm.Bold.Sprint(money.Format(snap.TotalCredit, currency)),
		pterm.Bold.Sprint(money.Format(snap.TotalBalance, currency)),
	})

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if snap.Residual().IsZero() {
		pterm.Success.Println("Books are balanced")
	} else {
		pterm.Warning.Printf("Accounting equation residual: %s\n", money.Format(snap.Residual(), currency))
	}

	return nil
}
