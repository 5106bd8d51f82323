package views

import (
	"fmt"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account, currency string) error {
	headers := []string{"Code", "Name", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := money.Format(acc.Balance, currency)

		var coloredName, coloredType, coloredBalance string
		switch acc.Type {
		case model.TypeAsset, model.TypeRevenue:
			coloredType = pterm.Green(string(acc.Type))
			coloredName = pterm.Green(acc.Name)
			coloredBalance = pterm.Green(balance)
		case model.TypeLiability, model.TypeExpense:
			coloredType = pterm.Red(string(acc.Type))
			coloredName = pterm.Red(acc.Name)
			coloredBalance = pterm.Red(balance)
		default:
			coloredType = string(acc.Type)
			coloredName = acc.Name
			coloredBalance = balance
		}
		tableData = append(tableData, []string{acc.Code, coloredName, coloredType, coloredBalance})
	}

	pterm.DefaultSection.Printf("Chart of Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

func RenderAccountDetail(acc *model.Account, debit, credit string, currency string) error {
	pterm.Println()
	pterm.DefaultSection.Printf("Account %s", acc.Code)

	data := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", acc.ID)},
		{"Code", acc.Code},
		{"Name", acc.Name},
		{"Type", string(acc.Type)},
		{"Debit total", debit},
		{"Credit total", credit},
		{"Balance", money.Format(acc.Balance, currency)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(data).
		Render()
}
