package views

import (
	"fmt"
	"time"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, currency string) error {
	pterm.Println()
	pterm.DefaultSection.Printf("Transaction %d", tx.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", tx.Date.Format("2006-01-02")},
		{"Description", tx.Description},
		{"Amount", money.Format(tx.Amount, currency)},
		{"Recorded", tx.CreatedAt.Format(time.RFC3339)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Printf("Legs")

	legsData := pterm.TableData{
		{"Side", "Account", "Amount"},
	}

	debitName := fmt.Sprintf("[ID: %d]", tx.DebitAccountID)
	if tx.DebitAccount != nil {
		debitName = fmt.Sprintf("%s %s", tx.DebitAccount.Code, tx.DebitAccount.Name)
	}
	creditName := fmt.Sprintf("[ID: %d]", tx.CreditAccountID)
	if tx.CreditAccount != nil {
		creditName = fmt.Sprintf("%s %s", tx.CreditAccount.Code, tx.CreditAccount.Name)
	}

	amount := money.Format(tx.Amount, currency)
	legsData = append(legsData,
		[]string{pterm.Green("Debit"), debitName, pterm.Green(amount)},
		[]string{pterm.Red("Credit"), creditName, pterm.Red(amount)},
	)

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(legsData).
		Render(); err != nil {
		return err
	}

	if tx.Journal != nil {
		pterm.Println()
		pterm.Info.Printf("Journal entry %d recorded by user %d on %s\n",
			tx.Journal.ID, tx.Journal.UserID, tx.Journal.CreatedAt.Format(time.RFC3339))
	}

	return nil
}
