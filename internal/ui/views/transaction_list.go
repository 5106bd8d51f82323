package views

import (
	"fmt"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(transactions []*model.Transaction, currency string, limit int) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Description", "Debit Account", "Credit Account", "Amount"},
	}

	for _, tx := range transactions {
		debitName := fmt.Sprintf("[ID: %d]", tx.DebitAccountID)
		if tx.DebitAccount != nil {
			debitName = tx.DebitAccount.Name
		}
		creditName := fmt.Sprintf("[ID: %d]", tx.CreditAccountID)
		if tx.CreditAccount != nil {
			creditName = tx.CreditAccount.Name
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format("2006-01-02"),
			tx.Description,
			pterm.Green(debitName),
			pterm.Red(creditName),
			money.Format(tx.Amount, currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
