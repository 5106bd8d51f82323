package views

import (
	"fmt"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

type JournalListView struct{}

func NewJournalListView() *JournalListView {
	return &JournalListView{}
}

func (v *JournalListView) Render(lines []*model.JournalLine, currency string, limit int) error {
	if len(lines) == 0 {
		pterm.Warning.Println("Journal is empty")
		return nil
	}

	pterm.DefaultSection.Printf("Journal (limit: %d)", limit)

	tableData := pterm.TableData{
		{"Entry", "Date", "Description", "Debit", "Credit", "Amount", "Recorded By"},
	}

	for _, line := range lines {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", line.EntryID),
			line.Date.Format("2006-01-02"),
			line.Description,
			pterm.Green(line.DebitAccount),
			pterm.Red(line.CreditAccount),
			money.Format(line.Amount, currency),
			line.UserName,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d entries\n", len(lines))
	return nil
}
