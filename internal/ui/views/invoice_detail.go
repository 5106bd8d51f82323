package views

import (
	"fmt"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

func RenderInvoiceDetail(inv *model.Invoice, currency string) error {
	pterm.Println()
	pterm.DefaultSection.Printf("Invoice %s", inv.Number)

	clientName := fmt.Sprintf("[ID: %d]", inv.ClientID)
	if inv.Client != nil {
		clientName = inv.Client.Name
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Number", inv.Number},
		{"Client", clientName},
		{"Issue date", inv.IssueDate.Format("2006-01-02")},
		{"Due date", inv.DueDate.Format("2006-01-02")},
		{"Status", string(inv.Status)},
	}
	if inv.Notes != "" {
		infoData = append(infoData, []string{"Notes", inv.Notes})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	pterm.DefaultSection.WithLevel(2).Printf("Lines")

	linesData := pterm.TableData{
		{"Description", "Qty", "Unit Price", "Subtotal", "VAT %", "VAT", "Total"},
	}
	for _, line := range inv.Lines {
		linesData = append(linesData, []string{
			line.Description,
			line.Quantity.String(),
			money.Format(line.UnitPrice, currency),
			money.Format(line.Subtotal, currency),
			line.VATRate.String(),
			money.Format(line.VAT, currency),
			money.Format(line.Total, currency),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(linesData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	pterm.Printf("%s %s\n", pterm.Bold.Sprint("Subtotal:"), money.Format(inv.Subtotal, currency))
	pterm.Printf("%s %s\n", pterm.Bold.Sprint("VAT:"), money.Format(inv.VAT, currency))
	pterm.Printf("%s %s\n", pterm.Bold.Sprint("Total:"), money.Format(inv.Total, currency))

	return nil
}
