package views

import (
	"fmt"

	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/pterm/pterm"
)

type InvoiceListView struct{}

func NewInvoiceListView() *InvoiceListView {
	return &InvoiceListView{}
}

func (v *InvoiceListView) Render(invoices []*model.Invoice, currency string) error {
	if len(invoices) == 0 {
		pterm.Warning.Println("No invoices found")
		return nil
	}

	pterm.DefaultSection.Printf("Invoices")

	tableData := pterm.TableData{
		{"ID", "Number", "Client", "Issued", "Due", "Status", "Total"},
	}

	for _, inv := range invoices {
		clientName := fmt.Sprintf("[ID: %d]", inv.ClientID)
		if inv.Client != nil {
			clientName = inv.Client.Name
		}

		var coloredStatus string
		switch inv.Status {
		case model.StatusPaid:
			coloredStatus = pterm.Green(string(inv.Status))
		case model.StatusSent:
			coloredStatus = pterm.Blue(string(inv.Status))
		case model.StatusCancelled:
			coloredStatus = pterm.Red(string(inv.Status))
		default:
			coloredStatus = pterm.Gray(string(inv.Status))
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", inv.ID),
			inv.Number,
			clientName,
			inv.IssueDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			coloredStatus,
			money.Format(inv.Total, currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d invoices\n", len(invoices))
	return nil
}
