package invoice

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewListCmd(application *app.App, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all invoices",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := application.Service.Invoice.List()
			if err != nil {
				return fmt.Errorf("failed to get invoices: %w", err)
			}

			return views.NewInvoiceListView().Render(invoices, cfg.Defaults.Currency)
		},
	}
}
