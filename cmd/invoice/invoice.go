package invoice

import (
	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/spf13/cobra"
)

func NewInvoiceCmd(application *app.App, cfg *config.Config, defaultUser *model.User) *cobra.Command {
	invoiceCmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage client invoices",
	}

	invoiceCmd.AddCommand(NewCreateCmd(application, cfg, defaultUser))
	invoiceCmd.AddCommand(NewListCmd(application, cfg))
	invoiceCmd.AddCommand(NewShowCmd(application, cfg))
	invoiceCmd.AddCommand(NewDeleteCmd(application))

	return invoiceCmd
}
