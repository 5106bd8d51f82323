package invoice

import (
	"strconv"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(application *app.App, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id>",
		Short:        "Show one invoice with its lines and totals",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			inv, err := application.Service.Invoice.GetByID(id)
			if err != nil {
				return err
			}

			return views.RenderInvoiceDetail(inv, cfg.Defaults.Currency)
		},
	}
}
