package transaction

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
		Short:        "Show one transaction with both legs and its journal entry",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			tx, err := application.Ledger.GetTransactionDetail(id)
			if err != nil {
				return err
			}

			return views.RenderTransactionDetail(tx, cfg.Defaults.Currency)
		},
	}
}
