package account

import (
	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(application *app.App, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id-or-code>",
		Short:        "Show one account with its leg totals",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := application.Service.Account.Resolve(args[0])
			if err != nil {
				return err
			}

			debitCents, creditCents, err := application.Store.LegTotals(acc.ID)
			if err != nil {
				return err
			}

			currency := cfg.Defaults.Currency
			return views.RenderAccountDetail(acc,
				money.Format(money.FromCents(debitCents), currency),
				money.Format(money.FromCents(creditCents), currency),
				currency)
		},
	}
}
