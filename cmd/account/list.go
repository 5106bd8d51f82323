package account

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type string
}

func NewListCmd(application *app.App, cfg *config.Config) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all accounts with their balances",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := application.Service.Account.List()
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			if flags.Type != "" {
				accType, err := model.ParseAccountType(flags.Type)
				if err != nil {
					return err
				}
				accounts = filterByType(accounts, accType)
			}

			return views.NewAccountListView().Render(accounts, cfg.Defaults.Currency)
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (asset, liability, revenue, expense)")

	return cmd
}

func filterByType(accounts []*model.Account, accType model.AccountType) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if acc.Type == accType {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
