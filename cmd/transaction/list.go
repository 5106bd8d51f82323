package transaction

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit   int
	Account string
}

func NewListCmd(application *app.App, cfg *config.Config) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List recent transactions, newest first",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var transactions []*model.Transaction
			var err error

			if flags.Account != "" {
				acc, resolveErr := application.Service.Account.Resolve(flags.Account)
				if resolveErr != nil {
					return resolveErr
				}
				transactions, err = application.Store.GetTransactionsByAccount(acc.ID, flags.Limit)
			} else {
				transactions, err = application.Store.GetAllTransactions(flags.Limit)
			}
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			attachAccountNames(application, transactions)

			return views.NewTransactionListView().Render(transactions, cfg.Defaults.Currency, flags.Limit)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of transactions to show")
	cmd.Flags().StringVarP(&flags.Account, "account", "A", "", "Only transactions touching this account id or code")

	return cmd
}

// attachAccountNames resolves each leg's account for display, caching lookups
// across the listed rows.
func attachAccountNames(application *app.App, transactions []*model.Transaction) {
	cache := make(map[int64]*model.Account)

	lookup := func(id int64) *model.Account {
		if acc, ok := cache[id]; ok {
			return acc
		}
		acc, err := application.Service.Account.GetByID(id)
		if err != nil {
			return nil
		}
		cache[id] = acc
		return acc
	}

	for _, tx := range transactions {
		tx.DebitAccount = lookup(tx.DebitAccountID)
		tx.CreditAccount = lookup(tx.CreditAccountID)
	}
}
