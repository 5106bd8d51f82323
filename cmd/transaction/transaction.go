package transaction

import (
	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(application *app.App, cfg *config.Config, defaultUser *model.User) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Post, list, inspect and reverse transactions",
		Long: `Each transaction debits one account and credits another with the
same amount. Posting writes the transaction, its journal entry and both
account balances atomically; reversing undoes all of it.`,
	}

	transactionCmd.AddCommand(NewPostCmd(application, cfg, defaultUser))
	transactionCmd.AddCommand(NewListCmd(application, cfg))
	transactionCmd.AddCommand(NewShowCmd(application, cfg))
	transactionCmd.AddCommand(NewReverseCmd(application))

	return transactionCmd
}
