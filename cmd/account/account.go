package account

import (
	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/spf13/cobra"
)

func NewAccountCmd(application *app.App, cfg *config.Config) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
		Long:  `Create, list, inspect, update and delete accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(application, cfg))
	accountCmd.AddCommand(NewListCmd(application, cfg))
	accountCmd.AddCommand(NewShowCmd(application, cfg))
	accountCmd.AddCommand(NewUpdateCmd(application))
	accountCmd.AddCommand(NewDeleteCmd(application))

	return accountCmd
}
