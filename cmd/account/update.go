package account

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/model"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type updateFlags struct {
	Name string
	Code string
	Type string
}

func NewUpdateCmd(application *app.App) *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update <id-or-code>",
		Short: "Update an account's name, code or type",
		Long: `Update an account. The type can only change while no transaction
references the account.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := application.Service.Account.Resolve(args[0])
			if err != nil {
				return err
			}

			name := acc.Name
			if cmd.Flags().Changed("name") {
				name = flags.Name
			}
			code := acc.Code
			if cmd.Flags().Changed("code") {
				code = flags.Code
			}
			accType := acc.Type
			if cmd.Flags().Changed("type") {
				accType, err = model.ParseAccountType(flags.Type)
				if err != nil {
					return err
				}
			}

			updated, err := application.Service.Account.Update(acc.ID, name, code, accType)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			pterm.Success.Printf("Account %s updated\n", updated.Code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "New account name")
	cmd.Flags().StringVarP(&flags.Code, "code", "k", "", "New account code")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "New account type")

	return cmd
}
