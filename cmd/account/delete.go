package account

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(application *app.App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <id-or-code>",
		Short:        "Delete an account that no transaction references",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := application.Service.Account.Resolve(args[0])
			if err != nil {
				return err
			}

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete account %s %q?", acc.Code, acc.Name), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := application.Service.Account.Delete(acc.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Account %s deleted\n", acc.Code)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
