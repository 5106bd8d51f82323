package invoice

import (
	"fmt"
	"strconv"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(application *app.App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Delete an invoice and its lines",
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

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete invoice %s?", inv.Number), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := application.Service.Invoice.Delete(id); err != nil {
				return err
			}

			pterm.Success.Printf("Invoice %s deleted\n", inv.Number)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
