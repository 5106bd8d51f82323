package transaction

import (
	"fmt"
	"strconv"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewReverseCmd(application *app.App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reverse <id>",
		Short: "Reverse a posted transaction",
		Long: `Reverse a transaction: both account balances return to their state
before the posting, and the transaction and its journal entry are
removed. The whole operation is atomic.`,
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

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Reverse transaction %d (%s, %s)?",
						tx.ID, tx.Date.Format("2006-01-02"), tx.Description), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Reversal cancelled")
					return nil
				}
			}

			if err := application.Ledger.Reverse(id); err != nil {
				return err
			}

			pterm.Success.Printf("Transaction %d reversed\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
