package cmd

import (
	"fmt"
	"os"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewBalanceCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the trial balance",
		Long: `Show every account with its debit and credit totals and its current
balance. With --csv the same snapshot is written to a file instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := application.Report.Snapshot()
			if err != nil {
				return fmt.Errorf("failed to build trial balance: %w", err)
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", csvPath, err)
				}
				defer f.Close()

				if err := snap.WriteCSV(f); err != nil {
					return fmt.Errorf("failed to write CSV: %w", err)
				}

				pterm.Success.Printf("Trial balance written to %s\n", csvPath)
				return nil
			}

			return views.NewBalanceView().Render(snap, cfg.Defaults.Currency)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the trial balance to this CSV file")

	return cmd
}
