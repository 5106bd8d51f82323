package cmd

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewJournalCmd(application *app.App, cfg *config.Config) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List the journal, newest entries first",
		Long: `List the append-only journal: one entry per posted transaction,
stamped with the acting user. Reversed transactions no longer appear.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := application.Store.ListJournal(limit)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}

			return views.NewJournalListView().Render(lines, cfg.Defaults.Currency, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum number of entries to show")

	return cmd
}
