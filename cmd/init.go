package cmd

import (
	"errors"
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type seedAccount struct {
	Name string
	Code string
	Type model.AccountType
}

// defaultChart is the starter chart of accounts, codes following the French
// plan comptable.
var defaultChart = []seedAccount{
	{"Bank", "512", model.TypeAsset},
	{"Cash", "530", model.TypeAsset},
	{"Accounts receivable", "411", model.TypeAsset},
	{"Suppliers", "401", model.TypeLiability},
	{"Loans", "164", model.TypeLiability},
	{"Product sales", "701", model.TypeRevenue},
	{"Services", "706", model.TypeRevenue},
	{"Merchandise purchases", "607", model.TypeExpense},
	{"Rent", "613", model.TypeExpense},
	{"Salaries", "641", model.TypeExpense},
}

func NewInitCmd(application *app.App, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed the starter chart of accounts",
		Long: `Create the starter chart of accounts with zero balances. Accounts
that already exist are left untouched, so init is safe to re-run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			created := 0
			for _, seed := range defaultChart {
				_, err := application.Service.Account.GetByCode(seed.Code)
				if err == nil {
					continue
				}
				if !errors.Is(err, store.ErrNotFound) {
					return err
				}

				if _, err := application.Service.Account.Create(seed.Name, seed.Code, seed.Type, decimal.Zero); err != nil {
					return fmt.Errorf("failed to seed account %s: %w", seed.Code, err)
				}
				created++
			}

			if created == 0 {
				pterm.Info.Println("Chart of accounts already initialized")
				return nil
			}

			pterm.Success.Printf("Created %d accounts\n", created)
			return nil
		},
	}
}
