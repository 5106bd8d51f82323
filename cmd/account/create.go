package account

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/ui"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/azeroual/comptable/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name    string
	Code    string
	Type    string
	Balance string
}

func NewCreateCmd(application *app.App, cfg *config.Config) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Long: `Create an account in the chart of accounts.

Every account has a type that fixes its sign convention:
asset and expense accounts grow when debited, liability and
revenue accounts grow when credited.

Example: comptable account create -n Bank -k 512 -t asset`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("code") ||
				cmd.Flags().Changed("type")

			if hasFlags {
				return runCreateFromFlags(application, cfg, flags)
			}
			return runCreateInteractive(application, cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Code, "code", "k", "", "Account code, e.g. 512")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: asset, liability, revenue or expense")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance (optional)")

	return cmd
}

func runCreateFromFlags(application *app.App, cfg *config.Config, flags *createFlags) error {
	if flags.Name == "" || flags.Code == "" || flags.Type == "" {
		return fmt.Errorf("--name, --code and --type are all required")
	}

	accType, err := model.ParseAccountType(flags.Type)
	if err != nil {
		return err
	}

	balance := decimal.Zero
	if flags.Balance != "" {
		balance, err = money.Parse(flags.Balance)
		if err != nil {
			return err
		}
	}

	acc, err := application.Service.Account.Create(flags.Name, flags.Code, accType, balance)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	displayCreated(acc, cfg.Defaults.Currency)
	return nil
}

func runCreateInteractive(application *app.App, cfg *config.Config) error {
	name, err := prompts.PromptInput("Account name:", "", validation.ValidateName)
	if err != nil {
		return err
	}

	code, err := prompts.PromptInput("Account code:", "", validation.ValidateAccountCode)
	if err != nil {
		return err
	}

	typeOptions := make([]string, 0, len(model.AccountTypes()))
	for _, t := range model.AccountTypes() {
		typeOptions = append(typeOptions, string(t))
	}
	typeStr, err := prompts.PromptSelect("Account type:", typeOptions, string(model.TypeAsset))
	if err != nil {
		return err
	}
	accType, err := model.ParseAccountType(typeStr)
	if err != nil {
		return err
	}

	balance := decimal.Zero
	balanceStr, err := prompts.PromptInput("Opening balance (Enter for 0):", "0", func(s string) error {
		_, err := money.Parse(s)
		return err
	})
	if err != nil {
		return err
	}
	if balanceStr != "" && balanceStr != "0" {
		balance, err = money.Parse(balanceStr)
		if err != nil {
			return err
		}
	}

	confirm, err := prompts.PromptConfirm(
		fmt.Sprintf("Create %s account %q with code %s?", accType, name, code), true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	acc, err := application.Service.Account.Create(name, code, accType, balance)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	displayCreated(acc, cfg.Defaults.Currency)
	return nil
}

func displayCreated(acc *model.Account, currency string) {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Code"), acc.Code},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Balance"), money.Format(acc.Balance, currency)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
}
