package transaction

import (
	"fmt"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/ledger"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/ui"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/azeroual/comptable/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type postFlags struct {
	Date        string
	Description string
	Debit       string
	Credit      string
	Amount      string
	User        string
}

func NewPostCmd(application *app.App, cfg *config.Config, defaultUser *model.User) *cobra.Command {
	flags := &postFlags{}

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new transaction",
		Long: `Post a transaction debiting one account and crediting another.

Accounts accept an id or a code. Without flags an interactive
wizard walks through the legs.

Example: comptable transaction post -d 512 -c 701 -a 150.00 -m "Cash sale"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			actingUser, err := resolveActingUser(application, defaultUser, flags.User)
			if err != nil {
				return err
			}

			hasFlags := cmd.Flags().Changed("debit") ||
				cmd.Flags().Changed("credit") ||
				cmd.Flags().Changed("amount")

			if hasFlags {
				return runPostFromFlags(application, cfg, flags, actingUser)
			}
			return runPostInteractive(application, cfg, actingUser)
		},
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVarP(&flags.Description, "description", "m", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Debit, "debit", "d", "", "Debit account id or code")
	cmd.Flags().StringVarP(&flags.Credit, "credit", "c", "", "Credit account id or code")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount, e.g. 150.00")
	cmd.Flags().StringVarP(&flags.User, "user", "u", "", "Acting user name (defaults to the configured user)")

	return cmd
}

// resolveActingUser picks the journal user: the --user override when given,
// otherwise the configured default.
func resolveActingUser(application *app.App, defaultUser *model.User, override string) (*model.User, error) {
	if override == "" {
		return defaultUser, nil
	}
	return application.Service.User.GetByName(override)
}

func runPostFromFlags(application *app.App, cfg *config.Config, flags *postFlags, actingUser *model.User) error {
	if flags.Debit == "" || flags.Credit == "" || flags.Amount == "" {
		return fmt.Errorf("--debit, --credit and --amount are all required")
	}

	debit, err := application.Service.Account.Resolve(flags.Debit)
	if err != nil {
		return err
	}
	credit, err := application.Service.Account.Resolve(flags.Credit)
	if err != nil {
		return err
	}

	amount, err := money.Parse(flags.Amount)
	if err != nil {
		return err
	}

	dateStr := flags.Date
	if dateStr == "" {
		dateStr = validation.Today()
	}
	date, err := validation.ParseDate(dateStr)
	if err != nil {
		return err
	}

	tx, err := application.Ledger.Post(ledger.PostInput{
		Date:            date,
		Description:     flags.Description,
		DebitAccountID:  debit.ID,
		CreditAccountID: credit.ID,
		Amount:          amount,
		UserID:          actingUser.ID,
	})
	if err != nil {
		return err
	}

	displayPosted(tx, cfg.Defaults.Currency)
	return nil
}

func runPostInteractive(application *app.App, cfg *config.Config, actingUser *model.User) error {
	accounts, err := application.Service.Account.List()
	if err != nil {
		return fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	if len(accounts) < 2 {
		return fmt.Errorf("need at least two accounts to post a transaction")
	}

	currency := cfg.Defaults.Currency

	ui.PrintTitle("New transaction")

	dateStr, err := prompts.PromptTransactionDate(validation.ValidateDate)
	if err != nil {
		return err
	}
	date, err := validation.ParseDate(dateStr)
	if err != nil {
		return err
	}

	description, err := prompts.PromptRequired("Description:")
	if err != nil {
		return err
	}

	debit, err := prompts.PromptAccountSelection("Debit account (receives the movement):", accounts, currency)
	if err != nil {
		return err
	}
	credit, err := prompts.PromptAccountSelection("Credit account (funds the movement):", accounts, currency)
	if err != nil {
		return err
	}

	amountStr, err := prompts.PromptAmount(validation.ValidatePositiveAmount)
	if err != nil {
		return err
	}
	amount, err := money.Parse(amountStr)
	if err != nil {
		return err
	}

	ui.Separator()
	summary := pterm.TableData{
		{pterm.Blue("Date"), dateStr},
		{pterm.Blue("Description"), description},
		{pterm.Blue("Debit"), fmt.Sprintf("%s %s", debit.Code, debit.Name)},
		{pterm.Blue("Credit"), fmt.Sprintf("%s %s", credit.Code, credit.Name)},
		{pterm.Blue("Amount"), money.Format(amount, currency)},
		{pterm.Blue("Recorded by"), actingUser.Name},
	}
	pterm.DefaultTable.WithData(summary).Render()

	confirm, err := prompts.PromptConfirm("Post this transaction?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("posting cancelled")
	}

	tx, err := application.Ledger.Post(ledger.PostInput{
		Date:            date,
		Description:     description,
		DebitAccountID:  debit.ID,
		CreditAccountID: credit.ID,
		Amount:          amount,
		UserID:          actingUser.ID,
	})
	if err != nil {
		return err
	}

	displayPosted(tx, currency)
	return nil
}

func displayPosted(tx *model.Transaction, currency string) {
	pterm.Success.Printf("Transaction %d posted\n", tx.ID)
	if err := views.RenderTransactionDetail(tx, currency); err != nil {
		pterm.Warning.Println(err)
	}
}
