package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/azeroual/comptable/internal/app"
	"github.com/azeroual/comptable/internal/config"
	"github.com/azeroual/comptable/internal/model"
	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/service"
	"github.com/azeroual/comptable/internal/ui/views"
	"github.com/azeroual/comptable/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Number    string
	ClientID  int64
	IssueDate string
	DueDate   string
	Status    string
	Notes     string
	Lines     []string
}

func NewCreateCmd(application *app.App, cfg *config.Config, defaultUser *model.User) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice with one or more lines",
		Long: `Create an invoice. Each --line takes PRODUCT_ID:QTY or
PRODUCT_ID:QTY:UNIT_PRICE; the unit price defaults to the product's.

Example:
  comptable invoice create -n INV-2026-001 -C 3 \
    --line 1:2 --line 4:1:99.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := buildInput(flags)
			if err != nil {
				return err
			}

			inv, err := application.Service.Invoice.Create(*in, defaultUser.ID)
			if err != nil {
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			pterm.Success.Printf("Invoice %s created with id %d\n", inv.Number, inv.ID)
			return views.RenderInvoiceDetail(inv, cfg.Defaults.Currency)
		},
	}

	cmd.Flags().StringVarP(&flags.Number, "number", "n", "", "Invoice number, e.g. INV-2026-001")
	cmd.Flags().Int64VarP(&flags.ClientID, "client", "C", 0, "Client id")
	cmd.Flags().StringVar(&flags.IssueDate, "issue", "", "Issue date YYYY-MM-DD (defaults to today)")
	cmd.Flags().StringVar(&flags.DueDate, "due", "", "Due date YYYY-MM-DD (defaults to the issue date)")
	cmd.Flags().StringVarP(&flags.Status, "status", "s", "draft", "Status: draft, sent, paid or cancelled")
	cmd.Flags().StringVar(&flags.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringArrayVarP(&flags.Lines, "line", "L", nil, "Invoice line PRODUCT_ID:QTY[:UNIT_PRICE] (repeatable)")

	return cmd
}

func buildInput(flags *createFlags) (*service.InvoiceInput, error) {
	if flags.ClientID == 0 {
		return nil, fmt.Errorf("--client is required")
	}
	if len(flags.Lines) == 0 {
		return nil, fmt.Errorf("at least one --line is required")
	}

	status, err := model.ParseInvoiceStatus(flags.Status)
	if err != nil {
		return nil, err
	}

	issueStr := flags.IssueDate
	if issueStr == "" {
		issueStr = validation.Today()
	}
	issueDate, err := validation.ParseDate(issueStr)
	if err != nil {
		return nil, err
	}

	dueStr := flags.DueDate
	if dueStr == "" {
		dueStr = issueStr
	}
	dueDate, err := validation.ParseDate(dueStr)
	if err != nil {
		return nil, err
	}

	lines := make([]service.InvoiceLineInput, 0, len(flags.Lines))
	for _, spec := range flags.Lines {
		line, err := parseLineSpec(spec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	return &service.InvoiceInput{
		Number:    flags.Number,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    status,
		Notes:     flags.Notes,
		ClientID:  flags.ClientID,
		Lines:     lines,
	}, nil
}

// parseLineSpec parses PRODUCT_ID:QTY[:UNIT_PRICE].
func parseLineSpec(spec string) (*service.InvoiceLineInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid line %q (expected PRODUCT_ID:QTY[:UNIT_PRICE])", spec)
	}

	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid product id in line %q", spec)
	}

	quantity, err := decimal.NewFromString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid quantity in line %q", spec)
	}

	unitPrice := decimal.Zero
	if len(parts) == 3 {
		unitPrice, err = money.Parse(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid unit price in line %q: %w", spec, err)
		}
	}

	return &service.InvoiceLineInput{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}
