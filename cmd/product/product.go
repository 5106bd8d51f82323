package product

import (
	"fmt"
	"strconv"

	"github.com/azeroual/comptable/internal/money"
	"github.com/azeroual/comptable/internal/service"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func NewProductCmd(svc *service.Service) *cobra.Command {
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}

	productCmd.AddCommand(newCreateCmd(svc))
	productCmd.AddCommand(newListCmd(svc))
	productCmd.AddCommand(newDeleteCmd(svc))

	return productCmd
}

func newCreateCmd(svc *service.Service) *cobra.Command {
	var description, price, vatRate, category string

	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a new product",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			unitPrice, err := money.Parse(price)
			if err != nil {
				return fmt.Errorf("invalid unit price: %w", err)
			}

			rate := decimal.Zero
			if vatRate != "" {
				rate, err = decimal.NewFromString(vatRate)
				if err != nil {
					return fmt.Errorf("invalid VAT rate: %w", err)
				}
			}

			var categoryID *int64
			if category != "" {
				cat, err := svc.Category.Resolve(category)
				if err != nil {
					return err
				}
				categoryID = &cat.ID
			}

			product, err := svc.Product.Create(args[0], description, unitPrice, rate, categoryID)
			if err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}

			pterm.Success.Printf("Product %q created with id %d\n", product.Name, product.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Product description")
	cmd.Flags().StringVarP(&price, "price", "p", "0", "Unit price excluding VAT, e.g. 49.90")
	cmd.Flags().StringVar(&vatRate, "vat", "", "VAT rate in percent, e.g. 20")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category id or name")

	return cmd
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all products",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := svc.Product.List()
			if err != nil {
				return fmt.Errorf("failed to get products: %w", err)
			}

			tableData := pterm.TableData{{"ID", "Name", "Category", "Unit Price", "VAT %"}}
			for _, p := range products {
				categoryName := "-"
				if p.Category != nil {
					categoryName = p.Category.Name
				}
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", p.ID),
					p.Name,
					categoryName,
					money.Plain(p.UnitPrice),
					p.VATRate.String(),
				})
			}

			pterm.DefaultSection.Printf("Products")
			if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
				return err
			}
			pterm.Info.Printf("Total: %d products\n", len(products))
			return nil
		},
	}
}

func newDeleteCmd(svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Delete a product",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			product, err := svc.Product.GetByID(id)
			if err != nil {
				return err
			}

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete product %q?", product.Name), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Product.Delete(id); err != nil {
				return err
			}

			pterm.Success.Printf("Product %q deleted\n", product.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
