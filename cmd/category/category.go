package category

import (
	"fmt"
	"strconv"

	"github.com/azeroual/comptable/internal/service"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCategoryCmd(svc *service.Service) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage product categories",
	}

	categoryCmd.AddCommand(newCreateCmd(svc))
	categoryCmd.AddCommand(newListCmd(svc))
	categoryCmd.AddCommand(newUpdateCmd(svc))
	categoryCmd.AddCommand(newDeleteCmd(svc))

	return categoryCmd
}

func newCreateCmd(svc *service.Service) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a new category",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := svc.Category.Create(args[0], description)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			pterm.Success.Printf("Category %q created with id %d\n", category.Name, category.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Category description")

	return cmd
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all categories",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := svc.Category.List()
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			tableData := pterm.TableData{{"ID", "Name", "Description"}}
			for _, c := range categories {
				description := c.Description
				if description == "" {
					description = "-"
				}
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", c.ID), c.Name, description,
				})
			}

			pterm.DefaultSection.Printf("Categories")
			if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
				return err
			}
			pterm.Info.Printf("Total: %d categories\n", len(categories))
			return nil
		},
	}
}

func newUpdateCmd(svc *service.Service) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:          "update <id>",
		Short:        "Update a category's name or description",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			if name == "" && description == "" {
				return fmt.Errorf("nothing to update, pass --name or --description")
			}

			category, err := svc.Category.Update(id, name, description)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Category %d updated (%s)\n", category.ID, category.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New category name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New category description")

	return cmd
}

func newDeleteCmd(svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Delete a category that no product references",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			category, err := svc.Category.GetByID(id)
			if err != nil {
				return err
			}

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete category %q?", category.Name), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Category.Delete(id); err != nil {
				return err
			}

			pterm.Success.Printf("Category %q deleted\n", category.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
