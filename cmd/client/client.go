package client

import (
	"fmt"
	"strconv"

	"github.com/azeroual/comptable/internal/service"
	"github.com/azeroual/comptable/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewClientCmd(svc *service.Service) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Manage invoiced clients",
	}

	clientCmd.AddCommand(newCreateCmd(svc))
	clientCmd.AddCommand(newListCmd(svc))
	clientCmd.AddCommand(newShowCmd(svc))
	clientCmd.AddCommand(newDeleteCmd(svc))

	return clientCmd
}

func newCreateCmd(svc *service.Service) *cobra.Command {
	var email, phone, address string

	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a new client",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := svc.Client.Create(args[0], email, phone, address)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			pterm.Success.Printf("Client %q created with id %d\n", client.Name, client.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Client email")
	cmd.Flags().StringVarP(&phone, "phone", "p", "", "Client phone")
	cmd.Flags().StringVarP(&address, "address", "a", "", "Client address")

	return cmd
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all clients",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := svc.Client.List()
			if err != nil {
				return fmt.Errorf("failed to get clients: %w", err)
			}

			tableData := pterm.TableData{{"ID", "Name", "Email", "Phone"}}
			for _, c := range clients {
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", c.ID), c.Name, orDash(c.Email), orDash(c.Phone),
				})
			}

			pterm.DefaultSection.Printf("Clients")
			if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
				return err
			}
			pterm.Info.Printf("Total: %d clients\n", len(clients))
			return nil
		},
	}
}

func newShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id>",
		Short:        "Show one client",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			c, err := svc.Client.GetByID(id)
			if err != nil {
				return err
			}

			pterm.DefaultSection.Printf("Client %d", c.ID)
			data := pterm.TableData{
				{"Field", "Value"},
				{"Name", c.Name},
				{"Email", orDash(c.Email)},
				{"Phone", orDash(c.Phone)},
				{"Address", orDash(c.Address)},
			}
			return pterm.DefaultTable.
				WithHasHeader().
				WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
				WithData(data).
				Render()
		},
	}
}

func newDeleteCmd(svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Delete a client that no invoice references",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			client, err := svc.Client.GetByID(id)
			if err != nil {
				return err
			}

			if !force {
				confirm, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete client %q?", client.Name), false)
				if err != nil {
					return err
				}
				if !confirm {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := svc.Client.Delete(id); err != nil {
				return err
			}

			pterm.Success.Printf("Client %q deleted\n", client.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
