package user

import (
	"fmt"

	"github.com/azeroual/comptable/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewUserCmd(svc *service.Service) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users recorded on journal entries",
	}

	userCmd.AddCommand(newCreateCmd(svc))
	userCmd.AddCommand(newListCmd(svc))

	return userCmd
}

func newCreateCmd(svc *service.Service) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a new user",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := svc.User.Create(args[0], email)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			pterm.Success.Printf("User %q created with id %d\n", user.Name, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "User email (optional)")

	return cmd
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all users",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := svc.User.List()
			if err != nil {
				return fmt.Errorf("failed to get users: %w", err)
			}

			tableData := pterm.TableData{{"ID", "Name", "Email"}}
			for _, u := range users {
				email := u.Email
				if email == "" {
					email = "-"
				}
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", u.ID), u.Name, email,
				})
			}

			pterm.DefaultSection.Printf("Users")
			if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
				return err
			}
			pterm.Info.Printf("Total: %d users\n", len(users))
			return nil
		},
	}
}
