package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage local dashboard accounts",
}

var (
	accountReq  services.CreateAccountRequest
	accountRole string
)

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dashboard login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		accountReq.Role = models.Role(accountRole)
		account, err := services.NewAuthService(app.store, app.cfg).CreateAccount(cmd.Context(), &accountReq)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s account %s (%s)\n", account.Role, account.Email, account.ID)
		return nil
	},
}

func init() {
	f := accountCreateCmd.Flags()
	f.StringVar(&accountReq.Email, "email", "", "login email")
	f.StringVar(&accountReq.Password, "password", "", "login password")
	f.StringVar(&accountRole, "role", string(models.RoleStudent), "student, faculty or admin")
	f.StringVar(&accountReq.StudentID, "student-id", "", "linked student profile id (students only)")
	_ = accountCreateCmd.MarkFlagRequired("email")
	_ = accountCreateCmd.MarkFlagRequired("password")

	accountCmd.AddCommand(accountCreateCmd)
}
