package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage student profiles",
}

var seedReq services.SaveStudentRequest

var studentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create or replace a student profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := services.NewStudentService(app.store).SaveProfile(cmd.Context(), &seedReq)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved student %s (%s), parent email %q\n", profile.ID, profile.Name, profile.ParentEmail)
		return nil
	},
}

func init() {
	f := studentSeedCmd.Flags()
	f.StringVar(&seedReq.ID, "id", "", "student id (matches the account or firebase uid)")
	f.StringVar(&seedReq.Name, "name", "", "full name")
	f.StringVar(&seedReq.Email, "email", "", "student email")
	f.StringVar(&seedReq.ParentEmail, "parent-email", "", "parent email used for leave notifications")
	f.StringVar(&seedReq.RollNumber, "roll", "", "roll number")
	f.StringVar(&seedReq.Department, "department", "", "department")
	_ = studentSeedCmd.MarkFlagRequired("id")
	_ = studentSeedCmd.MarkFlagRequired("name")

	studentCmd.AddCommand(studentSeedCmd)
}
