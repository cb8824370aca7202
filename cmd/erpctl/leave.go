package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Inspect leave applications",
}

var (
	listStudent string
	listStatus  string
)

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leave applications, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewLeaveService(app.store, nil)

		var (
			apps []models.LeaveApplication
			err  error
		)
		if listStudent != "" {
			apps, err = svc.GetLeaveApplicationsByStudentID(cmd.Context(), listStudent)
		} else {
			apps, err = svc.ListForReview(cmd.Context(), models.LeaveFilter{Status: models.LeaveStatus(listStatus)})
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTUDENT\tTYPE\tFROM\tTO\tSTATUS\tAPPLIED")
		for _, a := range apps {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.StudentName, a.LeaveType, a.StartDate, a.EndDate, a.Status,
				a.AppliedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	leaveListCmd.Flags().StringVar(&listStudent, "student", "", "only this student's applications")
	leaveListCmd.Flags().StringVar(&listStatus, "status", "", "Pending, Approved or Rejected (ignored with --student)")
	leaveCmd.AddCommand(leaveListCmd)
}
