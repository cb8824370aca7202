package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the SQL schema",
	Long:  `Runs schema migrations for the sql store backend. Firestore needs none.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.cfg.Store.Backend != "sql" {
			fmt.Fprintf(cmd.OutOrStdout(), "store backend %q has no schema, nothing to do\n", app.cfg.Store.Backend)
			return nil
		}
		if err := store.Migrate(app.store); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
